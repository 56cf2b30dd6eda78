package reservation

import (
	"time"

	"github.com/Atsu2017-hub/web-ramen/internal/domain/menu"

	"github.com/google/uuid"
)

// PaymentCapture is the verified gateway state attached to a paid reservation.
type PaymentCapture struct {
	IntentID string
	Amount   int64
}

// Reservation aggregate. Line items are created atomically with the
// reservation row and only ever deleted with it.
type Reservation struct {
	id              uuid.UUID
	userID          uuid.UUID
	date            time.Time
	timeOfDay       TimeOfDay
	partySize       int32
	note            Note
	status          Status
	paymentIntentID *string
	amount          *int64
	paymentStatus   PaymentStatus
	lines           []menu.OrderLine
}

func NewReservation(
	userID uuid.UUID,
	date time.Time,
	timeOfDay TimeOfDay,
	partySize int32,
	note Note,
	lines []menu.OrderLine,
	capture *PaymentCapture,
) (*Reservation, error) {
	if partySize <= 0 {
		return nil, ErrInvalidPartySize
	}

	r := &Reservation{
		id:            uuid.New(),
		userID:        userID,
		date:          date,
		timeOfDay:     timeOfDay,
		partySize:     partySize,
		note:          note,
		status:        StatusPending,
		paymentStatus: PaymentPending,
		lines:         lines,
	}

	if capture != nil {
		intentID := capture.IntentID
		amount := capture.Amount
		r.paymentIntentID = &intentID
		r.amount = &amount
		r.paymentStatus = PaymentSucceeded
	}

	return r, nil
}

func (r *Reservation) ID() uuid.UUID                { return r.id }
func (r *Reservation) UserID() uuid.UUID            { return r.userID }
func (r *Reservation) Date() time.Time              { return r.date }
func (r *Reservation) TimeOfDay() TimeOfDay         { return r.timeOfDay }
func (r *Reservation) PartySize() int32             { return r.partySize }
func (r *Reservation) Note() Note                   { return r.note }
func (r *Reservation) Status() Status               { return r.status }
func (r *Reservation) PaymentIntentID() *string     { return r.paymentIntentID }
func (r *Reservation) Amount() *int64               { return r.amount }
func (r *Reservation) PaymentStatus() PaymentStatus { return r.paymentStatus }
func (r *Reservation) Lines() []menu.OrderLine      { return r.lines }
