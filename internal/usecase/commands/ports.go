package commands

import (
	"context"

	"github.com/Atsu2017-hub/web-ramen/internal/domain/reservation"
	"github.com/Atsu2017-hub/web-ramen/internal/domain/user"
	"github.com/Atsu2017-hub/web-ramen/internal/infra/db"
	"github.com/Atsu2017-hub/web-ramen/internal/usecase/queries"

	"github.com/google/uuid"
)

// PaymentIntent is the gateway's view of a charge attempt. Amount is in the
// smallest currency unit.
type PaymentIntent struct {
	ID             string
	ClientSecret   string
	Status         string
	Amount         int64
	LatestChargeID string
}

const IntentStatusSucceeded = "succeeded"

type Refund struct {
	ID     string
	Amount int64
	Status string
}

// PaymentGateway wraps the third-party payment provider. Constructed once at
// process start from config and injected; never rebuilt per request.
type PaymentGateway interface {
	CreateIntent(ctx context.Context, amount int64, currency string, metadata map[string]string) (*PaymentIntent, error)
	RetrieveIntent(ctx context.Context, id string) (*PaymentIntent, error)
	CreateRefund(ctx context.Context, chargeID string, amount int64) (*Refund, error)
}

// ReservationNotice carries everything the notification sink renders.
type ReservationNotice struct {
	ReservationID uuid.UUID
	UserName      string
	UserEmail     string
	Date          string
	Time          string
	PartySize     int32
	Requests      *string
	Items         []queries.ReservationItemView
}

// ReservationNotifier pushes reservation events to an external sink. Callers
// log and discard its errors; delivery never fails a request.
type ReservationNotifier interface {
	NotifyConfirmed(ctx context.Context, notice ReservationNotice) error
	NotifyCancelled(ctx context.Context, notice ReservationNotice) error
}

type UserRepository interface {
	Create(ctx context.Context, u *user.User) (uuid.UUID, error)
}

type ReservationRepository interface {
	// Create inserts the reservation row and its line items. Callers run it
	// inside a transaction so a failing line item removes the whole thing.
	Create(ctx context.Context, tx db.DBTX, r *reservation.Reservation) (uuid.UUID, error)
	// DeleteByIDAndUser returns the number of rows removed; zero means the
	// reservation was absent, not owned, or already cancelled by a racing call.
	DeleteByIDAndUser(ctx context.Context, id, userID uuid.UUID) (int64, error)
	MarkRefunded(ctx context.Context, id uuid.UUID) error
}
