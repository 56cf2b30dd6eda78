package reservation

import (
	"errors"
	"strings"
	"time"
)

var (
	ErrInvalidPartySize = errors.New("party size must be positive")
	ErrInvalidTime      = errors.New("invalid reservation time")
	ErrDateInPast       = errors.New("reservation date is in the past")
)

type Status string

const (
	StatusPending   Status = "pending"
	StatusConfirmed Status = "confirmed"
	StatusCancelled Status = "cancelled"
)

type PaymentStatus string

const (
	PaymentPending   PaymentStatus = "pending"
	PaymentSucceeded PaymentStatus = "succeeded"
	PaymentRefunded  PaymentStatus = "refunded"
)

// TimeOfDay is a wall-clock reservation time ("18:00"). Seconds are accepted
// on input and dropped.
type TimeOfDay struct {
	value string
}

func NewTimeOfDay(s string) (TimeOfDay, error) {
	s = strings.TrimSpace(s)
	t, err := time.Parse("15:04:05", s)
	if err != nil {
		t, err = time.Parse("15:04", s)
		if err != nil {
			return TimeOfDay{}, ErrInvalidTime
		}
	}
	return TimeOfDay{value: t.Format("15:04")}, nil
}

func (t TimeOfDay) Value() string {
	return t.value
}

type Note struct {
	value string
}

func NewNote(s string) Note {
	return Note{value: strings.TrimSpace(s)}
}

func (n Note) Value() string {
	return n.value
}

func (n Note) IsEmpty() bool {
	return n.value == ""
}
