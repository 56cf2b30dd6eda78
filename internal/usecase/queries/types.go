package queries

import (
	"time"

	"github.com/google/uuid"
)

// Read models (DTO for read side)

type AuthorizedUserView struct {
	ID        uuid.UUID `json:"id"`
	Email     string    `json:"email"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
}

type MenuView struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Description *string   `json:"description,omitempty"`
	Price       int64     `json:"price"`
	ImageURL    *string   `json:"image_url,omitempty"`
	IsAvailable bool      `json:"is_available"`
	CreatedAt   time.Time `json:"created_at"`
}

type ReservationItemView struct {
	MenuID   uuid.UUID `json:"menu_id"`
	MenuName string    `json:"menu_name"`
	Price    int64     `json:"price"`
	Quantity int32     `json:"quantity"`
}

type ReservationView struct {
	ID              uuid.UUID             `json:"id"`
	UserID          uuid.UUID             `json:"user_id"`
	Date            time.Time             `json:"reservation_date"`
	Time            string                `json:"reservation_time"`
	PartySize       int32                 `json:"number_of_people"`
	SpecialRequests *string               `json:"special_requests,omitempty"`
	Status          string                `json:"status"`
	PaymentIntentID *string               `json:"payment_intent_id,omitempty"`
	Amount          *int64                `json:"amount,omitempty"`
	PaymentStatus   string                `json:"payment_status"`
	CreatedAt       time.Time             `json:"created_at"`
	Items           []ReservationItemView `json:"menu_items"`
}
