package request

import (
	"time"

	"github.com/Atsu2017-hub/web-ramen/internal/usecase/commands"

	"github.com/google/uuid"
)

type MenuItemSelection struct {
	MenuID   uuid.UUID `json:"menu_id" binding:"required"`
	Quantity int32     `json:"quantity" binding:"required,min=1"`
}

type CreateReservationRequest struct {
	ReservationDate string              `json:"reservation_date" binding:"required"`
	ReservationTime string              `json:"reservation_time" binding:"required"`
	NumberOfPeople  int32               `json:"number_of_people" binding:"required,min=1"`
	SpecialRequests string              `json:"special_requests"`
	PaymentIntentID *string             `json:"payment_intent_id,omitempty"`
	MenuItems       []MenuItemSelection `json:"menu_items" binding:"required,min=1,dive"`
}

func (r CreateReservationRequest) ToCommand() (commands.CreateReservationInput, error) {
	date, err := time.Parse("2006-01-02", r.ReservationDate)
	if err != nil {
		return commands.CreateReservationInput{}, err
	}

	items := make([]commands.LineInput, len(r.MenuItems))
	for i, it := range r.MenuItems {
		items[i] = commands.LineInput{MenuID: it.MenuID, Quantity: it.Quantity}
	}

	return commands.CreateReservationInput{
		Date:            date,
		Time:            r.ReservationTime,
		PartySize:       r.NumberOfPeople,
		SpecialRequests: r.SpecialRequests,
		PaymentIntentID: r.PaymentIntentID,
		Items:           items,
	}, nil
}
