package response

import (
	"time"

	"github.com/Atsu2017-hub/web-ramen/internal/usecase/queries"

	"github.com/google/uuid"
)

type ReservationItemResponse struct {
	MenuID   uuid.UUID `json:"menu_id"`
	MenuName string    `json:"menu_name"`
	Price    int64     `json:"price"`
	Quantity int32     `json:"quantity"`
}

type ReservationResponse struct {
	ID              uuid.UUID                 `json:"id"`
	UserID          uuid.UUID                 `json:"user_id"`
	ReservationDate string                    `json:"reservation_date"`
	ReservationTime string                    `json:"reservation_time"`
	NumberOfPeople  int32                     `json:"number_of_people"`
	SpecialRequests *string                   `json:"special_requests,omitempty"`
	Status          string                    `json:"status"`
	PaymentIntentID *string                   `json:"payment_intent_id,omitempty"`
	Amount          *int64                    `json:"amount,omitempty"`
	PaymentStatus   string                    `json:"payment_status"`
	CreatedAt       time.Time                 `json:"created_at"`
	MenuItems       []ReservationItemResponse `json:"menu_items"`
}

func FromReservationView(v *queries.ReservationView) *ReservationResponse {
	items := make([]ReservationItemResponse, len(v.Items))
	for i, it := range v.Items {
		items[i] = ReservationItemResponse{
			MenuID:   it.MenuID,
			MenuName: it.MenuName,
			Price:    it.Price,
			Quantity: it.Quantity,
		}
	}
	return &ReservationResponse{
		ID:              v.ID,
		UserID:          v.UserID,
		ReservationDate: v.Date.Format("2006-01-02"),
		ReservationTime: v.Time,
		NumberOfPeople:  v.PartySize,
		SpecialRequests: v.SpecialRequests,
		Status:          v.Status,
		PaymentIntentID: v.PaymentIntentID,
		Amount:          v.Amount,
		PaymentStatus:   v.PaymentStatus,
		CreatedAt:       v.CreatedAt,
		MenuItems:       items,
	}
}

type CancelReservationResponse struct {
	Message string          `json:"message"`
	Refund  *RefundResponse `json:"refund,omitempty"`
}

func FromReservationViews(views []*queries.ReservationView) []*ReservationResponse {
	out := make([]*ReservationResponse, len(views))
	for i, v := range views {
		out[i] = FromReservationView(v)
	}
	return out
}
