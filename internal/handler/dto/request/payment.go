package request

import (
	"github.com/Atsu2017-hub/web-ramen/internal/usecase/commands"
)

type CreatePaymentIntentRequest struct {
	MenuItems []MenuItemSelection `json:"menu_items" binding:"required,min=1,dive"`
}

func (r CreatePaymentIntentRequest) ToCommand() []commands.LineInput {
	items := make([]commands.LineInput, len(r.MenuItems))
	for i, it := range r.MenuItems {
		items[i] = commands.LineInput{MenuID: it.MenuID, Quantity: it.Quantity}
	}
	return items
}
