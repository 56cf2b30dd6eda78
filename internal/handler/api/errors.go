package api

import (
	"errors"

	"github.com/Atsu2017-hub/web-ramen/internal/domain/menu"
	"github.com/Atsu2017-hub/web-ramen/internal/domain/reservation"
	"github.com/Atsu2017-hub/web-ramen/internal/domain/user"
)

// Domain validation failures all map to 400. Listed explicitly so that a new
// sentinel cannot silently fall through to a 500.
var validationErrors = []error{
	user.ErrInvalidEmail,
	user.ErrInvalidName,
	user.ErrPasswordTooWeak,
	menu.ErrNoItemsSelected,
	menu.ErrUnknownItem,
	menu.ErrItemUnavailable,
	menu.ErrInvalidQuantity,
	menu.ErrDuplicateItem,
	menu.ErrNonPositiveTotal,
	reservation.ErrInvalidPartySize,
	reservation.ErrInvalidTime,
	reservation.ErrDateInPast,
}

func isValidationError(err error) bool {
	for _, target := range validationErrors {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}
