package response

import (
	"time"

	"github.com/Atsu2017-hub/web-ramen/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type MenuResponse struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Description *string   `json:"description,omitempty"`
	Price       int64     `json:"price"`
	ImageURL    *string   `json:"image_url,omitempty"`
	IsAvailable bool      `json:"is_available"`
	CreatedAt   time.Time `json:"created_at"`
}

func FromMenuViews(views []*queries.MenuView) ([]MenuResponse, error) {
	out := make([]MenuResponse, 0, len(views))
	for _, v := range views {
		var resp MenuResponse
		if err := copier.Copy(&resp, v); err != nil {
			return nil, err
		}
		out = append(out, resp)
	}
	return out, nil
}
