package readstore

import (
	"context"

	"github.com/Atsu2017-hub/web-ramen/internal/infra"
	"github.com/Atsu2017-hub/web-ramen/internal/infra/db"
	"github.com/Atsu2017-hub/web-ramen/internal/usecase/queries"

	"github.com/google/uuid"
)

type MenuReadStore struct {
	pool db.DBTX
}

func NewMenuReadStore(pool db.DBTX) *MenuReadStore {
	return &MenuReadStore{pool: pool}
}

const listAvailableMenusQuery = `
SELECT id, name, description, price, image_url, is_available, created_at
FROM menus
WHERE is_available = TRUE
ORDER BY created_at
`

func (s *MenuReadStore) ListAvailable(ctx context.Context) ([]*queries.MenuView, error) {
	rows, err := s.pool.Query(ctx, listAvailableMenusQuery)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list menus", err)
	}
	defer rows.Close()

	views := make([]*queries.MenuView, 0)
	for rows.Next() {
		var v queries.MenuView
		if err := rows.Scan(&v.ID, &v.Name, &v.Description, &v.Price, &v.ImageURL, &v.IsAvailable, &v.CreatedAt); err != nil {
			return nil, infra.WrapRepoErr("failed to scan menu row", err)
		}
		views = append(views, &v)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate menu rows", err)
	}
	return views, nil
}

const findMenusByIDsQuery = `
SELECT id, name, description, price, image_url, is_available, created_at
FROM menus
WHERE id = ANY($1)
`

// FindByIDs returns only the menus that exist; callers detect missing ids by
// comparing against what they asked for.
func (s *MenuReadStore) FindByIDs(ctx context.Context, ids []uuid.UUID) ([]*queries.MenuView, error) {
	rows, err := s.pool.Query(ctx, findMenusByIDsQuery, ids)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find menus by ids", err)
	}
	defer rows.Close()

	views := make([]*queries.MenuView, 0, len(ids))
	for rows.Next() {
		var v queries.MenuView
		if err := rows.Scan(&v.ID, &v.Name, &v.Description, &v.Price, &v.ImageURL, &v.IsAvailable, &v.CreatedAt); err != nil {
			return nil, infra.WrapRepoErr("failed to scan menu row", err)
		}
		views = append(views, &v)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate menu rows", err)
	}
	return views, nil
}
