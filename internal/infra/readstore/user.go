package readstore

import (
	"context"

	"github.com/Atsu2017-hub/web-ramen/internal/infra"
	"github.com/Atsu2017-hub/web-ramen/internal/infra/db"
	"github.com/Atsu2017-hub/web-ramen/internal/pkg/pgconv"
	"github.com/Atsu2017-hub/web-ramen/internal/usecase/queries"

	"github.com/google/uuid"
)

type UserReadStore struct {
	pool db.DBTX
}

func NewUserReadStore(pool db.DBTX) *UserReadStore {
	return &UserReadStore{pool: pool}
}

const findUserByEmailQuery = `
SELECT id, email, password_hash, name, created_at
FROM users
WHERE email = $1
`

// FindByEmail also returns the stored password hash so the login command can
// verify credentials without a second round trip. The hash never reaches a view.
func (s *UserReadStore) FindByEmail(ctx context.Context, email string) (*queries.AuthorizedUserView, string, error) {
	row := s.pool.QueryRow(ctx, findUserByEmailQuery, email)

	var (
		view queries.AuthorizedUserView
		hash string
	)
	if err := row.Scan(&view.ID, &view.Email, &hash, &view.Name, &view.CreatedAt); err != nil {
		if pgconv.IsNoRows(err) {
			return nil, "", infra.WrapRepoErr("user not found", err, infra.KindNotFound)
		}
		return nil, "", infra.WrapRepoErr("failed to find user by email", err)
	}
	return &view, hash, nil
}

const findUserByIDQuery = `
SELECT id, email, name, created_at
FROM users
WHERE id = $1
`

func (s *UserReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.AuthorizedUserView, error) {
	row := s.pool.QueryRow(ctx, findUserByIDQuery, id)

	var view queries.AuthorizedUserView
	if err := row.Scan(&view.ID, &view.Email, &view.Name, &view.CreatedAt); err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("user not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find user by id", err)
	}
	return &view, nil
}
