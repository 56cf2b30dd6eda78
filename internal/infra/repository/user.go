package repository

import (
	"context"

	"github.com/Atsu2017-hub/web-ramen/internal/domain/user"
	"github.com/Atsu2017-hub/web-ramen/internal/infra"
	"github.com/Atsu2017-hub/web-ramen/internal/infra/db"

	"github.com/google/uuid"
)

type UserRepository struct {
	pool db.DBTX
}

func NewUserRepository(pool db.DBTX) *UserRepository {
	return &UserRepository{pool: pool}
}

const createUserQuery = `
INSERT INTO users (id, email, password_hash, name)
VALUES ($1, $2, $3, $4)
RETURNING id
`

func (r *UserRepository) Create(ctx context.Context, u *user.User) (uuid.UUID, error) {
	var id uuid.UUID
	err := r.pool.QueryRow(ctx, createUserQuery,
		u.ID(), u.Email().Value(), u.PasswordHash(), u.Name().Value(),
	).Scan(&id)
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to create user", err, infra.KindFromPgError(err))
	}
	return id, nil
}
