package user

import (
	"time"

	"github.com/google/uuid"
)

// User entity. The password hash never leaves the infra/usecase boundary;
// read models expose everything except the hash.
type User struct {
	id           uuid.UUID
	email        Email
	passwordHash string
	name         Name
	createdAt    time.Time
}

func NewUser(email Email, passwordHash string, name Name) *User {
	return &User{
		id:           uuid.New(),
		email:        email,
		passwordHash: passwordHash,
		name:         name,
	}
}

func (u *User) ID() uuid.UUID        { return u.id }
func (u *User) Email() Email         { return u.email }
func (u *User) PasswordHash() string { return u.passwordHash }
func (u *User) Name() Name           { return u.name }
func (u *User) CreatedAt() time.Time { return u.createdAt }
