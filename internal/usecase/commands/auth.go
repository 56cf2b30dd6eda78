package commands

import (
	"context"

	"github.com/Atsu2017-hub/web-ramen/internal/domain/user"
	"github.com/Atsu2017-hub/web-ramen/internal/infra"
	"github.com/Atsu2017-hub/web-ramen/internal/pkg/errs"
	"github.com/Atsu2017-hub/web-ramen/internal/pkg/jwt"
	"github.com/Atsu2017-hub/web-ramen/internal/pkg/password"
	"github.com/Atsu2017-hub/web-ramen/internal/usecase/queries"
)

var (
	ErrEmailAlreadyRegistered = errs.New("email already registered")
	ErrInvalidCredentials     = errs.New("invalid email or password")
	ErrAuthFailed             = errs.New("authentication failed")
)

type RegisterInput struct {
	Email    string
	Password string
	Name     string
}

type LoginInput struct {
	Email    string
	Password string
}

// AuthResult pairs the authenticated user's view with a freshly issued token.
type AuthResult struct {
	User        *queries.AuthorizedUserView
	AccessToken string
}

type AuthUsecase interface {
	Register(ctx context.Context, input RegisterInput) (*AuthResult, error)
	Login(ctx context.Context, input LoginInput) (*AuthResult, error)
}

type authUsecaseImpl struct {
	userRepo      UserRepository
	userReadStore queries.UserReadStore
	tokenService  *jwt.Service
}

func NewAuthUsecase(userRepo UserRepository, userReadStore queries.UserReadStore, tokenService *jwt.Service) AuthUsecase {
	return &authUsecaseImpl{
		userRepo:      userRepo,
		userReadStore: userReadStore,
		tokenService:  tokenService,
	}
}

func (u *authUsecaseImpl) Register(ctx context.Context, input RegisterInput) (*AuthResult, error) {
	email, err := user.NewEmail(input.Email)
	if err != nil {
		return nil, err
	}
	if _, err := user.NewPassword(input.Password); err != nil {
		return nil, err
	}
	name, err := user.NewName(input.Name)
	if err != nil {
		return nil, err
	}

	hash, err := password.HashPassword(input.Password)
	if err != nil {
		return nil, errs.Mark(err, ErrAuthFailed)
	}

	entity := user.NewUser(email, hash, name)
	id, err := u.userRepo.Create(ctx, entity)
	if err != nil {
		if infra.IsKind(err, infra.KindDuplicateKey) {
			return nil, errs.Mark(err, ErrEmailAlreadyRegistered)
		}
		return nil, errs.Mark(err, ErrAuthFailed)
	}

	view, err := u.userReadStore.FindByID(ctx, id)
	if err != nil {
		return nil, errs.Mark(err, ErrAuthFailed)
	}

	token, err := u.tokenService.GenerateToken(view.ID, view.Email)
	if err != nil {
		return nil, errs.Mark(err, ErrAuthFailed)
	}

	return &AuthResult{User: view, AccessToken: token}, nil
}

func (u *authUsecaseImpl) Login(ctx context.Context, input LoginInput) (*AuthResult, error) {
	view, hash, err := u.userReadStore.FindByEmail(ctx, input.Email)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, ErrInvalidCredentials)
		}
		return nil, errs.Mark(err, ErrAuthFailed)
	}

	if err := password.ComparePassword(hash, input.Password); err != nil {
		return nil, errs.Mark(err, ErrInvalidCredentials)
	}

	token, err := u.tokenService.GenerateToken(view.ID, view.Email)
	if err != nil {
		return nil, errs.Mark(err, ErrAuthFailed)
	}

	return &AuthResult{User: view, AccessToken: token}, nil
}
