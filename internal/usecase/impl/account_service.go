// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"
	"time"

	"munch/internal/domain/entity"
	domainerrors "munch/internal/domain/errors"
	"munch/internal/domain/repository"
	"munch/internal/domain/service"
	"munch/internal/usecase"
	"munch/internal/util"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// accountService implements the AccountUsecase interface.
type accountService struct {
	userRepo repository.UserRepository
	hasher   service.PasswordHasher
	tokenSvc service.TokenService
	logger   *slog.Logger
}

// AccountServiceParams holds dependencies for accountService, injected by Fx.
type AccountServiceParams struct {
	fx.In

	UserRepo repository.UserRepository
	Hasher   service.PasswordHasher
	TokenSvc service.TokenService
	Logger   *slog.Logger
}

// NewAccountService is the constructor for accountService.
func NewAccountService(params AccountServiceParams) usecase.AccountUsecase {
	return &accountService{
		userRepo: params.UserRepo,
		hasher:   params.Hasher,
		tokenSvc: params.TokenSvc,
		logger:   params.Logger,
	}
}

// Register stores a new user and returns a session token.
func (srv *accountService) Register(ctx context.Context, input *usecase.RegisterInput) (*usecase.AuthOutput, error) {
	srv.logger.Info("Registering user", slog.String("email", input.Email))

	if input.Phone != "" && !util.IsPhoneNumberValid(input.Phone) {
		return nil, errors.Wrap(domainerrors.ErrValidationFailed.WithDetails("phone must match +7 (XXX) XXX-XX-XX"), "invalid phone number")
	}

	hash, err := srv.hasher.Hash(input.Password)
	if err != nil {
		return nil, errors.Wrap(err, "failed to hash password during registration")
	}

	user := &entity.User{
		Email:        input.Email,
		PasswordHash: hash,
		Name:         input.Name,
		Address:      input.Address,
		Phone:        input.Phone,
		BirthDate:    input.BirthDate,
		CreatedAt:    time.Now(),
	}

	if err := srv.userRepo.Create(ctx, user); err != nil {
		if errors.Is(err, repository.ErrDuplicateEmail) {
			return nil, errors.Wrap(domainerrors.ErrUserAlreadyExists, "registration email collision")
		}

		return nil, errors.Wrap(err, "failed to create user")
	}

	token, err := srv.tokenSvc.Generate(user.Email)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate session token")
	}

	return &usecase.AuthOutput{Token: token, User: user}, nil
}

// Login checks the credentials and returns a session token.
func (srv *accountService) Login(ctx context.Context, input *usecase.LoginInput) (*usecase.AuthOutput, error) {
	user, err := srv.userRepo.FindByEmail(ctx, input.Email)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			// Indistinguishable from a wrong password on purpose.
			return nil, errors.Wrap(domainerrors.ErrInvalidCredentials, "unknown email")
		}

		return nil, errors.Wrap(err, "failed to look up user")
	}

	if !srv.hasher.Check(input.Password, user.PasswordHash) {
		srv.logger.Warn("Password mismatch on login", slog.String("email", input.Email))

		return nil, errors.Wrap(domainerrors.ErrInvalidCredentials, "password mismatch")
	}

	token, err := srv.tokenSvc.Generate(user.Email)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate session token")
	}

	return &usecase.AuthOutput{Token: token, User: user}, nil
}

// Resolve extracts the email from a session token.
func (srv *accountService) Resolve(ctx context.Context, token string) (string, error) {
	email, err := srv.tokenSvc.Decode(token)
	if err != nil {
		return "", errors.Wrap(domainerrors.ErrInvalidToken, err.Error())
	}

	return email, nil
}

// Logout acknowledges a logout. The token scheme keeps no server-side
// session, so there is nothing to revoke.
func (srv *accountService) Logout(ctx context.Context, token string) error {
	if !srv.tokenSvc.Validate(token) {
		return errors.Wrap(domainerrors.ErrInvalidToken, "logout with malformed token")
	}

	return nil
}
