// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"

	deliverycontext "accounts/internal/delivery/context"
	"accounts/internal/domain/entity"
	domainerrors "accounts/internal/domain/errors"
	"accounts/internal/domain/repository"
	"accounts/internal/domain/service"
	"accounts/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// accountService implements the AccountUsecase interface.
type accountService struct {
	accountRepo repository.AccountRepository
	hasher      service.PasswordHasher
	logger      *slog.Logger
}

// AccountServiceParams holds dependencies for AccountService, injected by Fx.
type AccountServiceParams struct {
	fx.In

	AccountRepo repository.AccountRepository
	Hasher      service.PasswordHasher
	Logger      *slog.Logger
}

// NewAccountService is the constructor for accountService. It receives all dependencies as interfaces.
func NewAccountService(params AccountServiceParams) usecase.AccountUsecase {
	return &accountService{
		accountRepo: params.AccountRepo,
		hasher:      params.Hasher,
		logger:      params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *accountService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// SignUp hashes the password and stores a new account.
// Every failure after validation, including a taken email, surfaces as ErrAccountCreationFailed.
func (srv *accountService) SignUp(ctx context.Context, input *usecase.SignUpInput) (*usecase.AccountOutput, error) {
	if input == nil || input.Username == "" || input.Email == "" || input.Password == "" {
		return nil, domainerrors.ErrValidationFailed
	}

	srv.log(ctx).Info("Starting sign-up", slog.String("email", input.Email))

	hash, err := srv.hasher.Hash(input.Password)
	if err != nil {
		srv.log(ctx).Error("Failed to hash password", slog.Any("error", err))

		return nil, domainerrors.ErrAccountCreationFailed.WrapMessage("failed to hash password")
	}

	account := &entity.Account{
		ID:           uuid.New(),
		Username:     input.Username,
		Email:        input.Email,
		PasswordHash: hash,
		Image:        input.Image,
	}

	if err := srv.accountRepo.Create(ctx, account); err != nil {
		srv.log(ctx).Error("Failed to create account",
			slog.String("email", input.Email),
			slog.Bool("duplicate", errors.Is(err, repository.ErrAccountAlreadyExists)),
			slog.Any("error", err),
		)

		return nil, domainerrors.ErrAccountCreationFailed.WrapMessage("failed to create account")
	}

	srv.log(ctx).Debug("Sign-up completed", slog.Any("accountID", account.ID))

	return &usecase.AccountOutput{User: usecase.NewAccountProjection(account)}, nil
}

// SignIn verifies the password of the account registered under the email.
func (srv *accountService) SignIn(ctx context.Context, input *usecase.SignInInput) (*usecase.AccountOutput, error) {
	if input == nil {
		input = &usecase.SignInInput{}
	}

	account, err := srv.accountRepo.FindByEmail(ctx, input.Email)
	if errors.Is(err, repository.ErrAccountNotFound) {
		srv.log(ctx).Info("Sign-in for unknown email", slog.String("email", input.Email))

		return nil, domainerrors.ErrAccountNotFound.WithMessage("User not found. Please sign up first.")
	}
	if err != nil {
		srv.log(ctx).Error("Failed to find account", slog.String("email", input.Email), slog.Any("error", err))

		return nil, domainerrors.ErrInternalError.WrapMessage("failed to find account")
	}

	if !srv.hasher.Check(input.Password, account.PasswordHash) {
		srv.log(ctx).Info("Sign-in with invalid password", slog.Any("accountID", account.ID))

		return nil, domainerrors.ErrInvalidCredentials
	}

	return &usecase.AccountOutput{User: usecase.NewAccountProjection(account)}, nil
}

// UpdateProfile merges the non-empty input fields into the account found by email and saves it once.
func (srv *accountService) UpdateProfile(ctx context.Context, input *usecase.UpdateProfileInput) (*usecase.AccountOutput, error) {
	if input == nil {
		input = &usecase.UpdateProfileInput{}
	}

	account, err := srv.accountRepo.FindByEmail(ctx, input.Email)
	if errors.Is(err, repository.ErrAccountNotFound) {
		return nil, domainerrors.ErrAccountNotFound
	}
	if err != nil {
		srv.log(ctx).Error("Failed to find account", slog.String("email", input.Email), slog.Any("error", err))

		return nil, domainerrors.ErrInternalError.WrapMessage("failed to find account")
	}

	if err := srv.applyProfileChanges(account, input); err != nil {
		srv.log(ctx).Error("Failed to hash password", slog.Any("accountID", account.ID), slog.Any("error", err))

		return nil, domainerrors.ErrInternalError.WrapMessage("failed to hash password")
	}

	if err := srv.accountRepo.Save(ctx, account); err != nil {
		srv.log(ctx).Error("Failed to save account",
			slog.Any("accountID", account.ID),
			slog.Bool("duplicate", errors.Is(err, repository.ErrAccountAlreadyExists)),
			slog.Any("error", err),
		)

		return nil, domainerrors.ErrInternalError.WrapMessage("failed to save account")
	}

	srv.log(ctx).Debug("Profile updated", slog.Any("accountID", account.ID))

	return &usecase.AccountOutput{User: usecase.NewAccountProjection(account)}, nil
}

func (srv *accountService) applyProfileChanges(account *entity.Account, input *usecase.UpdateProfileInput) error {
	if input.Username != "" {
		account.Username = input.Username
	}
	if input.NewEmail != "" {
		account.Email = input.NewEmail
	}
	if input.Image != "" {
		account.Image = input.Image
	}
	if input.Password != "" {
		hash, err := srv.hasher.Hash(input.Password)
		if err != nil {
			return errors.Wrap(err, "failed to hash password")
		}
		account.PasswordHash = hash
	}

	return nil
}
