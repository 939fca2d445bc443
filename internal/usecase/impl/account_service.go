// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"

	deliverycontext "doorman/internal/delivery/context"
	"doorman/internal/domain/entity"
	domainerrors "doorman/internal/domain/errors"
	"doorman/internal/domain/repository"
	"doorman/internal/domain/service"
	"doorman/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// accountService implements the AccountUsecase interface.
type accountService struct {
	txManager   repository.TransactionManager
	accountRepo repository.AccountRepository
	hasher      service.PasswordHasher
	logger      *slog.Logger
}

// AccountServiceParams holds dependencies for the account service, injected by Fx.
type AccountServiceParams struct {
	fx.In

	TxManager   repository.TransactionManager
	AccountRepo repository.AccountRepository
	Hasher      service.PasswordHasher
	Logger      *slog.Logger
}

// NewAccountService is the constructor for accountService. It receives all dependencies as interfaces.
func NewAccountService(params AccountServiceParams) usecase.AccountUsecase {
	return &accountService{
		txManager:   params.TxManager,
		accountRepo: params.AccountRepo,
		hasher:      params.Hasher,
		logger:      params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *accountService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Signup orchestrates account creation: validate, check uniqueness, hash, persist.
func (srv *accountService) Signup(ctx context.Context, input *usecase.SignupInput) (*usecase.SignupOutput, error) {
	if input == nil {
		return nil, errors.WithStack(domainerrors.ErrMissingFields)
	}
	if err := input.Validate(); err != nil {
		return nil, errors.WithStack(err)
	}

	srv.log(ctx).Debug("Starting signup", slog.String("email", input.Email))

	// Existence pre-check before hashing, so a conflicting request never pays
	// the bcrypt cost. The store's unique index remains the real guarantee.
	_, err := srv.accountRepo.FindByEmail(ctx, input.Email)
	if err == nil {
		srv.log(ctx).Warn("Signup rejected, email taken", slog.String("email", input.Email))

		return nil, errors.Wrap(domainerrors.ErrEmailTaken, "signup pre-check")
	}
	if !errors.Is(err, repository.ErrAccountNotFound) {
		srv.log(ctx).Error("Signup pre-check failed", slog.String("email", input.Email), slog.Any("error", err))

		return nil, domainerrors.NewStoreError(err, "failed to query account by email")
	}

	// Hashing runs outside any transaction; it is CPU-bound and must not
	// hold a store connection.
	hash, err := srv.hasher.Hash(input.Password)
	if err != nil {
		srv.log(ctx).Error("Failed to hash password during signup", slog.Any("error", err))

		return nil, errors.Wrap(domainerrors.ErrHashingFailed, "failed to hash password")
	}

	account := &entity.Account{
		FullName:     input.FullName,
		Company:      input.Company,
		Email:        input.Email,
		PasswordHash: hash,
	}

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		return repoFactory.AccountRepo().Create(ctx, account)
	})
	if err != nil {
		// A concurrent signup may have won the race past the pre-check. The
		// unique index rejects the second write; map it to the same conflict.
		if errors.Is(err, repository.ErrDuplicateEmail) {
			srv.log(ctx).Warn("Signup lost uniqueness race", slog.String("email", input.Email))

			return nil, errors.Wrap(domainerrors.ErrEmailTaken, "signup insert")
		}

		srv.log(ctx).Error("Failed to persist account", slog.String("email", input.Email), slog.Any("error", err))

		return nil, domainerrors.NewStoreError(err, "failed to create account")
	}

	srv.log(ctx).Info("Signup completed", slog.Any("accountID", account.ID), slog.String("email", account.Email))

	return &usecase.SignupOutput{Account: account}, nil
}

// Login verifies the supplied credentials against the stored hash.
func (srv *accountService) Login(ctx context.Context, input *usecase.LoginInput) (*usecase.LoginOutput, error) {
	if input == nil {
		return nil, errors.WithStack(domainerrors.ErrMissingCredentials)
	}
	if err := input.Validate(); err != nil {
		return nil, errors.WithStack(err)
	}

	srv.log(ctx).Debug("Starting login", slog.String("email", input.Email))

	account, err := srv.accountRepo.FindByEmail(ctx, input.Email)
	if err != nil {
		if errors.Is(err, repository.ErrAccountNotFound) {
			// Same outward failure as a wrong password.
			srv.log(ctx).Warn("Login failed", slog.String("email", input.Email))

			return nil, errors.Wrap(domainerrors.ErrInvalidCredentials, "login lookup")
		}

		srv.log(ctx).Error("Login lookup failed", slog.String("email", input.Email), slog.Any("error", err))

		return nil, domainerrors.NewStoreError(err, "failed to query account by email")
	}

	// bcrypt comparison is CPU-bound and runs with no store resources held.
	if !srv.hasher.Check(input.Password, account.PasswordHash) {
		srv.log(ctx).Warn("Login failed", slog.String("email", input.Email))

		return nil, errors.Wrap(domainerrors.ErrInvalidCredentials, "login verify")
	}

	srv.log(ctx).Debug("Login succeeded", slog.Any("accountID", account.ID))

	return &usecase.LoginOutput{Account: account}, nil
}
