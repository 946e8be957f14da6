// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"

	deliverycontext "signup/internal/delivery/context"
	"signup/internal/domain/entity"
	"signup/internal/domain/repository"
	"signup/internal/domain/service"
	"signup/internal/errors"
	"signup/internal/usecase"

	"go.uber.org/fx"
)

// ErrAccountNotReturned is returned when the store reports success without an account.
var ErrAccountNotReturned = errors.New("account store returned no account")

// addAccountService implements usecase.AddAccount on top of the account store.
type addAccountService struct {
	hasher      service.PasswordHasher
	accountRepo repository.AccountRepository
	logger      *slog.Logger
}

// AddAccountServiceParams holds dependencies for AddAccountService, injected by Fx.
type AddAccountServiceParams struct {
	fx.In

	Hasher      service.PasswordHasher
	AccountRepo repository.AccountRepository
	Logger      *slog.Logger
}

// NewAddAccountService is the constructor for addAccountService.
func NewAddAccountService(params AddAccountServiceParams) usecase.AddAccount {
	return &addAccountService{
		hasher:      params.Hasher,
		accountRepo: params.AccountRepo,
		logger:      params.Logger,
	}
}

// Add hashes the password and stores the account. The store's result is
// returned as is; errors are wrapped but never swallowed.
func (srv *addAccountService) Add(ctx context.Context, input usecase.AddAccountInput) (*entity.Account, error) {
	logger := deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
	logger.Debug("Starting account signup", slog.String("email", input.Email))

	hashedPassword, err := srv.hasher.Hash(input.Password)
	if err != nil {
		return nil, errors.Wrap(err, "failed to hash password during signup")
	}

	account, err := srv.accountRepo.Add(ctx, &entity.Account{
		Name:     input.Name,
		Email:    input.Email,
		Password: hashedPassword,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to store account")
	}

	if account == nil {
		return nil, ErrAccountNotReturned
	}

	logger.Info("Account created", slog.String("accountID", account.ID))

	return account, nil
}
