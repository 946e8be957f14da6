package postgres

import (
	"context"

	"signup/internal/domain/entity"
	"signup/internal/domain/repository"
	"signup/internal/errors"
	"signup/internal/infra/persistence/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// accountRepository implements repository.AccountRepository using GORM.
type accountRepository struct {
	db *gorm.DB
}

// NewAccountRepository is the constructor for accountRepository.
func NewAccountRepository(db *gorm.DB) repository.AccountRepository {
	return &accountRepository{db: db}
}

// Add inserts the account and reads the row back by its generated ID.
func (repo *accountRepository) Add(ctx context.Context, account *entity.Account) (*entity.Account, error) {
	accountM := fromAccountDomain(account)

	if err := repo.db.WithContext(ctx).Create(accountM).Error; err != nil {
		if isNotNullConstraintViolation(err) {
			return nil, errors.Wrap(err, "missing required account information")
		}

		return nil, errors.Wrap(err, "failed to insert account")
	}

	var stored model.AccountModel
	if err := repo.db.WithContext(ctx).Where("id = ?", accountM.ID).First(&stored).Error; err != nil {
		return nil, errors.Wrap(err, "failed to read inserted account")
	}

	return toAccountDomain(&stored), nil
}

// fromAccountDomain leaves ID zero so the database default assigns it.
func fromAccountDomain(data *entity.Account) *model.AccountModel {
	return &model.AccountModel{
		ID:       uuid.Nil,
		Name:     data.Name,
		Email:    data.Email,
		Password: data.Password,
	}
}

func toAccountDomain(data *model.AccountModel) *entity.Account {
	return &entity.Account{
		ID:       data.ID.String(),
		Name:     data.Name,
		Email:    data.Email,
		Password: data.Password,
	}
}
