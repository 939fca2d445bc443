package postgres

import (
	"context"

	"doorman/internal/domain/entity"
	"doorman/internal/domain/repository"
	"doorman/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// accountRepository implements the domain's AccountRepository interface using GORM.
type accountRepository struct {
	db *gorm.DB
}

// NewAccountRepository is the constructor for accountRepository.
// It returns the repository as a repository.AccountRepository interface, adhering to dependency inversion.
func NewAccountRepository(db *gorm.DB) repository.AccountRepository {
	return &accountRepository{db: db}
}

// FindByEmail retrieves a single account by exact email match.
func (repo *accountRepository) FindByEmail(ctx context.Context, email string) (*entity.Account, error) {
	var accountM model.AccountModel
	err := repo.db.WithContext(ctx).
		Where("email = ?", email).
		First(&accountM).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrAccountNotFound
		}

		return nil, errors.Wrap(err, "failed to find account by email")
	}

	return toAccountDomain(&accountM), nil
}

// Create persists a new account. A unique-index violation on email becomes
// the domain's ErrDuplicateEmail so the usecase can map the lost race to a
// conflict response.
func (repo *accountRepository) Create(ctx context.Context, account *entity.Account) error {
	accountM := fromAccountDomain(account)

	if err := repo.db.WithContext(ctx).Create(accountM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrDuplicateEmail
		}

		return errors.Wrap(err, "failed to create account")
	}

	// Propagate store-generated fields back to the entity.
	account.ID = accountM.ID
	account.CreatedAt = accountM.CreatedAt

	return nil
}

// toAccountDomain maps the persistence model to a pure domain entity.
func toAccountDomain(m *model.AccountModel) *entity.Account {
	return &entity.Account{
		ID:           m.ID,
		FullName:     m.FullName,
		Company:      m.Company,
		Email:        m.Email,
		PasswordHash: m.PasswordHash,
		CreatedAt:    m.CreatedAt,
	}
}

// fromAccountDomain maps a domain entity to the GORM persistence model.
func fromAccountDomain(a *entity.Account) *model.AccountModel {
	return &model.AccountModel{
		ID:           a.ID,
		FullName:     a.FullName,
		Company:      a.Company,
		Email:        a.Email,
		PasswordHash: a.PasswordHash,
		CreatedAt:    a.CreatedAt,
	}
}
