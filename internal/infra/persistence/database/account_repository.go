package database

import (
	"context"

	"morrison/internal/domain/entity"
	domainerrors "morrison/internal/domain/errors"
	"morrison/internal/domain/repository"
	"morrison/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// moderationColumns maps each moderation flag to the column it controls.
var moderationColumns = map[entity.ModerationFlag]string{
	entity.FlagBanned:   "banned",
	entity.FlagDisabled: "disabled",
}

// accountRepository implements repository.AccountRepository using GORM.
type accountRepository struct {
	db *gorm.DB
}

// NewAccountRepository is the constructor for accountRepository.
func NewAccountRepository(db *gorm.DB) repository.AccountRepository {
	return &accountRepository{db: db}
}

// Create inserts a new account. Duplicate usernames are rejected by the unique index, never by a pre-read.
func (repo *accountRepository) Create(ctx context.Context, account *entity.Account) error {
	accountM := fromAccountDomain(account)

	if err := repo.db.WithContext(ctx).Create(accountM).Error; err != nil {
		return translateWriteError(err, "failed to create account")
	}

	account.ID = accountM.ID
	account.CreatedAt = accountM.CreatedAt
	account.UpdatedAt = accountM.UpdatedAt

	return nil
}

// FindByUsername retrieves an account by exact, case-sensitive username.
func (repo *accountRepository) FindByUsername(ctx context.Context, username string) (*entity.Account, error) {
	var accountM model.AccountModel
	if err := repo.db.WithContext(ctx).Where("username = ?", username).First(&accountM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrAccountNotFound
		}

		return nil, errors.Wrap(err, "failed to find account by username")
	}

	return toAccountDomain(&accountM), nil
}

// FindByID retrieves an account by its identifier.
func (repo *accountRepository) FindByID(ctx context.Context, id int64) (*entity.Account, error) {
	var accountM model.AccountModel
	if err := repo.db.WithContext(ctx).Where("id = ?", id).First(&accountM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrAccountNotFound
		}

		return nil, errors.Wrap(err, "failed to find account by id")
	}

	return toAccountDomain(&accountM), nil
}

// UpdateFields issues a single UPDATE over the requested columns and reloads the row in the same transaction.
// A username collision rolls the whole statement back.
func (repo *accountRepository) UpdateFields(ctx context.Context, id int64, update repository.AccountUpdate) (*entity.Account, error) {
	columns := updateColumns(update)
	if len(columns) == 0 {
		return repo.FindByID(ctx, id)
	}

	var accountM model.AccountModel
	err := repo.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Model(&model.AccountModel{}).Where("id = ?", id).Updates(columns)
		if result.Error != nil {
			return translateWriteError(result.Error, "failed to update account")
		}
		if result.RowsAffected == 0 {
			return repository.ErrAccountNotFound
		}

		return errors.Wrap(tx.Where("id = ?", id).First(&accountM).Error, "failed to reload account")
	})
	if err != nil {
		return nil, err
	}

	return toAccountDomain(&accountM), nil
}

// SetModerationFlag flips one moderation column for the named account.
func (repo *accountRepository) SetModerationFlag(ctx context.Context, username string, flag entity.ModerationFlag, value bool) (*entity.Account, error) {
	column, ok := moderationColumns[flag]
	if !ok {
		return nil, domainerrors.ErrValidationFailed.WithDetails("unknown moderation flag " + flag.String())
	}

	var accountM model.AccountModel
	err := repo.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Model(&model.AccountModel{}).Where("username = ?", username).Update(column, value)
		if result.Error != nil {
			return errors.Wrap(result.Error, "failed to set moderation flag")
		}
		if result.RowsAffected == 0 {
			return repository.ErrAccountNotFound
		}

		return errors.Wrap(tx.Where("username = ?", username).First(&accountM).Error, "failed to reload account")
	})
	if err != nil {
		return nil, err
	}

	return toAccountDomain(&accountM), nil
}

// List returns every account ordered by ID.
func (repo *accountRepository) List(ctx context.Context) ([]*entity.Account, error) {
	var accountMs []*model.AccountModel
	if err := repo.db.WithContext(ctx).Order("id ASC").Find(&accountMs).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list accounts")
	}

	accounts := make([]*entity.Account, 0, len(accountMs))
	for _, accountM := range accountMs {
		accounts = append(accounts, toAccountDomain(accountM))
	}

	return accounts, nil
}

// updateColumns turns the typed update into the fixed set of column assignments.
func updateColumns(update repository.AccountUpdate) map[string]any {
	columns := make(map[string]any, 3)
	if update.Username != nil {
		columns["username"] = *update.Username
	}
	if update.PasswordHash != nil {
		columns["password_hash"] = *update.PasswordHash
	}
	if update.AvatarRef != nil {
		columns["avatar_ref"] = *update.AvatarRef
	}

	return columns
}

func translateWriteError(err error, message string) error {
	if isUniqueConstraintViolation(err) {
		return domainerrors.ErrUsernameTaken.WrapMessage(message)
	}
	if isCheckConstraintViolation(err) {
		return domainerrors.ErrValidationFailed.WithDetails("username must not be empty")
	}

	return errors.Wrap(err, message)
}

// --- Mapper Functions ---

func toAccountDomain(data *model.AccountModel) *entity.Account {
	if data == nil {
		return nil
	}

	return &entity.Account{
		ID:           data.ID,
		Username:     data.Username,
		PasswordHash: data.PasswordHash,
		AvatarRef:    data.AvatarRef,
		Banned:       data.Banned,
		Disabled:     data.Disabled,
		CreatedAt:    data.CreatedAt,
		UpdatedAt:    data.UpdatedAt,
	}
}

func fromAccountDomain(data *entity.Account) *model.AccountModel {
	if data == nil {
		return nil
	}

	return &model.AccountModel{
		ID:           data.ID,
		Username:     data.Username,
		PasswordHash: data.PasswordHash,
		AvatarRef:    data.AvatarRef,
		Banned:       data.Banned,
		Disabled:     data.Disabled,
	}
}
