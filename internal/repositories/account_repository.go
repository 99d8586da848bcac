package repositories

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"travelstar/internal/models/db_models"
)

var (
	// ErrDuplicateKey is returned by Create when the username is taken.
	ErrDuplicateKey = errors.New("duplicate key")
	// ErrAccountNotFound is returned when a plan is written for an unknown user.
	ErrAccountNotFound = errors.New("account not found")
)

type AccountRepository interface {
	Create(ctx context.Context, account *db_models.Account) error
	// FindByUsername returns nil, nil when no account has that username.
	FindByUsername(ctx context.Context, username string) (*db_models.Account, error)
}

type accountRepository struct {
	db *gorm.DB
}

func NewAccountRepository(db *gorm.DB) AccountRepository {
	return &accountRepository{
		db: db,
	}
}

func (a *accountRepository) Create(ctx context.Context, account *db_models.Account) error {
	err := a.db.WithContext(ctx).Create(account).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return ErrDuplicateKey
	}
	return err
}

func (a *accountRepository) FindByUsername(ctx context.Context, username string) (*db_models.Account, error) {
	var account db_models.Account
	err := a.db.WithContext(ctx).First(&account, "username = ?", username).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return &account, nil
}
