package repositories

import (
	"context"
	"errors"

	"feastly.backend/internal/domain/entities"
	domainerrors "feastly.backend/internal/domain/errors"
	"feastly.backend/internal/infrastructure/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// UserRepository implements account data operations
type UserRepository struct {
	db *gorm.DB
}

// NewUserRepository creates a new user repository
func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{db: db}
}

// Create creates a new account. The model hook hashes the password
// before the row is written; the hash is copied back onto the entity.
func (r *UserRepository) Create(ctx context.Context, account *entities.Account) error {
	m := &models.Account{
		ID:       account.ID,
		Email:    account.Email,
		Password: account.Password,
		Role:     string(account.Role),
		Verified: account.Verified,
	}

	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}

	account.ID = m.ID
	account.Password = m.Password
	account.CreatedAt = m.CreatedAt
	account.UpdatedAt = m.UpdatedAt
	return nil
}

// GetByID gets an account by ID
func (r *UserRepository) GetByID(ctx context.Context, id uuid.UUID) (*entities.Account, error) {
	var m models.Account
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return toAccountEntity(&m), nil
}

// GetByEmail gets an account by email
func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*entities.Account, error) {
	var m models.Account
	if err := r.db.WithContext(ctx).Where("email = ?", email).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return toAccountEntity(&m), nil
}

// Save persists the current state of an account. A plaintext password
// set by the caller is hashed by the model hook on the way down.
func (r *UserRepository) Save(ctx context.Context, account *entities.Account) error {
	m := &models.Account{
		ID:        account.ID,
		Email:     account.Email,
		Password:  account.Password,
		Role:      string(account.Role),
		Verified:  account.Verified,
		CreatedAt: account.CreatedAt,
	}

	result := r.db.WithContext(ctx).Model(m).Select("email", "password", "role", "verified").Updates(m)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrNotFound
	}

	account.Password = m.Password
	return nil
}

func toAccountEntity(m *models.Account) *entities.Account {
	return &entities.Account{
		ID:        m.ID,
		Email:     m.Email,
		Password:  m.Password,
		Role:      entities.UserRole(m.Role),
		Verified:  m.Verified,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}
