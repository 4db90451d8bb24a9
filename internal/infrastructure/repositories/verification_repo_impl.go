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

// VerificationRepository implements verification record operations
type VerificationRepository struct {
	db *gorm.DB
}

// NewVerificationRepository creates a new verification repository
func NewVerificationRepository(db *gorm.DB) *VerificationRepository {
	return &VerificationRepository{db: db}
}

// Create creates a verification record for an account. The model hook
// assigns the opaque code; callers must have removed any prior record
// for this account first.
func (r *VerificationRepository) Create(ctx context.Context, accountID uuid.UUID) (*entities.Verification, error) {
	m := &models.Verification{AccountID: accountID}

	if err := r.db.WithContext(ctx).Omit("Account").Create(m).Error; err != nil {
		return nil, err
	}

	return &entities.Verification{
		ID:        m.ID,
		Code:      m.Code,
		AccountID: m.AccountID,
		CreatedAt: m.CreatedAt,
	}, nil
}

// GetByCode gets a verification record by code, with its owning account
func (r *VerificationRepository) GetByCode(ctx context.Context, code string) (*entities.Verification, error) {
	var m models.Verification
	err := r.db.WithContext(ctx).
		Preload("Account").
		Where("code = ?", code).
		First(&m).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}

	return &entities.Verification{
		ID:        m.ID,
		Code:      m.Code,
		AccountID: m.AccountID,
		CreatedAt: m.CreatedAt,
		Account:   toAccountEntity(&m.Account),
	}, nil
}

// Delete removes a consumed verification record
func (r *VerificationRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&models.Verification{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrNotFound
	}
	return nil
}

// DeleteByAccount removes any verification record held by an account.
// Removing zero rows is not an error; it just means none was live.
func (r *VerificationRepository) DeleteByAccount(ctx context.Context, accountID uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&models.Verification{}, "account_id = ?", accountID).Error
}
