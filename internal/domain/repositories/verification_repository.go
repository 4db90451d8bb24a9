package repositories

import (
	"context"

	"feastly.backend/internal/domain/entities"
	"github.com/google/uuid"
)

// VerificationRepository defines verification record persistence
// operations. Records are hard-deleted on consumption so the
// one-record-per-account invariant survives reissue.
type VerificationRepository interface {
	Create(ctx context.Context, accountID uuid.UUID) (*entities.Verification, error)
	GetByCode(ctx context.Context, code string) (*entities.Verification, error)
	Delete(ctx context.Context, id uuid.UUID) error
	DeleteByAccount(ctx context.Context, accountID uuid.UUID) error
}
