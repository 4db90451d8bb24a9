package usecases

import (
	"context"
	"errors"

	"feastly.backend/internal/domain/entities"
	domainerrors "feastly.backend/internal/domain/errors"
	"feastly.backend/internal/domain/repositories"
	"github.com/google/uuid"
)

// VerificationUsecase manages the verification code lifecycle. Mail
// delivery is not its concern; callers dispatch the code themselves.
type VerificationUsecase struct {
	verifications repositories.VerificationRepository
	users         repositories.UserRepository
}

// NewVerificationUsecase creates a new verification usecase
func NewVerificationUsecase(
	verifications repositories.VerificationRepository,
	users repositories.UserRepository,
) *VerificationUsecase {
	return &VerificationUsecase{
		verifications: verifications,
		users:         users,
	}
}

// Issue creates a fresh verification record for the account. The caller
// must have removed any prior record for this account.
func (u *VerificationUsecase) Issue(ctx context.Context, accountID uuid.UUID) (*entities.Verification, error) {
	return u.verifications.Create(ctx, accountID)
}

// Redeem consumes a verification code: the owning account is marked
// verified, persisted, and the record deleted so the code is single-use.
func (u *VerificationUsecase) Redeem(ctx context.Context, code string) error {
	verification, err := u.verifications.GetByCode(ctx, code)
	if err != nil {
		if errors.Is(err, domainerrors.ErrNotFound) {
			return domainerrors.ErrVerificationNotFound
		}
		return err
	}

	account := verification.Account
	account.Verified = true
	if err := u.users.Save(ctx, account); err != nil {
		return err
	}

	return u.verifications.Delete(ctx, verification.ID)
}
