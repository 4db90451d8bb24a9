package usecases

import (
	"context"
	"errors"

	"feastly.backend/internal/domain/entities"
	domainerrors "feastly.backend/internal/domain/errors"
	"feastly.backend/internal/domain/repositories"
	"feastly.backend/pkg/crypto"
	"feastly.backend/pkg/jwt"
	"feastly.backend/pkg/logger"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// MailDispatcher delivers verification mail. Implementations must not
// block; dispatch outcome never reaches the calling operation.
type MailDispatcher interface {
	SendVerificationEmail(email, code string)
}

// UserUsecase orchestrates account operations. Every public operation
// returns an outcome struct; failures are converted to reasons locally
// and no error crosses the API boundary.
type UserUsecase struct {
	users         repositories.UserRepository
	verifications *VerificationUsecase
	verifRepo     repositories.VerificationRepository
	tokens        *jwt.Service
	mailer        MailDispatcher
}

// NewUserUsecase creates a new user usecase
func NewUserUsecase(
	users repositories.UserRepository,
	verifRepo repositories.VerificationRepository,
	verifications *VerificationUsecase,
	tokens *jwt.Service,
	mailer MailDispatcher,
) *UserUsecase {
	return &UserUsecase{
		users:         users,
		verifications: verifications,
		verifRepo:     verifRepo,
		tokens:        tokens,
		mailer:        mailer,
	}
}

// CreateAccount registers a new account and issues its verification
// code. The account is created even when mail dispatch later fails.
func (u *UserUsecase) CreateAccount(ctx context.Context, input *entities.CreateAccountInput) *entities.CreateAccountOutput {
	_, err := u.users.GetByEmail(ctx, input.Email)
	if err == nil {
		return &entities.CreateAccountOutput{Error: entities.Reason(domainerrors.ReasonDuplicateEmail)}
	}
	if !errors.Is(err, domainerrors.ErrNotFound) {
		logger.Error(ctx, "Account lookup failed", zap.Error(err))
		return &entities.CreateAccountOutput{Error: entities.Reason(domainerrors.ReasonCreateAccountFailed)}
	}

	account := &entities.Account{
		Email:    input.Email,
		Password: input.Password,
		Role:     input.Role,
	}
	if err := u.users.Create(ctx, account); err != nil {
		logger.Error(ctx, "Account creation failed", zap.Error(err))
		return &entities.CreateAccountOutput{Error: entities.Reason(domainerrors.ReasonCreateAccountFailed)}
	}

	verification, err := u.verifications.Issue(ctx, account.ID)
	if err != nil {
		logger.Error(ctx, "Verification issue failed", zap.Error(err))
		return &entities.CreateAccountOutput{Error: entities.Reason(domainerrors.ReasonCreateAccountFailed)}
	}

	u.mailer.SendVerificationEmail(account.Email, verification.Code)

	return &entities.CreateAccountOutput{Ok: true}
}

// Login checks credentials and returns a signed token
func (u *UserUsecase) Login(ctx context.Context, input *entities.LoginInput) *entities.LoginOutput {
	account, err := u.users.GetByEmail(ctx, input.Email)
	if err != nil {
		if errors.Is(err, domainerrors.ErrNotFound) {
			return &entities.LoginOutput{Error: entities.Reason(domainerrors.ReasonUserNotFound)}
		}
		logger.Error(ctx, "Login lookup failed", zap.Error(err))
		return &entities.LoginOutput{Error: entities.Reason(domainerrors.ReasonLoginFailed)}
	}

	if !crypto.CheckPassword(input.Password, account.Password) {
		return &entities.LoginOutput{Error: entities.Reason(domainerrors.ReasonWrongPassword)}
	}

	token, err := u.tokens.Sign(account.ID)
	if err != nil {
		logger.Error(ctx, "Token signing failed", zap.Error(err))
		return &entities.LoginOutput{Error: entities.Reason(domainerrors.ReasonLoginFailed)}
	}

	return &entities.LoginOutput{Ok: true, Token: &token}
}

// FindByID loads an account. Used by the access guard to resolve the
// caller from a decoded token.
func (u *UserUsecase) FindByID(ctx context.Context, id uuid.UUID) (*entities.Account, error) {
	account, err := u.users.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domainerrors.ErrNotFound) {
			return nil, domainerrors.ErrUserNotFound
		}
		return nil, err
	}
	return account, nil
}

// UserProfile wraps FindByID in the outcome shape
func (u *UserUsecase) UserProfile(ctx context.Context, id uuid.UUID) *entities.UserProfileOutput {
	account, err := u.FindByID(ctx, id)
	if err != nil {
		return &entities.UserProfileOutput{Error: entities.Reason(domainerrors.ReasonProfileNotFound)}
	}
	return &entities.UserProfileOutput{Ok: true, User: account}
}

// EditProfile updates email and/or password. An email change resets the
// verified flag, replaces the live verification record and dispatches a
// new code. Both changes persist through a single save at the end.
func (u *UserUsecase) EditProfile(ctx context.Context, accountID uuid.UUID, input *entities.EditProfileInput) *entities.EditProfileOutput {
	account, err := u.users.GetByID(ctx, accountID)
	if err != nil {
		return &entities.EditProfileOutput{Error: entities.Reason(domainerrors.ReasonEditProfileFailed)}
	}

	if input.Email != nil && *input.Email != account.Email {
		account.Email = *input.Email
		account.Verified = false

		if err := u.verifRepo.DeleteByAccount(ctx, account.ID); err != nil {
			logger.Error(ctx, "Stale verification cleanup failed", zap.Error(err))
			return &entities.EditProfileOutput{Error: entities.Reason(domainerrors.ReasonEditProfileFailed)}
		}
		verification, err := u.verifications.Issue(ctx, account.ID)
		if err != nil {
			logger.Error(ctx, "Verification reissue failed", zap.Error(err))
			return &entities.EditProfileOutput{Error: entities.Reason(domainerrors.ReasonEditProfileFailed)}
		}
		u.mailer.SendVerificationEmail(account.Email, verification.Code)
	}

	if input.Password != nil {
		account.Password = *input.Password
	}

	if err := u.users.Save(ctx, account); err != nil {
		logger.Error(ctx, "Profile save failed", zap.Error(err))
		return &entities.EditProfileOutput{Error: entities.Reason(domainerrors.ReasonEditProfileFailed)}
	}

	return &entities.EditProfileOutput{Ok: true}
}

// VerifyEmail redeems a verification code
func (u *UserUsecase) VerifyEmail(ctx context.Context, code string) *entities.VerifyEmailOutput {
	if err := u.verifications.Redeem(ctx, code); err != nil {
		if errors.Is(err, domainerrors.ErrVerificationNotFound) {
			return &entities.VerifyEmailOutput{Error: entities.Reason(domainerrors.ReasonVerificationNotFound)}
		}
		logger.Error(ctx, "Verification redeem failed", zap.Error(err))
		return &entities.VerifyEmailOutput{Error: entities.Reason(domainerrors.ReasonVerifyEmailFailed)}
	}
	return &entities.VerifyEmailOutput{Ok: true}
}
