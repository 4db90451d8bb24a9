package usecases_test

import (
	"context"
	"errors"
	"testing"

	"feastly.backend/internal/domain/entities"
	domainerrors "feastly.backend/internal/domain/errors"
	"feastly.backend/internal/usecases"
	"feastly.backend/pkg/crypto"
	"feastly.backend/pkg/jwt"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newUserUsecaseForTest(
	userRepo *MockUserRepository,
	verifRepo *MockVerificationRepository,
	mailer *MockMailDispatcher,
) *usecases.UserUsecase {
	tokens := jwt.NewService("test-secret", 0)
	verifications := usecases.NewVerificationUsecase(verifRepo, userRepo)
	return usecases.NewUserUsecase(userRepo, verifRepo, verifications, tokens, mailer)
}

func TestUserUsecase_CreateAccount_DuplicateEmail(t *testing.T) {
	userRepo := new(MockUserRepository)
	verifRepo := new(MockVerificationRepository)
	mailer := new(MockMailDispatcher)
	uc := newUserUsecaseForTest(userRepo, verifRepo, mailer)

	userRepo.On("GetByEmail", context.Background(), "taken@x.com").
		Return(&entities.Account{ID: uuid.New()}, nil).Once()

	out := uc.CreateAccount(context.Background(), &entities.CreateAccountInput{
		Email:    "taken@x.com",
		Password: "12345",
		Role:     entities.UserRoleOwner,
	})

	assert.False(t, out.Ok)
	require.NotNil(t, out.Error)
	assert.Equal(t, domainerrors.ReasonDuplicateEmail, *out.Error)
	userRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	mailer.AssertNotCalled(t, "SendVerificationEmail", mock.Anything, mock.Anything)
}

func TestUserUsecase_CreateAccount_Success(t *testing.T) {
	userRepo := new(MockUserRepository)
	verifRepo := new(MockVerificationRepository)
	mailer := new(MockMailDispatcher)
	uc := newUserUsecaseForTest(userRepo, verifRepo, mailer)

	accountID := uuid.New()
	userRepo.On("GetByEmail", context.Background(), "a@x.com").
		Return(nil, domainerrors.ErrNotFound).Once()
	userRepo.On("Create", context.Background(), mock.MatchedBy(func(a *entities.Account) bool {
		return a.Email == "a@x.com" && a.Role == entities.UserRoleOwner
	})).Run(func(args mock.Arguments) {
		args.Get(1).(*entities.Account).ID = accountID
	}).Return(nil).Once()
	verifRepo.On("Create", context.Background(), accountID).
		Return(&entities.Verification{ID: uuid.New(), Code: "opaque-code", AccountID: accountID}, nil).Once()
	mailer.On("SendVerificationEmail", "a@x.com", "opaque-code").Once()

	out := uc.CreateAccount(context.Background(), &entities.CreateAccountInput{
		Email:    "a@x.com",
		Password: "12345",
		Role:     entities.UserRoleOwner,
	})

	assert.True(t, out.Ok)
	assert.Nil(t, out.Error)
	userRepo.AssertExpectations(t)
	verifRepo.AssertExpectations(t)
	mailer.AssertExpectations(t)
}

func TestUserUsecase_CreateAccount_PersistenceFailure(t *testing.T) {
	userRepo := new(MockUserRepository)
	verifRepo := new(MockVerificationRepository)
	mailer := new(MockMailDispatcher)
	uc := newUserUsecaseForTest(userRepo, verifRepo, mailer)

	userRepo.On("GetByEmail", context.Background(), "a@x.com").
		Return(nil, domainerrors.ErrNotFound).Once()
	userRepo.On("Create", context.Background(), mock.Anything).
		Return(errors.New("connection reset")).Once()

	out := uc.CreateAccount(context.Background(), &entities.CreateAccountInput{
		Email:    "a@x.com",
		Password: "12345",
		Role:     entities.UserRoleClient,
	})

	assert.False(t, out.Ok)
	require.NotNil(t, out.Error)
	assert.Equal(t, domainerrors.ReasonCreateAccountFailed, *out.Error)
	mailer.AssertNotCalled(t, "SendVerificationEmail", mock.Anything, mock.Anything)
}

func TestUserUsecase_Login_UserNotFound(t *testing.T) {
	userRepo := new(MockUserRepository)
	uc := newUserUsecaseForTest(userRepo, new(MockVerificationRepository), new(MockMailDispatcher))

	userRepo.On("GetByEmail", context.Background(), "ghost@x.com").
		Return(nil, domainerrors.ErrNotFound).Once()

	out := uc.Login(context.Background(), &entities.LoginInput{Email: "ghost@x.com", Password: "12345"})

	assert.False(t, out.Ok)
	require.NotNil(t, out.Error)
	assert.Equal(t, "User not found!", *out.Error)
	assert.Nil(t, out.Token)
}

func TestUserUsecase_Login_WrongPassword(t *testing.T) {
	userRepo := new(MockUserRepository)
	uc := newUserUsecaseForTest(userRepo, new(MockVerificationRepository), new(MockMailDispatcher))

	hash, err := crypto.HashPassword("12345")
	require.NoError(t, err)
	userRepo.On("GetByEmail", context.Background(), "a@x.com").
		Return(&entities.Account{ID: uuid.New(), Email: "a@x.com", Password: hash}, nil).Once()

	out := uc.Login(context.Background(), &entities.LoginInput{Email: "a@x.com", Password: "wrong"})

	assert.False(t, out.Ok)
	require.NotNil(t, out.Error)
	assert.Equal(t, "Wrong password!", *out.Error)
}

func TestUserUsecase_Login_SuccessTokenRoundTrips(t *testing.T) {
	userRepo := new(MockUserRepository)
	uc := newUserUsecaseForTest(userRepo, new(MockVerificationRepository), new(MockMailDispatcher))

	accountID := uuid.New()
	hash, err := crypto.HashPassword("12345")
	require.NoError(t, err)
	userRepo.On("GetByEmail", context.Background(), "a@x.com").
		Return(&entities.Account{ID: accountID, Email: "a@x.com", Password: hash}, nil).Once()

	out := uc.Login(context.Background(), &entities.LoginInput{Email: "a@x.com", Password: "12345"})

	assert.True(t, out.Ok)
	require.NotNil(t, out.Token)

	claims, err := jwt.NewService("test-secret", 0).Verify(*out.Token)
	require.NoError(t, err)
	assert.Equal(t, accountID, claims.AccountID)
}

func TestUserUsecase_UserProfile(t *testing.T) {
	userRepo := new(MockUserRepository)
	uc := newUserUsecaseForTest(userRepo, new(MockVerificationRepository), new(MockMailDispatcher))

	known := uuid.New()
	userRepo.On("GetByID", context.Background(), known).
		Return(&entities.Account{ID: known, Email: "a@x.com"}, nil).Once()
	out := uc.UserProfile(context.Background(), known)
	assert.True(t, out.Ok)
	require.NotNil(t, out.User)
	assert.Equal(t, known, out.User.ID)

	unknown := uuid.New()
	userRepo.On("GetByID", context.Background(), unknown).
		Return(nil, domainerrors.ErrNotFound).Once()
	out = uc.UserProfile(context.Background(), unknown)
	assert.False(t, out.Ok)
	require.NotNil(t, out.Error)
	assert.Equal(t, domainerrors.ReasonProfileNotFound, *out.Error)
	assert.Nil(t, out.User)
}

func TestUserUsecase_EditProfile_EmailChangeResetsVerification(t *testing.T) {
	userRepo := new(MockUserRepository)
	verifRepo := new(MockVerificationRepository)
	mailer := new(MockMailDispatcher)
	uc := newUserUsecaseForTest(userRepo, verifRepo, mailer)

	accountID := uuid.New()
	userRepo.On("GetByID", context.Background(), accountID).
		Return(&entities.Account{ID: accountID, Email: "old@x.com", Verified: true}, nil).Once()
	verifRepo.On("DeleteByAccount", context.Background(), accountID).Return(nil).Once()
	verifRepo.On("Create", context.Background(), accountID).
		Return(&entities.Verification{ID: uuid.New(), Code: "fresh-code", AccountID: accountID}, nil).Once()
	mailer.On("SendVerificationEmail", "new@x.com", "fresh-code").Once()
	userRepo.On("Save", context.Background(), mock.MatchedBy(func(a *entities.Account) bool {
		return a.Email == "new@x.com" && !a.Verified
	})).Return(nil).Once()

	email := "new@x.com"
	out := uc.EditProfile(context.Background(), accountID, &entities.EditProfileInput{Email: &email})

	assert.True(t, out.Ok)
	userRepo.AssertExpectations(t)
	verifRepo.AssertExpectations(t)
	mailer.AssertExpectations(t)
}

func TestUserUsecase_EditProfile_SameEmailKeepsVerification(t *testing.T) {
	userRepo := new(MockUserRepository)
	verifRepo := new(MockVerificationRepository)
	mailer := new(MockMailDispatcher)
	uc := newUserUsecaseForTest(userRepo, verifRepo, mailer)

	accountID := uuid.New()
	userRepo.On("GetByID", context.Background(), accountID).
		Return(&entities.Account{ID: accountID, Email: "same@x.com", Verified: true}, nil).Once()
	userRepo.On("Save", context.Background(), mock.MatchedBy(func(a *entities.Account) bool {
		return a.Verified && a.Password == "new-pass"
	})).Return(nil).Once()

	email := "same@x.com"
	password := "new-pass"
	out := uc.EditProfile(context.Background(), accountID, &entities.EditProfileInput{
		Email:    &email,
		Password: &password,
	})

	assert.True(t, out.Ok)
	verifRepo.AssertNotCalled(t, "DeleteByAccount", mock.Anything, mock.Anything)
	mailer.AssertNotCalled(t, "SendVerificationEmail", mock.Anything, mock.Anything)
}

func TestUserUsecase_VerifyEmail_NotFound(t *testing.T) {
	userRepo := new(MockUserRepository)
	verifRepo := new(MockVerificationRepository)
	uc := newUserUsecaseForTest(userRepo, verifRepo, new(MockMailDispatcher))

	verifRepo.On("GetByCode", context.Background(), "stale").
		Return(nil, domainerrors.ErrNotFound).Once()

	out := uc.VerifyEmail(context.Background(), "stale")

	assert.False(t, out.Ok)
	require.NotNil(t, out.Error)
	assert.Equal(t, domainerrors.ReasonVerificationNotFound, *out.Error)
}

func TestUserUsecase_VerifyEmail_Success(t *testing.T) {
	userRepo := new(MockUserRepository)
	verifRepo := new(MockVerificationRepository)
	uc := newUserUsecaseForTest(userRepo, verifRepo, new(MockMailDispatcher))

	accountID := uuid.New()
	verifID := uuid.New()
	verifRepo.On("GetByCode", context.Background(), "good-code").
		Return(&entities.Verification{
			ID:        verifID,
			Code:      "good-code",
			AccountID: accountID,
			Account:   &entities.Account{ID: accountID, Email: "a@x.com"},
		}, nil).Once()
	userRepo.On("Save", context.Background(), mock.MatchedBy(func(a *entities.Account) bool {
		return a.ID == accountID && a.Verified
	})).Return(nil).Once()
	verifRepo.On("Delete", context.Background(), verifID).Return(nil).Once()

	out := uc.VerifyEmail(context.Background(), "good-code")

	assert.True(t, out.Ok)
	userRepo.AssertExpectations(t)
	verifRepo.AssertExpectations(t)
}
