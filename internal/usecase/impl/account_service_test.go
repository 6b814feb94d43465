package impl

import (
	"context"
	"testing"
	"time"

	"mdesk/internal/domain/entity"
	domainerrors "mdesk/internal/domain/errors"
	"mdesk/internal/domain/repository"
	"mdesk/internal/domain/service"
	mockRepo "mdesk/internal/mocks/repository"
	mockSvc "mdesk/internal/mocks/service"
	"mdesk/internal/usecase"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// accountServiceFixtures holds all test dependencies for account service tests.
type accountServiceFixtures struct {
	service      usecase.AccountUsecase
	txManager    *mockRepo.MockTransactionManager
	accountRepo  *mockRepo.MockAccountRepository
	hasher       *mockSvc.MockPasswordHasher
	tokenService *mockSvc.MockTokenService
	tokenRevoker *mockSvc.MockTokenRevoker
}

func createTestAccountService(t *testing.T) accountServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	accountRepo := mockRepo.NewMockAccountRepository(t)
	hasher := mockSvc.NewMockPasswordHasher(t)
	tokenService := mockSvc.NewMockTokenService(t)
	tokenRevoker := mockSvc.NewMockTokenRevoker(t)

	svc := NewAccountService(AccountServiceParams{
		TxManager:    txManager,
		AccountRepo:  accountRepo,
		Hasher:       hasher,
		TokenService: tokenService,
		TokenRevoker: tokenRevoker,
		Logger:       newDiscardLogger(),
	})

	return accountServiceFixtures{
		service:      svc,
		txManager:    txManager,
		accountRepo:  accountRepo,
		hasher:       hasher,
		tokenService: tokenService,
		tokenRevoker: tokenRevoker,
	}
}

func newStoredAccount(role entity.Role) *entity.Account {
	return &entity.Account{
		ID:           uuid.New(),
		Name:         "Jane Admin",
		Email:        "jane@example.com",
		PasswordHash: "stored_hash",
		Role:         role,
		Provider:     entity.ProviderLocal,
	}
}

func TestAccountService_SignupAdmin_Success(t *testing.T) {
	fixtures := createTestAccountService(t)

	ctx := context.Background()
	input := usecase.SignupInput{
		Name:     "Jane Admin",
		Email:    "jane@example.com",
		Password: "Password123!",
	}

	fixtures.hasher.EXPECT().ValidateStrength(input.Password).Return(nil)
	fixtures.hasher.EXPECT().Hash(input.Password).Return("hashed_password", nil)

	fixtures.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockAccountRepo := mockRepo.NewMockAccountRepository(t)

			mockFactory.EXPECT().NewAccountRepository().Return(mockAccountRepo)

			mockAccountRepo.EXPECT().
				Create(ctx, mock.AnythingOfType("*entity.Account")).
				Run(func(ctx context.Context, account *entity.Account) {
					account.ID = uuid.New()
				}).
				Return(nil)

			_ = fn(mockFactory)
		}).
		Return(nil)

	output, err := fixtures.service.SignupAdmin(ctx, input)

	require.NoError(t, err)
	require.NotNil(t, output)
	assert.Equal(t, input.Email, output.Account.Email)
	assert.Equal(t, entity.RoleAdmin, output.Account.Role)
	assert.Equal(t, "hashed_password", output.Account.PasswordHash)
	assert.Equal(t, entity.ProviderLocal, output.Account.Provider)
	assert.NotEqual(t, uuid.Nil, output.Account.ID)
}

func TestAccountService_SignupDirector_SetsDirectorRole(t *testing.T) {
	fixtures := createTestAccountService(t)

	ctx := context.Background()
	input := usecase.SignupInput{
		Name:     "Kim Director",
		Email:    "kim@example.com",
		Password: "Password123!",
	}

	fixtures.hasher.EXPECT().ValidateStrength(input.Password).Return(nil)
	fixtures.hasher.EXPECT().Hash(input.Password).Return("hashed_password", nil)

	fixtures.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockAccountRepo := mockRepo.NewMockAccountRepository(t)

			mockFactory.EXPECT().NewAccountRepository().Return(mockAccountRepo)
			mockAccountRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.Account")).Return(nil)

			_ = fn(mockFactory)
		}).
		Return(nil)

	output, err := fixtures.service.SignupDirector(ctx, input)

	require.NoError(t, err)
	assert.Equal(t, entity.RoleDirector, output.Account.Role)
}

func TestAccountService_Signup_WeakPassword(t *testing.T) {
	fixtures := createTestAccountService(t)

	ctx := context.Background()
	input := usecase.SignupInput{
		Name:     "Jane Admin",
		Email:    "jane@example.com",
		Password: "weak",
	}

	fixtures.hasher.EXPECT().
		ValidateStrength(input.Password).
		Return(domainerrors.ErrPasswordStrength.WrapMessage("password too short"))

	output, err := fixtures.service.SignupAdmin(ctx, input)

	assert.Error(t, err)
	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrPasswordStrength))
}

func TestAccountService_Signup_DuplicateEmail(t *testing.T) {
	fixtures := createTestAccountService(t)

	ctx := context.Background()
	input := usecase.SignupInput{
		Name:     "Jane Admin",
		Email:    "jane@example.com",
		Password: "Password123!",
	}

	fixtures.hasher.EXPECT().ValidateStrength(input.Password).Return(nil)
	fixtures.hasher.EXPECT().Hash(input.Password).Return("hashed_password", nil)

	fixtures.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockAccountRepo := mockRepo.NewMockAccountRepository(t)

			mockFactory.EXPECT().NewAccountRepository().Return(mockAccountRepo)
			mockAccountRepo.EXPECT().
				Create(ctx, mock.AnythingOfType("*entity.Account")).
				Return(domainerrors.ErrAccountAlreadyExists.WrapMessage("email already registered"))

			_ = fn(mockFactory)
		}).
		Return(errors.Wrap(domainerrors.ErrAccountAlreadyExists, "email already registered"))

	output, err := fixtures.service.SignupAdmin(ctx, input)

	assert.Error(t, err)
	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrAccountAlreadyExists))
}

func TestAccountService_Signup_ExternalProviderRequiresSubjectID(t *testing.T) {
	fixtures := createTestAccountService(t)

	ctx := context.Background()
	input := usecase.SignupInput{
		Name:     "Jane Admin",
		Email:    "jane@example.com",
		Password: "Password123!",
		Provider: entity.ProviderGoogle,
	}

	output, err := fixtures.service.SignupAdmin(ctx, input)

	assert.Error(t, err)
	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
}

func TestAccountService_Signup_UnknownProvider(t *testing.T) {
	fixtures := createTestAccountService(t)

	ctx := context.Background()
	input := usecase.SignupInput{
		Name:     "Jane Admin",
		Email:    "jane@example.com",
		Password: "Password123!",
		Provider: entity.Provider("MYSPACE"),
	}

	output, err := fixtures.service.SignupAdmin(ctx, input)

	assert.Error(t, err)
	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
}

func TestAccountService_Signup_ExternalProviderPersisted(t *testing.T) {
	fixtures := createTestAccountService(t)

	ctx := context.Background()
	input := usecase.SignupInput{
		Name:       "Jane Admin",
		Email:      "jane@example.com",
		Password:   "Password123!",
		Provider:   entity.ProviderGoogle,
		ProviderID: strPtr("google-subject-1"),
	}

	fixtures.hasher.EXPECT().ValidateStrength(input.Password).Return(nil)
	fixtures.hasher.EXPECT().Hash(input.Password).Return("hashed_password", nil)

	fixtures.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockAccountRepo := mockRepo.NewMockAccountRepository(t)

			mockFactory.EXPECT().NewAccountRepository().Return(mockAccountRepo)
			mockAccountRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.Account")).Return(nil)

			_ = fn(mockFactory)
		}).
		Return(nil)

	output, err := fixtures.service.SignupAdmin(ctx, input)

	require.NoError(t, err)
	assert.Equal(t, entity.ProviderGoogle, output.Account.Provider)
	require.NotNil(t, output.Account.ProviderID)
	assert.Equal(t, "google-subject-1", *output.Account.ProviderID)
}

func TestAccountService_Login_Success(t *testing.T) {
	fixtures := createTestAccountService(t)

	ctx := context.Background()
	account := newStoredAccount(entity.RoleAdmin)
	input := usecase.LoginInput{Email: account.Email, Password: "Password123!"}

	fixtures.accountRepo.EXPECT().FindByEmail(ctx, input.Email).Return(account, nil)
	fixtures.hasher.EXPECT().Check(input.Password, account.PasswordHash).Return(true)
	fixtures.tokenService.EXPECT().GenerateTokens(account).Return("access", "refresh", nil)

	output, err := fixtures.service.Login(ctx, input)

	require.NoError(t, err)
	assert.Equal(t, "access", output.AccessToken)
	assert.Equal(t, "refresh", output.RefreshToken)
	assert.Equal(t, account, output.Account)
}

func TestAccountService_Login_UnknownEmail(t *testing.T) {
	fixtures := createTestAccountService(t)

	ctx := context.Background()
	input := usecase.LoginInput{Email: "nobody@example.com", Password: "Password123!"}

	fixtures.accountRepo.EXPECT().FindByEmail(ctx, input.Email).Return(nil, repository.ErrAccountNotFound)

	output, err := fixtures.service.Login(ctx, input)

	assert.Error(t, err)
	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidCredentials))
}

func TestAccountService_Login_WrongPassword(t *testing.T) {
	fixtures := createTestAccountService(t)

	ctx := context.Background()
	account := newStoredAccount(entity.RoleAdmin)
	input := usecase.LoginInput{Email: account.Email, Password: "wrong"}

	fixtures.accountRepo.EXPECT().FindByEmail(ctx, input.Email).Return(account, nil)
	fixtures.hasher.EXPECT().Check(input.Password, account.PasswordHash).Return(false)

	output, err := fixtures.service.Login(ctx, input)

	assert.Error(t, err)
	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidCredentials))
}

func TestAccountService_RefreshToken_RotatesBothTokens(t *testing.T) {
	fixtures := createTestAccountService(t)

	ctx := context.Background()
	account := newStoredAccount(entity.RoleAdmin)
	claims := &service.Claims{
		Type:             service.TokenTypeRefresh,
		RegisteredClaims: jwt.RegisteredClaims{Subject: account.Email},
	}

	fixtures.tokenService.EXPECT().ValidateToken("old_refresh", service.TokenTypeRefresh).Return(claims, nil)
	fixtures.tokenRevoker.EXPECT().IsRevoked(claims).Return(false)
	fixtures.accountRepo.EXPECT().FindByEmail(ctx, account.Email).Return(account, nil)
	fixtures.tokenService.EXPECT().GenerateTokens(account).Return("new_access", "new_refresh", nil)
	fixtures.tokenService.EXPECT().GetRefreshTokenDuration().Return(72 * time.Hour)
	fixtures.tokenRevoker.EXPECT().Revoke(claims).Return(nil)

	output, err := fixtures.service.RefreshToken(ctx, "old_refresh")

	require.NoError(t, err)
	assert.Equal(t, "new_access", output.AccessToken)
	assert.Equal(t, "new_refresh", output.RefreshToken)
	assert.Equal(t, 72*time.Hour, output.RefreshExpiresIn)
}

func TestAccountService_RefreshToken_InvalidToken(t *testing.T) {
	fixtures := createTestAccountService(t)

	ctx := context.Background()

	fixtures.tokenService.EXPECT().
		ValidateToken("garbage", service.TokenTypeRefresh).
		Return(nil, domainerrors.ErrTokenInvalid.WrapMessage("failed to parse token"))

	output, err := fixtures.service.RefreshToken(ctx, "garbage")

	assert.Error(t, err)
	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrTokenInvalid))
}

func TestAccountService_RefreshToken_RevokedToken(t *testing.T) {
	fixtures := createTestAccountService(t)

	ctx := context.Background()
	claims := &service.Claims{
		Type:             service.TokenTypeRefresh,
		RegisteredClaims: jwt.RegisteredClaims{Subject: "jane@example.com"},
	}

	fixtures.tokenService.EXPECT().ValidateToken("revoked", service.TokenTypeRefresh).Return(claims, nil)
	fixtures.tokenRevoker.EXPECT().IsRevoked(claims).Return(true)

	output, err := fixtures.service.RefreshToken(ctx, "revoked")

	assert.Error(t, err)
	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrTokenInvalid))
}

func TestAccountService_RefreshToken_AccountDeleted(t *testing.T) {
	fixtures := createTestAccountService(t)

	ctx := context.Background()
	claims := &service.Claims{
		Type:             service.TokenTypeRefresh,
		RegisteredClaims: jwt.RegisteredClaims{Subject: "gone@example.com"},
	}

	fixtures.tokenService.EXPECT().ValidateToken("orphan", service.TokenTypeRefresh).Return(claims, nil)
	fixtures.tokenRevoker.EXPECT().IsRevoked(claims).Return(false)
	fixtures.accountRepo.EXPECT().FindByEmail(ctx, "gone@example.com").Return(nil, repository.ErrAccountNotFound)

	output, err := fixtures.service.RefreshToken(ctx, "orphan")

	assert.Error(t, err)
	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrTokenInvalid))
}

func TestAccountService_ChangePassword_Success(t *testing.T) {
	fixtures := createTestAccountService(t)

	ctx := context.Background()
	account := newStoredAccount(entity.RoleAdmin)
	input := usecase.ChangePasswordInput{
		Email:           account.Email,
		CurrentPassword: "Password123!",
		NewPassword:     "NewPassword456!",
	}

	fixtures.accountRepo.EXPECT().FindByEmail(ctx, input.Email).Return(account, nil)
	fixtures.hasher.EXPECT().Check(input.CurrentPassword, account.PasswordHash).Return(true)
	fixtures.hasher.EXPECT().ValidateStrength(input.NewPassword).Return(nil)
	fixtures.hasher.EXPECT().Hash(input.NewPassword).Return("new_hash", nil)

	fixtures.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockAccountRepo := mockRepo.NewMockAccountRepository(t)

			mockFactory.EXPECT().NewAccountRepository().Return(mockAccountRepo)
			mockAccountRepo.EXPECT().UpdatePassword(ctx, account.ID, "new_hash").Return(nil)

			_ = fn(mockFactory)
		}).
		Return(nil)

	err := fixtures.service.ChangePassword(ctx, input)

	assert.NoError(t, err)
}

func TestAccountService_ChangePassword_WrongCurrentPassword(t *testing.T) {
	fixtures := createTestAccountService(t)

	ctx := context.Background()
	account := newStoredAccount(entity.RoleAdmin)
	input := usecase.ChangePasswordInput{
		Email:           account.Email,
		CurrentPassword: "wrong",
		NewPassword:     "NewPassword456!",
	}

	fixtures.accountRepo.EXPECT().FindByEmail(ctx, input.Email).Return(account, nil)
	fixtures.hasher.EXPECT().Check(input.CurrentPassword, account.PasswordHash).Return(false)

	err := fixtures.service.ChangePassword(ctx, input)

	assert.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidCredentials))
}

func TestAccountService_GetProfile_NotFound(t *testing.T) {
	fixtures := createTestAccountService(t)

	ctx := context.Background()

	fixtures.accountRepo.EXPECT().FindByEmail(ctx, "nobody@example.com").Return(nil, repository.ErrAccountNotFound)

	output, err := fixtures.service.GetProfile(ctx, "nobody@example.com")

	assert.Error(t, err)
	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrAccountNotFound))
}

func TestAccountService_DeleteAccount_Success(t *testing.T) {
	fixtures := createTestAccountService(t)

	ctx := context.Background()
	accountID := uuid.New()

	fixtures.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockAccountRepo := mockRepo.NewMockAccountRepository(t)

			mockFactory.EXPECT().NewAccountRepository().Return(mockAccountRepo)
			mockAccountRepo.EXPECT().Delete(ctx, accountID).Return(nil)

			_ = fn(mockFactory)
		}).
		Return(nil)

	err := fixtures.service.DeleteAccount(ctx, accountID)

	assert.NoError(t, err)
}
