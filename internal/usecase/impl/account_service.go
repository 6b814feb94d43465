// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"

	deliverycontext "mdesk/internal/delivery/context"
	"mdesk/internal/domain/entity"
	domainerrors "mdesk/internal/domain/errors"
	"mdesk/internal/domain/repository"
	"mdesk/internal/domain/service"
	"mdesk/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// accountService implements the AccountUsecase interface.
type accountService struct {
	txManager    repository.TransactionManager
	accountRepo  repository.AccountRepository
	hasher       service.PasswordHasher
	tokenService service.TokenService
	tokenRevoker service.TokenRevoker
	logger       *slog.Logger
}

// AccountServiceParams holds dependencies for accountService, injected by Fx.
type AccountServiceParams struct {
	fx.In

	TxManager    repository.TransactionManager
	AccountRepo  repository.AccountRepository
	Hasher       service.PasswordHasher
	TokenService service.TokenService
	TokenRevoker service.TokenRevoker
	Logger       *slog.Logger
}

// NewAccountService is the constructor for accountService. It receives all dependencies as interfaces.
func NewAccountService(params AccountServiceParams) usecase.AccountUsecase {
	return &accountService{
		txManager:    params.TxManager,
		accountRepo:  params.AccountRepo,
		hasher:       params.Hasher,
		tokenService: params.TokenService,
		tokenRevoker: params.TokenRevoker,
		logger:       params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *accountService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// SignupAdmin registers a new administrator account.
func (srv *accountService) SignupAdmin(ctx context.Context, input usecase.SignupInput) (*usecase.AccountOutput, error) {
	return srv.signup(ctx, input, entity.RoleAdmin)
}

// SignupDirector registers a new casting director account.
func (srv *accountService) SignupDirector(ctx context.Context, input usecase.SignupInput) (*usecase.AccountOutput, error) {
	return srv.signup(ctx, input, entity.RoleDirector)
}

func (srv *accountService) signup(ctx context.Context, input usecase.SignupInput, role entity.Role) (*usecase.AccountOutput, error) {
	srv.log(ctx).Info("Starting signup", slog.Any("role", role), slog.String("email", input.Email))

	provider := input.Provider
	if provider == "" {
		provider = entity.ProviderLocal
	}
	if !provider.IsValid() {
		return nil, errors.Wrap(domainerrors.ErrValidationFailed, "unknown identity provider")
	}
	if provider != entity.ProviderLocal && (input.ProviderID == nil || *input.ProviderID == "") {
		return nil, errors.Wrap(domainerrors.ErrValidationFailed, "external provider requires a subject id")
	}

	if err := srv.hasher.ValidateStrength(input.Password); err != nil {
		srv.log(ctx).Warn("Password validation failed during signup", slog.Any("role", role), slog.String("email", input.Email), slog.Any("error", err))

		return nil, errors.Wrap(err, "password does not meet security requirements")
	}

	hashedPassword, err := srv.hasher.Hash(input.Password)
	if err != nil {
		srv.log(ctx).Error("Failed to hash password during signup", slog.Any("role", role), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to hash password during signup")
	}

	newAccount := &entity.Account{
		Name:         input.Name,
		Email:        input.Email,
		PasswordHash: hashedPassword,
		Role:         role,
		Provider:     provider,
		ProviderID:   input.ProviderID,
	}

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		accountRepo := repoFactory.NewAccountRepository()

		if err := accountRepo.Create(ctx, newAccount); err != nil {
			return errors.Wrap(err, "failed to create account during signup")
		}

		return nil
	})
	if err != nil {
		srv.log(ctx).Error("Failed to execute signup transaction", slog.Any("role", role), slog.String("email", input.Email), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to execute signup transaction")
	}

	srv.log(ctx).Debug("Signup completed", slog.Any("role", role), slog.Any("accountID", newAccount.ID))

	return &usecase.AccountOutput{Account: newAccount}, nil
}

// Login verifies credentials and issues a token pair.
func (srv *accountService) Login(ctx context.Context, input usecase.LoginInput) (*usecase.LoginOutput, error) {
	srv.log(ctx).Debug("Starting login", slog.String("email", input.Email))

	account, err := srv.accountRepo.FindByEmail(ctx, input.Email)
	if err != nil {
		srv.log(ctx).Warn("Login failed", slog.String("email", input.Email), slog.Any("error", err))

		if errors.Is(err, repository.ErrAccountNotFound) {
			return nil, errors.Wrap(domainerrors.ErrInvalidCredentials, "login failed")
		}

		return nil, errors.Wrap(err, "failed to find account by email")
	}

	// Check password outside any transaction (bcrypt is CPU-bound).
	if !srv.hasher.Check(input.Password, account.PasswordHash) {
		srv.log(ctx).Warn("Login failed", slog.String("email", input.Email), slog.Any("error", domainerrors.ErrInvalidCredentials))

		return nil, errors.Wrap(domainerrors.ErrInvalidCredentials, "login failed")
	}

	accessToken, refreshToken, err := srv.tokenService.GenerateTokens(account)
	if err != nil {
		srv.log(ctx).Error("Failed to generate tokens during login", slog.String("email", input.Email), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to generate tokens")
	}

	srv.log(ctx).Debug("Logged in successfully", slog.Any("accountID", account.ID))

	return &usecase.LoginOutput{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		Account:      account,
	}, nil
}

// RefreshToken redeems a refresh token and rotates both tokens. The redeemed
// token is handed to the revoker so a denylist-backed deployment can reject
// replays.
func (srv *accountService) RefreshToken(ctx context.Context, refreshToken string) (*usecase.TokenPairOutput, error) {
	srv.log(ctx).Info("Attempting to refresh tokens")

	claims, err := srv.tokenService.ValidateToken(refreshToken, service.TokenTypeRefresh)
	if err != nil {
		return nil, errors.Wrap(err, "invalid refresh token")
	}

	if srv.tokenRevoker.IsRevoked(claims) {
		srv.log(ctx).Warn("Refresh attempted with revoked token", slog.String("email", claims.Subject))

		return nil, errors.Wrap(domainerrors.ErrTokenInvalid, "refresh token revoked")
	}

	account, err := srv.accountRepo.FindByEmail(ctx, claims.Subject)
	if err != nil {
		srv.log(ctx).Warn("Refresh failed", slog.String("email", claims.Subject), slog.Any("error", err))

		if errors.Is(err, repository.ErrAccountNotFound) {
			return nil, errors.Wrap(domainerrors.ErrTokenInvalid, "account no longer exists")
		}

		return nil, errors.Wrap(err, "failed to find account for refresh")
	}

	newAccessToken, newRefreshToken, err := srv.tokenService.GenerateTokens(account)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate rotated tokens")
	}

	if err := srv.tokenRevoker.Revoke(claims); err != nil {
		srv.log(ctx).Warn("Failed to revoke redeemed refresh token", slog.Any("error", err))
	}

	srv.log(ctx).Debug("Tokens rotated", slog.Any("accountID", account.ID))

	return &usecase.TokenPairOutput{
		AccessToken:      newAccessToken,
		RefreshToken:     newRefreshToken,
		RefreshExpiresIn: srv.tokenService.GetRefreshTokenDuration(),
	}, nil
}

// ChangePassword changes an account password after verifying the current one.
func (srv *accountService) ChangePassword(ctx context.Context, input usecase.ChangePasswordInput) error {
	srv.log(ctx).Info("Attempting to change password", slog.String("email", input.Email))

	account, err := srv.accountRepo.FindByEmail(ctx, input.Email)
	if err != nil {
		if errors.Is(err, repository.ErrAccountNotFound) {
			return errors.Wrap(domainerrors.ErrAccountNotFound, "change password failed")
		}

		return errors.Wrap(err, "failed to find account for password change")
	}

	if !srv.hasher.Check(input.CurrentPassword, account.PasswordHash) {
		srv.log(ctx).Warn("Current password mismatch on password change", slog.String("email", input.Email))

		return errors.Wrap(domainerrors.ErrInvalidCredentials, "current password does not match")
	}

	if err := srv.hasher.ValidateStrength(input.NewPassword); err != nil {
		return errors.Wrap(err, "new password does not meet security requirements")
	}

	newHash, err := srv.hasher.Hash(input.NewPassword)
	if err != nil {
		return errors.Wrap(err, "failed to hash new password")
	}

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		accountRepo := repoFactory.NewAccountRepository()

		if err := accountRepo.UpdatePassword(ctx, account.ID, newHash); err != nil {
			return errors.Wrap(err, "failed to update password")
		}

		return nil
	})
	if err != nil {
		srv.log(ctx).Error("Failed to execute password change transaction", slog.String("email", input.Email), slog.Any("error", err))

		return errors.Wrap(err, "failed to execute password change transaction")
	}

	srv.log(ctx).Info("Password changed", slog.Any("accountID", account.ID))

	return nil
}

// GetProfile retrieves an account by its email.
func (srv *accountService) GetProfile(ctx context.Context, email string) (*usecase.AccountOutput, error) {
	srv.log(ctx).Debug("Getting account profile", slog.String("email", email))

	account, err := srv.accountRepo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrAccountNotFound) {
			return nil, errors.Wrap(domainerrors.ErrAccountNotFound, "get profile failed")
		}

		return nil, errors.Wrap(err, "failed to find account by email")
	}

	return &usecase.AccountOutput{Account: account}, nil
}

// DeleteAccount removes an account by ID.
func (srv *accountService) DeleteAccount(ctx context.Context, id uuid.UUID) error {
	srv.log(ctx).Info("Attempting to delete account", slog.Any("accountID", id))

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		accountRepo := repoFactory.NewAccountRepository()

		if err := accountRepo.Delete(ctx, id); err != nil {
			if errors.Is(err, repository.ErrAccountNotFound) {
				return errors.Wrap(domainerrors.ErrAccountNotFound, "delete account failed")
			}

			return errors.Wrap(err, "failed to delete account")
		}

		return nil
	})
	if err != nil {
		srv.log(ctx).Error("Failed to execute account deletion transaction", slog.Any("accountID", id), slog.Any("error", err))

		return errors.Wrap(err, "failed to execute account deletion transaction")
	}

	srv.log(ctx).Info("Account deleted", slog.Any("accountID", id))

	return nil
}
