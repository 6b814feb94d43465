package impl

import (
	"context"
	"log/slog"
	"time"

	deliverycontext "mdesk/internal/delivery/context"
	domainerrors "mdesk/internal/domain/errors"
	"mdesk/internal/domain/repository"
	"mdesk/internal/domain/service"
	"mdesk/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// mailSendTimeout bounds the SMTP dispatch that runs inside the reset
// transaction, so a slow relay cannot pin a pool connection.
const mailSendTimeout = 10 * time.Second

// passwordResetService implements the PasswordResetUsecase interface.
type passwordResetService struct {
	txManager   repository.TransactionManager
	accountRepo repository.AccountRepository
	hasher      service.PasswordHasher
	generator   service.TempPasswordGenerator
	mailer      service.Mailer
	logger      *slog.Logger
}

// PasswordResetServiceParams holds dependencies for passwordResetService, injected by Fx.
type PasswordResetServiceParams struct {
	fx.In

	TxManager   repository.TransactionManager
	AccountRepo repository.AccountRepository
	Hasher      service.PasswordHasher
	Generator   service.TempPasswordGenerator
	Mailer      service.Mailer
	Logger      *slog.Logger
}

// NewPasswordResetService is the constructor for passwordResetService.
func NewPasswordResetService(params PasswordResetServiceParams) usecase.PasswordResetUsecase {
	return &passwordResetService{
		txManager:   params.TxManager,
		accountRepo: params.AccountRepo,
		hasher:      params.Hasher,
		generator:   params.Generator,
		mailer:      params.Mailer,
		logger:      params.Logger,
	}
}

func (srv *passwordResetService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// ResetPassword issues a temporary password, persists its hash and mails it.
// The mail is sent inside the transaction so a delivery failure rolls the
// stored hash back and the previous password keeps working.
func (srv *passwordResetService) ResetPassword(ctx context.Context, email string) error {
	srv.log(ctx).Info("Starting password reset", slog.String("email", email))

	account, err := srv.accountRepo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrAccountNotFound) {
			return errors.Wrap(domainerrors.ErrAccountNotFound, "password reset failed")
		}

		return errors.Wrap(err, "failed to find account for password reset")
	}

	tempPassword, err := srv.generator.Generate()
	if err != nil {
		srv.log(ctx).Error("Failed to generate temporary password", slog.Any("error", err))

		return errors.Wrap(err, "failed to generate temporary password")
	}

	tempHash, err := srv.hasher.Hash(tempPassword)
	if err != nil {
		return errors.Wrap(err, "failed to hash temporary password")
	}

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		accountRepo := repoFactory.NewAccountRepository()

		if err := accountRepo.UpdatePassword(ctx, account.ID, tempHash); err != nil {
			return errors.Wrap(err, "failed to store temporary password hash")
		}

		mailCtx, cancel := context.WithTimeout(ctx, mailSendTimeout)
		defer cancel()

		if err := srv.mailer.SendTempPassword(mailCtx, account.Email, account.Name, tempPassword); err != nil {
			return errors.Wrap(err, "failed to deliver temporary password mail")
		}

		return nil
	})
	if err != nil {
		srv.log(ctx).Error("Failed to execute password reset transaction", slog.String("email", email), slog.Any("error", err))

		return errors.Wrap(err, "failed to execute password reset transaction")
	}

	srv.log(ctx).Info("Password reset completed", slog.Any("accountID", account.ID))

	return nil
}
