package impl

import (
	"context"
	"testing"

	"mdesk/internal/domain/entity"
	domainerrors "mdesk/internal/domain/errors"
	"mdesk/internal/domain/repository"
	mockRepo "mdesk/internal/mocks/repository"
	mockSvc "mdesk/internal/mocks/service"
	"mdesk/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// passwordResetFixtures holds all test dependencies for password reset tests.
type passwordResetFixtures struct {
	service     usecase.PasswordResetUsecase
	txManager   *mockRepo.MockTransactionManager
	accountRepo *mockRepo.MockAccountRepository
	hasher      *mockSvc.MockPasswordHasher
	generator   *mockSvc.MockTempPasswordGenerator
	mailer      *mockSvc.MockMailer
}

func createTestPasswordResetService(t *testing.T) passwordResetFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	accountRepo := mockRepo.NewMockAccountRepository(t)
	hasher := mockSvc.NewMockPasswordHasher(t)
	generator := mockSvc.NewMockTempPasswordGenerator(t)
	mailer := mockSvc.NewMockMailer(t)

	svc := NewPasswordResetService(PasswordResetServiceParams{
		TxManager:   txManager,
		AccountRepo: accountRepo,
		Hasher:      hasher,
		Generator:   generator,
		Mailer:      mailer,
		Logger:      newDiscardLogger(),
	})

	return passwordResetFixtures{
		service:     svc,
		txManager:   txManager,
		accountRepo: accountRepo,
		hasher:      hasher,
		generator:   generator,
		mailer:      mailer,
	}
}

func TestPasswordResetService_ResetPassword_Success(t *testing.T) {
	fixtures := createTestPasswordResetService(t)

	ctx := context.Background()
	account := &entity.Account{
		ID:    uuid.New(),
		Name:  "Jane Admin",
		Email: "jane@example.com",
	}

	fixtures.accountRepo.EXPECT().FindByEmail(ctx, account.Email).Return(account, nil)
	fixtures.generator.EXPECT().Generate().Return("Temp1234!@ab", nil)
	fixtures.hasher.EXPECT().Hash("Temp1234!@ab").Return("temp_hash", nil)

	fixtures.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockAccountRepo := mockRepo.NewMockAccountRepository(t)

			mockFactory.EXPECT().NewAccountRepository().Return(mockAccountRepo)
			mockAccountRepo.EXPECT().UpdatePassword(ctx, account.ID, "temp_hash").Return(nil)
			fixtures.mailer.EXPECT().
				SendTempPassword(mock.Anything, account.Email, account.Name, "Temp1234!@ab").
				Run(func(mailCtx context.Context, to, name, tempPassword string) {
					// The dispatch context must carry a deadline so a slow
					// relay cannot hold the transaction open.
					_, hasDeadline := mailCtx.Deadline()
					assert.True(t, hasDeadline)
				}).
				Return(nil)

			_ = fn(mockFactory)
		}).
		Return(nil)

	err := fixtures.service.ResetPassword(ctx, account.Email)

	assert.NoError(t, err)
}

func TestPasswordResetService_ResetPassword_UnknownAccount(t *testing.T) {
	fixtures := createTestPasswordResetService(t)

	ctx := context.Background()

	fixtures.accountRepo.EXPECT().
		FindByEmail(ctx, "nobody@example.com").
		Return(nil, repository.ErrAccountNotFound)

	err := fixtures.service.ResetPassword(ctx, "nobody@example.com")

	assert.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrAccountNotFound))
}

func TestPasswordResetService_ResetPassword_MailFailureRollsBack(t *testing.T) {
	fixtures := createTestPasswordResetService(t)

	ctx := context.Background()
	account := &entity.Account{
		ID:    uuid.New(),
		Name:  "Jane Admin",
		Email: "jane@example.com",
	}

	fixtures.accountRepo.EXPECT().FindByEmail(ctx, account.Email).Return(account, nil)
	fixtures.generator.EXPECT().Generate().Return("Temp1234!@ab", nil)
	fixtures.hasher.EXPECT().Hash("Temp1234!@ab").Return("temp_hash", nil)

	fixtures.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockAccountRepo := mockRepo.NewMockAccountRepository(t)

			mockFactory.EXPECT().NewAccountRepository().Return(mockAccountRepo)
			mockAccountRepo.EXPECT().UpdatePassword(ctx, account.ID, "temp_hash").Return(nil)
			fixtures.mailer.EXPECT().
				SendTempPassword(mock.Anything, account.Email, account.Name, "Temp1234!@ab").
				Return(domainerrors.ErrMailDeliveryFailed.WrapMessage("smtp connect refused"))

			_ = fn(mockFactory)
		}).
		Return(errors.Wrap(domainerrors.ErrMailDeliveryFailed, "failed to deliver temporary password mail"))

	err := fixtures.service.ResetPassword(ctx, account.Email)

	assert.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrMailDeliveryFailed))
}
