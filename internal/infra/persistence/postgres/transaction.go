// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"

	"mdesk/internal/domain/repository"
	"mdesk/internal/errors"

	"gorm.io/gorm"
)

// gormTransactionManager implements repository.TransactionManager over GORM
// Begin/Commit/Rollback.
type gormTransactionManager struct {
	db *gorm.DB
}

// gormRepositoryFactory hands out repository instances bound to one open
// transaction, so every store call inside an Execute block shares it.
type gormRepositoryFactory struct {
	tx *gorm.DB
}

// NewAccountRepository returns an account repository bound to the transaction.
func (f *gormRepositoryFactory) NewAccountRepository() repository.AccountRepository {
	return NewAccountRepository(f.tx)
}

// NewModelRepository returns a model repository bound to the transaction.
func (f *gormRepositoryFactory) NewModelRepository() repository.ModelRepository {
	return NewModelRepository(f.tx)
}

// NewCameraTestRepository returns a camera test repository bound to the transaction.
func (f *gormRepositoryFactory) NewCameraTestRepository() repository.CameraTestRepository {
	return NewCameraTestRepository(f.tx)
}

// NewTransactionManager is the constructor for gormTransactionManager,
// provided to Fx.
func NewTransactionManager(db *gorm.DB) repository.TransactionManager {
	return &gormTransactionManager{db: db}
}

// Execute runs fn inside a single database transaction. A returned error or
// a panic rolls the transaction back; otherwise it commits.
func (tm *gormTransactionManager) Execute(ctx context.Context, fn func(repoFactory repository.RepositoryFactory) error) error {
	tx := tm.db.WithContext(ctx).Begin()
	if tx.Error != nil {
		return errors.Wrap(tx.Error, "failed to begin transaction")
	}

	// A panic inside fn must not leave the transaction open.
	defer func() {
		if r := recover(); r != nil {
			tx.Rollback()
			panic(r)
		}
	}()

	if err := fn(&gormRepositoryFactory{tx: tx}); err != nil {
		if rbErr := tx.Rollback().Error; rbErr != nil {
			return errors.Wrapf(err, "transaction rollback failed: %v (original error follows)", rbErr)
		}

		return err
	}

	if err := tx.Commit().Error; err != nil {
		return errors.Wrap(err, "failed to commit transaction")
	}

	return nil
}
