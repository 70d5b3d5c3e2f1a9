package unitofwork

import (
	"context"
	"fmt"

	"github.com/D3M0MK1GN/Demonbot-Telegram/internal/repository/contract"
	"github.com/D3M0MK1GN/Demonbot-Telegram/internal/repository/implementation"

	"gorm.io/gorm"
)

type UnitOfWorkImpl struct {
	db *gorm.DB
	tx *gorm.DB // active transaction, nil outside Begin/Commit
}

func NewUnitOfWork(db *gorm.DB) UnitOfWork {
	return &UnitOfWorkImpl{
		db: db,
	}
}

func (u *UnitOfWorkImpl) getDB() *gorm.DB {
	if u.tx != nil {
		return u.tx
	}
	return u.db
}

func (u *UnitOfWorkImpl) Begin(ctx context.Context) error {
	if u.tx != nil {
		return fmt.Errorf("transaction already started")
	}
	u.tx = u.db.WithContext(ctx).Begin()
	return u.tx.Error
}

func (u *UnitOfWorkImpl) Commit() error {
	if u.tx == nil {
		return fmt.Errorf("no transaction to commit")
	}
	err := u.tx.Commit().Error
	u.tx = nil
	return err
}

func (u *UnitOfWorkImpl) Rollback() error {
	if u.tx == nil {
		return fmt.Errorf("no transaction to rollback")
	}
	err := u.tx.Rollback().Error
	u.tx = nil
	return err
}

// Repository Accessors

func (u *UnitOfWorkImpl) UserRepository() contract.UserRepository {
	return implementation.NewUserRepository(u.getDB())
}

func (u *UnitOfWorkImpl) CaseRepository() contract.CaseRepository {
	return implementation.NewCaseRepository(u.getDB())
}

func (u *UnitOfWorkImpl) EvidenceRepository() contract.EvidenceRepository {
	return implementation.NewEvidenceRepository(u.getDB())
}

func (u *UnitOfWorkImpl) ReportedNumberRepository() contract.ReportedNumberRepository {
	return implementation.NewReportedNumberRepository(u.getDB())
}

func (u *UnitOfWorkImpl) BotInteractionRepository() contract.BotInteractionRepository {
	return implementation.NewBotInteractionRepository(u.getDB())
}
