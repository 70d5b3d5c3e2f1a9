package unitofwork

import (
	"context"

	"github.com/D3M0MK1GN/Demonbot-Telegram/internal/repository/contract"
)

// UnitOfWork groups repository operations into one transaction. The
// finalization step (one case plus all its evidences) depends on this:
// either every row commits or none does.
type UnitOfWork interface {
	Begin(ctx context.Context) error
	Commit() error
	Rollback() error

	UserRepository() contract.UserRepository
	CaseRepository() contract.CaseRepository
	EvidenceRepository() contract.EvidenceRepository
	ReportedNumberRepository() contract.ReportedNumberRepository
	BotInteractionRepository() contract.BotInteractionRepository
}
