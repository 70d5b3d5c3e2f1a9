package contract

import (
	"context"

	"github.com/D3M0MK1GN/Demonbot-Telegram/internal/entity"
)

type EvidenceRepository interface {
	Create(ctx context.Context, e *entity.Evidence) error
	FindByCaseID(ctx context.Context, caseID uint) ([]*entity.Evidence, error)
}
