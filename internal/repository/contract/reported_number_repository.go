package contract

import (
	"context"

	"github.com/D3M0MK1GN/Demonbot-Telegram/internal/entity"
)

type ReportedNumberRepository interface {
	// FindByNumber returns (nil, nil) when the number has no reports.
	FindByNumber(ctx context.Context, number string) (*entity.ReportedNumber, error)
	Top(ctx context.Context, limit int) ([]*entity.ReportedNumber, error)
	Create(ctx context.Context, n *entity.ReportedNumber) error
}
