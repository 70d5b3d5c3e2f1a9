package contract

import (
	"context"

	"github.com/D3M0MK1GN/Demonbot-Telegram/internal/entity"
)

type CaseRepository interface {
	Create(ctx context.Context, c *entity.Case) error
	FindByID(ctx context.Context, id uint) (*entity.Case, error)
	FindAll(ctx context.Context, limit, offset int, status string) ([]*entity.Case, error)
	UpdateStatus(ctx context.Context, id uint, status entity.CaseStatus) (*entity.Case, error)

	// Dashboard aggregations
	Count(ctx context.Context) (int64, error)
	CountByStatus(ctx context.Context, status entity.CaseStatus) (int64, error)
	CountCreatedToday(ctx context.Context) (int64, error)
	SumAmountLost(ctx context.Context) (float64, error)
	StatsByType(ctx context.Context) ([]map[string]interface{}, error)
	StatsHistory(ctx context.Context, days int) ([]map[string]interface{}, error)
}
