package contract

import (
	"context"

	"github.com/D3M0MK1GN/Demonbot-Telegram/internal/entity"
)

type UserRepository interface {
	// Upsert creates the user on first contact or refreshes username and
	// last_active on every later one. Safe to call on every update.
	Upsert(ctx context.Context, telegramID, username string) (*entity.User, error)
	FindByTelegramID(ctx context.Context, telegramID string) (*entity.User, error)
	FindByID(ctx context.Context, id uint) (*entity.User, error)
	FindRecentlyActive(ctx context.Context, limit int) ([]*entity.User, error)
	Count(ctx context.Context) (int64, error)
}
