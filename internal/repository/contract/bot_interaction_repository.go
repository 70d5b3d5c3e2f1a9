package contract

import (
	"context"

	"github.com/D3M0MK1GN/Demonbot-Telegram/internal/entity"
)

type BotInteractionRepository interface {
	Create(ctx context.Context, i *entity.BotInteraction) error
}
