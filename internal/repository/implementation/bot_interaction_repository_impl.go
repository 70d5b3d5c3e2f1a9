package implementation

import (
	"context"

	"github.com/D3M0MK1GN/Demonbot-Telegram/internal/entity"
	"github.com/D3M0MK1GN/Demonbot-Telegram/internal/mapper"
	"github.com/D3M0MK1GN/Demonbot-Telegram/internal/repository/contract"

	"gorm.io/gorm"
)

type BotInteractionRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.BotInteractionMapper
}

func NewBotInteractionRepository(db *gorm.DB) contract.BotInteractionRepository {
	return &BotInteractionRepositoryImpl{
		db:     db,
		mapper: mapper.NewBotInteractionMapper(),
	}
}

func (r *BotInteractionRepositoryImpl) Create(ctx context.Context, i *entity.BotInteraction) error {
	m := r.mapper.ToModel(i)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*i = *r.mapper.ToEntity(m)
	return nil
}
