package mapper

import (
	"github.com/D3M0MK1GN/Demonbot-Telegram/internal/entity"
	"github.com/D3M0MK1GN/Demonbot-Telegram/internal/model"
)

type BotInteractionMapper struct{}

func NewBotInteractionMapper() *BotInteractionMapper {
	return &BotInteractionMapper{}
}

func (m *BotInteractionMapper) ToEntity(i *model.BotInteraction) *entity.BotInteraction {
	if i == nil {
		return nil
	}
	return &entity.BotInteraction{
		Id:         i.Id,
		UserId:     i.UserId,
		TelegramID: i.TelegramID,
		Message:    i.Message,
		ActionType: i.ActionType,
		CreatedAt:  i.CreatedAt,
	}
}

func (m *BotInteractionMapper) ToModel(i *entity.BotInteraction) *model.BotInteraction {
	if i == nil {
		return nil
	}
	return &model.BotInteraction{
		Id:         i.Id,
		UserId:     i.UserId,
		TelegramID: i.TelegramID,
		Message:    i.Message,
		ActionType: i.ActionType,
		CreatedAt:  i.CreatedAt,
	}
}
