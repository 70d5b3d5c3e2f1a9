package mapper

import (
	"github.com/D3M0MK1GN/Demonbot-Telegram/internal/entity"
	"github.com/D3M0MK1GN/Demonbot-Telegram/internal/model"
)

type UserMapper struct{}

func NewUserMapper() *UserMapper {
	return &UserMapper{}
}

func (m *UserMapper) ToEntity(u *model.User) *entity.User {
	if u == nil {
		return nil
	}
	return &entity.User{
		Id:               u.Id,
		TelegramID:       u.TelegramID,
		TelegramUsername: u.TelegramUsername,
		Role:             entity.UserRole(u.Role),
		CreatedAt:        u.CreatedAt,
		UpdatedAt:        u.UpdatedAt,
		LastActive:       u.LastActive,
	}
}

func (m *UserMapper) ToModel(u *entity.User) *model.User {
	if u == nil {
		return nil
	}
	return &model.User{
		Id:               u.Id,
		TelegramID:       u.TelegramID,
		TelegramUsername: u.TelegramUsername,
		Role:             string(u.Role),
		CreatedAt:        u.CreatedAt,
		UpdatedAt:        u.UpdatedAt,
		LastActive:       u.LastActive,
	}
}

func (m *UserMapper) ToEntities(users []*model.User) []*entity.User {
	entities := make([]*entity.User, len(users))
	for i, u := range users {
		entities[i] = m.ToEntity(u)
	}
	return entities
}
