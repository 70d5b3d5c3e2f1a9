package model

import "time"

type BotInteraction struct {
	Id         uint      `gorm:"primaryKey"`
	UserId     *uint     `gorm:"index"`
	TelegramID string    `gorm:"column:telegram_id;type:text;index"`
	Message    string    `gorm:"type:text"`
	ActionType string    `gorm:"type:varchar(100)"`
	CreatedAt  time.Time `gorm:"autoCreateTime"`
}

func (BotInteraction) TableName() string {
	return "bot_interactions"
}
