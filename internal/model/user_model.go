package model

import "time"

type User struct {
	Id               uint      `gorm:"primaryKey"`
	TelegramID       string    `gorm:"column:telegram_id;type:text;uniqueIndex;not null"`
	TelegramUsername string    `gorm:"column:telegram_username;type:text"`
	Role             string    `gorm:"type:varchar(50);not null;default:'user'"`
	CreatedAt        time.Time `gorm:"autoCreateTime"`
	UpdatedAt        time.Time `gorm:"autoUpdateTime"`
	LastActive       time.Time
}

func (User) TableName() string {
	return "users"
}
