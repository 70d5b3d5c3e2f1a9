package entity

import "time"

type UserRole string

const (
	UserRoleUser  UserRole = "user"
	UserRoleAdmin UserRole = "admin"
)

type User struct {
	Id               uint
	TelegramID       string
	TelegramUsername string
	Role             UserRole
	CreatedAt        time.Time
	UpdatedAt        time.Time
	LastActive       time.Time
}
