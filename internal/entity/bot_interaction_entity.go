package entity

import "time"

// BotInteraction is the audit trail of handled updates, written
// asynchronously by the event handler.
type BotInteraction struct {
	Id         uint
	UserId     *uint
	TelegramID string
	Message    string
	ActionType string
	CreatedAt  time.Time
}
