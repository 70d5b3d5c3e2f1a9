package handler

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/D3M0MK1GN/Demonbot-Telegram/internal/entity"
	"github.com/D3M0MK1GN/Demonbot-Telegram/internal/pkg/logger"
	"github.com/D3M0MK1GN/Demonbot-Telegram/internal/repository/unitofwork"
	internalWS "github.com/D3M0MK1GN/Demonbot-Telegram/internal/websocket"
	"github.com/D3M0MK1GN/Demonbot-Telegram/pkg/events"

	"github.com/ThreeDotsLabs/watermill/message"
)

// CaseEventHandler consumes bot events off the bus: every interaction
// becomes an audit row, and new cases are pushed to the dashboard feed.
// Keeping this off the hot path means a slow database write never
// delays the user's reply.
type CaseEventHandler struct {
	subscriber message.Subscriber
	uowFactory unitofwork.RepositoryFactory
	hub        *internalWS.Hub
	logger     logger.ILogger
}

func NewCaseEventHandler(
	subscriber message.Subscriber,
	uowFactory unitofwork.RepositoryFactory,
	hub *internalWS.Hub,
	log logger.ILogger,
) *CaseEventHandler {
	return &CaseEventHandler{
		subscriber: subscriber,
		uowFactory: uowFactory,
		hub:        hub,
		logger:     log,
	}
}

// Run blocks consuming events until the context is cancelled. Messages
// are always acked: a failed audit write is logged, never retried.
func (h *CaseEventHandler) Run(ctx context.Context) error {
	messages, err := h.subscriber.Subscribe(ctx, events.TopicBotEvents)
	if err != nil {
		return fmt.Errorf("failed to subscribe to %s: %w", events.TopicBotEvents, err)
	}

	h.logger.Info("CaseEventHandler", "Listening for bot events", nil)
	for msg := range messages {
		if err := h.handle(msg); err != nil {
			h.logger.Error("CaseEventHandler", "Failed to handle event", map[string]interface{}{
				"message_id": msg.UUID,
				"error":      err.Error(),
			})
		}
		msg.Ack()
	}
	return nil
}

func (h *CaseEventHandler) handle(msg *message.Message) error {
	var envelope events.Envelope
	if err := json.Unmarshal(msg.Payload, &envelope); err != nil {
		return fmt.Errorf("failed to unmarshal envelope: %w", err)
	}

	ctx := msg.Context()
	switch envelope.Type {
	case events.TypeBotInteraction:
		return h.recordInteraction(ctx, envelope.Payload)
	case events.TypeCaseCreated:
		h.hub.Broadcast("case_created", envelope.Payload)
		return nil
	default:
		h.logger.Debug("CaseEventHandler", "Ignoring event", map[string]interface{}{"type": envelope.Type})
		return nil
	}
}

func (h *CaseEventHandler) recordInteraction(ctx context.Context, payload map[string]interface{}) error {
	telegramID, _ := payload["telegram_id"].(string)
	if telegramID == "" {
		return fmt.Errorf("interaction event missing telegram_id")
	}
	messageText, _ := payload["message"].(string)
	actionType, _ := payload["action_type"].(string)

	uow := h.uowFactory.NewUnitOfWork(ctx)

	interaction := &entity.BotInteraction{
		TelegramID: telegramID,
		Message:    messageText,
		ActionType: actionType,
	}
	// The user row normally exists by the time the event lands; a
	// missing one still gets an audit row with a nil user reference.
	if user, err := uow.UserRepository().FindByTelegramID(ctx, telegramID); err == nil && user != nil {
		interaction.UserId = &user.Id
	}

	return uow.BotInteractionRepository().Create(ctx, interaction)
}
