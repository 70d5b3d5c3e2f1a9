package telegram

import (
	"context"
	"fmt"
	"strconv"
	"sync"

	"github.com/D3M0MK1GN/Demonbot-Telegram/internal/dto"
	"github.com/D3M0MK1GN/Demonbot-Telegram/internal/pkg/logger"
	"github.com/D3M0MK1GN/Demonbot-Telegram/internal/service"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

const fallbackReply = "Ocurrió un error. Intenta de nuevo."

// Bot is the transport adapter between the Telegram API and the
// conversation core. It owns long polling and nothing else: every
// update is reduced to a dto.Inbound before it crosses the boundary.
type Bot struct {
	api          *tgbotapi.BotAPI
	conversation service.IConversationService
	pollTimeout  int
	logger       logger.ILogger

	// One lock per chat. Updates from different chats run concurrently;
	// updates within a chat are serialized so the interview state never
	// sees two turns at once.
	chatLocks sync.Map
}

func NewBot(token string, pollTimeout int, debug bool, conversation service.IConversationService, log logger.ILogger) (*Bot, error) {
	api, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, fmt.Errorf("failed to authenticate bot: %w", err)
	}
	api.Debug = debug

	log.Info("Telegram", "Bot authenticated", map[string]interface{}{"username": api.Self.UserName})
	return &Bot{
		api:          api,
		conversation: conversation,
		pollTimeout:  pollTimeout,
		logger:       log,
	}, nil
}

// Run polls for updates until the context is cancelled.
func (b *Bot) Run(ctx context.Context) error {
	u := tgbotapi.NewUpdate(0)
	u.Timeout = b.pollTimeout
	updates := b.api.GetUpdatesChan(u)

	for {
		select {
		case <-ctx.Done():
			b.api.StopReceivingUpdates()
			return ctx.Err()
		case update, ok := <-updates:
			if !ok {
				return nil
			}
			if update.Message == nil {
				continue
			}
			go b.dispatch(ctx, update.Message)
		}
	}
}

func (b *Bot) dispatch(ctx context.Context, msg *tgbotapi.Message) {
	lock := b.lockFor(msg.Chat.ID)
	lock.Lock()
	defer lock.Unlock()

	in := mapInbound(msg)
	reply, err := b.conversation.Handle(ctx, in)
	if err != nil {
		b.logger.Error("Telegram", "Conversation handling failed", map[string]interface{}{
			"chat_id": msg.Chat.ID,
			"error":   err.Error(),
		})
		reply = &dto.Reply{Text: fallbackReply}
	}
	if reply == nil {
		return
	}

	out := tgbotapi.NewMessage(msg.Chat.ID, reply.Text)
	if kb, ok := buildKeyboard(reply); ok {
		out.ReplyMarkup = kb
	}
	if _, err := b.api.Send(out); err != nil {
		b.logger.Error("Telegram", "Failed to send reply", map[string]interface{}{
			"chat_id": msg.Chat.ID,
			"error":   err.Error(),
		})
	}
}

func (b *Bot) lockFor(chatID int64) *sync.Mutex {
	v, _ := b.chatLocks.LoadOrStore(chatID, &sync.Mutex{})
	return v.(*sync.Mutex)
}

// mapInbound reduces a raw Telegram message to the conversation DTO.
// Photos use the largest rendition's file id. From is nil for channel
// posts and anonymous admins; those chats get an empty username.
func mapInbound(msg *tgbotapi.Message) dto.Inbound {
	in := dto.Inbound{
		TelegramID: strconv.FormatInt(msg.Chat.ID, 10),
	}
	if msg.From != nil {
		in.Username = msg.From.UserName
	}

	switch {
	case msg.IsCommand():
		in.Kind = dto.InboundCommand
		in.Text = msg.Command()
	case len(msg.Photo) > 0:
		in.Kind = dto.InboundPhoto
		in.FileID = msg.Photo[len(msg.Photo)-1].FileID
		in.Text = msg.Caption
	case msg.Document != nil:
		in.Kind = dto.InboundDocument
		in.FileID = msg.Document.FileID
		in.Text = msg.Caption
	default:
		in.Kind = dto.InboundText
		in.Text = msg.Text
	}
	return in
}

// buildKeyboard renders suggested replies. Replies without buttons send
// no markup, which leaves the previous keyboard in place.
func buildKeyboard(reply *dto.Reply) (tgbotapi.ReplyKeyboardMarkup, bool) {
	if len(reply.Buttons) == 0 {
		return tgbotapi.ReplyKeyboardMarkup{}, false
	}

	rows := make([][]tgbotapi.KeyboardButton, 0, len(reply.Buttons))
	for _, labels := range reply.Buttons {
		row := make([]tgbotapi.KeyboardButton, 0, len(labels))
		for _, label := range labels {
			row = append(row, tgbotapi.NewKeyboardButton(label))
		}
		rows = append(rows, row)
	}

	kb := tgbotapi.NewReplyKeyboard(rows...)
	kb.ResizeKeyboard = true
	kb.OneTimeKeyboard = reply.OneTime
	return kb, true
}
