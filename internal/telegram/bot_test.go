package telegram

import (
	"testing"

	"github.com/D3M0MK1GN/Demonbot-Telegram/internal/dto"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func baseMessage() *tgbotapi.Message {
	return &tgbotapi.Message{
		Chat: &tgbotapi.Chat{ID: 1001},
		From: &tgbotapi.User{UserName: "reporter"},
	}
}

func TestMapInboundText(t *testing.T) {
	msg := baseMessage()
	msg.Text = "Reportar un incidente"

	in := mapInbound(msg)
	assert.Equal(t, "1001", in.TelegramID)
	assert.Equal(t, "reporter", in.Username)
	assert.Equal(t, dto.InboundText, in.Kind)
	assert.Equal(t, "Reportar un incidente", in.Text)
	assert.Empty(t, in.FileID)
}

func TestMapInboundWithoutSender(t *testing.T) {
	// Channel posts and anonymous group admins carry no From.
	msg := &tgbotapi.Message{Chat: &tgbotapi.Chat{ID: 1001}, Text: "hola"}

	in := mapInbound(msg)
	assert.Equal(t, "1001", in.TelegramID)
	assert.Empty(t, in.Username)
	assert.Equal(t, dto.InboundText, in.Kind)
	assert.Equal(t, "hola", in.Text)
}

func TestMapInboundCommand(t *testing.T) {
	msg := baseMessage()
	msg.Text = "/start"
	msg.Entities = []tgbotapi.MessageEntity{{Type: "bot_command", Offset: 0, Length: 6}}

	in := mapInbound(msg)
	assert.Equal(t, dto.InboundCommand, in.Kind)
	assert.Equal(t, "start", in.Text)
}

func TestMapInboundPhotoUsesLargestRendition(t *testing.T) {
	msg := baseMessage()
	msg.Photo = []tgbotapi.PhotoSize{
		{FileID: "small", Width: 90},
		{FileID: "medium", Width: 320},
		{FileID: "large", Width: 1280},
	}
	msg.Caption = "la captura"

	in := mapInbound(msg)
	assert.Equal(t, dto.InboundPhoto, in.Kind)
	assert.Equal(t, "large", in.FileID)
	assert.Equal(t, "la captura", in.Text)
}

func TestMapInboundDocument(t *testing.T) {
	msg := baseMessage()
	msg.Document = &tgbotapi.Document{FileID: "doc-1", FileName: "estado_de_cuenta.pdf"}

	in := mapInbound(msg)
	assert.Equal(t, dto.InboundDocument, in.Kind)
	assert.Equal(t, "doc-1", in.FileID)
}

func TestBuildKeyboard(t *testing.T) {
	kb, ok := buildKeyboard(&dto.Reply{
		Text:    "¿Qué tipo de incidente?",
		Buttons: [][]string{{"Phishing"}, {"Extorsión", "Otros"}},
		OneTime: true,
	})
	require.True(t, ok)
	assert.True(t, kb.ResizeKeyboard)
	assert.True(t, kb.OneTimeKeyboard)
	require.Len(t, kb.Keyboard, 2)
	assert.Equal(t, "Phishing", kb.Keyboard[0][0].Text)
	assert.Equal(t, "Otros", kb.Keyboard[1][1].Text)
}

func TestBuildKeyboardWithoutButtons(t *testing.T) {
	_, ok := buildKeyboard(&dto.Reply{Text: "Recibido. ¿Algo más?"})
	assert.False(t, ok)
}
