package dto

// Telegram boundary DTOs. The transport adapter maps raw updates into
// Inbound once; the conversation core never touches transport types.

type InboundKind string

const (
	InboundCommand  InboundKind = "command"
	InboundText     InboundKind = "text"
	InboundPhoto    InboundKind = "photo"
	InboundDocument InboundKind = "document"
)

type Inbound struct {
	TelegramID string
	Username   string
	Kind       InboundKind
	Text       string // message text, or command name for InboundCommand
	FileID     string // attachment reference for photo/document
}

// Reply is the outbound response for one turn. Buttons are suggested
// replies rendered as a reply keyboard; they never constrain input.
type Reply struct {
	Text    string
	Buttons [][]string
	OneTime bool
}
