package store

// Session represents the transient interview state for one Telegram chat.
// It lives in memory only: answers are committed to the database in a
// single transaction when the user finalizes the report.
type Session struct {
	TelegramID string `json:"telegram_id"`
	Username   string `json:"username"`
	State      string `json:"state"`

	// Accumulated report answers
	CrimeType   string   `json:"crime_type"`
	Description string   `json:"description"`
	Location    *string  `json:"location"` // nil when the user skipped the question
	AmountLost  float64  `json:"amount_lost"`
	Evidence    []string `json:"evidence"` // Telegram file ids, in the order received
}

// Conversation states. IDLE is the only terminal state; every flow
// returns to it on finalize or cancel.
const (
	StateIdle              = "IDLE"
	StateReportType        = "REPORT_TYPE"
	StateReportDescription = "REPORT_DESCRIPTION"
	StateReportLocation    = "REPORT_LOCATION"
	StateReportAmount      = "REPORT_AMOUNT"
	StateReportEvidence    = "REPORT_EVIDENCE"
	StateLookupNumber      = "LOOKUP_NUMBER"
)

func NewSession(telegramID, username string) *Session {
	return &Session{
		TelegramID: telegramID,
		Username:   username,
		State:      StateIdle,
	}
}

// Reset discards every accumulated answer and returns the session to IDLE.
func (s *Session) Reset() {
	s.State = StateIdle
	s.CrimeType = ""
	s.Description = ""
	s.Location = nil
	s.AmountLost = 0
	s.Evidence = nil
}
