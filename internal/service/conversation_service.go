package service

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/D3M0MK1GN/Demonbot-Telegram/internal/constant"
	"github.com/D3M0MK1GN/Demonbot-Telegram/internal/dto"
	"github.com/D3M0MK1GN/Demonbot-Telegram/internal/entity"
	"github.com/D3M0MK1GN/Demonbot-Telegram/internal/pkg/logger"
	"github.com/D3M0MK1GN/Demonbot-Telegram/internal/repository/memory"
	"github.com/D3M0MK1GN/Demonbot-Telegram/pkg/events"
	"github.com/D3M0MK1GN/Demonbot-Telegram/pkg/store"
)

// IConversationService drives the intake dialogue. Handle processes
// exactly one inbound message and always produces a reply.
type IConversationService interface {
	Handle(ctx context.Context, in dto.Inbound) (*dto.Reply, error)
}

type conversationService struct {
	sessions    *memory.SessionRepository
	caseService ICaseService
	publisher   *events.Publisher
	logger      logger.ILogger
}

func NewConversationService(
	sessions *memory.SessionRepository,
	caseService ICaseService,
	publisher *events.Publisher,
	log logger.ILogger,
) IConversationService {
	return &conversationService{
		sessions:    sessions,
		caseService: caseService,
		publisher:   publisher,
		logger:      log,
	}
}

// inputKind classifies a turn once; the per-state handlers decide what
// the classification means there. Mid-interview, a menu trigger is just
// text: only IDLE acts on it.
type inputKind int

const (
	inputText inputKind = iota
	inputFile
	inputStart
	inputCancel
	inputSkip
	inputFinalize
	inputMenuReport
	inputMenuLookup
	inputMenuAdvisor
)

func resolveInput(in dto.Inbound) inputKind {
	switch in.Kind {
	case dto.InboundPhoto, dto.InboundDocument:
		return inputFile
	case dto.InboundCommand:
		switch strings.ToLower(in.Text) {
		case constant.CommandStart:
			return inputStart
		case constant.CommandCancel:
			return inputCancel
		}
		// Unknown commands flow through as plain text.
		return inputText
	}

	t := strings.ToLower(strings.TrimSpace(in.Text))
	switch {
	case t == constant.KeywordCancel:
		return inputCancel
	case t == constant.KeywordSkip:
		return inputSkip
	case t == constant.KeywordFinalize:
		return inputFinalize
	case strings.HasPrefix(t, constant.TriggerReport):
		return inputMenuReport
	case strings.HasPrefix(t, constant.TriggerLookup):
		return inputMenuLookup
	case strings.HasPrefix(t, constant.TriggerAdvisor):
		return inputMenuAdvisor
	}
	return inputText
}

func (s *conversationService) Handle(ctx context.Context, in dto.Inbound) (*dto.Reply, error) {
	// Touch the user record on every interaction. A failure here is not
	// fatal: the interview lives in memory and the user is resolved
	// again inside the finalization transaction.
	if _, err := s.caseService.EnsureUser(ctx, in.TelegramID, in.Username); err != nil {
		s.logger.Warn("Conversation", "Failed to upsert user", map[string]interface{}{
			"telegram_id": in.TelegramID,
			"error":       err.Error(),
		})
	}

	session := s.sessions.GetOrCreate(in.TelegramID, in.Username)
	kind := resolveInput(in)
	stateBefore := session.State

	var reply *dto.Reply
	switch session.State {
	case store.StateReportType:
		reply = s.handleReportType(session, kind, in)
	case store.StateReportDescription:
		reply = s.handleReportDescription(session, kind, in)
	case store.StateReportLocation:
		reply = s.handleReportLocation(session, kind, in)
	case store.StateReportAmount:
		reply = s.handleReportAmount(session, kind, in)
	case store.StateReportEvidence:
		reply = s.handleReportEvidence(ctx, session, kind, in)
	case store.StateLookupNumber:
		reply = s.handleLookupNumber(ctx, session, kind, in)
	default:
		reply = s.handleIdle(session, kind)
	}

	s.publishInteraction(ctx, in, stateBefore)
	return reply, nil
}

// --- IDLE ---

func (s *conversationService) handleIdle(session *store.Session, kind inputKind) *dto.Reply {
	switch kind {
	case inputMenuReport:
		session.Reset()
		session.State = store.StateReportType
		s.sessions.Save(session)
		return &dto.Reply{Text: constant.MsgAskType, Buttons: constant.TypeKeyboard, OneTime: true}
	case inputMenuLookup:
		session.Reset()
		session.State = store.StateLookupNumber
		s.sessions.Save(session)
		return &dto.Reply{Text: constant.MsgAskNumber, Buttons: constant.CancelKeyboard}
	case inputMenuAdvisor:
		return &dto.Reply{Text: constant.MsgAdvisor, Buttons: constant.MainMenuKeyboard}
	case inputStart:
		session.Reset()
		s.sessions.Save(session)
		return s.welcome()
	default:
		// Anything unrecognized at rest just re-offers the menu.
		return s.welcome()
	}
}

func (s *conversationService) welcome() *dto.Reply {
	return &dto.Reply{Text: constant.MsgWelcome, Buttons: constant.MainMenuKeyboard}
}

// --- report interview ---

func (s *conversationService) handleReportType(session *store.Session, kind inputKind, in dto.Inbound) *dto.Reply {
	if interrupted, reply := s.interrupt(session, kind); interrupted {
		return reply
	}
	text := strings.TrimSpace(in.Text)
	if kind == inputFile || text == "" {
		return &dto.Reply{Text: constant.MsgAskType, Buttons: constant.TypeKeyboard, OneTime: true}
	}
	session.CrimeType = text
	session.State = store.StateReportDescription
	s.sessions.Save(session)
	return &dto.Reply{Text: constant.MsgAskDescription, Buttons: constant.CancelKeyboard}
}

func (s *conversationService) handleReportDescription(session *store.Session, kind inputKind, in dto.Inbound) *dto.Reply {
	if interrupted, reply := s.interrupt(session, kind); interrupted {
		return reply
	}
	text := strings.TrimSpace(in.Text)
	if kind == inputFile || text == "" {
		return &dto.Reply{Text: constant.MsgAskDescription, Buttons: constant.CancelKeyboard}
	}
	session.Description = text
	session.State = store.StateReportLocation
	s.sessions.Save(session)
	return &dto.Reply{Text: constant.MsgAskLocation, Buttons: constant.LocationKeyboard}
}

func (s *conversationService) handleReportLocation(session *store.Session, kind inputKind, in dto.Inbound) *dto.Reply {
	if interrupted, reply := s.interrupt(session, kind); interrupted {
		return reply
	}
	switch kind {
	case inputSkip:
		session.Location = nil
	case inputFile:
		return &dto.Reply{Text: constant.MsgAskLocation, Buttons: constant.LocationKeyboard}
	default:
		text := strings.TrimSpace(in.Text)
		if text == "" {
			return &dto.Reply{Text: constant.MsgAskLocation, Buttons: constant.LocationKeyboard}
		}
		session.Location = &text
	}
	session.State = store.StateReportAmount
	s.sessions.Save(session)
	return &dto.Reply{Text: constant.MsgAskAmount, Buttons: constant.AmountKeyboard}
}

func (s *conversationService) handleReportAmount(session *store.Session, kind inputKind, in dto.Inbound) *dto.Reply {
	if interrupted, reply := s.interrupt(session, kind); interrupted {
		return reply
	}
	if kind == inputFile {
		return &dto.Reply{Text: constant.MsgAskAmount, Buttons: constant.AmountKeyboard}
	}
	amount, err := parseAmount(in.Text)
	if err != nil {
		// Unparseable money keeps the user on the same question.
		return &dto.Reply{Text: constant.MsgAskAmount, Buttons: constant.AmountKeyboard}
	}
	session.AmountLost = amount
	session.State = store.StateReportEvidence
	s.sessions.Save(session)
	return &dto.Reply{Text: constant.MsgAskEvidence, Buttons: constant.EvidenceKeyboard}
}

func (s *conversationService) handleReportEvidence(ctx context.Context, session *store.Session, kind inputKind, in dto.Inbound) *dto.Reply {
	if interrupted, reply := s.interrupt(session, kind); interrupted {
		return reply
	}
	switch kind {
	case inputFile:
		session.Evidence = append(session.Evidence, in.FileID)
		s.sessions.Save(session)
		return &dto.Reply{Text: constant.MsgEvidenceReceived}
	case inputFinalize:
		return s.finalize(ctx, session)
	default:
		return &dto.Reply{Text: constant.MsgAskEvidence, Buttons: constant.EvidenceKeyboard}
	}
}

func (s *conversationService) finalize(ctx context.Context, session *store.Session) *dto.Reply {
	answers := entity.CaseAnswers{
		Type:        session.CrimeType,
		Description: session.Description,
		Location:    session.Location,
		AmountLost:  session.AmountLost,
	}
	c, err := s.caseService.CreateCaseWithEvidence(ctx, session.TelegramID, session.Username, answers, session.Evidence)
	if err != nil {
		// Nothing was committed; keep the session so the user can retry.
		s.logger.Error("Conversation", "Finalization failed", map[string]interface{}{
			"telegram_id": session.TelegramID,
			"error":       err.Error(),
		})
		return &dto.Reply{Text: constant.MsgSaveFailed, Buttons: constant.EvidenceKeyboard}
	}

	s.publishCaseCreated(ctx, session.TelegramID, c)
	s.sessions.Delete(session.TelegramID)
	return &dto.Reply{
		Text:    fmt.Sprintf(constant.MsgReportSavedFmt, c.Id),
		Buttons: constant.MainMenuKeyboard,
	}
}

// --- number lookup ---

func (s *conversationService) handleLookupNumber(ctx context.Context, session *store.Session, kind inputKind, in dto.Inbound) *dto.Reply {
	if interrupted, reply := s.interrupt(session, kind); interrupted {
		return reply
	}
	number := strings.TrimSpace(in.Text)
	if kind == inputFile || number == "" {
		return &dto.Reply{Text: constant.MsgAskNumber, Buttons: constant.CancelKeyboard}
	}

	record, err := s.caseService.LookupReportCount(ctx, number)

	// The lookup is terminal either way.
	session.Reset()
	s.sessions.Save(session)

	if err != nil {
		s.logger.Error("Conversation", "Number lookup failed", map[string]interface{}{
			"telegram_id": session.TelegramID,
			"error":       err.Error(),
		})
		return &dto.Reply{Text: constant.MsgLookupFailed, Buttons: constant.MainMenuKeyboard}
	}
	if record == nil {
		return &dto.Reply{Text: constant.MsgNoReports, Buttons: constant.MainMenuKeyboard}
	}
	return &dto.Reply{
		Text:    fmt.Sprintf(constant.MsgReportedTimesFmt, record.ReportCount),
		Buttons: constant.MainMenuKeyboard,
	}
}

// --- shared transitions ---

// interrupt handles the inputs that leave an in-progress flow: explicit
// cancellation and /start. Both discard every accumulated answer.
func (s *conversationService) interrupt(session *store.Session, kind inputKind) (bool, *dto.Reply) {
	switch kind {
	case inputCancel:
		return true, s.cancel(session)
	case inputStart:
		session.Reset()
		s.sessions.Save(session)
		return true, s.welcome()
	}
	return false, nil
}

func (s *conversationService) cancel(session *store.Session) *dto.Reply {
	s.sessions.Delete(session.TelegramID)
	return &dto.Reply{Text: constant.MsgCancelled, Buttons: constant.MainMenuKeyboard}
}

// parseAmount normalizes money text the way people type it: a leading
// currency sign and thousands separators are stripped before parsing.
func parseAmount(raw string) (float64, error) {
	t := strings.TrimSpace(raw)
	t = strings.TrimPrefix(t, "$")
	t = strings.ReplaceAll(t, ",", "")
	t = strings.TrimSpace(t)
	if t == "" {
		return 0, fmt.Errorf("empty amount")
	}
	v, err := strconv.ParseFloat(t, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid amount %q: %w", raw, err)
	}
	if v < 0 {
		return 0, fmt.Errorf("negative amount %q", raw)
	}
	return v, nil
}

// --- event publication ---

func (s *conversationService) publishInteraction(ctx context.Context, in dto.Inbound, state string) {
	message := in.Text
	if in.FileID != "" {
		message = "[archivo] " + in.FileID
	}
	err := s.publisher.Publish(ctx, events.BaseEvent{
		Type: events.TypeBotInteraction,
		Data: map[string]interface{}{
			"telegram_id": in.TelegramID,
			"message":     message,
			"action_type": state,
		},
		OccurredAt: time.Now(),
	})
	if err != nil {
		s.logger.Warn("Conversation", "Failed to publish interaction event", map[string]interface{}{
			"telegram_id": in.TelegramID,
			"error":       err.Error(),
		})
	}
}

func (s *conversationService) publishCaseCreated(ctx context.Context, telegramID string, c *entity.Case) {
	err := s.publisher.Publish(ctx, events.BaseEvent{
		Type: events.TypeCaseCreated,
		Data: map[string]interface{}{
			"case_id":     c.Id,
			"case_number": c.CaseNumber,
			"type":        c.Type,
			"amount_lost": c.AmountLost,
			"telegram_id": telegramID,
		},
		OccurredAt: time.Now(),
	})
	if err != nil {
		s.logger.Warn("Conversation", "Failed to publish case event", map[string]interface{}{
			"case_id": c.Id,
			"error":   err.Error(),
		})
	}
}
