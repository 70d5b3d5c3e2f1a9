package service

import (
	"context"
	"fmt"
	"path/filepath"
	"testing"

	"github.com/D3M0MK1GN/Demonbot-Telegram/internal/constant"
	"github.com/D3M0MK1GN/Demonbot-Telegram/internal/dto"
	"github.com/D3M0MK1GN/Demonbot-Telegram/internal/entity"
	"github.com/D3M0MK1GN/Demonbot-Telegram/internal/pkg/logger"
	"github.com/D3M0MK1GN/Demonbot-Telegram/internal/repository/memory"
	"github.com/D3M0MK1GN/Demonbot-Telegram/pkg/store"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// --- fake case service ---

type createdCase struct {
	telegramID string
	username   string
	answers    entity.CaseAnswers
	evidence   []string
}

type fakeCaseService struct {
	ensured   int
	created   []createdCase
	createErr error
	lookup    map[string]*entity.ReportedNumber
	lookupErr error
}

func (f *fakeCaseService) EnsureUser(ctx context.Context, telegramID, username string) (*entity.User, error) {
	f.ensured++
	return &entity.User{Id: 1, TelegramID: telegramID, TelegramUsername: username}, nil
}

func (f *fakeCaseService) CreateCaseWithEvidence(ctx context.Context, telegramID, username string, answers entity.CaseAnswers, evidence []string) (*entity.Case, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	f.created = append(f.created, createdCase{
		telegramID: telegramID,
		username:   username,
		answers:    answers,
		evidence:   append([]string(nil), evidence...),
	})
	return &entity.Case{
		Id:         uint(len(f.created) + 41),
		CaseNumber: "CASE-20260901-AB12CD34",
		Type:       answers.Type,
		Status:     entity.CaseStatusNuevo,
	}, nil
}

func (f *fakeCaseService) LookupReportCount(ctx context.Context, number string) (*entity.ReportedNumber, error) {
	if f.lookupErr != nil {
		return nil, f.lookupErr
	}
	return f.lookup[number], nil
}

func (f *fakeCaseService) GetDashboardStats(ctx context.Context) (*dto.DashboardStatsResponse, error) {
	return nil, nil
}
func (f *fakeCaseService) GetStatsByType(ctx context.Context) ([]dto.TypeStatResponse, error) {
	return nil, nil
}
func (f *fakeCaseService) GetStatsHistory(ctx context.Context) ([]dto.HistoryPointResponse, error) {
	return nil, nil
}
func (f *fakeCaseService) ListCases(ctx context.Context, limit, offset int, status string) ([]dto.CaseResponse, error) {
	return nil, nil
}
func (f *fakeCaseService) GetCase(ctx context.Context, id uint) (*dto.CaseDetailResponse, error) {
	return nil, nil
}
func (f *fakeCaseService) UpdateCaseStatus(ctx context.Context, id uint, status string) (*dto.CaseResponse, error) {
	return nil, nil
}
func (f *fakeCaseService) GetActiveUsers(ctx context.Context, limit int) ([]dto.ActiveUserResponse, error) {
	return nil, nil
}
func (f *fakeCaseService) GetTopReportedNumbers(ctx context.Context, limit int) ([]dto.ReportedNumberResponse, error) {
	return nil, nil
}

// --- harness ---

const testChatID = "1001"

func newTestConversation(t *testing.T, fake *fakeCaseService) (IConversationService, *memory.SessionRepository) {
	t.Helper()
	sessions := memory.NewSessionRepository()
	log := logger.NewZapLogger(filepath.Join(t.TempDir(), "test.log"), false)
	svc := NewConversationService(sessions, fake, nil, log)
	return svc, sessions
}

func sendText(t *testing.T, svc IConversationService, text string) *dto.Reply {
	t.Helper()
	reply, err := svc.Handle(context.Background(), dto.Inbound{
		TelegramID: testChatID,
		Username:   "reporter",
		Kind:       dto.InboundText,
		Text:       text,
	})
	require.NoError(t, err)
	require.NotNil(t, reply)
	return reply
}

func sendPhoto(t *testing.T, svc IConversationService, fileID string) *dto.Reply {
	t.Helper()
	reply, err := svc.Handle(context.Background(), dto.Inbound{
		TelegramID: testChatID,
		Username:   "reporter",
		Kind:       dto.InboundPhoto,
		FileID:     fileID,
	})
	require.NoError(t, err)
	require.NotNil(t, reply)
	return reply
}

func sendCommand(t *testing.T, svc IConversationService, command string) *dto.Reply {
	t.Helper()
	reply, err := svc.Handle(context.Background(), dto.Inbound{
		TelegramID: testChatID,
		Username:   "reporter",
		Kind:       dto.InboundCommand,
		Text:       command,
	})
	require.NoError(t, err)
	require.NotNil(t, reply)
	return reply
}

// Drives the interview up to the evidence question.
func driveToEvidence(t *testing.T, svc IConversationService) {
	t.Helper()
	sendText(t, svc, "Reportar un incidente")
	sendText(t, svc, "Phishing")
	sendText(t, svc, "Me llegó un correo falso del banco")
	sendText(t, svc, "CDMX")
	assert.Equal(t, constant.MsgAskEvidence, sendText(t, svc, "$1,000").Text)
}

// --- tests ---

func TestReportFlowHappyPath(t *testing.T) {
	fake := &fakeCaseService{}
	svc, sessions := newTestConversation(t, fake)

	assert.Equal(t, constant.MsgAskType, sendText(t, svc, "Reportar un incidente").Text)
	assert.Equal(t, constant.MsgAskDescription, sendText(t, svc, "Phishing").Text)
	assert.Equal(t, constant.MsgAskLocation, sendText(t, svc, "Me llegó un correo falso del banco").Text)
	assert.Equal(t, constant.MsgAskAmount, sendText(t, svc, "CDMX").Text)
	assert.Equal(t, constant.MsgAskEvidence, sendText(t, svc, "$1,000").Text)
	assert.Equal(t, constant.MsgEvidenceReceived, sendPhoto(t, svc, "file-1").Text)
	assert.Equal(t, constant.MsgEvidenceReceived, sendPhoto(t, svc, "file-2").Text)

	reply := sendText(t, svc, "Finalizar")
	assert.Equal(t, fmt.Sprintf(constant.MsgReportSavedFmt, 42), reply.Text)
	assert.Equal(t, constant.MainMenuKeyboard, reply.Buttons)

	require.Len(t, fake.created, 1)
	got := fake.created[0]
	assert.Equal(t, testChatID, got.telegramID)
	assert.Equal(t, "Phishing", got.answers.Type)
	assert.Equal(t, "Me llegó un correo falso del banco", got.answers.Description)
	require.NotNil(t, got.answers.Location)
	assert.Equal(t, "CDMX", *got.answers.Location)
	assert.Equal(t, 1000.0, got.answers.AmountLost)
	assert.Equal(t, []string{"file-1", "file-2"}, got.evidence)

	// Session is destroyed after finalization.
	_, alive := sessions.Get(testChatID)
	assert.False(t, alive)
}

func TestCancelFromEveryState(t *testing.T) {
	// Number of interview answers to give before cancelling.
	steps := [][]string{
		{"Reportar un incidente"},
		{"Reportar un incidente", "Extorsión"},
		{"Reportar un incidente", "Extorsión", "Me amenazaron por teléfono"},
		{"Reportar un incidente", "Extorsión", "Me amenazaron por teléfono", "Monterrey"},
		{"Reportar un incidente", "Extorsión", "Me amenazaron por teléfono", "Monterrey", "500"},
		{"Consultar número sospechoso"},
	}

	for i, setup := range steps {
		t.Run(fmt.Sprintf("state_%d", i), func(t *testing.T) {
			fake := &fakeCaseService{}
			svc, sessions := newTestConversation(t, fake)
			for _, msg := range setup {
				sendText(t, svc, msg)
			}

			reply := sendText(t, svc, "cancelar")
			assert.Equal(t, constant.MsgCancelled, reply.Text)
			assert.Equal(t, constant.MainMenuKeyboard, reply.Buttons)

			_, alive := sessions.Get(testChatID)
			assert.False(t, alive)
			assert.Empty(t, fake.created)

			// The chat is usable again right away.
			assert.Equal(t, constant.MsgAskType, sendText(t, svc, "Reportar un incidente").Text)
		})
	}
}

func TestStartCommandResetsInterview(t *testing.T) {
	fake := &fakeCaseService{}
	svc, sessions := newTestConversation(t, fake)

	sendText(t, svc, "Reportar un incidente")
	sendText(t, svc, "Phishing")
	sendText(t, svc, "Descripción a descartar")

	reply := sendCommand(t, svc, "start")
	assert.Equal(t, constant.MsgWelcome, reply.Text)

	session, alive := sessions.Get(testChatID)
	require.True(t, alive)
	assert.Equal(t, store.StateIdle, session.State)
	assert.Empty(t, session.CrimeType)
	assert.Empty(t, session.Description)
}

func TestStartCommandResetsFromEvidenceState(t *testing.T) {
	fake := &fakeCaseService{}
	svc, sessions := newTestConversation(t, fake)

	driveToEvidence(t, svc)
	sendPhoto(t, svc, "file-1")

	reply := sendCommand(t, svc, "start")
	assert.Equal(t, constant.MsgWelcome, reply.Text)

	session, alive := sessions.Get(testChatID)
	require.True(t, alive)
	assert.Equal(t, store.StateIdle, session.State)
	assert.Empty(t, session.Evidence)
	assert.Empty(t, fake.created)
}

func TestParseAmount(t *testing.T) {
	cases := []struct {
		in      string
		want    float64
		wantErr bool
	}{
		{"100", 100, false},
		{"$1,000", 1000, false},
		{"250.50", 250.5, false},
		{" $2,500.75 ", 2500.75, false},
		{"0", 0, false},
		{"abc", 0, true},
		{"", 0, true},
		{"$", 0, true},
		{"-5", 0, true},
	}
	for _, tc := range cases {
		got, err := parseAmount(tc.in)
		if tc.wantErr {
			assert.Error(t, err, "input %q", tc.in)
			continue
		}
		assert.NoError(t, err, "input %q", tc.in)
		assert.Equal(t, tc.want, got, "input %q", tc.in)
	}
}

func TestInvalidAmountRepromptsSameQuestion(t *testing.T) {
	fake := &fakeCaseService{}
	svc, _ := newTestConversation(t, fake)

	sendText(t, svc, "Reportar un incidente")
	sendText(t, svc, "Otros")
	sendText(t, svc, "Descripción")
	sendText(t, svc, "Guadalajara")

	assert.Equal(t, constant.MsgAskAmount, sendText(t, svc, "mucho dinero").Text)
	assert.Equal(t, constant.MsgAskAmount, sendText(t, svc, "-20").Text)
	assert.Equal(t, constant.MsgAskEvidence, sendText(t, svc, "100").Text)
}

func TestSkipLocation(t *testing.T) {
	fake := &fakeCaseService{}
	svc, _ := newTestConversation(t, fake)

	sendText(t, svc, "Reportar un incidente")
	sendText(t, svc, "Phishing")
	sendText(t, svc, "Descripción")
	assert.Equal(t, constant.MsgAskAmount, sendText(t, svc, "Omitir").Text)
	sendText(t, svc, "0")
	sendText(t, svc, "Finalizar")

	require.Len(t, fake.created, 1)
	assert.Nil(t, fake.created[0].answers.Location)
	assert.Equal(t, 0.0, fake.created[0].answers.AmountLost)
}

func TestFinalizeFailureKeepsSession(t *testing.T) {
	fake := &fakeCaseService{createErr: fmt.Errorf("db down")}
	svc, sessions := newTestConversation(t, fake)

	driveToEvidence(t, svc)
	sendPhoto(t, svc, "file-1")

	reply := sendText(t, svc, "Finalizar")
	assert.Equal(t, constant.MsgSaveFailed, reply.Text)

	session, alive := sessions.Get(testChatID)
	require.True(t, alive)
	assert.Equal(t, store.StateReportEvidence, session.State)
	assert.Equal(t, []string{"file-1"}, session.Evidence)

	// Retry succeeds once the database is back; nothing was lost.
	fake.createErr = nil
	reply = sendText(t, svc, "Finalizar")
	assert.Equal(t, fmt.Sprintf(constant.MsgReportSavedFmt, 42), reply.Text)
	require.Len(t, fake.created, 1)
	assert.Equal(t, []string{"file-1"}, fake.created[0].evidence)
}

func TestEvidenceTextReprompts(t *testing.T) {
	fake := &fakeCaseService{}
	svc, sessions := newTestConversation(t, fake)

	driveToEvidence(t, svc)
	assert.Equal(t, constant.MsgAskEvidence, sendText(t, svc, "aquí está la captura").Text)

	session, alive := sessions.Get(testChatID)
	require.True(t, alive)
	assert.Empty(t, session.Evidence)
}

func TestLookupKnownNumber(t *testing.T) {
	fake := &fakeCaseService{lookup: map[string]*entity.ReportedNumber{
		"+525512345678": {Number: "+525512345678", ReportCount: 5},
	}}
	svc, sessions := newTestConversation(t, fake)

	assert.Equal(t, constant.MsgAskNumber, sendText(t, svc, "Consultar número sospechoso").Text)
	reply := sendText(t, svc, " +525512345678 ")
	assert.Equal(t, fmt.Sprintf(constant.MsgReportedTimesFmt, 5), reply.Text)

	session, alive := sessions.Get(testChatID)
	require.True(t, alive)
	assert.Equal(t, store.StateIdle, session.State)
}

func TestLookupUnknownNumber(t *testing.T) {
	fake := &fakeCaseService{}
	svc, _ := newTestConversation(t, fake)

	sendText(t, svc, "Consultar número sospechoso")
	assert.Equal(t, constant.MsgNoReports, sendText(t, svc, "+10000000000").Text)
}

func TestLookupFailureReturnsToIdle(t *testing.T) {
	fake := &fakeCaseService{lookupErr: fmt.Errorf("db down")}
	svc, sessions := newTestConversation(t, fake)

	sendText(t, svc, "Consultar número sospechoso")
	assert.Equal(t, constant.MsgLookupFailed, sendText(t, svc, "+525512345678").Text)

	session, alive := sessions.Get(testChatID)
	require.True(t, alive)
	assert.Equal(t, store.StateIdle, session.State)
}

func TestAdvisorShortCircuit(t *testing.T) {
	fake := &fakeCaseService{}
	svc, sessions := newTestConversation(t, fake)

	reply := sendText(t, svc, "Hablar con un asesor")
	assert.Equal(t, constant.MsgAdvisor, reply.Text)

	session, alive := sessions.Get(testChatID)
	require.True(t, alive)
	assert.Equal(t, store.StateIdle, session.State)
}

func TestIdleFallbackShowsMenu(t *testing.T) {
	fake := &fakeCaseService{}
	svc, _ := newTestConversation(t, fake)

	reply := sendText(t, svc, "hola buenas tardes")
	assert.Equal(t, constant.MsgWelcome, reply.Text)
	assert.Equal(t, constant.MainMenuKeyboard, reply.Buttons)
}

func TestEveryTurnTouchesUser(t *testing.T) {
	fake := &fakeCaseService{}
	svc, _ := newTestConversation(t, fake)

	sendText(t, svc, "hola")
	sendText(t, svc, "Reportar un incidente")
	sendText(t, svc, "Phishing")
	assert.Equal(t, 3, fake.ensured)
}

func TestMenuTriggerMidInterviewIsPlainText(t *testing.T) {
	fake := &fakeCaseService{}
	svc, sessions := newTestConversation(t, fake)

	sendText(t, svc, "Reportar un incidente")
	sendText(t, svc, "Phishing")
	// A description that happens to start with a trigger word stays a
	// description; it must not restart the flow.
	assert.Equal(t, constant.MsgAskLocation, sendText(t, svc, "Reportar esto me da pena pero me estafaron").Text)

	session, alive := sessions.Get(testChatID)
	require.True(t, alive)
	assert.Equal(t, store.StateReportLocation, session.State)
	assert.Equal(t, "Reportar esto me da pena pero me estafaron", session.Description)
}
