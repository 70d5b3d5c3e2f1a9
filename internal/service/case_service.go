package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/D3M0MK1GN/Demonbot-Telegram/internal/dto"
	"github.com/D3M0MK1GN/Demonbot-Telegram/internal/entity"
	"github.com/D3M0MK1GN/Demonbot-Telegram/internal/pkg/logger"
	"github.com/D3M0MK1GN/Demonbot-Telegram/internal/repository/unitofwork"

	"github.com/google/uuid"
)

type ICaseService interface {
	// EnsureUser upserts the chat user and refreshes last_active.
	EnsureUser(ctx context.Context, telegramID, username string) (*entity.User, error)

	// CreateCaseWithEvidence persists one case plus all its evidence rows
	// in a single transaction. Any failure rolls everything back.
	CreateCaseWithEvidence(ctx context.Context, telegramID, username string, answers entity.CaseAnswers, evidence []string) (*entity.Case, error)

	// LookupReportCount returns (nil, nil) for a number with no reports.
	LookupReportCount(ctx context.Context, number string) (*entity.ReportedNumber, error)

	// Dashboard operations
	GetDashboardStats(ctx context.Context) (*dto.DashboardStatsResponse, error)
	GetStatsByType(ctx context.Context) ([]dto.TypeStatResponse, error)
	GetStatsHistory(ctx context.Context) ([]dto.HistoryPointResponse, error)
	ListCases(ctx context.Context, limit, offset int, status string) ([]dto.CaseResponse, error)
	GetCase(ctx context.Context, id uint) (*dto.CaseDetailResponse, error)
	UpdateCaseStatus(ctx context.Context, id uint, status string) (*dto.CaseResponse, error)
	GetActiveUsers(ctx context.Context, limit int) ([]dto.ActiveUserResponse, error)
	GetTopReportedNumbers(ctx context.Context, limit int) ([]dto.ReportedNumberResponse, error)
}

type caseService struct {
	uowFactory unitofwork.RepositoryFactory
	logger     logger.ILogger
}

func NewCaseService(uowFactory unitofwork.RepositoryFactory, log logger.ILogger) ICaseService {
	return &caseService{
		uowFactory: uowFactory,
		logger:     log,
	}
}

func (s *caseService) EnsureUser(ctx context.Context, telegramID, username string) (*entity.User, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	user, err := uow.UserRepository().Upsert(ctx, telegramID, username)
	if err != nil {
		return nil, fmt.Errorf("failed to upsert user %s: %w", telegramID, err)
	}
	return user, nil
}

func (s *caseService) CreateCaseWithEvidence(ctx context.Context, telegramID, username string, answers entity.CaseAnswers, evidence []string) (*entity.Case, error) {
	caseType := answers.Type
	if caseType == "" {
		caseType = entity.DefaultCrimeType
	}
	amount := answers.AmountLost
	if amount < 0 {
		amount = 0
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	if err := uow.Begin(ctx); err != nil {
		return nil, fmt.Errorf("failed to begin finalization transaction: %w", err)
	}

	user, err := uow.UserRepository().Upsert(ctx, telegramID, username)
	if err != nil {
		_ = uow.Rollback()
		return nil, fmt.Errorf("failed to resolve user %s: %w", telegramID, err)
	}

	c := &entity.Case{
		UserId:      user.Id,
		CaseNumber:  newCaseNumber(),
		Type:        caseType,
		Status:      entity.CaseStatusNuevo,
		Description: answers.Description,
		Location:    answers.Location,
		AmountLost:  amount,
	}
	if err := uow.CaseRepository().Create(ctx, c); err != nil {
		_ = uow.Rollback()
		return nil, fmt.Errorf("failed to create case: %w", err)
	}

	for _, fileID := range evidence {
		ev := &entity.Evidence{
			CaseId:   c.Id,
			FilePath: fileID,
			FileType: "telegram",
		}
		if err := uow.EvidenceRepository().Create(ctx, ev); err != nil {
			_ = uow.Rollback()
			return nil, fmt.Errorf("failed to create evidence for case %d: %w", c.Id, err)
		}
	}

	if err := uow.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit case %s: %w", c.CaseNumber, err)
	}

	s.logger.Info("CaseService", "Case persisted", map[string]interface{}{
		"case_id":     c.Id,
		"case_number": c.CaseNumber,
		"evidence":    len(evidence),
	})
	return c, nil
}

func (s *caseService) LookupReportCount(ctx context.Context, number string) (*entity.ReportedNumber, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	return uow.ReportedNumberRepository().FindByNumber(ctx, strings.TrimSpace(number))
}

// newCaseNumber follows the CASE-YYYYMMDD-XXXXXXXX convention used by
// the dashboard. The uuid suffix keeps it unique without a sequence.
func newCaseNumber() string {
	suffix := strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", "")[:8])
	return fmt.Sprintf("CASE-%s-%s", time.Now().Format("20060102"), suffix)
}

// --- Dashboard operations ---

func (s *caseService) GetDashboardStats(ctx context.Context) (*dto.DashboardStatsResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	users := uow.UserRepository()
	cases := uow.CaseRepository()

	totalUsers, err := users.Count(ctx)
	if err != nil {
		return nil, err
	}
	totalCases, err := cases.Count(ctx)
	if err != nil {
		return nil, err
	}
	newToday, err := cases.CountCreatedToday(ctx)
	if err != nil {
		return nil, err
	}
	inProcess, err := cases.CountByStatus(ctx, entity.CaseStatusEnProceso)
	if err != nil {
		return nil, err
	}
	resolved, err := cases.CountByStatus(ctx, entity.CaseStatusResuelto)
	if err != nil {
		return nil, err
	}
	totalLost, err := cases.SumAmountLost(ctx)
	if err != nil {
		return nil, err
	}
	active, err := users.FindRecentlyActive(ctx, 5)
	if err != nil {
		return nil, err
	}

	return &dto.DashboardStatsResponse{
		TotalUsers:      totalUsers,
		TotalCases:      totalCases,
		ActiveUsers:     int64(len(active)),
		NewCasesToday:   newToday,
		CasesInProcess:  inProcess,
		CasesResolved:   resolved,
		TotalAmountLost: totalLost,
	}, nil
}

func (s *caseService) GetStatsByType(ctx context.Context) ([]dto.TypeStatResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	rows, err := uow.CaseRepository().StatsByType(ctx)
	if err != nil {
		return nil, err
	}
	stats := make([]dto.TypeStatResponse, 0, len(rows))
	for _, row := range rows {
		stats = append(stats, dto.TypeStatResponse{
			Type:  asString(row["type"]),
			Count: asInt64(row["count"]),
		})
	}
	return stats, nil
}

func (s *caseService) GetStatsHistory(ctx context.Context) ([]dto.HistoryPointResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	rows, err := uow.CaseRepository().StatsHistory(ctx, 7)
	if err != nil {
		return nil, err
	}
	points := make([]dto.HistoryPointResponse, 0, len(rows))
	for _, row := range rows {
		points = append(points, dto.HistoryPointResponse{
			Date:  asString(row["date"]),
			Count: asInt64(row["count"]),
		})
	}
	return points, nil
}

func (s *caseService) ListCases(ctx context.Context, limit, offset int, status string) ([]dto.CaseResponse, error) {
	if limit <= 0 {
		limit = 50
	}
	uow := s.uowFactory.NewUnitOfWork(ctx)
	cases, err := uow.CaseRepository().FindAll(ctx, limit, offset, status)
	if err != nil {
		return nil, err
	}
	responses := make([]dto.CaseResponse, 0, len(cases))
	for _, c := range cases {
		responses = append(responses, toCaseResponse(c))
	}
	return responses, nil
}

func (s *caseService) GetCase(ctx context.Context, id uint) (*dto.CaseDetailResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	c, err := uow.CaseRepository().FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, nil
	}

	evidences, err := uow.EvidenceRepository().FindByCaseID(ctx, c.Id)
	if err != nil {
		return nil, err
	}

	detail := &dto.CaseDetailResponse{
		CaseResponse: toCaseResponse(c),
		Evidences:    make([]dto.EvidenceResponse, 0, len(evidences)),
	}
	user, err := uow.UserRepository().FindByID(ctx, c.UserId)
	if err != nil {
		return nil, err
	}
	if user != nil {
		u := toActiveUserResponse(user)
		detail.User = &u
	}
	for _, e := range evidences {
		detail.Evidences = append(detail.Evidences, dto.EvidenceResponse{
			Id:        e.Id,
			CaseId:    e.CaseId,
			FilePath:  e.FilePath,
			FileType:  e.FileType,
			CreatedAt: e.CreatedAt,
		})
	}
	return detail, nil
}

func (s *caseService) UpdateCaseStatus(ctx context.Context, id uint, status string) (*dto.CaseResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	c, err := uow.CaseRepository().UpdateStatus(ctx, id, entity.CaseStatus(status))
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, nil
	}
	response := toCaseResponse(c)
	return &response, nil
}

func (s *caseService) GetActiveUsers(ctx context.Context, limit int) ([]dto.ActiveUserResponse, error) {
	if limit <= 0 {
		limit = 5
	}
	uow := s.uowFactory.NewUnitOfWork(ctx)
	users, err := uow.UserRepository().FindRecentlyActive(ctx, limit)
	if err != nil {
		return nil, err
	}
	responses := make([]dto.ActiveUserResponse, 0, len(users))
	for _, u := range users {
		responses = append(responses, toActiveUserResponse(u))
	}
	return responses, nil
}

func (s *caseService) GetTopReportedNumbers(ctx context.Context, limit int) ([]dto.ReportedNumberResponse, error) {
	if limit <= 0 {
		limit = 10
	}
	uow := s.uowFactory.NewUnitOfWork(ctx)
	numbers, err := uow.ReportedNumberRepository().Top(ctx, limit)
	if err != nil {
		return nil, err
	}
	responses := make([]dto.ReportedNumberResponse, 0, len(numbers))
	for _, n := range numbers {
		responses = append(responses, dto.ReportedNumberResponse{
			Number:        n.Number,
			ReportCount:   n.ReportCount,
			FraudType:     n.FraudType,
			OriginCountry: n.OriginCountry,
		})
	}
	return responses, nil
}

// --- mapping helpers ---

func toCaseResponse(c *entity.Case) dto.CaseResponse {
	return dto.CaseResponse{
		Id:          c.Id,
		UserId:      c.UserId,
		CaseNumber:  c.CaseNumber,
		Type:        c.Type,
		Status:      string(c.Status),
		Description: c.Description,
		Location:    c.Location,
		AmountLost:  c.AmountLost,
		CreatedAt:   c.CreatedAt,
		UpdatedAt:   c.UpdatedAt,
	}
}

func toActiveUserResponse(u *entity.User) dto.ActiveUserResponse {
	return dto.ActiveUserResponse{
		Id:               u.Id,
		TelegramID:       u.TelegramID,
		TelegramUsername: u.TelegramUsername,
		Role:             string(u.Role),
		LastActive:       u.LastActive,
	}
}

// Raw aggregation rows come back with driver-dependent numeric types.
func asInt64(v interface{}) int64 {
	switch n := v.(type) {
	case int64:
		return n
	case int32:
		return int64(n)
	case int:
		return int64(n)
	case float64:
		return int64(n)
	}
	return 0
}

func asString(v interface{}) string {
	if s, ok := v.(string); ok {
		return s
	}
	return ""
}
