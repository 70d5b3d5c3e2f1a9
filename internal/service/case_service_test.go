package service

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"testing"

	"github.com/D3M0MK1GN/Demonbot-Telegram/internal/entity"
	"github.com/D3M0MK1GN/Demonbot-Telegram/internal/pkg/logger"
	"github.com/D3M0MK1GN/Demonbot-Telegram/internal/repository/contract"
	"github.com/D3M0MK1GN/Demonbot-Telegram/internal/repository/unitofwork"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// --- fake unit of work ---

type fakeUserRepo struct {
	contract.UserRepository
	findErr error
}

func (f *fakeUserRepo) Upsert(ctx context.Context, telegramID, username string) (*entity.User, error) {
	return &entity.User{Id: 9, TelegramID: telegramID, TelegramUsername: username}, nil
}

func (f *fakeUserRepo) FindByID(ctx context.Context, id uint) (*entity.User, error) {
	if f.findErr != nil {
		return nil, f.findErr
	}
	return &entity.User{Id: id, TelegramID: "1001"}, nil
}

type fakeCaseRepo struct {
	contract.CaseRepository
	created []*entity.Case
	byID    *entity.Case
}

func (f *fakeCaseRepo) Create(ctx context.Context, c *entity.Case) error {
	c.Id = uint(len(f.created) + 100)
	f.created = append(f.created, c)
	return nil
}

func (f *fakeCaseRepo) FindByID(ctx context.Context, id uint) (*entity.Case, error) {
	return f.byID, nil
}

type fakeEvidenceRepo struct {
	contract.EvidenceRepository
	created   []*entity.Evidence
	failAfter int // fail on the Nth create, 0 = never
}

func (f *fakeEvidenceRepo) Create(ctx context.Context, e *entity.Evidence) error {
	if f.failAfter > 0 && len(f.created)+1 >= f.failAfter {
		return fmt.Errorf("disk full")
	}
	f.created = append(f.created, e)
	return nil
}

func (f *fakeEvidenceRepo) FindByCaseID(ctx context.Context, caseID uint) ([]*entity.Evidence, error) {
	return f.created, nil
}

type fakeUow struct {
	users     *fakeUserRepo
	cases     *fakeCaseRepo
	evidences *fakeEvidenceRepo

	begun      bool
	committed  bool
	rolledBack bool
}

func (u *fakeUow) Begin(ctx context.Context) error { u.begun = true; return nil }
func (u *fakeUow) Commit() error                   { u.committed = true; return nil }
func (u *fakeUow) Rollback() error                 { u.rolledBack = true; return nil }

func (u *fakeUow) UserRepository() contract.UserRepository         { return u.users }
func (u *fakeUow) CaseRepository() contract.CaseRepository         { return u.cases }
func (u *fakeUow) EvidenceRepository() contract.EvidenceRepository { return u.evidences }
func (u *fakeUow) ReportedNumberRepository() contract.ReportedNumberRepository {
	return nil
}
func (u *fakeUow) BotInteractionRepository() contract.BotInteractionRepository {
	return nil
}

type fakeFactory struct {
	uow *fakeUow
}

func (f *fakeFactory) NewUnitOfWork(ctx context.Context) unitofwork.UnitOfWork {
	return f.uow
}

func newTestCaseService(t *testing.T, uow *fakeUow) ICaseService {
	t.Helper()
	log := logger.NewZapLogger(filepath.Join(t.TempDir(), "test.log"), false)
	return NewCaseService(&fakeFactory{uow: uow}, log)
}

func newFakeUow() *fakeUow {
	return &fakeUow{
		users:     &fakeUserRepo{},
		cases:     &fakeCaseRepo{},
		evidences: &fakeEvidenceRepo{},
	}
}

// --- tests ---

func TestCreateCaseWithEvidenceCommitsEverything(t *testing.T) {
	uow := newFakeUow()
	svc := newTestCaseService(t, uow)

	loc := "CDMX"
	c, err := svc.CreateCaseWithEvidence(context.Background(), "1001", "reporter", entity.CaseAnswers{
		Type:        "Phishing",
		Description: "Correo falso",
		Location:    &loc,
		AmountLost:  1000,
	}, []string{"file-1", "file-2"})

	require.NoError(t, err)
	require.NotNil(t, c)
	assert.True(t, uow.begun)
	assert.True(t, uow.committed)
	assert.False(t, uow.rolledBack)

	require.Len(t, uow.cases.created, 1)
	saved := uow.cases.created[0]
	assert.Equal(t, uint(9), saved.UserId)
	assert.Equal(t, "Phishing", saved.Type)
	assert.Equal(t, entity.CaseStatusNuevo, saved.Status)
	assert.Equal(t, 1000.0, saved.AmountLost)

	require.Len(t, uow.evidences.created, 2)
	assert.Equal(t, "file-1", uow.evidences.created[0].FilePath)
	assert.Equal(t, "file-2", uow.evidences.created[1].FilePath)
	for _, e := range uow.evidences.created {
		assert.Equal(t, saved.Id, e.CaseId)
		assert.Equal(t, "telegram", e.FileType)
	}
}

func TestCreateCaseAppliesDefaults(t *testing.T) {
	uow := newFakeUow()
	svc := newTestCaseService(t, uow)

	c, err := svc.CreateCaseWithEvidence(context.Background(), "1001", "reporter", entity.CaseAnswers{
		Type:       "",
		AmountLost: -50,
	}, nil)

	require.NoError(t, err)
	assert.Equal(t, entity.DefaultCrimeType, c.Type)
	assert.Equal(t, 0.0, uow.cases.created[0].AmountLost)
}

func TestCreateCaseRollsBackOnEvidenceFailure(t *testing.T) {
	uow := newFakeUow()
	uow.evidences.failAfter = 2
	svc := newTestCaseService(t, uow)

	c, err := svc.CreateCaseWithEvidence(context.Background(), "1001", "reporter", entity.CaseAnswers{
		Type: "Extorsión",
	}, []string{"file-1", "file-2", "file-3"})

	assert.Error(t, err)
	assert.Nil(t, c)
	assert.True(t, uow.rolledBack)
	assert.False(t, uow.committed)
}

func TestGetCaseIncludesReportingUser(t *testing.T) {
	uow := newFakeUow()
	uow.cases.byID = &entity.Case{Id: 7, UserId: 9, CaseNumber: "CASE-20260901-AB12CD34"}
	svc := newTestCaseService(t, uow)

	detail, err := svc.GetCase(context.Background(), 7)
	require.NoError(t, err)
	require.NotNil(t, detail)
	require.NotNil(t, detail.User)
	assert.Equal(t, uint(9), detail.User.Id)
}

func TestGetCasePropagatesUserLookupFailure(t *testing.T) {
	uow := newFakeUow()
	uow.cases.byID = &entity.Case{Id: 7, UserId: 9}
	uow.users.findErr = fmt.Errorf("connection reset")
	svc := newTestCaseService(t, uow)

	detail, err := svc.GetCase(context.Background(), 7)
	assert.Error(t, err)
	assert.Nil(t, detail)
}

func TestCaseNumberFormat(t *testing.T) {
	n := newCaseNumber()
	assert.True(t, strings.HasPrefix(n, "CASE-"), n)
	parts := strings.Split(n, "-")
	require.Len(t, parts, 3)
	assert.Len(t, parts[1], 8) // YYYYMMDD
	assert.Len(t, parts[2], 8)
	assert.Equal(t, strings.ToUpper(parts[2]), parts[2])

	// Two numbers generated back to back never collide.
	assert.NotEqual(t, n, newCaseNumber())
}
