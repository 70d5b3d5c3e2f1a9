package mapper

import (
	"testing"
	"time"

	"github.com/D3M0MK1GN/Demonbot-Telegram/internal/entity"
	"github.com/D3M0MK1GN/Demonbot-Telegram/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCaseRoundTrip(t *testing.T) {
	m := NewCaseMapper()
	loc := "CDMX"
	now := time.Now()

	e := &entity.Case{
		Id:          7,
		UserId:      9,
		CaseNumber:  "CASE-20260901-AB12CD34",
		Type:        "Phishing",
		Status:      entity.CaseStatusEnProceso,
		Description: "Correo falso",
		Location:    &loc,
		AmountLost:  1000.50,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	back := m.ToEntity(m.ToModel(e))
	require.NotNil(t, back)
	assert.Equal(t, e, back)
}

func TestCaseMapperNilSafety(t *testing.T) {
	m := NewCaseMapper()
	assert.Nil(t, m.ToEntity(nil))
	assert.Nil(t, m.ToModel(nil))
	assert.Nil(t, m.EvidenceToEntity(nil))
	assert.Empty(t, m.ToEntities(nil))
}

func TestEvidenceToEntities(t *testing.T) {
	m := NewCaseMapper()
	models := []*model.Evidence{
		{Id: 1, CaseId: 7, FilePath: "file-1", FileType: "telegram"},
		{Id: 2, CaseId: 7, FilePath: "file-2", FileType: "telegram"},
	}

	entities := m.EvidenceToEntities(models)
	require.Len(t, entities, 2)
	assert.Equal(t, "file-1", entities[0].FilePath)
	assert.Equal(t, uint(7), entities[1].CaseId)
}
