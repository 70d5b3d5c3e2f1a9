package mapper

import (
	"github.com/D3M0MK1GN/Demonbot-Telegram/internal/entity"
	"github.com/D3M0MK1GN/Demonbot-Telegram/internal/model"
)

type CaseMapper struct{}

func NewCaseMapper() *CaseMapper {
	return &CaseMapper{}
}

func (m *CaseMapper) ToEntity(c *model.Case) *entity.Case {
	if c == nil {
		return nil
	}
	return &entity.Case{
		Id:          c.Id,
		UserId:      c.UserId,
		CaseNumber:  c.CaseNumber,
		Type:        c.Type,
		Status:      entity.CaseStatus(c.Status),
		Description: c.Description,
		Location:    c.Location,
		AmountLost:  c.AmountLost,
		CreatedAt:   c.CreatedAt,
		UpdatedAt:   c.UpdatedAt,
	}
}

func (m *CaseMapper) ToModel(c *entity.Case) *model.Case {
	if c == nil {
		return nil
	}
	return &model.Case{
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

func (m *CaseMapper) ToEntities(cases []*model.Case) []*entity.Case {
	entities := make([]*entity.Case, len(cases))
	for i, c := range cases {
		entities[i] = m.ToEntity(c)
	}
	return entities
}

func (m *CaseMapper) EvidenceToEntity(e *model.Evidence) *entity.Evidence {
	if e == nil {
		return nil
	}
	return &entity.Evidence{
		Id:        e.Id,
		CaseId:    e.CaseId,
		FilePath:  e.FilePath,
		FileType:  e.FileType,
		CreatedAt: e.CreatedAt,
	}
}

func (m *CaseMapper) EvidenceToModel(e *entity.Evidence) *model.Evidence {
	if e == nil {
		return nil
	}
	return &model.Evidence{
		Id:        e.Id,
		CaseId:    e.CaseId,
		FilePath:  e.FilePath,
		FileType:  e.FileType,
		CreatedAt: e.CreatedAt,
	}
}

func (m *CaseMapper) EvidenceToEntities(evidences []*model.Evidence) []*entity.Evidence {
	entities := make([]*entity.Evidence, len(evidences))
	for i, e := range evidences {
		entities[i] = m.EvidenceToEntity(e)
	}
	return entities
}
