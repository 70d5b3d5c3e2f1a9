package mapper

import (
	"github.com/D3M0MK1GN/Demonbot-Telegram/internal/entity"
	"github.com/D3M0MK1GN/Demonbot-Telegram/internal/model"
)

type ReportedNumberMapper struct{}

func NewReportedNumberMapper() *ReportedNumberMapper {
	return &ReportedNumberMapper{}
}

func (m *ReportedNumberMapper) ToEntity(n *model.ReportedNumber) *entity.ReportedNumber {
	if n == nil {
		return nil
	}
	return &entity.ReportedNumber{
		Id:             n.Id,
		Number:         n.Number,
		ReportCount:    n.ReportCount,
		FraudType:      n.FraudType,
		OriginCountry:  n.OriginCountry,
		LastReportedAt: n.LastReportedAt,
	}
}

func (m *ReportedNumberMapper) ToModel(n *entity.ReportedNumber) *model.ReportedNumber {
	if n == nil {
		return nil
	}
	return &model.ReportedNumber{
		Id:             n.Id,
		Number:         n.Number,
		ReportCount:    n.ReportCount,
		FraudType:      n.FraudType,
		OriginCountry:  n.OriginCountry,
		LastReportedAt: n.LastReportedAt,
	}
}

func (m *ReportedNumberMapper) ToEntities(numbers []*model.ReportedNumber) []*entity.ReportedNumber {
	entities := make([]*entity.ReportedNumber, len(numbers))
	for i, n := range numbers {
		entities[i] = m.ToEntity(n)
	}
	return entities
}
