package implementation

import (
	"context"

	"github.com/D3M0MK1GN/Demonbot-Telegram/internal/entity"
	"github.com/D3M0MK1GN/Demonbot-Telegram/internal/mapper"
	"github.com/D3M0MK1GN/Demonbot-Telegram/internal/model"
	"github.com/D3M0MK1GN/Demonbot-Telegram/internal/repository/contract"

	"gorm.io/gorm"
)

type EvidenceRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.CaseMapper
}

func NewEvidenceRepository(db *gorm.DB) contract.EvidenceRepository {
	return &EvidenceRepositoryImpl{
		db:     db,
		mapper: mapper.NewCaseMapper(),
	}
}

func (r *EvidenceRepositoryImpl) Create(ctx context.Context, e *entity.Evidence) error {
	m := r.mapper.EvidenceToModel(e)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*e = *r.mapper.EvidenceToEntity(m)
	return nil
}

func (r *EvidenceRepositoryImpl) FindByCaseID(ctx context.Context, caseID uint) ([]*entity.Evidence, error) {
	var models []*model.Evidence
	err := r.db.WithContext(ctx).
		Where("case_id = ?", caseID).
		Order("created_at ASC").
		Find(&models).Error
	if err != nil {
		return nil, err
	}
	return r.mapper.EvidenceToEntities(models), nil
}
