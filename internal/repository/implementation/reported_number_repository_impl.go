package implementation

import (
	"context"
	"errors"

	"github.com/D3M0MK1GN/Demonbot-Telegram/internal/entity"
	"github.com/D3M0MK1GN/Demonbot-Telegram/internal/mapper"
	"github.com/D3M0MK1GN/Demonbot-Telegram/internal/model"
	"github.com/D3M0MK1GN/Demonbot-Telegram/internal/repository/contract"

	"gorm.io/gorm"
)

type ReportedNumberRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.ReportedNumberMapper
}

func NewReportedNumberRepository(db *gorm.DB) contract.ReportedNumberRepository {
	return &ReportedNumberRepositoryImpl{
		db:     db,
		mapper: mapper.NewReportedNumberMapper(),
	}
}

func (r *ReportedNumberRepositoryImpl) FindByNumber(ctx context.Context, number string) (*entity.ReportedNumber, error) {
	var m model.ReportedNumber
	if err := r.db.WithContext(ctx).Where("number = ?", number).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ToEntity(&m), nil
}

func (r *ReportedNumberRepositoryImpl) Top(ctx context.Context, limit int) ([]*entity.ReportedNumber, error) {
	var models []*model.ReportedNumber
	err := r.db.WithContext(ctx).
		Order("report_count DESC").
		Limit(limit).
		Find(&models).Error
	if err != nil {
		return nil, err
	}
	return r.mapper.ToEntities(models), nil
}

func (r *ReportedNumberRepositoryImpl) Create(ctx context.Context, n *entity.ReportedNumber) error {
	m := r.mapper.ToModel(n)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*n = *r.mapper.ToEntity(m)
	return nil
}
