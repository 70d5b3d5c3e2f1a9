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

type CaseRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.CaseMapper
}

func NewCaseRepository(db *gorm.DB) contract.CaseRepository {
	return &CaseRepositoryImpl{
		db:     db,
		mapper: mapper.NewCaseMapper(),
	}
}

func (r *CaseRepositoryImpl) Create(ctx context.Context, c *entity.Case) error {
	m := r.mapper.ToModel(c)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*c = *r.mapper.ToEntity(m)
	return nil
}

func (r *CaseRepositoryImpl) FindByID(ctx context.Context, id uint) (*entity.Case, error) {
	var m model.Case
	if err := r.db.WithContext(ctx).First(&m, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ToEntity(&m), nil
}

func (r *CaseRepositoryImpl) FindAll(ctx context.Context, limit, offset int, status string) ([]*entity.Case, error) {
	var models []*model.Case
	query := r.db.WithContext(ctx).
		Order("created_at DESC").
		Limit(limit).
		Offset(offset)
	if status != "" {
		query = query.Where("status = ?", status)
	}
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	return r.mapper.ToEntities(models), nil
}

func (r *CaseRepositoryImpl) UpdateStatus(ctx context.Context, id uint, status entity.CaseStatus) (*entity.Case, error) {
	result := r.db.WithContext(ctx).Model(&model.Case{}).
		Where("id = ?", id).
		Update("status", string(status))
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, nil
	}
	return r.FindByID(ctx, id)
}

func (r *CaseRepositoryImpl) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&model.Case{}).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (r *CaseRepositoryImpl) CountByStatus(ctx context.Context, status entity.CaseStatus) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.Case{}).
		Where("status = ?", string(status)).
		Count(&count).Error
	if err != nil {
		return 0, err
	}
	return count, nil
}

func (r *CaseRepositoryImpl) CountCreatedToday(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.Case{}).
		Where("created_at >= CURRENT_DATE").
		Count(&count).Error
	if err != nil {
		return 0, err
	}
	return count, nil
}

func (r *CaseRepositoryImpl) SumAmountLost(ctx context.Context) (float64, error) {
	var total *float64
	err := r.db.WithContext(ctx).Model(&model.Case{}).
		Select("SUM(amount_lost)").
		Scan(&total).Error
	if err != nil {
		return 0, err
	}
	if total == nil {
		return 0, nil
	}
	return *total, nil
}

func (r *CaseRepositoryImpl) StatsByType(ctx context.Context) ([]map[string]interface{}, error) {
	var results []map[string]interface{}
	err := r.db.WithContext(ctx).Raw(`
		SELECT type, COUNT(*) as count
		FROM cases
		GROUP BY type
		ORDER BY count DESC
	`).Scan(&results).Error
	return results, err
}

func (r *CaseRepositoryImpl) StatsHistory(ctx context.Context, days int) ([]map[string]interface{}, error) {
	var results []map[string]interface{}
	err := r.db.WithContext(ctx).Raw(`
		SELECT to_char(created_at, 'YYYY-MM-DD') as date, COUNT(*) as count
		FROM cases
		WHERE created_at > CURRENT_DATE - ? * INTERVAL '1 day'
		GROUP BY date
		ORDER BY date ASC
	`, days).Scan(&results).Error
	return results, err
}
