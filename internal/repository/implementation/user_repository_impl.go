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

type UserRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.UserMapper
}

func NewUserRepository(db *gorm.DB) contract.UserRepository {
	return &UserRepositoryImpl{
		db:     db,
		mapper: mapper.NewUserMapper(),
	}
}

func (r *UserRepositoryImpl) Upsert(ctx context.Context, telegramID, username string) (*entity.User, error) {
	var m model.User
	err := r.db.WithContext(ctx).Raw(`
		INSERT INTO users (telegram_id, telegram_username, role, created_at, updated_at, last_active)
		VALUES (?, ?, 'user', NOW(), NOW(), NOW())
		ON CONFLICT (telegram_id)
		DO UPDATE SET telegram_username = EXCLUDED.telegram_username, last_active = NOW(), updated_at = NOW()
		RETURNING *
	`, telegramID, username).Scan(&m).Error
	if err != nil {
		return nil, err
	}
	return r.mapper.ToEntity(&m), nil
}

func (r *UserRepositoryImpl) FindByTelegramID(ctx context.Context, telegramID string) (*entity.User, error) {
	var m model.User
	if err := r.db.WithContext(ctx).Where("telegram_id = ?", telegramID).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ToEntity(&m), nil
}

func (r *UserRepositoryImpl) FindByID(ctx context.Context, id uint) (*entity.User, error) {
	var m model.User
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ToEntity(&m), nil
}

func (r *UserRepositoryImpl) FindRecentlyActive(ctx context.Context, limit int) ([]*entity.User, error) {
	var models []*model.User
	err := r.db.WithContext(ctx).
		Order("last_active DESC").
		Limit(limit).
		Find(&models).Error
	if err != nil {
		return nil, err
	}
	return r.mapper.ToEntities(models), nil
}

func (r *UserRepositoryImpl) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&model.User{}).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
