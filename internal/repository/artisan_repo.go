package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"vividhands_dev_v1_202601/internal/model"
)

// ==================== 接口定义 ====================

// ArtisanRepository 手工艺人仓储接口
type ArtisanRepository interface {
	Create(ctx context.Context, artisan *model.Artisan) error
	GetByID(ctx context.Context, id int64) (*model.Artisan, error)
	GetByEmail(ctx context.Context, email string) (*model.Artisan, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
}

// ==================== 仓储实现 ====================

type artisanRepo struct {
	db *gorm.DB
}

// NewArtisanRepository 创建手工艺人仓储
func NewArtisanRepository(db *gorm.DB) ArtisanRepository {
	return &artisanRepo{db: db}
}

func (r *artisanRepo) Create(ctx context.Context, artisan *model.Artisan) error {
	return r.db.WithContext(ctx).Create(artisan).Error
}

func (r *artisanRepo) GetByID(ctx context.Context, id int64) (*model.Artisan, error) {
	var artisan model.Artisan
	err := r.db.WithContext(ctx).First(&artisan, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &artisan, nil
}

func (r *artisanRepo) GetByEmail(ctx context.Context, email string) (*model.Artisan, error) {
	var artisan model.Artisan
	err := r.db.WithContext(ctx).Where("email = ?", email).First(&artisan).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &artisan, nil
}

func (r *artisanRepo) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&model.Artisan{}).
		Where("email = ?", email).
		Count(&count).Error
	return count > 0, err
}
