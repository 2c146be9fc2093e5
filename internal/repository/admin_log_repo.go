package repository

import (
	"context"

	"watched-api/internal/model"

	"gorm.io/gorm"
)

// AdminLogRepository persists the append-only admin action trail. There are
// no update or delete operations on purpose.
type AdminLogRepository interface {
	Log(ctx context.Context, entry *model.AdminLog) error
	List(ctx context.Context, page, limit int) ([]model.AdminLog, int64, error)
}

type adminLogRepository struct {
	db *gorm.DB
}

// NewAdminLogRepository returns a new instance of AdminLogRepository
func NewAdminLogRepository(db *gorm.DB) AdminLogRepository {
	return &adminLogRepository{db: db}
}

func (r *adminLogRepository) Log(ctx context.Context, entry *model.AdminLog) error {
	return r.db.WithContext(ctx).Create(entry).Error
}

func (r *adminLogRepository) List(ctx context.Context, page, limit int) ([]model.AdminLog, int64, error) {
	var logs []model.AdminLog
	var total int64

	db := r.db.WithContext(ctx)
	if err := db.Model(&model.AdminLog{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	offset := (page - 1) * limit
	err := db.Preload("Admin").
		Preload("TargetUser").
		Preload("TargetPost").
		Preload("TargetComment").
		Order("created_at desc").
		Offset(offset).Limit(limit).
		Find(&logs).Error
	if err != nil {
		return nil, 0, err
	}

	return logs, total, nil
}
