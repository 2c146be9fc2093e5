package repository

import (
	"context"
	"time"

	"watched-api/internal/model"

	"gorm.io/gorm"
)

// ActivityRepository persists general site activity rows.
type ActivityRepository interface {
	Log(ctx context.Context, entry *model.SiteActivityLog) error
	ListSince(ctx context.Context, since *time.Time) ([]model.SiteActivityLog, error)
}

type activityRepository struct {
	db *gorm.DB
}

// NewActivityRepository returns a new instance of ActivityRepository
func NewActivityRepository(db *gorm.DB) ActivityRepository {
	return &activityRepository{db: db}
}

func (r *activityRepository) Log(ctx context.Context, entry *model.SiteActivityLog) error {
	return r.db.WithContext(ctx).Create(entry).Error
}

// ListSince returns activity newest-first; a nil since means everything.
func (r *activityRepository) ListSince(ctx context.Context, since *time.Time) ([]model.SiteActivityLog, error) {
	db := r.db.WithContext(ctx).Model(&model.SiteActivityLog{})
	if since != nil {
		db = db.Where("time_of >= ?", *since)
	}

	var logs []model.SiteActivityLog
	if err := db.Order("time_of desc").Find(&logs).Error; err != nil {
		return nil, err
	}
	return logs, nil
}
