package repository

import (
	"context"
	"time"

	"bikerental/internal/domain"

	"gorm.io/gorm"
)

type SyncTaskRepository struct {
	db *gorm.DB
}

func NewSyncTaskRepository(db *gorm.DB) *SyncTaskRepository {
	return &SyncTaskRepository{db: db}
}

func (r *SyncTaskRepository) Enqueue(ctx context.Context, t *domain.StatusSyncTask) error {
	return r.db.WithContext(ctx).Create(t).Error
}

func (r *SyncTaskRepository) ListPending(ctx context.Context, limit int) ([]domain.StatusSyncTask, error) {
	var tasks []domain.StatusSyncTask
	err := r.db.WithContext(ctx).
		Where("done_at IS NULL").
		Order("id").
		Limit(limit).
		Find(&tasks).Error
	if err != nil {
		return nil, err
	}
	return tasks, nil
}

func (r *SyncTaskRepository) MarkDone(ctx context.Context, id int64) error {
	now := time.Now()
	return r.db.WithContext(ctx).
		Model(&domain.StatusSyncTask{}).
		Where("id = ?", id).
		Updates(map[string]any{"done_at": now, "last_error": ""}).Error
}

func (r *SyncTaskRepository) MarkFailed(ctx context.Context, id int64, lastError string) error {
	return r.db.WithContext(ctx).
		Model(&domain.StatusSyncTask{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"attempts":   gorm.Expr("attempts + 1"),
			"last_error": lastError,
		}).Error
}
