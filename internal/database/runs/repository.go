package runs

import (
	"time"

	"gorm.io/gorm"

	"github.com/mrlokans/wallabag2karakeep/internal/entities"
)

const defaultListLimit = 20

type Repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// RecordRun saves a finished conversion run.
func (r *Repository) RecordRun(run *entities.ConversionRun) error {
	if run.CreatedAt.IsZero() {
		run.CreatedAt = time.Now()
	}
	return r.db.Create(run).Error
}

// ListRuns returns the most recent runs first.
func (r *Repository) ListRuns(limit int) ([]entities.ConversionRun, error) {
	if limit <= 0 {
		limit = defaultListLimit
	}

	var runs []entities.ConversionRun
	err := r.db.Order("created_at DESC").Order("id DESC").Limit(limit).Find(&runs).Error
	return runs, err
}

func (r *Repository) GetRun(runID string) (*entities.ConversionRun, error) {
	var run entities.ConversionRun
	if err := r.db.Where("run_id = ?", runID).First(&run).Error; err != nil {
		return nil, err
	}
	return &run, nil
}

// CountByStatus is used by the history summary line.
func (r *Repository) CountByStatus(status entities.RunStatus) (int64, error) {
	var count int64
	err := r.db.Model(&entities.ConversionRun{}).Where("status = ?", status).Count(&count).Error
	return count, err
}

// DeleteOlderThan removes runs recorded more than retention ago.
func (r *Repository) DeleteOlderThan(retention time.Duration) (int64, error) {
	cutoff := time.Now().Add(-retention)
	result := r.db.Where("created_at < ?", cutoff).Delete(&entities.ConversionRun{})
	return result.RowsAffected, result.Error
}
