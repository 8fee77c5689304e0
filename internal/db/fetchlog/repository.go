package fetchlog

import (
	"time"

	"gorm.io/gorm"
)

const defaultRecentLimit = 10

type Repository interface {
	LogFetch(city, endpoint, outcome, detail string, rowCount int, duration time.Duration) error
	GetRecentFetches(city string, limit int) ([]FetchLog, error)
}

type FetchSQLRepository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &FetchSQLRepository{db: db}
}

func (r *FetchSQLRepository) LogFetch(city, endpoint, outcome, detail string, rowCount int, duration time.Duration) error {
	entry := FetchLog{
		City:       city,
		Endpoint:   endpoint,
		Outcome:    outcome,
		Detail:     detail,
		RowCount:   rowCount,
		DurationMs: duration.Milliseconds(),
		CreatedAt:  time.Now(),
	}

	return r.db.Create(&entry).Error
}

func (r *FetchSQLRepository) GetRecentFetches(city string, limit int) ([]FetchLog, error) {
	if limit <= 0 {
		limit = defaultRecentLimit
	}

	var logs []FetchLog
	err := r.db.Where("city = ?", city).Order("created_at DESC").Limit(limit).Find(&logs).Error
	if err != nil {
		return nil, err
	}
	return logs, nil
}
