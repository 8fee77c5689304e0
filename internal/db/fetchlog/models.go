package fetchlog

import (
	"time"
)

// FetchLog records how a fetch ended. It never stores forecast data.
type FetchLog struct {
	ID         uint      `json:"id" gorm:"primaryKey"`
	City       string    `json:"city" gorm:"index:idx_city;index:idx_city_created_at"`
	Endpoint   string    `json:"endpoint" gorm:"column:endpoint"`
	Outcome    string    `json:"outcome" gorm:"column:outcome"`
	Detail     string    `json:"detail,omitempty" gorm:"column:detail"`
	RowCount   int       `json:"row_count" gorm:"column:row_count"`
	DurationMs int64     `json:"duration_ms" gorm:"column:duration_ms"`
	CreatedAt  time.Time `json:"created_at" gorm:"index:idx_created_at;index:idx_city_created_at"`
}

func (FetchLog) TableName() string {
	return "fetch_logs"
}
