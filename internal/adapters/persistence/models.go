package persistence

import (
	"time"
)

// HistoricalRecordModel represents the historical_records table
type HistoricalRecordModel struct {
	ID               int       `gorm:"column:id;primaryKey;autoIncrement"`
	Date             time.Time `gorm:"column:date;uniqueIndex;not null"`
	RoomsAvailable   int       `gorm:"column:rooms_available;not null"`
	RoomsSold        int       `gorm:"column:rooms_sold;not null"`
	AverageDailyRate float64   `gorm:"column:average_daily_rate;not null"`
	Cancellations    int       `gorm:"column:cancellations;not null;default:0"`
	CreatedAt        time.Time `gorm:"column:created_at"`
}

func (HistoricalRecordModel) TableName() string {
	return "historical_records"
}

// ForecastModel represents the forecasts table
type ForecastModel struct {
	ID                 string    `gorm:"column:id;primaryKey;not null"` // uuid
	Date               time.Time `gorm:"column:date;index;not null"`
	DayOffset          int       `gorm:"column:day_offset;not null"`
	DemandScore        float64   `gorm:"column:demand_score;not null"`
	RecommendedPrice   float64   `gorm:"column:recommended_price;not null"`
	MinPrice           float64   `gorm:"column:min_price"`
	MaxPrice           float64   `gorm:"column:max_price"`
	PricingTier        string    `gorm:"column:pricing_tier"`
	Confidence         int       `gorm:"column:confidence"`
	PredictedOccupancy float64   `gorm:"column:predicted_occupancy"`
	CreatedAt          time.Time `gorm:"column:created_at;not null"`
}

func (ForecastModel) TableName() string {
	return "forecasts"
}
