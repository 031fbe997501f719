package ports

import (
	"context"
	"time"

	"github.com/revpilot-io/revpilot/internal/domain/backtest"
	"github.com/revpilot-io/revpilot/internal/domain/hotel"
)

// HistoricalRecordRepository stores the property's daily occupancy
// history. Records arrive through the surrounding import layer; the
// engine reads them ordered by date.
type HistoricalRecordRepository interface {
	Save(ctx context.Context, record *hotel.HistoricalRecord) error
	ListOrdered(ctx context.Context) ([]*hotel.HistoricalRecord, error)
	ListRange(ctx context.Context, from, to time.Time) ([]*hotel.HistoricalRecord, error)
}

// ForecastStore persists generated per-day forecasts so they can later
// be scored against actuals.
type ForecastStore interface {
	Save(ctx context.Context, record *ForecastRecord) error
	ListByDateRange(ctx context.Context, from, to time.Time) ([]*ForecastRecord, error)

	// PairWithActuals joins stored forecasts with historical records on
	// date, yielding the accuracy tracker's input in chronological order.
	PairWithActuals(ctx context.Context) ([]backtest.AccuracyRecord, error)
}

// ForecastRecord is the persisted shape of one forecast day.
type ForecastRecord struct {
	ID                 string
	Date               time.Time
	DayOffset          int
	DemandScore        float64
	RecommendedPrice   float64
	MinPrice           float64
	MaxPrice           float64
	PricingTier        string
	Confidence         int
	PredictedOccupancy float64
	CreatedAt          time.Time
}
