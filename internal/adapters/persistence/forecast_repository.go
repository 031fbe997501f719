package persistence

import (
	"context"
	"fmt"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/revpilot-io/revpilot/internal/domain/backtest"
	"github.com/revpilot-io/revpilot/internal/domain/ports"
)

// GormForecastRepository implements ForecastStore using GORM
type GormForecastRepository struct {
	db *gorm.DB
}

// NewGormForecastRepository creates a new GORM forecast repository
func NewGormForecastRepository(db *gorm.DB) *GormForecastRepository {
	return &GormForecastRepository{db: db}
}

// Save persists one forecast day. Saving the same ID again overwrites
// the previous row, so regenerating a horizon is idempotent.
func (r *GormForecastRepository) Save(ctx context.Context, record *ports.ForecastRecord) error {
	model := &ForecastModel{
		ID:                 record.ID,
		Date:               dateOnly(record.Date),
		DayOffset:          record.DayOffset,
		DemandScore:        record.DemandScore,
		RecommendedPrice:   record.RecommendedPrice,
		MinPrice:           record.MinPrice,
		MaxPrice:           record.MaxPrice,
		PricingTier:        record.PricingTier,
		Confidence:         record.Confidence,
		PredictedOccupancy: record.PredictedOccupancy,
		CreatedAt:          record.CreatedAt,
	}

	result := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "id"}},
		UpdateAll: true,
	}).Create(model)
	if result.Error != nil {
		return fmt.Errorf("failed to save forecast: %w", result.Error)
	}

	return nil
}

// ListByDateRange returns forecasts with from <= date <= to, ordered by date.
func (r *GormForecastRepository) ListByDateRange(ctx context.Context, from, to time.Time) ([]*ports.ForecastRecord, error) {
	var models []ForecastModel
	result := r.db.WithContext(ctx).
		Where("date >= ? AND date <= ?", dateOnly(from), dateOnly(to)).
		Order("date ASC").
		Find(&models)
	if result.Error != nil {
		return nil, fmt.Errorf("failed to list forecasts: %w", result.Error)
	}

	records := make([]*ports.ForecastRecord, 0, len(models))
	for _, m := range models {
		records = append(records, modelToForecast(m))
	}
	return records, nil
}

// PairWithActuals joins stored forecasts with historical records on
// date, in chronological order. Forecast days with no matching actual
// yet are skipped; they cannot be scored.
func (r *GormForecastRepository) PairWithActuals(ctx context.Context) ([]backtest.AccuracyRecord, error) {
	type pair struct {
		Date               time.Time
		PredictedOccupancy float64
		RoomsAvailable     int
		RoomsSold          int
	}

	var pairs []pair
	result := r.db.WithContext(ctx).
		Table("forecasts").
		Select("forecasts.date, forecasts.predicted_occupancy, historical_records.rooms_available, historical_records.rooms_sold").
		Joins("JOIN historical_records ON historical_records.date = forecasts.date").
		Order("forecasts.date ASC").
		Scan(&pairs)
	if result.Error != nil {
		return nil, fmt.Errorf("failed to pair forecasts with actuals: %w", result.Error)
	}

	records := make([]backtest.AccuracyRecord, 0, len(pairs))
	for _, p := range pairs {
		actual := 0.0
		if p.RoomsAvailable > 0 {
			actual = float64(p.RoomsSold) / float64(p.RoomsAvailable) * 100
		}
		records = append(records, backtest.AccuracyRecord{
			Date:               p.Date,
			PredictedOccupancy: p.PredictedOccupancy,
			ActualOccupancy:    actual,
		})
	}

	return records, nil
}

func modelToForecast(m ForecastModel) *ports.ForecastRecord {
	return &ports.ForecastRecord{
		ID:                 m.ID,
		Date:               m.Date,
		DayOffset:          m.DayOffset,
		DemandScore:        m.DemandScore,
		RecommendedPrice:   m.RecommendedPrice,
		MinPrice:           m.MinPrice,
		MaxPrice:           m.MaxPrice,
		PricingTier:        m.PricingTier,
		Confidence:         m.Confidence,
		PredictedOccupancy: m.PredictedOccupancy,
		CreatedAt:          m.CreatedAt,
	}
}
