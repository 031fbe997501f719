package persistence

import (
	"context"
	"fmt"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/revpilot-io/revpilot/internal/domain/hotel"
)

// GormHistoricalRecordRepository implements HistoricalRecordRepository using GORM
type GormHistoricalRecordRepository struct {
	db *gorm.DB
}

// NewGormHistoricalRecordRepository creates a new GORM historical record repository
func NewGormHistoricalRecordRepository(db *gorm.DB) *GormHistoricalRecordRepository {
	return &GormHistoricalRecordRepository{db: db}
}

// Save upserts a daily record keyed by date. Re-importing a day
// replaces its numbers rather than duplicating the row.
func (r *GormHistoricalRecordRepository) Save(ctx context.Context, record *hotel.HistoricalRecord) error {
	model := &HistoricalRecordModel{
		Date:             dateOnly(record.Date()),
		RoomsAvailable:   record.RoomsAvailable(),
		RoomsSold:        record.RoomsSold(),
		AverageDailyRate: record.AverageDailyRate(),
		Cancellations:    record.Cancellations(),
		CreatedAt:        time.Now().UTC(),
	}

	result := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "date"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"rooms_available", "rooms_sold", "average_daily_rate", "cancellations",
		}),
	}).Create(model)
	if result.Error != nil {
		return fmt.Errorf("failed to save historical record: %w", result.Error)
	}

	return nil
}

// ListOrdered returns every record ordered by date ascending.
func (r *GormHistoricalRecordRepository) ListOrdered(ctx context.Context) ([]*hotel.HistoricalRecord, error) {
	var models []HistoricalRecordModel
	result := r.db.WithContext(ctx).Order("date ASC").Find(&models)
	if result.Error != nil {
		return nil, fmt.Errorf("failed to list historical records: %w", result.Error)
	}

	return r.modelsToRecords(models)
}

// ListRange returns records with from <= date <= to, ordered by date.
func (r *GormHistoricalRecordRepository) ListRange(ctx context.Context, from, to time.Time) ([]*hotel.HistoricalRecord, error) {
	var models []HistoricalRecordModel
	result := r.db.WithContext(ctx).
		Where("date >= ? AND date <= ?", dateOnly(from), dateOnly(to)).
		Order("date ASC").
		Find(&models)
	if result.Error != nil {
		return nil, fmt.Errorf("failed to list historical records in range: %w", result.Error)
	}

	return r.modelsToRecords(models)
}

func (r *GormHistoricalRecordRepository) modelsToRecords(models []HistoricalRecordModel) ([]*hotel.HistoricalRecord, error) {
	records := make([]*hotel.HistoricalRecord, 0, len(models))
	for _, model := range models {
		record, err := hotel.NewHistoricalRecordWithID(
			model.ID,
			model.Date,
			model.RoomsAvailable,
			model.RoomsSold,
			model.AverageDailyRate,
			model.Cancellations,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to convert model to record: %w", err)
		}
		records = append(records, record)
	}
	return records, nil
}

// dateOnly truncates a timestamp to midnight UTC so the date unique
// index treats all intra-day timestamps as the same calendar day.
func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
