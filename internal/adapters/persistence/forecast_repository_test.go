package persistence_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/revpilot-io/revpilot/internal/adapters/persistence"
	"github.com/revpilot-io/revpilot/internal/domain/ports"
	"github.com/revpilot-io/revpilot/test/helpers"
)

func sampleForecast(date time.Time, predicted float64) *ports.ForecastRecord {
	return &ports.ForecastRecord{
		ID:                 uuid.NewString(),
		Date:               date,
		DayOffset:          0,
		DemandScore:        predicted,
		RecommendedPrice:   135,
		MinPrice:           115,
		MaxPrice:           162,
		PricingTier:        "premium",
		Confidence:         78,
		PredictedOccupancy: predicted,
		CreatedAt:          time.Now().UTC(),
	}
}

func TestForecastRepository_SaveAndListByDateRange(t *testing.T) {
	// Arrange
	db := helpers.NewTestDB(t)
	repo := persistence.NewGormForecastRepository(db)
	start := time.Date(2026, 9, 10, 0, 0, 0, 0, time.UTC)

	for i := 0; i < 5; i++ {
		require.NoError(t, repo.Save(context.Background(),
			sampleForecast(start.AddDate(0, 0, i), 70+float64(i))))
	}

	// Act
	records, err := repo.ListByDateRange(context.Background(),
		start.AddDate(0, 0, 1), start.AddDate(0, 0, 3))

	// Assert
	require.NoError(t, err)
	require.Len(t, records, 3)
	assert.Equal(t, 71.0, records[0].PredictedOccupancy)
	assert.Equal(t, "premium", records[0].PricingTier)
	assert.Equal(t, 78, records[0].Confidence)
}

func TestForecastRepository_SaveIsIdempotentPerID(t *testing.T) {
	// Arrange
	db := helpers.NewTestDB(t)
	repo := persistence.NewGormForecastRepository(db)
	date := time.Date(2026, 9, 10, 0, 0, 0, 0, time.UTC)

	record := sampleForecast(date, 70)
	require.NoError(t, repo.Save(context.Background(), record))

	// Act - regenerate the same forecast day
	record.DemandScore = 82
	record.PredictedOccupancy = 82
	require.NoError(t, repo.Save(context.Background(), record))

	records, err := repo.ListByDateRange(context.Background(), date, date)

	// Assert
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, 82.0, records[0].PredictedOccupancy)
}

func TestForecastRepository_PairWithActuals(t *testing.T) {
	// Arrange - three forecast days, actuals recorded for only two
	db := helpers.NewTestDB(t)
	forecasts := persistence.NewGormForecastRepository(db)
	actuals := persistence.NewGormHistoricalRecordRepository(db)
	start := time.Date(2026, 9, 10, 0, 0, 0, 0, time.UTC)

	require.NoError(t, forecasts.Save(context.Background(), sampleForecast(start, 75)))
	require.NoError(t, forecasts.Save(context.Background(), sampleForecast(start.AddDate(0, 0, 1), 80)))
	require.NoError(t, forecasts.Save(context.Background(), sampleForecast(start.AddDate(0, 0, 2), 85)))

	require.NoError(t, actuals.Save(context.Background(), mustRecord(t, start, 40, 28, 120)))
	require.NoError(t, actuals.Save(context.Background(), mustRecord(t, start.AddDate(0, 0, 1), 40, 34, 130)))

	// Act
	pairs, err := forecasts.PairWithActuals(context.Background())

	// Assert - unscored day skipped, actual occupancy as a percentage
	require.NoError(t, err)
	require.Len(t, pairs, 2)
	assert.Equal(t, 75.0, pairs[0].PredictedOccupancy)
	assert.InDelta(t, 70.0, pairs[0].ActualOccupancy, 1e-9)
	assert.Equal(t, 80.0, pairs[1].PredictedOccupancy)
	assert.InDelta(t, 85.0, pairs[1].ActualOccupancy, 1e-9)
	assert.True(t, pairs[1].Date.After(pairs[0].Date))
}

func TestForecastRepository_PairWithActuals_Empty(t *testing.T) {
	db := helpers.NewTestDB(t)
	repo := persistence.NewGormForecastRepository(db)

	pairs, err := repo.PairWithActuals(context.Background())

	require.NoError(t, err)
	assert.Empty(t, pairs)
}
