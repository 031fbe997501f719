package backtest_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/revpilot-io/revpilot/internal/domain/backtest"
)

func accuracyRecords(pairs [][2]float64) []backtest.AccuracyRecord {
	start := time.Date(2026, 7, 1, 0, 0, 0, 0, time.UTC)
	records := make([]backtest.AccuracyRecord, 0, len(pairs))
	for i, p := range pairs {
		records = append(records, backtest.AccuracyRecord{
			Date:               start.AddDate(0, 0, i),
			PredictedOccupancy: p[0],
			ActualOccupancy:    p[1],
		})
	}
	return records
}

func TestAccuracyTracker_Track(t *testing.T) {
	// Arrange - errors of 10, 5, and 0 points
	tracker := backtest.NewAccuracyTracker()
	records := accuracyRecords([][2]float64{
		{70, 80},
		{75, 70},
		{60, 60},
	})

	// Act
	result := tracker.Track(records)

	// Assert
	assert.Equal(t, 3, result.Overall.SampleSize)
	assert.InDelta(t, 5.0, result.Overall.MAE, 1e-9)
	// MAPE = (12.5 + 7.14 + 0) / 3 ≈ 6.55
	assert.InDelta(t, 6.55, result.Overall.MAPE, 0.01)
	assert.InDelta(t, 93.45, result.Overall.Accuracy, 0.01)

	// Fewer than 30 records: rolling window equals overall
	assert.Equal(t, result.Overall, result.Rolling30)
}

func TestAccuracyTracker_RollingWindowTakesTrailingThirty(t *testing.T) {
	// Arrange - 40 bad days followed by 30 perfect ones
	tracker := backtest.NewAccuracyTracker()
	pairs := make([][2]float64, 0, 70)
	for i := 0; i < 40; i++ {
		pairs = append(pairs, [2]float64{90, 50})
	}
	for i := 0; i < 30; i++ {
		pairs = append(pairs, [2]float64{65, 65})
	}

	// Act
	result := tracker.Track(accuracyRecords(pairs))

	// Assert - the rolling window only sees the perfect stretch
	assert.Equal(t, 70, result.Overall.SampleSize)
	assert.Greater(t, result.Overall.MAE, 0.0)
	assert.Equal(t, 30, result.Rolling30.SampleSize)
	assert.Equal(t, 0.0, result.Rolling30.MAE)
	assert.Equal(t, 100.0, result.Rolling30.Accuracy)
}

func TestAccuracyTracker_ZeroActualContributesNoPercentageError(t *testing.T) {
	tracker := backtest.NewAccuracyTracker()
	records := accuracyRecords([][2]float64{
		{40, 0},  // closed-out day: absolute error only
		{60, 60},
	})

	result := tracker.Track(records)

	assert.InDelta(t, 20.0, result.Overall.MAE, 1e-9)
	assert.InDelta(t, 0.0, result.Overall.MAPE, 1e-9)
	assert.InDelta(t, 100.0, result.Overall.Accuracy, 1e-9)
}

func TestAccuracyTracker_Empty(t *testing.T) {
	result := backtest.NewAccuracyTracker().Track(nil)

	assert.Equal(t, 0, result.Overall.SampleSize)
	assert.Equal(t, 0.0, result.Overall.MAE)
	assert.Equal(t, 0.0, result.Overall.Accuracy)
}
