package forecast_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/revpilot-io/revpilot/internal/domain/forecast"
	"github.com/revpilot-io/revpilot/internal/domain/signals"
)

// neutralDemandConfig pins every factor to 1.0: neutral stats, no
// event, no external signal, weekday factor disabled through stats.
func neutralDemandConfig(base float64) forecast.DemandConfig {
	stats := &forecast.HistoricalDemandStats{
		HasData:                 true,
		TotalRecords:            90,
		AvgOccupancy:            base,
		Rolling7DayTrend:        1.0,
		Rolling30DaySeasonality: 1.0,
		RecentMomentum14Day:     1.0,
	}
	for d := 0; d < 7; d++ {
		stats.WeekdayAvgOccupancy[d] = base
	}

	return forecast.DemandConfig{
		Date:          time.Date(2026, 10, 7, 0, 0, 0, 0, time.UTC), // October: seasonality 1.00
		DayOffset:     0,
		BaseOccupancy: base,
		Stats:         stats,
		Events:        map[int]forecast.ScheduledEvent{},
	}
}

func TestDemandModel_NeutralInputsScoreFifty(t *testing.T) {
	// Arrange
	model := forecast.NewDemandModel()

	// Act
	result, err := model.Score(neutralDemandConfig(0.65))

	// Assert - with every factor neutral the score sits at the midpoint
	require.NoError(t, err)
	assert.InDelta(t, 50.0, result.DemandScore, 1e-9)
	assert.Equal(t, "", result.EventName)
	assert.Equal(t, 0.0, result.ExternalSignalScore)
}

func TestDemandModel_ScoreStaysBounded(t *testing.T) {
	model := forecast.NewDemandModel()
	start := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)

	for offset := 0; offset < 365; offset++ {
		cfg := forecast.DemandConfig{
			Date:          start.AddDate(0, 0, offset),
			DayOffset:     offset % 30,
			BaseOccupancy: 0.95,
		}
		result, err := model.Score(cfg)
		require.NoError(t, err)
		assert.GreaterOrEqual(t, result.DemandScore, 0.0)
		assert.LessOrEqual(t, result.DemandScore, 100.0)
	}
}

func TestDemandModel_EventRaisesScore(t *testing.T) {
	// Arrange
	model := forecast.NewDemandModel()
	base := neutralDemandConfig(0.65)
	withEvent := neutralDemandConfig(0.65)
	withEvent.Events = map[int]forecast.ScheduledEvent{
		0: {Name: "Stadium concert", Multiplier: 1.25},
	}

	// Act
	plain, err := model.Score(base)
	require.NoError(t, err)
	boosted, err := model.Score(withEvent)
	require.NoError(t, err)

	// Assert
	assert.Equal(t, "Stadium concert", boosted.EventName)
	assert.Equal(t, 1.25, boosted.EventMultiplier)
	assert.Greater(t, boosted.DemandScore, plain.DemandScore)
}

func TestDemandModel_ExternalSignalShiftsScore(t *testing.T) {
	// Arrange
	model := forecast.NewDemandModel()

	favorable := neutralDemandConfig(0.65)
	favorable.ExternalSignal = &signals.Result{TotalScore: 16}

	unfavorable := neutralDemandConfig(0.65)
	unfavorable.ExternalSignal = &signals.Result{TotalScore: 4}

	neutral := neutralDemandConfig(0.65)
	neutral.ExternalSignal = &signals.Result{TotalScore: signals.NeutralTotal}

	// Act
	up, err := model.Score(favorable)
	require.NoError(t, err)
	down, err := model.Score(unfavorable)
	require.NoError(t, err)
	mid, err := model.Score(neutral)
	require.NoError(t, err)

	// Assert - signal enters centered around the neutral total
	assert.InDelta(t, 56.0, up.DemandScore, 1e-9)
	assert.InDelta(t, 44.0, down.DemandScore, 1e-9)
	assert.InDelta(t, 50.0, mid.DemandScore, 1e-9)
	assert.Equal(t, 6.0, up.ExternalSignalScore)
	assert.Equal(t, -6.0, down.ExternalSignalScore)
}

func TestDemandModel_CustomWeightsRenormalized(t *testing.T) {
	// Arrange - weights summing to 2.0 must behave like the same ratios
	// summing to 1.0
	model := forecast.NewDemandModel()
	cfg := neutralDemandConfig(0.65)
	cfg.Weights = forecast.DemandWeights{
		WeekdayAvg:  0.6,
		Trend:       0.4,
		Seasonality: 0.4,
		Event:       0.3,
		BookingPace: 0.3,
	}

	// Act
	result, err := model.Score(cfg)

	// Assert
	require.NoError(t, err)
	assert.InDelta(t, 1.0, result.Weights.Sum(), 1e-9)
	assert.InDelta(t, 50.0, result.DemandScore, 1e-9)
}

func TestDemandModel_RejectsInvalidBaseOccupancy(t *testing.T) {
	model := forecast.NewDemandModel()

	_, err := model.Score(forecast.DemandConfig{BaseOccupancy: 1.5, Date: time.Now()})
	assert.ErrorIs(t, err, forecast.ErrInvalidBaseOccupancy)

	_, err = model.Score(forecast.DemandConfig{BaseOccupancy: -0.1, Date: time.Now()})
	assert.ErrorIs(t, err, forecast.ErrInvalidBaseOccupancy)
}

func TestDemandModel_HigherTrendRaisesScore(t *testing.T) {
	model := forecast.NewDemandModel()

	rising := neutralDemandConfig(0.65)
	rising.Stats.Rolling7DayTrend = 1.15

	falling := neutralDemandConfig(0.65)
	falling.Stats.Rolling7DayTrend = 0.85

	up, err := model.Score(rising)
	require.NoError(t, err)
	down, err := model.Score(falling)
	require.NoError(t, err)

	assert.Greater(t, up.DemandScore, 50.0)
	assert.Less(t, down.DemandScore, 50.0)
}

func TestDemandModel_Deterministic(t *testing.T) {
	model := forecast.NewDemandModel()
	cfg := neutralDemandConfig(0.72)
	cfg.ExternalSignal = &signals.Result{TotalScore: 13}

	first, err := model.Score(cfg)
	require.NoError(t, err)
	second, err := model.Score(cfg)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}
