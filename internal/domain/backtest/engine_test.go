package backtest_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/revpilot-io/revpilot/internal/domain/backtest"
	"github.com/revpilot-io/revpilot/internal/domain/forecast"
	"github.com/revpilot-io/revpilot/internal/domain/hotel"
)

func backtestConfig(t *testing.T) backtest.Config {
	t.Helper()

	profile, err := hotel.NewProfile("Seaside Inn", "Valencia", 40, 120, 0.65, "EUR")
	require.NoError(t, err)

	return backtest.Config{
		Profile:    profile,
		Weights:    forecast.DefaultDemandWeights(),
		Pricing:    forecast.DefaultPricingConfig(profile.BasePrice()),
		Confidence: forecast.DefaultConfidenceConfig(),
	}
}

func backtestRecords(t *testing.T, n int, occupancy float64) []*hotel.HistoricalRecord {
	t.Helper()

	start := time.Date(2026, 5, 1, 0, 0, 0, 0, time.UTC)
	records := make([]*hotel.HistoricalRecord, 0, n)
	for i := 0; i < n; i++ {
		record, err := hotel.NewHistoricalRecord(
			start.AddDate(0, 0, i), 40, int(occupancy*40), 115, 1)
		require.NoError(t, err)
		records = append(records, record)
	}
	return records
}

func TestEngine_Run(t *testing.T) {
	// Arrange
	engine := backtest.NewEngine()
	records := backtestRecords(t, 30, 0.70)

	// Act
	summary, err := engine.Run(records, backtestConfig(t))

	// Assert
	require.NoError(t, err)
	assert.Equal(t, 30, summary.TotalDays)
	assert.Equal(t, 30, summary.WinDays+summary.LossDays)
	assert.Len(t, summary.Days, 30)
	assert.NotEqual(t, "00000000-0000-0000-0000-000000000000", summary.RunID.String())

	assert.InDelta(t, summary.TotalProjectedRevenue-summary.TotalActualRevenue,
		summary.RevenueDifference, 0.01)
	assert.GreaterOrEqual(t, summary.MeanAbsoluteError, 0.0)
	assert.Greater(t, summary.AvgConfidence, 0.0)

	for _, day := range summary.Days {
		assert.GreaterOrEqual(t, day.DemandScore, 0.0)
		assert.LessOrEqual(t, day.DemandScore, 100.0)
		assert.Greater(t, day.RecommendedPrice, 0.0)
		assert.Equal(t, day.Win, day.ProjectedRevenue > day.ActualRevenue)
	}
}

func TestEngine_SortsRecordsByDate(t *testing.T) {
	// Arrange - records in reverse order
	engine := backtest.NewEngine()
	records := backtestRecords(t, 10, 0.70)
	reversed := make([]*hotel.HistoricalRecord, len(records))
	for i, r := range records {
		reversed[len(records)-1-i] = r
	}

	// Act
	summary, err := engine.Run(reversed, backtestConfig(t))

	// Assert
	require.NoError(t, err)
	for i := 1; i < len(summary.Days); i++ {
		assert.True(t, summary.Days[i].Date.After(summary.Days[i-1].Date))
	}
}

func TestEngine_MomentumOnlyReadsPriorDays(t *testing.T) {
	// Arrange - a sudden jump on the final day must not shift its own
	// momentum: the replay for day N only sees days before N
	engine := backtest.NewEngine()
	records := backtestRecords(t, 15, 0.65)
	spike, err := hotel.NewHistoricalRecord(
		time.Date(2026, 5, 16, 0, 0, 0, 0, time.UTC), 40, 40, 300, 0)
	require.NoError(t, err)
	records = append(records, spike)

	flat, err := engine.Run(records[:15], backtestConfig(t))
	require.NoError(t, err)

	// Act
	withSpike, err := engine.Run(records, backtestConfig(t))
	require.NoError(t, err)

	// Assert - the first 15 replayed days are identical either way
	for i := 0; i < 15; i++ {
		assert.Equal(t, flat.Days[i].DemandScore, withSpike.Days[i].DemandScore)
		assert.Equal(t, flat.Days[i].RecommendedPrice, withSpike.Days[i].RecommendedPrice)
	}
}

func TestEngine_FewPriorDaysUseNeutralMomentum(t *testing.T) {
	// Arrange - strong occupancy against a weak base would max out
	// momentum, but the first three days have too little signal
	engine := backtest.NewEngine()
	cfg := backtestConfig(t)
	records := backtestRecords(t, 8, 0.95)

	// Act
	summary, err := engine.Run(records, cfg)

	// Assert - day 0 and day 7 share a weekday, so the only difference
	// is momentum: neutral on day 0, above 1 once enough history exists
	require.NoError(t, err)
	require.Len(t, summary.Days, 8)
	assert.Greater(t, summary.Days[7].DemandScore, summary.Days[0].DemandScore)
}

func TestEngine_RejectsInvalidPricing(t *testing.T) {
	engine := backtest.NewEngine()
	cfg := backtestConfig(t)
	cfg.Pricing.BasePrice = 0

	_, err := engine.Run(backtestRecords(t, 5, 0.7), cfg)

	assert.ErrorIs(t, err, forecast.ErrInvalidBasePrice)
}

func TestEngine_EmptyHistory(t *testing.T) {
	engine := backtest.NewEngine()

	summary, err := engine.Run(nil, backtestConfig(t))

	require.NoError(t, err)
	assert.Equal(t, 0, summary.TotalDays)
	assert.Equal(t, 0.0, summary.UpliftPercent)
}

func TestEngine_ConfidenceUsesPriorWindowLikeLivePipeline(t *testing.T) {
	// Arrange - 90 flat days at exactly the base occupancy, so trend is
	// neutral and occupancy volatility is zero
	engine := backtest.NewEngine()
	cfg := backtestConfig(t)
	records := backtestRecords(t, 90, 0.65)

	// Act
	summary, err := engine.Run(records, cfg)

	// Assert - the final replayed day must score confidence from its 89
	// prior records and their volatility, exactly as the live pipeline
	// feeds the model
	require.NoError(t, err)
	require.Len(t, summary.Days, 90)

	volatility := 0.0
	expected := forecast.NewConfidenceModel().Score(forecast.ConfidenceInput{
		DayOffset:           0,
		TrendFactor:         1.0,
		HasHistoricalData:   true,
		DataPoints:          89,
		OccupancyVolatility: &volatility,
	}, cfg.Confidence)
	assert.Equal(t, expected.Score, summary.Days[89].Confidence)

	// A deep prior window must not score like a cold start
	assert.Greater(t, summary.Days[89].Confidence, summary.Days[0].Confidence)
}
