package forecast_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/revpilot-io/revpilot/internal/domain/forecast"
)

func TestConfidenceModel_DecaysWithLeadTime(t *testing.T) {
	model := forecast.NewConfidenceModel()
	cfg := forecast.DefaultConfidenceConfig()

	near := model.Score(forecast.ConfidenceInput{DayOffset: 0, TrendFactor: 1.0}, cfg)
	mid := model.Score(forecast.ConfidenceInput{DayOffset: 14, TrendFactor: 1.0}, cfg)
	far := model.Score(forecast.ConfidenceInput{DayOffset: 29, TrendFactor: 1.0}, cfg)

	assert.Greater(t, near.Score, mid.Score)
	assert.Greater(t, mid.Score, far.Score)
	assert.Equal(t, 1.0, near.Components.DataCompleteness)
}

func TestConfidenceModel_EventRaisesSignalStrength(t *testing.T) {
	model := forecast.NewConfidenceModel()
	cfg := forecast.DefaultConfidenceConfig()

	without := model.Score(forecast.ConfidenceInput{TrendFactor: 1.0}, cfg)
	with := model.Score(forecast.ConfidenceInput{
		TrendFactor:     1.0,
		HasEvent:        true,
		EventMultiplier: 1.25,
	}, cfg)

	assert.Equal(t, 0.60, without.Components.EventSignalStrength)
	assert.InDelta(t, 1.0, with.Components.EventSignalStrength, 1e-9)
	assert.Greater(t, with.Score, without.Score)
}

func TestConfidenceModel_HistoricalDataRaisesStability(t *testing.T) {
	model := forecast.NewConfidenceModel()
	cfg := forecast.DefaultConfidenceConfig()

	cold := model.Score(forecast.ConfidenceInput{TrendFactor: 1.0}, cfg)
	warm := model.Score(forecast.ConfidenceInput{
		TrendFactor:       1.0,
		HasHistoricalData: true,
		DataPoints:        90,
	}, cfg)

	assert.Equal(t, 0.50, cold.Components.HistoricalStability)
	assert.Equal(t, 0.90, warm.Components.HistoricalStability)
	assert.Equal(t, 1.0, warm.Components.DataVolume, "volume saturates at the configured minimum")
	assert.Greater(t, warm.Score, cold.Score)
}

func TestConfidenceModel_VolatilityPenalty(t *testing.T) {
	model := forecast.NewConfidenceModel()
	cfg := forecast.DefaultConfidenceConfig()

	calm := 0.05
	wild := 0.40

	calmResult := model.Score(forecast.ConfidenceInput{TrendFactor: 1.0, OccupancyVolatility: &calm}, cfg)
	wildResult := model.Score(forecast.ConfidenceInput{TrendFactor: 1.0, OccupancyVolatility: &wild}, cfg)
	unknown := model.Score(forecast.ConfidenceInput{TrendFactor: 1.0}, cfg)

	assert.InDelta(t, 0.825, calmResult.Components.Volatility, 1e-9)
	assert.Equal(t, 0.30, wildResult.Components.Volatility, "penalty bottoms out at 0.30")
	assert.Equal(t, 0.65, unknown.Components.Volatility, "neutral when volatility is unknown")
}

func TestConfidenceModel_ErraticTrendFloorsConsistency(t *testing.T) {
	model := forecast.NewConfidenceModel()
	cfg := forecast.DefaultConfidenceConfig()

	steady := model.Score(forecast.ConfidenceInput{TrendFactor: 1.0}, cfg)
	erratic := model.Score(forecast.ConfidenceInput{TrendFactor: 1.2}, cfg)

	assert.Equal(t, 1.0, steady.Components.TrendConsistency)
	assert.Equal(t, 0.3, erratic.Components.TrendConsistency)
}

func TestConfidenceModel_ScoreStaysBounded(t *testing.T) {
	model := forecast.NewConfidenceModel()
	cfg := forecast.DefaultConfidenceConfig()

	vol := 2.0
	worst := model.Score(forecast.ConfidenceInput{
		DayOffset:           365,
		TrendFactor:         3.0,
		OccupancyVolatility: &vol,
	}, cfg)
	best := model.Score(forecast.ConfidenceInput{
		DayOffset:         0,
		TrendFactor:       1.0,
		HasEvent:          true,
		EventMultiplier:   1.5,
		HasHistoricalData: true,
		DataPoints:        500,
	}, cfg)

	assert.GreaterOrEqual(t, worst.Score, 0)
	assert.LessOrEqual(t, best.Score, 100)
	assert.Greater(t, best.Score, worst.Score)
}

func TestConfidenceModel_ZeroConfigUsesDefaults(t *testing.T) {
	model := forecast.NewConfidenceModel()

	result := model.Score(forecast.ConfidenceInput{TrendFactor: 1.0}, forecast.ConfidenceConfig{})

	assert.Greater(t, result.Score, 0)
	assert.Equal(t, forecast.DefaultConfidenceWeights(), result.Weights)
}
