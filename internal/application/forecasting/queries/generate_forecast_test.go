package queries_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/revpilot-io/revpilot/internal/application/forecasting/queries"
	"github.com/revpilot-io/revpilot/internal/application/forecasting/services"
	"github.com/revpilot-io/revpilot/internal/domain/backtest"
	"github.com/revpilot-io/revpilot/internal/domain/forecast"
	"github.com/revpilot-io/revpilot/internal/domain/hotel"
	"github.com/revpilot-io/revpilot/internal/domain/ports"
	"github.com/revpilot-io/revpilot/internal/domain/signals"
)

// memoryRecords is an in-memory HistoricalRecordRepository.
type memoryRecords struct {
	records []*hotel.HistoricalRecord
}

func (m *memoryRecords) Save(_ context.Context, r *hotel.HistoricalRecord) error {
	m.records = append(m.records, r)
	return nil
}
func (m *memoryRecords) ListOrdered(_ context.Context) ([]*hotel.HistoricalRecord, error) {
	return m.records, nil
}
func (m *memoryRecords) ListRange(_ context.Context, _, _ time.Time) ([]*hotel.HistoricalRecord, error) {
	return m.records, nil
}

// memoryStore is an in-memory ForecastStore.
type memoryStore struct {
	saved []*ports.ForecastRecord
	pairs []backtest.AccuracyRecord
}

func (m *memoryStore) Save(_ context.Context, r *ports.ForecastRecord) error {
	m.saved = append(m.saved, r)
	return nil
}
func (m *memoryStore) ListByDateRange(_ context.Context, _, _ time.Time) ([]*ports.ForecastRecord, error) {
	return m.saved, nil
}
func (m *memoryStore) PairWithActuals(_ context.Context) ([]backtest.AccuracyRecord, error) {
	return m.pairs, nil
}

type noWeather struct{}

func (noWeather) FetchWeather(_ context.Context, _ string) ([]signals.WeatherDay, bool) {
	return nil, false
}

type noEvents struct{}

func (noEvents) FetchEvents(_ context.Context, _ string) ([]signals.EventRecord, bool) {
	return nil, false
}

type noCompetitors struct{}

func (noCompetitors) FetchRates(_ context.Context, _ string) ([]signals.CompetitorRate, bool) {
	return nil, false
}

func newTestGenerator(t *testing.T, records *memoryRecords) *services.ForecastGenerator {
	t.Helper()

	profile, err := hotel.NewProfile("Seaside Inn", "Valencia", 40, 120, 0.65, "EUR")
	require.NoError(t, err)

	return services.NewForecastGenerator(
		noWeather{}, noEvents{}, noCompetitors{}, records, nil,
		services.Settings{
			Profile:     profile,
			Weights:     forecast.DefaultDemandWeights(),
			Pricing:     forecast.DefaultPricingConfig(120),
			Confidence:  forecast.DefaultConfidenceConfig(),
			Elasticity:  forecast.DefaultElasticityConfig(),
			HorizonDays: 30,
		})
}

func TestGenerateForecastHandler(t *testing.T) {
	// Arrange
	store := &memoryStore{}
	handler := queries.NewGenerateForecastHandler(newTestGenerator(t, &memoryRecords{}), store)
	start := time.Date(2026, 9, 14, 0, 0, 0, 0, time.UTC)

	// Act
	resp, err := handler.Handle(context.Background(), &queries.GenerateForecastQuery{
		StartDate: start,
		Days:      14,
	})

	// Assert
	require.NoError(t, err)
	response := resp.(*queries.GenerateForecastResponse)
	assert.Len(t, response.Days, 14)
	assert.Empty(t, store.saved, "nothing persisted without the persist flag")
}

func TestGenerateForecastHandler_Persists(t *testing.T) {
	// Arrange
	store := &memoryStore{}
	handler := queries.NewGenerateForecastHandler(newTestGenerator(t, &memoryRecords{}), store)
	start := time.Date(2026, 9, 14, 0, 0, 0, 0, time.UTC)

	// Act
	resp, err := handler.Handle(context.Background(), &queries.GenerateForecastQuery{
		StartDate: start,
		Days:      7,
		Persist:   true,
	})

	// Assert - one stored row per forecast day, carrying the scores
	require.NoError(t, err)
	response := resp.(*queries.GenerateForecastResponse)
	require.Len(t, store.saved, 7)
	for i, saved := range store.saved {
		assert.Equal(t, response.Days[i].ID, saved.ID)
		assert.Equal(t, response.Days[i].Demand.DemandScore, saved.DemandScore)
		assert.Equal(t, response.Days[i].Demand.DemandScore, saved.PredictedOccupancy)
		assert.Equal(t, string(response.Days[i].Price.Tier), saved.PricingTier)
	}
}

func TestGenerateForecastHandler_RequiresStartDate(t *testing.T) {
	handler := queries.NewGenerateForecastHandler(newTestGenerator(t, &memoryRecords{}), &memoryStore{})

	_, err := handler.Handle(context.Background(), &queries.GenerateForecastQuery{})

	assert.ErrorContains(t, err, "start date is required")
}

func TestGenerateForecastHandler_DefaultsHorizon(t *testing.T) {
	handler := queries.NewGenerateForecastHandler(newTestGenerator(t, &memoryRecords{}), &memoryStore{})

	resp, err := handler.Handle(context.Background(), &queries.GenerateForecastQuery{
		StartDate: time.Date(2026, 9, 14, 0, 0, 0, 0, time.UTC),
	})

	require.NoError(t, err)
	assert.Len(t, resp.(*queries.GenerateForecastResponse).Days, forecast.DefaultHorizonDays)
}

func TestGenerateForecastHandler_RejectsWrongRequestType(t *testing.T) {
	handler := queries.NewGenerateForecastHandler(newTestGenerator(t, &memoryRecords{}), &memoryStore{})

	_, err := handler.Handle(context.Background(), &queries.RunBacktestQuery{})

	assert.ErrorContains(t, err, "invalid request type")
}
