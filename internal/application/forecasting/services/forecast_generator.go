package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/revpilot-io/revpilot/internal/application/forecasting/types"
	"github.com/revpilot-io/revpilot/internal/domain/forecast"
	"github.com/revpilot-io/revpilot/internal/domain/hotel"
	"github.com/revpilot-io/revpilot/internal/domain/ports"
	"github.com/revpilot-io/revpilot/internal/domain/signals"
)

// Settings carries the model configuration the generator applies to
// every day of a horizon.
type Settings struct {
	Profile     *hotel.Profile
	Weights     forecast.DemandWeights
	Pricing     forecast.PricingConfig
	Confidence  forecast.ConfidenceConfig
	Elasticity  forecast.ElasticityConfig
	HorizonDays int
}

// PipelineObserver receives per-day and per-provider measurements.
// Implemented by the prometheus collector; nil disables observation.
type PipelineObserver interface {
	ObserveForecastDay(demandScore, recommendedPrice float64)
	SetProviderAvailability(provider string, available bool)
}

// ForecastGenerator composes the pure models with the signal providers
// and the historical record store into the per-day forecast pipeline:
// stats → external signal → demand → price → confidence → revenue.
type ForecastGenerator struct {
	statsComputer *forecast.StatsComputer
	aggregator    *signals.Aggregator
	demand        *forecast.DemandModel
	optimizer     *forecast.PriceOptimizer
	confidence    *forecast.ConfidenceModel
	simulator     *forecast.RevenueSimulator

	weather    ports.WeatherProvider
	events     ports.EventsProvider
	competitor ports.CompetitorRateProvider
	records    ports.HistoricalRecordRepository

	settings Settings
	observer PipelineObserver
}

// WithObserver attaches a pipeline observer and returns the generator.
func (g *ForecastGenerator) WithObserver(observer PipelineObserver) *ForecastGenerator {
	g.observer = observer
	return g
}

// NewForecastGenerator wires the pipeline. A nil estimator on the
// aggregator side is fine; signals.NewAggregator applies its default.
func NewForecastGenerator(
	weather ports.WeatherProvider,
	events ports.EventsProvider,
	competitor ports.CompetitorRateProvider,
	records ports.HistoricalRecordRepository,
	estimator signals.AttendanceEstimator,
	settings Settings,
) *ForecastGenerator {
	return &ForecastGenerator{
		statsComputer: forecast.NewStatsComputer(),
		aggregator:    signals.NewAggregator(estimator),
		demand:        forecast.NewDemandModel(),
		optimizer:     forecast.NewPriceOptimizer(),
		confidence:    forecast.NewConfidenceModel(),
		simulator:     forecast.NewRevenueSimulator(),
		weather:       weather,
		events:        events,
		competitor:    competitor,
		records:       records,
		settings:      settings,
	}
}

// GenerateForecast produces the per-day forecast for [start, start+days).
// External series are fetched once for the whole horizon; each day's
// computation is then a pure function of its inputs.
func (g *ForecastGenerator) GenerateForecast(ctx context.Context, start time.Time, days int) ([]types.DayForecast, *forecast.HistoricalDemandStats, error) {
	if days <= 0 {
		days = forecast.DefaultHorizonDays
	}

	stats, env, err := g.prepare(ctx, start)
	if err != nil {
		return nil, nil, err
	}

	result := make([]types.DayForecast, 0, days)
	for offset := 0; offset < days; offset++ {
		day, err := g.generateDay(start, offset, stats, env, 0)
		if err != nil {
			return nil, nil, err
		}
		result = append(result, day)
	}

	return result, stats, nil
}

// SimulateDay produces a single day's forecast with a manual price
// routed through the revenue simulation.
func (g *ForecastGenerator) SimulateDay(ctx context.Context, start time.Time, offset int, manualPrice float64) (types.DayForecast, error) {
	stats, env, err := g.prepare(ctx, start)
	if err != nil {
		return types.DayForecast{}, err
	}
	return g.generateDay(start, offset, stats, env, manualPrice)
}

// environment holds the horizon-wide external inputs.
type environment struct {
	weather     []signals.WeatherDay
	events      []signals.EventRecord
	competitors []signals.CompetitorRate
}

func (g *ForecastGenerator) prepare(ctx context.Context, start time.Time) (*forecast.HistoricalDemandStats, environment, error) {
	records, err := g.records.ListOrdered(ctx)
	if err != nil {
		return nil, environment{}, fmt.Errorf("failed to load historical records: %w", err)
	}
	stats := g.statsComputer.Compute(records)

	city := g.settings.Profile.City()
	env := environment{}
	var weatherOK, eventsOK, competitorsOK bool
	env.weather, weatherOK = g.weather.FetchWeather(ctx, city)
	env.events, eventsOK = g.events.FetchEvents(ctx, city)
	env.competitors, competitorsOK = g.competitor.FetchRates(ctx, city)

	if g.observer != nil {
		g.observer.SetProviderAvailability("weather", weatherOK)
		g.observer.SetProviderAvailability("events", eventsOK)
		g.observer.SetProviderAvailability("competitor", competitorsOK)
	}

	return stats, env, nil
}

func (g *ForecastGenerator) generateDay(start time.Time, offset int, stats *forecast.HistoricalDemandStats, env environment, manualPrice float64) (types.DayForecast, error) {
	date := start.AddDate(0, 0, offset)
	profile := g.settings.Profile

	signal := g.aggregator.Aggregate(signals.AggregateInput{
		ReferenceDate:   start,
		TargetDate:      date,
		HotelPrice:      profile.BasePrice(),
		CompetitorRates: env.competitors,
		Weather:         env.weather,
		Events:          env.events,
	})

	baseOccupancy := profile.BaseOccupancy()
	if stats.HasData {
		baseOccupancy = stats.AvgOccupancy
	}

	demand, err := g.demand.Score(forecast.DemandConfig{
		Date:           date,
		DayOffset:      offset,
		BaseOccupancy:  baseOccupancy,
		Weights:        g.settings.Weights,
		Stats:          stats,
		ExternalSignal: &signal,
		HorizonDays:    g.settings.HorizonDays,
	})
	if err != nil {
		return types.DayForecast{}, fmt.Errorf("failed to score demand for %s: %w", date.Format("2006-01-02"), err)
	}

	projected := demand.DemandScore
	price, err := g.optimizer.Optimize(demand.DemandScore, &projected, g.settings.Pricing)
	if err != nil {
		return types.DayForecast{}, fmt.Errorf("failed to optimize price for %s: %w", date.Format("2006-01-02"), err)
	}

	confInput := forecast.ConfidenceInput{
		DayOffset:         offset,
		HasEvent:          demand.EventName != "",
		EventMultiplier:   demand.EventMultiplier,
		TrendFactor:       demand.TrendFactor,
		HasHistoricalData: stats.HasData,
		DataPoints:        stats.TotalRecords,
	}
	if stats.HasData {
		volatility := stats.OccupancyVolatility
		confInput.OccupancyVolatility = &volatility
	}
	conf := g.confidence.Score(confInput, g.settings.Confidence)

	revenue := g.simulator.Simulate(forecast.SimulationInput{
		TotalRooms:         profile.TotalRooms(),
		PredictedOccupancy: demand.DemandScore,
		RecommendedPrice:   price.RecommendedPrice,
		StaticPrice:        profile.BasePrice(),
		ManualPrice:        manualPrice,
		Elasticity:         g.settings.Elasticity,
	})

	if g.observer != nil {
		g.observer.ObserveForecastDay(demand.DemandScore, price.RecommendedPrice)
	}

	return types.DayForecast{
		ID:         uuid.NewString(),
		Date:       date,
		DayOffset:  offset,
		Demand:     demand,
		Price:      price,
		Confidence: conf,
		Signal:     signal,
		Revenue:    revenue,
	}, nil
}
