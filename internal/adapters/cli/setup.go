package cli

import (
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"github.com/revpilot-io/revpilot/internal/adapters/metrics"
	"github.com/revpilot-io/revpilot/internal/adapters/persistence"
	"github.com/revpilot-io/revpilot/internal/application/common"
	"github.com/revpilot-io/revpilot/internal/application/forecasting/queries"
	"github.com/revpilot-io/revpilot/internal/adapters/providers"
	"github.com/revpilot-io/revpilot/internal/application/forecasting/services"
	"github.com/revpilot-io/revpilot/internal/domain/backtest"
	"github.com/revpilot-io/revpilot/internal/domain/forecast"
	"github.com/revpilot-io/revpilot/internal/domain/hotel"
	"github.com/revpilot-io/revpilot/internal/domain/ports"
	"github.com/revpilot-io/revpilot/internal/infrastructure/cache"
	"github.com/revpilot-io/revpilot/internal/infrastructure/config"
	"github.com/revpilot-io/revpilot/internal/infrastructure/database"
	"github.com/revpilot-io/revpilot/internal/domain/signals"
)

// App bundles everything a CLI command needs.
type App struct {
	Config    *config.Config
	Log       *logrus.Logger
	DB        *gorm.DB
	Profile   *hotel.Profile
	Records   *persistence.GormHistoricalRecordRepository
	Forecasts *persistence.GormForecastRepository
	Generator *services.ForecastGenerator
	Metrics   *metrics.ForecastMetricsCollector
	Mediator  common.Mediator

	BacktestConfig backtest.Config
}

// buildApp loads configuration and wires the pipeline for command use.
func buildApp() (*App, error) {
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		return nil, err
	}

	log := newLogger(cfg.Logging)

	db, err := database.NewConnection(&cfg.Database)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	if err := database.AutoMigrate(db); err != nil {
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	profile, err := hotel.NewProfile(
		cfg.Hotel.Name,
		cfg.Hotel.City,
		cfg.Hotel.TotalRooms,
		cfg.Hotel.BasePrice,
		cfg.Hotel.BaseOccupancy,
		cfg.Hotel.Currency,
	)
	if err != nil {
		return nil, fmt.Errorf("invalid hotel profile: %w", err)
	}

	settings, err := buildSettings(profile, cfg.Pricing)
	if err != nil {
		return nil, err
	}

	records := persistence.NewGormHistoricalRecordRepository(db)
	forecasts := persistence.NewGormForecastRepository(db)

	collector := metrics.NewForecastMetricsCollector()
	if err := collector.Register(prometheus.NewRegistry()); err != nil {
		return nil, fmt.Errorf("failed to register metrics: %w", err)
	}

	generator := services.NewForecastGenerator(
		buildWeatherProvider(cfg.Providers.Weather, log),
		buildEventsProvider(cfg.Providers.Events, log),
		providers.NewStaticCompetitorProvider(cfg.Providers.Competitor),
		records,
		nil,
		settings,
	).WithObserver(collector)

	backtestCfg := backtest.Config{
		Profile:    profile,
		Weights:    settings.Weights,
		Pricing:    settings.Pricing,
		Confidence: settings.Confidence,
	}

	mediator, err := registerHandlers(generator, records, forecasts, backtestCfg)
	if err != nil {
		return nil, err
	}

	return &App{
		Config:    cfg,
		Log:       log,
		DB:        db,
		Profile:   profile,
		Records:   records,
		Forecasts: forecasts,
		Generator: generator,
		Metrics:   collector,
		Mediator:  mediator,

		BacktestConfig: backtestCfg,
	}, nil
}

// registerHandlers wires every query handler into the mediator.
func registerHandlers(
	generator *services.ForecastGenerator,
	records *persistence.GormHistoricalRecordRepository,
	forecasts *persistence.GormForecastRepository,
	backtestCfg backtest.Config,
) (common.Mediator, error) {
	m := common.NewMediator()

	if err := common.RegisterHandler[*queries.GenerateForecastQuery](m,
		queries.NewGenerateForecastHandler(generator, forecasts)); err != nil {
		return nil, err
	}
	if err := common.RegisterHandler[*queries.RunBacktestQuery](m,
		queries.NewRunBacktestHandler(records, backtestCfg)); err != nil {
		return nil, err
	}
	if err := common.RegisterHandler[*queries.ForecastAccuracyQuery](m,
		queries.NewForecastAccuracyHandler(forecasts)); err != nil {
		return nil, err
	}
	if err := common.RegisterHandler[*queries.SimulateRevenueQuery](m,
		queries.NewSimulateRevenueHandler(generator)); err != nil {
		return nil, err
	}

	return m, nil
}

// Close releases the app's resources.
func (a *App) Close() {
	if a.DB != nil {
		_ = database.Close(a.DB)
	}
}

func buildSettings(profile *hotel.Profile, pricing config.PricingConfig) (services.Settings, error) {
	weights, err := forecast.NewDemandWeights(
		pricing.Weights.WeekdayAvg,
		pricing.Weights.Trend,
		pricing.Weights.Seasonality,
		pricing.Weights.Event,
		pricing.Weights.BookingPace,
	)
	if err != nil {
		return services.Settings{}, fmt.Errorf("invalid demand weights: %w", err)
	}

	return services.Settings{
		Profile: profile,
		Weights: weights,
		Pricing: forecast.PricingConfig{
			BasePrice:           profile.BasePrice(),
			FloorMultiplier:     pricing.FloorMultiplier,
			CeilingMultiplier:   pricing.CeilingMultiplier,
			SaturationThreshold: pricing.SaturationThreshold,
			MinPriceSpread:      pricing.MinPriceSpread,
			MaxPriceSpread:      pricing.MaxPriceSpread,
		},
		Confidence: forecast.ConfidenceConfig{
			HorizonDays:   pricing.HorizonDays,
			MinDataPoints: pricing.MinDataPoints,
			Weights:       forecast.DefaultConfidenceWeights(),
		},
		Elasticity: forecast.ElasticityConfig{
			Coefficient:      pricing.ElasticityCoefficient,
			FloorOccupancy:   pricing.FloorOccupancy,
			CeilingOccupancy: pricing.CeilingOccupancy,
		},
		HorizonDays: pricing.HorizonDays,
	}, nil
}

// No raw weather/events API client is wired in the CLI: those belong
// to the surrounding layer. With a nil fetch the wrappers degrade to
// unavailable and the pipeline treats the signal as neutral. A provider
// disabled in configuration skips the cache and limiter entirely.
func buildWeatherProvider(cfg config.WeatherProviderConfig, log *logrus.Logger) ports.WeatherProvider {
	if !cfg.Enabled {
		return providers.UnavailableWeatherProvider{}
	}
	return providers.NewCachedWeatherProvider(
		nil,
		cache.NewTTLCache[[]signals.WeatherDay](cfg.CacheTTL, nil),
		cfg.RateLimit,
		log,
	)
}

func buildEventsProvider(cfg config.EventsProviderConfig, log *logrus.Logger) ports.EventsProvider {
	if !cfg.Enabled {
		return providers.UnavailableEventsProvider{}
	}
	return providers.NewCachedEventsProvider(
		nil,
		cache.NewTTLCache[[]signals.EventRecord](cfg.CacheTTL, nil),
		cfg.RateLimit,
		log,
	)
}

func newLogger(cfg config.LoggingConfig) *logrus.Logger {
	log := logrus.New()

	level, err := logrus.ParseLevel(cfg.Level)
	if err != nil {
		level = logrus.InfoLevel
	}
	if verbose {
		level = logrus.DebugLevel
	}
	log.SetLevel(level)

	if cfg.Format == "json" {
		log.SetFormatter(&logrus.JSONFormatter{})
	}

	return log
}
