package config

import "time"

// SetDefaults sets default values for all configuration fields
func SetDefaults(cfg *Config) {
	// Database defaults
	if cfg.Database.Type == "" {
		cfg.Database.Type = "sqlite"
	}
	if cfg.Database.Path == "" {
		cfg.Database.Path = "revpilot.db"
	}
	if cfg.Database.Host == "" {
		cfg.Database.Host = "localhost"
	}
	if cfg.Database.Port == 0 {
		cfg.Database.Port = 5432
	}
	if cfg.Database.User == "" {
		cfg.Database.User = "revpilot"
	}
	if cfg.Database.Name == "" {
		cfg.Database.Name = "revpilot"
	}
	if cfg.Database.SSLMode == "" {
		cfg.Database.SSLMode = "disable"
	}
	if cfg.Database.Pool.MaxOpen == 0 {
		cfg.Database.Pool.MaxOpen = 25
	}
	if cfg.Database.Pool.MaxIdle == 0 {
		cfg.Database.Pool.MaxIdle = 5
	}
	if cfg.Database.Pool.MaxLifetime == 0 {
		cfg.Database.Pool.MaxLifetime = 5 * time.Minute
	}

	// Hotel defaults (a small city property)
	if cfg.Hotel.TotalRooms == 0 {
		cfg.Hotel.TotalRooms = 40
	}
	if cfg.Hotel.BasePrice == 0 {
		cfg.Hotel.BasePrice = 120
	}
	if cfg.Hotel.BaseOccupancy == 0 {
		cfg.Hotel.BaseOccupancy = 0.65
	}
	if cfg.Hotel.Currency == "" {
		cfg.Hotel.Currency = "EUR"
	}

	// Pricing defaults mirror the engine's own defaults
	if cfg.Pricing.FloorMultiplier == 0 {
		cfg.Pricing.FloorMultiplier = 0.70
	}
	if cfg.Pricing.CeilingMultiplier == 0 {
		cfg.Pricing.CeilingMultiplier = 1.80
	}
	if cfg.Pricing.SaturationThreshold == 0 {
		cfg.Pricing.SaturationThreshold = 95
	}
	if cfg.Pricing.MinPriceSpread == 0 {
		cfg.Pricing.MinPriceSpread = 0.15
	}
	if cfg.Pricing.MaxPriceSpread == 0 {
		cfg.Pricing.MaxPriceSpread = 0.20
	}
	if cfg.Pricing.ElasticityCoefficient == 0 {
		cfg.Pricing.ElasticityCoefficient = 0.004
	}
	if cfg.Pricing.FloorOccupancy == 0 {
		cfg.Pricing.FloorOccupancy = 15
	}
	if cfg.Pricing.CeilingOccupancy == 0 {
		cfg.Pricing.CeilingOccupancy = 98
	}
	if cfg.Pricing.HorizonDays == 0 {
		cfg.Pricing.HorizonDays = 30
	}
	if cfg.Pricing.MinDataPoints == 0 {
		cfg.Pricing.MinDataPoints = 90
	}
	if cfg.Pricing.Weights == (DemandWeightsConfig{}) {
		cfg.Pricing.Weights = DemandWeightsConfig{
			WeekdayAvg:  0.30,
			Trend:       0.20,
			Seasonality: 0.20,
			Event:       0.15,
			BookingPace: 0.15,
		}
	}

	// Provider defaults: cache weather 6h, events 24h
	if cfg.Providers.Weather.CacheTTL == 0 {
		cfg.Providers.Weather.CacheTTL = 6 * time.Hour
	}
	if cfg.Providers.Weather.RateLimit == 0 {
		cfg.Providers.Weather.RateLimit = 1
	}
	if cfg.Providers.Events.CacheTTL == 0 {
		cfg.Providers.Events.CacheTTL = 24 * time.Hour
	}
	if cfg.Providers.Events.RateLimit == 0 {
		cfg.Providers.Events.RateLimit = 1
	}

	// Logging defaults
	if cfg.Logging.Level == "" {
		cfg.Logging.Level = "info"
	}
	if cfg.Logging.Format == "" {
		cfg.Logging.Format = "text"
	}
}
