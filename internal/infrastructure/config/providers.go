package config

import "time"

// ProvidersConfig configures the external signal providers.
type ProvidersConfig struct {
	Weather    WeatherProviderConfig    `mapstructure:"weather"`
	Events     EventsProviderConfig     `mapstructure:"events"`
	Competitor CompetitorProviderConfig `mapstructure:"competitor"`
}

// WeatherProviderConfig controls the weather lookup wrapper.
type WeatherProviderConfig struct {
	Enabled  bool          `mapstructure:"enabled"`
	CacheTTL time.Duration `mapstructure:"cache_ttl"`

	// RateLimit is requests per second allowed against the upstream.
	RateLimit float64 `mapstructure:"rate_limit" validate:"omitempty,gt=0"`
}

// EventsProviderConfig controls the events lookup wrapper.
type EventsProviderConfig struct {
	Enabled   bool          `mapstructure:"enabled"`
	CacheTTL  time.Duration `mapstructure:"cache_ttl"`
	RateLimit float64       `mapstructure:"rate_limit" validate:"omitempty,gt=0"`
}

// CompetitorProviderConfig supplies competitor rates. Static rates are
// useful when no live rate feed is wired in.
type CompetitorProviderConfig struct {
	Enabled     bool                   `mapstructure:"enabled"`
	StaticRates []StaticCompetitorRate `mapstructure:"static_rates" validate:"dive"`
}

// StaticCompetitorRate is one configured competitor price.
type StaticCompetitorRate struct {
	Name  string  `mapstructure:"name"`
	Price float64 `mapstructure:"price" validate:"gt=0"`
}
