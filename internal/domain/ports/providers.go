package ports

import (
	"context"

	"github.com/revpilot-io/revpilot/internal/domain/signals"
)

// External signal providers. Each returns its records plus an
// availability flag and must degrade to (nil, false) on any failure:
// provider trouble is a data condition the pipeline absorbs as a
// neutral signal, never an error.

// WeatherProvider fetches the normalized daily weather series for a
// city, ordered by day offset from today.
type WeatherProvider interface {
	FetchWeather(ctx context.Context, city string) ([]signals.WeatherDay, bool)
}

// EventsProvider fetches normalized local events for a city.
type EventsProvider interface {
	FetchEvents(ctx context.Context, city string) ([]signals.EventRecord, bool)
}

// CompetitorRateProvider fetches competitor nightly rates for a city.
type CompetitorRateProvider interface {
	FetchRates(ctx context.Context, city string) ([]signals.CompetitorRate, bool)
}
