package providers

import (
	"context"

	"github.com/sirupsen/logrus"
	"golang.org/x/time/rate"

	"github.com/revpilot-io/revpilot/internal/domain/signals"
	"github.com/revpilot-io/revpilot/internal/infrastructure/cache"
)

// WeatherFetchFunc performs the actual upstream weather lookup. The
// network client lives outside this package; tests and deployments
// inject whatever they have.
type WeatherFetchFunc func(ctx context.Context, city string) ([]signals.WeatherDay, error)

// CachedWeatherProvider wraps a weather fetch with a 6-hour TTL cache
// and a rate limiter. On any upstream failure it degrades to
// (nil, false) — the pipeline treats an unavailable provider as a
// neutral signal, never as an error.
type CachedWeatherProvider struct {
	fetch   WeatherFetchFunc
	cache   *cache.TTLCache[[]signals.WeatherDay]
	limiter *rate.Limiter
	log     *logrus.Entry
}

// NewCachedWeatherProvider creates a weather provider. requestsPerSec
// bounds upstream calls; cache hits bypass the limiter entirely.
func NewCachedWeatherProvider(
	fetch WeatherFetchFunc,
	weatherCache *cache.TTLCache[[]signals.WeatherDay],
	requestsPerSec float64,
	log *logrus.Logger,
) *CachedWeatherProvider {
	return &CachedWeatherProvider{
		fetch:   fetch,
		cache:   weatherCache,
		limiter: rate.NewLimiter(rate.Limit(requestsPerSec), 1),
		log:     log.WithField("provider", "weather"),
	}
}

// UnavailableWeatherProvider reports no weather data. Wired in place
// of the cached provider when the weather lookup is disabled in
// configuration.
type UnavailableWeatherProvider struct{}

func (UnavailableWeatherProvider) FetchWeather(ctx context.Context, city string) ([]signals.WeatherDay, bool) {
	return nil, false
}

// FetchWeather returns the cached series when fresh, otherwise consults
// the upstream. Never blocks beyond the limiter's token wait and never
// returns an error.
func (p *CachedWeatherProvider) FetchWeather(ctx context.Context, city string) ([]signals.WeatherDay, bool) {
	if p.fetch == nil {
		return nil, false
	}

	if series, ok := p.cache.Get(city); ok {
		return series, true
	}

	if !p.limiter.Allow() {
		p.log.WithField("city", city).Warn("weather lookup rate-limited, degrading to unavailable")
		return nil, false
	}

	series, err := p.fetch(ctx, city)
	if err != nil {
		p.log.WithField("city", city).WithError(err).Warn("weather lookup failed, degrading to unavailable")
		return nil, false
	}
	if len(series) == 0 {
		return nil, false
	}

	p.cache.Set(city, series)
	return series, true
}
