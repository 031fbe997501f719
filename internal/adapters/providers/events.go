package providers

import (
	"context"

	"github.com/sirupsen/logrus"
	"golang.org/x/time/rate"

	"github.com/revpilot-io/revpilot/internal/domain/signals"
	"github.com/revpilot-io/revpilot/internal/infrastructure/cache"
)

// EventsFetchFunc performs the actual upstream events lookup.
type EventsFetchFunc func(ctx context.Context, city string) ([]signals.EventRecord, error)

// CachedEventsProvider wraps an events fetch with a 24-hour TTL cache
// and a rate limiter, degrading to (nil, false) on failure.
type CachedEventsProvider struct {
	fetch   EventsFetchFunc
	cache   *cache.TTLCache[[]signals.EventRecord]
	limiter *rate.Limiter
	log     *logrus.Entry
}

// NewCachedEventsProvider creates an events provider.
func NewCachedEventsProvider(
	fetch EventsFetchFunc,
	eventsCache *cache.TTLCache[[]signals.EventRecord],
	requestsPerSec float64,
	log *logrus.Logger,
) *CachedEventsProvider {
	return &CachedEventsProvider{
		fetch:   fetch,
		cache:   eventsCache,
		limiter: rate.NewLimiter(rate.Limit(requestsPerSec), 1),
		log:     log.WithField("provider", "events"),
	}
}

// UnavailableEventsProvider reports no events. Wired in place of the
// cached provider when the events lookup is disabled in configuration.
type UnavailableEventsProvider struct{}

func (UnavailableEventsProvider) FetchEvents(ctx context.Context, city string) ([]signals.EventRecord, bool) {
	return nil, false
}

// FetchEvents returns cached events when fresh, otherwise consults the
// upstream. Never returns an error.
func (p *CachedEventsProvider) FetchEvents(ctx context.Context, city string) ([]signals.EventRecord, bool) {
	if p.fetch == nil {
		return nil, false
	}

	if events, ok := p.cache.Get(city); ok {
		return events, true
	}

	if !p.limiter.Allow() {
		p.log.WithField("city", city).Warn("events lookup rate-limited, degrading to unavailable")
		return nil, false
	}

	events, err := p.fetch(ctx, city)
	if err != nil {
		p.log.WithField("city", city).WithError(err).Warn("events lookup failed, degrading to unavailable")
		return nil, false
	}
	if len(events) == 0 {
		return nil, false
	}

	p.cache.Set(city, events)
	return events, true
}
