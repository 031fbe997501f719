package providers

import (
	"context"

	"github.com/revpilot-io/revpilot/internal/domain/signals"
	"github.com/revpilot-io/revpilot/internal/infrastructure/config"
)

// StaticCompetitorProvider serves competitor rates from configuration.
// Useful where no live rate feed exists; the aggregator only sees the
// CompetitorRateProvider port either way.
type StaticCompetitorProvider struct {
	rates []signals.CompetitorRate
}

// NewStaticCompetitorProvider creates a provider from configured rates.
func NewStaticCompetitorProvider(cfg config.CompetitorProviderConfig) *StaticCompetitorProvider {
	rates := make([]signals.CompetitorRate, 0, len(cfg.StaticRates))
	if cfg.Enabled {
		for _, r := range cfg.StaticRates {
			rates = append(rates, signals.CompetitorRate{Name: r.Name, Price: r.Price})
		}
	}
	return &StaticCompetitorProvider{rates: rates}
}

// FetchRates returns the configured rates; available is false when none
// are configured.
func (p *StaticCompetitorProvider) FetchRates(_ context.Context, _ string) ([]signals.CompetitorRate, bool) {
	if len(p.rates) == 0 {
		return nil, false
	}
	return p.rates, true
}
