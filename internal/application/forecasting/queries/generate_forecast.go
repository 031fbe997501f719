package queries

import (
	"context"
	"fmt"
	"time"

	"github.com/revpilot-io/revpilot/internal/application/common"
	"github.com/revpilot-io/revpilot/internal/application/forecasting/services"
	"github.com/revpilot-io/revpilot/internal/application/forecasting/types"
	"github.com/revpilot-io/revpilot/internal/domain/forecast"
	"github.com/revpilot-io/revpilot/internal/domain/ports"
)

// GenerateForecastQuery requests a multi-day price forecast.
type GenerateForecastQuery struct {
	StartDate time.Time // forecast start (required, makes runs reproducible)
	Days      int       // horizon length (default 30)
	Persist   bool      // store the per-day forecasts for later accuracy scoring
}

// GenerateForecastResponse contains the per-day forecast.
type GenerateForecastResponse struct {
	Days  []types.DayForecast
	Stats *forecast.HistoricalDemandStats
}

// GenerateForecastHandler handles forecast generation queries
type GenerateForecastHandler struct {
	generator *services.ForecastGenerator
	store     ports.ForecastStore
}

// NewGenerateForecastHandler creates a new handler
func NewGenerateForecastHandler(generator *services.ForecastGenerator, store ports.ForecastStore) *GenerateForecastHandler {
	return &GenerateForecastHandler{generator: generator, store: store}
}

// Handle executes the query
func (h *GenerateForecastHandler) Handle(ctx context.Context, request common.Request) (common.Response, error) {
	query, ok := request.(*GenerateForecastQuery)
	if !ok {
		return nil, fmt.Errorf("invalid request type")
	}

	if query.StartDate.IsZero() {
		return nil, fmt.Errorf("forecast start date is required")
	}

	days := query.Days
	if days <= 0 {
		days = forecast.DefaultHorizonDays
	}

	forecasts, stats, err := h.generator.GenerateForecast(ctx, query.StartDate, days)
	if err != nil {
		return nil, fmt.Errorf("failed to generate forecast: %w", err)
	}

	if query.Persist && h.store != nil {
		now := time.Now().UTC()
		for _, day := range forecasts {
			record := &ports.ForecastRecord{
				ID:                 day.ID,
				Date:               day.Date,
				DayOffset:          day.DayOffset,
				DemandScore:        day.Demand.DemandScore,
				RecommendedPrice:   day.Price.RecommendedPrice,
				MinPrice:           day.Price.MinPrice,
				MaxPrice:           day.Price.MaxPrice,
				PricingTier:        string(day.Price.Tier),
				Confidence:         day.Confidence.Score,
				PredictedOccupancy: day.PredictedOccupancy(),
				CreatedAt:          now,
			}
			if err := h.store.Save(ctx, record); err != nil {
				return nil, fmt.Errorf("failed to persist forecast day: %w", err)
			}
		}
	}

	return &GenerateForecastResponse{
		Days:  forecasts,
		Stats: stats,
	}, nil
}
