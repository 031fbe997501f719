package queries

import (
	"context"
	"fmt"
	"time"

	"github.com/revpilot-io/revpilot/internal/application/common"
	"github.com/revpilot-io/revpilot/internal/application/forecasting/services"
	"github.com/revpilot-io/revpilot/internal/application/forecasting/types"
)

// SimulateRevenueQuery compares a manual price against the AI
// recommendation for one day.
type SimulateRevenueQuery struct {
	StartDate   time.Time // reference "today"
	TargetDate  time.Time // day being priced
	ManualPrice float64
}

// SimulateRevenueResponse contains the simulated day.
type SimulateRevenueResponse struct {
	Day types.DayForecast
}

// SimulateRevenueHandler handles revenue simulation queries
type SimulateRevenueHandler struct {
	generator *services.ForecastGenerator
}

// NewSimulateRevenueHandler creates a new handler
func NewSimulateRevenueHandler(generator *services.ForecastGenerator) *SimulateRevenueHandler {
	return &SimulateRevenueHandler{generator: generator}
}

// Handle executes the query
func (h *SimulateRevenueHandler) Handle(ctx context.Context, request common.Request) (common.Response, error) {
	query, ok := request.(*SimulateRevenueQuery)
	if !ok {
		return nil, fmt.Errorf("invalid request type")
	}

	if query.StartDate.IsZero() || query.TargetDate.IsZero() {
		return nil, fmt.Errorf("start and target dates are required")
	}
	if query.ManualPrice <= 0 {
		return nil, fmt.Errorf("manual price must be positive")
	}

	offset := int(query.TargetDate.Sub(query.StartDate).Hours() / 24)
	if offset < 0 {
		return nil, fmt.Errorf("target date %s is before the start date", query.TargetDate.Format("2006-01-02"))
	}

	day, err := h.generator.SimulateDay(ctx, query.StartDate, offset, query.ManualPrice)
	if err != nil {
		return nil, fmt.Errorf("failed to simulate revenue: %w", err)
	}

	return &SimulateRevenueResponse{Day: day}, nil
}
