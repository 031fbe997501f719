package queries

import (
	"context"
	"fmt"

	"github.com/revpilot-io/revpilot/internal/application/common"
	"github.com/revpilot-io/revpilot/internal/domain/backtest"
	"github.com/revpilot-io/revpilot/internal/domain/ports"
)

// ForecastAccuracyQuery requests MAE/MAPE of stored forecasts against
// actual occupancy.
type ForecastAccuracyQuery struct{}

// ForecastAccuracyHandler handles accuracy queries
type ForecastAccuracyHandler struct {
	store   ports.ForecastStore
	tracker *backtest.AccuracyTracker
}

// NewForecastAccuracyHandler creates a new handler
func NewForecastAccuracyHandler(store ports.ForecastStore) *ForecastAccuracyHandler {
	return &ForecastAccuracyHandler{
		store:   store,
		tracker: backtest.NewAccuracyTracker(),
	}
}

// Handle executes the query
func (h *ForecastAccuracyHandler) Handle(ctx context.Context, request common.Request) (common.Response, error) {
	if _, ok := request.(*ForecastAccuracyQuery); !ok {
		return nil, fmt.Errorf("invalid request type")
	}

	pairs, err := h.store.PairWithActuals(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to pair forecasts with actuals: %w", err)
	}
	if len(pairs) == 0 {
		return nil, fmt.Errorf("no scored forecast days yet")
	}

	result := h.tracker.Track(pairs)
	return &result, nil
}
