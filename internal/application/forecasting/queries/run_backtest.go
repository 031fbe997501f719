package queries

import (
	"context"
	"fmt"

	"github.com/revpilot-io/revpilot/internal/application/common"
	"github.com/revpilot-io/revpilot/internal/domain/backtest"
	"github.com/revpilot-io/revpilot/internal/domain/ports"
)

// RunBacktestQuery requests a backtest over the stored history.
type RunBacktestQuery struct{}

// RunBacktestHandler handles backtest queries
type RunBacktestHandler struct {
	records ports.HistoricalRecordRepository
	engine  *backtest.Engine
	config  backtest.Config
}

// NewRunBacktestHandler creates a new handler
func NewRunBacktestHandler(records ports.HistoricalRecordRepository, cfg backtest.Config) *RunBacktestHandler {
	return &RunBacktestHandler{
		records: records,
		engine:  backtest.NewEngine(),
		config:  cfg,
	}
}

// Handle executes the query
func (h *RunBacktestHandler) Handle(ctx context.Context, request common.Request) (common.Response, error) {
	if _, ok := request.(*RunBacktestQuery); !ok {
		return nil, fmt.Errorf("invalid request type")
	}

	records, err := h.records.ListOrdered(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load historical records: %w", err)
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("no historical records to backtest")
	}

	summary, err := h.engine.Run(records, h.config)
	if err != nil {
		return nil, fmt.Errorf("backtest failed: %w", err)
	}

	return summary, nil
}
