package types

import (
	"time"

	"github.com/revpilot-io/revpilot/internal/domain/forecast"
	"github.com/revpilot-io/revpilot/internal/domain/signals"
)

// DayForecast bundles everything the pipeline produced for one day.
type DayForecast struct {
	ID        string
	Date      time.Time
	DayOffset int

	Demand     forecast.DemandResult
	Price      forecast.PriceRecommendation
	Confidence forecast.ConfidenceResult
	Signal     signals.Result
	Revenue    forecast.RevenueSimulation
}

// PredictedOccupancy returns the demand score read as an occupancy
// percentage, which is how the pipeline projects rooms sold.
func (d DayForecast) PredictedOccupancy() float64 {
	return d.Demand.DemandScore
}
