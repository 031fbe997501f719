package backtest

import (
	"time"

	"github.com/revpilot-io/revpilot/pkg/utils"
)

// AccuracyRecord pairs a forecast's predicted occupancy with the actual
// occupancy observed for the same date. Both are percentages.
type AccuracyRecord struct {
	Date               time.Time
	PredictedOccupancy float64
	ActualOccupancy    float64
}

// AccuracyMetrics holds MAE/MAPE over a set of paired records.
type AccuracyMetrics struct {
	SampleSize int
	MAE        float64
	MAPE       float64
	Accuracy   float64 // clamp(100 − MAPE, 0, 100)
}

// AccuracyResult reports forecast accuracy overall and over the most
// recent 30 records.
type AccuracyResult struct {
	Overall   AccuracyMetrics
	Rolling30 AccuracyMetrics
}

// AccuracyTracker computes MAE/MAPE of predicted vs actual occupancy.
//
// This is a domain service with no infrastructure dependencies.
// All methods are stateless and deterministic.
type AccuracyTracker struct{}

// NewAccuracyTracker creates an accuracy tracker.
func NewAccuracyTracker() *AccuracyTracker {
	return &AccuracyTracker{}
}

// Track computes overall and rolling-30 accuracy. Records are expected
// in chronological order; the rolling window takes the trailing <=30.
func (t *AccuracyTracker) Track(records []AccuracyRecord) AccuracyResult {
	result := AccuracyResult{
		Overall: computeMetrics(records),
	}

	window := records
	if len(window) > 30 {
		window = window[len(window)-30:]
	}
	result.Rolling30 = computeMetrics(window)

	return result
}

func computeMetrics(records []AccuracyRecord) AccuracyMetrics {
	if len(records) == 0 {
		return AccuracyMetrics{}
	}

	sumAbs := 0.0
	sumPct := 0.0
	for _, r := range records {
		absErr := absFloat(r.PredictedOccupancy - r.ActualOccupancy)
		sumAbs += absErr
		// Percentage error is defined as 0 for a zero actual
		if r.ActualOccupancy != 0 {
			sumPct += absErr / r.ActualOccupancy * 100
		}
	}

	n := float64(len(records))
	mape := sumPct / n

	return AccuracyMetrics{
		SampleSize: len(records),
		MAE:        utils.RoundTo(sumAbs/n, 2),
		MAPE:       utils.RoundTo(mape, 2),
		Accuracy:   utils.RoundTo(utils.Clamp(100-mape, 0, 100), 2),
	}
}
