package forecast

import (
	"math"

	"github.com/revpilot-io/revpilot/pkg/utils"
)

// ConfidenceWeights controls the blend of the six confidence components.
type ConfidenceWeights struct {
	Completeness        float64
	EventSignal         float64
	HistoricalStability float64
	Trend               float64
	DataVolume          float64
	Volatility          float64
}

// DefaultConfidenceWeights returns the standard confidence weighting.
func DefaultConfidenceWeights() ConfidenceWeights {
	return ConfidenceWeights{
		Completeness:        0.25,
		EventSignal:         0.10,
		HistoricalStability: 0.15,
		Trend:               0.10,
		DataVolume:          0.25,
		Volatility:          0.15,
	}
}

// ConfidenceConfig holds the confidence model knobs.
type ConfidenceConfig struct {
	// HorizonDays controls how fast confidence decays with lead time.
	HorizonDays int

	// MinDataPoints is the record count at which the data-volume score
	// saturates to 1.0.
	MinDataPoints int

	Weights ConfidenceWeights
}

// DefaultConfidenceConfig returns the standard confidence settings.
func DefaultConfidenceConfig() ConfidenceConfig {
	return ConfidenceConfig{
		HorizonDays:   DefaultHorizonDays,
		MinDataPoints: 90,
		Weights:       DefaultConfidenceWeights(),
	}
}

// ConfidenceInput describes one forecast day for scoring.
type ConfidenceInput struct {
	DayOffset       int
	HasEvent        bool
	EventMultiplier float64
	TrendFactor     float64

	// HasHistoricalData and DataPoints describe the record set the
	// forecast was built on.
	HasHistoricalData bool
	DataPoints        int

	// OccupancyVolatility is nil when unknown (no usable history).
	OccupancyVolatility *float64
}

// ConfidenceComponents are the individual [0,1] scores entering the blend.
type ConfidenceComponents struct {
	DataCompleteness    float64
	EventSignalStrength float64
	HistoricalStability float64
	TrendConsistency    float64
	DataVolume          float64
	Volatility          float64
}

// ConfidenceResult scores how trustworthy one day's forecast is.
type ConfidenceResult struct {
	Score      int // [0,100]
	Components ConfidenceComponents
	Weights    ConfidenceWeights
}

// ConfidenceModel scores forecast trustworthiness from lead time, event
// signal strength, trend stability, and data volume/quality.
//
// This is a domain service with no infrastructure dependencies.
// All methods are stateless and deterministic.
type ConfidenceModel struct{}

// NewConfidenceModel creates a confidence model.
func NewConfidenceModel() *ConfidenceModel {
	return &ConfidenceModel{}
}

// Score blends the six components into a 0-100 confidence value.
//
// Component formulas:
//
//	completeness = e^(−dayOffset/horizon)
//	eventSignal  = 0.60 without an event, else min(1.0, 0.70 + (eventMultiplier−1)×2.0)
//	stability    = 0.90 with historical data, 0.50 without
//	trend        = max(0.3, 1.0 − |trendFactor−1|×5)
//	dataVolume   = 0.2 → 1.0, logarithmic in record count, saturating at MinDataPoints
//	volatility   = max(0.30, 1.0 − volatility×3.5); 0.65 neutral when unknown
func (m *ConfidenceModel) Score(input ConfidenceInput, cfg ConfidenceConfig) ConfidenceResult {
	if cfg.HorizonDays <= 0 {
		cfg.HorizonDays = DefaultHorizonDays
	}
	if cfg.MinDataPoints <= 0 {
		cfg.MinDataPoints = 90
	}
	weights := cfg.Weights
	if weightsSum(weights) == 0 {
		weights = DefaultConfidenceWeights()
	}

	comps := ConfidenceComponents{
		DataCompleteness:    math.Exp(-float64(input.DayOffset) / float64(cfg.HorizonDays)),
		EventSignalStrength: 0.60,
		HistoricalStability: 0.50,
		TrendConsistency:    math.Max(0.3, 1.0-math.Abs(input.TrendFactor-1)*5),
		DataVolume:          dataVolumeScore(input.DataPoints, cfg.MinDataPoints),
		Volatility:          0.65,
	}

	if input.HasEvent {
		comps.EventSignalStrength = math.Min(1.0, 0.70+(input.EventMultiplier-1)*2.0)
	}
	if input.HasHistoricalData {
		comps.HistoricalStability = 0.90
	}
	if input.OccupancyVolatility != nil {
		comps.Volatility = math.Max(0.30, 1.0-*input.OccupancyVolatility*3.5)
	}

	blended := comps.DataCompleteness*weights.Completeness +
		comps.EventSignalStrength*weights.EventSignal +
		comps.HistoricalStability*weights.HistoricalStability +
		comps.TrendConsistency*weights.Trend +
		comps.DataVolume*weights.DataVolume +
		comps.Volatility*weights.Volatility

	return ConfidenceResult{
		Score:      int(utils.Clamp(math.Round(blended*100), 0, 100)),
		Components: comps,
		Weights:    weights,
	}
}

// dataVolumeScore grows logarithmically from a 0.2 baseline and
// saturates to 1.0 at minPoints records.
func dataVolumeScore(points, minPoints int) float64 {
	if points <= 0 {
		return 0.2
	}
	if points >= minPoints {
		return 1.0
	}
	growth := math.Log(1+float64(points)) / math.Log(1+float64(minPoints))
	return 0.2 + 0.8*growth
}

func weightsSum(w ConfidenceWeights) float64 {
	return w.Completeness + w.EventSignal + w.HistoricalStability + w.Trend + w.DataVolume + w.Volatility
}
