package forecast

import (
	"math"
	"time"

	"github.com/revpilot-io/revpilot/internal/domain/signals"
	"github.com/revpilot-io/revpilot/pkg/utils"
)

// DefaultHorizonDays is the forecast horizon used for lead-time decay.
const DefaultHorizonDays = 30

// monthSeasonality maps calendar months onto demand multipliers,
// centered near 1.0 with a summer peak.
var monthSeasonality = map[time.Month]float64{
	time.January:   0.85,
	time.February:  0.88,
	time.March:     0.95,
	time.April:     1.02,
	time.May:       1.08,
	time.June:      1.15,
	time.July:      1.22,
	time.August:    1.20,
	time.September: 1.10,
	time.October:   1.00,
	time.November:  0.90,
	time.December:  1.05,
}

// weekdayMultiplier maps weekdays onto demand multipliers, indexed by
// time.Weekday (Sunday=0).
var weekdayMultiplier = [7]float64{0.92, 0.88, 0.90, 0.92, 0.98, 1.12, 1.18}

// WeekdayMultiplier returns the calendar demand multiplier for a weekday.
func WeekdayMultiplier(d time.Weekday) float64 {
	return weekdayMultiplier[d]
}

// ScheduledEvent is a known upcoming event with its demand multiplier.
type ScheduledEvent struct {
	Name       string
	Multiplier float64
}

// defaultEventCalendar holds scheduled events keyed by day offset from
// the forecast start.
var defaultEventCalendar = map[int]ScheduledEvent{
	2:  {Name: "Regional trade fair", Multiplier: 1.12},
	5:  {Name: "Stadium concert", Multiplier: 1.25},
	11: {Name: "Food & wine festival", Multiplier: 1.18},
	18: {Name: "International conference", Multiplier: 1.15},
	26: {Name: "City marathon", Multiplier: 1.30},
}

// DemandConfig carries the inputs for scoring one forecast day. Zero
// values select documented defaults at scoring time, so call sites
// cannot drift apart.
type DemandConfig struct {
	Date      time.Time
	DayOffset int

	// BaseOccupancy is the property's long-run occupancy fraction [0,1].
	BaseOccupancy float64

	// Weights default to DefaultDemandWeights when left zero. Non-zero
	// weights are renormalized to sum to 1.0.
	Weights DemandWeights

	// Stats supplies historically derived factor overrides; nil or
	// HasData=false falls back to synthetic calendar-driven factors.
	Stats *HistoricalDemandStats

	// ExternalSignal is the aggregated market signal for the day; nil
	// means no providers were consulted and contributes nothing.
	ExternalSignal *signals.Result

	// Events overrides the scheduled-event calendar (keyed by day
	// offset); nil selects the default calendar.
	Events map[int]ScheduledEvent

	// HorizonDays bounds the lead-time decay; 0 selects the default 30.
	HorizonDays int
}

// ComponentScores are the five independent demand components, each on a
// 0-100 scale anchored to the base occupancy.
type ComponentScores struct {
	WeekdayAvg  float64
	Trend       float64
	Seasonality float64
	Event       float64
	BookingPace float64
}

// DemandResult is the scored demand for one forecast day. Immutable
// once produced.
type DemandResult struct {
	DemandScore         float64 // [0,100]
	SeasonalityFactor   float64
	WeekdayFactor       float64
	EventMultiplier     float64
	TrendFactor         float64
	BookingPaceVelocity float64 // [-1,1]
	ExternalSignalScore float64 // centered contribution, 0 when neutral
	ComponentScores     ComponentScores
	Weights             DemandWeights
	EventName           string
}

// DemandModel converts calendar, historical, and external-signal inputs
// into a single bounded demand score.
//
// This is a domain service with no infrastructure dependencies.
// All methods are stateless and deterministic: identical configs yield
// identical results.
type DemandModel struct{}

// NewDemandModel creates a demand model.
func NewDemandModel() *DemandModel {
	return &DemandModel{}
}

// Score computes the demand score for one day.
//
// Formula:
//
//	weightedSum = Σ weight_i × componentScore_i
//	demandScore = clamp(50 + (weightedSum − baseOccupancy×100) + externalSignal, 0, 100)
//
// The re-centering around 50 is load-bearing: each component score is
// anchored to the base occupancy, so without subtracting that anchor
// back out the score would sit permanently above the midpoint and the
// discount tier would never fire. With every factor neutral the score
// is exactly 50.
func (m *DemandModel) Score(cfg DemandConfig) (DemandResult, error) {
	if cfg.BaseOccupancy < 0 || cfg.BaseOccupancy > 1 {
		return DemandResult{}, ErrInvalidBaseOccupancy
	}

	weights := cfg.Weights
	if weights.Sum() == 0 {
		weights = DefaultDemandWeights()
	} else {
		normalized, err := NewDemandWeights(
			weights.WeekdayAvg, weights.Trend, weights.Seasonality, weights.Event, weights.BookingPace)
		if err != nil {
			return DemandResult{}, err
		}
		weights = normalized
	}

	horizon := cfg.HorizonDays
	if horizon <= 0 {
		horizon = DefaultHorizonDays
	}

	calendar := cfg.Events
	if calendar == nil {
		calendar = defaultEventCalendar
	}

	base := cfg.BaseOccupancy * 100
	weekday := cfg.Date.Weekday()
	hasStats := cfg.Stats != nil && cfg.Stats.HasData

	result := DemandResult{
		Weights:         weights,
		WeekdayFactor:   weekdayMultiplier[weekday],
		EventMultiplier: 1.0,
	}

	// Seasonality: calendar month table, compounded by the historical
	// 30-day seasonality ratio when available.
	result.SeasonalityFactor = monthSeasonality[cfg.Date.Month()]
	if hasStats {
		result.SeasonalityFactor *= cfg.Stats.Rolling30DaySeasonality
	}

	// Trend: historical 7-day trend, or a smooth bounded oscillation
	// standing in for booking momentum when no history exists.
	if hasStats {
		result.TrendFactor = cfg.Stats.Rolling7DayTrend
	} else {
		result.TrendFactor = 1.0 + math.Sin(float64(cfg.DayOffset)*math.Pi/30)*0.06
	}

	// Scheduled event for this offset, if any.
	if ev, ok := calendar[cfg.DayOffset]; ok {
		result.EventMultiplier = ev.Multiplier
		result.EventName = ev.Name
	}

	// Booking pace: historical per-weekday pace, or the trend deviation
	// damped by lead time (near-term days carry more pace signal).
	if hasStats {
		result.BookingPaceVelocity = cfg.Stats.WeekdayBookingPace[weekday]
	} else {
		decay := math.Exp(-float64(cfg.DayOffset) / float64(horizon))
		result.BookingPaceVelocity = utils.Clamp((result.TrendFactor-1.0)*5*decay, -1, 1)
	}

	// Weekday occupancy anchor: historical weekday average when known,
	// otherwise the base occupancy scaled by the weekday multiplier.
	weekdayOccupancy := base * result.WeekdayFactor
	if hasStats {
		weekdayOccupancy = cfg.Stats.WeekdayAvgOccupancy[weekday] * 100
	}

	result.ComponentScores = ComponentScores{
		WeekdayAvg:  utils.Clamp(weekdayOccupancy, 0, 100),
		Trend:       utils.Clamp(base*result.TrendFactor, 0, 100),
		Seasonality: utils.Clamp(base*result.SeasonalityFactor, 0, 100),
		Event:       utils.Clamp(base*result.EventMultiplier, 0, 100),
		BookingPace: utils.Clamp(base*(1.0+result.BookingPaceVelocity*0.5), 0, 100),
	}

	weightedSum := result.ComponentScores.WeekdayAvg*weights.WeekdayAvg +
		result.ComponentScores.Trend*weights.Trend +
		result.ComponentScores.Seasonality*weights.Seasonality +
		result.ComponentScores.Event*weights.Event +
		result.ComponentScores.BookingPace*weights.BookingPace

	// External signal enters centered: the aggregator's neutral total is
	// 10, so a fully degraded provider set contributes zero here.
	if cfg.ExternalSignal != nil {
		result.ExternalSignalScore = cfg.ExternalSignal.TotalScore - signals.NeutralTotal
	}

	result.DemandScore = utils.Clamp(50+(weightedSum-base)+result.ExternalSignalScore, 0, 100)

	return result, nil
}
