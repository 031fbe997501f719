package signals

import (
	"math"
	"time"

	"github.com/revpilot-io/revpilot/pkg/utils"
)

// AggregateInput carries everything the aggregator needs for one
// (date, hotel price) pair. Empty weather/event slices mean the
// corresponding provider was unavailable; the aggregator degrades to a
// neutral contribution rather than failing.
type AggregateInput struct {
	ReferenceDate   time.Time // "today" for the weather series indexing
	TargetDate      time.Time
	HotelPrice      float64
	CompetitorRates []CompetitorRate
	Weather         []WeatherDay
	Events          []EventRecord
}

// Aggregator combines event, weather, and competitor-price signals into
// one bounded external-signal score.
//
// This is a domain service with no infrastructure dependencies.
// All methods are stateless and deterministic.
type Aggregator struct {
	estimator       AttendanceEstimator
	categoryWeights map[string]float64
}

// NewAggregator creates an aggregator with the default category weights
// and the given attendance estimator (nil selects the default
// venue-capacity estimator).
func NewAggregator(estimator AttendanceEstimator) *Aggregator {
	if estimator == nil {
		estimator = NewVenueCapacityEstimator()
	}
	return &Aggregator{
		estimator: estimator,
		categoryWeights: map[string]float64{
			"festival":   1.25,
			"conference": 1.20,
			"concert":    1.15,
			"sports":     1.10,
			"other":      0.80,
			"meetup":     0.60,
		},
	}
}

// Aggregate computes the external signal for one day.
//
// Formula:
//
//	totalScore = clamp(eventImpact + (weatherImpact+5) + (competitorImpact+5), 0, 20)
//
// Event impact lives in [0,10]; weather and competitor impacts in
// [-5,5], shifted into [0,10] before summing. A missing provider
// contributes its neutral shifted value (5).
func (a *Aggregator) Aggregate(input AggregateInput) Result {
	result := Result{
		WeatherAvailable: len(input.Weather) > 0,
		EventsAvailable:  len(input.Events) > 0,
	}

	result.EventImpact = a.eventImpact(input.TargetDate, input.Events)
	result.WeatherImpact = a.weatherImpact(input.ReferenceDate, input.TargetDate, input.Weather)
	result.CompetitorImpact = a.competitorImpact(input.HotelPrice, input.CompetitorRates)

	total := result.EventImpact +
		(result.WeatherImpact + NeutralShifted) +
		(result.CompetitorImpact + NeutralShifted)
	result.TotalScore = utils.Clamp(total, 0, MaxTotalScore)

	return result
}

// eventImpact scores events landing on the target date by estimated
// attendance, log-dampened so one stadium event does not drown out the
// rest of the calendar.
func (a *Aggregator) eventImpact(targetDate time.Time, events []EventRecord) float64 {
	score := 0.0
	for _, ev := range events {
		if !sameDay(ev.Date, targetDate) {
			continue
		}
		attendance := math.Max(0, a.estimator.Estimate(ev))
		weight, ok := a.categoryWeights[ev.Category]
		if !ok {
			weight = a.categoryWeights["other"]
		}
		score += math.Log(attendance+1) * weight
	}
	return utils.Clamp(score/eventNormalizer, 0, MaxEventImpact)
}

// weatherImpact selects the weather record at the target date's offset
// from the reference date (clamped to the last available day) and maps
// conditions onto [-5,5]. No weather data yields a neutral 0.
func (a *Aggregator) weatherImpact(referenceDate, targetDate time.Time, weather []WeatherDay) float64 {
	if len(weather) == 0 {
		return 0
	}

	idx := daysBetween(referenceDate, targetDate)
	if idx < 0 {
		idx = 0
	}
	if idx >= len(weather) {
		idx = len(weather) - 1
	}
	day := weather[idx]

	switch day.Condition {
	case "storm", "snow", "extreme":
		return -MaxSignedImpact
	}

	weekend := isWeekend(targetDate)
	impact := 0.0
	switch {
	case day.RainProbability > 0.7 && weekend:
		impact = -3
	case day.RainProbability > 0.5:
		impact = -1
	}

	// Ideal leisure weather on a weekend lifts demand
	if weekend && day.TempCelsius >= 18 && day.TempCelsius <= 28 && day.RainProbability < 0.3 && impact < 2 {
		impact = 2
	}

	return utils.Clamp(impact, -MaxSignedImpact, MaxSignedImpact)
}

// competitorImpact compares the hotel's price against the market
// average: being cheaper than the market reads as positive demand
// pressure. Scaled by 25 so a 20% gap saturates the [-5,5] band.
func (a *Aggregator) competitorImpact(hotelPrice float64, rates []CompetitorRate) float64 {
	if len(rates) == 0 {
		return 0
	}

	sum := 0.0
	for _, r := range rates {
		sum += r.Price
	}
	marketAverage := sum / float64(len(rates))
	if marketAverage == 0 {
		return 0
	}

	impact := (marketAverage - hotelPrice) / marketAverage * competitorFactor
	return utils.Clamp(impact, -MaxSignedImpact, MaxSignedImpact)
}

func sameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}

func daysBetween(from, to time.Time) int {
	fromDay := time.Date(from.Year(), from.Month(), from.Day(), 0, 0, 0, 0, time.UTC)
	toDay := time.Date(to.Year(), to.Month(), to.Day(), 0, 0, 0, 0, time.UTC)
	return int(toDay.Sub(fromDay).Hours() / 24)
}

func isWeekend(t time.Time) bool {
	wd := t.Weekday()
	return wd == time.Saturday || wd == time.Sunday
}
