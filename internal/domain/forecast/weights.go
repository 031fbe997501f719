package forecast

// DemandWeights controls the relative influence of the five demand
// components. Weights are normalized at construction so they always sum
// to 1.0; the re-centering step in the demand model relies on that.
type DemandWeights struct {
	WeekdayAvg  float64
	Trend       float64
	Seasonality float64
	Event       float64
	BookingPace float64
}

// DefaultDemandWeights returns the standard component weighting.
func DefaultDemandWeights() DemandWeights {
	return DemandWeights{
		WeekdayAvg:  0.30,
		Trend:       0.20,
		Seasonality: 0.20,
		Event:       0.15,
		BookingPace: 0.15,
	}
}

// NewDemandWeights builds a weight set, renormalizing so the components
// sum to 1.0. A non-positive sum is rejected: it cannot be normalized
// and indicates a caller bug.
func NewDemandWeights(weekdayAvg, trend, seasonality, event, bookingPace float64) (DemandWeights, error) {
	sum := weekdayAvg + trend + seasonality + event + bookingPace
	if sum <= 0 {
		return DemandWeights{}, ErrInvalidWeights
	}
	if weekdayAvg < 0 || trend < 0 || seasonality < 0 || event < 0 || bookingPace < 0 {
		return DemandWeights{}, ErrInvalidWeights
	}

	return DemandWeights{
		WeekdayAvg:  weekdayAvg / sum,
		Trend:       trend / sum,
		Seasonality: seasonality / sum,
		Event:       event / sum,
		BookingPace: bookingPace / sum,
	}, nil
}

// Sum returns the total of all component weights (1.0 for any set built
// through NewDemandWeights or DefaultDemandWeights).
func (w DemandWeights) Sum() float64 {
	return w.WeekdayAvg + w.Trend + w.Seasonality + w.Event + w.BookingPace
}
