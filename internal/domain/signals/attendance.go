package signals

// AttendanceEstimator estimates how many people an event will draw.
// Estimation heuristics are visibly approximate, so they live behind
// this interface and can be swapped without touching the scoring
// pipeline.
type AttendanceEstimator interface {
	Estimate(event EventRecord) float64
}

// VenueCapacityEstimator is the default estimator. It prefers the
// provider's own attendance figure, then falls back to venue capacity
// scaled by a category fill rate, then to a ticket-price proxy.
type VenueCapacityEstimator struct {
	fillRates map[string]float64
}

// NewVenueCapacityEstimator creates the default attendance estimator.
func NewVenueCapacityEstimator() *VenueCapacityEstimator {
	return &VenueCapacityEstimator{
		fillRates: map[string]float64{
			"festival":   0.90,
			"concert":    0.85,
			"sports":     0.80,
			"conference": 0.70,
			"meetup":     0.50,
			"other":      0.60,
		},
	}
}

// Estimate returns the expected attendance for an event, never negative.
func (e *VenueCapacityEstimator) Estimate(event EventRecord) float64 {
	if event.ExpectedAttendance > 0 {
		return float64(event.ExpectedAttendance)
	}

	if event.VenueCapacity > 0 {
		rate, ok := e.fillRates[event.Category]
		if !ok {
			rate = e.fillRates["other"]
		}
		return float64(event.VenueCapacity) * rate
	}

	// Ticket price as a crude size proxy: pricier events tend to be
	// staged in bigger venues.
	switch {
	case event.TicketPrice >= 80:
		return 5000
	case event.TicketPrice >= 30:
		return 2000
	case event.TicketPrice > 0:
		return 800
	default:
		return 500
	}
}
