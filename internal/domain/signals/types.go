package signals

import "time"

// Signal range constants. Weather and competitor impacts are signed and
// shifted into [0,10] before entering the total, so a missing provider
// contributes NeutralShifted rather than breaking the sum.
const (
	MaxEventImpact   = 10.0
	MaxSignedImpact  = 5.0
	MaxTotalScore    = 20.0
	NeutralShifted   = 5.0
	NeutralTotal     = 10.0
	eventNormalizer  = 9.0
	competitorFactor = 25.0
)

// EventRecord is a normalized local event as delivered by the events
// provider. Attendance may be zero when the provider could not estimate
// it; the attendance strategy fills the gap.
type EventRecord struct {
	Name               string
	Category           string
	Date               time.Time
	Venue              string
	ExpectedAttendance int
	VenueCapacity      int
	TicketPrice        float64
}

// WeatherDay is one day of normalized forecast data from the weather
// provider, ordered by day offset from the reference date.
type WeatherDay struct {
	Date            time.Time
	TempCelsius     float64
	RainProbability float64 // [0,1]
	Condition       string  // clear, clouds, rain, storm, snow, extreme
}

// CompetitorRate is a competitor's published nightly rate.
type CompetitorRate struct {
	Name  string
	Price float64
}

// Result is the combined external market signal for one (date, price)
// pair. It has no persistent identity and is recomputed on demand.
type Result struct {
	EventImpact      float64 // [0, 10]
	WeatherImpact    float64 // [-5, 5]
	CompetitorImpact float64 // [-5, 5]
	TotalScore       float64 // [0, 20], neutral 10
	WeatherAvailable bool
	EventsAvailable  bool
}
