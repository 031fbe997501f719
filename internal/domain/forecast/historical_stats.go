package forecast

import (
	"time"

	"github.com/revpilot-io/revpilot/internal/domain/hotel"
	"github.com/revpilot-io/revpilot/pkg/utils"
)

// HistoricalDemandStats holds every demand indicator derived from the raw
// occupancy history. It is rebuilt wholesale whenever the record set
// changes and never mutated in place.
type HistoricalDemandStats struct {
	HasData      bool
	TotalRecords int

	AvgOccupancy        float64
	WeekdayAvgOccupancy [7]float64 // indexed by time.Weekday (Sunday=0)

	Rolling7DayTrend        float64 // [0.8, 1.2], neutral 1.0
	Rolling30DaySeasonality float64 // [0.7, 1.3], neutral 1.0
	RecentMomentum14Day     float64 // [0.85, 1.15], neutral 1.0
	OccupancyVolatility     float64 // sample std dev of last 30 days

	WeekdayBookingPace [7]float64 // [-1, 1] per weekday, neutral 0

	AvgADR       float64
	TotalRevenue float64
	RangeStart   time.Time
	RangeEnd     time.Time
}

// StatsComputer derives HistoricalDemandStats from raw historical records.
//
// This is a domain service with no infrastructure dependencies.
// All methods are stateless and deterministic.
type StatsComputer struct{}

// NewStatsComputer creates a stats computer.
func NewStatsComputer() *StatsComputer {
	return &StatsComputer{}
}

// Compute derives demand statistics from records ordered by date
// ascending. An empty record set yields HasData=false with every
// multiplier at its neutral value.
func (c *StatsComputer) Compute(records []*hotel.HistoricalRecord) *HistoricalDemandStats {
	stats := neutralStats()
	if len(records) == 0 {
		return stats
	}

	stats.HasData = true
	stats.TotalRecords = len(records)
	stats.RangeStart = records[0].Date()
	stats.RangeEnd = records[len(records)-1].Date()

	occupancies := make([]float64, len(records))
	adrSum := 0.0
	for i, r := range records {
		occupancies[i] = r.Occupancy()
		adrSum += r.AverageDailyRate()
		stats.TotalRevenue += r.Revenue()
	}
	stats.AvgOccupancy = utils.Mean(occupancies)
	stats.AvgADR = adrSum / float64(len(records))

	c.computeWeekdayAverages(records, stats)
	c.computeRollingIndicators(occupancies, stats)
	c.computeBookingPace(records, stats)

	return stats
}

// neutralStats returns the stats used when no history exists: every
// ratio at 1.0, volatility and pace at 0.
func neutralStats() *HistoricalDemandStats {
	return &HistoricalDemandStats{
		Rolling7DayTrend:        1.0,
		Rolling30DaySeasonality: 1.0,
		RecentMomentum14Day:     1.0,
	}
}

func (c *StatsComputer) computeWeekdayAverages(records []*hotel.HistoricalRecord, stats *HistoricalDemandStats) {
	var sums, counts [7]float64
	for _, r := range records {
		d := r.Date().Weekday()
		sums[d] += r.Occupancy()
		counts[d]++
	}
	for d := 0; d < 7; d++ {
		if counts[d] > 0 {
			stats.WeekdayAvgOccupancy[d] = sums[d] / counts[d]
		} else {
			// Empty weekday bucket falls back to the overall average
			stats.WeekdayAvgOccupancy[d] = stats.AvgOccupancy
		}
	}
}

func (c *StatsComputer) computeRollingIndicators(occupancies []float64, stats *HistoricalDemandStats) {
	n := len(occupancies)

	// 7-day trend: last week vs the week before it
	if n >= 14 {
		recent := utils.Mean(occupancies[n-7:])
		prior := utils.Mean(occupancies[n-14 : n-7])
		if prior > 0 {
			stats.Rolling7DayTrend = utils.Clamp(recent/prior, 0.8, 1.2)
		}
	}

	// 30-day seasonality: recent month vs the overall baseline
	if n >= 30 && stats.AvgOccupancy > 0 {
		recent := utils.Mean(occupancies[n-30:])
		stats.Rolling30DaySeasonality = utils.Clamp(recent/stats.AvgOccupancy, 0.7, 1.3)
	}

	// 14-day momentum: recent fortnight vs the overall baseline
	if n >= 14 && stats.AvgOccupancy > 0 {
		recent := utils.Mean(occupancies[n-14:])
		stats.RecentMomentum14Day = utils.Clamp(recent/stats.AvgOccupancy, 0.85, 1.15)
	}

	// Volatility over the trailing 30 days (or all, if fewer)
	window := occupancies
	if n > 30 {
		window = occupancies[n-30:]
	}
	stats.OccupancyVolatility = utils.SampleStdDev(window)
}

// computeBookingPace measures per-weekday acceleration: occupancy for
// each weekday over the most recent 14 days compared to the 14 days
// before that. Requires at least 28 records; otherwise pace stays zero.
func (c *StatsComputer) computeBookingPace(records []*hotel.HistoricalRecord, stats *HistoricalDemandStats) {
	n := len(records)
	if n < 28 {
		return
	}

	recent := records[n-14:]
	prior := records[n-28 : n-14]

	var recentSums, recentCounts, priorSums, priorCounts [7]float64
	for _, r := range recent {
		d := r.Date().Weekday()
		recentSums[d] += r.Occupancy()
		recentCounts[d]++
	}
	for _, r := range prior {
		d := r.Date().Weekday()
		priorSums[d] += r.Occupancy()
		priorCounts[d]++
	}

	for d := 0; d < 7; d++ {
		if recentCounts[d] == 0 || priorCounts[d] == 0 {
			continue
		}
		priorMean := priorSums[d] / priorCounts[d]
		if priorMean == 0 {
			continue
		}
		recentMean := recentSums[d] / recentCounts[d]
		stats.WeekdayBookingPace[d] = utils.Clamp((recentMean-priorMean)/priorMean, -1, 1)
	}
}
