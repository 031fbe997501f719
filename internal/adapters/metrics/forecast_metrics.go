package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

const (
	namespace = "revpilot"
	subsystem = "engine"
)

// ForecastMetricsCollector handles all forecasting pipeline metrics
type ForecastMetricsCollector struct {
	forecastsTotal       prometheus.Counter
	demandScore          prometheus.Histogram
	recommendedPrice     prometheus.Histogram
	backtestRunsTotal    prometheus.Counter
	providerAvailability *prometheus.GaugeVec
}

// NewForecastMetricsCollector creates a new forecast metrics collector
func NewForecastMetricsCollector() *ForecastMetricsCollector {
	return &ForecastMetricsCollector{
		forecastsTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "forecast_days_total",
			Help:      "Total number of forecast days computed",
		}),

		demandScore: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "demand_score",
			Help:      "Distribution of computed demand scores",
			Buckets:   []float64{10, 20, 30, 40, 50, 60, 70, 85, 95, 100},
		}),

		recommendedPrice: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "recommended_price",
			Help:      "Distribution of recommended prices in currency units",
			Buckets:   prometheus.ExponentialBuckets(50, 1.5, 10),
		}),

		backtestRunsTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "backtest_runs_total",
			Help:      "Total number of backtest runs executed",
		}),

		providerAvailability: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "provider_available",
			Help:      "Whether an external signal provider answered its last lookup (1 available, 0 degraded)",
		}, []string{"provider"}),
	}
}

// Register registers all collectors with the given registerer
func (c *ForecastMetricsCollector) Register(reg prometheus.Registerer) error {
	for _, collector := range []prometheus.Collector{
		c.forecastsTotal,
		c.demandScore,
		c.recommendedPrice,
		c.backtestRunsTotal,
		c.providerAvailability,
	} {
		if err := reg.Register(collector); err != nil {
			return err
		}
	}
	return nil
}

// ObserveForecastDay records one computed forecast day
func (c *ForecastMetricsCollector) ObserveForecastDay(demandScore, recommendedPrice float64) {
	c.forecastsTotal.Inc()
	c.demandScore.Observe(demandScore)
	c.recommendedPrice.Observe(recommendedPrice)
}

// ObserveBacktestRun records one backtest execution
func (c *ForecastMetricsCollector) ObserveBacktestRun() {
	c.backtestRunsTotal.Inc()
}

// SetProviderAvailability records whether a provider answered
func (c *ForecastMetricsCollector) SetProviderAvailability(provider string, available bool) {
	v := 0.0
	if available {
		v = 1.0
	}
	c.providerAvailability.WithLabelValues(provider).Set(v)
}
