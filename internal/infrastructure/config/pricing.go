package config

// PricingConfig holds every pricing and forecasting knob. Defaults are
// applied centrally in SetDefaults so call sites cannot drift.
type PricingConfig struct {
	FloorMultiplier     float64 `mapstructure:"floor_multiplier" validate:"omitempty,gt=0"`
	CeilingMultiplier   float64 `mapstructure:"ceiling_multiplier" validate:"omitempty,gt=0"`
	SaturationThreshold float64 `mapstructure:"saturation_threshold" validate:"omitempty,gt=0,lt=100"`
	MinPriceSpread      float64 `mapstructure:"min_price_spread" validate:"omitempty,gt=0,lt=1"`
	MaxPriceSpread      float64 `mapstructure:"max_price_spread" validate:"omitempty,gt=0,lt=1"`

	// ElasticityCoefficient is k in the quadratic elasticity curve.
	ElasticityCoefficient float64 `mapstructure:"elasticity_coefficient" validate:"omitempty,gt=0"`
	FloorOccupancy        float64 `mapstructure:"floor_occupancy" validate:"omitempty,min=0,max=100"`
	CeilingOccupancy      float64 `mapstructure:"ceiling_occupancy" validate:"omitempty,min=0,max=100"`

	HorizonDays   int `mapstructure:"horizon_days" validate:"omitempty,min=1"`
	MinDataPoints int `mapstructure:"min_data_points" validate:"omitempty,min=1"`

	Weights DemandWeightsConfig `mapstructure:"weights"`
}

// DemandWeightsConfig holds the five demand component weights. They are
// renormalized by the engine, so any positive vector is accepted.
type DemandWeightsConfig struct {
	WeekdayAvg  float64 `mapstructure:"weekday_avg" validate:"min=0"`
	Trend       float64 `mapstructure:"trend" validate:"min=0"`
	Seasonality float64 `mapstructure:"seasonality" validate:"min=0"`
	Event       float64 `mapstructure:"event" validate:"min=0"`
	BookingPace float64 `mapstructure:"booking_pace" validate:"min=0"`
}
