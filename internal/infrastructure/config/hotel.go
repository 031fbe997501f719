package config

// HotelConfig describes the property being priced.
type HotelConfig struct {
	Name string `mapstructure:"name"`
	City string `mapstructure:"city"`

	TotalRooms int     `mapstructure:"total_rooms" validate:"required,min=1"`
	BasePrice  float64 `mapstructure:"base_price" validate:"required,gt=0"`

	// BaseOccupancy is the long-run average occupancy fraction.
	BaseOccupancy float64 `mapstructure:"base_occupancy" validate:"min=0,max=1"`

	Currency string `mapstructure:"currency" validate:"omitempty,len=3"`
}
