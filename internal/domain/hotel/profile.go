package hotel

// Profile holds the static configuration of the property being priced.
// This is an immutable value object validated at construction; a
// structurally invalid profile is a programming error, not a data
// condition, so construction fails loudly.
type Profile struct {
	name          string
	city          string
	totalRooms    int
	basePrice     float64
	baseOccupancy float64
	currency      string
}

// NewProfile creates a hotel profile with validation.
func NewProfile(
	name string,
	city string,
	totalRooms int,
	basePrice float64,
	baseOccupancy float64,
	currency string,
) (*Profile, error) {
	if totalRooms <= 0 {
		return nil, ErrInvalidTotalRooms
	}
	if basePrice <= 0 {
		return nil, ErrInvalidBasePrice
	}
	if baseOccupancy < 0 || baseOccupancy > 1 {
		return nil, ErrInvalidBaseOccupancy
	}
	if currency == "" {
		currency = "EUR"
	}

	return &Profile{
		name:          name,
		city:          city,
		totalRooms:    totalRooms,
		basePrice:     basePrice,
		baseOccupancy: baseOccupancy,
		currency:      currency,
	}, nil
}

func (p *Profile) Name() string {
	return p.name
}

func (p *Profile) City() string {
	return p.city
}

func (p *Profile) TotalRooms() int {
	return p.totalRooms
}

func (p *Profile) BasePrice() float64 {
	return p.basePrice
}

// BaseOccupancy is the long-run average occupancy fraction in [0,1].
func (p *Profile) BaseOccupancy() float64 {
	return p.baseOccupancy
}

func (p *Profile) Currency() string {
	return p.currency
}
