package forecast

import (
	"github.com/revpilot-io/revpilot/pkg/utils"
)

// ElasticityConfig holds the price-elasticity knobs. Occupancy values
// here are percentages (0-100), matching the floor/ceiling bounds.
type ElasticityConfig struct {
	// Coefficient k in the quadratic response curve.
	Coefficient float64

	// FloorOccupancy and CeilingOccupancy bound the projection: a hotel
	// never empties completely nor sells truly every room.
	FloorOccupancy   float64
	CeilingOccupancy float64
}

// DefaultElasticityConfig returns the standard elasticity settings.
func DefaultElasticityConfig() ElasticityConfig {
	return ElasticityConfig{
		Coefficient:      0.004,
		FloorOccupancy:   15,
		CeilingOccupancy: 98,
	}
}

// ElasticityResult projects the occupancy consequence of pricing away
// from the recommendation.
type ElasticityResult struct {
	PriceChangePercent    float64
	OccupancyChangePoints float64
	ProjectedOccupancy    float64
	BaseOccupancy         float64
}

// ElasticityModel projects occupancy change when a manual price
// deviates from the recommended price.
//
// This is a domain service with no infrastructure dependencies.
// All methods are stateless and deterministic.
type ElasticityModel struct{}

// NewElasticityModel creates an elasticity model.
func NewElasticityModel() *ElasticityModel {
	return &ElasticityModel{}
}

// Project computes the occupancy effect of charging manualPrice instead
// of recommendedPrice, starting from baseOccupancy (a percentage).
//
// Formula:
//
//	priceChangePercent    = (manual − recommended) / recommended × 100
//	occupancyChangePoints = −sign(priceChangePercent) × k × priceChangePercent²
//
// The quadratic dampening keeps small deviations nearly free while
// still punishing large ones: at k=0.004 a +10% price costs ≈0.4
// occupancy points, a +30% price ≈3.6 points. A linear model would
// claim 12 points for the latter, which no real booking curve shows.
//
// recommendedPrice=0 is a degenerate input and returns the base
// occupancy unchanged with zero deltas.
func (m *ElasticityModel) Project(baseOccupancy, recommendedPrice, manualPrice float64, cfg ElasticityConfig) ElasticityResult {
	if cfg.Coefficient == 0 && cfg.FloorOccupancy == 0 && cfg.CeilingOccupancy == 0 {
		cfg = DefaultElasticityConfig()
	}

	if recommendedPrice == 0 {
		return ElasticityResult{
			BaseOccupancy:      baseOccupancy,
			ProjectedOccupancy: baseOccupancy,
		}
	}

	priceChange := (manualPrice - recommendedPrice) / recommendedPrice * 100
	occupancyChange := -signOf(priceChange) * cfg.Coefficient * priceChange * priceChange

	projected := utils.Clamp(baseOccupancy+occupancyChange, cfg.FloorOccupancy, cfg.CeilingOccupancy)

	return ElasticityResult{
		PriceChangePercent:    utils.RoundTo(priceChange, 2),
		OccupancyChangePoints: utils.RoundTo(occupancyChange, 2),
		ProjectedOccupancy:    utils.RoundTo(projected, 1),
		BaseOccupancy:         baseOccupancy,
	}
}

func signOf(v float64) float64 {
	if v > 0 {
		return 1
	}
	if v < 0 {
		return -1
	}
	return 0
}
