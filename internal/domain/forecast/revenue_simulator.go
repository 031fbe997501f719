package forecast

import (
	"math"

	"github.com/revpilot-io/revpilot/pkg/utils"
)

// SimulationInput describes one day's revenue comparison. Occupancy is
// a percentage (0-100).
type SimulationInput struct {
	TotalRooms         int
	PredictedOccupancy float64
	RecommendedPrice   float64
	StaticPrice        float64
	ManualPrice        float64
	Elasticity         ElasticityConfig
}

// Scenario is one priced outcome within a simulation.
type Scenario struct {
	Price              float64
	ProjectedOccupancy float64
	RoomsSold          int
	Revenue            float64
}

// RevenueSimulation compares the AI-recommended price against a static
// price and an optional manual override for one day.
type RevenueSimulation struct {
	AI     Scenario
	Static Scenario
	Manual Scenario

	// AIVsStaticDelta is the revenue gained by pricing dynamically
	// instead of holding the static price.
	AIVsStaticDelta float64

	// ManualVsAIDelta is the revenue difference of the manual override
	// against the AI recommendation (negative when the override loses).
	ManualVsAIDelta float64

	// UnderpricingLoss is revenue left on the table by a manual price
	// below the recommendation; OverpricingLoss the cost of scaring off
	// demand with a price above it. Both floored at zero.
	UnderpricingLoss float64
	OverpricingLoss  float64
}

// RevenueSimulator composes the elasticity model with room counts to
// produce comparative revenue scenarios.
//
// This is a domain service with no infrastructure dependencies.
// All methods are stateless and deterministic.
type RevenueSimulator struct {
	elasticity *ElasticityModel
}

// NewRevenueSimulator creates a revenue simulator.
func NewRevenueSimulator() *RevenueSimulator {
	return &RevenueSimulator{elasticity: NewElasticityModel()}
}

// Simulate computes the three scenarios. The AI scenario takes the
// predicted occupancy at face value; static and manual prices route
// through the elasticity model to project their own occupancy.
func (s *RevenueSimulator) Simulate(input SimulationInput) RevenueSimulation {
	sim := RevenueSimulation{
		AI: s.scenario(input.TotalRooms, input.RecommendedPrice, input.PredictedOccupancy),
	}

	staticProj := s.elasticity.Project(input.PredictedOccupancy, input.RecommendedPrice, input.StaticPrice, input.Elasticity)
	sim.Static = s.scenario(input.TotalRooms, input.StaticPrice, staticProj.ProjectedOccupancy)
	sim.AIVsStaticDelta = sim.AI.Revenue - sim.Static.Revenue

	if input.ManualPrice > 0 {
		manualProj := s.elasticity.Project(input.PredictedOccupancy, input.RecommendedPrice, input.ManualPrice, input.Elasticity)
		sim.Manual = s.scenario(input.TotalRooms, input.ManualPrice, manualProj.ProjectedOccupancy)
		sim.ManualVsAIDelta = sim.Manual.Revenue - sim.AI.Revenue

		if input.ManualPrice < input.RecommendedPrice {
			sim.UnderpricingLoss = math.Max(0, sim.AI.Revenue-sim.Manual.Revenue)
		} else if input.ManualPrice > input.RecommendedPrice {
			sim.OverpricingLoss = math.Max(0, sim.AI.Revenue-sim.Manual.Revenue)
		}
	}

	return sim
}

func (s *RevenueSimulator) scenario(totalRooms int, price, occupancy float64) Scenario {
	occ := utils.Clamp(occupancy, 0, 100)
	roomsSold := int(math.Round(float64(totalRooms) * occ / 100))
	return Scenario{
		Price:              price,
		ProjectedOccupancy: occ,
		RoomsSold:          roomsSold,
		Revenue:            utils.RoundTo(float64(roomsSold)*price, 2),
	}
}
