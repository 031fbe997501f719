package forecast

import (
	"math"

	"github.com/revpilot-io/revpilot/pkg/utils"
)

// PricingTier labels the band a demand score falls into.
type PricingTier string

const (
	TierDiscount   PricingTier = "discount"
	TierBase       PricingTier = "base"
	TierPremium    PricingTier = "premium"
	TierSurge      PricingTier = "surge"
	TierSaturation PricingTier = "saturation"
)

// PricingConfig holds every pricing knob with its default. Build it via
// DefaultPricingConfig and override fields explicitly; the optimizer
// validates the combination before use.
type PricingConfig struct {
	BasePrice           float64
	FloorMultiplier     float64 // lowest allowed price as a fraction of base
	CeilingMultiplier   float64 // highest allowed price as a fraction of base
	SaturationThreshold float64 // projected occupancy % that triggers saturation pricing
	MinPriceSpread      float64 // minPrice = recommended × (1 − spread)
	MaxPriceSpread      float64 // maxPrice = recommended × (1 + spread)
}

// DefaultPricingConfig returns the standard pricing configuration for a
// given base price.
func DefaultPricingConfig(basePrice float64) PricingConfig {
	return PricingConfig{
		BasePrice:           basePrice,
		FloorMultiplier:     0.70,
		CeilingMultiplier:   1.80,
		SaturationThreshold: 95,
		MinPriceSpread:      0.15,
		MaxPriceSpread:      0.20,
	}
}

// Validate rejects structurally invalid pricing configuration.
func (c PricingConfig) Validate() error {
	if c.BasePrice <= 0 {
		return ErrInvalidBasePrice
	}
	if c.FloorMultiplier <= 0 || c.CeilingMultiplier <= c.FloorMultiplier {
		return ErrInvalidMultiplierRange
	}
	if c.SaturationThreshold <= 0 || c.SaturationThreshold >= 100 {
		return ErrInvalidSaturationThreshold
	}
	return nil
}

// PriceRecommendation is the priced outcome for one demand score.
// Derived purely from the score and the pricing config; always
// recomputed, never cached.
type PriceRecommendation struct {
	RecommendedPrice float64
	MinPrice         float64
	MaxPrice         float64
	PriceMultiplier  float64
	Tier             PricingTier
	IsSaturated      bool
	SaturationBoost  float64
}

// PriceOptimizer maps a demand score to a recommended price through a
// tiered multiplier curve with a demand-saturation override.
//
// This is a domain service with no infrastructure dependencies.
// All methods are stateless and deterministic.
type PriceOptimizer struct{}

// NewPriceOptimizer creates a price optimizer.
func NewPriceOptimizer() *PriceOptimizer {
	return &PriceOptimizer{}
}

// Optimize prices one day. projectedOccupancy (a percentage) is
// optional; when it exceeds the saturation threshold the optimizer
// switches from occupancy-maximizing to profit-maximizing and applies a
// multiplicative boost on top of the tier multiplier.
//
// Tier curve, linearly interpolated within each band:
//
//	score < 50   → discount [0.80, 0.90)
//	50 ≤ s ≤ 70  → base     [0.95, 1.05]
//	70 < s ≤ 85  → premium  [1.10, 1.25]
//	s > 85       → surge    [1.30, 1.50] (capped at score 100)
//
// The final price is clamped to [base×floor, base×ceiling] and rounded
// to whole currency units.
func (o *PriceOptimizer) Optimize(demandScore float64, projectedOccupancy *float64, cfg PricingConfig) (PriceRecommendation, error) {
	if err := cfg.Validate(); err != nil {
		return PriceRecommendation{}, err
	}

	score := utils.Clamp(demandScore, 0, 100)
	tier, multiplier := tierMultiplier(score)

	rec := PriceRecommendation{
		Tier:            tier,
		PriceMultiplier: multiplier,
	}

	if projectedOccupancy != nil && *projectedOccupancy > cfg.SaturationThreshold {
		excess := *projectedOccupancy - cfg.SaturationThreshold
		rec.SaturationBoost = excess / (100 - cfg.SaturationThreshold) * 0.20
		rec.PriceMultiplier = multiplier * (1 + rec.SaturationBoost)
		rec.Tier = TierSaturation
		rec.IsSaturated = true
	}

	floor := cfg.BasePrice * cfg.FloorMultiplier
	ceiling := cfg.BasePrice * cfg.CeilingMultiplier

	rec.RecommendedPrice = math.Round(utils.Clamp(cfg.BasePrice*rec.PriceMultiplier, floor, ceiling))
	rec.MinPrice = math.Round(utils.Clamp(rec.RecommendedPrice*(1-cfg.MinPriceSpread), floor, ceiling))
	rec.MaxPrice = math.Round(utils.Clamp(rec.RecommendedPrice*(1+cfg.MaxPriceSpread), floor, ceiling))

	return rec, nil
}

// tierMultiplier interpolates the multiplier within the band the score
// falls into. The premium band closes at exactly 85; anything above is
// surge.
func tierMultiplier(score float64) (PricingTier, float64) {
	switch {
	case score < 50:
		return TierDiscount, 0.80 + (score/50)*0.10
	case score <= 70:
		return TierBase, 0.95 + ((score-50)/20)*0.10
	case score <= 85:
		return TierPremium, 1.10 + ((score-70)/15)*0.15
	default:
		capped := math.Min(score, 100)
		return TierSurge, 1.30 + ((capped-85)/15)*0.20
	}
}
