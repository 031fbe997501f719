package steps

import (
	"context"
	"fmt"
	"math"

	"github.com/cucumber/godog"

	"github.com/revpilot-io/revpilot/internal/domain/forecast"
)

type pricingContext struct {
	optimizer *forecast.PriceOptimizer
	cfg       forecast.PricingConfig
	score     float64
	projected *float64
	rec       forecast.PriceRecommendation
	err       error
}

func (ctx *pricingContext) reset() {
	ctx.optimizer = forecast.NewPriceOptimizer()
	ctx.cfg = forecast.PricingConfig{}
	ctx.score = 0
	ctx.projected = nil
	ctx.rec = forecast.PriceRecommendation{}
	ctx.err = nil
}

// Given steps

func (ctx *pricingContext) aBasePriceOfEuros(price int) error {
	ctx.cfg = forecast.DefaultPricingConfig(float64(price))
	return nil
}

func (ctx *pricingContext) aDemandScoreOf(score float64) error {
	ctx.score = score
	return nil
}

func (ctx *pricingContext) aProjectedOccupancyOfPercent(occupancy float64) error {
	ctx.projected = &occupancy
	return nil
}

func (ctx *pricingContext) aPriceCeilingMultiplierOf(multiplier float64) error {
	ctx.cfg.CeilingMultiplier = multiplier
	return nil
}

func (ctx *pricingContext) aPriceFloorMultiplierOf(multiplier float64) error {
	ctx.cfg.FloorMultiplier = multiplier
	return nil
}

// When steps

func (ctx *pricingContext) iOptimizeThePrice() error {
	ctx.rec, ctx.err = ctx.optimizer.Optimize(ctx.score, ctx.projected, ctx.cfg)
	return ctx.err
}

// Then steps

func (ctx *pricingContext) thePricingTierShouldBe(tier string) error {
	if string(ctx.rec.Tier) != tier {
		return fmt.Errorf("expected tier %q, got %q", tier, ctx.rec.Tier)
	}
	return nil
}

func (ctx *pricingContext) theRecommendedPriceShouldBeEuros(price int) error {
	if math.Abs(ctx.rec.RecommendedPrice-float64(price)) > 1e-9 {
		return fmt.Errorf("expected recommended price %d, got %.2f", price, ctx.rec.RecommendedPrice)
	}
	return nil
}

func (ctx *pricingContext) saturationPricingShouldBeActive() error {
	if !ctx.rec.IsSaturated {
		return fmt.Errorf("expected saturation pricing to be active")
	}
	return nil
}

func (ctx *pricingContext) saturationPricingShouldNotBeActive() error {
	if ctx.rec.IsSaturated {
		return fmt.Errorf("expected saturation pricing to be inactive, got boost %.2f", ctx.rec.SaturationBoost)
	}
	return nil
}

// InitializePricingScenario registers the price optimization steps.
func InitializePricingScenario(sc *godog.ScenarioContext) {
	pricingCtx := &pricingContext{}

	sc.Before(func(ctx context.Context, scenario *godog.Scenario) (context.Context, error) {
		pricingCtx.reset()
		return ctx, nil
	})

	sc.Step(`^a base price of (\d+) euros$`, pricingCtx.aBasePriceOfEuros)
	sc.Step(`^a demand score of ([\d.]+)$`, pricingCtx.aDemandScoreOf)
	sc.Step(`^a projected occupancy of ([\d.]+) percent$`, pricingCtx.aProjectedOccupancyOfPercent)
	sc.Step(`^a price ceiling multiplier of ([\d.]+)$`, pricingCtx.aPriceCeilingMultiplierOf)
	sc.Step(`^a price floor multiplier of ([\d.]+)$`, pricingCtx.aPriceFloorMultiplierOf)
	sc.Step(`^I optimize the price$`, pricingCtx.iOptimizeThePrice)
	sc.Step(`^the pricing tier should be "([^"]*)"$`, pricingCtx.thePricingTierShouldBe)
	sc.Step(`^the recommended price should be (\d+) euros$`, pricingCtx.theRecommendedPriceShouldBeEuros)
	sc.Step(`^saturation pricing should be active$`, pricingCtx.saturationPricingShouldBeActive)
	sc.Step(`^saturation pricing should not be active$`, pricingCtx.saturationPricingShouldNotBeActive)
}
