package steps

import (
	"context"
	"fmt"
	"math"

	"github.com/cucumber/godog"

	"github.com/revpilot-io/revpilot/internal/domain/forecast"
)

type elasticityContext struct {
	model            *forecast.ElasticityModel
	recommendedPrice float64
	baseOccupancy    float64
	result           forecast.ElasticityResult
}

func (ctx *elasticityContext) reset() {
	ctx.model = forecast.NewElasticityModel()
	ctx.recommendedPrice = 0
	ctx.baseOccupancy = 0
	ctx.result = forecast.ElasticityResult{}
}

func (ctx *elasticityContext) aRecommendedPriceAndBaseOccupancy(price int, occupancy float64) error {
	ctx.recommendedPrice = float64(price)
	ctx.baseOccupancy = occupancy
	return nil
}

func (ctx *elasticityContext) iPriceTheRoomManuallyAt(price int) error {
	ctx.result = ctx.model.Project(ctx.baseOccupancy, ctx.recommendedPrice, float64(price), forecast.DefaultElasticityConfig())
	return nil
}

func (ctx *elasticityContext) theOccupancyChangeShouldBePoints(points float64) error {
	if math.Abs(ctx.result.OccupancyChangePoints-points) > 1e-6 {
		return fmt.Errorf("expected occupancy change %.2f points, got %.2f", points, ctx.result.OccupancyChangePoints)
	}
	return nil
}

func (ctx *elasticityContext) theProjectedOccupancyShouldBePercent(occupancy float64) error {
	if math.Abs(ctx.result.ProjectedOccupancy-occupancy) > 1e-6 {
		return fmt.Errorf("expected projected occupancy %.1f%%, got %.1f%%", occupancy, ctx.result.ProjectedOccupancy)
	}
	return nil
}

// InitializeElasticityScenario registers the price elasticity steps.
func InitializeElasticityScenario(sc *godog.ScenarioContext) {
	elasticityCtx := &elasticityContext{}

	sc.Before(func(ctx context.Context, scenario *godog.Scenario) (context.Context, error) {
		elasticityCtx.reset()
		return ctx, nil
	})

	sc.Step(`^a recommended price of (\d+) euros and a base occupancy of ([\d.]+) percent$`, elasticityCtx.aRecommendedPriceAndBaseOccupancy)
	sc.Step(`^I price the room manually at (\d+) euros$`, elasticityCtx.iPriceTheRoomManuallyAt)
	sc.Step(`^the occupancy change should be (-?[\d.]+) points$`, elasticityCtx.theOccupancyChangeShouldBePoints)
	sc.Step(`^the projected occupancy should be (-?[\d.]+) percent$`, elasticityCtx.theProjectedOccupancyShouldBePercent)
}
