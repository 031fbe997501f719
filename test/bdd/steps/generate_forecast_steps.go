package steps

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/cucumber/godog"
	"gorm.io/gorm"

	"github.com/revpilot-io/revpilot/internal/adapters/persistence"
	"github.com/revpilot-io/revpilot/internal/application/forecasting/queries"
	"github.com/revpilot-io/revpilot/internal/application/forecasting/services"
	"github.com/revpilot-io/revpilot/internal/domain/forecast"
	"github.com/revpilot-io/revpilot/internal/domain/hotel"
	"github.com/revpilot-io/revpilot/internal/domain/signals"
	"github.com/revpilot-io/revpilot/internal/infrastructure/database"
)

// Offline providers: every external signal degrades to unavailable, so
// scenarios exercise the pipeline on history and profile alone.

type offlineWeather struct{}

func (offlineWeather) FetchWeather(ctx context.Context, city string) ([]signals.WeatherDay, bool) {
	return nil, false
}

type offlineEvents struct{}

func (offlineEvents) FetchEvents(ctx context.Context, city string) ([]signals.EventRecord, bool) {
	return nil, false
}

type offlineCompetitors struct{}

func (offlineCompetitors) FetchRates(ctx context.Context, city string) ([]signals.CompetitorRate, bool) {
	return nil, false
}

type generateForecastContext struct {
	db       *gorm.DB
	records  *persistence.GormHistoricalRecordRepository
	store    *persistence.GormForecastRepository
	handler  *queries.GenerateForecastHandler
	pricing  forecast.PricingConfig
	start    time.Time
	days     int
	response *queries.GenerateForecastResponse
	err      error
}

func (ctx *generateForecastContext) reset() {
	ctx.db = nil
	ctx.records = nil
	ctx.store = nil
	ctx.handler = nil
	ctx.pricing = forecast.PricingConfig{}
	ctx.start = time.Time{}
	ctx.days = 0
	ctx.response = nil
	ctx.err = nil
}

// Given steps

func (ctx *generateForecastContext) aHotelWithRoomsAndBasePrice(city string, rooms, basePrice int) error {
	db, err := database.NewTestConnection()
	if err != nil {
		return fmt.Errorf("failed to open test database: %w", err)
	}
	ctx.db = db
	ctx.records = persistence.NewGormHistoricalRecordRepository(db)
	ctx.store = persistence.NewGormForecastRepository(db)

	profile, err := hotel.NewProfile("BDD Hotel", city, rooms, float64(basePrice), 0.65, "EUR")
	if err != nil {
		return fmt.Errorf("failed to build hotel profile: %w", err)
	}

	ctx.pricing = forecast.DefaultPricingConfig(float64(basePrice))

	generator := services.NewForecastGenerator(
		offlineWeather{},
		offlineEvents{},
		offlineCompetitors{},
		ctx.records,
		nil,
		services.Settings{
			Profile:     profile,
			Weights:     forecast.DefaultDemandWeights(),
			Pricing:     ctx.pricing,
			Confidence:  forecast.DefaultConfidenceConfig(),
			Elasticity:  forecast.DefaultElasticityConfig(),
			HorizonDays: forecast.DefaultHorizonDays,
		},
	)
	ctx.handler = queries.NewGenerateForecastHandler(generator, ctx.store)
	return nil
}

func (ctx *generateForecastContext) noHistoricalRecordsInTheDatabase() error {
	return nil
}

func (ctx *generateForecastContext) daysOfHistoryEndingOn(days int, occupancyPct float64, endDate string) error {
	end, err := time.Parse("2006-01-02", endDate)
	if err != nil {
		return fmt.Errorf("invalid end date %q: %w", endDate, err)
	}

	const roomsAvailable = 40
	sold := int(float64(roomsAvailable) * occupancyPct / 100)
	for i := days - 1; i >= 0; i-- {
		record, err := hotel.NewHistoricalRecord(end.AddDate(0, 0, -i), roomsAvailable, sold, 110, 1)
		if err != nil {
			return err
		}
		if err := ctx.records.Save(context.Background(), record); err != nil {
			return fmt.Errorf("failed to save historical record: %w", err)
		}
	}
	return nil
}

// When steps

func (ctx *generateForecastContext) iGenerateForecastStartingOn(days int, startDate string) error {
	return ctx.execute(days, startDate, false)
}

func (ctx *generateForecastContext) iGenerateAndPersistForecastStartingOn(days int, startDate string) error {
	return ctx.execute(days, startDate, true)
}

func (ctx *generateForecastContext) execute(days int, startDate string, persist bool) error {
	start, err := time.Parse("2006-01-02", startDate)
	if err != nil {
		return fmt.Errorf("invalid start date %q: %w", startDate, err)
	}
	ctx.start = start
	ctx.days = days

	resp, err := ctx.handler.Handle(context.Background(), &queries.GenerateForecastQuery{
		StartDate: start,
		Days:      days,
		Persist:   persist,
	})
	ctx.err = err
	if err != nil {
		return err
	}

	response, ok := resp.(*queries.GenerateForecastResponse)
	if !ok {
		return fmt.Errorf("unexpected response type %T", resp)
	}
	ctx.response = response
	return nil
}

func (ctx *generateForecastContext) iRequestAForecastWithoutAStartDate() error {
	_, ctx.err = ctx.handler.Handle(context.Background(), &queries.GenerateForecastQuery{Days: 5})
	return nil
}

// Then steps

func (ctx *generateForecastContext) theForecastShouldContainDays(days int) error {
	if ctx.response == nil {
		return fmt.Errorf("no forecast response, error was: %v", ctx.err)
	}
	if len(ctx.response.Days) != days {
		return fmt.Errorf("expected %d forecast days, got %d", days, len(ctx.response.Days))
	}
	return nil
}

func (ctx *generateForecastContext) everyDemandScoreShouldBeBounded(low, high float64) error {
	for _, day := range ctx.response.Days {
		if day.Demand.DemandScore < low || day.Demand.DemandScore > high {
			return fmt.Errorf("demand score %.2f on %s outside [%.0f, %.0f]",
				day.Demand.DemandScore, day.Date.Format("2006-01-02"), low, high)
		}
	}
	return nil
}

func (ctx *generateForecastContext) everyPriceShouldBeWithinFloorAndCeiling() error {
	floor := ctx.pricing.BasePrice * ctx.pricing.FloorMultiplier
	ceiling := ctx.pricing.BasePrice * ctx.pricing.CeilingMultiplier
	for _, day := range ctx.response.Days {
		price := day.Price.RecommendedPrice
		if price < floor || price > ceiling {
			return fmt.Errorf("price %.2f on %s outside [%.2f, %.2f]",
				price, day.Date.Format("2006-01-02"), floor, ceiling)
		}
	}
	return nil
}

func (ctx *generateForecastContext) forecastRowsShouldBeStored(rows int) error {
	stored, err := ctx.store.ListByDateRange(context.Background(), ctx.start, ctx.start.AddDate(0, 0, ctx.days-1))
	if err != nil {
		return fmt.Errorf("failed to list stored forecasts: %w", err)
	}
	if len(stored) != rows {
		return fmt.Errorf("expected %d stored forecast rows, got %d", rows, len(stored))
	}
	return nil
}

func (ctx *generateForecastContext) theRequestShouldFailWithErrorContaining(fragment string) error {
	if ctx.err == nil {
		return fmt.Errorf("expected an error containing %q, got none", fragment)
	}
	if !strings.Contains(ctx.err.Error(), fragment) {
		return fmt.Errorf("expected error containing %q, got %q", fragment, ctx.err.Error())
	}
	return nil
}

// InitializeGenerateForecastScenario registers the forecast handler steps.
func InitializeGenerateForecastScenario(sc *godog.ScenarioContext) {
	forecastCtx := &generateForecastContext{}

	sc.Before(func(ctx context.Context, scenario *godog.Scenario) (context.Context, error) {
		forecastCtx.reset()
		return ctx, nil
	})

	sc.After(func(ctx context.Context, scenario *godog.Scenario, err error) (context.Context, error) {
		if forecastCtx.db != nil {
			_ = database.Close(forecastCtx.db)
		}
		return ctx, nil
	})

	sc.Step(`^a hotel in "([^"]*)" with (\d+) rooms and a base price of (\d+) euros$`, forecastCtx.aHotelWithRoomsAndBasePrice)
	sc.Step(`^no historical records in the database$`, forecastCtx.noHistoricalRecordsInTheDatabase)
	sc.Step(`^(\d+) days of history at ([\d.]+) percent occupancy ending on "([^"]*)"$`, forecastCtx.daysOfHistoryEndingOn)
	sc.Step(`^I generate a (\d+) day forecast starting on "([^"]*)"$`, forecastCtx.iGenerateForecastStartingOn)
	sc.Step(`^I generate and persist a (\d+) day forecast starting on "([^"]*)"$`, forecastCtx.iGenerateAndPersistForecastStartingOn)
	sc.Step(`^the forecast should contain (\d+) days$`, forecastCtx.theForecastShouldContainDays)
	sc.Step(`^every demand score should be between (\d+) and (\d+)$`, forecastCtx.everyDemandScoreShouldBeBounded)
	sc.Step(`^every recommended price should be between the floor and ceiling$`, forecastCtx.everyPriceShouldBeWithinFloorAndCeiling)
	sc.Step(`^(\d+) forecast rows should be stored for that window$`, forecastCtx.forecastRowsShouldBeStored)
	sc.Step(`^the request should fail with an error containing "([^"]*)"$`, forecastCtx.theRequestShouldFailWithErrorContaining)
}
