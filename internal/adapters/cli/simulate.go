package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/revpilot-io/revpilot/internal/application/forecasting/queries"
	"github.com/revpilot-io/revpilot/internal/domain/forecast"
)

// NewSimulateCommand creates the simulate command
func NewSimulateCommand() *cobra.Command {
	var dateFlag string
	var manualPrice float64

	cmd := &cobra.Command{
		Use:   "simulate",
		Short: "Simulate a manual price against the recommendation",
		Long: `Simulate one day's revenue under a manual price and compare it with
the engine's recommendation and the static base price. Demand
elasticity shifts the projected occupancy for every price that
deviates from the recommendation.

Examples:
  revpilot simulate --date 2026-09-20 --price 145
  revpilot simulate --date 2026-10-03 --price 99.50`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if dateFlag == "" {
				return fmt.Errorf("--date is required")
			}
			if manualPrice <= 0 {
				return fmt.Errorf("--price must be positive")
			}

			target, err := time.Parse("2006-01-02", dateFlag)
			if err != nil {
				return fmt.Errorf("invalid date %q (want YYYY-MM-DD): %w", dateFlag, err)
			}

			app, err := buildApp()
			if err != nil {
				return err
			}
			defer app.Close()

			start, err := resolveStartDate("")
			if err != nil {
				return err
			}

			resp, err := app.Mediator.Send(context.Background(), &queries.SimulateRevenueQuery{
				StartDate:   start,
				TargetDate:  target,
				ManualPrice: manualPrice,
			})
			if err != nil {
				return err
			}

			response := resp.(*queries.SimulateRevenueResponse)
			printSimulation(response)
			return nil
		},
	}

	cmd.Flags().StringVar(&dateFlag, "date", "", "Day to simulate (YYYY-MM-DD)")
	cmd.Flags().Float64Var(&manualPrice, "price", 0, "Manual price to test")

	return cmd
}

func printSimulation(resp *queries.SimulateRevenueResponse) {
	day := resp.Day
	rev := day.Revenue

	fmt.Printf("Simulation for %s (demand %.1f, tier %s, confidence %d%%)\n\n",
		day.Date.Format("2006-01-02"), day.Demand.DemandScore, day.Price.Tier, day.Confidence.Score)

	fmt.Printf("%-14s %10s %10s %8s %12s\n", "SCENARIO", "PRICE", "OCCUPANCY", "ROOMS", "REVENUE")
	printScenario("recommended", rev.AI)
	printScenario("static", rev.Static)
	printScenario("manual", rev.Manual)

	fmt.Println()
	fmt.Printf("Dynamic vs static: %+.2f\n", rev.AIVsStaticDelta)
	fmt.Printf("Manual vs dynamic: %+.2f\n", rev.ManualVsAIDelta)
	if rev.UnderpricingLoss > 0 {
		fmt.Printf("Underpricing loss: %.2f\n", rev.UnderpricingLoss)
	}
	if rev.OverpricingLoss > 0 {
		fmt.Printf("Overpricing loss:  %.2f\n", rev.OverpricingLoss)
	}
}

func printScenario(label string, s forecast.Scenario) {
	fmt.Printf("%-14s %10.2f %9.1f%% %8d %12.2f\n", label, s.Price, s.ProjectedOccupancy, s.RoomsSold, s.Revenue)
}
