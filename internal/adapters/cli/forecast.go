package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/revpilot-io/revpilot/internal/application/forecasting/queries"
)

// NewForecastCommand creates the forecast command
func NewForecastCommand() *cobra.Command {
	var days int
	var startDate string
	var persist bool

	cmd := &cobra.Command{
		Use:   "forecast",
		Short: "Generate a daily price forecast",
		Long: `Generate a demand and price forecast for the configured property.

Each day gets a demand score (0-100), a recommended price with min/max
band, a pricing tier, a confidence score, and a revenue comparison
against the static base price.

Examples:
  revpilot forecast
  revpilot forecast --days 14
  revpilot forecast --start 2026-09-15 --persist`,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := buildApp()
			if err != nil {
				return err
			}
			defer app.Close()

			start, err := resolveStartDate(startDate)
			if err != nil {
				return err
			}

			resp, err := app.Mediator.Send(context.Background(), &queries.GenerateForecastQuery{
				StartDate: start,
				Days:      days,
				Persist:   persist,
			})
			if err != nil {
				return err
			}

			response := resp.(*queries.GenerateForecastResponse)
			printForecast(app, response)
			return nil
		},
	}

	cmd.Flags().IntVar(&days, "days", 30, "Forecast horizon in days")
	cmd.Flags().StringVar(&startDate, "start", "", "Forecast start date (YYYY-MM-DD, default today)")
	cmd.Flags().BoolVar(&persist, "persist", false, "Store the forecast for later accuracy scoring")

	return cmd
}

func printForecast(app *App, resp *queries.GenerateForecastResponse) {
	fmt.Printf("Forecast for %s (%s, %d rooms, base %s%.0f)\n",
		app.Profile.Name(), app.Profile.City(), app.Profile.TotalRooms(),
		currencySymbol(app.Profile.Currency()), app.Profile.BasePrice())

	if resp.Stats.HasData {
		fmt.Printf("History: %d records, avg occupancy %.1f%%, volatility %.3f\n\n",
			resp.Stats.TotalRecords, resp.Stats.AvgOccupancy*100, resp.Stats.OccupancyVolatility)
	} else {
		fmt.Println("History: none (calendar-driven forecast)")
		fmt.Println()
	}

	fmt.Printf("%-12s %-4s %7s %6s %10s %10s %6s  %s\n",
		"DATE", "DAY", "DEMAND", "TIER", "PRICE", "BAND", "CONF", "EVENT")
	for _, day := range resp.Days {
		fmt.Printf("%-12s %-4s %7.1f %6s %10.0f %4.0f-%-5.0f %5d%%  %s\n",
			day.Date.Format("2006-01-02"),
			day.Date.Format("Mon"),
			day.Demand.DemandScore,
			string(day.Price.Tier),
			day.Price.RecommendedPrice,
			day.Price.MinPrice,
			day.Price.MaxPrice,
			day.Confidence.Score,
			day.Demand.EventName,
		)
	}
}

// resolveStartDate parses the --start flag, defaulting to today at
// midnight UTC so repeated runs within a day are reproducible.
func resolveStartDate(flag string) (time.Time, error) {
	if flag == "" {
		now := time.Now().UTC()
		return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC), nil
	}
	start, err := time.Parse("2006-01-02", flag)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid start date %q (want YYYY-MM-DD): %w", flag, err)
	}
	return start, nil
}

func currencySymbol(code string) string {
	switch code {
	case "EUR":
		return "€"
	case "USD":
		return "$"
	case "GBP":
		return "£"
	default:
		return code + " "
	}
}
