package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/revpilot-io/revpilot/internal/application/forecasting/queries"
	"github.com/revpilot-io/revpilot/internal/domain/backtest"
)

// NewBacktestCommand creates the backtest command
func NewBacktestCommand() *cobra.Command {
	var showDays bool

	cmd := &cobra.Command{
		Use:   "backtest",
		Short: "Replay the pricing engine against stored history",
		Long: `Replay the pricing engine over every stored historical day and
compare the revenue it would have produced against what actually
happened. Each day is scored using only data available before it,
so the replay never sees its own future.

Examples:
  revpilot backtest
  revpilot backtest --days`,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := buildApp()
			if err != nil {
				return err
			}
			defer app.Close()

			resp, err := app.Mediator.Send(context.Background(), &queries.RunBacktestQuery{})
			if err != nil {
				return err
			}

			summary := resp.(*backtest.Summary)
			app.Metrics.ObserveBacktestRun()
			printBacktest(summary, showDays)
			return nil
		},
	}

	cmd.Flags().BoolVar(&showDays, "days", false, "Print the per-day replay table")

	return cmd
}

func printBacktest(s *backtest.Summary, showDays bool) {
	fmt.Printf("Backtest %s\n", s.RunID)
	fmt.Printf("Days replayed:      %d (%d wins / %d losses)\n", s.TotalDays, s.WinDays, s.LossDays)
	fmt.Printf("Actual revenue:     %.2f\n", s.TotalActualRevenue)
	fmt.Printf("Projected revenue:  %.2f\n", s.TotalProjectedRevenue)
	fmt.Printf("Difference:         %+.2f (%+.2f%%)\n", s.RevenueDifference, s.UpliftPercent)
	fmt.Printf("Demand score MAE:   %.2f\n", s.MeanAbsoluteError)
	fmt.Printf("Avg confidence:     %.1f%%\n", s.AvgConfidence)

	if !showDays {
		return
	}

	fmt.Println()
	fmt.Printf("%-12s %7s %6s %10s %8s %11s %11s %5s\n",
		"DATE", "DEMAND", "TIER", "PRICE", "ACT.OCC", "PROJ.REV", "ACT.REV", "WIN")
	for _, d := range s.Days {
		win := ""
		if d.Win {
			win = "yes"
		}
		fmt.Printf("%-12s %7.1f %6s %10.0f %7.1f%% %11.2f %11.2f %5s\n",
			d.Date.Format("2006-01-02"),
			d.DemandScore,
			string(d.Tier),
			d.RecommendedPrice,
			d.ActualOccupancy,
			d.ProjectedRevenue,
			d.ActualRevenue,
			win,
		)
	}
}
