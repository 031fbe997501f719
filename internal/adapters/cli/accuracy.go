package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/revpilot-io/revpilot/internal/application/forecasting/queries"
	"github.com/revpilot-io/revpilot/internal/domain/backtest"
)

// NewAccuracyCommand creates the accuracy command
func NewAccuracyCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "accuracy",
		Short: "Score persisted forecasts against actual occupancy",
		Long: `Score forecasts previously stored with "forecast --persist" against
the actual occupancy recorded for the same dates. Reports mean
absolute error, mean absolute percentage error, and an accuracy
percentage, overall and over the most recent 30 scored days.

Examples:
  revpilot accuracy`,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := buildApp()
			if err != nil {
				return err
			}
			defer app.Close()

			resp, err := app.Mediator.Send(context.Background(), &queries.ForecastAccuracyQuery{})
			if err != nil {
				return err
			}

			result := resp.(*backtest.AccuracyResult)
			printAccuracy(result)
			return nil
		},
	}

	return cmd
}

func printAccuracy(r *backtest.AccuracyResult) {
	fmt.Printf("%-10s %8s %8s %8s %9s\n", "WINDOW", "SAMPLES", "MAE", "MAPE", "ACCURACY")
	printAccuracyRow("overall", r.Overall)
	printAccuracyRow("last 30", r.Rolling30)
}

func printAccuracyRow(label string, m backtest.AccuracyMetrics) {
	fmt.Printf("%-10s %8d %8.2f %7.2f%% %8.1f%%\n", label, m.SampleSize, m.MAE, m.MAPE, m.Accuracy)
}
