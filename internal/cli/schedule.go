package cli

import (
	"fmt"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"fno-calc/internal/models"
)

func newScheduleCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "schedule",
		Short: "Show the fee schedule in effect",
		Long: `Show the complete fee schedule: flat brokerage, GST and SEBI rates,
and the per-(instrument, side) stamp duty, STT, and exchange
transaction rates applied to turnover.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			output := NewOutput(cmd)
			schedule := app.Evaluator.Schedule()

			if output.IsJSON() {
				return output.JSON(app.Config.Fees)
			}

			output.Bold("Fee Schedule")
			output.Printf("  Brokerage per order: %s\n", FormatIndianCurrency(schedule.BrokeragePerOrder))
			output.Printf("  GST rate:            %.2f%% (on brokerage + exchange + SEBI)\n", schedule.GSTRate*100)
			output.Printf("  SEBI turnover fee:   %.6f%% of turnover\n\n", schedule.SEBITurnoverRate*100)

			table := tablewriter.NewWriter(output.writer)
			table.Header("Instrument", "Side", "Stamp Duty", "STT", "Exchange Charge")

			for _, instrument := range []models.InstrumentType{models.InstrumentOptions, models.InstrumentFutures} {
				for _, side := range []models.OrderSide{models.OrderSideBuy, models.OrderSideSell} {
					rates := schedule.LegRatesFor(instrument, side)
					table.Append(
						string(instrument),
						string(side),
						formatRate(rates.StampDuty),
						formatRate(rates.STT),
						formatRate(rates.ExchangeCharge),
					)
				}
			}

			table.Render()
			output.Dim("All rates apply to leg turnover (price x lots x lot size)")
			return nil
		},
	}

	return cmd
}

func formatRate(rate float64) string {
	if rate == 0 {
		return "-"
	}
	return fmt.Sprintf("%.5f%%", rate*100)
}
