package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"fno-calc/internal/models"
	"fno-calc/internal/trading"
)

func newMarginCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "margin <entry-price>",
		Short: "Show the margin required to open a position",
		Long: `Show the margin required to open a position at the given entry price.

Long options block the full premium as margin with no exposure
component. Short options and futures post initial plus exposure
margin as a percentage of entry turnover.`,
		Example: `  fno-calc margin 150
  fno-calc margin 100 --trade short --qty 2
  fno-calc margin 24950 --instrument futures --initial-margin 12 --exposure-margin 3`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			output := NewOutput(cmd)

			entry, err := strconv.ParseFloat(args[0], 64)
			if err != nil || entry <= 0 {
				output.Error("Entry price must be a positive number, got %q", args[0])
				return fmt.Errorf("invalid entry price %q", args[0])
			}

			instrumentStr, _ := cmd.Flags().GetString("instrument")
			instrument, err := models.ParseInstrumentType(instrumentStr)
			if err != nil {
				output.Error("%v", err)
				return err
			}
			tradeStr, _ := cmd.Flags().GetString("trade")
			tradeType, err := models.ParseTradeType(tradeStr)
			if err != nil {
				output.Error("%v", err)
				return err
			}

			qty, _ := cmd.Flags().GetInt("qty")
			lotSize, _ := cmd.Flags().GetInt("lot-size")
			if qty <= 0 || lotSize <= 0 {
				output.Error("Quantity and lot size must be positive")
				return fmt.Errorf("invalid quantity %d or lot size %d", qty, lotSize)
			}
			initialRate, _ := cmd.Flags().GetFloat64("initial-margin")
			exposureRate, _ := cmd.Flags().GetFloat64("exposure-margin")

			margin := trading.ComputeMargin(instrument, tradeType, entry, qty, lotSize, initialRate, exposureRate)

			if output.IsJSON() {
				return output.JSON(margin)
			}

			output.Bold("Required Margin: %s %s, %d lots x %d units @ %s",
				instrument, tradeType, qty, lotSize, FormatIndianCurrency(entry))
			output.Printf("  Initial:  %s\n", FormatIndianCurrency(margin.Initial))
			output.Printf("  Exposure: %s\n", FormatIndianCurrency(margin.Exposure))
			output.Bold("  Total:    %s", FormatIndianCurrency(margin.Total))

			return nil
		},
	}

	cfg := app.Config
	cmd.Flags().String("instrument", "options", "Instrument type: options, futures")
	cmd.Flags().String("trade", "long", "Trade type: long, short")
	cmd.Flags().Int("qty", cfg.Trade.DefaultQuantity, "Quantity in lots")
	cmd.Flags().Int("lot-size", cfg.Trade.DefaultLotSize, "Units per lot")
	cmd.Flags().Float64("initial-margin", cfg.Margin.DefaultInitialRate, "Initial margin rate (% of turnover)")
	cmd.Flags().Float64("exposure-margin", cfg.Margin.DefaultExposureRate, "Exposure margin rate (% of turnover)")

	return cmd
}
