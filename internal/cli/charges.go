package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"fno-calc/internal/models"
)

func newChargesCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "charges <buy|sell> <price>",
		Short: "Show the charge breakdown for a single leg",
		Long: `Show the full transaction-cost breakdown for one executed order:
brokerage, exchange and SEBI charges, GST, and the side-dependent
STT (sell) or stamp duty (buy).`,
		Example: `  fno-calc charges buy 150
  fno-calc charges sell 160 --qty 2 --lot-size 50
  fno-calc charges sell 24800 --instrument futures`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			output := NewOutput(cmd)

			var side models.OrderSide
			switch strings.ToUpper(args[0]) {
			case "BUY":
				side = models.OrderSideBuy
			case "SELL":
				side = models.OrderSideSell
			default:
				output.Error("Side must be 'buy' or 'sell', got %q", args[0])
				return fmt.Errorf("invalid side %q", args[0])
			}

			price, err := strconv.ParseFloat(args[1], 64)
			if err != nil || price <= 0 {
				output.Error("Price must be a positive number, got %q", args[1])
				return fmt.Errorf("invalid price %q", args[1])
			}

			instrumentStr, _ := cmd.Flags().GetString("instrument")
			instrument, err := models.ParseInstrumentType(instrumentStr)
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

			breakdown := app.Evaluator.Schedule().ComputeCharges(side, price, qty, lotSize, instrument)

			if output.IsJSON() {
				return output.JSON(breakdown)
			}

			output.Bold("%s %s leg: %d lots x %d units @ %s", instrument, side, qty, lotSize, FormatIndianCurrency(price))
			output.Printf("  Turnover:        %s\n", FormatIndianCurrency(breakdown.Turnover))
			output.Printf("  Brokerage:       %s\n", FormatIndianCurrency(breakdown.Brokerage))
			output.Printf("  Exchange Charge: %s\n", FormatIndianCurrency(breakdown.ExchangeCharge))
			output.Printf("  SEBI Charge:     %s\n", FormatIndianCurrency(breakdown.SEBICharge))
			output.Printf("  GST:             %s\n", FormatIndianCurrency(breakdown.GST))
			output.Printf("  STT:             %s\n", FormatIndianCurrency(breakdown.STT))
			output.Printf("  Stamp Duty:      %s\n", FormatIndianCurrency(breakdown.StampDuty))
			output.Bold("  Total Cost:      %s", FormatIndianCurrency(breakdown.TotalCost))

			return nil
		},
	}

	cmd.Flags().String("instrument", "options", "Instrument type: options, futures")
	cmd.Flags().Int("qty", app.Config.Trade.DefaultQuantity, "Quantity in lots")
	cmd.Flags().Int("lot-size", app.Config.Trade.DefaultLotSize, "Units per lot")

	return cmd
}
