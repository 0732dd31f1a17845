package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"fno-calc/internal/models"
)

func newEvaluateCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "evaluate",
		Short: "Evaluate the net P&L of a round-trip F&O trade",
		Long: `Evaluate a single round-trip trade: both legs' transaction costs,
gross and net P&L, tax on profit, and the margin required to open
the position.

All numeric flags accept plain decimals. Long trades buy at the entry
price and sell at the exit price; short trades open with a sell at the
entry price and close with a buy at the exit price.`,
		Example: `  fno-calc evaluate --entry 150 --exit 160
  fno-calc evaluate --instrument futures --trade short --entry 24950 --exit 24800 --lot-size 50
  fno-calc evaluate --fetch-entry --exit 165 --strike 24900
  fno-calc evaluate --entry 100 --exit 80 --trade short --qty 2 --json`,
		RunE: func(cmd *cobra.Command, args []string) error {
			output := NewOutput(cmd)

			raw := models.RawTradeInput{}
			raw.Instrument, _ = cmd.Flags().GetString("instrument")
			raw.TradeType, _ = cmd.Flags().GetString("trade")
			raw.Symbol, _ = cmd.Flags().GetString("symbol")
			raw.Expiry, _ = cmd.Flags().GetString("expiry")
			raw.Strike, _ = cmd.Flags().GetString("strike")
			raw.EntryPrice, _ = cmd.Flags().GetString("entry")
			raw.ExitPrice, _ = cmd.Flags().GetString("exit")
			raw.Quantity, _ = cmd.Flags().GetString("qty")
			raw.LotSize, _ = cmd.Flags().GetString("lot-size")
			raw.ProfitTaxRate, _ = cmd.Flags().GetString("tax-rate")
			raw.InitialMarginRate, _ = cmd.Flags().GetString("initial-margin")
			raw.ExposureMarginRate, _ = cmd.Flags().GetString("exposure-margin")

			fetchEntry, _ := cmd.Flags().GetBool("fetch-entry")
			if fetchEntry && raw.EntryPrice == "" {
				price, err := fetchQuote(cmd.Context(), app, raw.Strike)
				if err != nil {
					output.Error("Failed to fetch price: %v", err)
					return err
				}
				raw.EntryPrice = fmt.Sprintf("%.2f", price)
				output.Dim("Fetched entry price: %s", FormatIndianCurrency(price))
			}

			input, err := models.ParseTradeInput(raw)
			if err != nil {
				output.Error("Invalid input: %v", err)
				return err
			}

			app.Logger.Debug().
				Str("instrument", string(input.Instrument)).
				Str("trade_type", string(input.TradeType)).
				Float64("entry", input.EntryPrice).
				Float64("exit", input.ExitPrice).
				Int("quantity", input.Quantity).
				Int("lot_size", input.LotSize).
				Msg("evaluating trade")

			result, err := app.Evaluator.Evaluate(input)
			if err != nil {
				output.Error("Please enter valid prices and quantities: %v", err)
				return err
			}

			if output.IsJSON() {
				return output.JSON(result)
			}

			renderResult(output, input, result)
			return nil
		},
	}

	cfg := app.Config
	cmd.Flags().String("instrument", "options", "Instrument type: options, futures")
	cmd.Flags().String("trade", "long", "Trade type: long (buy then sell), short (sell then buy)")
	cmd.Flags().String("symbol", cfg.Trade.DefaultSymbol, "Underlying symbol")
	cmd.Flags().String("expiry", "", "Contract expiry, display only")
	cmd.Flags().String("strike", fmt.Sprintf("%.0f", cfg.Trade.DefaultStrike), "Strike price")
	cmd.Flags().String("entry", "", "Entry price (premium per unit)")
	cmd.Flags().String("exit", "", "Exit price (premium per unit)")
	cmd.Flags().String("qty", fmt.Sprintf("%d", cfg.Trade.DefaultQuantity), "Quantity in lots")
	cmd.Flags().String("lot-size", fmt.Sprintf("%d", cfg.Trade.DefaultLotSize), "Units per lot")
	cmd.Flags().String("tax-rate", fmt.Sprintf("%g", cfg.Tax.DefaultProfitTaxRate), "Profit tax rate (%)")
	cmd.Flags().String("initial-margin", fmt.Sprintf("%g", cfg.Margin.DefaultInitialRate), "Initial margin rate (% of turnover)")
	cmd.Flags().String("exposure-margin", fmt.Sprintf("%g", cfg.Margin.DefaultExposureRate), "Exposure margin rate (% of turnover)")
	cmd.Flags().Bool("fetch-entry", false, "Fetch entry price from the simulated quote source")

	return cmd
}

// fetchQuote asks the price source for a premium, bounded by the
// configured timeout.
func fetchQuote(ctx context.Context, app *App, strikeStr string) (float64, error) {
	var strike float64
	fmt.Sscanf(strikeStr, "%f", &strike)

	timeout := time.Duration(app.Config.Pricing.TimeoutMS) * time.Millisecond
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	return app.Prices.Quote(ctx, strike)
}

func renderResult(output *Output, input models.TradeInput, result *models.TradeResult) {
	output.Bold("Trade Summary")
	output.Printf("  Instrument: %s  Trade: %s\n", input.Instrument, input.TradeType)
	if input.Symbol != "" {
		line := fmt.Sprintf("  Symbol:     %s", input.Symbol)
		if input.Expiry != "" {
			line += fmt.Sprintf("  Expiry: %s", input.Expiry)
		}
		if input.Instrument == models.InstrumentOptions && input.Strike > 0 {
			line += fmt.Sprintf("  Strike: %s", FormatIndianCurrency(input.Strike))
		}
		output.Println(line)
	}
	output.Printf("  Entry:      %s  Exit: %s\n", FormatIndianCurrency(input.EntryPrice), FormatIndianCurrency(input.ExitPrice))
	output.Printf("  Quantity:   %d lots x %d units = %s units\n\n", input.Quantity, input.LotSize, FormatQuantity(int64(input.TotalUnits())))

	output.Bold("Results")
	output.Printf("  Required Margin:     %s\n", FormatIndianCurrency(result.RequiredMargin.Total))
	output.Dim("    Initial: %s  Exposure: %s",
		FormatIndianCurrency(result.RequiredMargin.Initial),
		FormatIndianCurrency(result.RequiredMargin.Exposure))
	output.Printf("  Gross P&L:           %s\n", output.PnLString(result.GrossProfitLoss))
	output.Printf("  Total Charges:       - %s\n", FormatIndianCurrency(result.TotalCharges))
	output.Printf("  Net P&L before Tax:  %s\n", output.PnLString(result.NetProfitBeforeTax))
	if result.NetProfitBeforeTax > 0 {
		output.Printf("  Tax on Profit (%s): - %s\n", FormatPercent(input.ProfitTaxRate), FormatIndianCurrency(result.TaxOnProfit))
	}
	output.Printf("  Final Net P&L:       %s\n\n", output.PnLString(result.FinalNetProfit))

	output.Bold("Detailed Charges")
	renderChargeTable(output, result.BuyCosts, result.SellCosts)
}

func renderChargeTable(output *Output, buy, sell models.ChargeBreakdown) {
	table := tablewriter.NewWriter(output.writer)
	table.Header("Charge", "Buy Leg", "Sell Leg")

	rows := []struct {
		label     string
		buy, sell float64
	}{
		{"Turnover", buy.Turnover, sell.Turnover},
		{"Brokerage", buy.Brokerage, sell.Brokerage},
		{"Exchange Charge", buy.ExchangeCharge, sell.ExchangeCharge},
		{"SEBI Charge", buy.SEBICharge, sell.SEBICharge},
		{"GST", buy.GST, sell.GST},
		{"STT", buy.STT, sell.STT},
		{"Stamp Duty", buy.StampDuty, sell.StampDuty},
		{"Total Cost", buy.TotalCost, sell.TotalCost},
	}
	for _, r := range rows {
		table.Append(r.label, FormatIndianCurrency(r.buy), FormatIndianCurrency(r.sell))
	}

	table.Render()
}
