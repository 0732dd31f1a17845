package cli

import (
	"context"
	"time"

	"github.com/spf13/cobra"
)

func newQuoteCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "quote",
		Short: "Fetch a simulated premium quote",
		Long: `Fetch a premium quote from the simulated price source, for
pre-filling the entry price of an evaluation. The source is a
stand-in for market data and returns a strike-derived premium
with random jitter after a short delay.`,
		Example: `  fno-calc quote
  fno-calc quote --strike 25100`,
		RunE: func(cmd *cobra.Command, args []string) error {
			output := NewOutput(cmd)

			strike, _ := cmd.Flags().GetFloat64("strike")

			timeout := time.Duration(app.Config.Pricing.TimeoutMS) * time.Millisecond
			ctx, cancel := context.WithTimeout(cmd.Context(), timeout)
			defer cancel()

			start := time.Now()
			price, err := app.Prices.Quote(ctx, strike)
			if err != nil {
				output.Error("Failed to fetch price. Please try again: %v", err)
				return err
			}

			app.Logger.Debug().
				Float64("strike", strike).
				Float64("price", price).
				Dur("elapsed", time.Since(start)).
				Msg("quote fetched")

			if output.IsJSON() {
				return output.JSON(map[string]float64{"strike": strike, "price": price})
			}

			output.Printf("Premium for strike %s: %s\n", FormatIndianCurrency(strike), FormatIndianCurrency(price))
			output.Dim("Simulated quote, not market data")
			return nil
		},
	}

	cmd.Flags().Float64("strike", app.Config.Trade.DefaultStrike, "Strike price")

	return cmd
}
