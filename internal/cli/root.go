package cli

import (
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"fno-calc/internal/config"
	"fno-calc/internal/logging"
	"fno-calc/internal/pricing"
	"fno-calc/internal/trading"
)

// Version information
const (
	Version = "0.1.0"
)

// App holds the application dependencies.
type App struct {
	Config    *config.Config
	Logger    zerolog.Logger
	Evaluator *trading.Evaluator
	Prices    pricing.Source
}

// NewRootCmd creates the root command for the CLI.
func NewRootCmd(cfg *config.Config, logger zerolog.Logger) *cobra.Command {
	prices := pricing.NewSimulated()
	prices.Base = cfg.Pricing.Base
	prices.Jitter = cfg.Pricing.Jitter
	prices.Latency = time.Duration(cfg.Pricing.LatencyMS) * time.Millisecond

	app := &App{
		Config:    cfg,
		Logger:    logger,
		Evaluator: trading.NewEvaluator(cfg.Schedule()),
		Prices:    prices,
	}

	rootCmd := &cobra.Command{
		Use:   "fno-calc",
		Short: "NSE Options & Futures cost calculator",
		Long: `fno-calc computes the net profit or loss of a single NSE F&O trade,
including brokerage, STT, exchange and SEBI charges, GST, stamp duty,
profit tax, and the margin required to open the position.

Use 'fno-calc evaluate' for a full round-trip trade, 'fno-calc charges'
for a single leg, and 'fno-calc margin' for margin alone.`,
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			debug, _ := cmd.Flags().GetBool("debug")
			if debug {
				logging.SetDebugLevel()
				app.Logger = app.Logger.Level(zerolog.DebugLevel)
			}
			return nil
		},
	}

	// Global flags
	rootCmd.PersistentFlags().Bool("json", false, "output in JSON format")
	rootCmd.PersistentFlags().Bool("debug", false, "enable debug logging")
	rootCmd.PersistentFlags().Bool("no-color", false, "disable colored output")

	rootCmd.AddCommand(newEvaluateCmd(app))
	rootCmd.AddCommand(newChargesCmd(app))
	rootCmd.AddCommand(newMarginCmd(app))
	rootCmd.AddCommand(newScheduleCmd(app))
	rootCmd.AddCommand(newQuoteCmd(app))

	return rootCmd
}
