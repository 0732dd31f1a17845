// Package config provides configuration management for the calculator.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/spf13/viper"

	apperrors "fno-calc/internal/errors"
	"fno-calc/internal/models"
	"fno-calc/internal/trading"
)

// Config holds all application configuration.
type Config struct {
	Fees    FeesConfig    `mapstructure:"fees"`
	Margin  MarginConfig  `mapstructure:"margin"`
	Tax     TaxConfig     `mapstructure:"tax"`
	Trade   TradeConfig   `mapstructure:"trade"`
	Pricing PricingConfig `mapstructure:"pricing"`
	UI      UIConfig      `mapstructure:"ui"`
	Logging LoggingConfig `mapstructure:"logging"`
}

// FeesConfig holds the fee schedule. Defaults match the standard NSE
// F&O schedule with flat discount brokerage.
type FeesConfig struct {
	BrokeragePerOrder float64         `mapstructure:"brokerage_per_order"`
	GSTRate           float64         `mapstructure:"gst_rate"`
	SEBITurnoverRate  float64         `mapstructure:"sebi_turnover_rate"`
	Options           InstrumentRates `mapstructure:"options"`
	Futures           InstrumentRates `mapstructure:"futures"`
}

// InstrumentRates holds the per-instrument turnover rates.
type InstrumentRates struct {
	BuyStampDuty   float64 `mapstructure:"buy_stamp_duty"`
	SellSTT        float64 `mapstructure:"sell_stt"`
	ExchangeCharge float64 `mapstructure:"exchange_charge"`
}

// MarginConfig holds default margin rates for futures and short options.
type MarginConfig struct {
	DefaultInitialRate  float64 `mapstructure:"default_initial_rate"`
	DefaultExposureRate float64 `mapstructure:"default_exposure_rate"`
}

// TaxConfig holds tax defaults.
type TaxConfig struct {
	DefaultProfitTaxRate float64 `mapstructure:"default_profit_tax_rate"`
}

// TradeConfig holds default contract parameters for the CLI.
type TradeConfig struct {
	DefaultSymbol   string  `mapstructure:"default_symbol"`
	DefaultLotSize  int     `mapstructure:"default_lot_size"`
	DefaultQuantity int     `mapstructure:"default_quantity"`
	DefaultStrike   float64 `mapstructure:"default_strike"`
}

// PricingConfig holds simulated price source settings.
type PricingConfig struct {
	Base      float64 `mapstructure:"base"`
	Jitter    float64 `mapstructure:"jitter"`
	LatencyMS int     `mapstructure:"latency_ms"`
	TimeoutMS int     `mapstructure:"timeout_ms"`
}

// UIConfig holds UI-related configuration.
type UIConfig struct {
	ColorEnabled bool `mapstructure:"color_enabled"`
}

// LoggingConfig holds logging configuration.
type LoggingConfig struct {
	Level      string `mapstructure:"level"`
	Console    bool   `mapstructure:"console"`
	File       bool   `mapstructure:"file"`
	MaxSizeMB  int    `mapstructure:"max_size_mb"`
	MaxBackups int    `mapstructure:"max_backups"`
	MaxAgeDays int    `mapstructure:"max_age_days"`
}

// DefaultConfigDir returns the default configuration directory.
func DefaultConfigDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".config/fno-calc"
	}
	return filepath.Join(home, ".config", "fno-calc")
}

// Load loads configuration from the specified directory.
// If configDir is empty, uses the default config directory.
func Load(configDir string) (*Config, error) {
	if configDir == "" {
		configDir = DefaultConfigDir()
	}

	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("toml")
	v.AddConfigPath(configDir)
	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("loading config.toml: %w", err)
		}
		// First run: write a template so the schedule is auditable.
		if err := writeTemplateConfig(configDir); err != nil {
			return nil, fmt.Errorf("creating config template: %w", err)
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("parsing config.toml: %w", err)
	}

	applyEnvOverrides(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validating config: %w", err)
	}

	return cfg, nil
}

// Default returns the built-in configuration without touching disk.
func Default() *Config {
	v := viper.New()
	setDefaults(v)
	cfg := &Config{}
	// Defaults unmarshal cleanly; an error here means a broken default table.
	if err := v.Unmarshal(cfg); err != nil {
		panic(err)
	}
	return cfg
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("fees.brokerage_per_order", trading.DefaultBrokeragePerOrder)
	v.SetDefault("fees.gst_rate", trading.DefaultGSTRate)
	v.SetDefault("fees.sebi_turnover_rate", trading.DefaultSEBITurnoverRate)
	v.SetDefault("fees.options.buy_stamp_duty", 0.00003)
	v.SetDefault("fees.options.sell_stt", 0.001)
	v.SetDefault("fees.options.exchange_charge", 0.0003503)
	v.SetDefault("fees.futures.buy_stamp_duty", 0.00002)
	v.SetDefault("fees.futures.sell_stt", 0.0002)
	v.SetDefault("fees.futures.exchange_charge", 0.000173)

	v.SetDefault("margin.default_initial_rate", 10.0)
	v.SetDefault("margin.default_exposure_rate", 5.0)
	v.SetDefault("tax.default_profit_tax_rate", 30.0)

	v.SetDefault("trade.default_symbol", "NIFTY")
	v.SetDefault("trade.default_lot_size", 50)
	v.SetDefault("trade.default_quantity", 1)
	v.SetDefault("trade.default_strike", 24900.0)

	v.SetDefault("pricing.base", 150.50)
	v.SetDefault("pricing.jitter", 5.0)
	v.SetDefault("pricing.latency_ms", 1500)
	v.SetDefault("pricing.timeout_ms", 10000)

	v.SetDefault("ui.color_enabled", true)

	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.console", true)
	v.SetDefault("logging.file", true)
	v.SetDefault("logging.max_size_mb", 100)
	v.SetDefault("logging.max_backups", 7)
	v.SetDefault("logging.max_age_days", 30)
}

func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv("FNO_CALC_BROKERAGE"); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			cfg.Fees.BrokeragePerOrder = f
		}
	}
	if v := os.Getenv("FNO_CALC_GST_RATE"); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			cfg.Fees.GSTRate = f
		}
	}
	if v := os.Getenv("FNO_CALC_PROFIT_TAX_RATE"); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			cfg.Tax.DefaultProfitTaxRate = f
		}
	}
	if v := os.Getenv("NO_COLOR"); v != "" {
		cfg.UI.ColorEnabled = false
	}
}

// Validate checks the configuration for consistency.
func (c *Config) Validate() error {
	if c.Fees.BrokeragePerOrder < 0 {
		return apperrors.Wrapf(apperrors.ErrConfigInvalid, "fees.brokerage_per_order %.2f is negative", c.Fees.BrokeragePerOrder)
	}
	if c.Fees.GSTRate < 0 || c.Fees.GSTRate > 1 {
		return apperrors.Wrapf(apperrors.ErrConfigInvalid, "fees.gst_rate %.4f outside [0,1]", c.Fees.GSTRate)
	}
	for _, r := range []float64{
		c.Fees.SEBITurnoverRate,
		c.Fees.Options.BuyStampDuty, c.Fees.Options.SellSTT, c.Fees.Options.ExchangeCharge,
		c.Fees.Futures.BuyStampDuty, c.Fees.Futures.SellSTT, c.Fees.Futures.ExchangeCharge,
	} {
		if r < 0 || r > 1 {
			return apperrors.Wrapf(apperrors.ErrConfigInvalid, "turnover rate %.6f outside [0,1]", r)
		}
	}
	for _, p := range []float64{c.Margin.DefaultInitialRate, c.Margin.DefaultExposureRate, c.Tax.DefaultProfitTaxRate} {
		if p < 0 || p > 100 {
			return apperrors.Wrapf(apperrors.ErrConfigInvalid, "percentage %.2f outside [0,100]", p)
		}
	}
	if c.Trade.DefaultLotSize <= 0 {
		return apperrors.Wrapf(apperrors.ErrConfigInvalid, "trade.default_lot_size %d must be positive", c.Trade.DefaultLotSize)
	}
	if c.Trade.DefaultQuantity <= 0 {
		return apperrors.Wrapf(apperrors.ErrConfigInvalid, "trade.default_quantity %d must be positive", c.Trade.DefaultQuantity)
	}
	return nil
}

// Schedule builds the trading fee schedule from the configuration.
func (c *Config) Schedule() trading.Schedule {
	s := trading.Schedule{
		BrokeragePerOrder: c.Fees.BrokeragePerOrder,
		GSTRate:           c.Fees.GSTRate,
		SEBITurnoverRate:  c.Fees.SEBITurnoverRate,
	}
	s.SetLegRates(models.InstrumentOptions, models.OrderSideBuy, trading.LegRates{
		StampDuty:      c.Fees.Options.BuyStampDuty,
		ExchangeCharge: c.Fees.Options.ExchangeCharge,
	})
	s.SetLegRates(models.InstrumentOptions, models.OrderSideSell, trading.LegRates{
		STT:            c.Fees.Options.SellSTT,
		ExchangeCharge: c.Fees.Options.ExchangeCharge,
	})
	s.SetLegRates(models.InstrumentFutures, models.OrderSideBuy, trading.LegRates{
		StampDuty:      c.Fees.Futures.BuyStampDuty,
		ExchangeCharge: c.Fees.Futures.ExchangeCharge,
	})
	s.SetLegRates(models.InstrumentFutures, models.OrderSideSell, trading.LegRates{
		STT:            c.Fees.Futures.SellSTT,
		ExchangeCharge: c.Fees.Futures.ExchangeCharge,
	})
	return s
}
