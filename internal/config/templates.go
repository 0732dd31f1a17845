package config

import (
	"os"
	"path/filepath"
)

const configTemplate = `# NSE F&O Cost Calculator Configuration

[fees]
# Flat brokerage per executed order (discount broker F&O rate)
brokerage_per_order = 20.0
# GST on brokerage + exchange + SEBI charges
gst_rate = 0.18
# SEBI turnover fee (all segments)
sebi_turnover_rate = 0.000001

[fees.options]
# Stamp duty on the buy leg, STT on the sell leg, both on turnover
buy_stamp_duty = 0.00003
sell_stt = 0.001
# NSE exchange transaction charge on premium turnover
exchange_charge = 0.0003503

[fees.futures]
buy_stamp_duty = 0.00002
sell_stt = 0.0002
exchange_charge = 0.000173

[margin]
# Defaults for futures and short options, as percent of entry turnover
default_initial_rate = 10.0
default_exposure_rate = 5.0

[tax]
# Tax applied to positive net P&L only
default_profit_tax_rate = 30.0

[trade]
default_symbol = "NIFTY"
default_lot_size = 50
default_quantity = 1
default_strike = 24900.0

[pricing]
# Simulated quote source: base premium, max jitter, simulated latency
base = 150.50
jitter = 5.0
latency_ms = 1500
timeout_ms = 10000

[ui]
# Enable colored output
color_enabled = true

[logging]
# Log level: debug, info, warn, error
level = "info"
console = true
file = true
max_size_mb = 100
max_backups = 7
max_age_days = 30
`

// writeTemplateConfig writes the default config template so the fee
// schedule is visible and editable. Existing files are never touched.
func writeTemplateConfig(configDir string) error {
	if err := os.MkdirAll(configDir, 0755); err != nil {
		return err
	}

	path := filepath.Join(configDir, "config.toml")
	if _, err := os.Stat(path); err == nil {
		return nil
	}

	return os.WriteFile(path, []byte(configTemplate), 0644)
}
