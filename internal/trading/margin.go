package trading

import (
	"fno-calc/internal/models"
)

// ComputeMargin returns the margin required to open the position.
//
// Long options need no leveraged margin: the full premium outlay is the
// initial margin and the exposure component is zero. Short options and
// futures post initial and exposure margin as a percentage of turnover.
// Turnover always uses the entry price, even for short trades where the
// position opens with a sell: margin is posted when the position is
// opened, not marked to the closing price.
func ComputeMargin(instrument models.InstrumentType, tradeType models.TradeType, entryPrice float64, quantity, lotSize int, initialRate, exposureRate float64) models.MarginResult {
	turnover := entryPrice * float64(quantity) * float64(lotSize)

	switch {
	case instrument == models.InstrumentOptions && tradeType == models.TradeLong:
		return models.MarginResult{Total: turnover, Initial: turnover, Exposure: 0}
	case instrument == models.InstrumentOptions && tradeType == models.TradeShort,
		instrument == models.InstrumentFutures:
		initial := turnover * (initialRate / 100)
		exposure := turnover * (exposureRate / 100)
		return models.MarginResult{Total: initial + exposure, Initial: initial, Exposure: exposure}
	default:
		// Unreachable with the closed enums, kept as a safe fallback.
		return models.MarginResult{}
	}
}
