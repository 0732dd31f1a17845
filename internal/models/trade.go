package models

// TradeInput holds the fully-typed parameters for a single round-trip
// F&O trade evaluation. It is constructed once per evaluation and never
// mutated afterwards.
type TradeInput struct {
	Instrument InstrumentType
	TradeType  TradeType

	// Contract identity, carried for display only. It has no effect on
	// the computed charges, margin, or P&L.
	Symbol string
	Expiry string
	Strike float64

	EntryPrice float64 // premium/price per unit at position open
	ExitPrice  float64 // premium/price per unit at position close
	Quantity   int     // number of lots
	LotSize    int     // units per lot

	ProfitTaxRate float64 // percent in [0,100], applied to positive net P&L only

	// Margin rates as percent of entry turnover. Relevant for futures
	// and short options; ignored for long options.
	InitialMarginRate  float64
	ExposureMarginRate float64
}

// TotalUnits returns the total number of units traded.
func (t TradeInput) TotalUnits() int {
	return t.Quantity * t.LotSize
}

// ChargeBreakdown is the full transaction-cost breakdown for one leg of
// a trade. All fields are non-negative; TotalCost is the sum of every
// charge component (turnover is the notional, not a charge).
type ChargeBreakdown struct {
	Turnover       float64 `json:"turnover"`
	Brokerage      float64 `json:"brokerage"`
	ExchangeCharge float64 `json:"exchange_charge"`
	SEBICharge     float64 `json:"sebi_charge"`
	GST            float64 `json:"gst"`
	STT            float64 `json:"stt"`
	StampDuty      float64 `json:"stamp_duty"`
	TotalCost      float64 `json:"total_cost"`
}

// MarginResult is the margin required to open a position.
// Total == Initial + Exposure always holds.
type MarginResult struct {
	Total    float64 `json:"total"`
	Initial  float64 `json:"initial"`
	Exposure float64 `json:"exposure"`
}

// TradeResult is the complete outcome of one trade evaluation.
type TradeResult struct {
	BuyCosts  ChargeBreakdown `json:"buy_costs"`
	SellCosts ChargeBreakdown `json:"sell_costs"`

	GrossProfitLoss    float64 `json:"gross_profit_loss"`
	TotalCharges       float64 `json:"total_charges"`
	NetProfitBeforeTax float64 `json:"net_profit_before_tax"`
	TaxOnProfit        float64 `json:"tax_on_profit"`
	FinalNetProfit     float64 `json:"final_net_profit"`

	RequiredMargin MarginResult `json:"required_margin"`
}
