package models

import (
	"strconv"
	"strings"

	apperrors "fno-calc/internal/errors"
)

// RawTradeInput holds the untyped form fields as collected from the
// user. All coercion from text to semantic types happens in
// ParseTradeInput; nothing downstream ever sees a raw string.
type RawTradeInput struct {
	Instrument string
	TradeType  string

	Symbol string
	Expiry string
	Strike string

	EntryPrice string
	ExitPrice  string
	Quantity   string
	LotSize    string

	ProfitTaxRate      string
	InitialMarginRate  string
	ExposureMarginRate string
}

// ParseTradeInput coerces a RawTradeInput into a typed TradeInput.
// It returns a ParseError for malformed values; positivity of prices
// and quantities is checked later by the evaluator, not here.
func ParseTradeInput(raw RawTradeInput) (TradeInput, error) {
	var in TradeInput

	instrument, err := ParseInstrumentType(raw.Instrument)
	if err != nil {
		return in, apperrors.NewParseError("instrument", raw.Instrument, err)
	}
	tradeType, err := ParseTradeType(raw.TradeType)
	if err != nil {
		return in, apperrors.NewParseError("trade_type", raw.TradeType, err)
	}

	strike, err := parseFloat("strike", raw.Strike, 0)
	if err != nil {
		return in, err
	}
	entry, err := parseFloat("entry_price", raw.EntryPrice, 0)
	if err != nil {
		return in, err
	}
	exit, err := parseFloat("exit_price", raw.ExitPrice, 0)
	if err != nil {
		return in, err
	}
	qty, err := parseInt("quantity", raw.Quantity, 1)
	if err != nil {
		return in, err
	}
	lotSize, err := parseInt("lot_size", raw.LotSize, 1)
	if err != nil {
		return in, err
	}
	taxRate, err := parsePercent("profit_tax_rate", raw.ProfitTaxRate, 0)
	if err != nil {
		return in, err
	}
	initialRate, err := parsePercent("initial_margin_rate", raw.InitialMarginRate, 0)
	if err != nil {
		return in, err
	}
	exposureRate, err := parsePercent("exposure_margin_rate", raw.ExposureMarginRate, 0)
	if err != nil {
		return in, err
	}

	return TradeInput{
		Instrument:         instrument,
		TradeType:          tradeType,
		Symbol:             strings.ToUpper(strings.TrimSpace(raw.Symbol)),
		Expiry:             strings.TrimSpace(raw.Expiry),
		Strike:             strike,
		EntryPrice:         entry,
		ExitPrice:          exit,
		Quantity:           qty,
		LotSize:            lotSize,
		ProfitTaxRate:      taxRate,
		InitialMarginRate:  initialRate,
		ExposureMarginRate: exposureRate,
	}, nil
}

func parseFloat(field, s string, def float64) (float64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return def, nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, apperrors.NewParseError(field, s, err)
	}
	return v, nil
}

func parseInt(field, s string, def int) (int, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return def, nil
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		return 0, apperrors.NewParseError(field, s, err)
	}
	return v, nil
}

func parsePercent(field, s string, def float64) (float64, error) {
	v, err := parseFloat(field, s, def)
	if err != nil {
		return 0, err
	}
	if v < 0 || v > 100 {
		return 0, apperrors.NewParseError(field, s, apperrors.ErrInvalidInput)
	}
	return v, nil
}
