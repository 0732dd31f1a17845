// Package models provides domain models for the F&O cost calculator.
package models

import (
	"fmt"
	"strings"
)

// InstrumentType represents an F&O instrument category.
type InstrumentType string

const (
	InstrumentOptions InstrumentType = "OPTIONS"
	InstrumentFutures InstrumentType = "FUTURES"
)

// TradeType represents the direction of a round-trip trade.
type TradeType string

const (
	TradeLong  TradeType = "LONG"  // buy first, sell to close
	TradeShort TradeType = "SHORT" // sell first, buy to close
)

// OrderSide represents the side of a single leg.
type OrderSide string

const (
	OrderSideBuy  OrderSide = "BUY"
	OrderSideSell OrderSide = "SELL"
)

// ParseInstrumentType parses an instrument type string (case-insensitive).
func ParseInstrumentType(s string) (InstrumentType, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "OPTIONS", "OPTION", "OPT":
		return InstrumentOptions, nil
	case "FUTURES", "FUTURE", "FUT":
		return InstrumentFutures, nil
	default:
		return "", fmt.Errorf("unknown instrument type: %q", s)
	}
}

// ParseTradeType parses a trade type string (case-insensitive).
func ParseTradeType(s string) (TradeType, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "LONG", "BUY":
		return TradeLong, nil
	case "SHORT", "SELL":
		return TradeShort, nil
	default:
		return "", fmt.Errorf("unknown trade type: %q", s)
	}
}
