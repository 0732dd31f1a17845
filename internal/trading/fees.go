// Package trading implements the F&O cost, margin, and net-profit
// calculations for a single round-trip trade on the NSE.
package trading

import (
	"fno-calc/internal/models"
)

// Regulatory and brokerage constants for the default NSE F&O schedule.
const (
	DefaultBrokeragePerOrder = 20.0     // flat per executed order
	DefaultGSTRate           = 0.18     // on brokerage + exchange + SEBI charges
	DefaultSEBITurnoverRate  = 0.000001 // SEBI turnover fee, all segments
)

// LegRates holds the (instrument, side)-dependent charge rates applied
// to leg turnover. Exactly one of StampDuty (buy) and STT (sell) is
// non-zero for any leg.
type LegRates struct {
	StampDuty      float64
	STT            float64
	ExchangeCharge float64
}

// legKey keys the rate table by instrument and leg side.
type legKey struct {
	Instrument models.InstrumentType
	Side       models.OrderSide
}

// Schedule is a complete F&O fee schedule: the flat and turnover-based
// charges common to every leg, plus the per-(instrument, side) rate table.
type Schedule struct {
	BrokeragePerOrder float64
	GSTRate           float64
	SEBITurnoverRate  float64
	legs              map[legKey]LegRates
}

// DefaultSchedule returns the standard NSE F&O fee schedule.
// Exchange transaction rates are NSE's published premium-turnover rates
// for options and futures; stamp duty and STT per current schedules.
func DefaultSchedule() Schedule {
	s := Schedule{
		BrokeragePerOrder: DefaultBrokeragePerOrder,
		GSTRate:           DefaultGSTRate,
		SEBITurnoverRate:  DefaultSEBITurnoverRate,
		legs:              make(map[legKey]LegRates),
	}
	s.SetLegRates(models.InstrumentOptions, models.OrderSideBuy, LegRates{StampDuty: 0.00003, ExchangeCharge: 0.0003503})
	s.SetLegRates(models.InstrumentOptions, models.OrderSideSell, LegRates{STT: 0.001, ExchangeCharge: 0.0003503})
	s.SetLegRates(models.InstrumentFutures, models.OrderSideBuy, LegRates{StampDuty: 0.00002, ExchangeCharge: 0.000173})
	s.SetLegRates(models.InstrumentFutures, models.OrderSideSell, LegRates{STT: 0.0002, ExchangeCharge: 0.000173})
	return s
}

// SetLegRates overrides the rate entry for an (instrument, side) pair.
func (s *Schedule) SetLegRates(instrument models.InstrumentType, side models.OrderSide, rates LegRates) {
	if s.legs == nil {
		s.legs = make(map[legKey]LegRates)
	}
	s.legs[legKey{Instrument: instrument, Side: side}] = rates
}

// LegRatesFor returns the rate entry for an (instrument, side) pair.
// Unknown pairs get zero rates, which yields a breakdown with only the
// flat brokerage, SEBI fee, and GST.
func (s Schedule) LegRatesFor(instrument models.InstrumentType, side models.OrderSide) LegRates {
	return s.legs[legKey{Instrument: instrument, Side: side}]
}

// ComputeCharges returns the full charge breakdown for one leg of a
// trade. The caller guarantees positive price, quantity, and lot size;
// the computation is deterministic and side-effect free.
//
// GST applies to brokerage, exchange, and SEBI charges only, never to
// STT or stamp duty.
func (s Schedule) ComputeCharges(side models.OrderSide, price float64, quantity, lotSize int, instrument models.InstrumentType) models.ChargeBreakdown {
	turnover := price * float64(quantity) * float64(lotSize)

	rates := s.LegRatesFor(instrument, side)

	brokerage := s.BrokeragePerOrder
	sebiCharge := turnover * s.SEBITurnoverRate
	exchangeCharge := turnover * rates.ExchangeCharge
	stampDuty := turnover * rates.StampDuty
	stt := turnover * rates.STT
	gst := (brokerage + exchangeCharge + sebiCharge) * s.GSTRate

	return models.ChargeBreakdown{
		Turnover:       turnover,
		Brokerage:      brokerage,
		ExchangeCharge: exchangeCharge,
		SEBICharge:     sebiCharge,
		GST:            gst,
		STT:            stt,
		StampDuty:      stampDuty,
		TotalCost:      brokerage + stt + exchangeCharge + sebiCharge + gst + stampDuty,
	}
}
