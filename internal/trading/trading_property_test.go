package trading

import (
	"testing"
	"time"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"

	"fno-calc/internal/models"
)

func defaultTestParameters() *gopter.TestParameters {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 200
	parameters.Rng.Seed(time.Now().UnixNano())
	return parameters
}

// Property: every charge component is non-negative for any valid leg,
// and the total cost is exactly the sum of its components.
func TestProperty_ChargeBreakdownNonNegativeAndAdditive(t *testing.T) {
	properties := gopter.NewProperties(defaultTestParameters())

	schedule := DefaultSchedule()

	properties.Property("charges are non-negative and sum to total", prop.ForAll(
		func(price float64, quantity, lotSize int, buySide bool, options bool) bool {
			side := models.OrderSideSell
			if buySide {
				side = models.OrderSideBuy
			}
			instrument := models.InstrumentFutures
			if options {
				instrument = models.InstrumentOptions
			}

			b := schedule.ComputeCharges(side, price, quantity, lotSize, instrument)

			for _, v := range []float64{b.Turnover, b.Brokerage, b.ExchangeCharge, b.SEBICharge, b.GST, b.STT, b.StampDuty, b.TotalCost} {
				if v < 0 {
					return false
				}
			}

			// Same components, same addition order as the implementation.
			sum := b.Brokerage + b.STT + b.ExchangeCharge + b.SEBICharge + b.GST + b.StampDuty
			return b.TotalCost == sum
		},
		gen.Float64Range(0.05, 30000),
		gen.IntRange(1, 500),
		gen.IntRange(1, 1000),
		gen.Bool(),
		gen.Bool(),
	))

	properties.TestingRun(t)
}

// Property: exactly one of stamp duty (buy) and STT (sell) is charged
// on any leg under the default schedule.
func TestProperty_OneOfStampDutyOrSTT(t *testing.T) {
	properties := gopter.NewProperties(defaultTestParameters())

	schedule := DefaultSchedule()

	properties.Property("buy legs pay stamp duty, sell legs pay STT", prop.ForAll(
		func(price float64, quantity int, options bool) bool {
			instrument := models.InstrumentFutures
			if options {
				instrument = models.InstrumentOptions
			}

			buy := schedule.ComputeCharges(models.OrderSideBuy, price, quantity, 50, instrument)
			sell := schedule.ComputeCharges(models.OrderSideSell, price, quantity, 50, instrument)

			return buy.STT == 0 && buy.StampDuty > 0 &&
				sell.StampDuty == 0 && sell.STT > 0
		},
		gen.Float64Range(0.05, 30000),
		gen.IntRange(1, 500),
		gen.Bool(),
	))

	properties.TestingRun(t)
}

// Property: total margin always equals initial plus exposure, and long
// options block exactly the premium with zero exposure.
func TestProperty_MarginAdditivity(t *testing.T) {
	properties := gopter.NewProperties(defaultTestParameters())

	properties.Property("total == initial + exposure", prop.ForAll(
		func(entry float64, quantity, lotSize int, initialRate, exposureRate float64, options, long bool) bool {
			instrument := models.InstrumentFutures
			if options {
				instrument = models.InstrumentOptions
			}
			tradeType := models.TradeShort
			if long {
				tradeType = models.TradeLong
			}

			m := ComputeMargin(instrument, tradeType, entry, quantity, lotSize, initialRate, exposureRate)

			if m.Total != m.Initial+m.Exposure {
				return false
			}
			if instrument == models.InstrumentOptions && tradeType == models.TradeLong {
				premium := entry * float64(quantity) * float64(lotSize)
				return m.Exposure == 0 && m.Initial == premium
			}
			return m.Initial >= 0 && m.Exposure >= 0
		},
		gen.Float64Range(0.05, 30000),
		gen.IntRange(1, 500),
		gen.IntRange(1, 1000),
		gen.Float64Range(0, 100),
		gen.Float64Range(0, 100),
		gen.Bool(),
		gen.Bool(),
	))

	properties.TestingRun(t)
}

// Property: tax is charged only on profits, and the final net is
// always net-before-tax minus tax.
func TestProperty_TaxOnlyOnProfit(t *testing.T) {
	properties := gopter.NewProperties(defaultTestParameters())

	evaluator := NewEvaluator(DefaultSchedule())

	properties.Property("losses are never taxed", prop.ForAll(
		func(entry, exit float64, quantity int, taxRate float64, long bool) bool {
			tradeType := models.TradeShort
			if long {
				tradeType = models.TradeLong
			}

			result, err := evaluator.Evaluate(models.TradeInput{
				Instrument:         models.InstrumentOptions,
				TradeType:          tradeType,
				EntryPrice:         entry,
				ExitPrice:          exit,
				Quantity:           quantity,
				LotSize:            50,
				ProfitTaxRate:      taxRate,
				InitialMarginRate:  10,
				ExposureMarginRate: 5,
			})
			if err != nil {
				return false
			}

			if result.NetProfitBeforeTax <= 0 {
				return result.TaxOnProfit == 0 &&
					result.FinalNetProfit == result.NetProfitBeforeTax
			}
			want := result.NetProfitBeforeTax * (taxRate / 100)
			return result.TaxOnProfit == want &&
				result.FinalNetProfit == result.NetProfitBeforeTax-result.TaxOnProfit
		},
		gen.Float64Range(0.05, 5000),
		gen.Float64Range(0.05, 5000),
		gen.IntRange(1, 100),
		gen.Float64Range(0, 100),
		gen.Bool(),
	))

	properties.TestingRun(t)
}

// Property: any non-positive price or quantity is rejected before any
// computation happens.
func TestProperty_ValidationGate(t *testing.T) {
	properties := gopter.NewProperties(defaultTestParameters())

	evaluator := NewEvaluator(DefaultSchedule())

	properties.Property("non-positive inputs are rejected", prop.ForAll(
		func(entry, exit float64, quantity int) bool {
			valid := entry > 0 && exit > 0 && quantity > 0

			result, err := evaluator.Evaluate(models.TradeInput{
				Instrument:    models.InstrumentOptions,
				TradeType:     models.TradeLong,
				EntryPrice:    entry,
				ExitPrice:     exit,
				Quantity:      quantity,
				LotSize:       50,
				ProfitTaxRate: 30,
			})

			if valid {
				return err == nil && result != nil
			}
			return err != nil && result == nil
		},
		gen.Float64Range(-100, 100),
		gen.Float64Range(-100, 100),
		gen.IntRange(-10, 10),
	))

	properties.TestingRun(t)
}
