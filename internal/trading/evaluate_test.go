package trading

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "fno-calc/internal/errors"
	"fno-calc/internal/models"
)

func longNiftyCall() models.TradeInput {
	return models.TradeInput{
		Instrument:         models.InstrumentOptions,
		TradeType:          models.TradeLong,
		Symbol:             "NIFTY",
		Strike:             24900,
		EntryPrice:         150,
		ExitPrice:          160,
		Quantity:           1,
		LotSize:            50,
		ProfitTaxRate:      30,
		InitialMarginRate:  10,
		ExposureMarginRate: 5,
	}
}

func TestEvaluate_LongOptionsRoundTrip(t *testing.T) {
	e := NewEvaluator(DefaultSchedule())

	result, err := e.Evaluate(longNiftyCall())
	require.NoError(t, err)
	require.NotNil(t, result)

	// Buy leg at entry 150, sell leg at exit 160.
	assert.InDelta(t, 7500.0, result.BuyCosts.Turnover, 1e-9)
	assert.InDelta(t, 0.225, result.BuyCosts.StampDuty, 1e-9)
	assert.InDelta(t, 8000.0, result.SellCosts.Turnover, 1e-9)
	assert.InDelta(t, 8.0, result.SellCosts.STT, 1e-9)

	assert.InDelta(t, 500.0, result.GrossProfitLoss, 1e-9)
	assert.InDelta(t, 61.850277, result.TotalCharges, 1e-9)
	assert.InDelta(t, 438.149723, result.NetProfitBeforeTax, 1e-9)
	assert.InDelta(t, 131.4449169, result.TaxOnProfit, 1e-9)
	assert.InDelta(t, 306.7048061, result.FinalNetProfit, 1e-9)

	// Long option margin is the premium outlay.
	assert.InDelta(t, 7500.0, result.RequiredMargin.Total, 1e-9)
	assert.Equal(t, 0.0, result.RequiredMargin.Exposure)
}

func TestEvaluate_ShortOptionsLegAssignment(t *testing.T) {
	e := NewEvaluator(DefaultSchedule())

	in := models.TradeInput{
		Instrument:         models.InstrumentOptions,
		TradeType:          models.TradeShort,
		EntryPrice:         100,
		ExitPrice:          80,
		Quantity:           2,
		LotSize:            50,
		ProfitTaxRate:      30,
		InitialMarginRate:  10,
		ExposureMarginRate: 5,
	}

	result, err := e.Evaluate(in)
	require.NoError(t, err)

	// Short opens by selling at entry and closes by buying at exit.
	assert.InDelta(t, 10000.0, result.SellCosts.Turnover, 1e-9)
	assert.InDelta(t, 8000.0, result.BuyCosts.Turnover, 1e-9)

	assert.InDelta(t, 2000.0, result.GrossProfitLoss, 1e-9)

	assert.InDelta(t, 1000.0, result.RequiredMargin.Initial, 1e-9)
	assert.InDelta(t, 500.0, result.RequiredMargin.Exposure, 1e-9)
	assert.InDelta(t, 1500.0, result.RequiredMargin.Total, 1e-9)
}

func TestEvaluate_LossIsNeverTaxed(t *testing.T) {
	e := NewEvaluator(DefaultSchedule())

	in := longNiftyCall()
	in.ExitPrice = 140 // losing trade

	result, err := e.Evaluate(in)
	require.NoError(t, err)

	assert.Less(t, result.NetProfitBeforeTax, 0.0)
	assert.Equal(t, 0.0, result.TaxOnProfit)
	assert.Equal(t, result.NetProfitBeforeTax, result.FinalNetProfit)
}

func TestEvaluate_RejectsInvalidInput(t *testing.T) {
	e := NewEvaluator(DefaultSchedule())

	cases := []struct {
		name   string
		mutate func(*models.TradeInput)
	}{
		{"zero entry price", func(in *models.TradeInput) { in.EntryPrice = 0 }},
		{"negative entry price", func(in *models.TradeInput) { in.EntryPrice = -1 }},
		{"zero exit price", func(in *models.TradeInput) { in.ExitPrice = 0 }},
		{"zero quantity", func(in *models.TradeInput) { in.Quantity = 0 }},
		{"zero lot size", func(in *models.TradeInput) { in.LotSize = 0 }},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			in := longNiftyCall()
			tc.mutate(&in)

			result, err := e.Evaluate(in)
			require.Error(t, err)
			assert.Nil(t, result)

			var verr *apperrors.ValidationError
			assert.True(t, apperrors.As(err, &verr))
			assert.True(t, apperrors.Is(err, apperrors.ErrInvalidInput))
		})
	}
}

func TestEvaluate_IsIdempotent(t *testing.T) {
	e := NewEvaluator(DefaultSchedule())
	in := longNiftyCall()

	first, err := e.Evaluate(in)
	require.NoError(t, err)
	second, err := e.Evaluate(in)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}
