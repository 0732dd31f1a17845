package trading

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"fno-calc/internal/models"
)

// Buying an option blocks the full premium and nothing else.
func TestComputeMargin_LongOptions(t *testing.T) {
	m := ComputeMargin(models.InstrumentOptions, models.TradeLong, 150, 1, 50, 10, 5)

	assert.InDelta(t, 7500.0, m.Total, 1e-9)
	assert.InDelta(t, 7500.0, m.Initial, 1e-9)
	assert.Equal(t, 0.0, m.Exposure)
}

func TestComputeMargin_ShortOptions(t *testing.T) {
	m := ComputeMargin(models.InstrumentOptions, models.TradeShort, 100, 2, 50, 10, 5)

	assert.InDelta(t, 1000.0, m.Initial, 1e-9)
	assert.InDelta(t, 500.0, m.Exposure, 1e-9)
	assert.InDelta(t, 1500.0, m.Total, 1e-9)
}

func TestComputeMargin_FuturesBothDirections(t *testing.T) {
	long := ComputeMargin(models.InstrumentFutures, models.TradeLong, 24800, 1, 50, 10, 5)
	short := ComputeMargin(models.InstrumentFutures, models.TradeShort, 24800, 1, 50, 10, 5)

	assert.Equal(t, long, short)
	assert.InDelta(t, 124000.0, long.Initial, 1e-6)
	assert.InDelta(t, 62000.0, long.Exposure, 1e-6)
	assert.InDelta(t, 186000.0, long.Total, 1e-6)
}

// Margin is posted at entry, so the entry price drives turnover even
// for short trades where entry is the opening sell.
func TestComputeMargin_UsesEntryPrice(t *testing.T) {
	a := ComputeMargin(models.InstrumentOptions, models.TradeShort, 100, 1, 50, 10, 5)
	b := ComputeMargin(models.InstrumentOptions, models.TradeShort, 200, 1, 50, 10, 5)

	assert.InDelta(t, 2*a.Total, b.Total, 1e-9)
}

func TestComputeMargin_UnknownInstrumentIsZero(t *testing.T) {
	m := ComputeMargin(models.InstrumentType("EQUITY"), models.TradeLong, 100, 1, 50, 10, 5)
	assert.Equal(t, models.MarginResult{}, m)
}
