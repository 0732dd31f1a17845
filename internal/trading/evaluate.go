package trading

import (
	apperrors "fno-calc/internal/errors"
	"fno-calc/internal/models"
)

// Evaluator computes the complete cost and net-profit picture for a
// single round-trip trade. It holds only the fee schedule; every
// evaluation is a pure function of its input and safe to run
// concurrently.
type Evaluator struct {
	schedule Schedule
}

// NewEvaluator creates an evaluator using the given fee schedule.
func NewEvaluator(schedule Schedule) *Evaluator {
	return &Evaluator{schedule: schedule}
}

// Schedule returns the fee schedule the evaluator applies.
func (e *Evaluator) Schedule() Schedule {
	return e.schedule
}

// Evaluate validates the input and returns the full trade result:
// per-leg charges, gross and net P&L, profit tax, and required margin.
// Invalid prices or quantities produce a ValidationError and no result.
func (e *Evaluator) Evaluate(in models.TradeInput) (*models.TradeResult, error) {
	if err := validate(in); err != nil {
		return nil, err
	}

	// Long opens with a buy at entry and closes with a sell at exit;
	// short opens with a sell at entry and closes with a buy at exit.
	buyLegPrice, sellLegPrice := in.EntryPrice, in.ExitPrice
	if in.TradeType == models.TradeShort {
		buyLegPrice, sellLegPrice = in.ExitPrice, in.EntryPrice
	}

	buyCosts := e.schedule.ComputeCharges(models.OrderSideBuy, buyLegPrice, in.Quantity, in.LotSize, in.Instrument)
	sellCosts := e.schedule.ComputeCharges(models.OrderSideSell, sellLegPrice, in.Quantity, in.LotSize, in.Instrument)

	units := float64(in.TotalUnits())
	grossProfitLoss := (in.ExitPrice - in.EntryPrice) * units
	if in.TradeType == models.TradeShort {
		grossProfitLoss = (in.EntryPrice - in.ExitPrice) * units
	}

	totalCharges := buyCosts.TotalCost + sellCosts.TotalCost
	netProfitBeforeTax := grossProfitLoss - totalCharges

	requiredMargin := ComputeMargin(in.Instrument, in.TradeType, in.EntryPrice, in.Quantity, in.LotSize, in.InitialMarginRate, in.ExposureMarginRate)

	// Only profits are taxed; losses carry no offset in this model.
	taxOnProfit := 0.0
	if netProfitBeforeTax > 0 {
		taxOnProfit = netProfitBeforeTax * (in.ProfitTaxRate / 100)
	}

	return &models.TradeResult{
		BuyCosts:           buyCosts,
		SellCosts:          sellCosts,
		GrossProfitLoss:    grossProfitLoss,
		TotalCharges:       totalCharges,
		NetProfitBeforeTax: netProfitBeforeTax,
		TaxOnProfit:        taxOnProfit,
		FinalNetProfit:     netProfitBeforeTax - taxOnProfit,
		RequiredMargin:     requiredMargin,
	}, nil
}

func validate(in models.TradeInput) error {
	switch {
	case in.EntryPrice <= 0:
		return apperrors.NewValidationError("entry_price", in.EntryPrice, "must be positive")
	case in.ExitPrice <= 0:
		return apperrors.NewValidationError("exit_price", in.ExitPrice, "must be positive")
	case in.Quantity <= 0:
		return apperrors.NewValidationError("quantity", in.Quantity, "must be positive")
	case in.TotalUnits() <= 0:
		return apperrors.NewValidationError("lot_size", in.LotSize, "total units must be positive")
	}
	return nil
}
