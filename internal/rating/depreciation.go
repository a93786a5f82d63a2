package rating

import (
	"github.com/shopspring/decimal"

	"github.com/insrate/insrate/internal/domain"
)

// CalculateDepreciation values a claim settlement: age-based
// depreciation of the vehicle's current value, a harder cut for total
// losses, and the policy excess deducted from the payout. Depreciation
// never exceeds 80% and the settlement never goes negative.
func (e *Engine) CalculateDepreciation(vehicleValue decimal.Decimal, vehicleYear int, lossType domain.LossType) domain.DepreciationResult {
	t := e.Table

	switch lossType {
	case domain.LossPartial, domain.LossTotal:
	default:
		e.Stats.UnknownLossType.Add(1)
		e.log().Warnf("unknown loss type %q, settling as partial", lossType)
		lossType = domain.LossPartial
	}

	vehicleAge := e.currentYear() - vehicleYear
	depPercent := t.DepreciationPercent(vehicleAge)

	if lossType == domain.LossTotal {
		depPercent = depPercent.Add(t.TotalLossExtraPercent())
	}
	// 80% absolute maximum regardless of age or loss type, so a table
	// override above the cap still cannot wipe out a settlement.
	if capPct := t.DepreciationCapPercent(); depPercent.GreaterThan(capPct) {
		depPercent = capPct
	}

	depreciatedValue := vehicleValue.Mul(one.Sub(depPercent.Div(hundred)))

	excess := t.Excess()
	settlement := depreciatedValue.Sub(excess)
	if settlement.LessThan(decimal.Zero) {
		settlement = decimal.Zero
	}

	return domain.DepreciationResult{
		OriginalValue:       domain.RoundMoney(vehicleValue),
		VehicleAge:          vehicleAge,
		DepreciationPercent: depPercent,
		DepreciatedValue:    domain.RoundMoney(depreciatedValue),
		ExcessDeducted:      domain.RoundMoney(excess),
		SettlementValue:     domain.RoundMoney(settlement),
	}
}
