package rating

import (
	"github.com/shopspring/decimal"

	"github.com/insrate/insrate/internal/domain"
)

var hundred = decimal.NewFromInt(100)

// CalculateShortTermPremium converts an annual premium into the price
// of cover for durationDays. The mapping is a step table, not linear
// proration: 30 days costs 25% of annual, not 1/12th.
func (e *Engine) CalculateShortTermPremium(annualPremium decimal.Decimal, durationDays int) decimal.Decimal {
	percent := e.Table.ShortTermPercent(durationDays)
	return domain.RoundMoney(annualPremium.Mul(percent.Div(hundred)))
}
