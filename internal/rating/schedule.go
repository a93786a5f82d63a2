package rating

import (
	"github.com/shopspring/decimal"

	"github.com/insrate/insrate/internal/domain"
)

// ExpandPaymentSchedule converts an annual premium into a payment
// cadence. Paying more often costs more: each frequency carries a
// surcharge multiplier on the annual figure, and the per-installment
// amount divides the surcharged total. Unknown frequencies fall back to
// annual.
func (e *Engine) ExpandPaymentSchedule(annualPremium decimal.Decimal, frequency domain.PaymentFrequency) domain.PaymentSchedule {
	switch frequency {
	case domain.PayAnnual, domain.PaySemiAnnual, domain.PayQuarterly, domain.PayMonthly:
	default:
		e.Stats.UnknownFrequency.Add(1)
		e.log().Warnf("unknown payment frequency %q, scheduling annually", frequency)
		frequency = domain.PayAnnual
	}

	surcharge := e.Table.PaymentSurcharge(string(frequency))
	installments := frequency.Installments()

	total := annualPremium.Mul(surcharge)
	perInstallment := total.Div(decimal.NewFromInt(int64(installments)))

	return domain.PaymentSchedule{
		Frequency:      frequency,
		AnnualPremium:  domain.RoundMoney(annualPremium),
		Surcharge:      surcharge,
		TotalPayable:   domain.RoundMoney(total),
		Installments:   installments,
		PerInstallment: domain.RoundMoney(perInstallment),
	}
}
