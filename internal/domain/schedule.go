package domain

import "github.com/shopspring/decimal"

// PaymentFrequency is how often premium installments fall due.
type PaymentFrequency string

const (
	PayAnnual     PaymentFrequency = "annual"
	PaySemiAnnual PaymentFrequency = "semi_annual"
	PayQuarterly  PaymentFrequency = "quarterly"
	PayMonthly    PaymentFrequency = "monthly"
)

// Installments returns the number of payments per year for the
// frequency. Unknown frequencies pay annually.
func (f PaymentFrequency) Installments() int {
	switch f {
	case PaySemiAnnual:
		return 2
	case PayQuarterly:
		return 4
	case PayMonthly:
		return 12
	default:
		return 1
	}
}

// PaymentSchedule expands an annual premium into a payment cadence.
// TotalPayable includes the frequency surcharge; PerInstallment is the
// rounded amount due each period.
type PaymentSchedule struct {
	Frequency      PaymentFrequency `yaml:"frequency" json:"frequency"`
	AnnualPremium  decimal.Decimal  `yaml:"annual_premium" json:"annual_premium"`
	Surcharge      decimal.Decimal  `yaml:"surcharge_multiplier" json:"surcharge_multiplier"`
	TotalPayable   decimal.Decimal  `yaml:"total_payable" json:"total_payable"`
	Installments   int              `yaml:"installments" json:"installments"`
	PerInstallment decimal.Decimal  `yaml:"per_installment" json:"per_installment"`
}
