package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// ShortTermQuote is an annual premium prorated to a short coverage
// period.
type ShortTermQuote struct {
	DurationDays  int             `yaml:"duration_days" json:"duration_days"`
	AnnualPremium decimal.Decimal `yaml:"annual_premium" json:"annual_premium"`
	Premium       decimal.Decimal `yaml:"premium" json:"premium"`
}

// QuoteReport aggregates whatever was quoted in one run for the output
// formatters. Sections are nil when not requested.
type QuoteReport struct {
	GeneratedAt  time.Time            `yaml:"generated_at" json:"generated_at"`
	Vehicle      *PremiumResult       `yaml:"vehicle,omitempty" json:"vehicle,omitempty"`
	ShortTerm    *ShortTermQuote      `yaml:"short_term,omitempty" json:"short_term,omitempty"`
	Schedule     *PaymentSchedule     `yaml:"payment_schedule,omitempty" json:"payment_schedule,omitempty"`
	Health       *HealthPremiumResult `yaml:"health,omitempty" json:"health,omitempty"`
	Group        *GroupPremiumResult  `yaml:"group,omitempty" json:"group,omitempty"`
	Depreciation *DepreciationResult  `yaml:"depreciation,omitempty" json:"depreciation,omitempty"`
}
