package domain

import "github.com/shopspring/decimal"

// LossType distinguishes partial damage from a write-off.
type LossType string

const (
	LossPartial LossType = "partial"
	LossTotal   LossType = "total"
)

// DepreciationResult is the outcome of a claim settlement valuation.
// DepreciationPercent is expressed in whole percentage points (e.g. 50
// means 50%) and never exceeds 80 regardless of age or loss type.
type DepreciationResult struct {
	OriginalValue       decimal.Decimal `yaml:"original_value" json:"original_value"`
	VehicleAge          int             `yaml:"vehicle_age_years" json:"vehicle_age_years"`
	DepreciationPercent decimal.Decimal `yaml:"depreciation_percent" json:"depreciation_percent"`
	DepreciatedValue    decimal.Decimal `yaml:"depreciated_value" json:"depreciated_value"`
	ExcessDeducted      decimal.Decimal `yaml:"excess_deducted" json:"excess_deducted"`
	SettlementValue     decimal.Decimal `yaml:"settlement_value" json:"settlement_value"`
}
