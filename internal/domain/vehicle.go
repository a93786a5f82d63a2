package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// VehicleCategory classifies a vehicle for base-rate lookup.
type VehicleCategory string

const (
	CategoryCar        VehicleCategory = "car"
	CategorySUV        VehicleCategory = "suv"
	CategoryTruck      VehicleCategory = "truck"
	CategoryMotorcycle VehicleCategory = "motorcycle"
)

// KnownVehicleCategories lists the categories with their own base rates.
// Anything else is priced as a car.
var KnownVehicleCategories = []VehicleCategory{
	CategoryCar, CategorySUV, CategoryTruck, CategoryMotorcycle,
}

// IsKnown reports whether the category has its own base rate.
func (c VehicleCategory) IsKnown() bool {
	switch c {
	case CategoryCar, CategorySUV, CategoryTruck, CategoryMotorcycle:
		return true
	}
	return false
}

// CoverageTier is the insurance product level.
type CoverageTier string

const (
	CoverageThirdParty          CoverageTier = "third_party"
	CoverageThirdPartyFireTheft CoverageTier = "third_party_fire_theft"
	CoverageComprehensive       CoverageTier = "comprehensive"
)

// VehicleInput carries everything the vehicle rater needs for one quote.
// It is built fresh per calculation and never mutated by the engine.
type VehicleInput struct {
	Category        VehicleCategory `yaml:"category" json:"category"`
	ManufactureYear int             `yaml:"manufacture_year" json:"manufacture_year"`
	CurrentValue    decimal.Decimal `yaml:"current_value" json:"current_value"`
	EngineSize      decimal.Decimal `yaml:"engine_size" json:"engine_size"` // liters
	Coverage        CoverageTier    `yaml:"coverage" json:"coverage"`
	DriverAge       int             `yaml:"driver_age" json:"driver_age"` // 0 means unspecified, rater defaults to 30
	ClaimsHistory   int             `yaml:"claims_history" json:"claims_history"`
	NoClaimsYears   int             `yaml:"no_claims_years" json:"no_claims_years"`
}

// AgeAt returns the vehicle age in whole years relative to currentYear.
// A future manufacture year yields a negative age; callers decide what
// that means (the rater keeps it in the "new" band).
func (v VehicleInput) AgeAt(currentYear int) int {
	return currentYear - v.ManufactureYear
}

// PremiumBreakdown records every intermediate figure of a vehicle
// premium calculation plus which adjustment rules fired.
type PremiumBreakdown struct {
	BaseRate             decimal.Decimal `yaml:"base_rate" json:"base_rate"`
	CoverageMultiplier   decimal.Decimal `yaml:"coverage_multiplier" json:"coverage_multiplier"`
	AdjustmentMultiplier decimal.Decimal `yaml:"adjustment_multiplier" json:"adjustment_multiplier"`
	NoClaimsDiscountPct  decimal.Decimal `yaml:"no_claims_discount_percent" json:"no_claims_discount_percent"`
	VehicleAge           int             `yaml:"vehicle_age" json:"vehicle_age"`
	Notes                []string        `yaml:"notes" json:"notes"`
}

// PremiumResult is the output of a vehicle premium calculation. All
// monetary fields are rounded to 2 decimal places at construction; the
// engine keeps full precision internally.
type PremiumResult struct {
	QuoteNumber     string           `yaml:"quote_number" json:"quote_number"`
	BasePremium     decimal.Decimal  `yaml:"base_premium" json:"base_premium"`
	AdjustedPremium decimal.Decimal  `yaml:"adjusted_premium" json:"adjusted_premium"`
	DiscountAmount  decimal.Decimal  `yaml:"discount_amount" json:"discount_amount"`
	FinalPremium    decimal.Decimal  `yaml:"final_premium" json:"final_premium"`
	ExcessAmount    decimal.Decimal  `yaml:"excess_amount" json:"excess_amount"`
	Breakdown       PremiumBreakdown `yaml:"breakdown" json:"breakdown"`
	ValidUntil      time.Time        `yaml:"valid_until" json:"valid_until"`
}
