// Package ratetable holds the pricing policy as data: base rates,
// multipliers, thresholds and step tables driving both rating engines.
// A Table is loaded once from JSON and treated as read-only; every
// lookup has a hardcoded fallback so a sparse or absent table still
// prices every request.
package ratetable

import (
	"strings"

	"github.com/shopspring/decimal"
)

// Table mirrors the rating-table JSON schema. Every key is optional;
// lookup methods substitute the documented fallback for anything
// missing. All methods are nil-safe: a nil *Table behaves like an empty
// one.
type Table struct {
	Version             string                     `json:"version"`
	BaseRates           map[string]decimal.Decimal `json:"base_rates"`
	CoverageMultipliers map[string]decimal.Decimal `json:"coverage_multipliers"`
	VehicleAge          VehicleAgeBands            `json:"vehicle_age"`
	VehicleValueTiers   ValueTiers                 `json:"vehicle_value_tiers"`
	EngineSize          EngineSizeBands            `json:"engine_size_multipliers"`
	DriverAge           DriverAgeBands             `json:"driver_age"`
	ClaimsPenaltyPerClaim *decimal.Decimal         `json:"claims_penalty_per_claim"`
	NoClaims            NoClaimsTerms              `json:"no_claims"`
	MinPremium          *decimal.Decimal           `json:"min_premium"`
	StandardExcess      *decimal.Decimal           `json:"standard_excess"`
	ShortTermRates      map[string]decimal.Decimal `json:"short_term_rates_percent_of_annual"`
	DepreciationByAge   map[string]decimal.Decimal `json:"depreciation_by_age_years_percent"`
	PaymentSurcharges   map[string]decimal.Decimal `json:"payment_frequency_surcharges"`
	Health              HealthTables               `json:"health"`
}

// VehicleAgeBands holds the vehicle-age step thresholds.
type VehicleAgeBands struct {
	NewLessThanYears *int                       `json:"new_less_than_years"`
	Multipliers      map[string]decimal.Decimal `json:"multipliers"`
}

// ValueTiers holds the vehicle-value tier thresholds.
type ValueTiers struct {
	LuxuryThreshold *decimal.Decimal           `json:"luxury_threshold"`
	MidThreshold    *decimal.Decimal           `json:"mid_threshold"`
	Multipliers     map[string]decimal.Decimal `json:"multipliers"`
}

// EngineSizeBands holds the engine-displacement thresholds.
type EngineSizeBands struct {
	LargeThreshold *decimal.Decimal           `json:"large_threshold"`
	MidThreshold   *decimal.Decimal           `json:"mid_threshold"`
	Multipliers    map[string]decimal.Decimal `json:"multipliers"`
}

// DriverAgeBands holds the driver-age thresholds.
type DriverAgeBands struct {
	YoungThreshold      *int                       `json:"young_threshold"`
	YoungAdultThreshold *int                       `json:"young_adult_threshold"`
	SeniorThreshold     *int                       `json:"senior_threshold"`
	Multipliers         map[string]decimal.Decimal `json:"multipliers"`
}

// NoClaimsTerms holds the no-claims bonus accrual rate and cap.
type NoClaimsTerms struct {
	PerYear *decimal.Decimal `json:"per_year"`
	Max     *decimal.Decimal `json:"max"`
}

// SectorLimits bounds the census engine's per-employee premium for one
// sector.
type SectorLimits struct {
	MinPerEmployee decimal.Decimal `json:"min_per_employee"`
	MaxPerEmployee decimal.Decimal `json:"max_per_employee"`
}

// HealthTables carries the group-health factor tables.
type HealthTables struct {
	SectorFactors       map[string]decimal.Decimal `json:"sector_factors"`
	SectorPrefixFactors map[string]decimal.Decimal `json:"sector_prefix_factors"`
	SizeFactors         map[string]decimal.Decimal `json:"size_factors"`
	RiskFactors         map[string]decimal.Decimal `json:"risk_factors"`
	EnvironmentFactors  map[string]decimal.Decimal `json:"environment_factors"`
	CityFactors         map[string]decimal.Decimal `json:"city_factors"`
	SectorLimits        map[string]SectorLimits    `json:"sector_limits"`
	PlanBasePrice       *decimal.Decimal           `json:"plan_base_price_per_employee"`
	AdminLoading        *decimal.Decimal           `json:"admin_loading_multiplier"`
}

func lookup(m map[string]decimal.Decimal, key string, def decimal.Decimal) decimal.Decimal {
	if v, ok := m[key]; ok {
		return v
	}
	return def
}

// BaseRate returns the annual base rate for a vehicle category.
func (t *Table) BaseRate(category string) decimal.Decimal {
	def := lookup(defaultBaseRates, category, defaultBaseRates["car"])
	if t == nil {
		return def
	}
	return lookup(t.BaseRates, category, def)
}

// CoverageMultiplier returns the multiplier for a coverage tier.
func (t *Table) CoverageMultiplier(tier string) decimal.Decimal {
	def := lookup(defaultCoverageMultipliers, tier, defaultCoverageMultiplier)
	if t == nil {
		return def
	}
	return lookup(t.CoverageMultipliers, tier, def)
}

// VehicleAgeNewBelow returns the age (exclusive) under which a vehicle
// counts as new.
func (t *Table) VehicleAgeNewBelow() int {
	if t == nil || t.VehicleAge.NewLessThanYears == nil {
		return defaultVehicleAgeNewBelow
	}
	return *t.VehicleAge.NewLessThanYears
}

// VehicleAgeMultiplier returns the multiplier for an age band
// ("new", "medium", "older").
func (t *Table) VehicleAgeMultiplier(band string) decimal.Decimal {
	def := lookup(defaultVehicleAgeMultipliers, band, defaultOneFactor)
	if t == nil {
		return def
	}
	return lookup(t.VehicleAge.Multipliers, band, def)
}

// LuxuryThreshold returns the value above which a vehicle is luxury.
func (t *Table) LuxuryThreshold() decimal.Decimal {
	if t == nil || t.VehicleValueTiers.LuxuryThreshold == nil {
		return defaultLuxuryThreshold
	}
	return *t.VehicleValueTiers.LuxuryThreshold
}

// MidValueThreshold returns the value above which a vehicle is midrange.
func (t *Table) MidValueThreshold() decimal.Decimal {
	if t == nil || t.VehicleValueTiers.MidThreshold == nil {
		return defaultMidThreshold
	}
	return *t.VehicleValueTiers.MidThreshold
}

// ValueTierMultiplier returns the multiplier for a value tier
// ("luxury", "midrange", "economy").
func (t *Table) ValueTierMultiplier(tier string) decimal.Decimal {
	def := lookup(defaultValueMultipliers, tier, defaultOneFactor)
	if t == nil {
		return def
	}
	return lookup(t.VehicleValueTiers.Multipliers, tier, def)
}

// EngineLargeThreshold returns the displacement at or above which an
// engine is large.
func (t *Table) EngineLargeThreshold() decimal.Decimal {
	if t == nil || t.EngineSize.LargeThreshold == nil {
		return defaultEngineLargeThreshold
	}
	return *t.EngineSize.LargeThreshold
}

// EngineMidThreshold returns the displacement at or above which an
// engine is mid-sized.
func (t *Table) EngineMidThreshold() decimal.Decimal {
	if t == nil || t.EngineSize.MidThreshold == nil {
		return defaultEngineMidThreshold
	}
	return *t.EngineSize.MidThreshold
}

// EngineMultiplier returns the multiplier for an engine band
// ("large", "mid").
func (t *Table) EngineMultiplier(band string) decimal.Decimal {
	def := lookup(defaultEngineMultipliers, band, defaultOneFactor)
	if t == nil {
		return def
	}
	return lookup(t.EngineSize.Multipliers, band, def)
}

// DriverYoungThreshold returns the age below which a driver is young.
func (t *Table) DriverYoungThreshold() int {
	if t == nil || t.DriverAge.YoungThreshold == nil {
		return defaultYoungThreshold
	}
	return *t.DriverAge.YoungThreshold
}

// DriverYoungAdultThreshold returns the age below which a driver is a
// young adult.
func (t *Table) DriverYoungAdultThreshold() int {
	if t == nil || t.DriverAge.YoungAdultThreshold == nil {
		return defaultYoungAdultThreshold
	}
	return *t.DriverAge.YoungAdultThreshold
}

// DriverSeniorThreshold returns the age above which (strictly) a driver
// is senior.
func (t *Table) DriverSeniorThreshold() int {
	if t == nil || t.DriverAge.SeniorThreshold == nil {
		return defaultSeniorThreshold
	}
	return *t.DriverAge.SeniorThreshold
}

// DriverAgeMultiplier returns the multiplier for a driver-age band
// ("young", "young_adult", "senior").
func (t *Table) DriverAgeMultiplier(band string) decimal.Decimal {
	def := lookup(defaultDriverAgeMultipliers, band, defaultOneFactor)
	if t == nil {
		return def
	}
	return lookup(t.DriverAge.Multipliers, band, def)
}

// ClaimsPenalty returns the flat per-claim penalty rate.
func (t *Table) ClaimsPenalty() decimal.Decimal {
	if t == nil || t.ClaimsPenaltyPerClaim == nil {
		return defaultClaimsPenaltyPerClaim
	}
	return *t.ClaimsPenaltyPerClaim
}

// NoClaimsPerYear returns the discount accrued per claim-free year.
func (t *Table) NoClaimsPerYear() decimal.Decimal {
	if t == nil || t.NoClaims.PerYear == nil {
		return defaultNoClaimsPerYear
	}
	return *t.NoClaims.PerYear
}

// NoClaimsMax returns the no-claims discount cap.
func (t *Table) NoClaimsMax() decimal.Decimal {
	if t == nil || t.NoClaims.Max == nil {
		return defaultNoClaimsMax
	}
	return *t.NoClaims.Max
}

// MinimumPremium returns the hard floor on any final premium.
func (t *Table) MinimumPremium() decimal.Decimal {
	if t == nil || t.MinPremium == nil {
		return defaultMinPremium
	}
	return *t.MinPremium
}

// Excess returns the standard flat excess amount.
func (t *Table) Excess() decimal.Decimal {
	if t == nil || t.StandardExcess == nil {
		return defaultStandardExcess
	}
	return *t.StandardExcess
}

// ShortTermPercent resolves a coverage duration in days to the percent
// of the annual premium charged. The step table is non-linear on
// purpose: short cover has a higher per-day cost.
func (t *Table) ShortTermPercent(durationDays int) decimal.Decimal {
	var key string
	switch {
	case durationDays <= 15:
		key = "15_days"
	case durationDays <= 30:
		key = "1_month"
	case durationDays <= 60:
		key = "2_months"
	case durationDays <= 90:
		key = "3_months"
	case durationDays <= 120:
		key = "4_months"
	case durationDays <= 150:
		key = "5_months"
	case durationDays <= 180:
		key = "6_months"
	case durationDays <= 210:
		key = "7_months"
	case durationDays <= 240:
		key = "8_months"
	default:
		key = "more_than_8_months"
	}
	def := defaultShortTermRates[key]
	if t == nil {
		return def
	}
	return lookup(t.ShortTermRates, key, def)
}

// DepreciationPercent resolves a vehicle age to its depreciation
// percentage. Ages of one year or less, including negative ages from
// future manufacture years, share the "0_to_1" band.
func (t *Table) DepreciationPercent(vehicleAge int) decimal.Decimal {
	var key string
	switch {
	case vehicleAge <= 1:
		key = "0_to_1"
	case vehicleAge == 2:
		key = "2"
	case vehicleAge == 3:
		key = "3"
	case vehicleAge == 4:
		key = "4"
	case vehicleAge == 5:
		key = "5"
	case vehicleAge == 6:
		key = "6"
	case vehicleAge == 7:
		key = "7"
	case vehicleAge == 8:
		key = "8"
	default:
		key = "9_plus"
	}
	def := defaultDepreciationByAge[key]
	if t == nil {
		return def
	}
	return lookup(t.DepreciationByAge, key, def)
}

// TotalLossExtraPercent is the additional depreciation applied to
// total-loss settlements.
func (t *Table) TotalLossExtraPercent() decimal.Decimal {
	return defaultTotalLossExtra
}

// DepreciationCapPercent is the absolute maximum depreciation.
func (t *Table) DepreciationCapPercent() decimal.Decimal {
	return defaultDepreciationCap
}

// PaymentSurcharge returns the multiplier applied to the annual premium
// for a payment frequency.
func (t *Table) PaymentSurcharge(frequency string) decimal.Decimal {
	def := lookup(defaultPaymentSurcharges, frequency, defaultPaymentSurcharges["annual"])
	if t == nil {
		return def
	}
	return lookup(t.PaymentSurcharges, frequency, def)
}

// SectorFactor resolves a sector code to its pricing factor: exact
// match first, then the code's prefix group, then the global default.
// The second return reports whether an exact sector entry was found.
func (t *Table) SectorFactor(sector string) (decimal.Decimal, bool) {
	if t != nil {
		if v, ok := t.Health.SectorFactors[sector]; ok {
			return v, true
		}
	}
	if v, ok := defaultSectorFactors[sector]; ok {
		return v, true
	}
	// Prefix heuristic for unlisted sectors.
	prefixes := defaultSectorPrefixFactors
	if t != nil && len(t.Health.SectorPrefixFactors) > 0 {
		prefixes = t.Health.SectorPrefixFactors
	}
	for prefix, v := range prefixes {
		if strings.HasPrefix(sector, prefix) {
			return v, false
		}
	}
	return defaultSectorFactor, false
}

// SizeFactor returns the company-size factor.
func (t *Table) SizeFactor(size string) decimal.Decimal {
	def := lookup(defaultSizeFactors, size, defaultOneFactor)
	if t == nil {
		return def
	}
	return lookup(t.Health.SizeFactors, size, def)
}

// RiskFactor returns the declared-risk-level factor.
func (t *Table) RiskFactor(level string) decimal.Decimal {
	def := lookup(defaultRiskFactors, level, defaultOneFactor)
	if t == nil {
		return def
	}
	return lookup(t.Health.RiskFactors, level, def)
}

// EnvironmentFactor returns the work-environment factor.
func (t *Table) EnvironmentFactor(env string) decimal.Decimal {
	def := lookup(defaultEnvironmentFactors, env, defaultOneFactor)
	if t == nil {
		return def
	}
	return lookup(t.Health.EnvironmentFactors, env, def)
}

// CityFactor returns the location factor; unlisted cities price at 1.0.
func (t *Table) CityFactor(city string) decimal.Decimal {
	def := lookup(defaultCityFactors, city, defaultCityFactor)
	if t == nil {
		return def
	}
	return lookup(t.Health.CityFactors, city, def)
}

// SectorLimitsFor returns the per-employee premium bounds for a sector,
// if the table defines any.
func (t *Table) SectorLimitsFor(sector string) (SectorLimits, bool) {
	if t == nil {
		return SectorLimits{}, false
	}
	l, ok := t.Health.SectorLimits[sector]
	return l, ok
}

// PlanBasePrice returns the fallback per-employee base price used when
// a quote names no coverage plan.
func (t *Table) PlanBasePrice() decimal.Decimal {
	if t == nil || t.Health.PlanBasePrice == nil {
		return defaultPlanBasePrice
	}
	return *t.Health.PlanBasePrice
}

// AdminLoading returns the administrative loading multiplier applied by
// the census engine.
func (t *Table) AdminLoading() decimal.Decimal {
	if t == nil || t.Health.AdminLoading == nil {
		return defaultAdminLoading
	}
	return *t.Health.AdminLoading
}
