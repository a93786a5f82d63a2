package ratetable

import "github.com/shopspring/decimal"

// Hardcoded fallbacks. Every lookup the raters perform resolves to one
// of these when the loaded table is missing the key (or was never
// loaded at all), so a thin or corrupt table degrades to default
// pricing instead of failing.

var (
	defaultBaseRates = map[string]decimal.Decimal{
		"car":        decimal.NewFromInt(800),
		"suv":        decimal.NewFromInt(1000),
		"truck":      decimal.NewFromInt(1200),
		"motorcycle": decimal.NewFromInt(600),
	}
	// Unknown coverage tiers price as comprehensive.
	defaultCoverageMultipliers = map[string]decimal.Decimal{
		"third_party":            decimal.NewFromFloat(0.8),
		"third_party_fire_theft": decimal.NewFromFloat(1.0),
		"comprehensive":          decimal.NewFromFloat(1.2),
	}
	defaultCoverageMultiplier = decimal.NewFromFloat(1.2)

	defaultVehicleAgeNewBelow = 3
	defaultVehicleAgeMultipliers = map[string]decimal.Decimal{
		"new":    decimal.NewFromFloat(1.3),
		"medium": decimal.NewFromFloat(1.1),
		"older":  decimal.NewFromFloat(0.9),
	}

	defaultLuxuryThreshold = decimal.NewFromInt(50000)
	defaultMidThreshold    = decimal.NewFromInt(25000)
	defaultValueMultipliers = map[string]decimal.Decimal{
		"luxury":   decimal.NewFromFloat(1.4),
		"midrange": decimal.NewFromFloat(1.2),
		"economy":  decimal.NewFromFloat(0.9),
	}

	defaultEngineLargeThreshold = decimal.NewFromFloat(3.0)
	defaultEngineMidThreshold   = decimal.NewFromFloat(2.0)
	defaultEngineMultipliers = map[string]decimal.Decimal{
		"large": decimal.NewFromFloat(1.2),
		"mid":   decimal.NewFromFloat(1.1),
	}

	defaultYoungThreshold      = 25
	defaultYoungAdultThreshold = 30
	defaultSeniorThreshold     = 65
	defaultDriverAgeMultipliers = map[string]decimal.Decimal{
		"young":       decimal.NewFromFloat(1.5),
		"young_adult": decimal.NewFromFloat(1.2),
		"senior":      decimal.NewFromFloat(1.3),
	}

	defaultClaimsPenaltyPerClaim = decimal.NewFromFloat(0.2)
	defaultNoClaimsPerYear       = decimal.NewFromFloat(0.05)
	defaultNoClaimsMax           = decimal.NewFromFloat(0.30)

	defaultMinPremium     = decimal.NewFromInt(200)
	defaultStandardExcess = decimal.NewFromInt(500)

	// Percent of annual premium for short-term cover. Deliberately
	// non-linear: short durations cost disproportionately more per day.
	defaultShortTermRates = map[string]decimal.Decimal{
		"15_days":            decimal.NewFromFloat(12.5),
		"1_month":            decimal.NewFromInt(25),
		"2_months":           decimal.NewFromFloat(37.5),
		"3_months":           decimal.NewFromInt(50),
		"4_months":           decimal.NewFromInt(60),
		"5_months":           decimal.NewFromInt(70),
		"6_months":           decimal.NewFromInt(75),
		"7_months":           decimal.NewFromInt(80),
		"8_months":           decimal.NewFromInt(85),
		"more_than_8_months": decimal.NewFromInt(100),
	}

	defaultDepreciationByAge = map[string]decimal.Decimal{
		"0_to_1": decimal.NewFromInt(10),
		"2":      decimal.NewFromInt(15),
		"3":      decimal.NewFromInt(20),
		"4":      decimal.NewFromInt(25),
		"5":      decimal.NewFromInt(30),
		"6":      decimal.NewFromInt(35),
		"7":      decimal.NewFromInt(40),
		"8":      decimal.NewFromInt(45),
		"9_plus": decimal.NewFromInt(50),
	}

	// Total-loss settlements depreciate 10 points harder, capped at 80.
	defaultTotalLossExtra  = decimal.NewFromInt(10)
	defaultDepreciationCap = decimal.NewFromInt(80)

	defaultPaymentSurcharges = map[string]decimal.Decimal{
		"annual":      decimal.NewFromFloat(1.00),
		"semi_annual": decimal.NewFromFloat(1.02),
		"quarterly":   decimal.NewFromFloat(1.03),
		"monthly":     decimal.NewFromFloat(1.05),
	}

	defaultSectorFactors = map[string]decimal.Decimal{
		"health_hospital":    decimal.NewFromFloat(1.5),
		"health_clinic":      decimal.NewFromFloat(1.3),
		"health_pharmacy":    decimal.NewFromFloat(1.1),
		"tech_software":      decimal.NewFromFloat(1.0),
		"construction_civil": decimal.NewFromFloat(1.8),
		"retail_store":       decimal.NewFromFloat(1.2),
	}
	// Prefix groups cover the ~30 sector codes the exact table omits.
	defaultSectorPrefixFactors = map[string]decimal.Decimal{
		"health_":       decimal.NewFromFloat(1.3),
		"tech_":         decimal.NewFromFloat(1.0),
		"construction_": decimal.NewFromFloat(1.8),
		"retail_":       decimal.NewFromFloat(1.2),
		"wholesale":     decimal.NewFromFloat(1.2),
		"ecommerce":     decimal.NewFromFloat(1.2),
		"services_":     decimal.NewFromFloat(1.1),
	}
	defaultSectorFactor = decimal.NewFromFloat(1.0)

	defaultSizeFactors = map[string]decimal.Decimal{
		"micro":      decimal.NewFromFloat(1.3),
		"small":      decimal.NewFromFloat(1.1),
		"medium":     decimal.NewFromFloat(1.0),
		"large":      decimal.NewFromFloat(0.9),
		"enterprise": decimal.NewFromFloat(0.8),
	}

	defaultRiskFactors = map[string]decimal.Decimal{
		"low":       decimal.NewFromFloat(0.8),
		"medium":    decimal.NewFromFloat(1.0),
		"high":      decimal.NewFromFloat(1.3),
		"very_high": decimal.NewFromFloat(1.6),
	}

	defaultEnvironmentFactors = map[string]decimal.Decimal{
		"office":    decimal.NewFromFloat(0.9),
		"field":     decimal.NewFromFloat(1.4),
		"mixed":     decimal.NewFromFloat(1.1),
		"remote":    decimal.NewFromFloat(0.8),
		"hazardous": decimal.NewFromFloat(1.7),
	}

	defaultCityFactors = map[string]decimal.Decimal{
		"sanaa":      decimal.NewFromFloat(1.0),
		"aden":       decimal.NewFromFloat(1.1),
		"taiz":       decimal.NewFromFloat(1.05),
		"hadhramaut": decimal.NewFromFloat(1.0),
		"hodeidah":   decimal.NewFromFloat(1.0),
		"ibb":        decimal.NewFromFloat(1.0),
	}
	defaultCityFactor = decimal.NewFromFloat(1.0)

	defaultPlanBasePrice = decimal.NewFromInt(1000)
	defaultAdminLoading  = decimal.NewFromFloat(1.15)
	defaultOneFactor     = decimal.NewFromFloat(1.0)
)
