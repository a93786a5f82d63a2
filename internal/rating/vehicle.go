package rating

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/insrate/insrate/internal/domain"
)

// vehicleAdjustments is the resolved output of the vehicle factor
// chain. The multiplier is quantized to 4 decimal places; the no-claims
// discount stays out of the multiplicative chain and is applied
// subtractively by the compositor.
type vehicleAdjustments struct {
	multiplier      decimal.Decimal
	discountPercent decimal.Decimal
	vehicleAge      int
	notes           []string
}

var one = decimal.NewFromInt(1)

// resolveVehicleFactors maps each vehicle and driver attribute to its
// multiplier independently. Evaluation order only affects the order of
// the explanatory notes; the product is commutative.
func (e *Engine) resolveVehicleFactors(in domain.VehicleInput) vehicleAdjustments {
	t := e.Table
	multiplier := one
	notes := make([]string, 0, 6)

	// Vehicle age. A future manufacture year gives a negative age,
	// which stays in the "new" band.
	vehicleAge := in.AgeAt(e.currentYear())
	switch {
	case vehicleAge < t.VehicleAgeNewBelow():
		multiplier = multiplier.Mul(t.VehicleAgeMultiplier("new"))
		notes = append(notes, "new_vehicle_age")
	case vehicleAge < 7:
		multiplier = multiplier.Mul(t.VehicleAgeMultiplier("medium"))
		notes = append(notes, "medium_vehicle_age")
	default:
		multiplier = multiplier.Mul(t.VehicleAgeMultiplier("older"))
		notes = append(notes, "older_vehicle_age")
	}

	// Vehicle value tier.
	switch {
	case in.CurrentValue.GreaterThan(t.LuxuryThreshold()):
		multiplier = multiplier.Mul(t.ValueTierMultiplier("luxury"))
		notes = append(notes, "luxury_vehicle")
	case in.CurrentValue.GreaterThan(t.MidValueThreshold()):
		multiplier = multiplier.Mul(t.ValueTierMultiplier("midrange"))
		notes = append(notes, "midrange_vehicle")
	default:
		multiplier = multiplier.Mul(t.ValueTierMultiplier("economy"))
		notes = append(notes, "economy_vehicle")
	}

	// Engine displacement. Small engines carry no adjustment and no note.
	switch {
	case in.EngineSize.GreaterThanOrEqual(t.EngineLargeThreshold()):
		multiplier = multiplier.Mul(t.EngineMultiplier("large"))
		notes = append(notes, "large_engine")
	case in.EngineSize.GreaterThanOrEqual(t.EngineMidThreshold()):
		multiplier = multiplier.Mul(t.EngineMultiplier("mid"))
		notes = append(notes, "mid_engine")
	}

	// Driver age. Zero means unspecified and defaults to 30. A driver
	// exactly at the senior threshold is not senior (strict >).
	driverAge := in.DriverAge
	if driverAge == 0 {
		driverAge = 30
	}
	switch {
	case driverAge < t.DriverYoungThreshold():
		multiplier = multiplier.Mul(t.DriverAgeMultiplier("young"))
		notes = append(notes, "young_driver")
	case driverAge < t.DriverYoungAdultThreshold():
		multiplier = multiplier.Mul(t.DriverAgeMultiplier("young_adult"))
		notes = append(notes, "young_adult_driver")
	case driverAge > t.DriverSeniorThreshold():
		multiplier = multiplier.Mul(t.DriverAgeMultiplier("senior"))
		notes = append(notes, "senior_driver")
	}

	// Claims history penalty. Zero claims contributes nothing.
	if in.ClaimsHistory > 0 {
		penalty := one.Add(t.ClaimsPenalty().Mul(decimal.NewFromInt(int64(in.ClaimsHistory))))
		multiplier = multiplier.Mul(penalty)
		notes = append(notes, fmt.Sprintf("claims_penalty_%d", in.ClaimsHistory))
	}

	// No-claims bonus: a discount percentage, not a multiplier.
	discount := t.NoClaimsPerYear().Mul(decimal.NewFromInt(int64(in.NoClaimsYears)))
	if discount.GreaterThan(t.NoClaimsMax()) {
		discount = t.NoClaimsMax()
	}
	if discount.GreaterThan(decimal.Zero) {
		notes = append(notes, fmt.Sprintf("no_claims_discount_%s%%",
			discount.Mul(decimal.NewFromInt(100)).StringFixed(0)))
	}

	return vehicleAdjustments{
		multiplier:      domain.RoundFactor(multiplier),
		discountPercent: discount,
		vehicleAge:      vehicleAge,
		notes:           notes,
	}
}

// CalculateVehiclePremium prices a vehicle risk. It never fails: an
// unrecognized category prices as a car, an unrecognized coverage tier
// takes the fallback multiplier, and a missing table means default
// rates throughout. Intermediate figures keep full precision; monetary
// outputs are rounded to 2 decimals at the end only.
func (e *Engine) CalculateVehiclePremium(in domain.VehicleInput) domain.PremiumResult {
	t := e.Table

	category := in.Category
	if !category.IsKnown() {
		e.Stats.UnknownVehicleCategory.Add(1)
		e.log().Warnf("unknown vehicle category %q, pricing as car", in.Category)
		category = domain.CategoryCar
	}

	switch in.Coverage {
	case domain.CoverageThirdParty, domain.CoverageThirdPartyFireTheft, domain.CoverageComprehensive:
	default:
		e.Stats.UnknownCoverageTier.Add(1)
		e.log().Warnf("unknown coverage tier %q, using fallback multiplier", in.Coverage)
	}

	baseRate := t.BaseRate(string(category))
	coverageMult := t.CoverageMultiplier(string(in.Coverage))
	basePremium := baseRate.Mul(coverageMult)

	adj := e.resolveVehicleFactors(in)

	adjustedPremium := basePremium.Mul(adj.multiplier)
	discountAmount := adjustedPremium.Mul(adj.discountPercent)
	afterDiscount := adjustedPremium.Sub(discountAmount)

	finalPremium := afterDiscount
	if minPremium := t.MinimumPremium(); finalPremium.LessThan(minPremium) {
		finalPremium = minPremium
	}

	return domain.PremiumResult{
		BasePremium:     domain.RoundMoney(basePremium),
		AdjustedPremium: domain.RoundMoney(adjustedPremium),
		DiscountAmount:  domain.RoundMoney(discountAmount),
		FinalPremium:    domain.RoundMoney(finalPremium),
		ExcessAmount:    domain.RoundMoney(t.Excess()),
		Breakdown: domain.PremiumBreakdown{
			BaseRate:             baseRate,
			CoverageMultiplier:   coverageMult,
			AdjustmentMultiplier: adj.multiplier,
			NoClaimsDiscountPct:  adj.discountPercent.Mul(decimal.NewFromInt(100)),
			VehicleAge:           adj.vehicleAge,
			Notes:                adj.notes,
		},
	}
}

// QuoteVehicle calculates a premium and stamps it with a quote number
// and validity window. The stamping is the only non-deterministic part,
// kept out of CalculateVehiclePremium so the calculation itself is
// repeatable.
func (e *Engine) QuoteVehicle(in domain.VehicleInput) domain.PremiumResult {
	result := e.CalculateVehiclePremium(in)
	result.QuoteNumber = domain.NewQuoteNumber("QTE")
	result.ValidUntil = e.now().AddDate(0, 0, domain.QuoteValidityDays)
	return result
}
