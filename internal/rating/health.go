package rating

import (
	"github.com/shopspring/decimal"

	"github.com/insrate/insrate/internal/domain"
)

var twelve = decimal.NewFromInt(12)

// resolveHealthFactors maps a company profile to its full factor set.
// Every lookup falls back (sector by prefix group, city to 1.0, the
// rest to their tier defaults), so resolution never fails.
func (e *Engine) resolveHealthFactors(company domain.CompanyProfile) domain.HealthFactors {
	t := e.Table

	sectorFactor, exact := t.SectorFactor(company.Sector)
	if !exact {
		e.Stats.UnknownSector.Add(1)
		e.log().Warnf("sector %q not in table, using prefix-group factor %s", company.Sector, sectorFactor)
	}

	return domain.HealthFactors{
		Sector:           sectorFactor,
		Size:             t.SizeFactor(string(company.SizeCategory)),
		Age:              establishmentAgeFactor(company.EstablishmentAge),
		Risk:             t.RiskFactor(string(company.RiskLevel)),
		Environment:      t.EnvironmentFactor(string(company.WorkEnvironment)),
		City:             t.CityFactor(company.City),
		Claims:           claimsHistoryFactor(company.ClaimsHistory),
		InsuranceHistory: insuranceHistoryFactor(company.HasPreviousInsurance, company.PreviousInsuranceYears),
	}
}

// establishmentAgeFactor: younger companies pay more; the bands flatten
// out at 20 years.
func establishmentAgeFactor(years int) decimal.Decimal {
	switch {
	case years < 1:
		return decimal.NewFromFloat(1.3)
	case years < 3:
		return decimal.NewFromFloat(1.2)
	case years < 5:
		return decimal.NewFromFloat(1.1)
	case years < 10:
		return decimal.NewFromFloat(1.0)
	case years < 20:
		return decimal.NewFromFloat(0.9)
	default:
		return decimal.NewFromFloat(0.8)
	}
}

// claimsHistoryFactor rewards a clean record and penalizes heavy
// claimers.
func claimsHistoryFactor(claims int) decimal.Decimal {
	switch {
	case claims == 0:
		return decimal.NewFromFloat(0.9)
	case claims <= 3:
		return decimal.NewFromFloat(1.0)
	case claims <= 10:
		return decimal.NewFromFloat(1.2)
	default:
		return decimal.NewFromFloat(1.5)
	}
}

// insuranceHistoryFactor: never having carried insurance is a penalty,
// a long continuous history is a discount.
func insuranceHistoryFactor(hasPrevious bool, years int) decimal.Decimal {
	switch {
	case !hasPrevious:
		return decimal.NewFromFloat(1.1)
	case years >= 3:
		return decimal.NewFromFloat(0.85)
	case years >= 1:
		return decimal.NewFromFloat(0.9)
	default:
		return decimal.NewFromFloat(1.0)
	}
}

// CalculateHealthPremium prices group health cover for a company under
// plan. A zero-valued plan takes the table's default per-employee base
// price. The insured count is clamped to at least 1 and to the plan's
// employee cap when one exists.
//
// Unlike the vehicle engine, every monetary checkpoint here is rounded
// half-up to 2 decimals independently; the monthly premium divides the
// full-precision total, not the rounded annual figure.
func (e *Engine) CalculateHealthPremium(company domain.CompanyProfile, plan domain.CoveragePlan, insuredCount int) domain.HealthPremiumResult {
	t := e.Table

	if insuredCount < 1 {
		e.Stats.InsuredCountClamped.Add(1)
		e.log().Warnf("insured count %d below 1, clamping", insuredCount)
		insuredCount = 1
	}
	if plan.MaxEmployees > 0 && insuredCount > plan.MaxEmployees {
		e.Stats.InsuredCountClamped.Add(1)
		e.log().Warnf("insured count %d exceeds plan cap %d, clamping", insuredCount, plan.MaxEmployees)
		insuredCount = plan.MaxEmployees
	}

	basePrice := plan.BasePricePerEmployee
	if basePrice.IsZero() {
		basePrice = t.PlanBasePrice()
	}

	factors := e.resolveHealthFactors(company)

	basePremium := basePrice.Mul(decimal.NewFromInt(int64(insuredCount)))
	totalPremium := basePremium.Mul(factors.Total())
	monthlyPremium := totalPremium.Div(twelve)
	perEmployee := totalPremium.Div(decimal.NewFromInt(int64(insuredCount)))

	return domain.HealthPremiumResult{
		BasePremium:        domain.RoundMoney(basePremium),
		TotalPremium:       domain.RoundMoney(totalPremium),
		AnnualPremium:      domain.RoundMoney(totalPremium),
		MonthlyPremium:     domain.RoundMoney(monthlyPremium),
		PremiumPerEmployee: domain.RoundMoney(perEmployee),
		InsuredCount:       insuredCount,
		Factors:            factors,
		Plan:               plan,
	}
}

// QuoteHealth calculates a health premium and stamps the quote
// reference and validity window.
func (e *Engine) QuoteHealth(company domain.CompanyProfile, plan domain.CoveragePlan, insuredCount int) domain.HealthPremiumResult {
	result := e.CalculateHealthPremium(company, plan, insuredCount)
	result.QuoteNumber = domain.NewQuoteNumber("HP")
	result.ValidUntil = e.now().AddDate(0, 0, domain.QuoteValidityDays)
	return result
}
