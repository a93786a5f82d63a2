package rating

import (
	"github.com/shopspring/decimal"

	"github.com/insrate/insrate/internal/domain"
)

var half = decimal.NewFromFloat(0.5)

// AnalyzeCensus summarizes an employee census and derives its risk
// factors. An empty census yields neutral factors and a zero count;
// the caller decides whether that is worth quoting.
func (e *Engine) AnalyzeCensus(employees []domain.EmployeeRecord) domain.CensusAnalysis {
	analysis := domain.CensusAnalysis{
		TotalEmployees: len(employees),
		AgeRiskFactor:  one,
		DependentsRisk: one,
		AverageAge:     decimal.NewFromInt(30),
	}
	if len(employees) == 0 {
		return analysis
	}

	currentYear := e.currentYear()
	ageSum := 0
	for _, emp := range employees {
		switch emp.Gender {
		case "male":
			analysis.MaleCount++
		case "female":
			analysis.FemaleCount++
		}
		analysis.TotalDependents += emp.Dependents

		age := currentYear - emp.BirthYear
		ageSum += age
		switch {
		case age < 30:
			analysis.Ages.Under30++
		case age < 40:
			analysis.Ages.From30++
		case age < 50:
			analysis.Ages.From40++
		case age < 60:
			analysis.Ages.From50++
		default:
			analysis.Ages.Over60++
		}
	}

	count := decimal.NewFromInt(int64(len(employees)))
	analysis.AverageAge = decimal.NewFromInt(int64(ageSum)).Div(count).Round(1)
	analysis.AgeRiskFactor = ageRiskFactor(analysis.Ages)
	analysis.DependentsRisk = dependentsRiskFactor(analysis.TotalDependents, len(employees))
	return analysis
}

// ageRiskFactor weights each age band and averages over the workforce.
func ageRiskFactor(ages domain.AgeDistribution) decimal.Decimal {
	total := ages.Under30 + ages.From30 + ages.From40 + ages.From50 + ages.Over60
	if total == 0 {
		return one
	}
	weighted := decimal.Zero
	for _, band := range []struct {
		count  int
		weight decimal.Decimal
	}{
		{ages.Under30, decimal.NewFromFloat(0.8)},
		{ages.From30, decimal.NewFromFloat(1.0)},
		{ages.From40, decimal.NewFromFloat(1.2)},
		{ages.From50, decimal.NewFromFloat(1.5)},
		{ages.Over60, decimal.NewFromFloat(2.0)},
	} {
		weighted = weighted.Add(band.weight.Mul(decimal.NewFromInt(int64(band.count))))
	}
	return domain.RoundFactor(weighted.Div(decimal.NewFromInt(int64(total))))
}

// dependentsRiskFactor scales with the average number of dependents per
// employee.
func dependentsRiskFactor(totalDependents, employees int) decimal.Decimal {
	if employees == 0 {
		return one
	}
	avg := decimal.NewFromInt(int64(totalDependents)).Div(decimal.NewFromInt(int64(employees)))
	switch {
	case avg.IsZero():
		return decimal.NewFromFloat(0.9)
	case avg.LessThanOrEqual(decimal.NewFromInt(2)):
		return decimal.NewFromFloat(1.0)
	case avg.LessThanOrEqual(decimal.NewFromInt(4)):
		return decimal.NewFromFloat(1.2)
	default:
		return decimal.NewFromFloat(1.4)
	}
}

// CalculateGroupPremium prices a company from its employee census:
// per-employee base price plus 50% per dependent, scaled by the census
// risk factors, the company factor set, sector per-employee limits, and
// finally the administrative loading. Each monetary checkpoint is
// rounded to 2 decimals, matching the health engine's rounding policy.
func (e *Engine) CalculateGroupPremium(company domain.CompanyProfile, plan domain.CoveragePlan, employees []domain.EmployeeRecord) domain.GroupPremiumResult {
	t := e.Table

	basePrice := plan.BasePricePerEmployee
	if basePrice.IsZero() {
		basePrice = t.PlanBasePrice()
	}

	census := e.AnalyzeCensus(employees)

	employeeCount := census.TotalEmployees
	if employeeCount < 1 {
		employeeCount = 1
	}

	// Employees at full base price, dependents at half.
	basePremium := basePrice.Mul(decimal.NewFromInt(int64(employeeCount))).
		Add(basePrice.Mul(half).Mul(decimal.NewFromInt(int64(census.TotalDependents))))
	basePremium = basePremium.Mul(census.AgeRiskFactor).Mul(census.DependentsRisk)
	basePremium = domain.RoundMoney(basePremium)

	factors := e.resolveHealthFactors(company)
	adjusted := domain.RoundMoney(basePremium.Mul(factors.Total()))

	// Sector per-employee bounds, when the table defines them.
	if limits, ok := t.SectorLimitsFor(company.Sector); ok {
		headcount := decimal.NewFromInt(int64(employeeCount))
		if minTotal := limits.MinPerEmployee.Mul(headcount); adjusted.LessThan(minTotal) {
			adjusted = domain.RoundMoney(minTotal)
		} else if maxTotal := limits.MaxPerEmployee.Mul(headcount); maxTotal.GreaterThan(decimal.Zero) && adjusted.GreaterThan(maxTotal) {
			adjusted = domain.RoundMoney(maxTotal)
		}
	}

	final := domain.RoundMoney(adjusted.Mul(t.AdminLoading()))

	return domain.GroupPremiumResult{
		Census:          census,
		BasePremium:     basePremium,
		Factors:         factors,
		AdjustedPremium: adjusted,
		FinalPremium:    final,
		AnnualPremium:   final,
		MonthlyPremium:  domain.RoundMoney(final.Div(twelve)),
	}
}

// QuoteGroup calculates a census-based group premium and stamps the
// quote reference.
func (e *Engine) QuoteGroup(company domain.CompanyProfile, plan domain.CoveragePlan, employees []domain.EmployeeRecord) domain.GroupPremiumResult {
	result := e.CalculateGroupPremium(company, plan, employees)
	result.QuoteNumber = domain.NewQuoteNumber("HP")
	return result
}
