package rating

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/insrate/insrate/internal/domain"
	"github.com/insrate/insrate/internal/ratetable"
)

func testCensus() []domain.EmployeeRecord {
	return []domain.EmployeeRecord{
		{BirthYear: 2000, Gender: "male", Dependents: 0},
		{BirthYear: 1990, Gender: "female", Dependents: 2},
		{BirthYear: 1980, Gender: "male", Dependents: 3},
		{BirthYear: 1970, Gender: "female", Dependents: 3},
	}
}

func TestAnalyzeCensus(t *testing.T) {
	engine := testEngine(nil) // current year 2026

	analysis := engine.AnalyzeCensus(testCensus())

	assert.Equal(t, 4, analysis.TotalEmployees)
	assert.Equal(t, 2, analysis.MaleCount)
	assert.Equal(t, 2, analysis.FemaleCount)
	assert.Equal(t, 8, analysis.TotalDependents)
	assert.Equal(t, domain.AgeDistribution{
		Under30: 1, From30: 1, From40: 1, From50: 1,
	}, analysis.Ages)
	assert.True(t, analysis.AverageAge.Equal(decimal.NewFromInt(41)),
		"average age %s", analysis.AverageAge)

	// (0.8 + 1.0 + 1.2 + 1.5) / 4 = 1.125; average dependents 2 is the
	// neutral band.
	assert.True(t, analysis.AgeRiskFactor.Equal(decimal.NewFromFloat(1.125)),
		"age risk %s", analysis.AgeRiskFactor)
	assert.True(t, analysis.DependentsRisk.Equal(decimal.NewFromFloat(1.0)),
		"dependents risk %s", analysis.DependentsRisk)
}

func TestAnalyzeCensusEmpty(t *testing.T) {
	engine := testEngine(nil)

	analysis := engine.AnalyzeCensus(nil)
	assert.Equal(t, 0, analysis.TotalEmployees)
	assert.True(t, analysis.AgeRiskFactor.Equal(decimal.NewFromInt(1)))
	assert.True(t, analysis.DependentsRisk.Equal(decimal.NewFromInt(1)))
}

func TestDependentsRiskFactorBands(t *testing.T) {
	tests := []struct {
		dependents int
		employees  int
		want       float64
	}{
		{0, 10, 0.9},
		{10, 10, 1.0}, // avg 1
		{20, 10, 1.0}, // avg 2
		{30, 10, 1.2}, // avg 3
		{40, 10, 1.2}, // avg 4
		{50, 10, 1.4}, // avg 5
	}
	for _, tt := range tests {
		got := dependentsRiskFactor(tt.dependents, tt.employees)
		assert.True(t, got.Equal(decimal.NewFromFloat(tt.want)),
			"%d/%d: want %v, got %s", tt.dependents, tt.employees, tt.want, got)
	}
}

func TestAgeRiskFactorAllOver60(t *testing.T) {
	got := ageRiskFactor(domain.AgeDistribution{Over60: 5})
	assert.True(t, got.Equal(decimal.NewFromFloat(2.0)), "got %s", got)
}

func TestCalculateGroupPremium(t *testing.T) {
	engine := testEngine(nil)

	plan := domain.CoveragePlan{Name: "Group", BasePricePerEmployee: decimal.NewFromInt(1000)}
	result := engine.CalculateGroupPremium(testCompany(), plan, testCensus())

	// Employees at full price, dependents at half: 4000 + 4000 = 8000;
	// x1.125 age risk = 9000.
	assert.True(t, result.BasePremium.Equal(decimal.NewFromInt(9000)),
		"base %s", result.BasePremium)

	// Company factor set 0.78408 (same profile as the headcount rater).
	assert.True(t, result.AdjustedPremium.Equal(decimal.NewFromFloat(7056.72)),
		"adjusted %s", result.AdjustedPremium)

	// 15% administrative loading.
	assert.True(t, result.FinalPremium.Equal(decimal.NewFromFloat(8115.23)),
		"final %s", result.FinalPremium)
	assert.True(t, result.MonthlyPremium.Equal(decimal.NewFromFloat(676.27)),
		"monthly %s", result.MonthlyPremium)
}

func TestCalculateGroupPremiumSectorLimits(t *testing.T) {
	plan := domain.CoveragePlan{BasePricePerEmployee: decimal.NewFromInt(1000)}

	t.Run("minimum per employee", func(t *testing.T) {
		table := &ratetable.Table{
			Health: ratetable.HealthTables{
				SectorLimits: map[string]ratetable.SectorLimits{
					"tech_software": {MinPerEmployee: decimal.NewFromInt(2500)},
				},
			},
		}
		engine := testEngine(table)

		result := engine.CalculateGroupPremium(testCompany(), plan, testCensus())
		// 4 employees x 2500 = 10000 floor, then x1.15 loading.
		assert.True(t, result.AdjustedPremium.Equal(decimal.NewFromInt(10000)),
			"adjusted %s", result.AdjustedPremium)
		assert.True(t, result.FinalPremium.Equal(decimal.NewFromInt(11500)),
			"final %s", result.FinalPremium)
	})

	t.Run("maximum per employee", func(t *testing.T) {
		table := &ratetable.Table{
			Health: ratetable.HealthTables{
				SectorLimits: map[string]ratetable.SectorLimits{
					"tech_software": {MaxPerEmployee: decimal.NewFromInt(1500)},
				},
			},
		}
		engine := testEngine(table)

		result := engine.CalculateGroupPremium(testCompany(), plan, testCensus())
		// 4 employees x 1500 = 6000 cap.
		assert.True(t, result.AdjustedPremium.Equal(decimal.NewFromInt(6000)),
			"adjusted %s", result.AdjustedPremium)
		assert.True(t, result.FinalPremium.Equal(decimal.NewFromInt(6900)),
			"final %s", result.FinalPremium)
	})
}

func TestCalculateGroupPremiumEmptyCensus(t *testing.T) {
	engine := testEngine(nil)

	plan := domain.CoveragePlan{BasePricePerEmployee: decimal.NewFromInt(1000)}
	result := engine.CalculateGroupPremium(testCompany(), plan, nil)

	// An empty census prices as a single employee at neutral census
	// factors.
	assert.Equal(t, 0, result.Census.TotalEmployees)
	assert.True(t, result.BasePremium.Equal(decimal.NewFromInt(1000)),
		"base %s", result.BasePremium)
}

func TestQuoteGroupStampsQuote(t *testing.T) {
	engine := testEngine(nil)

	plan := domain.CoveragePlan{BasePricePerEmployee: decimal.NewFromInt(1000)}
	quote := engine.QuoteGroup(testCompany(), plan, testCensus())
	assert.Regexp(t, `^HP-[0-9A-F]{8}$`, quote.QuoteNumber)
}
