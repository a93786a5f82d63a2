package ratetable

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestNilTableUsesDefaults(t *testing.T) {
	var table *Table

	assert.True(t, table.BaseRate("car").Equal(decimal.NewFromInt(800)))
	assert.True(t, table.BaseRate("suv").Equal(decimal.NewFromInt(1000)))
	assert.True(t, table.BaseRate("truck").Equal(decimal.NewFromInt(1200)))
	assert.True(t, table.BaseRate("motorcycle").Equal(decimal.NewFromInt(600)))
	// Unknown categories price as a car.
	assert.True(t, table.BaseRate("spaceship").Equal(decimal.NewFromInt(800)))

	assert.True(t, table.CoverageMultiplier("third_party").Equal(decimal.NewFromFloat(0.8)))
	assert.True(t, table.CoverageMultiplier("third_party_fire_theft").Equal(decimal.NewFromFloat(1.0)))
	assert.True(t, table.CoverageMultiplier("comprehensive").Equal(decimal.NewFromFloat(1.2)))
	assert.True(t, table.CoverageMultiplier("platinum").Equal(decimal.NewFromFloat(1.2)))

	assert.Equal(t, 3, table.VehicleAgeNewBelow())
	assert.True(t, table.VehicleAgeMultiplier("new").Equal(decimal.NewFromFloat(1.3)))
	assert.True(t, table.MinimumPremium().Equal(decimal.NewFromInt(200)))
	assert.True(t, table.Excess().Equal(decimal.NewFromInt(500)))
	assert.True(t, table.ClaimsPenalty().Equal(decimal.NewFromFloat(0.2)))
	assert.True(t, table.NoClaimsPerYear().Equal(decimal.NewFromFloat(0.05)))
	assert.True(t, table.NoClaimsMax().Equal(decimal.NewFromFloat(0.30)))
	assert.True(t, table.PaymentSurcharge("monthly").Equal(decimal.NewFromFloat(1.05)))
	assert.True(t, table.PlanBasePrice().Equal(decimal.NewFromInt(1000)))
	assert.True(t, table.AdminLoading().Equal(decimal.NewFromFloat(1.15)))
}

func TestPartialTableKeepsFallbacks(t *testing.T) {
	// A table overriding one key leaves every other lookup on its
	// fallback.
	table := &Table{
		BaseRates: map[string]decimal.Decimal{
			"car": decimal.NewFromInt(900),
		},
		MinPremium: decimalPtr(decimal.NewFromInt(250)),
	}

	assert.True(t, table.BaseRate("car").Equal(decimal.NewFromInt(900)))
	assert.True(t, table.BaseRate("suv").Equal(decimal.NewFromInt(1000)))
	assert.True(t, table.MinimumPremium().Equal(decimal.NewFromInt(250)))
	assert.True(t, table.Excess().Equal(decimal.NewFromInt(500)))
	assert.True(t, table.CoverageMultiplier("comprehensive").Equal(decimal.NewFromFloat(1.2)))
}

func TestShortTermPercentBands(t *testing.T) {
	var table *Table

	tests := []struct {
		days int
		want float64
	}{
		{1, 12.5}, {15, 12.5},
		{16, 25}, {30, 25},
		{31, 37.5}, {60, 37.5},
		{90, 50}, {120, 60}, {150, 70},
		{180, 75}, {210, 80}, {240, 85},
		{241, 100}, {365, 100},
	}
	for _, tt := range tests {
		got := table.ShortTermPercent(tt.days)
		assert.True(t, got.Equal(decimal.NewFromFloat(tt.want)),
			"%d days: want %v, got %s", tt.days, tt.want, got)
	}
}

func TestDepreciationPercentBands(t *testing.T) {
	var table *Table

	tests := []struct {
		age  int
		want int64
	}{
		{-3, 10}, {0, 10}, {1, 10},
		{2, 15}, {3, 20}, {4, 25}, {5, 30},
		{6, 35}, {7, 40}, {8, 45},
		{9, 50}, {40, 50},
	}
	for _, tt := range tests {
		got := table.DepreciationPercent(tt.age)
		assert.True(t, got.Equal(decimal.NewFromInt(tt.want)),
			"age %d: want %d, got %s", tt.age, tt.want, got)
	}
}

func TestSectorFactorResolution(t *testing.T) {
	var table *Table

	// Exact entry.
	factor, exact := table.SectorFactor("health_hospital")
	assert.True(t, exact)
	assert.True(t, factor.Equal(decimal.NewFromFloat(1.5)))

	// Prefix group.
	factor, exact = table.SectorFactor("health_lab")
	assert.False(t, exact)
	assert.True(t, factor.Equal(decimal.NewFromFloat(1.3)))

	// No match at all.
	factor, exact = table.SectorFactor("agriculture")
	assert.False(t, exact)
	assert.True(t, factor.Equal(decimal.NewFromFloat(1.0)))
}

func TestSectorFactorTableOverride(t *testing.T) {
	table := &Table{
		Health: HealthTables{
			SectorFactors: map[string]decimal.Decimal{
				"mining_gold": decimal.NewFromFloat(2.5),
			},
		},
	}

	factor, exact := table.SectorFactor("mining_gold")
	assert.True(t, exact)
	assert.True(t, factor.Equal(decimal.NewFromFloat(2.5)))

	// Hardcoded exact entries still resolve behind a sparse table.
	factor, exact = table.SectorFactor("tech_software")
	assert.True(t, exact)
	assert.True(t, factor.Equal(decimal.NewFromFloat(1.0)))
}

func TestSectorLimitsFor(t *testing.T) {
	var nilTable *Table
	_, ok := nilTable.SectorLimitsFor("tech_software")
	assert.False(t, ok)

	table := &Table{
		Health: HealthTables{
			SectorLimits: map[string]SectorLimits{
				"tech_software": {
					MinPerEmployee: decimal.NewFromInt(500),
					MaxPerEmployee: decimal.NewFromInt(3000),
				},
			},
		},
	}
	limits, ok := table.SectorLimitsFor("tech_software")
	assert.True(t, ok)
	assert.True(t, limits.MinPerEmployee.Equal(decimal.NewFromInt(500)))
	assert.True(t, limits.MaxPerEmployee.Equal(decimal.NewFromInt(3000)))
}

func decimalPtr(d decimal.Decimal) *decimal.Decimal {
	return &d
}
