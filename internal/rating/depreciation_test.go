package rating

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/insrate/insrate/internal/domain"
	"github.com/insrate/insrate/internal/ratetable"
)

func TestCalculateDepreciationPartial(t *testing.T) {
	engine := testEngine(nil) // current year pinned to 2026
	value := decimal.NewFromInt(20000)

	// 9-year-old vehicle lands in the 9_plus band: 50%.
	result := engine.CalculateDepreciation(value, 2017, domain.LossPartial)

	assert.Equal(t, 9, result.VehicleAge)
	assert.True(t, result.DepreciationPercent.Equal(decimal.NewFromInt(50)),
		"got %s", result.DepreciationPercent)
	assert.True(t, result.DepreciatedValue.Equal(decimal.NewFromInt(10000)),
		"got %s", result.DepreciatedValue)
	assert.True(t, result.ExcessDeducted.Equal(decimal.NewFromInt(500)))
	assert.True(t, result.SettlementValue.Equal(decimal.NewFromInt(9500)),
		"got %s", result.SettlementValue)
}

func TestCalculateDepreciationAgeBands(t *testing.T) {
	engine := testEngine(nil)
	value := decimal.NewFromInt(10000)

	tests := []struct {
		year        int
		wantPercent int64
	}{
		{year: 2026, wantPercent: 10}, // age 0
		{year: 2030, wantPercent: 10}, // future year, still 0_to_1 band
		{year: 2025, wantPercent: 10},
		{year: 2024, wantPercent: 15},
		{year: 2023, wantPercent: 20},
		{year: 2022, wantPercent: 25},
		{year: 2021, wantPercent: 30},
		{year: 2020, wantPercent: 35},
		{year: 2019, wantPercent: 40},
		{year: 2018, wantPercent: 45},
		{year: 2017, wantPercent: 50},
		{year: 1976, wantPercent: 50}, // age 50, still 9_plus
	}

	previous := decimal.Zero
	for _, tt := range tests {
		result := engine.CalculateDepreciation(value, tt.year, domain.LossPartial)
		assert.True(t, result.DepreciationPercent.Equal(decimal.NewFromInt(tt.wantPercent)),
			"year %d: want %d, got %s", tt.year, tt.wantPercent, result.DepreciationPercent)
		if tt.year <= 2026 {
			assert.True(t, result.DepreciationPercent.GreaterThanOrEqual(previous),
				"depreciation decreased at year %d", tt.year)
			previous = result.DepreciationPercent
		}
	}
}

func TestCalculateDepreciationTotalLoss(t *testing.T) {
	engine := testEngine(nil)
	value := decimal.NewFromInt(20000)

	// Total loss adds 10 points to the age band.
	result := engine.CalculateDepreciation(value, 2017, domain.LossTotal)
	assert.True(t, result.DepreciationPercent.Equal(decimal.NewFromInt(60)),
		"got %s", result.DepreciationPercent)
	assert.True(t, result.DepreciatedValue.Equal(decimal.NewFromInt(8000)),
		"got %s", result.DepreciatedValue)
}

func TestCalculateDepreciationCap(t *testing.T) {
	// A table override above the cap must still be clamped to 80%.
	table := &ratetable.Table{
		DepreciationByAge: map[string]decimal.Decimal{
			"9_plus": decimal.NewFromInt(85),
		},
	}
	engine := testEngine(table)

	partial := engine.CalculateDepreciation(decimal.NewFromInt(20000), 2000, domain.LossPartial)
	assert.True(t, partial.DepreciationPercent.Equal(decimal.NewFromInt(80)),
		"partial: got %s", partial.DepreciationPercent)

	total := engine.CalculateDepreciation(decimal.NewFromInt(20000), 2000, domain.LossTotal)
	assert.True(t, total.DepreciationPercent.Equal(decimal.NewFromInt(80)),
		"total: got %s", total.DepreciationPercent)
}

func TestCalculateDepreciationSettlementFloorsAtZero(t *testing.T) {
	engine := testEngine(nil)

	// Depreciated value 400 minus excess 500 would be negative.
	result := engine.CalculateDepreciation(decimal.NewFromInt(800), 2017, domain.LossPartial)
	assert.True(t, result.DepreciatedValue.Equal(decimal.NewFromInt(400)))
	assert.True(t, result.SettlementValue.Equal(decimal.Zero),
		"got %s", result.SettlementValue)
}

func TestCalculateDepreciationUnknownLossType(t *testing.T) {
	engine := testEngine(nil)

	unknown := engine.CalculateDepreciation(decimal.NewFromInt(20000), 2017, "write_off")
	partial := engine.CalculateDepreciation(decimal.NewFromInt(20000), 2017, domain.LossPartial)

	assert.Equal(t, partial, unknown)
	assert.Equal(t, uint64(1), engine.Stats.UnknownLossType.Load())
}
