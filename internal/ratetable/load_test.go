package ratetable

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTable(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "rates.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad(t *testing.T) {
	path := writeTable(t, `{
		"version": "2026-01",
		"base_rates": {"car": 850, "suv": 1100},
		"min_premium": 250,
		"vehicle_age": {"new_less_than_years": 2, "multipliers": {"new": 1.25}},
		"health": {
			"sector_factors": {"tech_software": 0.95},
			"plan_base_price_per_employee": 1100
		}
	}`)

	table, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "2026-01", table.Version)
	assert.True(t, table.BaseRate("car").Equal(decimal.NewFromInt(850)))
	assert.True(t, table.BaseRate("suv").Equal(decimal.NewFromInt(1100)))
	assert.True(t, table.MinimumPremium().Equal(decimal.NewFromInt(250)))
	assert.Equal(t, 2, table.VehicleAgeNewBelow())
	assert.True(t, table.VehicleAgeMultiplier("new").Equal(decimal.NewFromFloat(1.25)))
	assert.True(t, table.PlanBasePrice().Equal(decimal.NewFromInt(1100)))

	factor, exact := table.SectorFactor("tech_software")
	assert.True(t, exact)
	assert.True(t, factor.Equal(decimal.NewFromFloat(0.95)))

	// Untouched keys fall back.
	assert.True(t, table.BaseRate("truck").Equal(decimal.NewFromInt(1200)))
	assert.True(t, table.Excess().Equal(decimal.NewFromInt(500)))
}

func TestLoadErrors(t *testing.T) {
	_, err := Load("/nonexistent/rates.json")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "read rating table")

	path := writeTable(t, `{"base_rates": [1, 2, 3]}`)
	_, err = Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse rating table")
}

func TestStoreSwap(t *testing.T) {
	store := NewStore(nil)
	assert.Nil(t, store.Current())

	table := &Table{Version: "a"}
	store.Swap(table)
	assert.Same(t, table, store.Current())
}

func TestStoreReloadFromFile(t *testing.T) {
	path := writeTable(t, `{"version": "v1", "min_premium": 300}`)

	store := NewStore(nil)
	require.NoError(t, store.ReloadFromFile(path))
	require.NotNil(t, store.Current())
	assert.Equal(t, "v1", store.Current().Version)

	// A failed reload keeps the previous table active.
	require.NoError(t, os.WriteFile(path, []byte("{broken"), 0o644))
	err := store.ReloadFromFile(path)
	require.Error(t, err)
	assert.Equal(t, "v1", store.Current().Version)
}
