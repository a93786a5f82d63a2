package output

import (
	"strings"
	"testing"
	"time"

	json "github.com/goccy/go-json"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/insrate/insrate/internal/domain"
)

func sampleReport() *domain.QuoteReport {
	return &domain.QuoteReport{
		GeneratedAt: time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC),
		Vehicle: &domain.PremiumResult{
			QuoteNumber:     "QTE-DEADBEEF",
			BasePremium:     decimal.NewFromFloat(960),
			AdjustedPremium: decimal.NewFromFloat(1123.20),
			DiscountAmount:  decimal.NewFromFloat(112.32),
			FinalPremium:    decimal.NewFromFloat(1010.88),
			ExcessAmount:    decimal.NewFromInt(500),
			Breakdown: domain.PremiumBreakdown{
				BaseRate:             decimal.NewFromInt(800),
				CoverageMultiplier:   decimal.NewFromFloat(1.2),
				AdjustmentMultiplier: decimal.NewFromFloat(1.17),
				NoClaimsDiscountPct:  decimal.NewFromInt(10),
				VehicleAge:           2,
				Notes:                []string{"new_vehicle_age", "economy_vehicle"},
			},
			ValidUntil: time.Date(2026, 3, 31, 12, 0, 0, 0, time.UTC),
		},
		Schedule: &domain.PaymentSchedule{
			Frequency:      domain.PayMonthly,
			AnnualPremium:  decimal.NewFromFloat(1010.88),
			Surcharge:      decimal.NewFromFloat(1.05),
			TotalPayable:   decimal.NewFromFloat(1061.42),
			Installments:   12,
			PerInstallment: decimal.NewFromFloat(88.45),
		},
	}
}

func TestGetFormatterByName(t *testing.T) {
	tests := []struct {
		name     string
		wantName string
		wantErr  bool
	}{
		{name: "console", wantName: "console"},
		{name: "", wantName: "console"},
		{name: "json", wantName: "json"},
		{name: "csv", wantName: "csv"},
		{name: "xml", wantErr: true},
	}

	for _, tt := range tests {
		f, err := GetFormatterByName(tt.name)
		if tt.wantErr {
			require.Error(t, err)
			assert.Contains(t, err.Error(), "unsupported format")
			continue
		}
		require.NoError(t, err)
		assert.Equal(t, tt.wantName, f.Name())
	}
}

func TestConsoleFormatter(t *testing.T) {
	out, err := (ConsoleFormatter{}).Format(sampleReport())
	require.NoError(t, err)

	text := string(out)
	assert.Contains(t, text, "VEHICLE PREMIUM QUOTE")
	assert.Contains(t, text, "QTE-DEADBEEF")
	assert.Contains(t, text, "$1010.88")
	assert.Contains(t, text, "No-Claims Discount: -$112.32 (10.0%)")
	assert.Contains(t, text, "new_vehicle_age, economy_vehicle")
	assert.Contains(t, text, "Valid Until:       2026-03-31")
	assert.Contains(t, text, "PAYMENT SCHEDULE")
	assert.Contains(t, text, "12 x $88.45")
	assert.NotContains(t, text, "GROUP HEALTH")
}

func TestConsoleFormatterHealthAndGroup(t *testing.T) {
	report := &domain.QuoteReport{
		Health: &domain.HealthPremiumResult{
			QuoteNumber:        "HP-00C0FFEE",
			BasePremium:        decimal.NewFromInt(30000),
			AnnualPremium:      decimal.NewFromFloat(36855),
			MonthlyPremium:     decimal.NewFromFloat(3071.25),
			PremiumPerEmployee: decimal.NewFromFloat(1474.20),
			InsuredCount:       25,
			Factors: domain.HealthFactors{
				Sector: decimal.NewFromFloat(1.0), Size: decimal.NewFromFloat(0.95),
				Age: decimal.NewFromFloat(1.0), Risk: decimal.NewFromFloat(0.9),
				Environment: decimal.NewFromFloat(0.9), City: decimal.NewFromFloat(1.0),
				Claims: decimal.NewFromFloat(0.9), InsuranceHistory: decimal.NewFromFloat(1.1),
			},
			Plan: domain.CoveragePlan{Name: "Standard"},
		},
		Group: &domain.GroupPremiumResult{
			Census: domain.CensusAnalysis{
				TotalEmployees: 10, MaleCount: 6, FemaleCount: 4,
				TotalDependents: 12,
				AverageAge:      decimal.NewFromFloat(36.5),
				AgeRiskFactor:   decimal.NewFromFloat(1.08),
				DependentsRisk:  decimal.NewFromFloat(1.0),
			},
			BasePremium:     decimal.NewFromInt(17280),
			AdjustedPremium: decimal.NewFromInt(17280),
			FinalPremium:    decimal.NewFromFloat(19872),
			AnnualPremium:   decimal.NewFromFloat(19872),
			MonthlyPremium:  decimal.NewFromFloat(1656),
		},
	}

	out, err := (ConsoleFormatter{}).Format(report)
	require.NoError(t, err)

	text := string(out)
	assert.Contains(t, text, "GROUP HEALTH PREMIUM QUOTE")
	assert.Contains(t, text, "HP-00C0FFEE")
	assert.Contains(t, text, "Insured Employees:  25")
	assert.Contains(t, text, "CENSUS-BASED GROUP QUOTE")
	assert.Contains(t, text, "10 (6 male, 4 female)")
	assert.Contains(t, text, "Age Risk Factor:    x1.08")
	assert.NotContains(t, text, "VEHICLE PREMIUM")
}

func TestJSONFormatter(t *testing.T) {
	out, err := (JSONFormatter{}).Format(sampleReport())
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(out, &decoded))

	vehicle, ok := decoded["vehicle"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "QTE-DEADBEEF", vehicle["quote_number"])
	assert.Equal(t, "1010.88", vehicle["final_premium"])

	// Sections not quoted are omitted entirely.
	_, present := decoded["health"]
	assert.False(t, present)
}

func TestCSVFormatter(t *testing.T) {
	out, err := (CSVFormatter{}).Format(sampleReport())
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(string(out)), "\n")
	require.Len(t, lines, 3) // header + vehicle + schedule
	assert.Equal(t, "Section,QuoteNumber,BasePremium,AnnualPremium,MonthlyPremium,FinalAmount,Detail", lines[0])
	assert.Contains(t, lines[1], "vehicle,QTE-DEADBEEF,960.00,1010.88")
	assert.Contains(t, lines[2], "payment_schedule")
	assert.Contains(t, lines[2], "installments=12")
}

func TestCSVFormatterEmptyReport(t *testing.T) {
	out, err := (CSVFormatter{}).Format(&domain.QuoteReport{})
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(string(out)), "\n")
	assert.Len(t, lines, 1) // header only
}
