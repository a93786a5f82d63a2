package output

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/insrate/insrate/internal/domain"
)

// ConsoleFormatter renders a quote report as a plain-text summary for
// terminal use.
type ConsoleFormatter struct{}

func (ConsoleFormatter) Name() string { return "console" }

func (ConsoleFormatter) Format(report *domain.QuoteReport) ([]byte, error) {
	buf := &bytes.Buffer{}

	if report.Vehicle != nil {
		writeVehicleSection(buf, report.Vehicle)
	}
	if report.ShortTerm != nil {
		writeShortTermSection(buf, report.ShortTerm)
	}
	if report.Schedule != nil {
		writeScheduleSection(buf, report.Schedule)
	}
	if report.Health != nil {
		writeHealthSection(buf, report.Health)
	}
	if report.Group != nil {
		writeGroupSection(buf, report.Group)
	}
	if report.Depreciation != nil {
		writeDepreciationSection(buf, report.Depreciation)
	}

	return buf.Bytes(), nil
}

func writeHeader(buf *bytes.Buffer, title string) {
	fmt.Fprintln(buf, title)
	fmt.Fprintln(buf, strings.Repeat("=", len(title)))
}

func writeVehicleSection(buf *bytes.Buffer, r *domain.PremiumResult) {
	writeHeader(buf, "VEHICLE PREMIUM QUOTE")
	if r.QuoteNumber != "" {
		fmt.Fprintf(buf, "Quote Number:      %s\n", r.QuoteNumber)
	}
	fmt.Fprintf(buf, "Base Rate:         %s\n", FormatCurrency(r.Breakdown.BaseRate))
	fmt.Fprintf(buf, "Coverage Factor:   x%s\n", r.Breakdown.CoverageMultiplier.String())
	fmt.Fprintf(buf, "Base Premium:      %s\n", FormatCurrency(r.BasePremium))
	fmt.Fprintf(buf, "Adjustment Factor: x%s\n", r.Breakdown.AdjustmentMultiplier.String())
	fmt.Fprintf(buf, "Adjusted Premium:  %s\n", FormatCurrency(r.AdjustedPremium))
	if r.DiscountAmount.GreaterThan(decimal.Zero) {
		fmt.Fprintf(buf, "No-Claims Discount: -%s (%s)\n",
			FormatCurrency(r.DiscountAmount), FormatPercentage(r.Breakdown.NoClaimsDiscountPct))
	}
	fmt.Fprintf(buf, "Final Premium:     %s\n", FormatCurrency(r.FinalPremium))
	fmt.Fprintf(buf, "Policy Excess:     %s\n", FormatCurrency(r.ExcessAmount))
	if len(r.Breakdown.Notes) > 0 {
		fmt.Fprintf(buf, "Applied Rules:     %s\n", strings.Join(r.Breakdown.Notes, ", "))
	}
	if !r.ValidUntil.IsZero() {
		fmt.Fprintf(buf, "Valid Until:       %s\n", r.ValidUntil.Format("2006-01-02"))
	}
	fmt.Fprintln(buf)
}

func writeShortTermSection(buf *bytes.Buffer, s *domain.ShortTermQuote) {
	writeHeader(buf, "SHORT-TERM COVERAGE")
	fmt.Fprintf(buf, "Duration:          %d days\n", s.DurationDays)
	fmt.Fprintf(buf, "Annual Premium:    %s\n", FormatCurrency(s.AnnualPremium))
	fmt.Fprintf(buf, "Short-Term Premium: %s\n", FormatCurrency(s.Premium))
	fmt.Fprintln(buf)
}

func writeScheduleSection(buf *bytes.Buffer, s *domain.PaymentSchedule) {
	writeHeader(buf, "PAYMENT SCHEDULE")
	fmt.Fprintf(buf, "Frequency:         %s\n", s.Frequency)
	fmt.Fprintf(buf, "Annual Premium:    %s\n", FormatCurrency(s.AnnualPremium))
	fmt.Fprintf(buf, "Surcharge Factor:  x%s\n", s.Surcharge.String())
	fmt.Fprintf(buf, "Total Payable:     %s\n", FormatCurrency(s.TotalPayable))
	fmt.Fprintf(buf, "Installments:      %d x %s\n", s.Installments, FormatCurrency(s.PerInstallment))
	fmt.Fprintln(buf)
}

func writeHealthSection(buf *bytes.Buffer, r *domain.HealthPremiumResult) {
	writeHeader(buf, "GROUP HEALTH PREMIUM QUOTE")
	if r.QuoteNumber != "" {
		fmt.Fprintf(buf, "Quote Number:       %s\n", r.QuoteNumber)
	}
	if r.Plan.Name != "" {
		fmt.Fprintf(buf, "Plan:               %s\n", r.Plan.Name)
	}
	fmt.Fprintf(buf, "Insured Employees:  %d\n", r.InsuredCount)
	fmt.Fprintf(buf, "Base Premium:       %s\n", FormatCurrency(r.BasePremium))
	writeFactorLines(buf, r.Factors)
	fmt.Fprintf(buf, "Annual Premium:     %s\n", FormatCurrency(r.AnnualPremium))
	fmt.Fprintf(buf, "Monthly Premium:    %s\n", FormatCurrency(r.MonthlyPremium))
	fmt.Fprintf(buf, "Per Employee:       %s\n", FormatCurrency(r.PremiumPerEmployee))
	if !r.ValidUntil.IsZero() {
		fmt.Fprintf(buf, "Valid Until:        %s\n", r.ValidUntil.Format("2006-01-02"))
	}
	fmt.Fprintln(buf)
}

func writeGroupSection(buf *bytes.Buffer, r *domain.GroupPremiumResult) {
	writeHeader(buf, "CENSUS-BASED GROUP QUOTE")
	if r.QuoteNumber != "" {
		fmt.Fprintf(buf, "Quote Number:       %s\n", r.QuoteNumber)
	}
	fmt.Fprintf(buf, "Employees:          %d (%d male, %d female)\n",
		r.Census.TotalEmployees, r.Census.MaleCount, r.Census.FemaleCount)
	fmt.Fprintf(buf, "Dependents:         %d\n", r.Census.TotalDependents)
	fmt.Fprintf(buf, "Average Age:        %s\n", r.Census.AverageAge.String())
	fmt.Fprintf(buf, "Age Risk Factor:    x%s\n", r.Census.AgeRiskFactor.String())
	fmt.Fprintf(buf, "Dependents Factor:  x%s\n", r.Census.DependentsRisk.String())
	fmt.Fprintf(buf, "Base Premium:       %s\n", FormatCurrency(r.BasePremium))
	writeFactorLines(buf, r.Factors)
	fmt.Fprintf(buf, "Adjusted Premium:   %s\n", FormatCurrency(r.AdjustedPremium))
	fmt.Fprintf(buf, "Annual Premium:     %s\n", FormatCurrency(r.AnnualPremium))
	fmt.Fprintf(buf, "Monthly Premium:    %s\n", FormatCurrency(r.MonthlyPremium))
	fmt.Fprintln(buf)
}

func writeFactorLines(buf *bytes.Buffer, f domain.HealthFactors) {
	fmt.Fprintf(buf, "Risk Factors:       sector x%s, size x%s, age x%s, risk x%s\n",
		f.Sector.String(), f.Size.String(), f.Age.String(), f.Risk.String())
	fmt.Fprintf(buf, "                    environment x%s, city x%s, claims x%s, history x%s\n",
		f.Environment.String(), f.City.String(), f.Claims.String(), f.InsuranceHistory.String())
	fmt.Fprintf(buf, "Combined Factor:    x%s\n", f.Total().Round(4).String())
}

func writeDepreciationSection(buf *bytes.Buffer, r *domain.DepreciationResult) {
	writeHeader(buf, "CLAIM SETTLEMENT VALUATION")
	fmt.Fprintf(buf, "Original Value:     %s\n", FormatCurrency(r.OriginalValue))
	fmt.Fprintf(buf, "Vehicle Age:        %d years\n", r.VehicleAge)
	fmt.Fprintf(buf, "Depreciation:       %s\n", FormatPercentage(r.DepreciationPercent))
	fmt.Fprintf(buf, "Depreciated Value:  %s\n", FormatCurrency(r.DepreciatedValue))
	fmt.Fprintf(buf, "Excess Deducted:    %s\n", FormatCurrency(r.ExcessDeducted))
	fmt.Fprintf(buf, "Settlement Value:   %s\n", FormatCurrency(r.SettlementValue))
	fmt.Fprintln(buf)
}
