package output

import (
	"bytes"
	"encoding/csv"
	"strconv"

	"github.com/insrate/insrate/internal/domain"
)

// CSVFormatter writes one row per quoted section, a shape spreadsheet
// users can append across runs.
type CSVFormatter struct{}

func (CSVFormatter) Name() string { return "csv" }

func (CSVFormatter) Format(report *domain.QuoteReport) ([]byte, error) {
	buf := &bytes.Buffer{}
	w := csv.NewWriter(buf)

	header := []string{"Section", "QuoteNumber", "BasePremium", "AnnualPremium", "MonthlyPremium", "FinalAmount", "Detail"}
	if err := w.Write(header); err != nil {
		return nil, err
	}

	if r := report.Vehicle; r != nil {
		row := []string{
			"vehicle",
			r.QuoteNumber,
			r.BasePremium.StringFixed(2),
			r.FinalPremium.StringFixed(2),
			"",
			r.FinalPremium.StringFixed(2),
			"excess=" + r.ExcessAmount.StringFixed(2),
		}
		if err := w.Write(row); err != nil {
			return nil, err
		}
	}

	if s := report.ShortTerm; s != nil {
		row := []string{
			"short_term",
			"",
			s.AnnualPremium.StringFixed(2),
			"",
			"",
			s.Premium.StringFixed(2),
			"days=" + strconv.Itoa(s.DurationDays),
		}
		if err := w.Write(row); err != nil {
			return nil, err
		}
	}

	if s := report.Schedule; s != nil {
		row := []string{
			"payment_schedule",
			"",
			s.AnnualPremium.StringFixed(2),
			s.TotalPayable.StringFixed(2),
			"",
			s.PerInstallment.StringFixed(2),
			"installments=" + strconv.Itoa(s.Installments),
		}
		if err := w.Write(row); err != nil {
			return nil, err
		}
	}

	if r := report.Health; r != nil {
		row := []string{
			"health",
			r.QuoteNumber,
			r.BasePremium.StringFixed(2),
			r.AnnualPremium.StringFixed(2),
			r.MonthlyPremium.StringFixed(2),
			r.AnnualPremium.StringFixed(2),
			"insured=" + strconv.Itoa(r.InsuredCount),
		}
		if err := w.Write(row); err != nil {
			return nil, err
		}
	}

	if r := report.Group; r != nil {
		row := []string{
			"group",
			r.QuoteNumber,
			r.BasePremium.StringFixed(2),
			r.AnnualPremium.StringFixed(2),
			r.MonthlyPremium.StringFixed(2),
			r.FinalPremium.StringFixed(2),
			"employees=" + strconv.Itoa(r.Census.TotalEmployees),
		}
		if err := w.Write(row); err != nil {
			return nil, err
		}
	}

	if r := report.Depreciation; r != nil {
		row := []string{
			"depreciation",
			"",
			r.OriginalValue.StringFixed(2),
			"",
			"",
			r.SettlementValue.StringFixed(2),
			"depreciation_pct=" + r.DepreciationPercent.StringFixed(0),
		}
		if err := w.Write(row); err != nil {
			return nil, err
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
