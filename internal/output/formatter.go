package output

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/insrate/insrate/internal/domain"
)

// Formatter renders a quote report into one output format.
type Formatter interface {
	Name() string
	Format(report *domain.QuoteReport) ([]byte, error)
}

// GetFormatterByName returns the formatter for the given format name.
func GetFormatterByName(name string) (Formatter, error) {
	switch name {
	case "console", "":
		return ConsoleFormatter{}, nil
	case "json":
		return JSONFormatter{}, nil
	case "csv":
		return CSVFormatter{}, nil
	default:
		return nil, fmt.Errorf("unsupported format: %s (use console, json or csv)", name)
	}
}

// FormatCurrency formats a decimal amount as currency
func FormatCurrency(amount decimal.Decimal) string {
	return "$" + amount.StringFixed(2)
}

// FormatPercentage formats a decimal amount as a percentage
func FormatPercentage(amount decimal.Decimal) string {
	return amount.StringFixed(1) + "%"
}
