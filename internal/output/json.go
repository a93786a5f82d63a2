package output

import (
	json "github.com/goccy/go-json"

	"github.com/insrate/insrate/internal/domain"
)

// JSONFormatter renders a quote report as indented JSON, suitable for
// piping into other tools.
type JSONFormatter struct{}

func (JSONFormatter) Name() string { return "json" }

func (JSONFormatter) Format(report *domain.QuoteReport) ([]byte, error) {
	return json.MarshalIndent(report, "", "  ")
}
