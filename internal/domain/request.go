package domain

// VehicleQuoteRequest is one vehicle quote read from a request file.
// CoverageDays > 0 asks for a short-term policy priced as a percentage
// of the annual premium.
type VehicleQuoteRequest struct {
	Vehicle          VehicleInput     `yaml:"vehicle" json:"vehicle"`
	CoverageDays     int              `yaml:"coverage_days" json:"coverage_days"`
	PaymentFrequency PaymentFrequency `yaml:"payment_frequency" json:"payment_frequency"`
}

// HealthQuoteRequest is one group health quote read from a request
// file. When Employees is non-empty the census engine prices the
// group; otherwise InsuredCount drives the headcount-based rater.
type HealthQuoteRequest struct {
	Company      CompanyProfile   `yaml:"company" json:"company"`
	Plan         CoveragePlan     `yaml:"plan" json:"plan"`
	InsuredCount int              `yaml:"insured_count" json:"insured_count"`
	Employees    []EmployeeRecord `yaml:"employees" json:"employees"`
}

// QuoteRequest is the top-level structure of a quote request file. At
// least one section must be present; both may be.
type QuoteRequest struct {
	Vehicle *VehicleQuoteRequest `yaml:"vehicle_quote" json:"vehicle_quote"`
	Health  *HealthQuoteRequest  `yaml:"health_quote" json:"health_quote"`
}
