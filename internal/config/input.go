package config

import (
	"fmt"
	"os"
	"time"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"

	"github.com/insrate/insrate/internal/domain"
)

// InputParser handles parsing of quote request files
type InputParser struct{}

// NewInputParser creates a new input parser
func NewInputParser() *InputParser {
	return &InputParser{}
}

// LoadFromFile loads a quote request from a YAML or JSON file
func (ip *InputParser) LoadFromFile(filename string) (*domain.QuoteRequest, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", filename, err)
	}

	var request domain.QuoteRequest
	if err := yaml.Unmarshal(data, &request); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if err := ip.ValidateRequest(&request); err != nil {
		return nil, fmt.Errorf("request validation failed: %w", err)
	}

	return &request, nil
}

// ValidateRequest validates the loaded quote request. Validation is
// structural only: unknown categories, coverage tiers, sectors and
// frequencies are deliberately NOT rejected here because the rating
// engine resolves them with documented fallbacks.
func (ip *InputParser) ValidateRequest(request *domain.QuoteRequest) error {
	if request.Vehicle == nil && request.Health == nil {
		return fmt.Errorf("request must contain a vehicle_quote or health_quote section")
	}

	if request.Vehicle != nil {
		if err := ip.validateVehicleRequest(request.Vehicle); err != nil {
			return fmt.Errorf("vehicle quote validation failed: %w", err)
		}
	}
	if request.Health != nil {
		if err := ip.validateHealthRequest(request.Health); err != nil {
			return fmt.Errorf("health quote validation failed: %w", err)
		}
	}
	return nil
}

// validateVehicleRequest validates a vehicle quote section
func (ip *InputParser) validateVehicleRequest(request *domain.VehicleQuoteRequest) error {
	v := request.Vehicle

	if v.Category == "" {
		return fmt.Errorf("vehicle category is required")
	}
	if v.ManufactureYear < 1900 {
		return fmt.Errorf("manufacture year must be 1900 or later")
	}
	if v.ManufactureYear > time.Now().Year()+1 {
		return fmt.Errorf("manufacture year cannot be more than one year in the future")
	}
	if v.CurrentValue.LessThanOrEqual(decimal.Zero) {
		return fmt.Errorf("current value must be positive")
	}
	if v.EngineSize.LessThan(decimal.Zero) {
		return fmt.Errorf("engine size cannot be negative")
	}
	if v.DriverAge < 0 {
		return fmt.Errorf("driver age cannot be negative")
	}
	if v.DriverAge > 0 && v.DriverAge < 16 {
		return fmt.Errorf("driver age must be at least 16")
	}
	if v.ClaimsHistory < 0 {
		return fmt.Errorf("claims history cannot be negative")
	}
	if v.NoClaimsYears < 0 {
		return fmt.Errorf("no claims years cannot be negative")
	}
	if v.ClaimsHistory > 0 && v.NoClaimsYears > 0 {
		return fmt.Errorf("claims history and no claims years are mutually exclusive")
	}

	if request.CoverageDays < 0 {
		return fmt.Errorf("coverage days cannot be negative")
	}
	if request.CoverageDays > 365 {
		return fmt.Errorf("coverage days cannot exceed 365, use an annual policy")
	}

	return nil
}

// validateHealthRequest validates a health quote section
func (ip *InputParser) validateHealthRequest(request *domain.HealthQuoteRequest) error {
	if request.Company.Sector == "" {
		return fmt.Errorf("company sector is required")
	}
	if request.Company.EstablishmentAge < 0 {
		return fmt.Errorf("establishment age cannot be negative")
	}
	if request.Company.ClaimsHistory < 0 {
		return fmt.Errorf("claims history cannot be negative")
	}
	if request.Company.HasPreviousInsurance && request.Company.PreviousInsuranceYears < 0 {
		return fmt.Errorf("previous insurance years cannot be negative")
	}
	if request.Company.TotalEmployees < 0 {
		return fmt.Errorf("total employees cannot be negative")
	}

	if request.Plan.BasePricePerEmployee.LessThan(decimal.Zero) {
		return fmt.Errorf("plan base price per employee cannot be negative")
	}
	if request.Plan.MaxEmployees < 0 {
		return fmt.Errorf("plan max employees cannot be negative")
	}

	if len(request.Employees) == 0 && request.InsuredCount < 1 {
		return fmt.Errorf("insured count must be at least 1 when no employee census is provided")
	}

	currentYear := time.Now().Year()
	for i, emp := range request.Employees {
		if err := ip.validateEmployee(currentYear, &emp); err != nil {
			return fmt.Errorf("employee %d validation failed: %w", i, err)
		}
	}

	return nil
}

// validateEmployee validates a single census row
func (ip *InputParser) validateEmployee(currentYear int, employee *domain.EmployeeRecord) error {
	if employee.BirthYear == 0 {
		return fmt.Errorf("birth year is required")
	}
	if employee.BirthYear > currentYear-16 {
		return fmt.Errorf("employee must be at least 16 years old")
	}
	if employee.BirthYear < currentYear-100 {
		return fmt.Errorf("birth year implies an age over 100")
	}
	if employee.Salary.LessThan(decimal.Zero) {
		return fmt.Errorf("salary cannot be negative")
	}
	if employee.Dependents < 0 {
		return fmt.Errorf("dependents cannot be negative")
	}
	return nil
}
