package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// SizeCategory buckets a company by headcount.
type SizeCategory string

const (
	SizeMicro      SizeCategory = "micro"
	SizeSmall      SizeCategory = "small"
	SizeMedium     SizeCategory = "medium"
	SizeLarge      SizeCategory = "large"
	SizeEnterprise SizeCategory = "enterprise"
)

// RiskLevel is the declared occupational risk of a company.
type RiskLevel string

const (
	RiskLow      RiskLevel = "low"
	RiskMedium   RiskLevel = "medium"
	RiskHigh     RiskLevel = "high"
	RiskVeryHigh RiskLevel = "very_high"
)

// WorkEnvironment describes where employees spend their working time.
type WorkEnvironment string

const (
	EnvOffice    WorkEnvironment = "office"
	EnvField     WorkEnvironment = "field"
	EnvMixed     WorkEnvironment = "mixed"
	EnvRemote    WorkEnvironment = "remote"
	EnvHazardous WorkEnvironment = "hazardous"
)

// CompanyProfile carries the risk attributes the health rater prices on.
// Sector codes follow a prefix convention (health_, tech_, construction_,
// retail_, services_); unknown codes fall back to their prefix group.
type CompanyProfile struct {
	Sector                 string          `yaml:"sector" json:"sector"`
	SizeCategory           SizeCategory    `yaml:"size_category" json:"size_category"`
	EstablishmentAge       int             `yaml:"establishment_age" json:"establishment_age"`
	RiskLevel              RiskLevel       `yaml:"risk_level" json:"risk_level"`
	WorkEnvironment        WorkEnvironment `yaml:"work_environment" json:"work_environment"`
	City                   string          `yaml:"city" json:"city"`
	ClaimsHistory          int             `yaml:"claims_history" json:"claims_history"`
	HasPreviousInsurance   bool            `yaml:"has_previous_insurance" json:"has_previous_insurance"`
	PreviousInsuranceYears int             `yaml:"previous_insurance_years" json:"previous_insurance_years"`
	TotalEmployees         int             `yaml:"total_employees" json:"total_employees"`
}

// CoveragePlan is the health product a company is quoted against.
type CoveragePlan struct {
	Name                 string          `yaml:"name" json:"name"`
	PlanType             string          `yaml:"plan_type" json:"plan_type"`
	BasePricePerEmployee decimal.Decimal `yaml:"base_price_per_employee" json:"base_price_per_employee"`
	MaxEmployees         int             `yaml:"max_employees" json:"max_employees"` // 0 means no cap
}

// HealthFactors holds every resolved multiplier for a health quote.
type HealthFactors struct {
	Sector           decimal.Decimal `yaml:"sector_factor" json:"sector_factor"`
	Size             decimal.Decimal `yaml:"size_factor" json:"size_factor"`
	Age              decimal.Decimal `yaml:"age_factor" json:"age_factor"`
	Risk             decimal.Decimal `yaml:"risk_factor" json:"risk_factor"`
	Environment      decimal.Decimal `yaml:"environment_factor" json:"environment_factor"`
	City             decimal.Decimal `yaml:"city_factor" json:"city_factor"`
	Claims           decimal.Decimal `yaml:"claims_factor" json:"claims_factor"`
	InsuranceHistory decimal.Decimal `yaml:"insurance_history_factor" json:"insurance_history_factor"`
}

// Total multiplies all factors together.
func (f HealthFactors) Total() decimal.Decimal {
	total := decimal.NewFromInt(1)
	for _, v := range []decimal.Decimal{
		f.Sector, f.Size, f.Age, f.Risk,
		f.Environment, f.City, f.Claims, f.InsuranceHistory,
	} {
		total = total.Mul(v)
	}
	return total
}

// HealthPremiumResult is the output of a group health premium
// calculation. Unlike the vehicle engine, every monetary figure here is
// rounded half-up to 2 decimals at its own checkpoint.
type HealthPremiumResult struct {
	QuoteNumber        string          `yaml:"quote_number" json:"quote_number"`
	BasePremium        decimal.Decimal `yaml:"base_premium" json:"base_premium"`
	TotalPremium       decimal.Decimal `yaml:"total_premium" json:"total_premium"`
	AnnualPremium      decimal.Decimal `yaml:"annual_premium" json:"annual_premium"`
	MonthlyPremium     decimal.Decimal `yaml:"monthly_premium" json:"monthly_premium"`
	PremiumPerEmployee decimal.Decimal `yaml:"premium_per_employee" json:"premium_per_employee"`
	InsuredCount       int             `yaml:"insured_count" json:"insured_count"`
	Factors            HealthFactors   `yaml:"factors" json:"factors"`
	Plan               CoveragePlan    `yaml:"plan" json:"plan"`
	ValidUntil         time.Time       `yaml:"valid_until" json:"valid_until"`
}
