package domain

import "github.com/shopspring/decimal"

// EmployeeRecord is one row of a company's employee census. The engine
// only consumes plain records; wherever they originate (spreadsheet
// ingestion, HR systems) is someone else's problem.
type EmployeeRecord struct {
	BirthYear     int             `yaml:"birth_year" json:"birth_year"`
	Gender        string          `yaml:"gender" json:"gender"` // "male" or "female"
	Salary        decimal.Decimal `yaml:"salary" json:"salary"`
	Dependents    int             `yaml:"dependents" json:"dependents"`
	MaritalStatus string          `yaml:"marital_status" json:"marital_status"`
}

// AgeDistribution counts employees per age band.
type AgeDistribution struct {
	Under30 int `yaml:"under_30" json:"under_30"`
	From30  int `yaml:"30_40" json:"30_40"`
	From40  int `yaml:"40_50" json:"40_50"`
	From50  int `yaml:"50_60" json:"50_60"`
	Over60  int `yaml:"over_60" json:"over_60"`
}

// CensusAnalysis summarizes an employee census and the risk factors
// derived from it.
type CensusAnalysis struct {
	TotalEmployees  int             `yaml:"total_employees" json:"total_employees"`
	MaleCount       int             `yaml:"male_count" json:"male_count"`
	FemaleCount     int             `yaml:"female_count" json:"female_count"`
	TotalDependents int             `yaml:"total_dependents" json:"total_dependents"`
	AverageAge      decimal.Decimal `yaml:"average_age" json:"average_age"`
	Ages            AgeDistribution `yaml:"age_distribution" json:"age_distribution"`
	AgeRiskFactor   decimal.Decimal `yaml:"age_risk_factor" json:"age_risk_factor"`
	DependentsRisk  decimal.Decimal `yaml:"dependents_risk_factor" json:"dependents_risk_factor"`
}

// GroupPremiumResult is the outcome of census-based group pricing: the
// census-adjusted base, company factors, sector per-employee limits and
// the administrative loading, each checkpoint rounded to 2 decimals.
type GroupPremiumResult struct {
	QuoteNumber     string          `yaml:"quote_number" json:"quote_number"`
	Census          CensusAnalysis  `yaml:"census" json:"census"`
	BasePremium     decimal.Decimal `yaml:"base_premium" json:"base_premium"`
	Factors         HealthFactors   `yaml:"factors" json:"factors"`
	AdjustedPremium decimal.Decimal `yaml:"adjusted_premium" json:"adjusted_premium"`
	FinalPremium    decimal.Decimal `yaml:"final_premium" json:"final_premium"`
	AnnualPremium   decimal.Decimal `yaml:"annual_premium" json:"annual_premium"`
	MonthlyPremium  decimal.Decimal `yaml:"monthly_premium" json:"monthly_premium"`
}
