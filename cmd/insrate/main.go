package main

import (
	"fmt"
	"log"
	"os"
	"runtime/debug"
	"time"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/insrate/insrate/internal/config"
	"github.com/insrate/insrate/internal/domain"
	"github.com/insrate/insrate/internal/output"
	"github.com/insrate/insrate/internal/ratetable"
	"github.com/insrate/insrate/internal/rating"
)

// simpleCLILogger implements rating.Logger using the standard log package
type simpleCLILogger struct{}

func (simpleCLILogger) Debugf(format string, args ...any) { log.Printf("DEBUG: "+format, args...) }
func (simpleCLILogger) Infof(format string, args ...any)  { log.Printf("INFO: "+format, args...) }
func (simpleCLILogger) Warnf(format string, args ...any)  { log.Printf("WARN: "+format, args...) }
func (simpleCLILogger) Errorf(format string, args ...any) { log.Printf("ERROR: "+format, args...) }

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(os.Stdout, "insrate %s (commit %s, built %s)\n", version, commit, date)
			if info := buildInfo(); info != "" {
				fmt.Fprintln(os.Stdout, info)
			}
		},
	}
}

func buildInfo() string {
	if bi, ok := debug.ReadBuildInfo(); ok && bi != nil {
		return bi.String()
	}
	return ""
}

var rootCmd = &cobra.Command{
	Use:   "insrate",
	Short: "Insurance premium rating CLI",
	Long:  "Premium rating engine for vehicle and group health insurance",
}

// newEngine builds a rating engine from the --table and --debug flags.
// A missing or corrupt table file is logged and ignored; the engine
// then prices everything with its built-in default rates.
func newEngine(cmd *cobra.Command) *rating.Engine {
	logger := rating.Logger(simpleCLILogger{})
	debugMode, _ := cmd.Flags().GetBool("debug")

	var table *ratetable.Table
	if tablePath, _ := cmd.Flags().GetString("table"); tablePath != "" {
		var err error
		table, err = ratetable.Load(tablePath)
		if err != nil {
			logger.Warnf("rating table %s unavailable, using default rates: %v", tablePath, err)
			table = nil
		}
	}

	engine := rating.NewEngine(table)
	if debugMode {
		engine.SetLogger(logger)
	} else {
		engine.SetLogger(warnOnlyLogger{logger})
	}
	return engine
}

// warnOnlyLogger suppresses debug chatter unless --debug is set.
type warnOnlyLogger struct {
	inner rating.Logger
}

func (l warnOnlyLogger) Debugf(format string, args ...any) {}
func (l warnOnlyLogger) Infof(format string, args ...any)  {}
func (l warnOnlyLogger) Warnf(format string, args ...any)  { l.inner.Warnf(format, args...) }
func (l warnOnlyLogger) Errorf(format string, args ...any) { l.inner.Errorf(format, args...) }

// emit renders the report with the formatter selected by --format.
func emit(cmd *cobra.Command, report *domain.QuoteReport) {
	format, _ := cmd.Flags().GetString("format")
	formatter, err := output.GetFormatterByName(format)
	if err != nil {
		log.Fatal(err)
	}
	data, err := formatter.Format(report)
	if err != nil {
		log.Fatal(err)
	}
	fmt.Print(string(data))
}

func mustDecimalFlag(cmd *cobra.Command, name string) decimal.Decimal {
	raw, _ := cmd.Flags().GetString(name)
	if raw == "" {
		return decimal.Zero
	}
	d, err := decimal.NewFromString(raw)
	if err != nil {
		log.Fatalf("invalid --%s value %q: must be a number", name, raw)
	}
	return d
}

var quoteCmd = &cobra.Command{
	Use:   "quote [request-file]",
	Short: "Quote a request file (vehicle and/or group health)",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		parser := config.NewInputParser()
		request, err := parser.LoadFromFile(args[0])
		if err != nil {
			log.Fatal(err)
		}

		engine := newEngine(cmd)
		report := &domain.QuoteReport{GeneratedAt: time.Now()}

		if v := request.Vehicle; v != nil {
			result := engine.QuoteVehicle(v.Vehicle)
			report.Vehicle = &result

			if v.CoverageDays > 0 {
				premium := engine.CalculateShortTermPremium(result.FinalPremium, v.CoverageDays)
				report.ShortTerm = &domain.ShortTermQuote{
					DurationDays:  v.CoverageDays,
					AnnualPremium: result.FinalPremium,
					Premium:       premium,
				}
			}
			if v.PaymentFrequency != "" {
				schedule := engine.ExpandPaymentSchedule(result.FinalPremium, v.PaymentFrequency)
				report.Schedule = &schedule
			}
		}

		if h := request.Health; h != nil {
			if len(h.Employees) > 0 {
				result := engine.QuoteGroup(h.Company, h.Plan, h.Employees)
				report.Group = &result
			} else {
				result := engine.QuoteHealth(h.Company, h.Plan, h.InsuredCount)
				report.Health = &result
			}
		}

		emit(cmd, report)
	},
}

var validateCmd = &cobra.Command{
	Use:   "validate [request-file]",
	Short: "Validate a quote request file",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		parser := config.NewInputParser()
		if _, err := parser.LoadFromFile(args[0]); err != nil {
			log.Fatal(err)
		}
		fmt.Printf("Request file %s is valid\n", args[0])
	},
}

var vehicleCmd = &cobra.Command{
	Use:   "vehicle",
	Short: "Quote a vehicle premium from flags",
	Run: func(cmd *cobra.Command, args []string) {
		category, _ := cmd.Flags().GetString("category")
		year, _ := cmd.Flags().GetInt("year")
		coverage, _ := cmd.Flags().GetString("coverage")
		driverAge, _ := cmd.Flags().GetInt("driver-age")
		claims, _ := cmd.Flags().GetInt("claims")
		noClaims, _ := cmd.Flags().GetInt("no-claims-years")
		days, _ := cmd.Flags().GetInt("days")
		frequency, _ := cmd.Flags().GetString("frequency")

		input := domain.VehicleInput{
			Category:        domain.VehicleCategory(category),
			ManufactureYear: year,
			CurrentValue:    mustDecimalFlag(cmd, "value"),
			EngineSize:      mustDecimalFlag(cmd, "engine"),
			Coverage:        domain.CoverageTier(coverage),
			DriverAge:       driverAge,
			ClaimsHistory:   claims,
			NoClaimsYears:   noClaims,
		}

		engine := newEngine(cmd)
		result := engine.QuoteVehicle(input)
		report := &domain.QuoteReport{GeneratedAt: time.Now(), Vehicle: &result}

		if days > 0 {
			premium := engine.CalculateShortTermPremium(result.FinalPremium, days)
			report.ShortTerm = &domain.ShortTermQuote{
				DurationDays:  days,
				AnnualPremium: result.FinalPremium,
				Premium:       premium,
			}
		}
		if frequency != "" {
			schedule := engine.ExpandPaymentSchedule(result.FinalPremium, domain.PaymentFrequency(frequency))
			report.Schedule = &schedule
		}

		emit(cmd, report)
	},
}

var healthCmd = &cobra.Command{
	Use:   "health",
	Short: "Quote a group health premium from flags",
	Run: func(cmd *cobra.Command, args []string) {
		sector, _ := cmd.Flags().GetString("sector")
		size, _ := cmd.Flags().GetString("size")
		establishmentAge, _ := cmd.Flags().GetInt("establishment-age")
		risk, _ := cmd.Flags().GetString("risk")
		environment, _ := cmd.Flags().GetString("environment")
		city, _ := cmd.Flags().GetString("city")
		claims, _ := cmd.Flags().GetInt("claims")
		insuredCount, _ := cmd.Flags().GetInt("insured")
		insuranceYears, _ := cmd.Flags().GetInt("insurance-years")
		planName, _ := cmd.Flags().GetString("plan")

		company := domain.CompanyProfile{
			Sector:                 sector,
			SizeCategory:           domain.SizeCategory(size),
			EstablishmentAge:       establishmentAge,
			RiskLevel:              domain.RiskLevel(risk),
			WorkEnvironment:        domain.WorkEnvironment(environment),
			City:                   city,
			ClaimsHistory:          claims,
			HasPreviousInsurance:   insuranceYears > 0,
			PreviousInsuranceYears: insuranceYears,
			TotalEmployees:         insuredCount,
		}
		plan := domain.CoveragePlan{
			Name:                 planName,
			BasePricePerEmployee: mustDecimalFlag(cmd, "base-price"),
		}

		engine := newEngine(cmd)
		result := engine.QuoteHealth(company, plan, insuredCount)
		emit(cmd, &domain.QuoteReport{GeneratedAt: time.Now(), Health: &result})
	},
}

var shortTermCmd = &cobra.Command{
	Use:   "short-term",
	Short: "Prorate an annual premium to a short coverage period",
	Run: func(cmd *cobra.Command, args []string) {
		days, _ := cmd.Flags().GetInt("days")
		annual := mustDecimalFlag(cmd, "annual")

		engine := newEngine(cmd)
		premium := engine.CalculateShortTermPremium(annual, days)
		emit(cmd, &domain.QuoteReport{
			GeneratedAt: time.Now(),
			ShortTerm: &domain.ShortTermQuote{
				DurationDays:  days,
				AnnualPremium: annual,
				Premium:       premium,
			},
		})
	},
}

var depreciationCmd = &cobra.Command{
	Use:   "depreciation",
	Short: "Value a claim settlement with age depreciation",
	Run: func(cmd *cobra.Command, args []string) {
		year, _ := cmd.Flags().GetInt("year")
		lossType, _ := cmd.Flags().GetString("loss")

		engine := newEngine(cmd)
		result := engine.CalculateDepreciation(mustDecimalFlag(cmd, "value"), year, domain.LossType(lossType))
		emit(cmd, &domain.QuoteReport{GeneratedAt: time.Now(), Depreciation: &result})
	},
}

var scheduleCmd = &cobra.Command{
	Use:   "schedule",
	Short: "Expand an annual premium into a payment schedule",
	Run: func(cmd *cobra.Command, args []string) {
		frequency, _ := cmd.Flags().GetString("frequency")

		engine := newEngine(cmd)
		schedule := engine.ExpandPaymentSchedule(mustDecimalFlag(cmd, "annual"), domain.PaymentFrequency(frequency))
		emit(cmd, &domain.QuoteReport{GeneratedAt: time.Now(), Schedule: &schedule})
	},
}

func init() {
	rootCmd.PersistentFlags().String("table", "", "Path to rating table JSON (default rates when omitted)")
	rootCmd.PersistentFlags().String("format", "console", "Output format (console, json, csv)")
	rootCmd.PersistentFlags().Bool("debug", false, "Enable debug logging")

	vehicleCmd.Flags().String("category", "car", "Vehicle category (car, suv, truck, motorcycle)")
	vehicleCmd.Flags().Int("year", time.Now().Year(), "Manufacture year")
	vehicleCmd.Flags().String("value", "0", "Current vehicle value")
	vehicleCmd.Flags().String("engine", "0", "Engine size in liters")
	vehicleCmd.Flags().String("coverage", "comprehensive", "Coverage tier")
	vehicleCmd.Flags().Int("driver-age", 0, "Driver age (0 defaults to 30)")
	vehicleCmd.Flags().Int("claims", 0, "Number of past claims")
	vehicleCmd.Flags().Int("no-claims-years", 0, "Consecutive claim-free years")
	vehicleCmd.Flags().Int("days", 0, "Short-term coverage days (0 for annual)")
	vehicleCmd.Flags().String("frequency", "", "Payment frequency (annual, semi_annual, quarterly, monthly)")

	healthCmd.Flags().String("sector", "", "Company sector code")
	healthCmd.Flags().String("size", "small", "Size category (micro, small, medium, large, enterprise)")
	healthCmd.Flags().Int("establishment-age", 0, "Company age in years")
	healthCmd.Flags().String("risk", "medium", "Occupational risk level")
	healthCmd.Flags().String("environment", "office", "Work environment")
	healthCmd.Flags().String("city", "", "City code")
	healthCmd.Flags().Int("claims", 0, "Claims in the last period")
	healthCmd.Flags().Int("insured", 1, "Number of insured employees")
	healthCmd.Flags().Int("insurance-years", 0, "Years of previous insurance (0 for none)")
	healthCmd.Flags().String("plan", "", "Coverage plan name")
	healthCmd.Flags().String("base-price", "0", "Plan base price per employee (0 for table default)")

	shortTermCmd.Flags().Int("days", 30, "Coverage duration in days")
	shortTermCmd.Flags().String("annual", "0", "Annual premium to prorate")

	depreciationCmd.Flags().String("value", "0", "Original vehicle value")
	depreciationCmd.Flags().Int("year", time.Now().Year(), "Manufacture year")
	depreciationCmd.Flags().String("loss", "partial", "Loss type (partial, total)")

	scheduleCmd.Flags().String("annual", "0", "Annual premium")
	scheduleCmd.Flags().String("frequency", "monthly", "Payment frequency")

	rootCmd.AddCommand(quoteCmd)
	rootCmd.AddCommand(validateCmd)
	rootCmd.AddCommand(vehicleCmd)
	rootCmd.AddCommand(healthCmd)
	rootCmd.AddCommand(shortTermCmd)
	rootCmd.AddCommand(depreciationCmd)
	rootCmd.AddCommand(scheduleCmd)
	rootCmd.AddCommand(versionCmd())
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
