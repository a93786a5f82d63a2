package tui

import (
	"fmt"
	"strconv"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/shopspring/decimal"

	"github.com/insrate/insrate/internal/domain"
	"github.com/insrate/insrate/internal/rating"
)

// Form field order. fieldCount sentinel keeps the slices in sync.
const (
	fieldCategory = iota
	fieldYear
	fieldValue
	fieldEngine
	fieldCoverage
	fieldDriverAge
	fieldClaims
	fieldNoClaims
	fieldFrequency
	fieldCount
)

var fieldLabels = [fieldCount]string{
	"Category",
	"Manufacture Year",
	"Current Value",
	"Engine Size (L)",
	"Coverage",
	"Driver Age",
	"Past Claims",
	"No-Claims Years",
	"Payment Frequency",
}

var fieldPlaceholders = [fieldCount]string{
	"car / suv / truck / motorcycle",
	"2022",
	"30000",
	"2.5",
	"third_party / third_party_fire_theft / comprehensive",
	"35",
	"0",
	"0",
	"annual / semi_annual / quarterly / monthly",
}

// keyMap defines the keyboard shortcuts for the calculator.
type keyMap struct {
	Next      key.Binding
	Prev      key.Binding
	Calculate key.Binding
	Quit      key.Binding
}

var defaultKeys = keyMap{
	Next: key.NewBinding(
		key.WithKeys("tab", "down"),
		key.WithHelp("tab", "next field"),
	),
	Prev: key.NewBinding(
		key.WithKeys("shift+tab", "up"),
		key.WithHelp("shift+tab", "previous field"),
	),
	Calculate: key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("enter", "calculate"),
	),
	Quit: key.NewBinding(
		key.WithKeys("ctrl+c", "esc"),
		key.WithHelp("esc", "quit"),
	),
}

// Model is the interactive vehicle premium calculator.
type Model struct {
	engine *rating.Engine
	keys   keyMap

	inputs []textinput.Model
	focus  int

	result   *domain.PremiumResult
	schedule *domain.PaymentSchedule
	err      error

	width  int
	height int
}

// NewModel creates the calculator model backed by the given rating
// engine.
func NewModel(engine *rating.Engine) Model {
	inputs := make([]textinput.Model, fieldCount)
	for i := range inputs {
		ti := textinput.New()
		ti.Placeholder = fieldPlaceholders[i]
		ti.CharLimit = 52
		ti.Width = 52
		inputs[i] = ti
	}
	inputs[fieldCategory].Focus()

	return Model{
		engine: engine,
		keys:   defaultKeys,
		inputs: inputs,
		width:  80,
		height: 24,
	}
}

// Init starts the cursor blink (required by tea.Model).
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// calculate parses the form and runs the rating engine. Blank numeric
// fields fall back to zero values the engine already knows how to
// default.
func (m *Model) calculate() {
	m.result = nil
	m.schedule = nil
	m.err = nil

	year, err := parseIntField(m.inputs[fieldYear].Value(), "manufacture year")
	if err != nil {
		m.err = err
		return
	}
	value, err := parseDecimalField(m.inputs[fieldValue].Value(), "current value")
	if err != nil {
		m.err = err
		return
	}
	engineSize, err := parseDecimalField(m.inputs[fieldEngine].Value(), "engine size")
	if err != nil {
		m.err = err
		return
	}
	driverAge, err := parseIntField(m.inputs[fieldDriverAge].Value(), "driver age")
	if err != nil {
		m.err = err
		return
	}
	claims, err := parseIntField(m.inputs[fieldClaims].Value(), "past claims")
	if err != nil {
		m.err = err
		return
	}
	noClaims, err := parseIntField(m.inputs[fieldNoClaims].Value(), "no-claims years")
	if err != nil {
		m.err = err
		return
	}

	input := domain.VehicleInput{
		Category:        domain.VehicleCategory(m.inputs[fieldCategory].Value()),
		ManufactureYear: year,
		CurrentValue:    value,
		EngineSize:      engineSize,
		Coverage:        domain.CoverageTier(m.inputs[fieldCoverage].Value()),
		DriverAge:       driverAge,
		ClaimsHistory:   claims,
		NoClaimsYears:   noClaims,
	}

	result := m.engine.CalculateVehiclePremium(input)
	m.result = &result

	if freq := m.inputs[fieldFrequency].Value(); freq != "" {
		schedule := m.engine.ExpandPaymentSchedule(result.FinalPremium, domain.PaymentFrequency(freq))
		m.schedule = &schedule
	}
}

func parseIntField(raw, name string) (int, error) {
	if raw == "" {
		return 0, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("%s must be a whole number", name)
	}
	return n, nil
}

func parseDecimalField(raw, name string) (decimal.Decimal, error) {
	if raw == "" {
		return decimal.Zero, nil
	}
	d, err := decimal.NewFromString(raw)
	if err != nil {
		return decimal.Zero, fmt.Errorf("%s must be a number", name)
	}
	return d, nil
}
