package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/rgehrsitz/fdcalc/internal/calculation"
	"github.com/rgehrsitz/fdcalc/internal/output"
	"github.com/rgehrsitz/fdcalc/internal/tui/scenes"
)

// Model represents the entire application state
type Model struct {
	// Navigation
	currentScene Scene

	// Terminal dimensions
	width  int
	height int

	engine *calculation.CalculationEngine

	// Scene models
	homeModel          *scenes.HomeModel
	interestModel      *scenes.CalculatorModel
	monthlyIncomeModel *scenes.CalculatorModel
	chargesModel       *scenes.CalculatorModel
	eligibilityModel   *scenes.CalculatorModel
	ratesModel         *scenes.RatesModel

	// Last export or copy outcome, shown in the status bar
	status    string
	statusErr bool
}

// NewModel creates a new application model
func NewModel(engine *calculation.CalculationEngine, builder *output.ReportBuilder) Model {
	items := make([]scenes.MenuItem, 0, len(menuScenes))
	descriptions := map[Scene]string{
		SceneInterest:      "maturity value, premature closure",
		SceneMonthlyIncome: "monthly payout on a deposit",
		SceneCharges:       "outward transfer fee with GST",
		SceneEligibility:   "PMSBY, PMJJBY and APY by age",
		SceneRates:         "current deposit rate cards",
	}
	for _, s := range menuScenes {
		items = append(items, scenes.MenuItem{Title: s.String(), Description: descriptions[s]})
	}

	return Model{
		currentScene:       SceneHome,
		engine:             engine,
		homeModel:          scenes.NewHomeModel(items, engine.Tables.Metadata),
		interestModel:      scenes.NewInterestModel(engine, builder),
		monthlyIncomeModel: scenes.NewMonthlyIncomeModel(engine, builder),
		chargesModel:       scenes.NewChargesModel(engine, builder),
		eligibilityModel:   scenes.NewEligibilityModel(engine, builder),
		ratesModel:         scenes.NewRatesModel(engine.Tables, builder),
		width:              80,
		height:             24,
	}
}

// Init initializes the model (required by tea.Model interface)
func (m Model) Init() tea.Cmd {
	return nil
}

// CurrentScene returns the scene on display
func (m Model) CurrentScene() Scene { return m.currentScene }

// Status returns the status line text
func (m Model) Status() string { return m.status }

// calculator returns the calculator behind a scene, or nil
func (m Model) calculator(s Scene) *scenes.CalculatorModel {
	switch s {
	case SceneInterest:
		return m.interestModel
	case SceneMonthlyIncome:
		return m.monthlyIncomeModel
	case SceneCharges:
		return m.chargesModel
	case SceneEligibility:
		return m.eligibilityModel
	}
	return nil
}

// calculators lists every calculator scene model
func (m Model) calculators() []*scenes.CalculatorModel {
	return []*scenes.CalculatorModel{m.interestModel, m.monthlyIncomeModel, m.chargesModel, m.eligibilityModel}
}
