package tui

// Scene represents different screens in the TUI
type Scene int

const (
	SceneHome Scene = iota
	SceneInterest
	SceneMonthlyIncome
	SceneCharges
	SceneEligibility
	SceneRates
	SceneHelp
)

// menuScenes maps home menu entries to scenes, in menu order
var menuScenes = []Scene{
	SceneInterest,
	SceneMonthlyIncome,
	SceneCharges,
	SceneEligibility,
	SceneRates,
}

// NavigateMsg switches to a different scene
type NavigateMsg struct {
	Scene Scene
}

// QuitMsg signals the application should exit
type QuitMsg struct{}

// String returns a human-readable name for a scene
func (s Scene) String() string {
	switch s {
	case SceneHome:
		return "Home"
	case SceneInterest:
		return "Term Deposit"
	case SceneMonthlyIncome:
		return "Monthly Income"
	case SceneCharges:
		return "NEFT / IMPS Charges"
	case SceneEligibility:
		return "Scheme Eligibility"
	case SceneRates:
		return "Rate Cards"
	case SceneHelp:
		return "Help"
	default:
		return "Unknown"
	}
}
