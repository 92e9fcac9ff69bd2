package tuimsg

import (
	"github.com/rgehrsitz/fdcalc/internal/output"
)

// CalculationCompleteMsg carries a finished calculation back to the scene
// that asked for it
type CalculationCompleteMsg struct {
	Calculator string
	Report     *output.Report
	Err        error
}

// ExportedMsg reports where an exported report was written
type ExportedMsg struct {
	Path string
	Err  error
}

// CopiedMsg reports the result of copying a share message to the clipboard
type CopiedMsg struct {
	Err error
}

// ErrorMsg displays an error to the user
type ErrorMsg struct {
	Err error
}

// HomeSelectedMsg asks the root model to open a calculator from the home menu
type HomeSelectedMsg struct {
	Index int
}
