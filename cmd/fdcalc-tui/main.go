package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/rgehrsitz/fdcalc/internal/calculation"
	"github.com/rgehrsitz/fdcalc/internal/config"
	"github.com/rgehrsitz/fdcalc/internal/output"
	"github.com/rgehrsitz/fdcalc/internal/tui"
)

// fileLogger writes development logs to path; the terminal belongs to the UI
func fileLogger(path string) (*zap.Logger, error) {
	cfg := zap.NewDevelopmentConfig()
	cfg.OutputPaths = []string{path}
	cfg.ErrorOutputPaths = []string{path}
	return cfg.Build()
}

func newRootCmd() *cobra.Command {
	v := config.NewViper()

	cmd := &cobra.Command{
		Use:          "fdcalc-tui",
		Short:        "Interactive deposit and scheme calculators",
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			configPath, _ := cmd.Flags().GetString("config")
			settings, err := config.LoadSettings(v, configPath)
			if err != nil {
				return err
			}

			tables, err := settings.LoadTables()
			if err != nil {
				return err
			}
			engine := calculation.NewCalculationEngineWithTables(tables)

			if logPath, _ := cmd.Flags().GetString("log"); logPath != "" {
				logger, err := fileLogger(logPath)
				if err != nil {
					return fmt.Errorf("failed to create logger: %w", err)
				}
				defer func() { _ = logger.Sync() }()
				engine.SetLogger(logger.Sugar())
			}

			builder := output.NewReportBuilder(tables.Metadata.Bank)
			builder.CurrencySymbol = settings.CurrencySymbol
			builder.Footer = settings.ReportFooter

			p := tea.NewProgram(
				tui.NewModel(engine, builder),
				tea.WithAltScreen(), // Use alternate screen buffer
			)
			if _, err := p.Run(); err != nil {
				return fmt.Errorf("error running TUI: %w", err)
			}
			return nil
		},
	}

	cmd.Flags().String("config", "", "Settings file")
	cmd.Flags().String("tables", "", "Rate, charge and scheme tables file (default: built-in tables)")
	cmd.Flags().String("log", "", "Write debug logs to this file")
	_ = v.BindPFlag("tables_file", cmd.Flags().Lookup("tables"))
	return cmd
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
