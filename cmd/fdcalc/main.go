package main

import (
	"fmt"
	"os"
	"runtime/debug"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/rgehrsitz/fdcalc/internal/calculation"
	"github.com/rgehrsitz/fdcalc/internal/config"
	"github.com/rgehrsitz/fdcalc/internal/output"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

// app is the state shared by every subcommand once settings are loaded
type app struct {
	v        *viper.Viper
	settings *config.Settings
	engine   *calculation.CalculationEngine
	builder  *output.ReportBuilder
	logger   *zap.Logger
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "fdcalc %s (commit %s, built %s)\n", version, commit, date)
			if info := buildInfo(); info != "" {
				fmt.Fprintln(cmd.OutOrStdout(), info)
			}
		},
	}
}

func buildInfo() string {
	if bi, ok := debug.ReadBuildInfo(); ok && bi != nil {
		return bi.Main.Path + " " + bi.GoVersion
	}
	return ""
}

// newLogger builds a development logger under --debug and a quiet production
// logger otherwise
func newLogger(debugMode bool) (*zap.Logger, error) {
	if debugMode {
		return zap.NewDevelopment()
	}
	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(zap.WarnLevel)
	return cfg.Build()
}

// setup loads settings, tables and the logger. It runs before every
// subcommand except version.
func (a *app) setup(cmd *cobra.Command) error {
	configPath, _ := cmd.Flags().GetString("config")
	settings, err := config.LoadSettings(a.v, configPath)
	if err != nil {
		return err
	}
	a.settings = settings

	logger, err := newLogger(settings.Debug)
	if err != nil {
		return fmt.Errorf("failed to create logger: %w", err)
	}
	a.logger = logger

	tables, err := settings.LoadTables()
	if err != nil {
		return err
	}
	if settings.TablesFile != "" {
		logger.Info("loaded tables", zap.String("file", settings.TablesFile), zap.String("bank", tables.Metadata.Bank))
	}

	a.engine = calculation.NewCalculationEngineWithTables(tables)
	a.engine.SetLogger(logger.Sugar())

	a.builder = output.NewReportBuilder(tables.Metadata.Bank)
	a.builder.CurrencySymbol = settings.CurrencySymbol
	a.builder.Footer = settings.ReportFooter
	return nil
}

// render writes the report in the configured format, to stdout or, with
// --save, to a timestamped file
func (a *app) render(cmd *cobra.Command, r *output.Report) error {
	f := output.GetFormatterByName(a.settings.Format)
	if f == nil {
		return fmt.Errorf("unsupported format: %s", a.settings.Format)
	}

	if save, _ := cmd.Flags().GetBool("save"); save {
		path, err := output.WriteFormatted(f, r, output.Extension(f))
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Report saved to %s\n", path)
		return nil
	}

	data, err := f.Format(r)
	if err != nil {
		return err
	}
	_, err = cmd.OutOrStdout().Write(data)
	return err
}

func newRootCmd() *cobra.Command {
	a := &app{v: config.NewViper()}

	root := &cobra.Command{
		Use:   "fdcalc",
		Short: "Fixed deposit and banking calculators",
		Long: `Term deposit interest, monthly income scheme, NEFT/IMPS charges and
PMSBY/PMJJBY/APY eligibility calculators over a bank's published rate card.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if cmd.Name() == "version" || cmd.Name() == "help" {
				return nil
			}
			return a.setup(cmd)
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if a.logger != nil {
				_ = a.logger.Sync()
			}
		},
	}

	flags := root.PersistentFlags()
	flags.String("config", "", "Settings file (yaml, json or toml)")
	flags.String("tables", "", "Rate, charge and scheme tables file (default: built-in tables)")
	flags.StringP("format", "f", "console", fmt.Sprintf("Output format (%s; aliases %s)",
		strings.Join(output.AvailableFormatterNames(), ", "), strings.Join(output.AvailableFormatAliases(), ", ")))
	flags.Bool("debug", false, "Enable debug logging")
	flags.StringP("input", "i", "", "Read the request from a YAML file instead of flags")
	flags.Bool("save", false, "Write the report to a timestamped file instead of stdout")

	_ = a.v.BindPFlag("tables_file", flags.Lookup("tables"))
	_ = a.v.BindPFlag("format", flags.Lookup("format"))
	_ = a.v.BindPFlag("debug", flags.Lookup("debug"))

	root.AddCommand(interestCmd(a))
	root.AddCommand(timePeriodCmd(a))
	root.AddCommand(monthlyIncomeCmd(a))
	root.AddCommand(chargesCmd(a))
	root.AddCommand(eligibilityCmd(a))
	root.AddCommand(ratesCmd(a))
	root.AddCommand(validateCmd(a))
	root.AddCommand(exportTablesCmd(a))
	root.AddCommand(versionCmd())
	return root
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
