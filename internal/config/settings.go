package config

import (
	"fmt"
	"slices"
	"strings"

	"github.com/rgehrsitz/fdcalc/internal/domain"
	"github.com/spf13/viper"
)

// EnvPrefix namespaces environment overrides, e.g. FDCALC_FORMAT=json
const EnvPrefix = "FDCALC"

// FormatNames are the report formats the CLI and the TUI can render
var FormatNames = []string{"console", "csv", "json", "html", "share", "whatsapp"}

// FormatAliases maps accepted alternative names onto FormatNames
var FormatAliases = map[string]string{
	"text":    "console",
	"excel":   "csv",
	"print":   "html",
	"pdf":     "html",
	"message": "share",
}

// ResolveFormat normalizes name and follows aliases. The bool reports
// whether the result is one of FormatNames.
func ResolveFormat(name string) (string, bool) {
	key := strings.ToLower(strings.TrimSpace(name))
	if target, ok := FormatAliases[key]; ok {
		key = target
	}
	return key, slices.Contains(FormatNames, key)
}

// Settings holds application settings shared by the CLI and the TUI
type Settings struct {
	// Optional YAML file replacing the built-in tables
	TablesFile string `mapstructure:"tables_file"`

	// Default output format, one of FormatNames or FormatAliases
	Format string `mapstructure:"format"`

	// Verbose engine logging
	Debug bool `mapstructure:"debug"`

	// Symbol printed in front of amounts
	CurrencySymbol string `mapstructure:"currency_symbol"`

	// Footer line on exported reports
	ReportFooter string `mapstructure:"report_footer"`
}

// DefaultSettings returns settings with sensible defaults
func DefaultSettings() *Settings {
	return &Settings{
		Format:         "console",
		Debug:          false,
		CurrencySymbol: "₹",
		ReportFooter:   "This is a computer-generated document from OGB Calculator",
	}
}

// NewViper returns a viper instance primed with defaults and environment
// bindings. Callers may bind command-line flags on it before LoadSettings.
func NewViper() *viper.Viper {
	v := viper.New()
	d := DefaultSettings()
	v.SetDefault("tables_file", d.TablesFile)
	v.SetDefault("format", d.Format)
	v.SetDefault("debug", d.Debug)
	v.SetDefault("currency_symbol", d.CurrencySymbol)
	v.SetDefault("report_footer", d.ReportFooter)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))
	v.AutomaticEnv()
	return v
}

// LoadSettings reads an optional settings file into v and unmarshals the
// merged result
func LoadSettings(v *viper.Viper, path string) (*Settings, error) {
	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read settings %s: %w", path, err)
		}
	}

	s := DefaultSettings()
	if err := v.Unmarshal(s); err != nil {
		return nil, fmt.Errorf("failed to unmarshal settings: %w", err)
	}

	if err := s.Validate(); err != nil {
		return nil, err
	}
	s.Format, _ = ResolveFormat(s.Format)
	return s, nil
}

// Validate checks if the settings are usable
func (s *Settings) Validate() error {
	var errs []string

	if _, ok := ResolveFormat(s.Format); !ok {
		errs = append(errs, fmt.Sprintf("format %q must be one of %s", s.Format, strings.Join(FormatNames, ", ")))
	}
	if s.CurrencySymbol == "" {
		errs = append(errs, "currency_symbol must not be empty")
	}

	if len(errs) > 0 {
		return fmt.Errorf("validation errors:\n  - %s", strings.Join(errs, "\n  - "))
	}
	return nil
}

// LoadTables returns the tables named by the settings, or the built-in ones
func (s *Settings) LoadTables() (*domain.Tables, error) {
	if s.TablesFile == "" {
		return DefaultTables(), nil
	}
	return NewInputParser().LoadTablesFromFile(s.TablesFile)
}
