package cli

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/huh"
	"gopkg.in/yaml.v3"

	"github.com/rileyhilliard/statdeck/internal/config"
	"github.com/rileyhilliard/statdeck/internal/errors"
	"github.com/rileyhilliard/statdeck/internal/format"
	"github.com/rileyhilliard/statdeck/internal/ui"
)

// InitOptions holds options for the init command.
type InitOptions struct {
	Locale         string // Pre-specified BCP 47 locale
	Currency       string // Pre-specified ISO 4217 code
	Symbol         string // Optional symbol override
	Overwrite      bool   // Overwrite existing config without asking
	NonInteractive bool   // Skip prompts, use defaults
	Out            io.Writer
}

// localeChoices are offered by the interactive form.
var localeChoices = []huh.Option[string]{
	huh.NewOption("English (India) · 1,23,456", "en-IN"),
	huh.NewOption("English (US) · 123,456", "en-US"),
	huh.NewOption("English (UK) · 123,456", "en-GB"),
	huh.NewOption("German · 123.456", "de-DE"),
	huh.NewOption("French · 123 456", "fr-FR"),
}

const configHeader = `# statdeck configuration
# Run 'statdeck dash' to open the dashboard
# Pipe "key value" lines into it to update cards live

`

// Init creates a new .statdeck.yaml configuration file.
func Init(opts InitOptions) error {
	out := opts.Out
	if out == nil {
		out = os.Stdout
	}
	configPath := filepath.Join(".", config.ConfigFileName)

	if _, err := os.Stat(configPath); err == nil && !opts.Overwrite {
		if opts.NonInteractive {
			return errors.New(errors.ErrConfig,
				fmt.Sprintf("Config file already exists: %s", configPath),
				"Use --force to overwrite")
		}

		var overwrite bool
		form := huh.NewForm(
			huh.NewGroup(
				huh.NewConfirm().
					Title(fmt.Sprintf("Config file '%s' already exists. Overwrite?", config.ConfigFileName)).
					Value(&overwrite),
			),
		)
		if err := form.Run(); err != nil {
			return errors.WrapWithCode(err, errors.ErrConfig,
				"Failed to get user input",
				"Try running with --force to overwrite")
		}
		if !overwrite {
			fmt.Fprintln(out, "Cancelled.")
			return nil
		}
	}

	if !opts.NonInteractive {
		if err := promptFormat(&opts); err != nil {
			return err
		}
	}

	cfg, err := buildInitConfig(opts)
	if err != nil {
		return err
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return errors.WrapWithCode(err, errors.ErrConfig,
			"Failed to generate config",
			"This shouldn't happen - please report this bug")
	}

	if err := os.WriteFile(configPath, []byte(configHeader+string(data)), 0644); err != nil {
		return errors.WrapWithCode(err, errors.ErrConfig,
			fmt.Sprintf("Failed to write config file: %s", configPath),
			"Check directory permissions")
	}

	fmt.Fprintf(out, "%s Created %s\n\n", ui.SymbolSuccess, configPath)
	fmt.Fprintln(out, "Next steps:")
	fmt.Fprintln(out, "  statdeck dash                 - Open the dashboard")
	fmt.Fprintln(out, "  statdeck set revenue 15000    - Change a card's value")
	fmt.Fprintln(out, "  statdeck render --table       - Print the current values")

	return nil
}

// promptFormat asks for the locale and currency, keeping any preset values.
func promptFormat(opts *InitOptions) error {
	if opts.Locale == "" {
		opts.Locale = format.DefaultLocale
	}
	if opts.Currency == "" {
		opts.Currency = format.DefaultCurrency
	}

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Number format").
				Description("Controls digit grouping for every value").
				Options(localeChoices...).
				Value(&opts.Locale),
		),
		huh.NewGroup(
			huh.NewInput().
				Title("Currency code").
				Description("ISO 4217 code used by currency cards").
				Placeholder(format.DefaultCurrency).
				Value(&opts.Currency).
				Validate(validateCurrency),
			huh.NewInput().
				Title("Currency symbol (optional)").
				Description("Leave empty to use the currency's own symbol").
				Value(&opts.Symbol),
		),
	)

	if err := form.Run(); err != nil {
		return errors.WrapWithCode(err, errors.ErrConfig,
			"Failed to get user input",
			"Check terminal compatibility or use --yes")
	}
	return nil
}

func validateCurrency(s string) error {
	s = strings.TrimSpace(s)
	if s == "" {
		return fmt.Errorf("currency code is required")
	}
	if _, err := format.New(format.Options{Currency: s}); err != nil {
		return fmt.Errorf("unknown currency code %q", s)
	}
	return nil
}

// buildInitConfig returns the defaults with the chosen format applied.
// A currency change without a symbol drops the default ₹ so the symbol
// is derived from the new currency.
func buildInitConfig(opts InitOptions) (*config.Config, error) {
	cfg := config.DefaultConfig()

	if loc := strings.TrimSpace(opts.Locale); loc != "" {
		cfg.Format.Locale = loc
	}
	if cur := strings.ToUpper(strings.TrimSpace(opts.Currency)); cur != "" && cur != cfg.Format.Currency {
		cfg.Format.Currency = cur
		cfg.Format.Symbol = ""
	}
	if sym := strings.TrimSpace(opts.Symbol); sym != "" {
		cfg.Format.Symbol = sym
	}

	if _, err := config.FormatterFor(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}
