package config

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/rileyhilliard/statdeck/internal/errors"
	"github.com/rileyhilliard/statdeck/internal/format"
)

// Validate checks the config for errors and returns structured error messages.
func Validate(cfg *Config) error {
	if cfg == nil {
		return errors.New(errors.ErrConfig,
			"Config is nil",
			"This is unexpected - try reloading the configuration.")
	}

	if cfg.Version > CurrentConfigVersion {
		return errors.New(errors.ErrConfig,
			fmt.Sprintf("This config is from the future (version %d, but statdeck only knows up to %d)", cfg.Version, CurrentConfigVersion),
			"Upgrade statdeck, or lower the version in .statdeck.yaml.")
	}

	if err := validateAnimation(cfg.Animation); err != nil {
		return errors.WrapWithCode(err, errors.ErrConfig, err.Error(), "Check the 'animation' section in your .statdeck.yaml.")
	}

	if _, err := FormatterFor(cfg); err != nil {
		return errors.WrapWithCode(err, errors.ErrConfig, "Invalid 'format' section", "Check the 'format' section in your .statdeck.yaml.")
	}

	if err := validateOutput(cfg.Output); err != nil {
		return errors.WrapWithCode(err, errors.ErrConfig, err.Error(), "Check the 'output' section in your .statdeck.yaml.")
	}

	if err := validateTabs(cfg.Tabs); err != nil {
		return errors.WrapWithCode(err, errors.ErrConfig, err.Error(), "Check the 'tabs' section in your .statdeck.yaml.")
	}

	return nil
}

// FormatterFor builds the formatter described by the config's format section.
func FormatterFor(cfg *Config) (*format.Formatter, error) {
	return format.New(format.Options{
		Locale:   cfg.Format.Locale,
		Currency: cfg.Format.Currency,
		Symbol:   cfg.Format.Symbol,
	})
}

// validateAnimation checks animation timing.
func validateAnimation(a AnimationConfig) error {
	if a.Duration < 0 {
		return fmt.Errorf("animation.duration can't be negative (got %v)", a.Duration)
	}
	if a.ProgressDuration < 0 {
		return fmt.Errorf("animation.progress_duration can't be negative (got %v)", a.ProgressDuration)
	}
	if a.FPS < 1 || a.FPS > MaxFPS {
		return fmt.Errorf("animation.fps needs to be between 1 and %d (got %d)", MaxFPS, a.FPS)
	}
	return nil
}

// validateOutput checks output configuration.
func validateOutput(out OutputConfig) error {
	validColors := map[string]bool{"auto": true, "always": true, "never": true, "": true}
	if !validColors[out.Color] {
		return fmt.Errorf("output.color '%s' isn't valid - use 'auto', 'always', or 'never'", out.Color)
	}
	return nil
}

// validateTabs checks tab names, card keys and progress values.
func validateTabs(tabs []TabConfig) error {
	tabNames := make(map[string]bool)
	keys := make(map[string]string)

	for i, tab := range tabs {
		if strings.TrimSpace(tab.Name) == "" {
			return fmt.Errorf("tab %d needs a name", i+1)
		}
		if tabNames[tab.Name] {
			return fmt.Errorf("tab '%s' appears more than once", tab.Name)
		}
		tabNames[tab.Name] = true

		if len(tab.Cards) == 0 && len(tab.Progress) == 0 {
			return fmt.Errorf("tab '%s' has no cards or progress bars", tab.Name)
		}

		for _, card := range tab.Cards {
			if err := validateKey(tab.Name, card.Key); err != nil {
				return err
			}
			if other, dup := keys[card.Key]; dup {
				return fmt.Errorf("card key '%s' in tab '%s' is already used in tab '%s' - keys must be unique", card.Key, tab.Name, other)
			}
			keys[card.Key] = tab.Name

			if _, err := format.ParseMode(card.Mode); err != nil {
				return fmt.Errorf("card '%s' has mode '%s' - use plain, currency, or compact", card.Key, card.Mode)
			}
		}

		for _, p := range tab.Progress {
			if err := validateKey(tab.Name, p.Key); err != nil {
				return err
			}
			if other, dup := keys[p.Key]; dup {
				return fmt.Errorf("progress key '%s' in tab '%s' is already used in tab '%s' - keys must be unique", p.Key, tab.Name, other)
			}
			keys[p.Key] = tab.Name

			if p.Percent < 0 || p.Percent > 100 {
				return fmt.Errorf("progress '%s' needs a percent between 0 and 100 (got %g)", p.Key, p.Percent)
			}
		}
	}

	return nil
}

// validateKey checks a card or progress key is usable in a "key value" stream line.
func validateKey(tab, key string) error {
	if key == "" {
		return fmt.Errorf("every card and progress bar in tab '%s' needs a key", tab)
	}
	if strings.IndexFunc(key, unicode.IsSpace) >= 0 {
		return fmt.Errorf("key '%s' in tab '%s' contains whitespace", key, tab)
	}
	return nil
}
