package cli

import (
	"fmt"
	"io"

	"github.com/rileyhilliard/statdeck/internal/config"
	"github.com/rileyhilliard/statdeck/internal/errors"
	"github.com/rileyhilliard/statdeck/internal/tween"
	"github.com/rileyhilliard/statdeck/internal/ui"
)

// SetOutput is the --json payload of the set command.
type SetOutput struct {
	Config string  `json:"config"`
	Key    string  `json:"key"`
	Value  string  `json:"value"`
	Parsed float64 `json:"parsed"`
}

func setCommand(w io.Writer, key, value string, jsonOut bool) error {
	err := runSet(w, key, value, jsonOut)
	if err != nil && jsonOut {
		return writeJSONFailure(w, err)
	}
	return err
}

// runSet stores value as the card's target in the config file on disk.
func runSet(w io.Writer, key, value string, jsonOut bool) error {
	path, err := config.Find(cfgFile)
	if err != nil {
		return err
	}
	if path == "" {
		return errors.New(errors.ErrConfig,
			"Config file not found",
			"Run 'statdeck init' to create a .statdeck.yaml first.")
	}

	cfg, err := config.Load(path)
	if err != nil {
		return err
	}
	if _, _, err := config.FindCard(cfg, key); err != nil {
		return err
	}

	parsed, ok := tween.ParseTarget(value)
	if !ok {
		return errors.New(errors.ErrInput,
			fmt.Sprintf("'%s' doesn't contain a number", value),
			"Pass a number like 1200, -3.5, or ₹12,400.")
	}

	if err := config.SetCardValue(path, key, value); err != nil {
		return err
	}

	if jsonOut {
		return WriteJSONSuccess(w, SetOutput{Config: path, Key: key, Value: value, Parsed: parsed})
	}
	fmt.Fprintf(w, "%s Set %s to %s in %s\n", ui.SymbolSuccess, key, value, path)
	return nil
}
