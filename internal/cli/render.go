package cli

import (
	"fmt"
	"io"
	"os"

	"golang.org/x/term"

	"github.com/rileyhilliard/statdeck/internal/config"
	"github.com/rileyhilliard/statdeck/internal/dashboard"
	"github.com/rileyhilliard/statdeck/internal/format"
	"github.com/rileyhilliard/statdeck/internal/logger"
	"github.com/rileyhilliard/statdeck/internal/ui"
)

// DefaultRenderWidth is used when the terminal width can't be determined.
const DefaultRenderWidth = 80

// RenderOptions holds flags for the render command.
type RenderOptions struct {
	Width int
	Table bool
	JSON  bool
}

// RenderOutput is the --json payload of the render command.
type RenderOutput struct {
	Source   string           `json:"source,omitempty"`
	Cards    []CardOutput     `json:"cards"`
	Progress []ProgressOutput `json:"progress"`
}

// CardOutput is one card in RenderOutput.
type CardOutput struct {
	Tab     string  `json:"tab"`
	Key     string  `json:"key"`
	Label   string  `json:"label"`
	Value   float64 `json:"value"`
	Text    string  `json:"text"`
	Pending bool    `json:"pending,omitempty"`
}

// ProgressOutput is one progress bar in RenderOutput.
type ProgressOutput struct {
	Tab     string  `json:"tab"`
	Key     string  `json:"key"`
	Label   string  `json:"label"`
	Percent float64 `json:"percent"`
}

func renderCommand(w io.Writer, opts RenderOptions) error {
	cfg, path, err := loadConfig()
	if err != nil {
		if opts.JSON {
			return writeJSONFailure(w, err)
		}
		return err
	}
	if opts.Width <= 0 {
		opts.Width = terminalWidth()
	}
	return renderSnapshot(w, cfg, path, opts)
}

// renderSnapshot writes cfg with every animation finished.
func renderSnapshot(w io.Writer, cfg *config.Config, source string, opts RenderOptions) error {
	m, err := dashboard.NewModel(cfg,
		dashboard.WithVersion(formatVersion(version)),
		dashboard.WithLogger(logger.NewEnvLogger("[render]")),
	)
	if err != nil {
		if opts.JSON {
			return writeJSONFailure(w, err)
		}
		return err
	}

	width := opts.Width
	if width <= 0 {
		width = DefaultRenderWidth
	}

	switch {
	case opts.JSON:
		m.Settle()
		return WriteJSONSuccess(w, buildRenderOutput(m, source))

	case opts.Table:
		m.Settle()
		var rows []ui.ValueRow
		for _, c := range m.Cards() {
			value := c.Text
			if c.Pending {
				value = format.Placeholder
			}
			rows = append(rows, ui.ValueRow{Tab: c.Tab, Key: c.Key, Label: c.Label, Value: value})
		}
		fmt.Fprintln(w, ui.RenderValueTable(rows))

		var bars []ui.ProgressRow
		for _, b := range m.Bars() {
			bars = append(bars, ui.ProgressRow{Tab: b.Tab, Key: b.Key, Label: b.Label, Percent: b.Percent})
		}
		if len(bars) > 0 {
			fmt.Fprintln(w, ui.RenderProgressTable(bars))
		}
		return nil

	default:
		ui.PrintHeader(w, ui.HeaderInfo{
			Version: formatVersion(version),
			Source:  source,
			Width:   min(width, ui.HeaderWidth*2),
		})
		fmt.Fprintln(w)
		fmt.Fprint(w, m.Snapshot(width))
		return nil
	}
}

func buildRenderOutput(m dashboard.Model, source string) RenderOutput {
	out := RenderOutput{
		Source:   source,
		Cards:    []CardOutput{},
		Progress: []ProgressOutput{},
	}
	for _, c := range m.Cards() {
		out.Cards = append(out.Cards, CardOutput{
			Tab:     c.Tab,
			Key:     c.Key,
			Label:   c.Label,
			Value:   c.Value,
			Text:    c.Text,
			Pending: c.Pending,
		})
	}
	for _, b := range m.Bars() {
		out.Progress = append(out.Progress, ProgressOutput{
			Tab:     b.Tab,
			Key:     b.Key,
			Label:   b.Label,
			Percent: b.Percent,
		})
	}
	return out
}

// writeJSONFailure reports err in the JSON envelope and still fails the command.
func writeJSONFailure(w io.Writer, err error) error {
	if werr := WriteJSONFromError(w, err); werr != nil {
		return werr
	}
	return err
}

func terminalWidth() int {
	width, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || width <= 0 {
		return DefaultRenderWidth
	}
	return width
}
