package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/rileyhilliard/statdeck/internal/config"
	"github.com/rileyhilliard/statdeck/internal/errors"
	"github.com/rileyhilliard/statdeck/internal/ui"
	"github.com/rileyhilliard/statdeck/internal/util"
)

// Global flags
var (
	cfgFile string
	noColor bool
)

// rootCmd is the base command when called without subcommands
var rootCmd = &cobra.Command{
	Use:   "statdeck",
	Short: "Animated stat cards and counters for the terminal",
	Long: `statdeck renders dashboards of animated stat cards, progress bars and
tabs in the terminal.

Values ease toward their targets over a short animation, and can be fed
live from another program as "key value" lines on stdin.

Examples:
  statdeck dash
  tail -f sales.log | awk '{print "revenue", $3}' | statdeck dash
  statdeck count ₹12,400
  statdeck render --width 100`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: .statdeck.yaml, searched upward)")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "disable colored output")
}

// Execute runs the root command and exits non-zero on error.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := rootCmd.ExecuteContext(ctx)
	stop()

	if err != nil {
		if isUnknownCommandError(err) {
			err = withCommandSuggestion(err)
		}
		fmt.Fprint(os.Stderr, err.Error())
		if !strings.HasSuffix(err.Error(), "\n") {
			fmt.Fprintln(os.Stderr)
		}
		os.Exit(1)
	}
}

// loadConfig finds, loads and validates the config, then applies its color
// setting. The returned path is empty when the built-in defaults are used.
func loadConfig() (*config.Config, string, error) {
	cfg, path, err := config.LoadOrDefault(cfgFile)
	if err != nil {
		return nil, "", err
	}
	if err := config.Validate(cfg); err != nil {
		return nil, "", err
	}

	applyColor(colorEnabled(noColor, cfg.Output.Color, os.Getenv("NO_COLOR") != "", stdoutIsTerminal()))
	return cfg, path, nil
}

// colorEnabled decides whether to style output. --no-color and NO_COLOR
// always win; otherwise "always" and "never" override terminal detection.
func colorEnabled(flag bool, mode string, noColorEnv, tty bool) bool {
	if flag || noColorEnv {
		return false
	}
	switch mode {
	case "always":
		return true
	case "never":
		return false
	default:
		return tty
	}
}

func applyColor(enabled bool) {
	if !enabled {
		ui.DisableColors()
		return
	}
	if lipgloss.ColorProfile() == termenv.Ascii {
		lipgloss.SetColorProfile(termenv.ANSI256)
	}
}

func stdoutIsTerminal() bool {
	return term.IsTerminal(int(os.Stdout.Fd()))
}

func stdinIsTerminal() bool {
	return term.IsTerminal(int(os.Stdin.Fd()))
}

// isUnknownCommandError reports whether cobra rejected the command line.
func isUnknownCommandError(err error) bool {
	msg := err.Error()
	return strings.HasPrefix(msg, "unknown command") || strings.HasPrefix(msg, "unknown flag")
}

// extractUnknownCommand pulls the quoted command name out of cobra's
// `unknown command "foo" for "statdeck"` message.
func extractUnknownCommand(err error) string {
	msg := err.Error()
	start := strings.Index(msg, `"`)
	if start < 0 {
		return ""
	}
	end := strings.Index(msg[start+1:], `"`)
	if end < 0 {
		return ""
	}
	return msg[start+1 : start+1+end]
}

// withCommandSuggestion turns an unknown command error into a structured
// error naming the closest commands.
func withCommandSuggestion(err error) error {
	name := extractUnknownCommand(err)
	if name == "" {
		return errors.WrapWithCode(err, errors.ErrInput, err.Error(), "Run 'statdeck --help' for usage.")
	}

	var names []string
	for _, c := range rootCmd.Commands() {
		if !c.Hidden {
			names = append(names, c.Name())
		}
	}

	suggestion := "Run 'statdeck --help' to see available commands."
	if similar := util.SuggestSimilar(name, names, 3); len(similar) > 0 {
		suggestion = fmt.Sprintf("Did you mean: %s?", util.JoinOrNone(similar))
	}
	return errors.New(errors.ErrInput, fmt.Sprintf("Unknown command '%s'", name), suggestion)
}
