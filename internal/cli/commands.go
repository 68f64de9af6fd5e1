package cli

import (
	"github.com/spf13/cobra"
)

// Command-specific flags
var (
	countFlags  CountOptions
	renderFlags RenderOptions
	setJSON     bool
	initFlags   InitOptions
	initForce   bool
	initYes     bool
	dashNoAlt   bool
)

// dashCmd runs the interactive dashboard
var dashCmd = &cobra.Command{
	Use:   "dash",
	Short: "Run the interactive dashboard",
	Long: `Open the dashboard described by .statdeck.yaml (or the built-in demo).

Switch tabs with tab / shift+tab or 1-9, replay every animation with r,
and quit with q.

When stdin is a pipe, each "key value" line retargets the card or progress
bar with that key, so values animate as they arrive.

Examples:
  statdeck dash
  statdeck dash --config ~/sales.yaml
  printf 'revenue ₹15,000\norders 402\n' | statdeck dash`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return dashCommand(cmd.Context(), !dashNoAlt)
	},
}

// countCmd animates a single value inline
var countCmd = &cobra.Command{
	Use:   "count <value>",
	Short: "Animate one value on the current line",
	Long: `Count up (or down) to a value on a single terminal line.

The value may be decorated: currency symbols and separators are stripped
before parsing, and currency mode is picked automatically when a symbol
is present.

Examples:
  statdeck count 1200
  statdeck count ₹12,400
  statdeck count 98 --from 40 --suffix %
  statdeck count 15300 --mode compact --label Customers`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return countCommand(cmd.Context(), cmd.OutOrStdout(), args[0], countFlags)
	},
}

// renderCmd prints a static snapshot
var renderCmd = &cobra.Command{
	Use:   "render",
	Short: "Print a static snapshot of every tab",
	Long: `Print every tab with all values at their final state. Useful in scripts,
CI logs, or anywhere an interactive dashboard doesn't fit.

Examples:
  statdeck render
  statdeck render --width 100
  statdeck render --table
  statdeck render --json`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return renderCommand(cmd.OutOrStdout(), renderFlags)
	},
}

// setCmd updates a card value in the config file
var setCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Change a card's value in the config file",
	Long: `Rewrite the value of one card in .statdeck.yaml. Comments and layout
in the file are preserved.

Examples:
  statdeck set revenue ₹15,000
  statdeck set orders 402`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		return setCommand(cmd.OutOrStdout(), args[0], args[1], setJSON)
	},
}

// initCmd creates a new .statdeck.yaml configuration
var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Create .statdeck.yaml configuration",
	Long: `Create a .statdeck.yaml in the current directory with the demo tabs.

Prompts for the locale and currency used to format values. Pass --yes to
accept the defaults (en-IN, INR).

Examples:
  statdeck init
  statdeck init --yes
  statdeck init --yes --locale en-US --currency USD
  statdeck init --force`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		opts := initFlags
		opts.Overwrite = initForce
		opts.NonInteractive = initYes || !stdinIsTerminal()
		opts.Out = cmd.OutOrStdout()
		return Init(opts)
	},
}

func init() {
	dashCmd.Flags().BoolVar(&dashNoAlt, "inline", false, "draw below the prompt instead of using the alternate screen")

	countCmd.Flags().Float64Var(&countFlags.From, "from", 0, "starting value")
	countCmd.Flags().StringVar(&countFlags.Label, "label", "", "text shown before the value")
	countCmd.Flags().StringVar(&countFlags.Prefix, "prefix", "", "text glued before the number")
	countCmd.Flags().StringVar(&countFlags.Suffix, "suffix", "", "text glued after the number")
	countCmd.Flags().StringVar(&countFlags.Mode, "mode", "", "plain, currency, or compact (default: detect from value)")
	countCmd.Flags().DurationVar(&countFlags.Duration, "duration", 0, "animation length (default: animation.duration from config)")

	renderCmd.Flags().IntVar(&renderFlags.Width, "width", 0, "output width (default: terminal width or 80)")
	renderCmd.Flags().BoolVar(&renderFlags.Table, "table", false, "print a key/label/value table")
	renderCmd.Flags().BoolVar(&renderFlags.JSON, "json", false, "print values as JSON")

	setCmd.Flags().BoolVar(&setJSON, "json", false, "print the result as JSON")

	initCmd.Flags().BoolVar(&initForce, "force", false, "overwrite an existing config")
	initCmd.Flags().BoolVarP(&initYes, "yes", "y", false, "accept defaults without prompting")
	initCmd.Flags().StringVar(&initFlags.Locale, "locale", "", "BCP 47 locale for number grouping (default en-IN)")
	initCmd.Flags().StringVar(&initFlags.Currency, "currency", "", "ISO 4217 currency code (default INR)")
	initCmd.Flags().StringVar(&initFlags.Symbol, "symbol", "", "currency symbol override")

	rootCmd.AddCommand(dashCmd, countCmd, renderCmd, setCmd, initCmd)
}
