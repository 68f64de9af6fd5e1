// Package cli implements the statdeck command-line interface.
//
// Each Cobra command is a thin wrapper: flags are parsed into an options
// struct and handed to a function that takes an io.Writer, so commands
// can be exercised in tests without touching os.Stdout.
//
// # Command Structure
//
//	statdeck dash              - Interactive dashboard (reads "key value" lines from a piped stdin)
//	statdeck count <value>     - Animate one value on the current line
//	statdeck render            - Print every tab with values settled (--table, --json)
//	statdeck set <key> <value> - Rewrite a card's value in .statdeck.yaml
//	statdeck init              - Create .statdeck.yaml
//	statdeck version           - Build information
//
// # Config and Color
//
// Every command that reads the config goes through loadConfig, which finds
// the file (see config.Find), validates it, and applies the color setting.
// --no-color and NO_COLOR always disable styling; otherwise output.color
// decides, with "auto" following whether stdout is a terminal.
//
// # Machine Output
//
// Commands with --json write a JSONEnvelope. Failures are reported in the
// envelope and still return the error so the exit code is non-zero.
package cli
