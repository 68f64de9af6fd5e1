// Package dashboard implements the statdeck TUI: a tab bar of configured
// tabs, each showing stat cards and progress bars whose values animate.
//
// # Architecture
//
// The package uses Bubble Tea's Model-Update-View pattern:
//
//   - Model: tabs, cards (each owning a tween.Counter), progress bars, history
//   - Update: keystrokes, window size, animation frames, streamed values
//   - View: renders the active tab to a string
//
// # Message Flow
//
// Every counter and bar schedules its own frames. Frames carry the id of the
// component that scheduled them, so the model routes each one to its owner:
//
//  1. NewModel sets initial targets; Init returns their first frame commands
//  2. tween.FrameMsg arrives, the owner advances and schedules the next frame
//  3. ValueMsg from the stdin stream retargets a card mid-run
//  4. View renders the active tab with the current displayed values
//
// # Value stream
//
// Run reads "key value" lines from a reader (stdin in the CLI). Each line
// sets a new target for the card or progress bar with that key.
package dashboard
