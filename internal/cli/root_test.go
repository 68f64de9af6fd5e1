package cli

import (
	stderrors "errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rileyhilliard/statdeck/internal/errors"
)

func TestIsUnknownCommandError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{
			name: "unknown command error",
			err:  stderrors.New(`unknown command "foo" for "statdeck"`),
			want: true,
		},
		{
			name: "unknown flag error",
			err:  stderrors.New(`unknown flag: --foo`),
			want: true,
		},
		{
			name: "other error",
			err:  stderrors.New("config not found"),
			want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, isUnknownCommandError(tt.err))
		})
	}
}

func TestExtractUnknownCommand(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{
			name: "standard cobra format",
			err:  stderrors.New(`unknown command "foo" for "statdeck"`),
			want: "foo",
		},
		{
			name: "command with hyphen",
			err:  stderrors.New(`unknown command "re-render" for "statdeck"`),
			want: "re-render",
		},
		{
			name: "no quotes returns empty",
			err:  stderrors.New("unknown command foo"),
			want: "",
		},
		{
			name: "single quote returns empty",
			err:  stderrors.New(`unknown command "foo`),
			want: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, extractUnknownCommand(tt.err))
		})
	}
}

func TestWithCommandSuggestion(t *testing.T) {
	tests := []struct {
		name           string
		err            error
		wantMessage    string
		wantSuggestion string
	}{
		{
			name:           "typo gets the closest command",
			err:            stderrors.New(`unknown command "cont" for "statdeck"`),
			wantMessage:    "Unknown command 'cont'",
			wantSuggestion: "Did you mean: count?",
		},
		{
			name:           "nothing close falls back to help",
			err:            stderrors.New(`unknown command "zzzzzzzz" for "statdeck"`),
			wantMessage:    "Unknown command 'zzzzzzzz'",
			wantSuggestion: "Run 'statdeck --help' to see available commands.",
		},
		{
			name:           "unknown flag keeps cobra's message",
			err:            stderrors.New(`unknown flag: --foo`),
			wantMessage:    "unknown flag: --foo",
			wantSuggestion: "Run 'statdeck --help' for usage.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := withCommandSuggestion(tt.err)
			require.True(t, errors.IsCode(err, errors.ErrInput))

			var sdErr *errors.Error
			require.True(t, stderrors.As(err, &sdErr))
			assert.Equal(t, tt.wantMessage, sdErr.Message)
			assert.Equal(t, tt.wantSuggestion, sdErr.Suggestion)
		})
	}
}

func TestColorEnabled(t *testing.T) {
	tests := []struct {
		name       string
		flag       bool
		mode       string
		noColorEnv bool
		tty        bool
		want       bool
	}{
		{"auto on a terminal", false, "auto", false, true, true},
		{"auto when piped", false, "auto", false, false, false},
		{"always when piped", false, "always", false, false, true},
		{"never on a terminal", false, "never", false, true, false},
		{"flag beats always", true, "always", false, true, false},
		{"NO_COLOR beats always", false, "always", true, true, false},
		{"empty mode acts like auto", false, "", false, true, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, colorEnabled(tt.flag, tt.mode, tt.noColorEnv, tt.tty))
		})
	}
}

func TestRootCommandsRegistered(t *testing.T) {
	var names []string
	for _, c := range rootCmd.Commands() {
		names = append(names, c.Name())
	}
	assert.Subset(t, names, []string{"dash", "count", "render", "set", "init", "version"})

	assert.NotNil(t, rootCmd.PersistentFlags().Lookup("config"))
	assert.NotNil(t, rootCmd.PersistentFlags().Lookup("no-color"))
}
