package cli

import (
	"context"
	"io"
	"os"

	"github.com/rileyhilliard/statdeck/internal/dashboard"
	"github.com/rileyhilliard/statdeck/internal/logger"
)

// dashCommand runs the dashboard, streaming values from stdin when it's a pipe.
func dashCommand(ctx context.Context, altScreen bool) error {
	cfg, _, err := loadConfig()
	if err != nil {
		return err
	}

	var input io.Reader
	if !stdinIsTerminal() {
		input = os.Stdin
	}

	return dashboard.Run(ctx, cfg, dashboard.RunOptions{
		Input:     input,
		AltScreen: altScreen,
		Version:   formatVersion(version),
		Logger:    logger.NewEnvLogger("[dash]"),
	})
}
