package cli

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/rileyhilliard/statdeck/internal/config"
	"github.com/rileyhilliard/statdeck/internal/errors"
	"github.com/rileyhilliard/statdeck/internal/format"
	"github.com/rileyhilliard/statdeck/internal/tween"
	"github.com/rileyhilliard/statdeck/internal/ui"
)

// CountOptions holds flags for the count command.
type CountOptions struct {
	From     float64
	Label    string
	Prefix   string
	Suffix   string
	Mode     string        // Empty detects currency from the value
	Duration time.Duration // Zero uses the config duration
}

// countCommand animates value on one line of w.
func countCommand(ctx context.Context, w io.Writer, value string, opts CountOptions) error {
	cfg, _, err := loadConfig()
	if err != nil {
		return err
	}
	return runCount(ctx, w, cfg, value, opts)
}

// runCount animates value on one line of w using cfg's formatting and timing.
func runCount(ctx context.Context, w io.Writer, cfg *config.Config, value string, opts CountOptions) error {
	if _, ok := tween.ParseTarget(value); !ok {
		return errors.New(errors.ErrInput,
			fmt.Sprintf("'%s' doesn't contain a number", value),
			"Pass a number like 1200, -3.5, or ₹12,400.")
	}

	mode := format.DetectMode(value)
	if opts.Mode != "" {
		m, err := format.ParseMode(opts.Mode)
		if err != nil {
			return err
		}
		mode = m
	}

	formatter, err := config.FormatterFor(cfg)
	if err != nil {
		return errors.WrapWithCode(err, errors.ErrFormat,
			"Can't build the number formatter",
			"Check the 'format' section in your .statdeck.yaml.")
	}

	duration := cfg.Animation.Duration
	if opts.Duration > 0 {
		duration = opts.Duration
	}

	counter := ui.NewInlineCounter(w, opts.Label,
		tween.WithDuration(duration),
		tween.WithFormatter(formatter),
		tween.WithMode(mode),
		tween.WithPrefix(opts.Prefix),
		tween.WithSuffix(opts.Suffix),
		tween.WithInitialValue(opts.From),
	)
	counter.SetInterval(cfg.Animation.FrameInterval())

	counter.Start()
	counter.SetTarget(value)
	// An interrupt jumps straight to the final value.
	_ = counter.Wait(ctx)
	counter.Finish()
	return nil
}
