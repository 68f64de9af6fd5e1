package dashboard

import (
	"context"
	stderrors "errors"
	"io"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/muesli/cancelreader"
	"golang.org/x/sync/errgroup"

	"github.com/rileyhilliard/statdeck/internal/config"
	"github.com/rileyhilliard/statdeck/internal/errors"
	"github.com/rileyhilliard/statdeck/internal/logger"
)

// DebugLogFile receives Bubble Tea logs when STATDECK_DEBUG is set, since the
// dashboard owns the terminal.
const DebugLogFile = "statdeck-debug.log"

// streamBuffer is how many parsed values may wait for the update loop.
const streamBuffer = 64

// RunOptions configures Run.
type RunOptions struct {
	// Input is the "key value" stream. Nil runs without a stream. When set,
	// keyboard input is read from the controlling terminal instead.
	Input io.Reader

	AltScreen bool
	Version   string
	Logger    logger.Logger
}

// Run starts the dashboard and blocks until the user quits or ctx is done.
func Run(ctx context.Context, cfg *config.Config, opts RunOptions) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	log := opts.Logger
	if log == nil {
		log = logger.NewEnvLogger("[dashboard]")
	}

	if logger.DebugEnabled() {
		f, err := tea.LogToFile(DebugLogFile, "statdeck")
		if err != nil {
			log.Warn("can't open %s: %v", DebugLogFile, err)
		} else {
			defer f.Close()
		}
	}

	modelOpts := []Option{WithLogger(log), WithVersion(opts.Version)}
	programOpts := []tea.ProgramOption{tea.WithContext(ctx)}
	if opts.AltScreen {
		programOpts = append(programOpts, tea.WithAltScreen())
	}

	var (
		reader cancelreader.CancelReader
		values chan ValueMsg
	)
	if opts.Input != nil {
		var err error
		reader, err = cancelreader.NewReader(opts.Input)
		if err != nil {
			return errors.WrapWithCode(err, errors.ErrInput,
				"Can't read the value stream",
				"Pipe 'key value' lines into 'statdeck dash', or run it without a pipe.")
		}
		defer reader.Close()

		values = make(chan ValueMsg, streamBuffer)
		modelOpts = append(modelOpts, WithStream(values))
		programOpts = append(programOpts, tea.WithInputTTY())
	}

	model, err := NewModel(cfg, modelOpts...)
	if err != nil {
		return err
	}

	g, gctx := errgroup.WithContext(ctx)

	if reader != nil {
		g.Go(func() error {
			// A broken stream leaves the dashboard up with its last values.
			if err := ReadStream(gctx, reader, values, log); err != nil {
				log.Warn("value stream stopped: %v", err)
			}
			return nil
		})
		g.Go(func() error {
			<-gctx.Done()
			reader.Cancel()
			return nil
		})
	}

	g.Go(func() error {
		// Quitting the program ends the stream goroutines too.
		defer cancel()
		_, err := tea.NewProgram(model, programOpts...).Run()
		if stderrors.Is(err, tea.ErrProgramKilled) {
			return nil
		}
		if err != nil {
			return errors.WrapWithCode(err, errors.ErrRender,
				"Dashboard stopped unexpectedly",
				"Run with STATDECK_DEBUG=1 and check "+DebugLogFile+".")
		}
		return nil
	})

	return g.Wait()
}
