package dashboard

import (
	"bufio"
	"context"
	"errors"
	"io"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/muesli/cancelreader"

	"github.com/rileyhilliard/statdeck/internal/logger"
)

// MaxStreamLineSize is the longest "key value" line the stream accepts.
const MaxStreamLineSize = 64 * 1024

// ValueMsg carries a new raw target for the card or progress bar with Key.
type ValueMsg struct {
	Key string
	Raw string
}

// StreamClosedMsg is sent once the value stream has no more lines.
type StreamClosedMsg struct{}

// ParseLine splits a "key value" line. Blank lines, comments starting with
// '#', and lines without a value are rejected. The value keeps its internal
// spacing so "₹ 12,400" reaches the counter intact.
func ParseLine(line string) (key, value string, ok bool) {
	line = strings.TrimSpace(line)
	if line == "" || strings.HasPrefix(line, "#") {
		return "", "", false
	}

	idx := strings.IndexAny(line, " \t")
	if idx < 0 {
		return "", "", false
	}
	key = line[:idx]
	value = strings.TrimSpace(line[idx+1:])
	if value == "" {
		return "", "", false
	}
	return key, value, true
}

// ReadStream scans "key value" lines from r and sends them to out until r is
// exhausted or ctx is done. out is closed on return. Lines that don't parse
// are logged at debug and skipped.
func ReadStream(ctx context.Context, r io.Reader, out chan<- ValueMsg, log logger.Logger) error {
	defer close(out)
	if log == nil {
		log = logger.Noop()
	}

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 4096), MaxStreamLineSize)

	for scanner.Scan() {
		line := scanner.Text()
		key, value, ok := ParseLine(line)
		if !ok {
			if trimmed := strings.TrimSpace(line); trimmed != "" && !strings.HasPrefix(trimmed, "#") {
				log.Debug("ignoring malformed stream line %q", line)
			}
			continue
		}

		select {
		case out <- ValueMsg{Key: key, Raw: value}:
		case <-ctx.Done():
			return nil
		}
	}

	err := scanner.Err()
	switch {
	case err == nil:
		return nil
	case errors.Is(err, cancelreader.ErrCanceled), ctx.Err() != nil:
		return nil
	case errors.Is(err, bufio.ErrTooLong):
		log.Warn("stream line exceeded %d bytes, stopping stream", MaxStreamLineSize)
		return err
	default:
		return err
	}
}

// waitForValue returns a command that delivers the next value from ch, or
// StreamClosedMsg once ch is closed.
func waitForValue(ch <-chan ValueMsg) tea.Cmd {
	return func() tea.Msg {
		v, ok := <-ch
		if !ok {
			return StreamClosedMsg{}
		}
		return v
	}
}
