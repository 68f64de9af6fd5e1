package ui

import (
	"math"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rileyhilliard/statdeck/internal/tween"
)

var progressEpoch = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

func newTestProgress(t *testing.T, width int) AnimatedProgress {
	t.Helper()
	return NewAnimatedProgress("Goal", width, tween.WithClock(func() time.Time { return progressEpoch }))
}

func progressFrame(p AnimatedProgress, at time.Duration) tween.FrameMsg {
	return tween.FrameMsg{ID: p.ID(), Gen: p.Generation(), Time: progressEpoch.Add(at)}
}

func TestNewAnimatedProgress(t *testing.T) {
	p := newTestProgress(t, 10)

	assert.Equal(t, "Goal", p.Label)
	assert.Equal(t, 10, p.Width)
	assert.Zero(t, p.Percent())
	assert.False(t, p.Animating())
	assert.Nil(t, p.Init())
}

func TestAnimatedProgressSetPercent(t *testing.T) {
	tests := []struct {
		name   string
		input  float64
		target float64
	}{
		{"in range", 40, 40},
		{"clamps above", 180, 100},
		{"clamps below", -5, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := newTestProgress(t, 10)
			cmd := p.SetPercent(tt.input)
			if tt.target == 0 {
				// From 0 to 0 is still a new target.
				require.NotNil(t, cmd)
			}
			assert.Equal(t, tt.target, p.Target())
		})
	}
}

func TestAnimatedProgressSetPercent_NaNIgnored(t *testing.T) {
	p := newTestProgress(t, 10)
	require.NotNil(t, p.SetPercent(50))

	assert.Nil(t, p.SetPercent(math.NaN()))
	assert.Equal(t, 50.0, p.Target())
}

func TestAnimatedProgressAnimatesOverDuration(t *testing.T) {
	p := newTestProgress(t, 10)
	require.NotNil(t, p.SetPercent(80))

	var cmd tea.Cmd
	p, cmd = p.Update(progressFrame(p, DefaultProgressDuration/2))
	assert.NotNil(t, cmd, "mid-run frame schedules another")
	mid := p.Percent()
	assert.Greater(t, mid, 0.0)
	assert.Less(t, mid, 80.0)

	p, cmd = p.Update(progressFrame(p, DefaultProgressDuration))
	assert.Nil(t, cmd)
	assert.Equal(t, 80.0, p.Percent())
	assert.False(t, p.Animating())
}

func TestAnimatedProgressIgnoresForeignFrames(t *testing.T) {
	p := newTestProgress(t, 10)
	other := newTestProgress(t, 10)
	require.NotNil(t, p.SetPercent(50))

	p, cmd := p.Update(tween.FrameMsg{ID: other.ID(), Gen: p.Generation(), Time: progressEpoch.Add(time.Second)})
	assert.Nil(t, cmd)
	assert.Zero(t, p.Percent())
}

func TestAnimatedProgressSettleAndReplay(t *testing.T) {
	p := newTestProgress(t, 10)
	require.NotNil(t, p.SetPercent(60))

	p.Settle()
	assert.Equal(t, 60.0, p.Percent())

	require.NotNil(t, p.Replay())
	assert.Zero(t, p.Percent())
	assert.True(t, p.Animating())
}

func TestAnimatedProgressView(t *testing.T) {
	p := newTestProgress(t, 4)
	p.LabelWidth = 5
	require.NotNil(t, p.SetPercent(50))
	p.Settle()

	assert.Equal(t, "Goal  ▰▰▱▱  50%", p.View())

	p.Label = ""
	assert.Equal(t, "▰▰▱▱  50%", p.View())
}
