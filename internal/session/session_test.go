package session

import (
	"bytes"
	"context"
	"errors"
	"io"
	"testing"
	"time"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tomz197/asteroidfall/internal/config"
	"github.com/tomz197/asteroidfall/internal/loop"
)

func fixedSize(w, h int) func() (int, int, error) {
	return func() (int, int, error) { return w, h, nil }
}

func quietOptions(size func() (int, int, error)) Options {
	cfg := loop.DefaultWorldConfig()
	cfg.AsteroidChance = 0
	return Options{
		TermSizeFunc: size,
		World:        &cfg,
		Seed:         1,
		Logger:       log.New(io.Discard),
	}
}

// runAsync runs s until it returns or the deadline passes.
func runAsync(t *testing.T, ctx context.Context, s *Session) error {
	t.Helper()
	done := make(chan error, 1)
	go func() { done <- s.Run(ctx) }()
	select {
	case err := <-done:
		return err
	case <-time.After(5 * time.Second):
		t.Fatal("session did not stop")
		return nil
	}
}

func TestNewRejectsMissingTerminal(t *testing.T) {
	_, err := New(bytes.NewReader(nil), io.Discard, quietOptions(fixedSize(0, 24)))
	assert.ErrorIs(t, err, ErrNoTerminal)

	failing := func() (int, int, error) { return 0, 0, errors.New("not a tty") }
	_, err = New(bytes.NewReader(nil), io.Discard, quietOptions(failing))
	assert.ErrorIs(t, err, ErrNoTerminal)
}

func TestClampTermSize(t *testing.T) {
	tests := []struct {
		name                   string
		termW, termH           int
		wantW, wantH           int
		wantOffCol, wantOffRow int
	}{
		{"small", 80, 24, 80, 24, 0, 0},
		{"exact", config.MaxTermWidth, config.MaxTermHeight, config.MaxTermWidth, config.MaxTermHeight, 0, 0},
		{"wide", config.MaxTermWidth + 40, 24, config.MaxTermWidth, 24, 20, 0},
		{"tall", 80, config.MaxTermHeight + 11, 80, config.MaxTermHeight, 0, 5},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w, h, col, row := clampTermSize(tt.termW, tt.termH)
			assert.Equal(t, tt.wantW, w)
			assert.Equal(t, tt.wantH, h)
			assert.Equal(t, tt.wantOffCol, col)
			assert.Equal(t, tt.wantOffRow, row)
		})
	}
}

func TestQuitKeyEndsSession(t *testing.T) {
	pr, pw := io.Pipe()
	defer pw.Close()

	var out bytes.Buffer
	s, err := New(pr, &out, quietOptions(fixedSize(80, 24)))
	require.NoError(t, err)

	go pw.Write([]byte("q"))

	require.NoError(t, runAsync(t, context.Background(), s))
	assert.Contains(t, out.String(), "\033[?25l")
	assert.True(t, bytes.HasSuffix(out.Bytes(), []byte("\033[?25h")))
}

func TestClosedInputEndsSession(t *testing.T) {
	var out bytes.Buffer
	s, err := New(bytes.NewReader(nil), &out, quietOptions(fixedSize(80, 24)))
	require.NoError(t, err)

	require.NoError(t, runAsync(t, context.Background(), s))
}

func TestSessionRendersFrames(t *testing.T) {
	pr, pw := io.Pipe()
	defer pw.Close()

	var out bytes.Buffer
	s, err := New(pr, &out, quietOptions(fixedSize(80, 24)))
	require.NoError(t, err)

	ctx, cancel := context.WithTimeout(context.Background(), 150*time.Millisecond)
	defer cancel()
	require.NoError(t, runAsync(t, ctx, s))

	text := out.String()
	assert.Contains(t, text, "\033[38;2;21;5;5m", "background color")
	assert.Contains(t, text, "Asteroids: 0")
	assert.Greater(t, s.World().Stats().Frame, uint64(0))
}

func TestIdleTimeoutEndsSession(t *testing.T) {
	pr, pw := io.Pipe()
	defer pw.Close()

	opts := quietOptions(fixedSize(80, 24))
	opts.IdleTimeout = 50 * time.Millisecond
	s, err := New(pr, io.Discard, opts)
	require.NoError(t, err)

	start := time.Now()
	require.NoError(t, runAsync(t, context.Background(), s))
	assert.Less(t, time.Since(start), 2*time.Second)
}

func TestResizeReclampsCanvas(t *testing.T) {
	w, h := 80, 24
	size := func() (int, int, error) { return w, h, nil }

	s, err := New(bytes.NewReader(nil), io.Discard, quietOptions(size))
	require.NoError(t, err)
	assert.Equal(t, 80, s.canvas.TerminalWidth())

	w, h = config.MaxTermWidth+20, config.MaxTermHeight
	s.updateScreen()
	assert.Equal(t, config.MaxTermWidth, s.canvas.TerminalWidth())
	assert.Equal(t, config.MaxTermHeight, s.canvas.TerminalHeight())
	assert.Equal(t, 10, s.canvas.OffsetCol())
	assert.Equal(t, 0, s.canvas.OffsetRow())

	// Failing size lookups keep the last layout.
	w, h = 0, 0
	s.updateScreen()
	assert.Equal(t, config.MaxTermWidth, s.canvas.TerminalWidth())
}

func TestHUDShowsCounts(t *testing.T) {
	var out bytes.Buffer
	opts := quietOptions(fixedSize(100, 30))
	opts.Username = "alice"
	s, err := New(bytes.NewReader(nil), &out, opts)
	require.NoError(t, err)

	s.world.SpawnAsteroid(s.world.Ship().Position)
	s.driver.Frame()
	require.NoError(t, s.afterFrame())

	text := out.String()
	assert.Contains(t, text, "Asteroids: 1    Bullets: 0")
	assert.Contains(t, text, "alice")
	assert.Contains(t, text, controlsHint)
}
