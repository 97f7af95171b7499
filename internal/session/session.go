// Package session runs one terminal game: it owns a world, a canvas and the
// raw input stream of a single connection.
package session

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"math/rand"
	"time"

	"github.com/charmbracelet/log"

	"github.com/tomz197/asteroidfall/internal/config"
	"github.com/tomz197/asteroidfall/internal/draw"
	"github.com/tomz197/asteroidfall/internal/input"
	"github.com/tomz197/asteroidfall/internal/loop"
)

// ErrNoTerminal is returned when the terminal reports no usable size.
var ErrNoTerminal = errors.New("session: terminal has no size")

// Options configures a session.
type Options struct {
	TermSizeFunc draw.TermSizeFunc
	KeyHold      time.Duration     // Zero means config.KeyHoldDuration
	World        *loop.WorldConfig // Nil means loop.DefaultWorldConfig
	Seed         int64             // Zero seeds from the clock
	IdleTimeout  time.Duration     // Zero disables the idle disconnect
	Logger       *log.Logger
	Username     string
}

// Session handles rendering and input for a single connection.
type Session struct {
	world        *loop.World
	driver       *loop.Driver
	canvas       *draw.Canvas
	chunkWriter  *draw.ChunkWriter // Accumulates canvas and HUD output for chunked writes
	writer       io.Writer
	inputStream  *input.Stream
	input        *input.State
	bindings     input.Bindings
	termSizeFunc draw.TermSizeFunc
	logger       *log.Logger
	username     string

	idleTimeout time.Duration
	lastInput   time.Time
	idle        bool
	wasIdle     bool
}

// New creates a session reading keys from r and drawing to w.
func New(r io.Reader, w io.Writer, opts Options) (*Session, error) {
	termSizeFunc := opts.TermSizeFunc
	if termSizeFunc == nil {
		termSizeFunc = draw.DefaultTermSizeFunc
	}
	termWidth, termHeight, err := termSizeFunc()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrNoTerminal, err)
	}
	if termWidth <= 0 || termHeight <= 0 {
		return nil, ErrNoTerminal
	}

	hold := opts.KeyHold
	if hold <= 0 {
		hold = config.KeyHoldDuration
	}
	cfg := loop.DefaultWorldConfig()
	if opts.World != nil {
		cfg = *opts.World
	}
	seed := opts.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.Default()
	}

	// Create canvas with clamped dimensions for max render resolution
	renderWidth, renderHeight, offsetCol, offsetRow := clampTermSize(termWidth, termHeight)
	canvas := draw.NewCanvas(renderWidth, renderHeight, cfg.Bounds.Width, cfg.Bounds.Height)
	canvas.SetOffset(offsetCol, offsetRow)

	world := loop.NewWorld(cfg, rand.New(rand.NewSource(seed)))
	state := input.NewState()
	driver, err := loop.NewDriver(world, canvas, state)
	if err != nil {
		return nil, err
	}

	br, ok := r.(*bufio.Reader)
	if !ok {
		br = bufio.NewReader(r)
	}

	return &Session{
		world:        world,
		driver:       driver,
		canvas:       canvas,
		chunkWriter:  draw.NewChunkWriter(w, offsetCol, offsetRow),
		writer:       w,
		inputStream:  input.StartStream(br, hold),
		input:        state,
		bindings:     cfg.Bindings,
		termSizeFunc: termSizeFunc,
		logger:       logger.With("user", opts.Username, "seed", seed),
		username:     opts.Username,
		idleTimeout:  opts.IdleTimeout,
		lastInput:    time.Now(),
	}, nil
}

// World returns the session's world.
func (s *Session) World() *loop.World {
	return s.world
}

// Run plays until the player quits, the input ends, or ctx is cancelled.
func (s *Session) Run(ctx context.Context) error {
	draw.HideCursor(s.writer)
	defer draw.ShowCursor(s.writer)
	draw.ClearScreen(s.writer)

	s.logger.Info("session started")
	started := time.Now()

	err := s.driver.Run(ctx, config.TargetFrameTime, loop.Hooks{
		Before: s.beforeFrame,
		After:  s.afterFrame,
	})

	draw.ClearScreen(s.writer)

	stats := s.world.Stats()
	s.logger.Info("session ended",
		"frames", stats.Frame,
		"duration", time.Since(started).Round(time.Millisecond),
		"err", err,
	)
	return err
}

// beforeFrame applies input and terminal size changes.
func (s *Session) beforeFrame() error {
	now := time.Now()
	if s.inputStream.Poll(s.input, now) {
		s.lastInput = now
		s.idle = false
	}

	if s.inputStream.Closed() {
		s.logger.Debug("input closed")
		return loop.ErrStop
	}
	if s.bindings.Active(s.input, input.ActionQuit) {
		return loop.ErrStop
	}

	if s.idleTimeout > 0 {
		inactive := now.Sub(s.lastInput)
		if inactive > s.idleTimeout {
			s.logger.Info("disconnecting idle player", "inactive", inactive.Round(time.Second))
			return loop.ErrStop
		}
		s.idle = inactive > s.idleTimeout*3/4
	}

	s.updateScreen()
	return nil
}

// afterFrame writes the drawn frame and HUD to the terminal.
func (s *Session) afterFrame() error {
	// Leaving the idle warning needs a full clear so the message doesn't linger.
	if s.idle != s.wasIdle {
		s.chunkWriter.WriteString("\033[H\033[2J")
		s.canvas.ForceRedraw()
		s.wasIdle = s.idle
	}

	if err := s.canvas.Render(s.chunkWriter); err != nil {
		return err
	}
	s.canvas.RenderBorder(s.chunkWriter)
	s.drawHUD()

	return s.chunkWriter.Flush()
}

// updateScreen handles terminal resize, clamping to max render resolution.
// On actual size changes, clears the terminal to remove residual pixels
// outside the new canvas area.
func (s *Session) updateScreen() {
	termWidth, termHeight, err := s.termSizeFunc()
	if err != nil || termWidth <= 0 || termHeight <= 0 {
		return
	}
	renderWidth, renderHeight, offsetCol, offsetRow := clampTermSize(termWidth, termHeight)

	if renderWidth != s.canvas.TerminalWidth() || renderHeight != s.canvas.TerminalHeight() ||
		offsetCol != s.canvas.OffsetCol() || offsetRow != s.canvas.OffsetRow() {
		draw.ClearScreen(s.chunkWriter)
		s.canvas.ForceRedraw()
	}

	s.canvas.Resize(renderWidth, renderHeight)
	s.canvas.SetOffset(offsetCol, offsetRow)
	s.chunkWriter.SetOffset(offsetCol, offsetRow)
}

// clampTermSize clamps terminal dimensions to the max render resolution and computes
// the centering offset for the render area.
func clampTermSize(termWidth, termHeight int) (renderWidth, renderHeight, offsetCol, offsetRow int) {
	renderWidth = min(termWidth, config.MaxTermWidth)
	renderHeight = min(termHeight, config.MaxTermHeight)
	offsetCol = (termWidth - renderWidth) / 2
	offsetRow = (termHeight - renderHeight) / 2
	return
}
