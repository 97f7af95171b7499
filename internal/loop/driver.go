package loop

import (
	"context"
	"errors"
	"time"

	"github.com/tomz197/asteroidfall/internal/draw"
	"github.com/tomz197/asteroidfall/internal/input"
)

var (
	// ErrNoSurface is returned when a driver is created without a drawing surface.
	ErrNoSurface = errors.New("loop: no drawing surface")
	// ErrNoWorld is returned when a driver is created without a world.
	ErrNoWorld = errors.New("loop: no world")
	// ErrStop ends Run without an error when returned from a frame hook.
	ErrStop = errors.New("loop: stop")
)

// Driver runs the Update -> Draw cycle once per frame.
type Driver struct {
	world   *World
	surface draw.Surface
	input   *input.State
	clock   func() time.Time
	frames  uint64
}

// Option configures a Driver.
type Option func(*Driver)

// WithClock replaces time.Now as the source of frame timestamps.
func WithClock(clock func() time.Time) Option {
	return func(d *Driver) {
		d.clock = clock
	}
}

// NewDriver binds a world to a surface and an input state.
// The surface is required: a driver never runs without one.
func NewDriver(world *World, surface draw.Surface, in *input.State, opts ...Option) (*Driver, error) {
	if world == nil {
		return nil, ErrNoWorld
	}
	if surface == nil {
		return nil, ErrNoSurface
	}
	if in == nil {
		in = input.NewState()
	}

	d := &Driver{
		world:   world,
		surface: surface,
		input:   in,
		clock:   time.Now,
	}
	for _, opt := range opts {
		opt(d)
	}
	return d, nil
}

// Frame reads the clock once, updates the world and draws it.
func (d *Driver) Frame() {
	now := d.clock()
	d.world.Update(now, d.input)
	d.world.Draw(d.surface)
	d.frames++
}

// Frames returns how many frames have run.
func (d *Driver) Frames() uint64 {
	return d.frames
}

// World returns the driven world.
func (d *Driver) World() *World {
	return d.world
}

// Hooks run around every frame. Returning ErrStop ends Run cleanly; any
// other error ends Run with that error.
type Hooks struct {
	Before func() error
	After  func() error
}

// Run calls Frame every frameTime until ctx is cancelled or a hook stops it.
func (d *Driver) Run(ctx context.Context, frameTime time.Duration, hooks Hooks) error {
	timer := time.NewTimer(0)
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-timer.C:
		}

		frameStart := time.Now()

		if err := runHook(hooks.Before); err != nil {
			return stopOrErr(err)
		}

		d.Frame()

		if err := runHook(hooks.After); err != nil {
			return stopOrErr(err)
		}

		// Frame timing
		wait := frameTime - time.Since(frameStart)
		if wait < 0 {
			wait = 0
		}
		timer.Reset(wait)
	}
}

func runHook(hook func() error) error {
	if hook == nil {
		return nil
	}
	return hook()
}

func stopOrErr(err error) error {
	if errors.Is(err, ErrStop) {
		return nil
	}
	return err
}
