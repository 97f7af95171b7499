package loop

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tomz197/asteroidfall/internal/input"
)

func TestNewDriverRequiresSurface(t *testing.T) {
	_, err := NewDriver(newTestWorld(quietConfig()), nil, nil)
	assert.ErrorIs(t, err, ErrNoSurface)

	_, err = NewDriver(nil, newPaintLog(), nil)
	assert.ErrorIs(t, err, ErrNoWorld)
}

func TestDriverFrameUsesClock(t *testing.T) {
	w := newTestWorld(quietConfig())
	in := input.NewState()
	in.Press(input.SymbolSpace)

	now := epoch
	surface := newPaintLog()
	d, err := NewDriver(w, surface, in, WithClock(func() time.Time { return now }))
	require.NoError(t, err)

	d.Frame()
	d.Frame() // same instant: still cooling down
	assert.Len(t, w.Bullets(), 1)

	now = now.Add(125 * time.Millisecond)
	d.Frame()
	assert.Len(t, w.Bullets(), 2)

	assert.Equal(t, uint64(3), d.Frames())
	assert.Equal(t, uint64(3), w.Frame())
	assert.Contains(t, surface.ops, "clear")
}

func TestRunStopsOnErrStop(t *testing.T) {
	d, err := NewDriver(newTestWorld(quietConfig()), newPaintLog(), nil)
	require.NoError(t, err)

	var before, after int
	err = d.Run(context.Background(), time.Millisecond, Hooks{
		Before: func() error {
			before++
			return nil
		},
		After: func() error {
			after++
			if after == 5 {
				return ErrStop
			}
			return nil
		},
	})
	require.NoError(t, err)
	assert.Equal(t, 5, before)
	assert.Equal(t, 5, after)
	assert.Equal(t, uint64(5), d.Frames())
}

func TestRunBeforeHookSkipsFrame(t *testing.T) {
	d, err := NewDriver(newTestWorld(quietConfig()), newPaintLog(), nil)
	require.NoError(t, err)

	boom := errors.New("boom")
	err = d.Run(context.Background(), time.Millisecond, Hooks{
		Before: func() error { return boom },
	})
	assert.ErrorIs(t, err, boom)
	assert.Zero(t, d.Frames())
}

func TestRunStopsOnCancel(t *testing.T) {
	d, err := NewDriver(newTestWorld(quietConfig()), newPaintLog(), nil)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	err = d.Run(ctx, time.Millisecond, Hooks{
		After: func() error {
			if d.Frames() == 3 {
				cancel()
			}
			return nil
		},
	})
	require.NoError(t, err)
	assert.GreaterOrEqual(t, d.Frames(), uint64(3))
}
