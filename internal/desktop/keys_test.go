package desktop

import (
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/stretchr/testify/assert"

	"github.com/tomz197/asteroidfall/internal/input"
)

func TestKeySymbol(t *testing.T) {
	tests := []struct {
		key  ebiten.Key
		want input.Symbol
	}{
		{ebiten.KeyArrowUp, input.SymbolArrowUp},
		{ebiten.KeyArrowRight, input.SymbolArrowRight},
		{ebiten.KeyW, input.SymbolW},
		{ebiten.KeySpace, input.SymbolSpace},
		{ebiten.KeyEscape, input.SymbolEscape},
		{ebiten.KeyF1, input.SymbolUnknown},
		{ebiten.KeyZ, input.SymbolUnknown},
	}
	for _, tt := range tests {
		t.Run(tt.key.String(), func(t *testing.T) {
			assert.Equal(t, tt.want, KeySymbol(tt.key))
		})
	}
}

func TestApplyKeys(t *testing.T) {
	state := input.NewState()

	applyKeys(state, []ebiten.Key{ebiten.KeyW, ebiten.KeySpace, ebiten.KeyF1}, nil)
	assert.Equal(t, []input.Symbol{input.SymbolW, input.SymbolSpace}, state.Held())

	applyKeys(state, []ebiten.Key{ebiten.KeyArrowLeft}, []ebiten.Key{ebiten.KeyW})
	assert.True(t, state.IsHeld(input.SymbolArrowLeft))
	assert.True(t, state.IsHeld(input.SymbolSpace))
	assert.False(t, state.IsHeld(input.SymbolW))

	// Releasing an unheld key is harmless.
	applyKeys(state, nil, []ebiten.Key{ebiten.KeyD, ebiten.KeyF1})
	assert.Equal(t, 2, state.Len())
}

func TestBindingsThroughKeys(t *testing.T) {
	state := input.NewState()
	b := input.DefaultBindings()

	applyKeys(state, []ebiten.Key{ebiten.KeyEscape}, nil)
	assert.True(t, b.Active(state, input.ActionQuit))

	applyKeys(state, nil, []ebiten.Key{ebiten.KeyEscape})
	assert.False(t, b.Active(state, input.ActionQuit))
}
