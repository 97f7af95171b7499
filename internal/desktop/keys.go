package desktop

import (
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/tomz197/asteroidfall/internal/input"
)

var keySymbols = map[ebiten.Key]input.Symbol{
	ebiten.KeyArrowUp:    input.SymbolArrowUp,
	ebiten.KeyArrowDown:  input.SymbolArrowDown,
	ebiten.KeyArrowLeft:  input.SymbolArrowLeft,
	ebiten.KeyArrowRight: input.SymbolArrowRight,
	ebiten.KeyW:          input.SymbolW,
	ebiten.KeyA:          input.SymbolA,
	ebiten.KeyS:          input.SymbolS,
	ebiten.KeyD:          input.SymbolD,
	ebiten.KeySpace:      input.SymbolSpace,
	ebiten.KeyQ:          input.SymbolQ,
	ebiten.KeyEscape:     input.SymbolEscape,
	ebiten.KeyEnter:      input.SymbolEnter,
}

// KeySymbol maps an ebiten key to its input symbol.
func KeySymbol(k ebiten.Key) input.Symbol {
	if sym, ok := keySymbols[k]; ok {
		return sym
	}
	return input.SymbolUnknown
}

// applyKeys turns key-down and key-up events into held-state changes.
// Unknown keys are ignored.
func applyKeys(state *input.State, pressed, released []ebiten.Key) {
	for _, k := range pressed {
		if sym := KeySymbol(k); sym != input.SymbolUnknown {
			state.Press(sym)
		}
	}
	for _, k := range released {
		if sym := KeySymbol(k); sym != input.SymbolUnknown {
			state.Release(sym)
		}
	}
}
