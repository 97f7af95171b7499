package input

import (
	"slices"

	"github.com/kamstrup/intmap"
)

// State is the set of currently held symbols. Key-down and key-up events
// mutate it; the simulation only queries it.
type State struct {
	held *intmap.Set[Symbol]
}

// NewState returns an empty input state.
func NewState() *State {
	return &State{held: intmap.NewSet[Symbol](int(symbolCount))}
}

// Press marks sym as held. Pressing a held symbol is a no-op.
func (s *State) Press(sym Symbol) {
	s.held.Add(sym)
}

// Release marks sym as no longer held. Releasing an idle symbol is a no-op.
func (s *State) Release(sym Symbol) {
	s.held.Del(sym)
}

// IsHeld reports whether sym is currently held.
func (s *State) IsHeld(sym Symbol) bool {
	return s.held.Has(sym)
}

// Len returns the number of held symbols.
func (s *State) Len() int {
	return s.held.Len()
}

// Held returns the held symbols in ascending order.
func (s *State) Held() []Symbol {
	out := make([]Symbol, 0, s.held.Len())
	for sym := range s.held.All() {
		out = append(out, sym)
	}
	slices.Sort(out)
	return out
}

// Reset releases every symbol.
func (s *State) Reset() {
	s.held.Clear()
}
