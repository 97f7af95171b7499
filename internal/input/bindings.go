package input

// Action is a control the simulation reacts to.
type Action int

const (
	ActionThrust Action = iota
	ActionReverse
	ActionRotateLeft
	ActionRotateRight
	ActionFire
	ActionQuit
)

// Bindings maps each action to the symbols that trigger it.
type Bindings map[Action][]Symbol

// DefaultBindings returns arrow keys and WASD for steering, space to fire,
// and q or escape to quit.
func DefaultBindings() Bindings {
	return Bindings{
		ActionThrust:      {SymbolArrowUp, SymbolW},
		ActionReverse:     {SymbolArrowDown, SymbolS},
		ActionRotateLeft:  {SymbolArrowLeft, SymbolA},
		ActionRotateRight: {SymbolArrowRight, SymbolD},
		ActionFire:        {SymbolSpace},
		ActionQuit:        {SymbolQ, SymbolEscape},
	}
}

// Active reports whether any symbol bound to action is held.
func (b Bindings) Active(s *State, action Action) bool {
	if s == nil {
		return false
	}
	for _, sym := range b[action] {
		if s.IsHeld(sym) {
			return true
		}
	}
	return false
}
