// Package input tracks which keys are held and decodes raw terminal input
// into key-down/key-up transitions.
package input

import "strings"

// Symbol identifies a key. The set is fixed; anything else is SymbolUnknown.
type Symbol uint8

const (
	SymbolUnknown Symbol = iota
	SymbolArrowUp
	SymbolArrowDown
	SymbolArrowLeft
	SymbolArrowRight
	SymbolW
	SymbolA
	SymbolS
	SymbolD
	SymbolSpace
	SymbolQ
	SymbolEscape
	SymbolEnter

	symbolCount
)

var symbolNames = [symbolCount]string{
	SymbolUnknown:    "Unidentified",
	SymbolArrowUp:    "ArrowUp",
	SymbolArrowDown:  "ArrowDown",
	SymbolArrowLeft:  "ArrowLeft",
	SymbolArrowRight: "ArrowRight",
	SymbolW:          "w",
	SymbolA:          "a",
	SymbolS:          "s",
	SymbolD:          "d",
	SymbolSpace:      " ",
	SymbolQ:          "q",
	SymbolEscape:     "Escape",
	SymbolEnter:      "Enter",
}

// String returns the DOM-style key name of the symbol.
func (s Symbol) String() string {
	if s >= symbolCount {
		return symbolNames[SymbolUnknown]
	}
	return symbolNames[s]
}

// ParseSymbol maps a DOM-style key name ("ArrowUp", "w", " ") to a Symbol.
// Single letters match regardless of case. Unrecognized names yield SymbolUnknown.
func ParseSymbol(name string) Symbol {
	if len(name) == 1 {
		name = strings.ToLower(name)
	}
	for sym := SymbolArrowUp; sym < symbolCount; sym++ {
		if symbolNames[sym] == name {
			return sym
		}
	}
	return SymbolUnknown
}
