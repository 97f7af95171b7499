package input

import (
	"bufio"
	"time"
)

// Stream delivers terminal input bytes via a channel and converts key
// repeats into held-symbol transitions.
type Stream struct {
	ch       chan byte
	hold     time.Duration
	lastSeen [symbolCount]time.Time
	closed   bool
	buf      []byte
}

// StartStream spawns a goroutine that reads from r and sends bytes to the stream.
// A symbol stays held for hold after its most recent byte arrived.
func StartStream(r *bufio.Reader, hold time.Duration) *Stream {
	s := NewStream(hold)
	go func() {
		for {
			b, err := r.ReadByte()
			if err != nil {
				close(s.ch)
				return
			}
			s.ch <- b
		}
	}()
	return s
}

// NewStream creates a stream with no reader attached. Feed it with Push.
func NewStream(hold time.Duration) *Stream {
	return &Stream{
		ch:   make(chan byte, 128),
		hold: hold,
	}
}

// Push queues raw bytes as if they were read from the terminal.
func (s *Stream) Push(p []byte) {
	for _, b := range p {
		s.ch <- b
	}
}

// Closed reports whether the underlying reader has ended.
func (s *Stream) Closed() bool {
	return s.closed
}

// Poll drains all available bytes (non-blocking), then presses every symbol
// seen within the hold window and releases the rest.
// Returns true if any byte arrived.
func (s *Stream) Poll(state *State, now time.Time) bool {
	s.buf = s.buf[:0]

drain:
	for {
		select {
		case b, ok := <-s.ch:
			if !ok {
				s.closed = true
				break drain
			}
			s.buf = append(s.buf, b)
		default:
			break drain
		}
	}

	for _, sym := range Decode(s.buf) {
		s.lastSeen[sym] = now
	}

	for sym := SymbolUnknown; sym < symbolCount; sym++ {
		last := s.lastSeen[sym]
		if !last.IsZero() && now.Sub(last) < s.hold {
			state.Press(sym)
		} else {
			state.Release(sym)
		}
	}

	return len(s.buf) > 0
}

// Reset forgets every recently seen key so nothing stays held.
func (s *Stream) Reset(state *State) {
	clear(s.lastSeen[:])
	state.Reset()
}

// Decode converts raw terminal bytes into symbols.
// Handles CSI and SS3 arrow sequences; other escape sequences decode to
// SymbolUnknown. A lone ESC is SymbolEscape.
func Decode(buf []byte) []Symbol {
	var out []Symbol
	for i := 0; i < len(buf); i++ {
		b := buf[i]
		if b != '\x1b' {
			out = append(out, byteSymbol(b))
			continue
		}

		if i+1 >= len(buf) || (buf[i+1] != '[' && buf[i+1] != 'O') {
			out = append(out, SymbolEscape)
			continue
		}

		// Skip parameter bytes up to the final byte of the sequence.
		j := i + 2
		for j < len(buf) && (buf[j] < 0x40 || buf[j] > 0x7e) {
			j++
		}
		if j >= len(buf) {
			out = append(out, SymbolUnknown)
			break
		}
		out = append(out, arrowSymbol(buf[j]))
		i = j
	}
	return out
}

func arrowSymbol(final byte) Symbol {
	switch final {
	case 'A':
		return SymbolArrowUp
	case 'B':
		return SymbolArrowDown
	case 'C':
		return SymbolArrowRight
	case 'D':
		return SymbolArrowLeft
	default:
		return SymbolUnknown
	}
}

func byteSymbol(b byte) Symbol {
	switch b {
	case 'w', 'W':
		return SymbolW
	case 'a', 'A':
		return SymbolA
	case 's', 'S':
		return SymbolS
	case 'd', 'D':
		return SymbolD
	case ' ':
		return SymbolSpace
	case 'q', 'Q', '\x03': // Ctrl+C arrives as a byte in raw mode
		return SymbolQ
	case '\n', '\r':
		return SymbolEnter
	default:
		return SymbolUnknown
	}
}
