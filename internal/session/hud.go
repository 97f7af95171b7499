package session

import "fmt"

const controlsHint = "W/Up thrust  S/Down reverse  A D/< > rotate  SPACE fire  Q quit"

// drawHUD draws the text overlay. Fields use fixed-width formatting so
// shrinking values don't leave residual characters, since the canvas only
// redraws changed cells.
func (s *Session) drawHUD() {
	cw := s.chunkWriter
	termWidth := s.canvas.TerminalWidth()
	termHeight := s.canvas.TerminalHeight()

	if s.idle {
		msg := "Still there? Press any key or you will be disconnected."
		cw.WriteAt(max(1, (termWidth-len(msg))/2), termHeight/2, msg)
	}

	stats := s.world.Stats()
	counts := fmt.Sprintf("Asteroids: %-4d Bullets: %-4d", stats.Asteroids, stats.Bullets)
	cw.WriteAt(2, 1, counts)

	if s.username != "" {
		name := s.username
		if len(name) > 16 {
			name = name[:16]
		}
		cw.WriteAt(max(1, termWidth-len(name)-1), 1, name)
	}

	ship := s.world.Ship()
	coords := fmt.Sprintf("X:%-5.0f Y:%-5.0f", ship.Position.X, ship.Position.Y)
	cw.WriteAt(2, termHeight, coords)

	if len(controlsHint)+len(coords)+4 <= termWidth {
		cw.WriteAt(termWidth-len(controlsHint)-1, termHeight, controlsHint)
	}
}
