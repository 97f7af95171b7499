package desktop

import (
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/tomz197/asteroidfall/internal/input"
	"github.com/tomz197/asteroidfall/internal/loop"
)

// Game adapts a world to ebiten.Game. ebiten calls Update at 60 TPS, which
// matches the simulation's per-frame constants.
type Game struct {
	world    *loop.World
	surface  *Surface
	input    *input.State
	bindings input.Bindings
	clock    func() time.Time

	pressed  []ebiten.Key
	released []ebiten.Key
}

var _ ebiten.Game = (*Game)(nil)

// NewGame wraps world for an ebiten window.
func NewGame(world *loop.World, bindings input.Bindings) *Game {
	if bindings == nil {
		bindings = input.DefaultBindings()
	}
	b := world.Bounds()
	return &Game{
		world:    world,
		surface:  NewSurface(b.Width, b.Height),
		input:    input.NewState(),
		bindings: bindings,
		clock:    time.Now,
	}
}

// Update applies keyboard transitions and advances the world one frame.
func (g *Game) Update() error {
	g.pressed = inpututil.AppendJustPressedKeys(g.pressed[:0])
	g.released = inpututil.AppendJustReleasedKeys(g.released[:0])
	applyKeys(g.input, g.pressed, g.released)

	if g.bindings.Active(g.input, input.ActionQuit) {
		return ebiten.Termination
	}

	g.world.Update(g.clock(), g.input)
	return nil
}

// Draw paints the world onto screen.
func (g *Game) Draw(screen *ebiten.Image) {
	g.surface.Target(screen)
	g.world.Draw(g.surface)
}

// Layout fixes the logical screen to the world size; ebiten scales it to the window.
func (g *Game) Layout(_, _ int) (int, int) {
	b := g.world.Bounds()
	return int(b.Width), int(b.Height)
}
