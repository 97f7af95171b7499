package loop

import (
	"image/color"
	"math/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tomz197/asteroidfall/internal/config"
	"github.com/tomz197/asteroidfall/internal/input"
	"github.com/tomz197/asteroidfall/internal/object"
	"github.com/tomz197/asteroidfall/internal/physics"
)

var epoch = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

// quietConfig is the default field with no particles and no random spawns.
func quietConfig() WorldConfig {
	cfg := DefaultWorldConfig()
	cfg.Particles = 0
	cfg.AsteroidChance = 0
	return cfg
}

func newTestWorld(cfg WorldConfig) *World {
	return NewWorld(cfg, rand.New(rand.NewSource(42)))
}

// paintLog records the fill color names and shape calls a world makes.
type paintLog struct {
	names map[color.Color]string
	ops   []string
}

func newPaintLog() *paintLog {
	return &paintLog{names: map[color.Color]string{
		object.BackgroundColor: "background",
		object.ShipColor:       "ship",
		object.ParticleColor:   "particle",
		object.BulletColor:     "bullet",
		object.AsteroidColor:   "asteroid",
	}}
}

func (p *paintLog) Width() float64 { return 512 }
func (p *paintLog) Height() float64 { return 512 }
func (p *paintLog) ClearRect(_, _, _, _ float64) { p.ops = append(p.ops, "clear") }
func (p *paintLog) FillRect(_, _, _, _ float64) {}
func (p *paintLog) FillCircle(_, _, _ float64) {}
func (p *paintLog) Save() {}
func (p *paintLog) Restore() {}
func (p *paintLog) Translate(_, _ float64) {}
func (p *paintLog) Rotate(_ float64) {}
func (p *paintLog) SetFillColor(c color.Color) { p.ops = append(p.ops, p.names[c]) }

// groups collapses consecutive duplicates.
func (p *paintLog) groups() []string {
	var out []string
	for _, op := range p.ops {
		if len(out) == 0 || out[len(out)-1] != op {
			out = append(out, op)
		}
	}
	return out
}

func TestNewWorld(t *testing.T) {
	w := newTestWorld(DefaultWorldConfig())

	require.Len(t, w.Ships(), 1)
	assert.Equal(t, physics.Vec(256, 256), w.Ship().Position)
	assert.Len(t, w.Particles(), 100)
	assert.Empty(t, w.Asteroids())
	assert.Empty(t, w.Bullets())

	for _, p := range w.Particles() {
		assert.True(t, w.Bounds().Contains(p.Position))
	}
}

func TestIdleShipReachesTerminalVelocity(t *testing.T) {
	w := newTestWorld(DefaultWorldConfig())
	in := input.NewState()

	now := epoch
	prevY := w.Ship().Position.Y
	for i := 0; i < 1000; i++ {
		w.Update(now, in)
		now = now.Add(time.Second / 60)

		y := w.Ship().Position.Y
		require.GreaterOrEqual(t, y, prevY, "frame %d", i)
		prevY = y
	}

	// v = g·f / (1 - f)
	terminal := physics.Gravity * physics.Friction / (1 - physics.Friction)
	assert.InDelta(t, terminal, w.Ship().Velocity.Y, 1e-3)
	assert.Zero(t, w.Ship().Velocity.X)
	assert.Equal(t, uint64(1000), w.Frame())
}

func TestAsteroidRemovedWhenBelowField(t *testing.T) {
	w := newTestWorld(quietConfig())
	a := w.SpawnAsteroid(physics.Vec(100, -50))
	a.Speed = 4
	a.Radius = 10

	in := input.NewState()
	// -50 + 4·143 = 522 = height + radius, still kept.
	for i := 0; i < 143; i++ {
		w.Update(epoch, in)
	}
	require.Len(t, w.Asteroids(), 1)
	assert.Equal(t, 522.0, a.Position.Y)

	w.Update(epoch, in)
	assert.Empty(t, w.Asteroids())
}

func TestAsteroidSpawnChance(t *testing.T) {
	cfg := quietConfig()
	cfg.AsteroidChance = 1
	w := newTestWorld(cfg)

	w.Update(epoch, input.NewState())
	require.Len(t, w.Asteroids(), 1)

	a := w.Asteroids()[0]
	assert.Equal(t, cfg.AsteroidSpawnY, a.Position.Y)
	assert.GreaterOrEqual(t, a.Position.X, 0.0)
	assert.Less(t, a.Position.X, cfg.Bounds.Width)

	w.Update(epoch, input.NewState())
	assert.Len(t, w.Asteroids(), 2)
}

func TestNoSpawnWithZeroChance(t *testing.T) {
	w := newTestWorld(quietConfig())
	for i := 0; i < 500; i++ {
		w.Update(epoch, input.NewState())
	}
	assert.Empty(t, w.Asteroids())
}

func TestBulletMovesInFrameItWasFired(t *testing.T) {
	w := newTestWorld(quietConfig())
	in := input.NewState()
	in.Press(input.SymbolSpace)

	w.Update(epoch, in)
	require.Len(t, w.Bullets(), 1)

	b := w.Bullets()[0]
	ship := w.Ship()
	assert.NotEqual(t, ship.Position, b.Position)
	assert.InDelta(t, ship.Position.X+b.Velocity.X, b.Position.X, 1e-9)
	assert.InDelta(t, ship.Position.Y+b.Velocity.Y-physics.Gravity, b.Position.Y, 1e-9)
}

func TestBulletsPruned(t *testing.T) {
	w := newTestWorld(quietConfig())
	w.SpawnBullet(object.NewBullet(physics.Vec(500, 10), 0))
	w.SpawnBullet(object.NewBullet(physics.Vec(10, 10), 0))
	w.SpawnBullet(object.NewBullet(physics.Vec(505, 10), 0))

	w.Update(epoch, input.NewState())

	require.Len(t, w.Bullets(), 1)
	assert.InDelta(t, 25, w.Bullets()[0].Position.X, 1e-9)
}

func TestDrawOrder(t *testing.T) {
	cfg := quietConfig()
	cfg.Particles = 3
	w := newTestWorld(cfg)
	w.SpawnAsteroid(physics.Vec(50, 50))
	w.SpawnBullet(object.NewBullet(physics.Vec(100, 100), 0))

	log := newPaintLog()
	w.Draw(log)

	assert.Equal(t, []string{"clear", "background", "ship", "particle", "bullet", "asteroid"}, log.groups())
}

func TestStats(t *testing.T) {
	cfg := quietConfig()
	cfg.Particles = 7
	w := newTestWorld(cfg)
	w.SpawnAsteroid(physics.Vec(50, 50))
	w.Update(epoch, input.NewState())

	assert.Equal(t, Stats{Frame: 1, Ships: 1, Particles: 7, Asteroids: 1}, w.Stats())
}

func TestCustomBindings(t *testing.T) {
	cfg := quietConfig()
	cfg.Bindings = input.Bindings{input.ActionFire: {input.SymbolEnter}}
	w := newTestWorld(cfg)

	in := input.NewState()
	in.Press(input.SymbolSpace)
	w.Update(epoch, in)
	assert.Empty(t, w.Bullets())

	in.Press(input.SymbolEnter)
	w.Update(epoch, in)
	assert.Len(t, w.Bullets(), 1)
}

func TestEnvWorldConfig(t *testing.T) {
	t.Setenv(config.EnvParticles, "12")
	t.Setenv(config.EnvAsteroidPct, "0.5")

	cfg := EnvWorldConfig()
	assert.Equal(t, 12, cfg.Particles)
	assert.InDelta(t, 0.5, cfg.AsteroidChance, 1e-12)
	assert.Equal(t, DefaultWorldConfig().Bounds, cfg.Bounds)

	t.Setenv(config.EnvParticles, "-3")
	assert.Zero(t, EnvWorldConfig().Particles)
}
