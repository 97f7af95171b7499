// Package loop owns the simulated world and the per-frame driver that
// advances and draws it.
package loop

import (
	"math/rand"
	"time"

	"github.com/tomz197/asteroidfall/internal/config"
	"github.com/tomz197/asteroidfall/internal/draw"
	"github.com/tomz197/asteroidfall/internal/input"
	"github.com/tomz197/asteroidfall/internal/object"
	"github.com/tomz197/asteroidfall/internal/physics"
)

// WorldConfig holds the starting layout and spawn policy of a world.
type WorldConfig struct {
	Bounds         physics.Bounds
	ShipStart      physics.Vector2
	Particles      int
	AsteroidChance float64 // Per-frame probability of spawning one asteroid
	AsteroidSpawnY float64
	Bindings       input.Bindings
}

// DefaultWorldConfig returns the standard 512x512 field with one ship at
// (256, 256) and 100 particles.
func DefaultWorldConfig() WorldConfig {
	return WorldConfig{
		Bounds:         physics.Bounds{Width: config.CanvasWidth, Height: config.CanvasHeight},
		ShipStart:      physics.Vec(config.ShipStartX, config.ShipStartY),
		Particles:      config.ParticleCount,
		AsteroidChance: config.AsteroidChance,
		AsteroidSpawnY: config.AsteroidSpawnY,
		Bindings:       input.DefaultBindings(),
	}
}

// EnvWorldConfig returns DefaultWorldConfig with the particle count and
// asteroid chance overridable from the environment.
func EnvWorldConfig() WorldConfig {
	cfg := DefaultWorldConfig()
	cfg.Particles = max(0, config.GetEnvInt(config.EnvParticles, cfg.Particles))
	cfg.AsteroidChance = config.GetEnvFloat(config.EnvAsteroidPct, cfg.AsteroidChance)
	return cfg
}

// Stats summarises the world population.
type Stats struct {
	Frame     uint64
	Ships     int
	Particles int
	Asteroids int
	Bullets   int
}

// World holds every entity collection. Update and Draw must be called from
// a single goroutine.
type World struct {
	cfg WorldConfig
	rng *rand.Rand

	ships     []*object.Ship
	particles []*object.Particle
	asteroids []*object.Asteroid
	bullets   []*object.Bullet

	frame uint64
}

// NewWorld creates a world with one ship at cfg.ShipStart and cfg.Particles
// particles scattered uniformly over the bounds.
func NewWorld(cfg WorldConfig, rng *rand.Rand) *World {
	if cfg.Bindings == nil {
		cfg.Bindings = input.DefaultBindings()
	}
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	w := &World{
		cfg:       cfg,
		rng:       rng,
		ships:     []*object.Ship{object.NewShip(cfg.ShipStart)},
		particles: make([]*object.Particle, 0, cfg.Particles),
	}

	for i := 0; i < cfg.Particles; i++ {
		pos := physics.Vec(rng.Float64()*cfg.Bounds.Width, rng.Float64()*cfg.Bounds.Height)
		w.particles = append(w.particles, object.NewParticle(pos, rng))
	}

	return w
}

// Update advances one frame: ships, particles, asteroids, then bullets; may
// spawn an asteroid; then drops asteroids and bullets that left the field.
func (w *World) Update(now time.Time, in *input.State) {
	ctx := object.UpdateContext{
		Now:      now,
		Input:    in,
		Bindings: w.cfg.Bindings,
		Bounds:   w.cfg.Bounds,
		Rand:     w.rng,
		Spawner:  w,
	}

	for _, s := range w.ships {
		s.Update(ctx)
	}
	for _, p := range w.particles {
		p.Update(ctx)
	}
	for _, a := range w.asteroids {
		a.Update(ctx)
	}
	// Bullets fired by a ship this frame are already in the slice and move too.
	for _, b := range w.bullets {
		b.Update(ctx)
	}

	if w.rng.Float64() < w.cfg.AsteroidChance {
		x := w.rng.Float64() * w.cfg.Bounds.Width
		w.SpawnAsteroid(physics.Vec(x, w.cfg.AsteroidSpawnY))
	}

	w.asteroids = prune(w.asteroids, w.cfg.Bounds)
	w.bullets = prune(w.bullets, w.cfg.Bounds)

	w.frame++
}

type expirer interface {
	Expired(b physics.Bounds) bool
}

// prune keeps the entries still inside the bounds, preserving order.
func prune[T expirer](items []T, bounds physics.Bounds) []T {
	kept := items[:0] // reuse backing array
	for _, it := range items {
		if !it.Expired(bounds) {
			kept = append(kept, it)
		}
	}
	clear(items[len(kept):])
	return kept
}

// Draw clears the surface, paints the background, then ships, particles,
// bullets and asteroids, each group over the previous one.
func (w *World) Draw(s draw.Surface) {
	width, height := s.Width(), s.Height()
	s.ClearRect(0, 0, width, height)
	s.SetFillColor(object.BackgroundColor)
	s.FillRect(0, 0, width, height)

	for _, sh := range w.ships {
		sh.Draw(s)
	}
	for _, p := range w.particles {
		p.Draw(s)
	}
	for _, b := range w.bullets {
		b.Draw(s)
	}
	for _, a := range w.asteroids {
		a.Draw(s)
	}
}

// SpawnBullet appends a bullet. Implements object.Spawner.
func (w *World) SpawnBullet(b *object.Bullet) {
	w.bullets = append(w.bullets, b)
}

// SpawnAsteroid appends an asteroid with random speed and radius at pos.
func (w *World) SpawnAsteroid(pos physics.Vector2) *object.Asteroid {
	a := object.NewAsteroid(pos, w.rng)
	w.asteroids = append(w.asteroids, a)
	return a
}

// Ship returns the player ship.
func (w *World) Ship() *object.Ship {
	return w.ships[0]
}

// Ships returns the ships in draw order.
func (w *World) Ships() []*object.Ship { return w.ships }

// Particles returns the background particles in draw order.
func (w *World) Particles() []*object.Particle { return w.particles }

// Asteroids returns the live asteroids in spawn order.
func (w *World) Asteroids() []*object.Asteroid { return w.asteroids }

// Bullets returns the live bullets in fire order.
func (w *World) Bullets() []*object.Bullet { return w.bullets }

// Bounds returns the field rectangle.
func (w *World) Bounds() physics.Bounds { return w.cfg.Bounds }

// Frame returns the number of completed updates.
func (w *World) Frame() uint64 { return w.frame }

// Stats returns the current frame number and collection sizes.
func (w *World) Stats() Stats {
	return Stats{
		Frame:     w.frame,
		Ships:     len(w.ships),
		Particles: len(w.particles),
		Asteroids: len(w.asteroids),
		Bullets:   len(w.bullets),
	}
}
