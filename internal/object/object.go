// Package object implements the simulated entities: background particles,
// asteroids, bullets and the player ship.
package object

import (
	"math/rand"
	"time"

	"github.com/tomz197/asteroidfall/internal/draw"
	"github.com/tomz197/asteroidfall/internal/input"
	"github.com/tomz197/asteroidfall/internal/physics"
)

// Spawner accepts bullets created during update.
type Spawner interface {
	SpawnBullet(b *Bullet)
}

// UpdateContext provides all the information an object needs during update.
type UpdateContext struct {
	Now      time.Time // Frame timestamp; drives the fire cooldown
	Input    *input.State
	Bindings input.Bindings
	Bounds   physics.Bounds
	Rand     *rand.Rand
	Spawner  Spawner
}

// Active reports whether a control is held this frame.
func (ctx UpdateContext) Active(action input.Action) bool {
	return ctx.Bindings.Active(ctx.Input, action)
}

func (ctx UpdateContext) float64() float64 {
	if ctx.Rand == nil {
		return rand.Float64()
	}
	return ctx.Rand.Float64()
}

// Object is an updatable, drawable entity.
type Object interface {
	// Update advances the object by one frame.
	Update(ctx UpdateContext)

	// Draw paints the object onto the surface.
	Draw(s draw.Surface)
}
