package object

import (
	"math"
	"time"

	"github.com/tomz197/asteroidfall/internal/draw"
	"github.com/tomz197/asteroidfall/internal/input"
	"github.com/tomz197/asteroidfall/internal/physics"
)

// Ship handling, per frame.
const (
	ShipThrust        = 0.15
	ShipReverseThrust = -0.1
	ShipRotationSpeed = 0.06 // Radians
	ShipFireCooldown  = 125 * time.Millisecond
	ShipBulletSpread  = 0.1 // Total jitter width in radians, centred on the heading
)

// Ship is the player-controlled ship. It is never destroyed.
type Ship struct {
	Position   physics.Vector2
	Velocity   physics.Vector2
	Angle      float64   // Radians; 0 points right, -π/2 points up
	CooldownAt time.Time // Earliest time the next shot may be fired
}

// NewShip creates a stationary ship at pos pointing up.
func NewShip(pos physics.Vector2) *Ship {
	return &Ship{
		Position: pos,
		Angle:    -0.5 * math.Pi,
	}
}

// Update integrates motion, applies friction, then reacts to held controls.
func (s *Ship) Update(ctx UpdateContext) {
	physics.Translate(&s.Position, &s.Velocity, physics.Gravity)
	physics.ApplyFriction(&s.Velocity, physics.Friction)

	if ctx.Active(input.ActionThrust) {
		s.thrust(ShipThrust)
	}
	if ctx.Active(input.ActionReverse) {
		s.thrust(ShipReverseThrust)
	}

	if ctx.Active(input.ActionRotateLeft) {
		s.Angle -= ShipRotationSpeed
	}
	if ctx.Active(input.ActionRotateRight) {
		s.Angle += ShipRotationSpeed
	}

	if ctx.Active(input.ActionFire) && s.CanFire(ctx.Now) {
		s.Shoot(ctx)
	}
}

func (s *Ship) thrust(power float64) {
	push := physics.Heading(s.Angle, power)
	s.Velocity.X += push.X
	s.Velocity.Y += push.Y
}

// CanFire reports whether the cooldown has elapsed at now.
func (s *Ship) CanFire(now time.Time) bool {
	return !now.Before(s.CooldownAt)
}

// Shoot starts the cooldown and fires a bullet from the ship's position with a
// small random deviation from its heading. The bullet is handed to ctx.Spawner.
func (s *Ship) Shoot(ctx UpdateContext) *Bullet {
	s.CooldownAt = ctx.Now.Add(ShipFireCooldown)

	angle := s.Angle + (ctx.float64()-0.5)*ShipBulletSpread
	b := NewBullet(s.Position, angle)
	if ctx.Spawner != nil {
		ctx.Spawner.SpawnBullet(b)
	}
	return b
}

// Draw renders the hull and cockpit rotated to the ship's heading.
func (s *Ship) Draw(surface draw.Surface) {
	surface.Save()
	surface.SetFillColor(ShipColor)
	surface.Translate(s.Position.X, s.Position.Y)
	surface.Rotate(s.Angle)
	surface.FillRect(-8, -2, 24, 4)
	surface.FillRect(-4, -8, 8, 16)
	surface.Restore()
}
