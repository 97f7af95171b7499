package object

import (
	"github.com/tomz197/asteroidfall/internal/draw"
	"github.com/tomz197/asteroidfall/internal/physics"
)

// BulletSpeed is the muzzle speed of a bullet.
const BulletSpeed = 15.0

// Bullet is a projectile fired by the ship. It falls under gravity with no
// terminal velocity.
type Bullet struct {
	Position physics.Vector2
	Angle    float64
	Velocity physics.Vector2
}

// NewBullet creates a bullet at pos traveling along angle.
func NewBullet(pos physics.Vector2, angle float64) *Bullet {
	return &Bullet{
		Position: pos,
		Angle:    angle,
		Velocity: physics.Heading(angle, BulletSpeed),
	}
}

// Update moves the bullet and applies gravity.
func (b *Bullet) Update(_ UpdateContext) {
	physics.Translate(&b.Position, &b.Velocity, physics.Gravity)
}

// Expired reports whether the bullet has left the bounds on any side.
func (b *Bullet) Expired(bounds physics.Bounds) bool {
	return !bounds.Contains(b.Position)
}

// Draw renders the bullet as a thin rectangle along its firing angle.
func (b *Bullet) Draw(s draw.Surface) {
	s.Save()
	s.SetFillColor(BulletColor)
	s.Translate(b.Position.X, b.Position.Y)
	s.Rotate(b.Angle)
	s.FillRect(-8, -1, 24, 2)
	s.Restore()
}
