package object

import (
	"math/rand"

	"github.com/tomz197/asteroidfall/internal/draw"
	"github.com/tomz197/asteroidfall/internal/physics"
)

// Asteroid size and speed ranges.
const (
	AsteroidMinSpeed    = 3.0
	AsteroidSpeedRange  = 2.0
	AsteroidMinRadius   = 10.0
	AsteroidRadiusRange = 50.0
)

// Asteroid is an obstacle falling straight down at constant speed.
// Unlike the ship and bullets it is not affected by gravity.
type Asteroid struct {
	Position physics.Vector2
	Speed    float64
	Radius   float64
}

// NewAsteroid creates an asteroid at pos with speed in [3, 5) and
// radius in [10, 60).
func NewAsteroid(pos physics.Vector2, rng *rand.Rand) *Asteroid {
	return &Asteroid{
		Position: pos,
		Speed:    rng.Float64()*AsteroidSpeedRange + AsteroidMinSpeed,
		Radius:   rng.Float64()*AsteroidRadiusRange + AsteroidMinRadius,
	}
}

// Update moves the asteroid down by its speed.
func (a *Asteroid) Update(_ UpdateContext) {
	a.Position.Y += a.Speed
}

// Expired reports whether the asteroid has fully dropped below the bounds.
func (a *Asteroid) Expired(b physics.Bounds) bool {
	return b.Below(a.Position, a.Radius)
}

// Draw renders the asteroid as a filled circle.
func (a *Asteroid) Draw(s draw.Surface) {
	s.SetFillColor(AsteroidColor)
	s.FillCircle(a.Position.X, a.Position.Y, a.Radius)
}
