package object

import (
	"math/rand"

	"github.com/tomz197/asteroidfall/internal/draw"
	"github.com/tomz197/asteroidfall/internal/physics"
)

// Depth scales for particles. A "closer" particle falls faster and is larger.
const (
	particleMinDistance = 0.25
	particleSpeedScale  = 7.5
	particleRadiusScale = 2.0
)

// Particle is a decorative star that scrolls down and wraps to the top forever.
type Particle struct {
	Position physics.Vector2
	Speed    float64
	Radius   float64
}

// NewParticle creates a particle at pos with a random depth.
// Speed falls in [1.875, 9.375) and radius in [0.5, 2.5).
func NewParticle(pos physics.Vector2, rng *rand.Rand) *Particle {
	distance := rng.Float64() + particleMinDistance
	return &Particle{
		Position: pos,
		Speed:    distance * particleSpeedScale,
		Radius:   distance * particleRadiusScale,
	}
}

// Update moves the particle down and wraps it above the top edge once it
// has fully left the bottom.
func (p *Particle) Update(ctx UpdateContext) {
	p.Position.Y += p.Speed

	if ctx.Bounds.Below(p.Position, p.Radius) {
		p.Position.Y = -p.Radius
	}
}

// Draw renders the particle as a filled circle.
func (p *Particle) Draw(s draw.Surface) {
	s.SetFillColor(ParticleColor)
	s.FillCircle(p.Position.X, p.Position.Y, p.Radius)
}
