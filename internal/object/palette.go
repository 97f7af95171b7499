package object

import "github.com/lucasb-eyer/go-colorful"

// Fill colors.
var (
	BackgroundColor = mustHex("#150505")
	ParticleColor   = mustHex("#444")
	AsteroidColor   = mustHex("#860")
	BulletColor     = mustHex("#ff5")
	ShipColor       = mustHex("#2af")
)

func mustHex(s string) colorful.Color {
	c, err := colorful.Hex(s)
	if err != nil {
		panic(err)
	}
	return c
}
