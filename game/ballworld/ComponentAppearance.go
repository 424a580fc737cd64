package ballworld

import (
	"fmt"
	"math/rand"
)

func (game BallworldGame) CastAppearance(data interface{}) *Appearance {
	return data.(*Appearance)
}

// Appearance is purely cosmetic; it never influences the physics.
type Appearance struct {
	r uint8
	g uint8
	b uint8
}

func NewAppearance(r uint8, g uint8, b uint8) *Appearance {
	return &Appearance{
		r: r,
		g: g,
		b: b,
	}
}

// NewRandomAppearance draws a color from the injected random source.
func NewRandomAppearance(rng *rand.Rand) *Appearance {
	return NewAppearance(
		uint8(rng.Intn(256)),
		uint8(rng.Intn(256)),
		uint8(rng.Intn(256)),
	)
}

func (a Appearance) GetRGB() (uint8, uint8, uint8) {
	return a.r, a.g, a.b
}

func (a Appearance) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", a.r, a.g, a.b)
}
