package types

import (
	"github.com/ballarena/ballarena/common/utils/vector"
)

// Bounds is the axis-aligned playable area of an arena.
type Bounds struct {
	MinX float64 `json:"minx"`
	MaxX float64 `json:"maxx"`
	MinY float64 `json:"miny"`
	MaxY float64 `json:"maxy"`
}

func MakeBounds(minx, maxx, miny, maxy float64) Bounds {
	return Bounds{
		MinX: minx,
		MaxX: maxx,
		MinY: miny,
		MaxY: maxy,
	}
}

func (b Bounds) Width() float64 {
	return b.MaxX - b.MinX
}

func (b Bounds) Height() float64 {
	return b.MaxY - b.MinY
}

func (b Bounds) Contains(p vector.Vector2) bool {
	x, y := p.Get()
	return x >= b.MinX && x <= b.MaxX && y >= b.MinY && y <= b.MaxY
}

// Clamp returns p moved to the nearest point inside the bounds,
// and whether each axis had to be clamped.
func (b Bounds) Clamp(p vector.Vector2) (res vector.Vector2, clampedX bool, clampedY bool) {
	x, y := p.Get()

	if x < b.MinX {
		x = b.MinX
		clampedX = true
	} else if x > b.MaxX {
		x = b.MaxX
		clampedX = true
	}

	if y < b.MinY {
		y = b.MinY
		clampedY = true
	} else if y > b.MaxY {
		y = b.MaxY
		clampedY = true
	}

	return vector.MakeVector2(x, y), clampedX, clampedY
}
