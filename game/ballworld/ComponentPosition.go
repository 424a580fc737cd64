package ballworld

import (
	"github.com/ballarena/ballarena/common/utils/vector"
)

func (game BallworldGame) CastPosition(data interface{}) *Position {
	return data.(*Position)
}

// Position locates an entity in the world; every entity has one, defined at
// construction and never nil.
type Position struct {
	pos vector.Vector2
}

func NewPosition(pos vector.Vector2) *Position {
	return &Position{
		pos: pos,
	}
}

func (p Position) GetPosition() vector.Vector2 {
	return p.pos
}

func (p *Position) SetPosition(pos vector.Vector2) *Position {
	p.pos = pos
	return p
}

func (p Position) GetX() float64 {
	return p.pos.GetX()
}

func (p Position) GetY() float64 {
	return p.pos.GetY()
}

func (p *Position) SetX(x float64) *Position {
	p.pos = p.pos.SetX(x)
	return p
}

func (p *Position) SetY(y float64) *Position {
	p.pos = p.pos.SetY(y)
	return p
}

func (p *Position) MoveBy(dx float64, dy float64) *Position {
	p.pos = p.pos.Add(vector.MakeVector2(dx, dy))
	return p
}

func (p Position) DistanceTo(other *Position) float64 {
	return vector.Distance(p.pos, other.pos)
}
