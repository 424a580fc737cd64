package ballworld

import (
	"github.com/bytearena/ecs"
)

func (game BallworldGame) CastCarryable(data interface{}) *Carryable {
	return data.(*Carryable)
}

// Carryable records whether a ball is free or in a carrier's bag. It is the
// single source of truth for the carry state; carriers hold only the ball id.
type Carryable struct {
	carried   bool
	carriedBy ecs.EntityID
}

func NewCarryable() *Carryable {
	return &Carryable{}
}

func (c Carryable) IsCarried() bool {
	return c.carried
}

func (c Carryable) CarriedBy() (ecs.EntityID, bool) {
	return c.carriedBy, c.carried
}

func (c *Carryable) SetCarriedBy(carrierid ecs.EntityID) *Carryable {
	c.carried = true
	c.carriedBy = carrierid
	return c
}

func (c *Carryable) SetFree() *Carryable {
	c.carried = false
	c.carriedBy = 0
	return c
}
