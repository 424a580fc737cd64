package ballworld

import (
	"github.com/bytearena/ecs"
)

func (game BallworldGame) CastCarrier(data interface{}) *Carrier {
	return data.(*Carrier)
}

// Carrier lets an entity pick up and carry balls. The bag is list-shaped but
// capped at carrierCapacity; the carried ball itself keeps its own carry state
// in its Carryable component, the carrier only holds ids.
type Carrier struct {
	reach   float64
	carried []ecs.EntityID
}

func NewCarrier(reach float64) *Carrier {
	return &Carrier{
		reach:   reach,
		carried: make([]ecs.EntityID, 0, carrierCapacity),
	}
}

func (c Carrier) GetReach() float64 {
	return c.reach
}

func (c *Carrier) SetReach(reach float64) *Carrier {
	c.reach = reach
	return c
}

func (c Carrier) HasABall() bool {
	return len(c.carried) > 0
}

func (c Carrier) BallCount() int {
	return len(c.carried)
}

func (c Carrier) IsCarrying(ballid ecs.EntityID) bool {
	for _, id := range c.carried {
		if id == ballid {
			return true
		}
	}

	return false
}

func (c Carrier) CarriedBalls() []ecs.EntityID {
	res := make([]ecs.EntityID, len(c.carried))
	copy(res, c.carried)
	return res
}

// PickUp adds the ball to the bag; picking up while the bag is full is a
// silent no-op, not an error. Returns whether the ball was taken.
func (c *Carrier) PickUp(ballid ecs.EntityID) bool {
	if len(c.carried) >= carrierCapacity {
		return false
	}

	c.carried = append(c.carried, ballid)
	return true
}

// Release drops the first carried ball; releasing with an empty bag is a
// silent no-op. Returns the dropped ball id and whether one was dropped.
func (c *Carrier) Release() (ecs.EntityID, bool) {
	if len(c.carried) == 0 {
		return 0, false
	}

	ballid := c.carried[0]
	c.carried = c.carried[1:]
	return ballid, true
}
