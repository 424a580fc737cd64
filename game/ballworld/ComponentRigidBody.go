package ballworld

import (
	"math"

	"github.com/ballarena/ballarena/common/utils/vector"
)

func (game BallworldGame) CastRigidBody(data interface{}) *RigidBody {
	return data.(*RigidBody)
}

// RigidBody gives an entity force-driven motion. Forces accumulate between two
// integrations and are consumed (zeroed) by the integration itself.
type RigidBody struct {
	mass     float64
	velocity vector.Vector2
	netforce vector.Vector2

	// Invoked after each integration of this body; entity builders install
	// their per-type behaviour here (speed capping, carried-ball tracking)
	onStep func(dt float64)
}

// NewRigidBody rejects non-positive or NaN masses; it never clamps silently.
func NewRigidBody(mass float64) (*RigidBody, error) {
	body := &RigidBody{
		velocity: vector.MakeNullVector2(),
		netforce: vector.MakeNullVector2(),
	}

	if err := body.SetMass(mass); err != nil {
		return nil, err
	}

	return body, nil
}

func (b RigidBody) GetMass() float64 {
	return b.mass
}

func (b *RigidBody) SetMass(mass float64) error {
	if math.IsNaN(mass) || mass <= 0 {
		return NewInvalidParameterError("mass", mass)
	}

	b.mass = mass
	return nil
}

func (b RigidBody) GetVelocity() vector.Vector2 {
	return b.velocity
}

func (b *RigidBody) SetVelocity(velocity vector.Vector2) *RigidBody {
	b.velocity = velocity
	return b
}

func (b RigidBody) GetNetForce() vector.Vector2 {
	return b.netforce
}

// AddForce accumulates into the net force; callable any number of times
// before the next integration.
func (b *RigidBody) AddForce(fx float64, fy float64) *RigidBody {
	b.netforce = b.netforce.Add(vector.MakeVector2(fx, fy))
	return b
}

func (b *RigidBody) SetOnStep(onStep func(dt float64)) *RigidBody {
	b.onStep = onStep
	return b
}
