package ballworld

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"

	commontypes "github.com/ballarena/ballarena/common/types"
	"github.com/ballarena/ballarena/common/utils/vector"
)

func newTestGame() *BallworldGame {
	bounds := commontypes.MakeBounds(0, 40, 0, 30)
	return NewBallworldGame("test-game", bounds, rand.New(rand.NewSource(42)))
}

func robotAspects(game *BallworldGame) (*Position, *RigidBody) {
	qr := game.getEntity(game.robot.GetID(),
		game.positionComponent,
		game.rigidBodyComponent,
	)

	return game.CastPosition(qr.Components[game.positionComponent]),
		game.CastRigidBody(qr.Components[game.rigidBodyComponent])
}

func TestNewRigidBodyRejectsInvalidMass(t *testing.T) {
	examples := []struct {
		Name string
		Mass float64
	}{
		{Name: "Should reject a null mass", Mass: 0},
		{Name: "Should reject a negative mass", Mass: -3},
		{Name: "Should reject a NaN mass", Mass: math.NaN()},
	}

	for _, example := range examples {
		t.Run(example.Name, func(t *testing.T) {
			body, err := NewRigidBody(example.Mass)
			assert.Error(t, err)
			assert.Nil(t, body)
		})
	}

	body, err := NewRigidBody(10)
	assert.NoError(t, err)
	assert.Equal(t, 10.0, body.GetMass())

	assert.Error(t, body.SetMass(-1))
	assert.Equal(t, 10.0, body.GetMass())
}

func TestForcesAccumulateUntilIntegration(t *testing.T) {
	body, _ := NewRigidBody(1)

	body.AddForce(1, 2)
	body.AddForce(-0.5, 1)

	assert.True(t, body.GetNetForce().Equals(vector.MakeVector2(0.5, 3)))
}

func TestIntegrationIsSemiImplicit(t *testing.T) {
	position := NewPosition(vector.MakeNullVector2())
	body, _ := NewRigidBody(2)

	body.AddForce(4, -2)
	integrateBody(position, body, 0.5)

	// v = (F/m)·dt, then p moves with the NEW velocity
	assert.InDelta(t, 1, body.GetVelocity().GetX(), 1e-9)
	assert.InDelta(t, -0.5, body.GetVelocity().GetY(), 1e-9)
	assert.InDelta(t, 0.5, position.GetX(), 1e-9)
	assert.InDelta(t, -0.25, position.GetY(), 1e-9)

	// The integration consumed the force
	assert.True(t, body.GetNetForce().IsNull())

	// No force: velocity persists, position keeps drifting
	integrateBody(position, body, 0.5)
	assert.InDelta(t, 1, body.GetVelocity().GetX(), 1e-9)
	assert.InDelta(t, 1, position.GetX(), 1e-9)
}

func TestOnStepRunsAfterIntegration(t *testing.T) {
	position := NewPosition(vector.MakeNullVector2())
	body, _ := NewRigidBody(1)

	calls := 0
	var seenVelocity vector.Vector2

	body.SetOnStep(func(dt float64) {
		calls++
		seenVelocity = body.GetVelocity()
	})

	body.AddForce(2, 0)
	integrateBody(position, body, 1)

	assert.Equal(t, 1, calls)
	assert.True(t, seenVelocity.Equals(vector.MakeVector2(2, 0)))
}

func TestRobotMovementThroughStep(t *testing.T) {
	game := newTestGame()
	position, body := robotAspects(game)

	game.GetActionController().SetMovement(1, 0)
	game.Step(1, 0.5)

	expectedVx := robotAcceleration / robotMass * 0.5
	assert.InDelta(t, expectedVx, body.GetVelocity().GetX(), 1e-9)
	assert.InDelta(t, 0, body.GetVelocity().GetY(), 1e-9)
	assert.InDelta(t, 20+expectedVx*0.5, position.GetX(), 1e-9)
}

func TestRobotSpeedIsCapped(t *testing.T) {
	game := newTestGame()
	_, body := robotAspects(game)

	body.SetVelocity(vector.MakeVector2(10, 0))
	game.Step(1, 0.1)

	assert.InDelta(t, robotSpeed, body.GetVelocity().Mag(), 1e-9)
}

func TestStopHaltsMatchingAxisOnly(t *testing.T) {
	game := newTestGame()
	_, body := robotAspects(game)
	actions := game.GetActionController()

	actions.SetMovement(1, 1)
	for tick := 1; tick <= 5; tick++ {
		game.Step(tick, 0.1)
	}

	assert.True(t, body.GetVelocity().GetX() > 0)
	assert.True(t, body.GetVelocity().GetY() > 0)

	// Stopping leftward while moving right changes nothing
	actions.StopMovement(-1, 0)
	game.Step(6, 0.1)
	assert.True(t, body.GetVelocity().GetX() > 0)

	// Stopping rightward halts the x axis and leaves y alone
	actions.StopMovement(1, 0)
	game.Step(7, 0.1)
	assert.InDelta(t, 0, body.GetVelocity().GetX(), 1e-9)
	assert.True(t, body.GetVelocity().GetY() > 0)
}
