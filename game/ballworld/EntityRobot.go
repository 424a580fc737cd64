package ballworld

import (
	"github.com/ballarena/ballarena/common/utils/vector"
	"github.com/bytearena/ecs"
)

// NewEntityRobot builds the player-driven robot. Its per-step hook caps the
// velocity at the steering speed and makes carried balls track its position.
func (game *BallworldGame) NewEntityRobot(position vector.Vector2) (*ecs.Entity, error) {

	body, err := NewRigidBody(robotMass)
	if err != nil {
		return nil, err
	}

	robot := game.manager.NewEntity()

	positionAspect := NewPosition(position)
	steeringAspect := NewSteering(robotSpeed, robotAcceleration)
	carrierAspect := NewCarrier(robotReach)

	body.SetOnStep(func(dt float64) {
		body.SetVelocity(body.GetVelocity().Limit(steeringAspect.GetSpeed()))

		for _, ballid := range carrierAspect.CarriedBalls() {
			qr := game.getEntity(ballid, game.positionComponent)
			if qr == nil {
				continue
			}

			game.CastPosition(qr.Components[game.positionComponent]).
				SetPosition(positionAspect.GetPosition())
		}
	})

	return robot.
		AddComponent(game.positionComponent, positionAspect).
		AddComponent(game.rigidBodyComponent, body).
		AddComponent(game.steeringComponent, steeringAspect).
		AddComponent(game.carrierComponent, carrierAspect), nil
}
