package ballworld

import (
	"github.com/ballarena/ballarena/common/utils/vector"
)

// systemIntents transfers the buffered player intents onto the robot: queued
// axis stops first, then the level-triggered movement intent as a force.
func systemIntents(game *BallworldGame) {

	qr := game.getEntity(game.robot.GetID(),
		game.rigidBodyComponent,
		game.steeringComponent,
	)
	if qr == nil {
		return
	}

	bodyAspect := game.CastRigidBody(qr.Components[game.rigidBodyComponent])
	steeringAspect := game.CastSteering(qr.Components[game.steeringComponent])

	for _, direction := range game.actions.ConsumeStops() {
		stopMoving(bodyAspect, direction)
	}

	applyMovement(bodyAspect, steeringAspect, game.actions.GetMovement())
}

// applyMovement turns a raw directional intent into a force on the body. The
// direction is normalized, so diagonal intents are not faster than cardinal ones.
func applyMovement(body *RigidBody, steering *Steering, direction vector.Vector2) {
	if direction.IsNull() {
		return
	}

	force := direction.Normalize().MultScalar(steering.GetAcceleration())
	fx, fy := force.Get()
	body.AddForce(fx, fy)
}

// stopMoving halts the body along the direction's axis only; a stop whose sign
// does not match the current motion is a no-op, so releasing one key never
// cancels movement on the other axis or in the opposite direction.
func stopMoving(body *RigidBody, direction vector.Vector2) {
	body.SetVelocity(zeroMatchingAxis(body.GetVelocity(), direction))
	body.netforce = zeroMatchingAxis(body.netforce, direction)
}
