package ballworld

import (
	"github.com/ballarena/ballarena/common/utils/vector"
)

// systemPhysics integrates every physical entity. Balls currently carried are
// skipped; their position is slaved to their carrier.
func systemPhysics(game *BallworldGame, dt float64) {

	for _, entityresult := range game.physicalView.Get() {
		if qr := game.getEntity(entityresult.Entity.GetID(), game.carryableComponent); qr != nil {
			carryableAspect := game.CastCarryable(qr.Components[game.carryableComponent])
			if carryableAspect.IsCarried() {
				continue
			}
		}

		positionAspect := game.CastPosition(entityresult.Components[game.positionComponent])
		bodyAspect := game.CastRigidBody(entityresult.Components[game.rigidBodyComponent])

		integrateBody(positionAspect, bodyAspect, dt)
	}
}

// integrateBody performs one semi-implicit Euler step: the velocity is updated
// from the accumulated force first, then the position is updated from the new
// velocity. The net force is consumed by the integration.
func integrateBody(position *Position, body *RigidBody, dt float64) {

	acceleration := body.netforce.DivScalar(body.mass)

	body.velocity = body.velocity.AddScaled(acceleration, dt)
	position.pos = position.pos.AddScaled(body.velocity, dt)

	body.netforce = vector.MakeNullVector2()

	if body.onStep != nil {
		body.onStep(dt)
	}
}
