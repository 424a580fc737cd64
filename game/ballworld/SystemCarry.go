package ballworld

import (
	"github.com/ballarena/ballarena/common/utils/vector"
	"github.com/bytearena/ecs"
)

// systemCarry consumes the pickup-or-drop request, if any. A robot with a free
// bag grabs the nearest free ball within reach; a loaded robot drops its ball
// at its own position. Finding nothing in reach is a normal outcome.
func systemCarry(game *BallworldGame) {

	if !game.actions.ConsumePickupOrDrop() {
		return
	}

	qr := game.getEntity(game.robot.GetID(),
		game.positionComponent,
		game.carrierComponent,
	)
	if qr == nil {
		return
	}

	robotPosition := game.CastPosition(qr.Components[game.positionComponent])
	carrierAspect := game.CastCarrier(qr.Components[game.carrierComponent])

	if carrierAspect.HasABall() {
		releaseBall(game, robotPosition, carrierAspect)
		return
	}

	pickUpNearestBall(game, robotPosition, carrierAspect)
}

// pickUpNearestBall scans every free ball and grabs the closest one within the
// carrier's reach; ties go to the first ball found in view order.
func pickUpNearestBall(game *BallworldGame, robotPosition *Position, carrier *Carrier) {

	var nearestID ecs.EntityID
	var nearestCarryable *Carryable
	var nearestPosition *Position
	nearestDistance := 0.0
	found := false

	for _, entityresult := range game.carryableView.Get() {
		carryableAspect := game.CastCarryable(entityresult.Components[game.carryableComponent])
		if carryableAspect.IsCarried() {
			continue
		}

		ballPosition := game.CastPosition(entityresult.Components[game.positionComponent])
		distance := robotPosition.DistanceTo(ballPosition)

		if distance > carrier.GetReach() {
			continue
		}

		if !found || distance < nearestDistance {
			found = true
			nearestDistance = distance
			nearestID = entityresult.Entity.GetID()
			nearestCarryable = carryableAspect
			nearestPosition = ballPosition
		}
	}

	if !found {
		// Rien à portée; ce n'est pas une erreur
		return
	}

	if !carrier.PickUp(nearestID) {
		return
	}

	nearestCarryable.SetCarriedBy(game.robot.GetID())

	// La balle suit le robot dès la prise, et perd sa vitesse résiduelle
	nearestPosition.SetPosition(robotPosition.GetPosition())

	if qrBody := game.getEntity(nearestID, game.rigidBodyComponent); qrBody != nil {
		game.CastRigidBody(qrBody.Components[game.rigidBodyComponent]).
			SetVelocity(vector.MakeNullVector2())
	}
}

// releaseBall drops the carried ball at the robot's current position and
// marks it free again.
func releaseBall(game *BallworldGame, robotPosition *Position, carrier *Carrier) {

	ballid, ok := carrier.Release()
	if !ok {
		return
	}

	qr := game.getEntity(ballid,
		game.positionComponent,
		game.carryableComponent,
	)
	if qr == nil {
		return
	}

	game.CastPosition(qr.Components[game.positionComponent]).
		SetPosition(robotPosition.GetPosition())

	game.CastCarryable(qr.Components[game.carryableComponent]).SetFree()
}
