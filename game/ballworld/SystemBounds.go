package ballworld

// systemBounds keeps every physical entity inside the world. The policy is to
// clamp: a position beyond an edge is moved back onto it and the velocity
// component pointing outward is zeroed, so entities slide along walls instead
// of accumulating speed into them. Creation, by contrast, rejects (CreateBall).
func systemBounds(game *BallworldGame) {

	for _, entityresult := range game.physicalView.Get() {
		positionAspect := game.CastPosition(entityresult.Components[game.positionComponent])
		bodyAspect := game.CastRigidBody(entityresult.Components[game.rigidBodyComponent])

		clamped, clampedX, clampedY := game.bounds.Clamp(positionAspect.GetPosition())

		if !clampedX && !clampedY {
			continue
		}

		positionAspect.SetPosition(clamped)

		velocity := bodyAspect.GetVelocity()
		if clampedX {
			velocity = velocity.SetX(0)
		}
		if clampedY {
			velocity = velocity.SetY(0)
		}
		bodyAspect.SetVelocity(velocity)
	}
}
