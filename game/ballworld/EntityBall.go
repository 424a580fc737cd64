package ballworld

import (
	"github.com/ballarena/ballarena/common/utils/vector"
	"github.com/bytearena/ecs"
)

// NewEntityBall builds a passive ball. Balls have no behaviour of their own in
// this game; they only move when pushed or carried.
func (game *BallworldGame) NewEntityBall(position vector.Vector2, appearance *Appearance) (*ecs.Entity, error) {

	body, err := NewRigidBody(ballMass)
	if err != nil {
		return nil, err
	}

	ball := game.manager.NewEntity()

	return ball.
		AddComponent(game.positionComponent, NewPosition(position)).
		AddComponent(game.rigidBodyComponent, body).
		AddComponent(game.carryableComponent, NewCarryable()).
		AddComponent(game.appearanceComponent, appearance), nil
}
