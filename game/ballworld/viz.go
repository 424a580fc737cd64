package ballworld

import (
	"encoding/json"

	commontypes "github.com/ballarena/ballarena/common/types"
)

// ProduceVizMessageJson builds the frame consumed by the rendering collaborator.
func (game *BallworldGame) ProduceVizMessageJson() []byte {
	msg := commontypes.VizMessage{
		GameID:  game.gameID,
		Tick:    game.ticknum,
		Bounds:  game.bounds,
		Objects: []commontypes.VizMessageObject{},
	}

	robot := game.GetRobot()
	msg.Objects = append(msg.Objects, commontypes.VizMessageObject{
		Id:       robot.Id.String(),
		Type:     "robot",
		Position: robot.Position,
		Velocity: robot.Velocity,
		Radius:   robotRadius,
	})

	for _, ball := range game.GetBalls() {
		msg.Objects = append(msg.Objects, commontypes.VizMessageObject{
			Id:       ball.Id.String(),
			Type:     "ball",
			Position: ball.Position,
			Velocity: ball.Velocity,
			Radius:   ballRadius,
			Color:    ball.Color,
			Carried:  ball.Carried,
		})
	}

	res, _ := json.Marshal(msg)
	return res
}
