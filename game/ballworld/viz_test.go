package ballworld

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestVizFrameListsEveryObject(t *testing.T) {
	game := newTestGame()
	assert.NoError(t, game.CreateRandomBalls(3))

	game.Step(1, 0.05)

	// Vector2 marshals as [x, y], hence the loose shape here
	var msg struct {
		GameID  string
		Tick    int
		Objects []struct {
			Type     string
			Position [2]float64
			Radius   float64
		}
	}

	assert.NoError(t, json.Unmarshal(game.ProduceVizMessageJson(), &msg))

	assert.Equal(t, "test-game", msg.GameID)
	assert.Equal(t, 1, msg.Tick)
	assert.Len(t, msg.Objects, 4)

	robots := 0
	for _, obj := range msg.Objects {
		if obj.Type == "robot" {
			robots++
		} else {
			assert.Equal(t, "ball", obj.Type)
		}

		assert.True(t, obj.Radius > 0)
	}

	assert.Equal(t, 1, robots)
}
