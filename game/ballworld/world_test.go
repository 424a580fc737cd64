package ballworld

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ballarena/ballarena/common/utils/vector"
)

func TestCreateBallRejectsBadPositions(t *testing.T) {
	game := newTestGame()

	examples := []struct {
		Name string
		X    float64
		Y    float64
	}{
		{Name: "Should reject a NaN x", X: math.NaN(), Y: 5},
		{Name: "Should reject a NaN y", X: 5, Y: math.NaN()},
		{Name: "Should reject x below the world", X: -1, Y: 5},
		{Name: "Should reject x beyond the world", X: 41, Y: 5},
		{Name: "Should reject y below the world", X: 5, Y: -1},
		{Name: "Should reject y beyond the world", X: 5, Y: 31},
	}

	for _, example := range examples {
		t.Run(example.Name, func(t *testing.T) {
			ball, err := game.CreateBall(example.X, example.Y)
			assert.Error(t, err)
			assert.Nil(t, ball)
		})
	}

	assert.Len(t, game.GetBalls(), 0)

	// Edges are inside
	_, err := game.CreateBall(0, 0)
	assert.NoError(t, err)
	_, err = game.CreateBall(40, 30)
	assert.NoError(t, err)
}

func TestCreateRandomBallsStayInBounds(t *testing.T) {
	game := newTestGame()

	assert.NoError(t, game.CreateRandomBalls(50))

	balls := game.GetBalls()
	assert.Len(t, balls, 50)

	for _, ball := range balls {
		assert.True(t, game.GetBounds().Contains(ball.Position))
	}
}

func TestRandomIntIsInclusive(t *testing.T) {
	game := newTestGame()

	assert.Equal(t, 3, game.RandomInt(3, 3))

	seen := make(map[int]bool)
	for i := 0; i < 1000; i++ {
		n := game.RandomInt(0, 2)
		assert.True(t, n >= 0 && n <= 2)
		seen[n] = true
	}

	assert.Len(t, seen, 3)
}

func TestMotionIsClampedToBounds(t *testing.T) {
	game := newTestGame()
	position, body := robotAspects(game)

	body.SetVelocity(vector.MakeVector2(100, 0))
	game.Step(1, 1)

	// The robot is pushed back onto the east wall and stops sliding into it
	assert.InDelta(t, 40, position.GetX(), 1e-9)
	assert.InDelta(t, 15, position.GetY(), 1e-9)
	assert.InDelta(t, 0, body.GetVelocity().GetX(), 1e-9)
}

func TestBallsHaveARandomColor(t *testing.T) {
	game := newTestGame()

	assert.NoError(t, game.CreateRandomBalls(5))

	for _, ball := range game.GetBalls() {
		assert.Regexp(t, "^#[0-9a-f]{6}$", ball.Color)
	}
}

func TestStepCountsTicks(t *testing.T) {
	game := newTestGame()

	game.Step(1, 0.05)
	game.Step(2, 0.05)

	assert.Equal(t, 2, game.GetTicknum())
}
