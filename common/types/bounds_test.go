package types

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ballarena/ballarena/common/utils/vector"
)

func TestBoundsContains(t *testing.T) {
	b := MakeBounds(0, 40, 0, 30)

	assert.True(t, b.Contains(vector.MakeVector2(20, 15)))
	assert.True(t, b.Contains(vector.MakeVector2(0, 0)))
	assert.True(t, b.Contains(vector.MakeVector2(40, 30)))

	assert.False(t, b.Contains(vector.MakeVector2(-0.1, 15)))
	assert.False(t, b.Contains(vector.MakeVector2(20, 30.1)))
}

func TestBoundsClamp(t *testing.T) {
	b := MakeBounds(0, 40, 0, 30)

	examples := []struct {
		Name     string
		In       vector.Vector2
		Out      vector.Vector2
		ClampedX bool
		ClampedY bool
	}{
		{
			Name: "Should leave an inside point untouched",
			In:   vector.MakeVector2(20, 15),
			Out:  vector.MakeVector2(20, 15),
		},
		{
			Name:     "Should clamp x to the east wall",
			In:       vector.MakeVector2(45, 15),
			Out:      vector.MakeVector2(40, 15),
			ClampedX: true,
		},
		{
			Name:     "Should clamp y to the north wall",
			In:       vector.MakeVector2(20, -3),
			Out:      vector.MakeVector2(20, 0),
			ClampedY: true,
		},
		{
			Name:     "Should clamp both axes in a corner",
			In:       vector.MakeVector2(-5, 31),
			Out:      vector.MakeVector2(0, 30),
			ClampedX: true,
			ClampedY: true,
		},
	}

	for _, example := range examples {
		t.Run(example.Name, func(t *testing.T) {
			res, clampedX, clampedY := b.Clamp(example.In)

			assert.True(t, res.Equals(example.Out))
			assert.Equal(t, example.ClampedX, clampedX)
			assert.Equal(t, example.ClampedY, clampedY)
		})
	}
}
