package ballworld

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ballarena/ballarena/common/utils/vector"
)

func TestActionControllerMovement(t *testing.T) {
	examples := []struct {
		Name      string
		Mutations func(actions *ActionController)
		Movement  vector.Vector2
	}{
		{
			Name:      "Should start with no movement intent",
			Mutations: func(actions *ActionController) {},
			Movement:  vector.MakeNullVector2(),
		},
		{
			Name: "Should keep the latest movement intent",

			Mutations: func(actions *ActionController) {
				actions.SetMovement(1, 0)
				actions.SetMovement(0, -1)
			},
			Movement: vector.MakeVector2(0, -1),
		},
		{
			Name: "Should zero the axis whose sign matches the stop",

			Mutations: func(actions *ActionController) {
				actions.SetMovement(1, -1)
				actions.StopMovement(1, 0)
			},
			Movement: vector.MakeVector2(0, -1),
		},
		{
			Name: "Should ignore a stop opposing the current intent",

			Mutations: func(actions *ActionController) {
				actions.SetMovement(1, 0)
				actions.StopMovement(-1, 0)
			},
			Movement: vector.MakeVector2(1, 0),
		},
		{
			Name: "Should clear everything on reset",

			Mutations: func(actions *ActionController) {
				actions.SetMovement(1, 1)
				actions.Reset()
			},
			Movement: vector.MakeNullVector2(),
		},
	}

	for _, example := range examples {
		t.Run(example.Name, func(t *testing.T) {
			actions := NewActionController()
			example.Mutations(actions)

			assert.True(t, actions.GetMovement().Equals(example.Movement))
		})
	}
}

func TestActionControllerStopsAreConsumed(t *testing.T) {
	actions := NewActionController()

	actions.StopMovement(1, 0)
	actions.StopMovement(0, 1)

	stops := actions.ConsumeStops()
	assert.Len(t, stops, 2)
	assert.True(t, stops[0].Equals(vector.MakeVector2(1, 0)))
	assert.True(t, stops[1].Equals(vector.MakeVector2(0, 1)))

	assert.Len(t, actions.ConsumeStops(), 0)
}

func TestActionControllerPickupIsEdgeTriggered(t *testing.T) {
	actions := NewActionController()

	assert.False(t, actions.ConsumePickupOrDrop())

	// Many requests before a step still yield exactly one action
	actions.RequestPickupOrDrop()
	actions.RequestPickupOrDrop()
	actions.RequestPickupOrDrop()

	assert.True(t, actions.ConsumePickupOrDrop())
	assert.False(t, actions.ConsumePickupOrDrop())
}
