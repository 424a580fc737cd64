package types

import (
	"github.com/ballarena/ballarena/common/utils/vector"
)

type VizMessage struct {
	GameID  string
	Tick    int
	Bounds  Bounds
	Objects []VizMessageObject
}

type VizMessageObject struct {
	Id       string
	Type     string
	Position vector.Vector2
	Velocity vector.Vector2
	Radius   float64
	Color    string
	Carried  bool
}
