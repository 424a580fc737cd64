package ballworld

import (
	"sync"

	"github.com/ballarena/ballarena/common/utils/vector"
)

// ActionController buffers the player's intents between two world steps, so
// that the input layer (typically a websocket handler on its own goroutine)
// never touches the world directly.
//
// The movement intent is level-triggered: it always reflects the latest input
// and is re-applied on every step until changed. The pickup/drop request is
// edge-triggered: however many times it is set before a step, it yields
// exactly one action, then resets.
type ActionController struct {
	lock *sync.RWMutex

	movement     vector.Vector2
	pendingStops []vector.Vector2
	pickupOrDrop bool
}

func NewActionController() *ActionController {
	return &ActionController{
		lock:         &sync.RWMutex{},
		movement:     vector.MakeNullVector2(),
		pendingStops: make([]vector.Vector2, 0),
	}
}

// SetMovement overwrites the movement intent with the latest input direction.
func (actions *ActionController) SetMovement(dx float64, dy float64) {
	actions.lock.Lock()
	actions.movement = vector.MakeVector2(dx, dy)
	actions.lock.Unlock()
}

// StopMovement zeroes the intent component along the given direction's axis
// when its sign matches the current intent, and queues the stop so the next
// step can also halt the robot along that axis. Stopping an axis the robot is
// not moving along is a no-op.
func (actions *ActionController) StopMovement(dx float64, dy float64) {
	actions.lock.Lock()

	direction := vector.MakeVector2(dx, dy)
	actions.movement = zeroMatchingAxis(actions.movement, direction)
	actions.pendingStops = append(actions.pendingStops, direction)

	actions.lock.Unlock()
}

func (actions *ActionController) GetMovement() vector.Vector2 {
	actions.lock.RLock()
	defer actions.lock.RUnlock()

	return actions.movement
}

// ConsumeStops returns and clears the stops queued since the previous step.
func (actions *ActionController) ConsumeStops() []vector.Vector2 {
	actions.lock.Lock()
	defer actions.lock.Unlock()

	res := actions.pendingStops
	actions.pendingStops = make([]vector.Vector2, 0)
	return res
}

func (actions *ActionController) RequestPickupOrDrop() {
	actions.lock.Lock()
	actions.pickupOrDrop = true
	actions.lock.Unlock()
}

// ConsumePickupOrDrop returns the flag and clears it; N requests before one
// step produce exactly one pickup-or-drop action.
func (actions *ActionController) ConsumePickupOrDrop() bool {
	actions.lock.Lock()
	defer actions.lock.Unlock()

	res := actions.pickupOrDrop
	actions.pickupOrDrop = false
	return res
}

func (actions *ActionController) Reset() {
	actions.lock.Lock()

	actions.movement = vector.MakeNullVector2()
	actions.pendingStops = make([]vector.Vector2, 0)
	actions.pickupOrDrop = false

	actions.lock.Unlock()
}

// zeroMatchingAxis cancels the components of v whose sign matches the
// direction; releasing "right" while moving left must not stop the robot.
func zeroMatchingAxis(v vector.Vector2, direction vector.Vector2) vector.Vector2 {
	if direction.GetX() > 0 && v.GetX() > 0 || direction.GetX() < 0 && v.GetX() < 0 {
		v = v.SetX(0)
	}

	if direction.GetY() > 0 && v.GetY() > 0 || direction.GetY() < 0 && v.GetY() < 0 {
		v = v.SetY(0)
	}

	return v
}
