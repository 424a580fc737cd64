package ballworld

const (
	robotMass         = 10.0
	robotSpeed        = 1.5  // hard cap on velocity magnitude, in m/s
	robotAcceleration = 0.25 // magnitude of the force produced by a movement intent
	robotReach        = 5.0  // max distance at which a ball can be grabbed
	robotRadius       = 0.5

	ballMass   = 1.0
	ballRadius = 0.25

	// The carrying bag is list-shaped but the game only ever allows one ball in it
	carrierCapacity = 1
)
