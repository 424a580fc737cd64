package ballworld

func (game BallworldGame) CastSteering(data interface{}) *Steering {
	return data.(*Steering)
}

// Steering holds the movement parameters of a player-driven entity.
type Steering struct {
	speed        float64 // velocity magnitude cap, in m/s
	acceleration float64 // force magnitude produced by a movement intent
}

func NewSteering(speed float64, acceleration float64) *Steering {
	return &Steering{
		speed:        speed,
		acceleration: acceleration,
	}
}

func (s Steering) GetSpeed() float64 {
	return s.speed
}

func (s *Steering) SetSpeed(speed float64) *Steering {
	s.speed = speed
	return s
}

func (s Steering) GetAcceleration() float64 {
	return s.acceleration
}

func (s *Steering) SetAcceleration(acceleration float64) *Steering {
	s.acceleration = acceleration
	return s
}
