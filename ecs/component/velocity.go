package component

// Velocity is a linear velocity in world units per second. For kinematic
// bodies it is pushed into the physics body every tick.
type Velocity struct {
	X float64
	Y float64
}

var VelocityComponent = NewComponent[Velocity]()
