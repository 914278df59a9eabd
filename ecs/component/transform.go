package component

// Transform is a position in world units with y pointing up. For an entity
// with a Parent it is relative to the parent's transform.
type Transform struct {
	X        float64
	Y        float64
	Rotation float64
}

var TransformComponent = NewComponent[Transform]()
