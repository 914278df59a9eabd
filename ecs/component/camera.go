package component

// Camera centres the view on (Transform.X, Transform.Y).
type Camera struct {
	Zoom float64
	// FixedY pins the camera height while it tracks the player's x.
	FixedY float64
}

var CameraComponent = NewComponent[Camera]()
