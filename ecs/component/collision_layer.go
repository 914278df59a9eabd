package component

// Collision categories.
const (
	LayerPlayer uint32 = 1 << iota
	LayerPlatform
	LayerHazard
)

// CollisionLayer selects which categories an entity's shapes belong to and
// which they collide with. Entities without one collide with everything.
type CollisionLayer struct {
	Category uint32
	Mask     uint32
}

var CollisionLayerComponent = NewComponent[CollisionLayer]()
