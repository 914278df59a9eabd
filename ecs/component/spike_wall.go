package component

// SpikeWall is the kinematic hazard that chases the player. StartX is the
// x it returns to when a run ends.
type SpikeWall struct {
	StartX float64
	Speed  float64
	Count  int
}

var SpikeWallComponent = NewComponent[SpikeWall]()
