package component

type PlayerTag struct{}

var PlayerTagComponent = NewComponent[PlayerTag]()

type CameraTag struct{}

var CameraTagComponent = NewComponent[CameraTag]()

// Hazard marks an entity that kills the player on contact, together with
// every descendant of it.
type Hazard struct{}

var HazardComponent = NewComponent[Hazard]()
