package component

type Player struct {
	Radius float64
}

var PlayerComponent = NewComponent[Player]()

// CollidingEntities lists the entities whose colliders touched this entity
// during the last physics step.
type CollidingEntities struct {
	Entities []uint64
}

// Contains reports whether e is in the set.
func (c *CollidingEntities) Contains(e uint64) bool {
	if c == nil {
		return false
	}
	for _, other := range c.Entities {
		if other == e {
			return true
		}
	}
	return false
}

var CollidingEntitiesComponent = NewComponent[CollidingEntities]()
