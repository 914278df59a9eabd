package entity

import "github.com/milk9111/rampball/ecs"

// build creates an entity and lets fill attach its components. When fill
// fails the entity is destroyed together with any children it gained, so a
// failed builder leaves nothing behind.
func build(w *ecs.World, fill func(e ecs.Entity) error) (ecs.Entity, error) {
	e := ecs.CreateEntity(w)
	if err := fill(e); err != nil {
		ecs.DestroyRecursive(w, e)
		return 0, err
	}
	return e, nil
}
