package ecs

import "github.com/milk9111/rampball/ecs/component"

// SetParent attaches child under parent so that DestroyRecursive on the
// parent also removes child.
func SetParent(w *World, child, parent Entity) error {
	if !IsAlive(w, child) || !IsAlive(w, parent) {
		return component.ErrEntityNotAlive
	}
	if err := Add(w, child, component.ParentComponent.Kind(), &component.Parent{Entity: uint64(parent)}); err != nil {
		return err
	}
	children, ok := Get(w, parent, component.ChildrenComponent.Kind())
	if !ok {
		children = &component.Children{}
	}
	children.Entities = append(children.Entities, uint64(child))
	return Add(w, parent, component.ChildrenComponent.Kind(), children)
}

// DestroyRecursive destroys e and all of its descendants, children first. It
// returns the number of entities destroyed.
func DestroyRecursive(w *World, e Entity) int {
	if !IsAlive(w, e) {
		return 0
	}
	n := 0
	if children, ok := Get(w, e, component.ChildrenComponent.Kind()); ok {
		for _, c := range append([]uint64(nil), children.Entities...) {
			n += DestroyRecursive(w, Entity(c))
		}
	}
	if DestroyEntity(w, e) {
		n++
	}
	return n
}

// Root walks up the parent chain and returns the top-most live ancestor of e,
// or e itself.
func Root(w *World, e Entity) Entity {
	for {
		p, ok := Get(w, e, component.ParentComponent.Kind())
		if !ok || !IsAlive(w, Entity(p.Entity)) {
			return e
		}
		e = Entity(p.Entity)
	}
}
