// Package component declares the data attached to entities. Each component
// type has one package-level handle, created with NewComponent, that the ecs
// package uses to find its storage.
package component

import (
	"errors"
	"sync/atomic"
)

var (
	ErrEntityNotAlive       = errors.New("ecs: entity not alive")
	ErrNilComponent         = errors.New("ecs: component is nil")
	ErrInvalidComponentKind = errors.New("ecs: invalid component kind")
)

// ComponentID numbers component types in registration order, starting at 1.
type ComponentID uint32

var lastComponentID atomic.Uint32

// ComponentKind is the typed key of one component storage. The zero value is
// not registered and is rejected by the world.
type ComponentKind[T any] struct {
	id ComponentID
}

func NewComponentKind[T any]() ComponentKind[T] {
	return ComponentKind[T]{id: ComponentID(lastComponentID.Add(1))}
}

func (k ComponentKind[T]) ID() ComponentID { return k.id }

// Valid reports whether k came from NewComponentKind.
func (k ComponentKind[T]) Valid() bool { return k.id != 0 }

// ComponentHandle is the package-level value a component type is known by,
// such as TransformComponent or PlatformComponent.
type ComponentHandle[T any] struct {
	kind ComponentKind[T]
}

// NewComponent registers a component type. Call it once per type, from a
// package-level var.
func NewComponent[T any]() ComponentHandle[T] {
	return ComponentHandle[T]{kind: NewComponentKind[T]()}
}

func (h ComponentHandle[T]) Kind() ComponentKind[T] { return h.kind }
