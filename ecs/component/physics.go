package component

import (
	"github.com/jakecoffman/cp"
	"github.com/milk9111/rampball/collision"
)

type BodyKind uint8

const (
	BodyDynamic BodyKind = iota
	BodyKinematic
	BodyStatic
)

// PhysicsBody stores Chipmunk2D runtime data and collider configuration.
// Exactly one of Radius (circle), Width/Height (box) or Mesh (triangle soup)
// describes the collider; a platform whose mesh was empty has none.
type PhysicsBody struct {
	Body       *cp.Body
	Shapes     []*cp.Shape
	Kind       BodyKind
	Radius     float64
	Width      float64
	Height     float64
	Mesh       *collision.TriMesh
	Mass       float64
	Friction   float64
	Elasticity float64
}

// HasCollider reports whether the body has any collision geometry.
func (p *PhysicsBody) HasCollider() bool {
	if p == nil {
		return false
	}
	return p.Radius > 0 || (p.Width > 0 && p.Height > 0) || p.Mesh.TriangleCount() > 0
}

var PhysicsBodyComponent = NewComponent[PhysicsBody]()
