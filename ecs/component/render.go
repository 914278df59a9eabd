package component

import (
	"image/color"

	"github.com/milk9111/rampball/mesh"
)

// MeshRender draws a triangle mesh in the entity's local space.
type MeshRender struct {
	Mesh  mesh.StrokeMesh
	Color color.Color
}

var MeshRenderComponent = NewComponent[MeshRender]()

// CircleRender draws a filled disc, or a ring when Inner > 0.
type CircleRender struct {
	Radius float64
	Inner  float64
	Color  color.Color
}

var CircleRenderComponent = NewComponent[CircleRender]()

// TriangleRender draws a single triangle in local space.
type TriangleRender struct {
	Points [3]mesh.Point
	Color  color.Color
}

var TriangleRenderComponent = NewComponent[TriangleRender]()
