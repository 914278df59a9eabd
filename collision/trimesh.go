// Package collision derives physics colliders from render meshes.
package collision

import (
	"math"
	"slices"

	"github.com/milk9111/rampball/mesh"
)

// Rect is an axis-aligned bounding box.
type Rect struct {
	MinX float64
	MinY float64
	MaxX float64
	MaxY float64
}

// Translate returns r moved by (dx, dy).
func (r Rect) Translate(dx, dy float64) Rect {
	return Rect{MinX: r.MinX + dx, MinY: r.MinY + dy, MaxX: r.MaxX + dx, MaxY: r.MaxY + dy}
}

// Center returns the midpoint of r.
func (r Rect) Center() mesh.Point {
	return mesh.Pt(r.MinX, r.MinY).Midpoint(mesh.Pt(r.MaxX, r.MaxY))
}

func (r Rect) Width() float64  { return r.MaxX - r.MinX }
func (r Rect) Height() float64 { return r.MaxY - r.MinY }

// TriMesh is an immutable triangle-soup collider in the owning entity's local
// space.
type TriMesh struct {
	vertices  []mesh.Point
	triangles [][3]uint32
	bounds    Rect
}

// FromStrokeMesh builds a collider with exactly the triangles of m. An empty
// mesh has no collider and nil is returned.
func FromStrokeMesh(m mesh.StrokeMesh) *TriMesh {
	if m.IsEmpty() || m.TriangleCount() == 0 {
		return nil
	}

	t := &TriMesh{
		vertices:  slices.Clone(m.Vertices),
		triangles: make([][3]uint32, 0, m.TriangleCount()),
	}
	for i := 0; i+2 < len(m.Indices); i += 3 {
		t.triangles = append(t.triangles, [3]uint32{m.Indices[i], m.Indices[i+1], m.Indices[i+2]})
	}

	t.bounds = Rect{
		MinX: math.Inf(1), MinY: math.Inf(1),
		MaxX: math.Inf(-1), MaxY: math.Inf(-1),
	}
	for _, tri := range t.triangles {
		for _, idx := range tri {
			v := t.vertices[idx]
			t.bounds.MinX = math.Min(t.bounds.MinX, v.X)
			t.bounds.MinY = math.Min(t.bounds.MinY, v.Y)
			t.bounds.MaxX = math.Max(t.bounds.MaxX, v.X)
			t.bounds.MaxY = math.Max(t.bounds.MaxY, v.Y)
		}
	}
	return t
}

func (t *TriMesh) TriangleCount() int {
	if t == nil {
		return 0
	}
	return len(t.triangles)
}

// Triangle returns the corners of triangle i in local space.
func (t *TriMesh) Triangle(i int) [3]mesh.Point {
	tri := t.triangles[i]
	return [3]mesh.Point{t.vertices[tri[0]], t.vertices[tri[1]], t.vertices[tri[2]]}
}

// BoundingBox returns the local-space bounds of every triangle.
func (t *TriMesh) BoundingBox() Rect {
	if t == nil {
		return Rect{}
	}
	return t.bounds
}

// AABB returns the world-space bounds of the collider placed at (x, y).
func (t *TriMesh) AABB(x, y float64) Rect {
	return t.BoundingBox().Translate(x, y)
}
