package collision

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/milk9111/rampball/mesh"
)

func TestFromStrokeMeshEmpty(t *testing.T) {
	tests := []struct {
		name string
		in   mesh.StrokeMesh
	}{
		{"zero", mesh.StrokeMesh{}},
		{"vertices_only", mesh.StrokeMesh{Vertices: []mesh.Point{mesh.Pt(0, 0), mesh.Pt(1, 0)}}},
		{"tessellated_single_point", mesh.Tessellate([]mesh.Point{mesh.Pt(1, 1)}, mesh.DefaultStrokeOptions)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if c := FromStrokeMesh(tt.in); c != nil {
				t.Fatalf("expected no collider, got %d triangles", c.TriangleCount())
			}
		})
	}
}

func TestFromStrokeMeshMatchesTriangles(t *testing.T) {
	tests := []struct {
		name   string
		points []mesh.Point
	}{
		{"ramp", []mesh.Point{mesh.Pt(0, 0), mesh.Pt(200, 50), mesh.Pt(600, -100), mesh.Pt(1200, 100)}},
		{"line", []mesh.Point{mesh.Pt(-50, 0), mesh.Pt(50, 0)}},
		{"hill", []mesh.Point{mesh.Pt(0, 0), mesh.Pt(100, 100), mesh.Pt(200, 0)}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := mesh.Tessellate(tt.points, mesh.DefaultStrokeOptions)
			c := FromStrokeMesh(m)
			if c == nil {
				t.Fatalf("expected a collider")
			}
			if c.TriangleCount() != m.TriangleCount() {
				t.Fatalf("collider has %d triangles, mesh has %d", c.TriangleCount(), m.TriangleCount())
			}
			for i := 0; i < m.TriangleCount(); i++ {
				if diff := cmp.Diff(m.Triangle(i), c.Triangle(i)); diff != "" {
					t.Fatalf("triangle %d mismatch (-mesh +collider):\n%s", i, diff)
				}
			}
		})
	}
}

func TestColliderIsDetachedFromMesh(t *testing.T) {
	m := mesh.StrokeMesh{
		Vertices: []mesh.Point{mesh.Pt(0, 0), mesh.Pt(10, 0), mesh.Pt(0, 10)},
		Indices:  []uint32{0, 1, 2},
	}
	c := FromStrokeMesh(m)
	m.Vertices[1] = mesh.Pt(99, 99)
	if got := c.Triangle(0)[1]; got != mesh.Pt(10, 0) {
		t.Fatalf("collider changed with its source mesh: %v", got)
	}
}

func TestAABB(t *testing.T) {
	m := mesh.StrokeMesh{
		Vertices: []mesh.Point{mesh.Pt(0, -5), mesh.Pt(10, -5), mesh.Pt(10, 5), mesh.Pt(500, 500)},
		Indices:  []uint32{0, 1, 2},
	}
	c := FromStrokeMesh(m)

	want := Rect{MinX: 0, MinY: -5, MaxX: 10, MaxY: 5}
	if diff := cmp.Diff(want, c.BoundingBox()); diff != "" {
		t.Fatalf("bounding box mismatch (-want +got):\n%s", diff)
	}
	if got := c.BoundingBox().Center(); got != mesh.Pt(5, 0) {
		t.Fatalf("bounding box center = %v, want (5, 0)", got)
	}
	world := c.AABB(100, -20)
	if world.MaxX != 110 || world.MinY != -25 {
		t.Fatalf("unexpected world AABB %+v", world)
	}
	var nilMesh *TriMesh
	if nilMesh.TriangleCount() != 0 || nilMesh.BoundingBox() != (Rect{}) {
		t.Fatalf("nil collider should report nothing")
	}
}
