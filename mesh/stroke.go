// Package mesh turns platform control points into triangulated stroke
// geometry. The same mesh is drawn on screen and fed to the collision package,
// so what the player sees is what the ball rolls on.
package mesh

// StrokeOptions describes the ribbon produced by Tessellate.
type StrokeOptions struct {
	// Width of the ribbon.
	Width float64
	// Tolerance is the maximum distance between the curve and the polyline
	// the ribbon follows.
	Tolerance float64
}

var DefaultStrokeOptions = StrokeOptions{
	Width:     10,
	Tolerance: 0.01,
}

func (o StrokeOptions) WithWidth(width float64) StrokeOptions { o.Width = width; return o }
func (o StrokeOptions) WithTolerance(tolerance float64) StrokeOptions {
	o.Tolerance = tolerance
	return o
}

// StrokeMesh is a triangle list: Indices holds three vertex indices per
// triangle. Every triangle winds counter-clockwise with y pointing up.
type StrokeMesh struct {
	Vertices []Point
	Indices  []uint32
}

// VertexCount returns the number of vertices.
func (m StrokeMesh) VertexCount() int {
	return len(m.Vertices)
}

// TriangleCount returns the number of triangles.
func (m StrokeMesh) TriangleCount() int {
	return len(m.Indices) / 3
}

// IsEmpty reports whether the mesh has no geometry.
func (m StrokeMesh) IsEmpty() bool {
	return len(m.Vertices) == 0 || len(m.Indices) < 3
}

// Triangle returns the corners of triangle i.
func (m StrokeMesh) Triangle(i int) [3]Point {
	return [3]Point{
		m.Vertices[m.Indices[3*i]],
		m.Vertices[m.Indices[3*i+1]],
		m.Vertices[m.Indices[3*i+2]],
	}
}

type strokeSample struct {
	at     Point
	normal Vec2
}

// Tessellate builds a constant-width ribbon along the smooth quadratic chain
// through points (see SmoothQuads). Fewer than two points yield an empty mesh.
//
// Each flattened curve sample contributes a left and a right vertex, offset
// by half the width along the curve normal, and each pair of consecutive
// samples contributes two triangles. Ends are cut flat.
func Tessellate(points []Point, opts StrokeOptions) StrokeMesh {
	if len(points) < 2 {
		return StrokeMesh{}
	}
	if opts.Width <= 0 {
		opts.Width = DefaultStrokeOptions.Width
	}
	if opts.Tolerance <= 0 {
		opts.Tolerance = DefaultStrokeOptions.Tolerance
	}

	samples := flatten(SmoothQuads(points), opts.Tolerance)
	if len(samples) < 2 {
		return StrokeMesh{}
	}

	half := opts.Width / 2
	m := StrokeMesh{
		Vertices: make([]Point, 0, 2*len(samples)),
		Indices:  make([]uint32, 0, 6*(len(samples)-1)),
	}
	for _, s := range samples {
		off := s.normal.Mul(half)
		m.Vertices = append(m.Vertices, s.at.Translate(off), s.at.Translate(off.Mul(-1)))
	}
	for i := 0; i+1 < len(samples); i++ {
		l0, r0 := uint32(2*i), uint32(2*i+1)
		l1, r1 := uint32(2*i+2), uint32(2*i+3)
		m.appendTriangle(l0, r0, l1)
		m.appendTriangle(r0, r1, l1)
	}
	if len(m.Indices) == 0 {
		return StrokeMesh{}
	}
	return m
}

// appendTriangle adds a, b, c wound counter-clockwise. Degenerate triangles
// are dropped.
func (m *StrokeMesh) appendTriangle(a, b, c uint32) {
	pa, pb, pc := m.Vertices[a], m.Vertices[b], m.Vertices[c]
	area := pb.Sub(pa).Cross(pc.Sub(pa))
	switch {
	case area > 1e-12:
		m.Indices = append(m.Indices, a, b, c)
	case area < -1e-12:
		m.Indices = append(m.Indices, a, c, b)
	}
}

func flatten(quads []QuadBez, tolerance float64) []strokeSample {
	var samples []strokeSample
	var last Vec2
	for i, q := range quads {
		n := q.Subdivisions(tolerance)
		start := 1
		if i == 0 {
			start = 0
		}
		for j := start; j <= n; j++ {
			t := float64(j) / float64(n)
			at := q.Eval(t)
			tan := q.Tangent(t)
			if tan == (Vec2{}) {
				tan = last
			}
			if tan == (Vec2{}) {
				continue
			}
			last = tan
			if k := len(samples); k > 0 && samples[k-1].at.Distance(at) < 1e-9 {
				continue
			}
			samples = append(samples, strokeSample{at: at, normal: tan.Perp()})
		}
	}
	return samples
}
