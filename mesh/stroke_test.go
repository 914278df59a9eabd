package mesh

import (
	"math"
	"math/rand/v2"
	"testing"

	"github.com/google/go-cmp/cmp"
)

var rampPoints = []Point{Pt(0, 0), Pt(200, 50), Pt(600, -100), Pt(1200, 100)}

func TestSmoothQuads(t *testing.T) {
	tests := []struct {
		name string
		in   []Point
		out  []QuadBez
	}{
		{"empty", nil, nil},
		{"single", []Point{Pt(1, 1)}, nil},
		{"line", []Point{Pt(0, 0), Pt(10, 0)}, []QuadBez{{Pt(0, 0), Pt(0, 0), Pt(10, 0)}}},
		{"ramp", rampPoints, []QuadBez{
			{Pt(0, 0), Pt(0, 0), Pt(200, 50)},
			{Pt(200, 50), Pt(400, 100), Pt(600, -100)},
			{Pt(600, -100), Pt(800, -300), Pt(1200, 100)},
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SmoothQuads(tt.in)
			if diff := cmp.Diff(tt.out, got); diff != "" {
				t.Fatalf("SmoothQuads mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestSmoothQuadsTangentContinuity(t *testing.T) {
	quads := SmoothQuads(rampPoints)
	for i := 0; i+1 < len(quads); i++ {
		end := quads[i].Tangent(1)
		start := quads[i+1].Tangent(0)
		if math.Abs(end.Cross(start)) > 1e-9 || end.Dot(start) <= 0 {
			t.Fatalf("join %d: tangent %v does not continue as %v", i, end, start)
		}
	}
}

func TestSubdivisionsBoundDeviation(t *testing.T) {
	const tol = 0.01
	for i, q := range SmoothQuads(rampPoints) {
		n := q.Subdivisions(tol)
		for j := 0; j < n; j++ {
			t0 := float64(j) / float64(n)
			t1 := float64(j+1) / float64(n)
			chordMid := q.Eval(t0).Midpoint(q.Eval(t1))
			curveMid := q.Eval((t0 + t1) / 2)
			if d := chordMid.Distance(curveMid); d > tol+1e-9 {
				t.Fatalf("quad %d step %d: deviation %g exceeds tolerance", i, j, d)
			}
		}
	}
}

func TestSubdivisionsCap(t *testing.T) {
	tests := []struct {
		name string
		q    QuadBez
		tol  float64
		want int
	}{
		{"straight", QuadBez{Pt(0, 0), Pt(5, 0), Pt(10, 0)}, 0.01, 1},
		{"zero_tolerance", QuadBez{Pt(0, 0), Pt(5, 50), Pt(10, 0)}, 0, 1},
		// |P0 - 2P1 + P2| = 100 needs ceil(sqrt(100 / 0.04)) = 50 steps.
		{"bend", QuadBez{Pt(0, 0), Pt(5, 50), Pt(10, 0)}, 0.01, 50},
		{"capped", QuadBez{Pt(0, 0), Pt(0, 1e7), Pt(0, 0)}, 0.01, maxSubdivisions},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.q.Subdivisions(tt.tol); got != tt.want {
				t.Fatalf("Subdivisions = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestTessellateDegenerate(t *testing.T) {
	tests := []struct {
		name string
		in   []Point
	}{
		{"nil", nil},
		{"one_point", []Point{Pt(3, 4)}},
		{"coincident", []Point{Pt(3, 4), Pt(3, 4)}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := Tessellate(tt.in, DefaultStrokeOptions)
			if !m.IsEmpty() || m.VertexCount() != 0 || m.TriangleCount() != 0 {
				t.Fatalf("expected empty mesh, got %d vertices %d triangles", m.VertexCount(), m.TriangleCount())
			}
		})
	}
}

func TestTessellateRamp(t *testing.T) {
	m := Tessellate(rampPoints, DefaultStrokeOptions)
	if m.TriangleCount() == 0 {
		t.Fatalf("expected triangles for ramp")
	}
	checkMesh(t, m, rampPoints, DefaultStrokeOptions)

	first := m.Vertices[0].Midpoint(m.Vertices[1])
	if first.Distance(rampPoints[0]) > 1e-9 {
		t.Fatalf("ribbon should start at the first control point, starts at %v", first)
	}
	last := m.Vertices[len(m.Vertices)-2].Midpoint(m.Vertices[len(m.Vertices)-1])
	if last.Distance(rampPoints[len(rampPoints)-1]) > 1e-9 {
		t.Fatalf("ribbon should end at the last control point, ends at %v", last)
	}
}

func TestTessellateRandomChains(t *testing.T) {
	rng := rand.New(rand.NewPCG(7, 11))
	opts := DefaultStrokeOptions.WithTolerance(0.5)
	for i := 0; i < 25; i++ {
		n := 2 + rng.IntN(5)
		pts := make([]Point, n)
		x := 0.0
		for j := range pts {
			pts[j] = Pt(x, rng.Float64()*400-200)
			x += 50 + rng.Float64()*400
		}
		m := Tessellate(pts, opts)
		if m.TriangleCount() == 0 {
			t.Fatalf("chain %d (%v): no triangles", i, pts)
		}
		checkMesh(t, m, pts, opts)
	}
}

func TestStrokeWidth(t *testing.T) {
	opts := DefaultStrokeOptions.WithWidth(24)
	m := Tessellate([]Point{Pt(0, 0), Pt(100, 0)}, opts)
	for i := 0; i+1 < len(m.Vertices); i += 2 {
		if d := m.Vertices[i].Distance(m.Vertices[i+1]); math.Abs(d-24) > 1e-9 {
			t.Fatalf("vertex pair %d is %g apart, want 24", i/2, d)
		}
	}
}

// checkMesh verifies index bounds, winding and that every vertex is within
// half the stroke width of the curve.
func checkMesh(t *testing.T, m StrokeMesh, pts []Point, opts StrokeOptions) {
	t.Helper()
	if len(m.Indices)%3 != 0 {
		t.Fatalf("index count %d is not a multiple of 3", len(m.Indices))
	}
	for _, idx := range m.Indices {
		if int(idx) >= len(m.Vertices) {
			t.Fatalf("index %d out of range (%d vertices)", idx, len(m.Vertices))
		}
	}
	for i := 0; i < m.TriangleCount(); i++ {
		tri := m.Triangle(i)
		if area := tri[1].Sub(tri[0]).Cross(tri[2].Sub(tri[0])); area <= 0 {
			t.Fatalf("triangle %d winds clockwise (area %g)", i, area)
		}
	}
	quads := SmoothQuads(pts)
	half := opts.Width / 2
	for i, v := range m.Vertices {
		if d := distanceToChain(quads, v); d > half+1e-6 {
			t.Fatalf("vertex %d %v is %g from the curve, more than %g", i, v, d, half)
		}
	}
}

func distanceToChain(quads []QuadBez, p Point) float64 {
	best := math.Inf(1)
	for _, q := range quads {
		const coarse = 256
		bestT := 0.0
		bestD := math.Inf(1)
		for i := 0; i <= coarse; i++ {
			tt := float64(i) / coarse
			if d := q.Eval(tt).Distance(p); d < bestD {
				bestD, bestT = d, tt
			}
		}
		lo := math.Max(0, bestT-1.0/coarse)
		hi := math.Min(1, bestT+1.0/coarse)
		for range 60 {
			m1 := lo + (hi-lo)/3
			m2 := hi - (hi-lo)/3
			if q.Eval(m1).Distance(p) < q.Eval(m2).Distance(p) {
				hi = m2
			} else {
				lo = m1
			}
		}
		bestD = math.Min(bestD, q.Eval((lo+hi)/2).Distance(p))
		best = math.Min(best, bestD)
	}
	return best
}
