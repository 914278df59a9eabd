package mesh

import "math"

// maxSubdivisions bounds the number of line segments a single quadratic is
// flattened into. It wins over the tolerance: once |P0 - 2P1 + P2| exceeds
// 4·tolerance·maxSubdivisions² (about 671k at the default 0.01) the polyline
// may stray further than the tolerance from the curve.
const maxSubdivisions = 1 << 12

// QuadBez is a quadratic Bézier segment.
type QuadBez struct {
	P0 Point
	P1 Point
	P2 Point
}

func (q QuadBez) Eval(t float64) Point {
	mt := 1 - t
	return Point{
		X: mt*mt*q.P0.X + 2*mt*t*q.P1.X + t*t*q.P2.X,
		Y: mt*mt*q.P0.Y + 2*mt*t*q.P1.Y + t*t*q.P2.Y,
	}
}

// Deriv returns the first derivative at t.
func (q QuadBez) Deriv(t float64) Vec2 {
	return q.P1.Sub(q.P0).Mul(2 * (1 - t)).Add(q.P2.Sub(q.P1).Mul(2 * t))
}

// Tangent returns the unit direction of travel at t. Where the derivative
// vanishes (a control point coincident with an end point) the chord direction
// is used instead. The zero vector is returned for a segment collapsed to a
// single point.
func (q QuadBez) Tangent(t float64) Vec2 {
	d := q.Deriv(t)
	if d.Hypot() > 1e-9 {
		return d.Normalize()
	}
	return q.P2.Sub(q.P0).Normalize()
}

// Subdivisions returns the number of equal parameter steps needed so that the
// polyline through the step points stays within tolerance of the curve.
//
// For a quadratic the chord error over a parameter step h is bounded by
// |P0 - 2P1 + P2|·h²/4. The count never exceeds maxSubdivisions.
func (q QuadBez) Subdivisions(tolerance float64) int {
	dd := Vec2{
		X: q.P0.X - 2*q.P1.X + q.P2.X,
		Y: q.P0.Y - 2*q.P1.Y + q.P2.Y,
	}.Hypot()
	if tolerance <= 0 || dd == 0 {
		return 1
	}
	n := int(math.Ceil(math.Sqrt(dd / (4 * tolerance))))
	return min(max(n, 1), maxSubdivisions)
}

// SmoothQuads converts an ordered list of points into a chain of quadratic
// segments, one per point after the first. Each segment's control point is the
// reflection of the previous segment's control point about the segment start,
// so the chain is tangent-continuous at every join. The first segment has no
// predecessor and its control point sits on its start, making it straight.
func SmoothQuads(points []Point) []QuadBez {
	if len(points) < 2 {
		return nil
	}
	quads := make([]QuadBez, 0, len(points)-1)
	cur := points[0]
	ctrl := cur
	for _, to := range points[1:] {
		next := cur.Translate(cur.Sub(ctrl))
		quads = append(quads, QuadBez{P0: cur, P1: next, P2: to})
		ctrl, cur = next, to
	}
	return quads
}
