package sphere

import (
	"github.com/cockroachdb/errors"
	"github.com/golang/geo/r3"
)

// Circumcenter constructs the center of the circle through a, b, c as a 3D
// point. Panics when the three points are collinear: a face of a valid
// triangulation never is, so this signals a broken invariant upstream.
func Circumcenter(a, b, c Point) r3.Vector {
	u := b.Sub(a.Vector)
	v := c.Sub(a.Vector)
	n := u.Cross(v)

	denom := 2 * n.Norm2()
	if denom == 0 {
		panic(errors.AssertionFailedf("sphere: circumcenter of collinear points %v, %v, %v", a, b, c))
	}

	// a + (|u|²·(v×n) + |v|²·(n×u)) / (2|n|²)
	offset := v.Cross(n).Mul(u.Norm2()).Add(n.Cross(u).Mul(v.Norm2())).Mul(1 / denom)

	return a.Add(offset)
}

// CircumcenterOnSphere constructs the point of the sphere lying on the axis
// through the circumcenter of (a, b, c), on the side selected by the triple's
// orientation. For a positively oriented (solid) face this is the Voronoi
// vertex dual to the face.
func (s Sphere) CircumcenterOnSphere(a, b, c Point) Point {
	n := b.Sub(a.Vector).Cross(c.Sub(a.Vector))
	if n.Norm2() == 0 {
		panic(errors.AssertionFailedf("sphere: on-sphere circumcenter of collinear points %v, %v, %v", a, b, c))
	}

	return PointFromVector(s.Center.Add(n.Normalize().Mul(s.Radius)))
}

// MakeSegment builds the Euclidean segment between two dual points.
func MakeSegment(source, target r3.Vector) Segment {
	return Segment{Source: source, Target: target}
}

// MakeArc builds the geodesic arc between two on-sphere points.
func MakeArc(source, target Point) Arc {
	return Arc{Source: source, Target: target}
}
