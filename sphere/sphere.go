package sphere

import (
	"github.com/cockroachdb/errors"
	"github.com/golang/geo/r3"
)

// Point is a point associated with a sphere, stored as its 3D position.
// The zero value is the origin; whether a Point actually lies on a given
// sphere is checked by Sphere.HasOn, not enforced by construction.
type Point struct {
	r3.Vector
}

// MakePoint builds a Point from raw coordinates.
func MakePoint(x, y, z float64) Point {
	return Point{r3.Vector{X: x, Y: y, Z: z}}
}

// PointFromVector builds a Point from an r3.Vector.
func PointFromVector(v r3.Vector) Point {
	return Point{v}
}

// Segment is a straight 3D segment between two dual points. It is the
// Euclidean form of a Voronoi edge; see Arc for the on-sphere form.
type Segment struct {
	Source, Target r3.Vector
}

// Arc is the geodesic arc between two points on the sphere, the on-sphere
// form of a Voronoi edge.
type Arc struct {
	Source, Target Point
}

// Sphere fixes the center and radius that all predicates and constructions
// are relative to.
type Sphere struct {
	Center r3.Vector
	Radius float64
}

// NewSphere returns a sphere with the given center and radius.
// Panics if radius is not strictly positive: that is a programming error,
// not a runtime condition.
func NewSphere(center r3.Vector, radius float64) Sphere {
	if !(radius > 0) {
		panic(errors.AssertionFailedf("sphere: radius must be positive, got %v", radius))
	}

	return Sphere{Center: center, Radius: radius}
}

// UnitSphere returns the unit sphere centered at the origin.
func UnitSphere() Sphere {
	return Sphere{Radius: 1}
}

// HasOn reports whether p lies on the sphere up to the relative tolerance
// relEps: |dist²(p, center) - radius²| ≤ relEps·radius².
func (s Sphere) HasOn(p Point, relEps float64) bool {
	r2 := s.Radius * s.Radius
	d2 := p.Sub(s.Center).Norm2()
	diff := d2 - r2
	if diff < 0 {
		diff = -diff
	}

	return diff <= relEps*r2
}

// CompareXYZ orders points lexicographically by (X, Y, Z) and returns
// -1, 0 or +1. float64 comparison is exact, so this is a strict total order
// over all representable points; it is the tie-breaking order used by the
// symbolic perturbation of SideOfOrientedCircle.
func CompareXYZ(p, q Point) int {
	switch {
	case p.X < q.X:
		return -1
	case p.X > q.X:
		return +1
	case p.Y < q.Y:
		return -1
	case p.Y > q.Y:
		return +1
	case p.Z < q.Z:
		return -1
	case p.Z > q.Z:
		return +1
	}

	return 0
}

// Equal reports coordinate-wise equality of two points.
func Equal(p, q Point) bool {
	return CompareXYZ(p, q) == 0
}
