package sphere

import (
	"math"

	"github.com/golang/geo/r3"
)

// Sign is the outcome of an orientation predicate.
type Sign int

// The three predicate outcomes. Zero is reported only when the underlying
// expression is exactly zero, certified by the rational fallback.
const (
	Negative Sign = -1
	Zero     Sign = 0
	Positive Sign = +1
)

// String implements fmt.Stringer.
func (s Sign) String() string {
	switch s {
	case Negative:
		return "negative"
	case Positive:
		return "positive"
	default:
		return "zero"
	}
}

// Opposite returns the sign with the opposite value.
func (s Sign) Opposite() Sign { return -s }

// detFilterEps bounds the relative rounding of the filtered determinant
// evaluation. Results inside the band are re-evaluated exactly.
const detFilterEps = 1e-10

// Orientation returns the sign of det(p1-p0, p2-p0, p3-p0): the side of the
// oriented plane through p0, p1, p2 that p3 lies on. For points on a sphere
// this single predicate realizes the in-circle test (SideOfOrientedCircle)
// and, with the center as first argument, the on-sphere orientation test.
func Orientation(p0, p1, p2, p3 Point) Sign {
	u := p1.Sub(p0.Vector)
	v := p2.Sub(p0.Vector)
	w := p3.Sub(p0.Vector)

	det := u.Cross(v).Dot(w)

	// Conservative filter: near-degenerate results go to exact arithmetic.
	mag := maxNorm(p0.Vector, p1.Vector, p2.Vector, p3.Vector) + 1
	bound := detFilterEps * mag * mag * mag
	if det > bound {
		return Positive
	}
	if det < -bound {
		return Negative
	}

	return exactOrientation(p0, p1, p2, p3)
}

// OrientationOnSphere returns the orientation of the triple (p, q, r) as seen
// from outside the sphere: Positive means counterclockwise, which for a face
// of a spherical triangulation means "solid" rather than ghost. It is the
// 4-point Orientation with the sphere center as the first point.
func (s Sphere) OrientationOnSphere(p, q, r Point) Sign {
	return Orientation(PointFromVector(s.Center), p, q, r)
}

// SideOfOrientedCircle reports the position of p relative to the circle
// through p0, p1, p2, oriented by that order: Positive means p is on the
// positive side of the plane through the three points, i.e. inside the
// circumscribed cap of a positively oriented face. Exact cocircularity
// yields Zero; callers that need a deterministic non-zero answer apply the
// symbolic perturbation on top of this predicate.
func SideOfOrientedCircle(p0, p1, p2, p Point) Sign {
	return Orientation(p0, p1, p2, p)
}

// CollinearBetween reports whether q lies strictly inside the minor arc
// between a and b, on the circle through cocircular points, as seen from the
// sphere center. It classifies the "wrap-around" faces of a 1-dimensional
// (cocircular) triangulation: such a face spans the gap of the cycle, and
// its neighbor's far point falls inside the face's own arc.
func (s Sphere) CollinearBetween(a, b, q Point) bool {
	u := a.Sub(s.Center)
	v := b.Sub(s.Center)
	w := q.Sub(s.Center)

	n := u.Cross(v)
	s1 := filteredCrossDotSign(u.Cross(w), n, s.Center, a, b, q, wedgeFirst)
	if s1 != Positive {
		return false
	}
	s2 := filteredCrossDotSign(w.Cross(v), n, s.Center, a, b, q, wedgeSecond)

	return s2 == Positive
}

// wedge selects which of the two CollinearBetween signs a filtered
// evaluation stands for, so the exact fallback recomputes the right one.
type wedge int

const (
	wedgeFirst wedge = iota
	wedgeSecond
)

func filteredCrossDotSign(lhs, rhs r3.Vector, center r3.Vector, a, b, q Point, which wedge) Sign {
	val := lhs.Dot(rhs)
	scale := lhs.Norm() * rhs.Norm()
	if scale > 0 {
		if val > detFilterEps*scale {
			return Positive
		}
		if val < -detFilterEps*scale {
			return Negative
		}
	}

	s1, s2 := exactWedgeSigns(center, a, b, q)
	if which == wedgeFirst {
		return s1
	}

	return s2
}

func maxNorm(vs ...r3.Vector) float64 {
	var m float64
	for _, v := range vs {
		m = math.Max(m, math.Max(math.Abs(v.X), math.Max(math.Abs(v.Y), math.Abs(v.Z))))
	}

	return m
}
