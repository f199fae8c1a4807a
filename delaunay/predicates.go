package delaunay

import (
	"sort"

	"github.com/cockroachdb/errors"

	"github.com/katalvlaran/trisphere/mesh"
	"github.com/katalvlaran/trisphere/sphere"
)

// faceOrientation is the on-sphere orientation of the stored vertex order of
// f: Positive for a solid face of a 2-dimensional triangulation.
func (t *Triangulation) faceOrientation(f mesh.Face) sphere.Sign {
	return t.sph.OrientationOnSphere(t.FacePoint(f, 0), t.FacePoint(f, 1), t.FacePoint(f, 2))
}

// sideOfOrientedCircle positions p relative to the circle through the points
// of f, in stored order. With perturb, an exactly cocircular p is resolved
// by the symbolic perturbation and the result is never Zero.
func (t *Triangulation) sideOfOrientedCircle(f mesh.Face, p sphere.Point, perturb bool) sphere.Sign {
	return t.perturbedSide(t.FacePoint(f, 0), t.FacePoint(f, 1), t.FacePoint(f, 2), p, perturb)
}

// perturbedSide evaluates the in-circle predicate, breaking exact ties by
// substituting points into the orientation test in decreasing lexicographic
// order. Under the perturbation the smallest point of a cocircular set is
// the one in conflict with the others, so the outcome is a strict total
// rule independent of insertion order.
func (t *Triangulation) perturbedSide(p0, p1, p2, p sphere.Point, perturb bool) sphere.Sign {
	os := sphere.SideOfOrientedCircle(p0, p1, p2, p)
	if os != sphere.Zero || !perturb {
		return os
	}

	pts := [4]sphere.Point{p0, p1, p2, p}
	order := []int{0, 1, 2, 3}
	sort.Slice(order, func(a, b int) bool {
		return sphere.CompareXYZ(pts[order[a]], pts[order[b]]) < 0
	})

	for k := 3; k > 0; k-- {
		var o sphere.Sign
		switch order[k] {
		case 3:
			// p0, p1, p2 are not collinear and positively oriented, so the
			// largest point being the query puts it outside.
			return sphere.Negative
		case 2:
			o = t.sph.OrientationOnSphere(p0, p1, p)
		case 1:
			o = t.sph.OrientationOnSphere(p0, p, p2)
		case 0:
			o = t.sph.OrientationOnSphere(p, p1, p2)
		}
		if o != sphere.Zero {
			return o
		}
	}

	// Every substitution degenerated too: the face itself spans a great
	// circle. Such faces are ghosts and never in conflict.
	return sphere.Negative
}

// testConflict reports whether p lies inside or on the circumscribed circle
// of fh, with ties broken by the symbolic perturbation.
func (t *Triangulation) testConflict(p sphere.Point, fh mesh.Face) bool {
	return t.sideOfOrientedCircle(fh, p, true) != sphere.Negative
}

// testDimUp reports whether p leaves the circle carrying the current
// 1-dimensional triangulation, so that inserting it raises the dimension.
func (t *Triangulation) testDimUp(p sphere.Point) bool {
	if t.m.Dimension() != 1 {
		panic(errors.AssertionFailedf("delaunay: testDimUp in dimension %d", t.m.Dimension()))
	}

	f := t.m.Faces()[0]
	p1 := t.FacePoint(f, 0)
	p2 := t.FacePoint(f, 1)
	p3 := t.FacePoint(t.m.FaceNeighbor(f, 0), 1)

	return sphere.SideOfOrientedCircle(p1, p2, p3, p) != sphere.Zero
}

// testDimDown reports whether removing v leaves all remaining vertices
// exactly cocircular, so that the dimension drops to 1. Every sliding
// 4-tuple of the remaining vertices, in iteration order, must be cocircular.
// Iteration order is as good as the cyclic order around v here: overlapping
// cocircular 4-tuples chain every point onto one common circle, and that
// conclusion does not depend on how the tuples are drawn.
func (t *Triangulation) testDimDown(v mesh.Vertex) bool {
	if t.m.Dimension() != 2 || t.m.NumVertices() < 4 {
		panic(errors.AssertionFailedf("delaunay: testDimDown in dimension %d with %d vertices",
			t.m.Dimension(), t.m.NumVertices()))
	}
	if t.m.NumVertices() == 4 {
		return true
	}

	rest := make([]sphere.Point, 0, t.m.NumVertices()-1)
	for _, u := range t.m.Vertices() {
		if u != v {
			rest = append(rest, t.pts[u])
		}
	}
	for i := 0; i+3 < len(rest); i++ {
		if sphere.SideOfOrientedCircle(rest[i], rest[i+1], rest[i+2], rest[i+3]) != sphere.Zero {
			return false
		}
	}

	return true
}
