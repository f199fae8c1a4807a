package delaunay

import (
	"github.com/cockroachdb/errors"
	"github.com/golang/geo/r3"

	"github.com/katalvlaran/trisphere/mesh"
	"github.com/katalvlaran/trisphere/sphere"
)

// Dual returns the Voronoi vertex of face f: the circumcenter of its three
// points, as a 3D point. Requires dimension 2.
func (t *Triangulation) Dual(f mesh.Face) r3.Vector {
	t.requireDual(f)

	return sphere.Circumcenter(t.FacePoint(f, 0), t.FacePoint(f, 1), t.FacePoint(f, 2))
}

// DualOnSphere returns the Voronoi vertex of face f projected onto the
// sphere, on the side the face's orientation selects.
func (t *Triangulation) DualOnSphere(f mesh.Face) sphere.Point {
	t.requireDual(f)

	return t.sph.CircumcenterOnSphere(t.FacePoint(f, 0), t.FacePoint(f, 1), t.FacePoint(f, 2))
}

// DualSegment returns the Voronoi edge dual to e as a straight 3D segment
// between the circumcenters of the two faces sharing e.
func (t *Triangulation) DualSegment(e mesh.Edge) sphere.Segment {
	return sphere.MakeSegment(t.Dual(e.Face), t.Dual(t.m.FaceNeighbor(e.Face, e.Index)))
}

// DualArc returns the Voronoi edge dual to e as a geodesic arc on the
// sphere between the on-sphere circumcenters of the two faces sharing e.
func (t *Triangulation) DualArc(e mesh.Edge) sphere.Arc {
	return sphere.MakeArc(t.DualOnSphere(e.Face), t.DualOnSphere(t.m.FaceNeighbor(e.Face, e.Index)))
}

func (t *Triangulation) requireDual(f mesh.Face) {
	if t.m.Dimension() != 2 {
		panic(errors.AssertionFailedf("delaunay: dual in dimension %d", t.m.Dimension()))
	}
	if !t.m.HasFace(f) {
		panic(errors.AssertionFailedf("delaunay: dual of dead face %d", f))
	}
}
