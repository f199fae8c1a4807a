package delaunay

import (
	"github.com/cockroachdb/errors"

	"github.com/katalvlaran/trisphere/mesh"
	"github.com/katalvlaran/trisphere/sphere"
)

// updateGhostFaces reclassifies ghost flags after a structural change.
//
// In dimension 1 every cycle face is retested: a face (a, b) is ghost iff
// the far point of its successor falls strictly inside the minor arc from a
// to b, which marks the wrap-around segment of the cycle.
//
// In dimension 2 a face is ghost iff its stored vertex order is not
// positively oriented on the sphere. With first set (the dimension just
// reached 2) every face is retested; otherwise only the faces incident to v
// are, since nothing else changed orientation.
func (t *Triangulation) updateGhostFaces(v mesh.Vertex, first bool) {
	if t.m.NumVertices() < 3 {
		return
	}

	if t.m.Dimension() == 1 {
		for _, f := range t.m.Faces() {
			fn := t.m.FaceNeighbor(f, 0)
			q := t.FacePoint(fn, 1)
			t.m.SetGhost(f, t.sph.CollinearBetween(t.FacePoint(f, 0), t.FacePoint(f, 1), q))
		}

		return
	}

	if first {
		for _, f := range t.m.Faces() {
			t.m.SetGhost(f, t.faceOrientation(f) != sphere.Positive)
		}

		return
	}

	if v == mesh.NilVertex {
		panic(errors.AssertionFailedf("delaunay: local ghost update without a vertex"))
	}
	for _, f := range t.m.IncidentFaces(v) {
		t.m.SetGhost(f, t.faceOrientation(f) != sphere.Positive)
	}
}
