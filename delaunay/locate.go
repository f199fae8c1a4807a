package delaunay

import (
	"github.com/katalvlaran/trisphere/mesh"
	"github.com/katalvlaran/trisphere/sphere"
)

// locate classifies p against the current configuration and returns a face
// and sub-index sufficient to seed the insertion routines: for LocateVertex
// and LocateTooClose the face holds the matched vertex at the returned
// index; for LocateEdge and LocateFace the face is the containing face of a
// 2-dimensional triangulation or the carrying cycle face in dimension 1.
// The caller must have checked the on-sphere precondition.
func (t *Triangulation) locate(p sphere.Point, hint mesh.Face) (LocateType, mesh.Face, int) {
	switch t.m.Dimension() {
	case -2:
		return LocateOutsideAffineHull, mesh.NilFace, 0
	case -1, 0:
		return t.locateSmall(p)
	case 1:
		return t.locate1D(p)
	}

	return t.locate2D(p, hint)
}

// locateSmall handles the configurations of at most two vertices, where the
// only possible outcomes are a coincidence with an existing vertex or an
// affine-hull extension.
func (t *Triangulation) locateSmall(p sphere.Point) (LocateType, mesh.Face, int) {
	for _, v := range t.m.Vertices() {
		if sphere.Equal(t.pts[v], p) {
			return LocateVertex, t.m.VertexFace(v), 0
		}
		if t.tooClose(t.pts[v], p) {
			return LocateTooClose, t.m.VertexFace(v), 0
		}
	}

	return LocateOutsideAffineHull, mesh.NilFace, 0
}

// locate1D walks the cocircular cycle. Solid faces carry the minor arc
// between their two vertices; a query on none of them falls on the
// wrap-around arc, carried by the ghost face.
func (t *Triangulation) locate1D(p sphere.Point) (LocateType, mesh.Face, int) {
	for _, v := range t.m.Vertices() {
		if sphere.Equal(t.pts[v], p) {
			f := t.m.VertexFace(v)
			i, _ := t.m.FaceHasVertex(f, v)
			return LocateVertex, f, i
		}
		if t.tooClose(t.pts[v], p) {
			f := t.m.VertexFace(v)
			i, _ := t.m.FaceHasVertex(f, v)
			return LocateTooClose, f, i
		}
	}

	ghost := mesh.NilFace
	for _, f := range t.m.Faces() {
		if t.m.IsGhost(f) {
			ghost = f
			continue
		}
		if t.sph.CollinearBetween(t.FacePoint(f, 0), t.FacePoint(f, 1), p) {
			return LocateEdge, f, 2
		}
	}
	if ghost != mesh.NilFace {
		return LocateOutsideConvexHull, ghost, 2
	}

	// No arc claims p; a fully covered circle has no ghost face, so p must
	// be numerically on a shared endpoint. Any face works as a seed.
	return LocateEdge, t.m.Faces()[0], 2
}

// locate2D marches from the hint toward p, crossing the edge that separates
// the current face from the query: for a solid face the edge whose
// orientation test is negative, for a ghost face (stored orientation
// reversed) the edge whose test is positive. The march is capped; a cap hit
// means a degenerate neighborhood let it cycle, and an exhaustive scan
// finishes the job.
func (t *Triangulation) locate2D(p sphere.Point, hint mesh.Face) (LocateType, mesh.Face, int) {
	f := hint
	if !t.m.HasFace(f) {
		f = t.m.Faces()[0]
	}

	prev := mesh.NilFace
	for step := 0; step < 3*t.m.NumFaces()+10; step++ {
		ghost := t.m.IsGhost(f)
		next := mesh.NilFace
		for i := 0; i < 3; i++ {
			fn := t.m.FaceNeighbor(f, i)
			if fn == prev {
				continue
			}
			o := t.edgeOrientation(f, i, p)
			if (!ghost && o == sphere.Negative) || (ghost && o == sphere.Positive) {
				next = fn
				break
			}
		}
		if next == mesh.NilFace {
			return t.classify2D(p, f)
		}
		prev, f = f, next
	}

	for _, g := range t.m.Faces() {
		if t.contains2D(p, g) {
			return t.classify2D(p, g)
		}
	}

	return t.classify2D(p, f)
}

// edgeOrientation tests p against edge i of f, oriented the way the face
// stores it.
func (t *Triangulation) edgeOrientation(f mesh.Face, i int, p sphere.Point) sphere.Sign {
	a := t.FacePoint(f, mesh.CCW(i))
	b := t.FacePoint(f, mesh.CW(i))

	return t.sph.OrientationOnSphere(a, b, p)
}

// contains2D reports whether f carries p: all edge tests non-negative for a
// solid face, all non-positive for a ghost face.
func (t *Triangulation) contains2D(p sphere.Point, f mesh.Face) bool {
	ghost := t.m.IsGhost(f)
	for i := 0; i < 3; i++ {
		o := t.edgeOrientation(f, i, p)
		if (!ghost && o == sphere.Negative) || (ghost && o == sphere.Positive) {
			return false
		}
	}

	return true
}

// classify2D refines the terminal face of the march into the final locate
// answer: a coincident or too-close vertex of the face, an edge the query
// sits on, or the face interior.
func (t *Triangulation) classify2D(p sphere.Point, f mesh.Face) (LocateType, mesh.Face, int) {
	for i := 0; i < 3; i++ {
		if sphere.Equal(t.FacePoint(f, i), p) {
			return LocateVertex, f, i
		}
	}
	for i := 0; i < 3; i++ {
		if t.tooClose(t.FacePoint(f, i), p) {
			return LocateTooClose, f, i
		}
	}

	for i := 0; i < 3; i++ {
		if t.edgeOrientation(f, i, p) == sphere.Zero {
			return LocateEdge, f, i
		}
	}

	return LocateFace, f, 0
}
