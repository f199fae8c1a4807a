package delaunay

import (
	"github.com/cockroachdb/errors"

	"github.com/katalvlaran/trisphere/mesh"
	"github.com/katalvlaran/trisphere/sphere"
)

// Remove deletes vertex v and retriangulates the hole it leaves. Removing a
// dead handle is a programmer error and panics.
func (t *Triangulation) Remove(v mesh.Vertex) {
	if !t.m.HasVertex(v) {
		panic(errors.AssertionFailedf("delaunay: remove of dead vertex %d", v))
	}

	switch {
	case t.m.NumVertices() <= 3:
		t.m.RemoveDimDown(v)
	case t.m.Dimension() == 2:
		t.remove2D(v)
	default:
		t.remove1D(v)
	}
}

// RemoveDegree3 removes a vertex of degree exactly 3 directly, merging its
// three faces into one and classifying the merged face.
func (t *Triangulation) RemoveDegree3(v mesh.Vertex) {
	if !t.m.HasVertex(v) {
		panic(errors.AssertionFailedf("delaunay: remove of dead vertex %d", v))
	}

	merged := t.m.RemoveDegree3(v)
	t.m.SetGhost(merged, t.faceOrientation(merged) != sphere.Positive)
}

func (t *Triangulation) remove1D(v mesh.Vertex) {
	t.m.Remove1D(v)
	t.updateGhostFaces(mesh.NilVertex, false)
}

func (t *Triangulation) remove2D(v mesh.Vertex) {
	if t.m.Dimension() != 2 {
		panic(errors.AssertionFailedf("delaunay: remove2D in dimension %d", t.m.Dimension()))
	}

	if t.testDimDown(v) {
		t.m.RemoveDimDown(v)
		// The cycle left behind classifies without a reference vertex.
		t.updateGhostFaces(mesh.NilVertex, false)

		return
	}

	hole := t.m.MakeHole(v)
	t.fillHoleRegular(hole)
}

// fillHoleRegular retriangulates the holes of a worklist, each a cyclic
// list of boundary edges stored as (outside face, index facing the hole).
//
// A 3-edge hole closes with a single face. A larger hole is cut along its
// first edge (v0, v1): among the far points of the remaining edges, the
// candidate v2 is the one no other candidate beats in the oriented-circle
// test through (v0, v1, candidate), so the new face (v0, v1, v2) is
// consistent with the Delaunay property of the boundary. If v2 belongs to
// the edge right after or right before the cut the hole shrinks in place;
// otherwise the new face splits it into two holes, both pushed back onto
// the worklist.
func (t *Triangulation) fillHoleRegular(first []mesh.Edge) {
	holes := [][]mesh.Edge{first}

	for len(holes) > 0 {
		hole := holes[len(holes)-1]
		holes = holes[:len(holes)-1]

		if len(hole) == 3 {
			newf := t.m.CreateFace(mesh.NilVertex, mesh.NilVertex, mesh.NilVertex)
			for j, e := range hole {
				t.m.SetAdjacency(newf, j, e.Face, e.Index)
				t.m.SetFaceVertex(newf, mesh.CCW(j), t.m.FaceVertex(e.Face, mesh.CW(e.Index)))
			}
			t.m.SetGhost(newf, t.faceOrientation(newf) != sphere.Positive)

			continue
		}

		ff, ii := hole[0].Face, hole[0].Index
		rest := hole[1:]
		v0 := t.m.FaceVertex(ff, mesh.CW(ii))
		v1 := t.m.FaceVertex(ff, mesh.CCW(ii))
		p0, p1 := t.pts[v0], t.pts[v1]

		v2, cut := t.holeCandidate(p0, p1, rest, true)
		if v2 == mesh.NilVertex {
			// Near-degenerate boundaries can leave no candidate on the
			// positive side of (v0, v1); retry without the filter.
			v2, cut = t.holeCandidate(p0, p1, rest, false)
		}

		newf := t.m.CreateFace(v0, v1, v2)
		t.m.SetAdjacency(newf, 2, ff, ii)
		t.m.SetGhost(newf, t.faceOrientation(newf) != sphere.Positive)

		// The hole stays single when v2 sits on the edge adjacent to the
		// cut at either end; otherwise it splits at the candidate.
		front := rest[0]
		if i, ok := t.m.FaceHasVertex(front.Face, v2); ok && i == mesh.CCW(front.Index) {
			t.m.SetAdjacency(newf, 0, front.Face, front.Index)
			next := make([]mesh.Edge, 0, len(rest))
			next = append(next, mesh.Edge{Face: newf, Index: 1})
			next = append(next, rest[1:]...)
			holes = append(holes, next)

			continue
		}

		back := rest[len(rest)-1]
		if i, ok := t.m.FaceHasVertex(back.Face, v2); ok && i == mesh.CW(back.Index) {
			t.m.SetAdjacency(newf, 1, back.Face, back.Index)
			next := make([]mesh.Edge, 0, len(rest))
			next = append(next, rest[:len(rest)-1]...)
			next = append(next, mesh.Edge{Face: newf, Index: 0})
			holes = append(holes, next)

			continue
		}

		newHole := make([]mesh.Edge, 0, cut+2)
		newHole = append(newHole, mesh.Edge{Face: newf, Index: 0})
		newHole = append(newHole, rest[:cut+1]...)

		remainder := make([]mesh.Edge, 0, len(rest)-cut)
		remainder = append(remainder, mesh.Edge{Face: newf, Index: 1})
		remainder = append(remainder, rest[cut+1:]...)

		holes = append(holes, remainder, newHole)
	}
}

// holeCandidate scans the far points of the boundary edges, excluding the
// last, for the third vertex of the next face over the chord (p0, p1). With
// filtered set, only points strictly on the positive side of (p0, p1) are
// considered. Returns the winner and its edge position, or NilVertex when
// the filter eliminated everything.
func (t *Triangulation) holeCandidate(p0, p1 sphere.Point, rest []mesh.Edge, filtered bool) (mesh.Vertex, int) {
	v2 := mesh.NilVertex
	var p2 sphere.Point
	cut := -1

	for i := 0; i < len(rest)-1; i++ {
		e := rest[i]
		vv := t.m.FaceVertex(e.Face, mesh.CCW(e.Index))
		p := t.pts[vv]

		if filtered && t.sph.OrientationOnSphere(p0, p1, p) != sphere.Positive {
			continue
		}
		if v2 == mesh.NilVertex || sphere.SideOfOrientedCircle(p0, p1, p2, p) == sphere.Positive {
			v2, p2, cut = vv, p, i
		}
	}

	return v2, cut
}
