package delaunay

import (
	"github.com/cockroachdb/errors"

	"github.com/katalvlaran/trisphere/mesh"
	"github.com/katalvlaran/trisphere/sphere"
)

// conflictRegion discovers the maximal connected set of faces in conflict
// with p, seeded at fh, which must itself be in conflict. It returns the
// conflict faces and the boundary edges separating them from the rest, each
// boundary edge stored as (outside face, index facing the region) so that
// the edges come out in the traversal order StarHole expects.
//
// The walk is an explicit-stack depth-first expansion: edges are pushed in
// reverse of their visitation order, counterclockwise child before
// clockwise, so popping reproduces the order a recursive walk would visit
// them in. The in-conflict marking is a set owned by this call; nothing is
// left marked when it returns.
func (t *Triangulation) conflictRegion(p sphere.Point, fh mesh.Face) (faces []mesh.Face, boundary []mesh.Edge) {
	if t.m.Dimension() != 2 {
		panic(errors.AssertionFailedf("delaunay: conflict walk in dimension %d", t.m.Dimension()))
	}
	if !t.testConflict(p, fh) {
		panic(errors.AssertionFailedf("delaunay: conflict walk seeded at a face not in conflict"))
	}

	marked := make(map[mesh.Face]struct{}, 8)
	marked[fh] = struct{}{}
	faces = append(faces, fh)

	stack := []mesh.Edge{{Face: fh, Index: 2}, {Face: fh, Index: 1}, {Face: fh, Index: 0}}
	for len(stack) > 0 {
		e := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		fn := t.m.FaceNeighbor(e.Face, e.Index)
		if _, ok := marked[fn]; ok {
			continue
		}

		j := t.m.FaceIndexOfNeighbor(fn, e.Face)
		if !t.testConflict(p, fn) {
			boundary = append(boundary, mesh.Edge{Face: fn, Index: j})
			continue
		}

		marked[fn] = struct{}{}
		faces = append(faces, fn)
		stack = append(stack,
			mesh.Edge{Face: fn, Index: mesh.CW(j)},
			mesh.Edge{Face: fn, Index: mesh.CCW(j)})
	}

	return faces, boundary
}

// conflictSeed returns a face in conflict with p, preferring the located
// face. A located ghost face near a degenerate boundary can fail the
// conflict test even though p is insertable; the scan then finds a seed
// among all faces.
func (t *Triangulation) conflictSeed(p sphere.Point, loc mesh.Face) mesh.Face {
	if t.m.HasFace(loc) && t.testConflict(p, loc) {
		return loc
	}
	for _, f := range t.m.Faces() {
		if t.testConflict(p, f) {
			return f
		}
	}

	panic(errors.AssertionFailedf("delaunay: no face in conflict with an on-sphere non-vertex point"))
}
