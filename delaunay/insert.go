package delaunay

import (
	"math/rand/v2"
	"sort"

	"github.com/cockroachdb/errors"
	"github.com/golang/geo/s2"

	"github.com/katalvlaran/trisphere/mesh"
	"github.com/katalvlaran/trisphere/sphere"
)

// Insert adds p to the triangulation and returns its vertex. A point not on
// the sphere is rejected with ErrNotOnSphere and no mutation. A point
// coinciding with an existing vertex, exactly or within the separation
// tolerance, returns that vertex unchanged. hint seeds point location;
// mesh.NilFace means no hint.
func (t *Triangulation) Insert(p sphere.Point, hint mesh.Face) (mesh.Vertex, error) {
	if !t.sph.HasOn(p, t.opts.OnSphereEps) {
		return mesh.NilVertex, ErrNotOnSphere
	}

	lt, loc, li := t.locate(p, hint)
	switch lt {
	case LocateVertex, LocateTooClose:
		return t.m.FaceVertex(loc, li), nil
	}

	return t.insertLocated(p, loc), nil
}

// insertLocated dispatches an insertable point to the routine of the
// current dimension.
func (t *Triangulation) insertLocated(p sphere.Point, loc mesh.Face) mesh.Vertex {
	switch t.m.Dimension() {
	case -2:
		return t.insertFirst(p)
	case -1:
		return t.insertSecond(p)
	case 0:
		return t.insertThird(p)
	case 1:
		if t.testDimUp(p) {
			return t.insertOutsideAffineHull(p)
		}
		return t.insertCocircular(p, loc)
	case 2:
		return t.insert2D(p, loc)
	}

	panic(errors.AssertionFailedf("delaunay: insertion in dimension %d", t.m.Dimension()))
}

func (t *Triangulation) insertFirst(p sphere.Point) mesh.Vertex {
	v := t.m.InsertFirstVertex()
	t.setPoint(v, p)

	return v
}

func (t *Triangulation) insertSecond(p sphere.Point) mesh.Vertex {
	v := t.m.InsertSecondVertex()
	t.setPoint(v, p)

	return v
}

// insertThird raises the two-vertex configuration to the cocircular cycle.
// Any three points on the sphere share a circle, so the third insertion
// always lands in dimension 1; the only choice is between the two mirror
// cycles, made so that consecutive cycle triples are never negatively
// oriented.
func (t *Triangulation) insertThird(p sphere.Point) mesh.Vertex {
	v := t.m.Vertices()[0]
	u := t.m.FaceVertex(t.m.FaceNeighbor(t.m.VertexFace(v), 0), 0)
	pv, pu := t.pts[v], t.pts[u]

	var nv mesh.Vertex
	if t.sph.CollinearBetween(pv, pu, p) || t.sph.OrientationOnSphere(pu, pv, p) == sphere.Positive {
		nv = t.m.InsertDimUp(v, false)
	} else {
		nv = t.m.InsertDimUp(v, true)
	}
	t.setPoint(nv, p)

	t.updateGhostFaces(nv, false)

	return nv
}

// insertCocircular splits the cycle face carrying p into two, keeping the
// triangulation in dimension 1.
func (t *Triangulation) insertCocircular(p sphere.Point, loc mesh.Face) mesh.Vertex {
	v0 := t.m.FaceVertex(loc, 0)
	v1 := t.m.FaceVertex(loc, 1)

	v := t.m.CreateVertex()
	t.setPoint(v, p)

	f1 := t.m.CreateFace(v0, v, mesh.NilVertex)
	f2 := t.m.CreateFace(v, v1, mesh.NilVertex)
	t.m.SetVertexFace(v, f1)
	t.m.SetVertexFace(v0, f1)
	t.m.SetVertexFace(v1, f2)

	t.m.SetAdjacency(f1, 0, f2, 1)
	t.m.SetAdjacency(f1, 1, t.m.FaceNeighbor(loc, 1), 0)
	t.m.SetAdjacency(f2, 0, t.m.FaceNeighbor(loc, 0), 1)

	t.m.DeleteFace(loc)

	t.updateGhostFaces(v, false)

	return v
}

// insertOutsideAffineHull raises the cocircular cycle to a full
// triangulation of the sphere. The cycle edges are fanned to the new vertex
// on one side and to an anchor vertex on the other; the anchor is the
// lexicographically smallest vertex, and the anchor-side diagonals are then
// flipped into the configuration the symbolic perturbation selects, so the
// result depends only on the point set. The fan around the new vertex
// conforms to the positive orientation iff the new point lies on the
// positive side of the circle carrying the cycle.
func (t *Triangulation) insertOutsideAffineHull(p sphere.Point) mesh.Vertex {
	f := t.m.Faces()[0]
	fn := t.m.FaceNeighbor(f, 0)
	p0 := t.FacePoint(f, 0)
	p1 := t.FacePoint(f, 1)
	p2 := t.FacePoint(fn, 1)

	conform := sphere.SideOfOrientedCircle(p0, p1, p2, p) == sphere.Positive

	w := t.m.Vertices()[0]
	for _, vi := range t.m.Vertices() {
		if sphere.CompareXYZ(t.pts[vi], t.pts[w]) < 0 {
			w = vi
		}
	}

	v := t.m.InsertDimUp(w, conform)
	t.setPoint(v, p)

	t.updateGhostFaces(v, true)
	t.legalizeDiagonals()

	return v
}

// legalizeDiagonals flips every edge whose neighboring far point is in
// conflict under the perturbed predicate, until none remains. The cycle
// vertices of a fresh dimension raise are exactly cocircular, so the exact
// predicate is indifferent to the anchor fan's diagonals; flipping by the
// perturbation rule instead settles them to the unique configuration that
// later conflict-driven insertions already respect. Edges whose far point
// is in strictly general position test legal and are never flipped.
func (t *Triangulation) legalizeDiagonals() {
	stack := t.m.Edges()
	for len(stack) > 0 {
		e := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		f, i := e.Face, e.Index
		g := t.m.FaceNeighbor(f, i)
		j := t.m.FaceIndexOfNeighbor(g, f)
		if t.sideOfOrientedCircle(f, t.FacePoint(g, j), true) == sphere.Negative {
			continue
		}

		t.m.Flip(f, i)
		t.m.SetGhost(f, t.faceOrientation(f) != sphere.Positive)
		t.m.SetGhost(g, t.faceOrientation(g) != sphere.Positive)

		stack = append(stack,
			mesh.Edge{Face: f, Index: i},
			mesh.Edge{Face: f, Index: mesh.CW(i)},
			mesh.Edge{Face: g, Index: j},
			mesh.Edge{Face: g, Index: mesh.CW(j)})
	}
}

// insert2D is the general case: discover the conflict region, fan its
// boundary to the new vertex, delete the old faces, and reclassify the
// ghost flags around the new vertex. The conflict region can reach ghost
// faces even when the located face is solid, so the reclassification never
// skips.
func (t *Triangulation) insert2D(p sphere.Point, loc mesh.Face) mesh.Vertex {
	faces, boundary := t.conflictRegion(p, t.conflictSeed(p, loc))

	v := t.m.StarHole(boundary)
	t.setPoint(v, p)
	t.m.DeleteFaces(faces)

	t.updateGhostFaces(v, false)

	return v
}

// InsertPoints inserts a batch of points and returns the net vertex-count
// increase; rejected and duplicate points contribute zero. The batch is
// copied, shuffled, and then ordered along the S2 Hilbert curve so that
// consecutive insertions stay close on the sphere and each location starts
// from the warm hint of the previous one.
func (t *Triangulation) InsertPoints(pts []sphere.Point) int {
	before := t.m.NumVertices()

	work := make([]sphere.Point, len(pts))
	copy(work, pts)

	rng := rand.New(rand.NewPCG(t.opts.Seed, t.opts.Seed))
	rng.Shuffle(len(work), func(i, j int) { work[i], work[j] = work[j], work[i] })

	cells := make([]s2.CellID, len(work))
	for i, p := range work {
		cells[i] = s2.CellFromPoint(s2.Point{Vector: p.Sub(t.sph.Center).Normalize()}).ID()
	}
	sort.Sort(&byCell{pts: work, cells: cells})

	hint := mesh.NilFace
	for _, p := range work {
		v, err := t.Insert(p, hint)
		if err != nil {
			continue
		}
		hint = t.m.VertexFace(v)
	}

	return t.m.NumVertices() - before
}

// byCell sorts a point slice by precomputed S2 cell, keeping the two slices
// aligned.
type byCell struct {
	pts   []sphere.Point
	cells []s2.CellID
}

func (b *byCell) Len() int           { return len(b.pts) }
func (b *byCell) Less(i, j int) bool { return b.cells[i] < b.cells[j] }
func (b *byCell) Swap(i, j int) {
	b.pts[i], b.pts[j] = b.pts[j], b.pts[i]
	b.cells[i], b.cells[j] = b.cells[j], b.cells[i]
}
