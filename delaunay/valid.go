package delaunay

import (
	"go.uber.org/zap"

	"github.com/katalvlaran/trisphere/mesh"
	"github.com/katalvlaran/trisphere/sphere"
)

// IsValid runs the invariant battery and reports whether everything holds.
// Failures are logged through the configured logger. Level 0 checks the
// structure, the per-face and per-vertex invariants, the coplanarity of a
// 1-dimensional triangulation and the orientation and face-count identities
// of a 2-dimensional one; level 1 adds the local Delaunay check across
// every internal edge.
func (t *Triangulation) IsValid(level int) bool {
	if err := t.m.CheckIntegrity(); err != nil {
		t.log.Error("invalid mesh structure", zap.Error(err))
		return false
	}

	ok := true
	for _, f := range t.m.Faces() {
		ok = t.isValidFace(f, level) && ok
	}
	for _, v := range t.m.Vertices() {
		ok = t.isValidVertex(v) && ok
	}

	switch t.m.Dimension() {
	case 1:
		if !t.IsPlane() {
			t.log.Error("1-dimensional triangulation is not cocircular")
			ok = false
		}
	case 2:
		for _, f := range t.m.Faces() {
			if t.faceOrientation(f) == sphere.Negative && !t.m.IsGhost(f) {
				t.log.Error("negatively oriented face not flagged as ghost", zap.Int("face", int(f)))
				ok = false
			}
		}
		if t.m.NumFaces() != 2*t.m.NumVertices()-4 {
			t.log.Error("face count violates the Euler identity",
				zap.Int("faces", t.m.NumFaces()),
				zap.Int("vertices", t.m.NumVertices()))
			ok = false
		}
	}

	t.log.Debug("validity check",
		zap.Int("dimension", t.m.Dimension()),
		zap.Int("vertices", t.m.NumVertices()),
		zap.Int("faces", t.m.NumFaces()),
		zap.Int("ghosts", t.NumberOfGhostFaces()),
		zap.Bool("ok", ok))

	return ok
}

// IsPlane reports whether all vertices are exactly cocircular: every
// sliding 4-tuple, in iteration order, lies on a common circle. Vacuously
// true below four vertices.
func (t *Triangulation) IsPlane() bool {
	vs := t.m.Vertices()
	if len(vs) <= 3 {
		return true
	}

	for i := 0; i+3 < len(vs); i++ {
		s := sphere.SideOfOrientedCircle(
			t.pts[vs[i]], t.pts[vs[i+1]], t.pts[vs[i+2]], t.pts[vs[i+3]])
		if s != sphere.Zero {
			return false
		}
	}

	return true
}

// isValidFace checks a single face: its own vertices must be exactly on its
// circumscribed circle, and at level 1 the far point of every solid
// neighbor must not lie strictly inside it. The Delaunay check is exact:
// a far point exactly on the circle is a legal degeneracy whichever way
// the perturbation would break it.
func (t *Triangulation) isValidFace(f mesh.Face, level int) bool {
	if t.m.Dimension() != 2 {
		return true
	}

	ok := true
	for i := 0; i < 3; i++ {
		if t.sideOfOrientedCircle(f, t.FacePoint(f, i), false) != sphere.Zero {
			t.log.Error("face vertex off its own circumcircle",
				zap.Int("face", int(f)), zap.Int("index", i))
			ok = false
		}
	}

	if level >= 1 && !t.m.IsGhost(f) {
		for i := 0; i < 3; i++ {
			fn := t.m.FaceNeighbor(f, i)
			if t.m.IsGhost(fn) {
				continue
			}
			q := t.FacePoint(fn, t.m.FaceIndexOfNeighbor(fn, f))
			if t.sideOfOrientedCircle(f, q, false) == sphere.Positive {
				t.log.Error("neighbor far point inside circumcircle",
					zap.Int("face", int(f)), zap.Int("neighbor", int(fn)))
				ok = false
			}
		}
	}

	return ok
}

// isValidVertex checks that the stored incident face of v contains v.
func (t *Triangulation) isValidVertex(v mesh.Vertex) bool {
	if _, ok := t.m.FaceHasVertex(t.m.VertexFace(v), v); !ok {
		t.log.Error("vertex references a face that does not contain it", zap.Int("vertex", int(v)))
		return false
	}

	return true
}
