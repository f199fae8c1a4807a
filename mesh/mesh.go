package mesh

import (
	"github.com/cockroachdb/errors"
)

// Vertex is a stable handle into the vertex arena.
type Vertex int

// Face is a stable handle into the face arena.
type Face int

// Nil handles mark empty slots and "no result" returns.
const (
	NilVertex Vertex = -1
	NilFace   Face   = -1
)

// Edge identifies an edge as (face, index): the edge of Face opposite its
// vertex slot Index. Edges are transient values, not stored entities.
type Edge struct {
	Face  Face
	Index int
}

// CCW maps a face slot to the next slot counterclockwise.
func CCW(i int) int { return (i + 1) % 3 }

// CW maps a face slot to the next slot clockwise.
func CW(i int) int { return (i + 2) % 3 }

type vertexRec struct {
	face Face
	used bool
}

type faceRec struct {
	v     [3]Vertex
	n     [3]Face
	ghost bool
	used  bool
}

// Mesh owns the vertex and face arenas and the current dimension.
// It is a single mutable aggregate with no internal locking: callers must
// not interleave mutations with each other or with iteration.
type Mesh struct {
	verts     []vertexRec
	faces     []faceRec
	freeVerts []Vertex
	freeFaces []Face

	nv, nf int
	dim    int
}

// New returns an empty mesh (dimension -2).
func New() *Mesh {
	return &Mesh{dim: -2}
}

// Dimension returns the rank of the stored configuration, in {-2,…,2}.
func (m *Mesh) Dimension() int { return m.dim }

// NumVertices returns the number of live vertices.
func (m *Mesh) NumVertices() int { return m.nv }

// NumFaces returns the number of live faces.
func (m *Mesh) NumFaces() int { return m.nf }

// HasVertex reports whether v is a live handle.
func (m *Mesh) HasVertex(v Vertex) bool {
	return v >= 0 && int(v) < len(m.verts) && m.verts[v].used
}

// HasFace reports whether f is a live handle.
func (m *Mesh) HasFace(f Face) bool {
	return f >= 0 && int(f) < len(m.faces) && m.faces[f].used
}

func (m *Mesh) vr(v Vertex) *vertexRec {
	if !m.HasVertex(v) {
		panic(errors.AssertionFailedf("mesh: dead vertex handle %d", v))
	}

	return &m.verts[v]
}

func (m *Mesh) fr(f Face) *faceRec {
	if !m.HasFace(f) {
		panic(errors.AssertionFailedf("mesh: dead face handle %d", f))
	}

	return &m.faces[f]
}

// VertexFace returns the face stored as incident to v.
func (m *Mesh) VertexFace(v Vertex) Face { return m.vr(v).face }

// SetVertexFace rewrites the incident-face back-reference of v.
func (m *Mesh) SetVertexFace(v Vertex, f Face) { m.vr(v).face = f }

// FaceVertex returns the vertex in slot i of f.
func (m *Mesh) FaceVertex(f Face, i int) Vertex { return m.fr(f).v[i] }

// FaceNeighbor returns the neighbor of f opposite vertex slot i.
func (m *Mesh) FaceNeighbor(f Face, i int) Face { return m.fr(f).n[i] }

// SetFaceVertex rewrites vertex slot i of f.
func (m *Mesh) SetFaceVertex(f Face, i int, v Vertex) { m.fr(f).v[i] = v }

// SetFaceNeighbor rewrites neighbor slot i of f without touching the
// reciprocal link; see SetAdjacency for the mutual form.
func (m *Mesh) SetFaceNeighbor(f Face, i int, g Face) { m.fr(f).n[i] = g }

// FaceIndexOfVertex returns the slot of v within f.
// Panics if v is not a vertex of f.
func (m *Mesh) FaceIndexOfVertex(f Face, v Vertex) int {
	r := m.fr(f)
	for i := 0; i < 3; i++ {
		if r.v[i] == v {
			return i
		}
	}

	panic(errors.AssertionFailedf("mesh: vertex %d not in face %d", v, f))
}

// FaceHasVertex reports whether v is a vertex of f and at which slot.
func (m *Mesh) FaceHasVertex(f Face, v Vertex) (int, bool) {
	r := m.fr(f)
	for i := 0; i < 3; i++ {
		if r.v[i] == v {
			return i, true
		}
	}

	return -1, false
}

// FaceIndexOfNeighbor returns the slot of g within f's neighbors.
// Panics if g is not a neighbor of f.
func (m *Mesh) FaceIndexOfNeighbor(f, g Face) int {
	r := m.fr(f)
	for i := 0; i < 3; i++ {
		if r.n[i] == g {
			return i
		}
	}

	panic(errors.AssertionFailedf("mesh: face %d not a neighbor of face %d", g, f))
}

// IsGhost returns the ghost flag of f.
func (m *Mesh) IsGhost(f Face) bool { return m.fr(f).ghost }

// SetGhost rewrites the ghost flag of f.
func (m *Mesh) SetGhost(f Face, ghost bool) { m.fr(f).ghost = ghost }

// Vertices returns all live vertex handles in ascending handle order.
// The order is stable across calls as long as the mesh is not mutated.
func (m *Mesh) Vertices() []Vertex {
	out := make([]Vertex, 0, m.nv)
	for i := range m.verts {
		if m.verts[i].used {
			out = append(out, Vertex(i))
		}
	}

	return out
}

// Faces returns all live face handles in ascending handle order.
func (m *Mesh) Faces() []Face {
	out := make([]Face, 0, m.nf)
	for i := range m.faces {
		if m.faces[i].used {
			out = append(out, Face(i))
		}
	}

	return out
}

// Edges returns every edge exactly once. In dimension 2 an edge is listed
// for the lower-handle face of the two that share it; in dimension 1 every
// face contributes its single edge as (face, 2); in dimension 0 the one
// double-covered edge is reported once.
func (m *Mesh) Edges() []Edge {
	switch {
	case m.dim == 2:
		out := make([]Edge, 0, 3*m.nf/2)
		for _, f := range m.Faces() {
			for i := 0; i < 3; i++ {
				if g := m.faces[f].n[i]; f < g {
					out = append(out, Edge{Face: f, Index: i})
				}
			}
		}

		return out
	case m.dim == 1:
		out := make([]Edge, 0, m.nf)
		for _, f := range m.Faces() {
			out = append(out, Edge{Face: f, Index: 2})
		}

		return out
	case m.dim == 0:
		return []Edge{{Face: m.Faces()[0], Index: 0}}
	}

	return nil
}
