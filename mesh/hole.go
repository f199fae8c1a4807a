package mesh

import (
	"github.com/cockroachdb/errors"
)

// MakeHole deletes v and its star of faces, and returns the boundary of the
// hole as edges (outsideFace, indexFacingHole) in counterclockwise order
// around the hole. The hole-facing neighbor slots of the boundary faces are
// left nil until the hole is refilled; the incident-face back-references of
// the boundary vertices are rewired to live outside faces.
func (m *Mesh) MakeHole(v Vertex) []Edge {
	star := m.IncidentFaces(v)

	edges := make([]Edge, 0, len(star))
	for _, f := range star {
		j := m.FaceIndexOfVertex(f, v)
		fn := m.FaceNeighbor(f, j)
		in := m.FaceIndexOfNeighbor(fn, f)
		m.SetFaceNeighbor(fn, in, NilFace)
		m.SetVertexFace(m.FaceVertex(f, CCW(j)), fn)
		m.SetVertexFace(m.FaceVertex(f, CW(j)), fn)
		edges = append(edges, Edge{Face: fn, Index: in})
	}

	m.DeleteFaces(star)
	m.DeleteVertex(v)

	return edges
}

// StarHole creates a vertex and fans it to every boundary edge of a hole,
// closing the hole. The edges must be in counterclockwise order around the
// hole, as produced by MakeHole or by conflict-region discovery; the faces
// previously occupying the hole must be deleted by the caller afterwards.
func (m *Mesh) StarHole(edges []Edge) Vertex {
	if m.dim != 2 || len(edges) < 3 {
		panic(errors.AssertionFailedf("mesh: StarHole over %d edges in dimension %d", len(edges), m.dim))
	}

	v := m.CreateVertex()
	n := len(edges)
	fan := make([]Face, n)
	for k, e := range edges {
		a := m.FaceVertex(e.Face, CW(e.Index))
		b := m.FaceVertex(e.Face, CCW(e.Index))
		fan[k] = m.CreateFace(a, b, v)
		m.SetAdjacency(fan[k], 2, e.Face, e.Index)
		m.SetVertexFace(a, fan[k])
	}
	for k := 0; k < n; k++ {
		m.SetFaceNeighbor(fan[k], 0, fan[(k+1)%n])
		m.SetFaceNeighbor(fan[k], 1, fan[(k-1+n)%n])
	}
	m.SetVertexFace(v, fan[0])

	return v
}
