package mesh

import (
	"github.com/cockroachdb/errors"
)

// InsertFirstVertex creates the first vertex and moves to dimension -1.
func (m *Mesh) InsertFirstVertex() Vertex {
	if m.dim != -2 || m.nv != 0 {
		panic(errors.AssertionFailedf("mesh: first insertion into non-empty mesh (dim %d)", m.dim))
	}

	v := m.CreateVertex()
	f := m.CreateFace(v, NilVertex, NilVertex)
	m.SetVertexFace(v, f)
	m.dim = -1

	return v
}

// InsertSecondVertex creates the second vertex, links the two single-vertex
// faces into the double-covered edge, and moves to dimension 0.
func (m *Mesh) InsertSecondVertex() Vertex {
	if m.dim != -1 || m.nv != 1 {
		panic(errors.AssertionFailedf("mesh: second insertion requires dimension -1, have %d", m.dim))
	}

	f1 := m.vr(m.Vertices()[0]).face
	v := m.CreateVertex()
	f2 := m.CreateFace(v, NilVertex, NilVertex)
	m.SetVertexFace(v, f2)
	m.SetAdjacency(f1, 0, f2, 0)
	m.dim = 0

	return v
}

// InsertDimUp creates a vertex outside the affine hull of the current
// configuration and raises the dimension by one.
//
// From dimension 0 it builds the 3-cycle over the two existing vertices and
// the new one; orientPositive selects which of the two mirror cycles.
//
// From dimension 1 it builds the full triangulation of the sphere: the cycle
// edges are fanned to the new vertex on one side and to the anchor w on the
// other. The caller picks w as the globally smallest vertex so that the
// result is independent of insertion order, and orientPositive tells whether
// the cycle-order fan around the new vertex is the positively oriented one.
func (m *Mesh) InsertDimUp(w Vertex, orientPositive bool) Vertex {
	switch m.dim {
	case 0:
		return m.insertDimUpTo1(w, orientPositive)
	case 1:
		return m.insertDimUpTo2(w, orientPositive)
	}

	panic(errors.AssertionFailedf("mesh: InsertDimUp from dimension %d", m.dim))
}

func (m *Mesh) insertDimUpTo1(w Vertex, orientPositive bool) Vertex {
	fw := m.vr(w).face
	other := m.FaceVertex(m.FaceNeighbor(fw, 0), 0)

	u := m.CreateVertex()
	m.DeleteFace(m.FaceNeighbor(fw, 0))
	m.DeleteFace(fw)

	order := [3]Vertex{w, u, other}
	if orientPositive {
		order = [3]Vertex{w, other, u}
	}

	var cycle [3]Face
	for k := 0; k < 3; k++ {
		cycle[k] = m.CreateFace(order[k], order[(k+1)%3], NilVertex)
	}
	for k := 0; k < 3; k++ {
		next := cycle[(k+1)%3]
		m.SetAdjacency(cycle[k], 0, next, 1)
		m.SetVertexFace(order[k], cycle[k])
	}

	m.dim = 1

	return u
}

func (m *Mesh) insertDimUpTo2(w Vertex, orientPositive bool) Vertex {
	cycle := m.cycleFaces()
	n := len(cycle)

	ring := make([]Vertex, n)
	s := -1
	for k, f := range cycle {
		ring[k] = m.FaceVertex(f, 0)
		if ring[k] == w {
			s = k
		}
	}
	if s < 0 {
		panic(errors.AssertionFailedf("mesh: anchor vertex %d not on the cycle", w))
	}

	p := m.CreateVertex()
	m.DeleteFaces(cycle)

	newFaces := make([]Face, 0, 2*n-2)
	for k := 0; k < n; k++ {
		a, b := ring[k], ring[(k+1)%n]
		if orientPositive {
			newFaces = append(newFaces, m.CreateFace(a, b, p))
		} else {
			newFaces = append(newFaces, m.CreateFace(b, a, p))
		}
		m.SetVertexFace(a, newFaces[len(newFaces)-1])
	}
	for k := 0; k < n; k++ {
		// The two cycle edges incident to w have no face on the far side:
		// the fan around w skips them.
		if k == s || (k+1)%n == s {
			continue
		}
		a, b := ring[k], ring[(k+1)%n]
		if orientPositive {
			newFaces = append(newFaces, m.CreateFace(b, a, w))
		} else {
			newFaces = append(newFaces, m.CreateFace(a, b, w))
		}
	}

	m.dim = 2
	m.stitchByEdges(newFaces)
	m.SetVertexFace(p, newFaces[0])

	return p
}

// cycleFaces returns the faces of the 1-dimensional cycle in cycle order,
// starting from an arbitrary face.
func (m *Mesh) cycleFaces() []Face {
	if m.dim != 1 {
		panic(errors.AssertionFailedf("mesh: cycle traversal requires dimension 1, have %d", m.dim))
	}

	start := m.Faces()[0]
	out := make([]Face, 0, m.nf)
	f := start
	for {
		out = append(out, f)
		if len(out) > m.nf {
			panic(errors.AssertionFailedf("mesh: 1-dimensional cycle does not close"))
		}
		f = m.FaceNeighbor(f, 0)
		if f == start {
			return out
		}
	}
}

// RemoveDimDown removes v and lowers the dimension by one. From dimension 2
// it is valid only when every remaining vertex is adjacent to v (the
// cocircular collapse detected by the Delaunay layer, or a 4-vertex mesh);
// the faces of v's star are downgraded into the 1-dimensional cycle and all
// other faces are deleted.
func (m *Mesh) RemoveDimDown(v Vertex) {
	switch m.dim {
	case -1:
		m.DeleteFace(m.vr(v).face)
		m.DeleteVertex(v)
		m.dim = -2
	case 0:
		f := m.vr(v).face
		m.SetFaceNeighbor(m.FaceNeighbor(f, 0), 0, NilFace)
		m.DeleteFace(f)
		m.DeleteVertex(v)
		m.dim = -1
	case 1:
		if m.nv != 3 {
			panic(errors.AssertionFailedf("mesh: dimension drop from 1 requires 3 vertices, have %d", m.nv))
		}
		m.DeleteFaces(m.Faces())
		m.DeleteVertex(v)
		rest := m.Vertices()
		fa := m.CreateFace(rest[0], NilVertex, NilVertex)
		fb := m.CreateFace(rest[1], NilVertex, NilVertex)
		m.SetAdjacency(fa, 0, fb, 0)
		m.SetVertexFace(rest[0], fa)
		m.SetVertexFace(rest[1], fb)
		m.dim = 0
	case 2:
		star := m.IncidentFaces(v)
		ring := make([]Vertex, len(star))
		for k, f := range star {
			ring[k] = m.FaceVertex(f, CCW(m.FaceIndexOfVertex(f, v)))
		}
		if len(ring) != m.nv-1 {
			panic(errors.AssertionFailedf(
				"mesh: dimension drop from 2 requires a full star, degree %d of %d vertices",
				len(ring), m.nv))
		}

		m.DeleteFaces(m.Faces())
		m.DeleteVertex(v)

		n := len(ring)
		cycle := make([]Face, n)
		for k := 0; k < n; k++ {
			cycle[k] = m.CreateFace(ring[k], ring[(k+1)%n], NilVertex)
		}
		for k := 0; k < n; k++ {
			m.SetAdjacency(cycle[k], 0, cycle[(k+1)%n], 1)
			m.SetVertexFace(ring[k], cycle[k])
		}
		m.dim = 1
	default:
		panic(errors.AssertionFailedf("mesh: RemoveDimDown from dimension %d", m.dim))
	}
}

// Remove1D removes v from a cycle of at least 4 vertices, merging its two
// incident edge faces into one.
func (m *Mesh) Remove1D(v Vertex) {
	if m.dim != 1 || m.nv < 4 {
		panic(errors.AssertionFailedf("mesh: Remove1D requires dimension 1 with ≥4 vertices (dim %d, %d vertices)", m.dim, m.nv))
	}

	f := m.vr(v).face
	var fprev, fnext Face
	if m.FaceVertex(f, 0) == v {
		fnext, fprev = f, m.FaceNeighbor(f, 1)
	} else {
		fprev, fnext = f, m.FaceNeighbor(f, 0)
	}

	a := m.FaceVertex(fprev, 0)
	b := m.FaceVertex(fnext, 1)
	g := m.CreateFace(a, b, NilVertex)
	m.SetAdjacency(g, 0, m.FaceNeighbor(fnext, 0), 1)
	m.SetAdjacency(g, 1, m.FaceNeighbor(fprev, 1), 0)
	m.SetVertexFace(a, g)
	m.SetVertexFace(b, g)

	m.DeleteFace(fprev)
	m.DeleteFace(fnext)
	m.DeleteVertex(v)
}

// RemoveDegree3 removes a vertex of degree exactly 3 from a 2-dimensional
// mesh, merging its three incident faces into one. The merged face is
// returned so the caller can classify it.
func (m *Mesh) RemoveDegree3(v Vertex) Face {
	star := m.IncidentFaces(v)
	if len(star) != 3 {
		panic(errors.AssertionFailedf("mesh: RemoveDegree3 of a degree-%d vertex", len(star)))
	}

	var ring [3]Vertex
	var outer [3]Face
	var outerIdx [3]int
	for k, f := range star {
		j := m.FaceIndexOfVertex(f, v)
		ring[k] = m.FaceVertex(f, CCW(j))
		outer[k] = m.FaceNeighbor(f, j)
		outerIdx[k] = m.FaceIndexOfNeighbor(outer[k], f)
	}

	g := m.CreateFace(ring[0], ring[1], ring[2])
	for k := 0; k < 3; k++ {
		// Boundary edge k runs ring[k] → ring[k+1]; within g it is the edge
		// opposite slot (k+2)%3.
		m.SetAdjacency(g, (k+2)%3, outer[k], outerIdx[k])
		m.SetVertexFace(ring[k], g)
	}

	m.DeleteFaces(star)
	m.DeleteVertex(v)

	return g
}
