package mesh

import (
	"github.com/cockroachdb/errors"
)

// CreateVertex allocates a vertex with no incident face yet.
func (m *Mesh) CreateVertex() Vertex {
	var v Vertex
	if n := len(m.freeVerts); n > 0 {
		v = m.freeVerts[n-1]
		m.freeVerts = m.freeVerts[:n-1]
	} else {
		v = Vertex(len(m.verts))
		m.verts = append(m.verts, vertexRec{})
	}

	m.verts[v] = vertexRec{face: NilFace, used: true}
	m.nv++

	return v
}

// CreateFace allocates a face with the given vertex slots and no neighbors.
func (m *Mesh) CreateFace(v0, v1, v2 Vertex) Face {
	var f Face
	if n := len(m.freeFaces); n > 0 {
		f = m.freeFaces[n-1]
		m.freeFaces = m.freeFaces[:n-1]
	} else {
		f = Face(len(m.faces))
		m.faces = append(m.faces, faceRec{})
	}

	m.faces[f] = faceRec{
		v:    [3]Vertex{v0, v1, v2},
		n:    [3]Face{NilFace, NilFace, NilFace},
		used: true,
	}
	m.nf++

	return f
}

// DeleteFace releases f. The handle becomes invalid; neighbors still holding
// it must be rewired by the caller before the next query.
func (m *Mesh) DeleteFace(f Face) {
	m.fr(f).used = false
	m.freeFaces = append(m.freeFaces, f)
	m.nf--
}

// DeleteFaces releases every face of fs.
func (m *Mesh) DeleteFaces(fs []Face) {
	for _, f := range fs {
		m.DeleteFace(f)
	}
}

// DeleteVertex releases v.
func (m *Mesh) DeleteVertex(v Vertex) {
	m.vr(v).used = false
	m.freeVerts = append(m.freeVerts, v)
	m.nv--
}

// SetAdjacency makes f and g mutual neighbors: g opposite slot i of f, and
// f opposite slot j of g.
func (m *Mesh) SetAdjacency(f Face, i int, g Face, j int) {
	m.fr(f).n[i] = g
	m.fr(g).n[j] = f
}

// Flip replaces the edge opposite slot i of f with the other diagonal of
// the quadrilateral formed by f and its neighbor across that edge. Both
// face handles survive, rotated onto the new diagonal; ghost flags are left
// for the caller to reclassify. Requires dimension 2.
func (m *Mesh) Flip(f Face, i int) {
	if m.dim != 2 {
		panic(errors.AssertionFailedf("mesh: edge flip requires dimension 2, have %d", m.dim))
	}

	g := m.FaceNeighbor(f, i)
	j := m.FaceIndexOfNeighbor(g, f)

	a := m.FaceVertex(f, CCW(i))
	b := m.FaceVertex(f, CW(i))
	p := m.FaceVertex(f, i)
	q := m.FaceVertex(g, j)

	fa := m.FaceNeighbor(f, CCW(i))
	fai := m.FaceIndexOfNeighbor(fa, f)
	gb := m.FaceNeighbor(g, CCW(j))
	gbi := m.FaceIndexOfNeighbor(gb, g)

	// f keeps (p, a), g keeps (q, b); the shared edge becomes (p, q).
	m.SetFaceVertex(f, CW(i), q)
	m.SetFaceVertex(g, CW(j), p)

	m.SetAdjacency(f, i, gb, gbi)
	m.SetAdjacency(g, j, fa, fai)
	m.SetAdjacency(f, CCW(i), g, CCW(j))

	m.SetVertexFace(a, f)
	m.SetVertexFace(b, g)
	m.SetVertexFace(p, f)
	m.SetVertexFace(q, g)
}

// IncidentFaces returns the faces around v in counterclockwise order,
// starting from v's stored incident face. Requires dimension 2.
func (m *Mesh) IncidentFaces(v Vertex) []Face {
	if m.dim != 2 {
		panic(errors.AssertionFailedf("mesh: face circulation requires dimension 2, have %d", m.dim))
	}

	start := m.vr(v).face
	out := make([]Face, 0, 8)
	f := start
	for {
		out = append(out, f)
		if len(out) > m.nf {
			panic(errors.AssertionFailedf("mesh: face circulation around vertex %d does not close", v))
		}
		j := m.FaceIndexOfVertex(f, v)
		f = m.fr(f).n[CCW(j)]
		if f == start {
			return out
		}
	}
}

// stitchByEdges links every pair of faces in fs that share an undirected
// edge. Each edge must be shared by exactly two of the faces; fs must
// therefore be the complete face set of a closed surface.
func (m *Mesh) stitchByEdges(fs []Face) {
	type side struct {
		f Face
		i int
	}
	seen := make(map[[2]Vertex]side, 3*len(fs)/2)

	for _, f := range fs {
		r := m.fr(f)
		for i := 0; i < 3; i++ {
			a, b := r.v[CCW(i)], r.v[CW(i)]
			if a > b {
				a, b = b, a
			}
			key := [2]Vertex{a, b}
			if prev, ok := seen[key]; ok {
				m.SetAdjacency(f, i, prev.f, prev.i)
				delete(seen, key)
				continue
			}
			seen[key] = side{f: f, i: i}
		}
	}

	if len(seen) != 0 {
		panic(errors.AssertionFailedf("mesh: %d unmatched edges while stitching a closed surface", len(seen)))
	}
}
