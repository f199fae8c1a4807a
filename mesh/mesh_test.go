package mesh

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// ladder builds the mesh through every dimension step up to dim and returns
// the vertices in creation order.
func ladder(t *testing.T, dim int) (*Mesh, []Vertex) {
	t.Helper()

	m := New()
	vs := make([]Vertex, 0, 4)
	if dim < -1 {
		return m, vs
	}

	vs = append(vs, m.InsertFirstVertex())
	if dim < 0 {
		return m, vs
	}

	vs = append(vs, m.InsertSecondVertex())
	if dim < 1 {
		return m, vs
	}

	vs = append(vs, m.InsertDimUp(vs[0], true))
	if dim < 2 {
		return m, vs
	}

	vs = append(vs, m.InsertDimUp(vs[0], true))

	return m, vs
}

func TestDimensionLadderUp(t *testing.T) {
	cases := []struct {
		name        string
		dim, nv, nf int
	}{
		{name: "empty", dim: -2, nv: 0, nf: 0},
		{name: "one_vertex", dim: -1, nv: 1, nf: 1},
		{name: "two_vertices", dim: 0, nv: 2, nf: 2},
		{name: "cycle", dim: 1, nv: 3, nf: 3},
		{name: "surface", dim: 2, nv: 4, nf: 4},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			m, _ := ladder(t, tc.dim)
			require.Equal(t, tc.dim, m.Dimension())
			require.Equal(t, tc.nv, m.NumVertices())
			require.Equal(t, tc.nf, m.NumFaces())
			require.NoError(t, m.CheckIntegrity())
		})
	}
}

func TestInsertDimUpTo1Order(t *testing.T) {
	m, vs := ladder(t, 1)
	w, other, u := vs[0], vs[1], vs[2]

	// orientPositive builds the cycle w → other → u.
	f := m.VertexFace(w)
	require.Equal(t, w, m.FaceVertex(f, 0))
	require.Equal(t, other, m.FaceVertex(f, 1))

	g := m.FaceNeighbor(f, 0)
	require.Equal(t, other, m.FaceVertex(g, 0))
	require.Equal(t, u, m.FaceVertex(g, 1))
	require.Equal(t, f, m.FaceNeighbor(g, 1))
}

func TestInsertDimUpTo2Surface(t *testing.T) {
	m, vs := ladder(t, 2)

	require.Equal(t, 2, m.Dimension())
	require.Equal(t, 2*m.NumVertices()-4, m.NumFaces())
	require.NoError(t, m.CheckIntegrity())

	// Every vertex of the tetrahedron has degree 3.
	for _, v := range vs {
		require.Len(t, m.IncidentFaces(v), 3)
	}
}

func TestFlip(t *testing.T) {
	m, _ := ladder(t, 2)

	triples := func() map[[3]Vertex]int {
		out := make(map[[3]Vertex]int, m.NumFaces())
		for _, h := range m.Faces() {
			k := [3]Vertex{m.FaceVertex(h, 0), m.FaceVertex(h, 1), m.FaceVertex(h, 2)}
			if k[1] < k[0] {
				k[0], k[1] = k[1], k[0]
			}
			if k[2] < k[1] {
				k[1], k[2] = k[2], k[1]
			}
			if k[1] < k[0] {
				k[0], k[1] = k[1], k[0]
			}
			out[k]++
		}
		return out
	}
	before := triples()

	f := m.Faces()[0]
	g := m.FaceNeighbor(f, 0)
	p := m.FaceVertex(f, 0)
	q := m.FaceVertex(g, m.FaceIndexOfNeighbor(g, f))

	m.Flip(f, 0)
	require.NoError(t, m.CheckIntegrity())
	require.Equal(t, 4, m.NumFaces())
	require.NotEqual(t, before, triples())

	// Both surviving handles sit on the new diagonal (p, q), adjacent
	// across it.
	for _, h := range []Face{f, g} {
		_, ok := m.FaceHasVertex(h, p)
		require.True(t, ok)
		_, ok = m.FaceHasVertex(h, q)
		require.True(t, ok)
	}
	require.Equal(t, g, m.FaceNeighbor(f, CCW(0)))

	// Flipping the new diagonal undoes the first flip.
	m.Flip(f, CCW(0))
	require.NoError(t, m.CheckIntegrity())
	require.Equal(t, before, triples())
}

func TestCycleTraversal(t *testing.T) {
	m, _ := ladder(t, 1)

	cycle := m.cycleFaces()
	require.Len(t, cycle, 3)
	require.Equal(t, cycle[0], m.FaceNeighbor(cycle[len(cycle)-1], 0))
}

func TestMakeHoleStarHole(t *testing.T) {
	m, vs := ladder(t, 2)
	v := vs[3]

	edges := m.MakeHole(v)
	require.Len(t, edges, 3)
	require.Equal(t, 3, m.NumVertices())
	require.Equal(t, 1, m.NumFaces())
	for _, e := range edges {
		require.Equal(t, NilFace, m.FaceNeighbor(e.Face, e.Index))
	}

	u := m.StarHole(edges)
	require.Equal(t, 4, m.NumVertices())
	require.Equal(t, 4, m.NumFaces())
	require.NoError(t, m.CheckIntegrity())
	require.Len(t, m.IncidentFaces(u), 3)
}

func TestRemoveDegree3(t *testing.T) {
	// Five vertices: raise a 4-cycle to dimension 2, which leaves two
	// ring vertices with degree exactly 3.
	m := New()
	v0 := m.InsertFirstVertex()
	m.InsertSecondVertex()
	m.InsertDimUp(v0, true)

	// Grow the cycle to 4 vertices by splitting an edge by hand.
	f := m.Faces()[0]
	a, b := m.FaceVertex(f, 0), m.FaceVertex(f, 1)
	next := m.FaceNeighbor(f, 0)
	x := m.CreateVertex()
	g1 := m.CreateFace(a, x, NilVertex)
	g2 := m.CreateFace(x, b, NilVertex)
	m.SetAdjacency(g1, 0, g2, 1)
	m.SetAdjacency(g2, 0, next, 1)
	m.SetAdjacency(g1, 1, m.FaceNeighbor(f, 1), 0)
	m.SetVertexFace(a, g1)
	m.SetVertexFace(x, g2)
	m.DeleteFace(f)
	require.NoError(t, m.CheckIntegrity())

	top := m.InsertDimUp(v0, true)
	require.Equal(t, 5, m.NumVertices())
	require.Equal(t, 6, m.NumFaces())
	require.NoError(t, m.CheckIntegrity())

	var victim Vertex = NilVertex
	for _, v := range m.Vertices() {
		if v != top && v != v0 && len(m.IncidentFaces(v)) == 3 {
			victim = v
			break
		}
	}
	require.NotEqual(t, NilVertex, victim)

	merged := m.RemoveDegree3(victim)
	require.True(t, m.HasFace(merged))
	require.Equal(t, 4, m.NumVertices())
	require.Equal(t, 4, m.NumFaces())
	require.NoError(t, m.CheckIntegrity())
}

func TestRemove1D(t *testing.T) {
	m, vs := ladder(t, 1)

	// A cycle of 3 is the minimum, so add a fourth vertex first.
	f := m.VertexFace(vs[0])
	next := m.FaceNeighbor(f, 0)
	x := m.CreateVertex()
	g := m.CreateFace(x, m.FaceVertex(f, 1), NilVertex)
	m.SetFaceVertex(f, 1, x)
	m.SetAdjacency(f, 0, g, 1)
	m.SetAdjacency(g, 0, next, 1)
	m.SetVertexFace(x, g)
	require.Equal(t, 4, m.NumVertices())
	require.NoError(t, m.CheckIntegrity())

	m.Remove1D(x)
	require.Equal(t, 3, m.NumVertices())
	require.Equal(t, 3, m.NumFaces())
	require.NoError(t, m.CheckIntegrity())
	require.Len(t, m.cycleFaces(), 3)
}

func TestRemoveDimDownLadder(t *testing.T) {
	m, vs := ladder(t, 2)

	m.RemoveDimDown(vs[3])
	require.Equal(t, 1, m.Dimension())
	require.NoError(t, m.CheckIntegrity())

	m.RemoveDimDown(vs[2])
	require.Equal(t, 0, m.Dimension())
	require.NoError(t, m.CheckIntegrity())

	m.RemoveDimDown(vs[1])
	require.Equal(t, -1, m.Dimension())
	require.NoError(t, m.CheckIntegrity())

	m.RemoveDimDown(vs[0])
	require.Equal(t, -2, m.Dimension())
	require.Equal(t, 0, m.NumVertices())
	require.NoError(t, m.CheckIntegrity())
}

func TestEdges(t *testing.T) {
	cases := []struct {
		name string
		dim  int
		want int
	}{
		{name: "two_vertices", dim: 0, want: 1},
		{name: "cycle", dim: 1, want: 3},
		{name: "surface", dim: 2, want: 6},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			m, _ := ladder(t, tc.dim)
			require.Len(t, m.Edges(), tc.want)
		})
	}
}

func TestHandleReuse(t *testing.T) {
	m, vs := ladder(t, 2)

	edges := m.MakeHole(vs[3])
	u := m.StarHole(edges)

	// Freed handles are recycled, so the arena does not grow.
	require.Equal(t, vs[3], u)
	require.Equal(t, 4, m.NumVertices())
}

func TestAccessorPanics(t *testing.T) {
	m, vs := ladder(t, 2)
	f := m.Faces()[0]

	require.Panics(t, func() { m.FaceIndexOfVertex(f, NilVertex) })
	require.Panics(t, func() { m.vr(Vertex(99)) })
	require.Panics(t, func() { m.fr(NilFace) })

	m.DeleteVertex(vs[0])
	require.Panics(t, func() { m.VertexFace(vs[0]) })
}
