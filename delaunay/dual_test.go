package delaunay

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDualEquidistance(t *testing.T) {
	tri := New()
	insertAll(t, tri, tetrahedronPoints())

	for _, f := range tri.Faces() {
		c := tri.Dual(f)
		d0 := c.Sub(tri.FacePoint(f, 0).Vector).Norm()
		d1 := c.Sub(tri.FacePoint(f, 1).Vector).Norm()
		d2 := c.Sub(tri.FacePoint(f, 2).Vector).Norm()
		require.InDelta(t, d0, d1, 1e-12)
		require.InDelta(t, d0, d2, 1e-12)
	}
}

func TestDualOnSphereLiesOnSphere(t *testing.T) {
	tri := New()
	insertAll(t, tri, fibonacciPoints(12))

	for _, f := range tri.SolidFaces() {
		c := tri.DualOnSphere(f)
		require.True(t, tri.Sphere().HasOn(c, 1e-10))
	}
}

func TestDualSegmentConnectsNeighborDuals(t *testing.T) {
	tri := New()
	insertAll(t, tri, fibonacciPoints(12))

	for _, e := range tri.Edges() {
		seg := tri.DualSegment(e)
		require.Equal(t, tri.Dual(e.Face), seg.Source)
		require.Equal(t, tri.Dual(tri.Mesh().FaceNeighbor(e.Face, e.Index)), seg.Target)

		arc := tri.DualArc(e)
		require.True(t, tri.Sphere().HasOn(arc.Source, 1e-10))
		require.True(t, tri.Sphere().HasOn(arc.Target, 1e-10))
	}
}

func TestDualRequiresDimension2(t *testing.T) {
	tri := New()
	insertAll(t, tri, equatorPoints(0, 0.25, 0.5))

	require.Panics(t, func() { tri.Dual(tri.Faces()[0]) })
}

func TestDualVoronoiCellClosure(t *testing.T) {
	tri := New()
	insertAll(t, tri, fibonacciPoints(20))

	// The Voronoi cell of a vertex is the cycle of duals of its incident
	// faces; consecutive incident faces share an edge, so the cell closes.
	for _, v := range tri.Vertices() {
		star := tri.Mesh().IncidentFaces(v)
		require.GreaterOrEqual(t, len(star), 3)
		for _, f := range star {
			c := tri.DualOnSphere(f)
			require.True(t, tri.Sphere().HasOn(c, 1e-10))
		}
	}
}
