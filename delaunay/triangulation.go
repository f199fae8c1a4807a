package delaunay

import (
	"github.com/cockroachdb/errors"
	"go.uber.org/zap"

	"github.com/katalvlaran/trisphere/mesh"
	"github.com/katalvlaran/trisphere/sphere"
)

// Triangulation is a Delaunay triangulation of points on a sphere. The zero
// value is not usable; construct with New or NewFromPoints.
type Triangulation struct {
	m   *mesh.Mesh
	sph sphere.Sphere

	// pts mirrors the vertex arena of the mesh: pts[v] is the point of
	// vertex v. Slots of deleted vertices hold stale points until reuse.
	pts []sphere.Point

	opts Options
	log  *zap.Logger
}

// New returns an empty triangulation.
func New(options ...Option) *Triangulation {
	opts := DefaultOptions()
	for _, o := range options {
		o(&opts)
	}

	return &Triangulation{
		m:    mesh.New(),
		sph:  opts.Sphere,
		opts: opts,
		log:  opts.Logger,
	}
}

// NewFromPoints builds a triangulation of the given points. Points not on
// the sphere are skipped, as in InsertPoints.
func NewFromPoints(pts []sphere.Point, options ...Option) *Triangulation {
	t := New(options...)
	t.InsertPoints(pts)

	return t
}

// Sphere returns the sphere the triangulation lives on.
func (t *Triangulation) Sphere() sphere.Sphere { return t.sph }

// Mesh exposes the combinatorial substrate for read-only traversal. Mutating
// it directly breaks the triangulation invariants.
func (t *Triangulation) Mesh() *mesh.Mesh { return t.m }

// Dimension returns the rank of the current configuration, in {-2..2}.
func (t *Triangulation) Dimension() int { return t.m.Dimension() }

// NumberOfVertices returns the live vertex count.
func (t *Triangulation) NumberOfVertices() int { return t.m.NumVertices() }

// NumberOfFaces returns the live face count, ghosts included.
func (t *Triangulation) NumberOfFaces() int { return t.m.NumFaces() }

// NumberOfGhostFaces counts the faces currently flagged as ghosts.
func (t *Triangulation) NumberOfGhostFaces() int {
	n := 0
	for _, f := range t.m.Faces() {
		if t.m.IsGhost(f) {
			n++
		}
	}

	return n
}

// NumberOfSolidFaces counts the faces that belong to the true triangulation.
func (t *Triangulation) NumberOfSolidFaces() int {
	return t.m.NumFaces() - t.NumberOfGhostFaces()
}

// Point returns the point of vertex v.
func (t *Triangulation) Point(v mesh.Vertex) sphere.Point {
	if !t.m.HasVertex(v) {
		panic(errors.AssertionFailedf("delaunay: point of dead vertex %d", v))
	}

	return t.pts[v]
}

// FacePoint returns the point of the i-th vertex of face f.
func (t *Triangulation) FacePoint(f mesh.Face, i int) sphere.Point {
	return t.Point(t.m.FaceVertex(f, i))
}

// Vertices returns the live vertex handles in ascending order.
func (t *Triangulation) Vertices() []mesh.Vertex { return t.m.Vertices() }

// Faces returns the live face handles in ascending order, ghosts included.
func (t *Triangulation) Faces() []mesh.Face { return t.m.Faces() }

// SolidFaces returns the live non-ghost face handles in ascending order.
func (t *Triangulation) SolidFaces() []mesh.Face {
	out := make([]mesh.Face, 0, t.m.NumFaces())
	for _, f := range t.m.Faces() {
		if !t.m.IsGhost(f) {
			out = append(out, f)
		}
	}

	return out
}

// Edges returns the edges of the current configuration, one record per
// undirected edge.
func (t *Triangulation) Edges() []mesh.Edge { return t.m.Edges() }

// IsGhost reports whether face f is a ghost.
func (t *Triangulation) IsGhost(f mesh.Face) bool { return t.m.IsGhost(f) }

// setPoint records p as the point of vertex v, growing the mirror slice to
// match the vertex arena.
func (t *Triangulation) setPoint(v mesh.Vertex, p sphere.Point) {
	for int(v) >= len(t.pts) {
		t.pts = append(t.pts, sphere.Point{})
	}
	t.pts[v] = p
}

// tooClose reports whether p and q are within the separation tolerance.
func (t *Triangulation) tooClose(p, q sphere.Point) bool {
	sep := t.opts.Separation * t.sph.Radius

	return p.Sub(q.Vector).Norm2() < sep*sep
}
