// Package delaunay maintains a Delaunay triangulation of points constrained
// to the surface of a sphere, under incremental insertion and removal.
//
// What:
//
//   - Triangulation owns a mesh.Mesh and one sphere.Point per vertex; the
//     sphere (center, radius) is fixed at construction.
//   - Insert locates the point, discovers the region of faces whose
//     circumscribed cap contains it, and fans its boundary to a new vertex. Low vertex counts go through the dimension ladder instead:
//     one vertex, two vertices, a cocircular cycle, and only then a full
//     triangulation of the sphere.
//   - Remove carves out the star of the vertex and refills the hole with a
//     divide-and-conquer retriangulation, or steps the dimension down when
//     the remaining points are exactly cocircular.
//   - Dual, DualOnSphere, DualSegment and DualArc expose the Voronoi
//     diagram of the vertex set face by face and edge by edge.
//   - IsValid is the invariant battery used by the tests.
//
// Ghost faces:
//
//	A triangulation of the whole sphere has no outer face, but as long as
//	the vertex set fits in an open half-space of the circle through any
//	face, the structure must still cover the sphere. The covering faces
//	whose stored vertex order is not positively oriented are artifacts of
//	that covering, not facets of the true triangulation; they carry a
//	ghost flag maintained after every mutation. In the cocircular
//	dimension the same role is played by the wrap-around arc of the cycle.
//
// Degeneracies:
//
//	An exactly cocircular query is resolved by a symbolic perturbation: a
//	strict total order over points picks a deterministic winner, so the
//	final triangulation of a point set does not depend on insertion order.
//
// Errors:
//
//   - ErrNotOnSphere: the point is rejected before any mutation.
//   - Broken topological invariants panic with an assertion error; they
//     mean a bug, not a condition the caller can handle.
//
// Complexity: expected O(log n) location with warm hints and O(d) structural
// work per operation, d the degree of the affected region; worst case O(n).
//
// The Triangulation is a single mutable aggregate with no internal locking:
// calls must not overlap, and iteration must not overlap a mutation.
package delaunay
