// Package sphere is the geometric kernel for triangulations on a sphere:
// a point-on-sphere type, exact orientation predicates, and the dual
// (circumcenter) constructions.
//
// What:
//
//   - Point wraps an r3.Vector and represents a point lying on (or within a
//     tolerance band of) a fixed sphere described by Sphere.
//   - Orientation, Sphere.OrientationOnSphere and SideOfOrientedCircle are the
//     two faces of the same 3D predicate: the in-circle test on a sphere is an
//     orientation test of four points in space.
//   - Sphere.CollinearBetween resolves circular ordering for cocircular
//     configurations (the 1-dimensional triangulation states).
//   - CompareXYZ is a strict total order over points, used by the symbolic
//     perturbation of degenerate in-circle results.
//   - Circumcenter and Sphere.CircumcenterOnSphere construct the Voronoi dual
//     of a triangulation face, as a 3D point and as a point on the sphere.
//
// Why exactness matters:
//
//	The triangulation's dimension state machine distinguishes "exactly
//	cocircular" from "in general position". Every predicate here is evaluated
//	with a floating-point filter first and falls back to exact rational
//	arithmetic (math/big.Rat) whenever the filtered result cannot be trusted,
//	so a Zero answer is a certainty, never a rounding accident.
//
// Complexity:
//
//   - Filtered predicate: O(1) float operations on the fast path.
//   - Exact fallback: a constant number of big.Rat operations; inputs are
//     float64 and therefore exactly representable as rationals.
//
// Package sphere has no opinion about mesh topology; see packages mesh and
// delaunay for the combinatorial side.
package sphere
