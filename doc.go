// Package trisphere maintains Delaunay triangulations of points on a
// sphere, with incremental insertion, removal, and spherical Voronoi
// queries through the dual.
//
// 🚀 What is trisphere?
//
//	A triangulation engine for point sets on a sphere's surface:
//		• Incremental insertion and removal, one point at a time
//		• Exact predicates: floating-point filter with rational fallback
//		• Symbolic perturbation — degenerate inputs resolve deterministically
//		• Ghost-face bookkeeping for point sets that fit in a half-space
//		• Dual queries: spherical Voronoi vertices, edges and arcs
//		• Bulk loading with shuffle and Hilbert-curve spatial sort
//
// ✨ Why choose trisphere?
//
//   - Robust – exact geometric decisions, insertion order never changes the result
//   - Inspectable – a validity oracle verifies every structural invariant
//   - Handle-based – vertices and faces are stable integer handles in arenas
//
// Everything is organized under three subpackages:
//
//	sphere/   — geometry kernel: points, predicates, circumcenters, arcs
//	mesh/     — combinatorial substrate: faces, adjacency, hole operations
//	delaunay/ — the triangulation itself: insert, remove, duals, validity
//
// Quick ASCII example:
//
//	      N
//	     /|\
//	    A─B─C        four points on a sphere triangulate into
//	     \|/         2·4-4 = 4 spherical faces
//	      S
//
// Dive into the package docs for the dimension ladder, the ghost-face
// rules, and the perturbation contract.
//
//	go get github.com/katalvlaran/trisphere
package trisphere
