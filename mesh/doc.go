// Package mesh is the combinatorial substrate of a triangulation on a
// sphere: vertices and faces held in arenas, addressed by stable integer
// handles, with the structural operations the Delaunay layer builds on.
//
// What:
//
//   - Vertex and Face are arena indices; deleted slots go to a free list and
//     may be reused, but a handle stays valid from creation until its
//     explicit deletion.
//   - Every face has three vertex slots and three neighbor slots; neighbor i
//     sits opposite vertex i. Lower-dimensional configurations leave the
//     trailing slots nil (see Dimension below).
//   - Structural operations: CreateVertex/CreateFace/SetAdjacency plus the
//     dimension transitions (InsertFirstVertex, InsertSecondVertex,
//     InsertDimUp, RemoveDimDown, Remove1D, RemoveDegree3) and the hole
//     operations (MakeHole, StarHole) that implement vertex insertion and
//     removal in two dimensions.
//
// Dimension:
//
//	The mesh tracks the rank of the configuration it stores:
//	  -2  empty
//	  -1  one vertex, one single-vertex face
//	   0  two vertices, two single-vertex faces adjacent to each other
//	   1  n ≥ 3 vertices in a closed cycle of n two-vertex faces; a face
//	      (a, b) has the next face of the cycle at neighbor 0 and the
//	      previous at neighbor 1
//	   2  n ≥ 4 vertices, 2n-4 triangular faces covering the sphere
//	Only the operations of this package change the dimension.
//
// The package is purely combinatorial: it never looks at coordinates. All
// geometric decisions (which of the two mirror cycles to build, which faces
// are ghosts) are made by the caller and passed in as flags.
//
// Preconditions are programmer contracts: violating one panics with an
// assertion error rather than returning a recoverable error, because a
// broken topology has no meaningful recovery.
//
// Complexity: all operations are O(1) or O(k) in the number of faces they
// touch; iteration is O(arena size).
package mesh
