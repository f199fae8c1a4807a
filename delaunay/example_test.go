package delaunay_test

import (
	"fmt"
	"math"

	"github.com/katalvlaran/trisphere/delaunay"
	"github.com/katalvlaran/trisphere/mesh"
	"github.com/katalvlaran/trisphere/sphere"
)

// ExampleTriangulation_Insert triangulates the vertices of a regular
// tetrahedron and reports the resulting structure.
func ExampleTriangulation_Insert() {
	s := 1 / math.Sqrt(3)
	pts := []sphere.Point{
		sphere.MakePoint(s, s, s),
		sphere.MakePoint(s, -s, -s),
		sphere.MakePoint(-s, s, -s),
		sphere.MakePoint(-s, -s, s),
	}

	tri := delaunay.New()
	for _, p := range pts {
		if _, err := tri.Insert(p, mesh.NilFace); err != nil {
			fmt.Println("rejected:", err)
			return
		}
	}

	fmt.Println("dimension:", tri.Dimension())
	fmt.Println("vertices:", tri.NumberOfVertices())
	fmt.Println("solid faces:", tri.NumberOfSolidFaces())
	fmt.Println("valid:", tri.IsValid(1))
	// Output:
	// dimension: 2
	// vertices: 4
	// solid faces: 4
	// valid: true
}

// ExampleTriangulation_DualOnSphere extracts the spherical Voronoi vertices
// of a triangulated point set.
func ExampleTriangulation_DualOnSphere() {
	tri := delaunay.NewFromPoints([]sphere.Point{
		sphere.MakePoint(1, 0, 0),
		sphere.MakePoint(0, 1, 0),
		sphere.MakePoint(0, 0, 1),
		sphere.MakePoint(0, 0, -1),
		sphere.PointFromVector(sphere.MakePoint(-1, 0.5, 0.5).Normalize()),
	})

	count := 0
	for _, f := range tri.SolidFaces() {
		c := tri.DualOnSphere(f)
		if tri.Sphere().HasOn(c, 1e-10) {
			count++
		}
	}
	fmt.Println("Voronoi vertices on sphere:", count == len(tri.SolidFaces()))
	// Output:
	// Voronoi vertices on sphere: true
}
