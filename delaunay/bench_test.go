package delaunay

import (
	"testing"

	"github.com/katalvlaran/trisphere/mesh"
)

func BenchmarkInsertPoints(b *testing.B) {
	pts := fibonacciPoints(1000)
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		tri := New(WithSeed(uint64(i) + 1))
		tri.InsertPoints(pts)
	}
}

func BenchmarkInsertSequentialWithHint(b *testing.B) {
	pts := fibonacciPoints(500)
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		tri := New()
		hint := mesh.NilFace
		for _, p := range pts {
			v, err := tri.Insert(p, hint)
			if err != nil {
				b.Fatal(err)
			}
			hint = tri.Mesh().VertexFace(v)
		}
	}
}

func BenchmarkRemove(b *testing.B) {
	pts := fibonacciPoints(300)

	for i := 0; i < b.N; i++ {
		b.StopTimer()
		tri := New()
		tri.InsertPoints(pts)
		b.StartTimer()

		for tri.NumberOfVertices() > 4 {
			tri.Remove(tri.Vertices()[0])
		}
	}
}

func BenchmarkLocate(b *testing.B) {
	tri := New()
	tri.InsertPoints(fibonacciPoints(2000))
	queries := fibonacciPoints(997)
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		q := queries[i%len(queries)]
		tri.locate(q, mesh.NilFace)
	}
}
