package sphere

import "testing"

func BenchmarkOrientationFiltered(b *testing.B) {
	p0 := MakePoint(1, 0, 0)
	p1 := MakePoint(0, 1, 0)
	p2 := MakePoint(0, 0, 1)
	q := MakePoint(0.3, 0.4, 0.866)
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		Orientation(p0, p1, p2, q)
	}
}

func BenchmarkOrientationExactFallback(b *testing.B) {
	// Exactly coplanar input defeats the filter and exercises the rational
	// arithmetic path.
	p0 := MakePoint(1, 0, 0)
	p1 := MakePoint(0, 1, 0)
	p2 := MakePoint(-1, 0, 0)
	q := MakePoint(0, -1, 0)
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		Orientation(p0, p1, p2, q)
	}
}

func BenchmarkCollinearBetween(b *testing.B) {
	s := UnitSphere()
	a := MakePoint(1, 0, 0)
	c := MakePoint(0, 1, 0)
	q := MakePoint(0.7071067811865476, 0.7071067811865476, 0)
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		s.CollinearBetween(a, c, q)
	}
}
