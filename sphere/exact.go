package sphere

import (
	"math/big"

	"github.com/golang/geo/r3"
)

// Exact rational evaluation backing the filtered predicates. float64 inputs
// are exactly representable as big.Rat, so every sign computed here is the
// true sign of the underlying polynomial expression, including the
// subtractions that the floating-point path rounds.

type ratVec struct {
	x, y, z *big.Rat
}

func ratFromVector(v r3.Vector) ratVec {
	return ratVec{
		x: new(big.Rat).SetFloat64(v.X),
		y: new(big.Rat).SetFloat64(v.Y),
		z: new(big.Rat).SetFloat64(v.Z),
	}
}

func (a ratVec) sub(b ratVec) ratVec {
	return ratVec{
		x: new(big.Rat).Sub(a.x, b.x),
		y: new(big.Rat).Sub(a.y, b.y),
		z: new(big.Rat).Sub(a.z, b.z),
	}
}

func (a ratVec) cross(b ratVec) ratVec {
	mul := func(p, q *big.Rat) *big.Rat { return new(big.Rat).Mul(p, q) }

	return ratVec{
		x: new(big.Rat).Sub(mul(a.y, b.z), mul(a.z, b.y)),
		y: new(big.Rat).Sub(mul(a.z, b.x), mul(a.x, b.z)),
		z: new(big.Rat).Sub(mul(a.x, b.y), mul(a.y, b.x)),
	}
}

func (a ratVec) dot(b ratVec) *big.Rat {
	sum := new(big.Rat).Mul(a.x, b.x)
	sum.Add(sum, new(big.Rat).Mul(a.y, b.y))
	sum.Add(sum, new(big.Rat).Mul(a.z, b.z))

	return sum
}

// exactOrientation is the exact sign of det(p1-p0, p2-p0, p3-p0).
func exactOrientation(p0, p1, p2, p3 Point) Sign {
	r0 := ratFromVector(p0.Vector)
	u := ratFromVector(p1.Vector).sub(r0)
	v := ratFromVector(p2.Vector).sub(r0)
	w := ratFromVector(p3.Vector).sub(r0)

	return Sign(u.cross(v).dot(w).Sign())
}

// exactWedgeSigns reports the exact signs of ((u×w)·(u×v), (w×v)·(u×v))
// for u = a-c, v = b-c, w = q-c. Both signs together decide whether q lies
// strictly inside the minor wedge spanned by a and b as seen from c.
func exactWedgeSigns(c r3.Vector, a, b, q Point) (Sign, Sign) {
	rc := ratFromVector(c)
	u := ratFromVector(a.Vector).sub(rc)
	v := ratFromVector(b.Vector).sub(rc)
	w := ratFromVector(q.Vector).sub(rc)

	n := u.cross(v)
	s1 := Sign(u.cross(w).dot(n).Sign())
	s2 := Sign(w.cross(v).dot(n).Sign())

	return s1, s2
}
