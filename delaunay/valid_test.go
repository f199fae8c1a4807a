package delaunay

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/trisphere/mesh"
)

// ValiditySuite exercises the invariant battery across longer operation
// sequences than the targeted tests do.
type ValiditySuite struct {
	suite.Suite

	tri *Triangulation
}

func (s *ValiditySuite) SetupTest() {
	s.tri = New()
}

func (s *ValiditySuite) TestDimensionNeverDecreasesUnderInsertion() {
	last := s.tri.Dimension()
	s.Equal(-2, last)

	for _, p := range fibonacciPoints(25) {
		_, err := s.tri.Insert(p, mesh.NilFace)
		s.Require().NoError(err)
		s.GreaterOrEqual(s.tri.Dimension(), last)
		s.LessOrEqual(s.tri.Dimension(), 2)
		last = s.tri.Dimension()
	}
}

func (s *ValiditySuite) TestFaceCountIdentity() {
	for i, p := range fibonacciPoints(25) {
		_, err := s.tri.Insert(p, mesh.NilFace)
		s.Require().NoError(err)
		if i >= 3 {
			s.Equal(2*s.tri.NumberOfVertices()-4, s.tri.NumberOfFaces())
			s.Equal(2*s.tri.NumberOfVertices()-4,
				s.tri.NumberOfSolidFaces()+s.tri.NumberOfGhostFaces())
		}
	}
}

func (s *ValiditySuite) TestChurn() {
	pts := fibonacciPoints(30)
	for _, p := range pts[:20] {
		_, err := s.tri.Insert(p, mesh.NilFace)
		s.Require().NoError(err)
	}
	s.Require().True(s.tri.IsValid(1))

	// Alternate removals and insertions and re-check the whole battery.
	for i := 20; i < 30; i++ {
		s.tri.Remove(s.tri.Vertices()[i%s.tri.NumberOfVertices()])
		s.Require().True(s.tri.IsValid(1))

		_, err := s.tri.Insert(pts[i], mesh.NilFace)
		s.Require().NoError(err)
		s.Require().True(s.tri.IsValid(1))
	}
}

func (s *ValiditySuite) TestIsPlaneOnlyForCocircular() {
	for _, p := range equatorPoints(0, 0.1, 0.3, 0.55, 0.7) {
		_, err := s.tri.Insert(p, mesh.NilFace)
		s.Require().NoError(err)
	}
	s.Equal(1, s.tri.Dimension())
	s.True(s.tri.IsPlane())

	_, err := s.tri.Insert(tetrahedronPoints()[0], mesh.NilFace)
	s.Require().NoError(err)
	s.Equal(2, s.tri.Dimension())
	s.False(s.tri.IsPlane())
	s.True(s.tri.IsValid(1))
}

func TestValiditySuite(t *testing.T) {
	suite.Run(t, new(ValiditySuite))
}
