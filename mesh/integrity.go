package mesh

import (
	"github.com/cockroachdb/errors"
)

// CheckIntegrity verifies the structural invariants of the mesh: dimension
// versus vertex/face counts, slot population per dimension, neighbor
// symmetry, and vertex-face back-references. It returns nil when the mesh is
// sound and a descriptive error for the first violation found.
func (m *Mesh) CheckIntegrity() error {
	wantFaces := map[int]int{-2: 0, -1: 1, 0: 2, 1: m.nv, 2: 2*m.nv - 4}
	want, ok := wantFaces[m.dim]
	if !ok {
		return errors.Newf("mesh: dimension out of range: %d", m.dim)
	}
	if m.dim == 2 && m.nv < 4 {
		return errors.Newf("mesh: dimension 2 with %d vertices", m.nv)
	}
	if m.dim == 1 && m.nv < 3 {
		return errors.Newf("mesh: dimension 1 with %d vertices", m.nv)
	}
	if m.nf != want {
		return errors.Newf("mesh: dimension %d with %d vertices wants %d faces, has %d", m.dim, m.nv, want, m.nf)
	}

	// Single-vertex faces of dimensions -1 and 0 still populate slot 0.
	vertexSlots := m.dim + 1
	if vertexSlots < 1 {
		vertexSlots = 1
	}
	neighborSlots := m.dim + 1
	if neighborSlots < 0 {
		neighborSlots = 0
	}

	for _, f := range m.Faces() {
		r := &m.faces[f]
		for i := 0; i < 3; i++ {
			if i < vertexSlots {
				if !m.HasVertex(r.v[i]) {
					return errors.Newf("mesh: face %d slot %d holds dead vertex %d", f, i, r.v[i])
				}
			} else if r.v[i] != NilVertex {
				return errors.Newf("mesh: face %d slot %d populated beyond dimension %d", f, i, m.dim)
			}
		}

		for i := 0; i < neighborSlots; i++ {
			g := r.n[i]
			if !m.HasFace(g) {
				return errors.Newf("mesh: face %d neighbor %d is dead or nil", f, i)
			}
			if !m.hasNeighbor(g, f) {
				return errors.Newf("mesh: adjacency asymmetry between faces %d and %d", f, g)
			}
		}
	}

	for _, v := range m.Vertices() {
		f := m.verts[v].face
		if !m.HasFace(f) {
			return errors.Newf("mesh: vertex %d references dead face %d", v, f)
		}
		if _, ok := m.FaceHasVertex(f, v); !ok {
			return errors.Newf("mesh: vertex %d references face %d which does not contain it", v, f)
		}
	}

	return nil
}

func (m *Mesh) hasNeighbor(f, g Face) bool {
	r := m.fr(f)
	for i := 0; i < 3; i++ {
		if r.n[i] == g {
			return true
		}
	}

	return false
}
