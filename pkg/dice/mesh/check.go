package mesh

import (
	"errors"
	"fmt"
)

var (
	// ErrIndexCount indicates an index buffer that is not made of triples.
	ErrIndexCount = errors.New("mesh: index count is not a multiple of 3")
	// ErrIndexRange indicates a triangle referencing a missing vertex.
	ErrIndexRange = errors.New("mesh: index out of vertex range")
	// ErrOrphanVertex indicates a vertex no triangle references.
	ErrOrphanVertex = errors.New("mesh: vertex not referenced by any triangle")
	// ErrWinding indicates a triangle facing towards the mesh origin.
	ErrWinding = errors.New("mesh: triangle is not wound outward")
)

// Check verifies the structural invariants of a generated die: indices come in
// triples, every index names an existing vertex, every vertex is used and every
// triangle faces away from the origin.
func Check(m *Mesh) error {
	if len(m.Indices)%3 != 0 {
		return fmt.Errorf("%w: %d indices", ErrIndexCount, len(m.Indices))
	}

	used := make([]bool, len(m.Vertices))
	for i, idx := range m.Indices {
		if int(idx) >= len(m.Vertices) {
			return fmt.Errorf("%w: index %d at slot %d, %d vertices", ErrIndexRange, idx, i, len(m.Vertices))
		}
		used[idx] = true
	}
	for i, ok := range used {
		if !ok {
			return fmt.Errorf("%w: vertex %d", ErrOrphanVertex, i)
		}
	}

	for t := 0; t < m.TriangleCount(); t++ {
		tri := m.Triangle(t)
		a := m.Vertices[tri[0]].Position
		b := m.Vertices[tri[1]].Position
		c := m.Vertices[tri[2]].Position

		normal := b.Sub(a).Cross(c.Sub(a))
		center := a.Add(b).Add(c).Scale(1.0 / 3)
		if normal.Dot(center) <= 0 {
			return fmt.Errorf("%w: triangle %d", ErrWinding, t)
		}
	}

	return nil
}
