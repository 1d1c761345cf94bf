package shape

import (
	"fmt"

	"github.com/Faultbox/dicer/pkg/dice/mesh"
)

// Die is an immutable generation request for one family. DieSize is the
// number of distinct numerals; ActualDieSize is the number of geometric faces
// after repetition packing.
type Die struct {
	Kind       Kind
	DieSize    int
	Resolution int
	Scaling    int
}

// New resolves the scaling factor of size for the family.
func New(kind Kind, size, resolution int) Die {
	scaling := -1
	if kind.Valid() {
		scaling = kind.Constraint().GetScalingFactor(size)
	}
	return Die{Kind: kind, DieSize: size, Resolution: resolution, Scaling: scaling}
}

// ActualDieSize returns the number of geometric faces.
func (d Die) ActualDieSize() int {
	return d.DieSize * d.Scaling
}

// Validate reports whether the die can be generated. Calling the generation
// methods on an invalid die produces undefined geometry.
func (d Die) Validate() bool {
	return d.Kind.Valid() && d.Scaling > 0 && d.Resolution > 0
}

// VertexCount returns the vertex buffer length.
func (d Die) VertexCount() int { return families[d.Kind].vertexCount(d) }

// IndexCount returns the index buffer length (three per triangle).
func (d Die) IndexCount() int { return families[d.Kind].indexCount(d) }

// JobLength returns the number of independent work items.
func (d Die) JobLength() int { return families[d.Kind].jobLength(d) }

// Bounds returns the bounding box of the generated mesh.
func (d Die) Bounds() mesh.Bounds { return unitBounds }

// TrianglesPerFace returns how many consecutive triangles form one geometric face.
func (d Die) TrianglesPerFace() int { return families[d.Kind].trianglesPerFace(d) }

// FaceVertexOffset returns the first vertex index of a geometric face. The
// vertex right after it is the face's top reference corner.
func (d Die) FaceVertexOffset(face int) int {
	d.CheckFace(face)
	return families[d.Kind].faceVertexOffset(d, face)
}

// Mirrored reports whether a geometric face belongs to the lower, mirrored
// half of the die, where numerals are printed upside down relative to the apex.
func (d Die) Mirrored(face int) bool {
	d.CheckFace(face)
	return families[d.Kind].mirrored(d, face)
}

// Execute writes the geometry of work item i into m. Work items touch
// disjoint regions of the buffers and may run concurrently.
func (d Die) Execute(i int, m *mesh.Mesh) {
	if i < 0 || i >= d.JobLength() {
		panic(fmt.Sprintf("%s has %d work items, indexed from 0 to %d. Received: %d",
			d.Kind, d.JobLength(), d.JobLength()-1, i))
	}
	families[d.Kind].execute(d, i, m)
}

// Placement returns the atlas placement of a geometric face's numeral.
func (d Die) Placement(face int) Placement {
	d.CheckFace(face)
	return families[d.Kind].placement(d, face)
}

// Layout returns the placements of every geometric face.
func (d Die) Layout() []Placement {
	layout := make([]Placement, d.ActualDieSize())
	for face := range layout {
		layout[face] = d.Placement(face)
	}
	return layout
}

// LogicalFace maps a 0-based geometric face to its 1-based numeral.
func (d Die) LogicalFace(face int) int {
	return face%d.DieSize + 1
}

// GeometricFace maps a 1-based numeral to the first geometric face showing it.
func (d Die) GeometricFace(logical int) int {
	return logical - 1
}

// CheckFace panics unless face is a 0-based geometric face of d.
func (d Die) CheckFace(face int) {
	if face < 0 || face >= d.ActualDieSize() {
		panic(fmt.Sprintf("%s has %d sides, indexed from 0 to %d. Received: %d",
			d.Kind, d.ActualDieSize(), d.ActualDieSize()-1, face))
	}
}

// CheckNumeral panics unless logical is a 1-based numeral printed on d.
func (d Die) CheckNumeral(logical int) {
	if logical < 1 || logical > d.DieSize {
		panic(fmt.Sprintf("%s has %d sides, numbered from 1 to %d. Received: %d",
			d.Kind, d.DieSize, d.DieSize, logical))
	}
}
