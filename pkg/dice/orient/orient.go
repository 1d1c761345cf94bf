// Package orient answers the two questions asked of a finished die mesh: how
// to turn it so a given numeral faces a direction, and which numeral faces a
// direction after an arbitrary rotation.
//
// Every function here only reads the mesh and is safe for concurrent use.
package orient

import (
	gomath "math"

	"github.com/Faultbox/dicer/pkg/dice/mesh"
	"github.com/Faultbox/dicer/pkg/dice/shape"
	"github.com/Faultbox/dicer/pkg/math"
)

// FaceCentroid returns the mean position over every index of a geometric
// face's triangle group. Panics when face is not a geometric face of d.
func FaceCentroid(m *mesh.Mesh, d shape.Die, face int) math.Vec3 {
	d.CheckFace(face)

	perFace := d.TrianglesPerFace()
	first := 3 * face * perFace
	last := first + 3*perFace

	var sum math.Vec3
	for _, idx := range m.Indices[first:last] {
		sum = sum.Add(m.Vertices[idx].Position)
	}
	return sum.Scale(1 / float32(last-first))
}

// Centroids returns the centroid of every geometric face, in face order.
func Centroids(m *mesh.Mesh, d shape.Die) []math.Vec3 {
	centroids := make([]math.Vec3, d.ActualDieSize())
	for face := range centroids {
		centroids[face] = FaceCentroid(m, d, face)
	}
	return centroids
}

// SideRotation returns the rotation from identity that turns the 1-based
// numeral logical towards forward, with the face's top corner pointing at
// top. Faces on the mirrored half get an extra half turn so their numeral
// reads upright.
//
// Panics when logical is not a numeral printed on d.
func SideRotation(m *mesh.Mesh, d shape.Die, logical int, top, forward math.Vec3) math.Quat {
	d.CheckNumeral(logical)

	face := d.GeometricFace(logical)
	axis := forward.Normalize()

	centroid := FaceCentroid(m, d, face)
	present := math.QuatFromTo(centroid.Normalize(), axis)

	corner := m.Vertices[d.FaceVertexOffset(face)+1].Position
	up := present.Rotate(corner.Sub(centroid))

	angle := math.SignedAngle(up, top, axis)
	if d.Mirrored(face) {
		angle += gomath.Pi
	}

	return math.QuatFromAxisAngle(axis, angle).Mul(present).Normalize()
}

// RolledSide returns the 1-based numeral whose face, rotated by rotation,
// points closest to observe. The first face wins ties.
func RolledSide(m *mesh.Mesh, d shape.Die, rotation math.Quat, observe math.Vec3) int {
	observe = observe.Normalize()

	best := 0
	bestScore := float32(gomath.Inf(-1))
	for face, centroid := range Centroids(m, d) {
		score := rotation.Rotate(centroid).Normalize().Dot(observe)
		if score > bestScore {
			best, bestScore = face, score
		}
	}
	return d.LogicalFace(best)
}
