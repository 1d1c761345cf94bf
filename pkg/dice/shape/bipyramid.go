package shape

import (
	gomath "math"

	"github.com/Faultbox/dicer/pkg/dice/constraint"
	"github.com/Faultbox/dicer/pkg/dice/mesh"
	"github.com/Faultbox/dicer/pkg/math"
)

// bipyramid is two k-gonal pyramids glued at an equatorial unit ring, with
// apexes at the poles. Upper faces are 0..k-1, their mirrors k..2k-1.
type bipyramid struct{}

func (bipyramid) name() string { return "bipyramid" }

func (bipyramid) constraint() constraint.Linear { return constraint.NewLinear(4, 8, true) }

func (bipyramid) vertexCount(d Die) int {
	return d.ActualDieSize() * mesh.VerticesPerTriangle(d.Resolution)
}

func (bipyramid) indexCount(d Die) int {
	return 3 * d.ActualDieSize() * mesh.TrianglesPerTriangle(d.Resolution)
}

func (bipyramid) jobLength(d Die) int { return d.ActualDieSize() / 2 }

func (bipyramid) trianglesPerFace(d Die) int { return mesh.TrianglesPerTriangle(d.Resolution) }

func (bipyramid) faceVertexOffset(d Die, face int) int {
	return face * mesh.VerticesPerTriangle(d.Resolution)
}

func (bipyramid) mirrored(d Die, face int) bool { return face >= d.ActualDieSize()/2 }

func (b bipyramid) execute(d Die, i int, m *mesh.Mesh) {
	actual := d.ActualDieSize()
	step := 2 * gomath.Pi / float64(actual/2)

	vertexOffset := i * mesh.VerticesPerTriangle(d.Resolution)
	triangleOffset := i * mesh.TrianglesPerTriangle(d.Resolution)
	textureOffset := 2 * i

	inverseVertexOffset := b.vertexCount(d)/2 + vertexOffset
	inverseTriangleOffset := (i + actual/2) * mesh.TrianglesPerTriangle(d.Resolution)
	inverseTextureOffset := 2*actual - textureOffset + 1

	current := ringPoint(step*float64(i), 0)
	next := ringPoint(step*float64(i+1), 0)
	currentTangent := ringTangent(step * float64(i))
	nextTangent := ringTangent(step * float64(i+1))

	mesh.FitTriangle(m,
		newCorner(next, nextTangent, stripTexCoord(actual, textureOffset+2), vertexOffset+2),
		newCorner(math.Up, apexTangent(true), stripTexCoord(actual, textureOffset+1), vertexOffset+1),
		newCorner(current, currentTangent, stripTexCoord(actual, textureOffset), vertexOffset),
		d.Resolution, triangleOffset,
	)

	mesh.FitTriangle(m,
		newCorner(current, currentTangent, stripTexCoord(actual, inverseTextureOffset), inverseVertexOffset),
		newCorner(math.Down, apexTangent(false), stripTexCoord(actual, inverseTextureOffset-1), inverseVertexOffset+1),
		newCorner(next, nextTangent, stripTexCoord(actual, inverseTextureOffset-2), inverseVertexOffset+2),
		d.Resolution, inverseTriangleOffset,
	)
}

func (bipyramid) placement(d Die, face int) Placement {
	return stripPlacement(d, face, 3/(float32(d.ActualDieSize()/2)+0.25))
}
