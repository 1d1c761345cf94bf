package shape

import (
	gomath "math"

	"github.com/Faultbox/dicer/pkg/dice/constraint"
	"github.com/Faultbox/dicer/pkg/dice/mesh"
	"github.com/Faultbox/dicer/pkg/math"
)

// trapezohedron has 2k kite faces. The upper ring sits at +h, the lower ring
// at -h rotated by half a step, so each kite spans apex, two upper ring points
// and the lower ring point between them. A kite is a main triangle (apex side,
// carries the numeral) plus a secondary one.
type trapezohedron struct{}

// ringHeight places both rings so that every kite is planar.
func (trapezohedron) ringHeight(k int) float32 {
	c := gomath.Cos(gomath.Pi / float64(k))
	return float32((1 - c) / (1 + c))
}

// noNumeral marks the secondary triangles, which print nothing.
var noNumeral = math.Vec2{X: -1, Y: -1}

func (trapezohedron) name() string { return "trapezohedron" }

func (trapezohedron) constraint() constraint.Linear { return constraint.NewLinear(4, 6, true) }

func (trapezohedron) vertexCount(d Die) int {
	return d.ActualDieSize() * 2 * mesh.VerticesPerTriangle(d.Resolution)
}

func (trapezohedron) indexCount(d Die) int {
	return 6 * d.ActualDieSize() * mesh.TrianglesPerTriangle(d.Resolution)
}

func (trapezohedron) jobLength(d Die) int { return d.ActualDieSize() / 2 }

func (trapezohedron) trianglesPerFace(d Die) int {
	return 2 * mesh.TrianglesPerTriangle(d.Resolution)
}

func (trapezohedron) faceVertexOffset(d Die, face int) int {
	return face * 2 * mesh.VerticesPerTriangle(d.Resolution)
}

func (trapezohedron) mirrored(d Die, face int) bool { return face >= d.ActualDieSize()/2 }

func (t trapezohedron) execute(d Die, i int, m *mesh.Mesh) {
	actual := d.ActualDieSize()
	k := actual / 2
	step := 2 * gomath.Pi / float64(k)
	shift := step / 2
	h := t.ringHeight(k)

	perTriangle := mesh.VerticesPerTriangle(d.Resolution)
	trianglesPerTriangle := mesh.TrianglesPerTriangle(d.Resolution)
	half := t.vertexCount(d) / 2

	mainVertexOffset := i * 2 * perTriangle
	secondaryVertexOffset := mainVertexOffset + perTriangle
	inverseMainVertexOffset := half + mainVertexOffset
	inverseSecondaryVertexOffset := half + secondaryVertexOffset

	triangleOffset := 2 * i * trianglesPerTriangle
	inverseTriangleOffset := 2 * (k + i) * trianglesPerTriangle

	textureOffset := 2 * i
	inverseTextureOffset := 2*actual - textureOffset + 1

	upper := ringPoint(step*float64(i), h)
	upperNext := ringPoint(step*float64(i+1), h)
	upperTangent := ringTangent(step * float64(i))
	upperNextTangent := ringTangent(step * float64(i+1))

	lower := ringPoint(step*float64(i)-shift, -h)
	lowerNext := ringPoint(step*float64(i+1)-shift, -h)
	lowerTangent := ringTangent(step*float64(i) - shift)
	lowerNextTangent := ringTangent(step*float64(i+1) - shift)

	// Upper kite, main triangle
	mesh.FitTriangle(m,
		newCorner(upperNext, upperNextTangent, stripTexCoord(actual, textureOffset+2), mainVertexOffset+2),
		newCorner(math.Up, apexTangent(true), stripTexCoord(actual, textureOffset+1), mainVertexOffset+1),
		newCorner(upper, upperTangent, stripTexCoord(actual, textureOffset), mainVertexOffset),
		d.Resolution, triangleOffset,
	)

	// Lower kite, main triangle
	mesh.FitTriangle(m,
		newCorner(lower, lowerTangent, stripTexCoord(actual, inverseTextureOffset), inverseMainVertexOffset),
		newCorner(math.Down, apexTangent(false), stripTexCoord(actual, inverseTextureOffset-1), inverseMainVertexOffset+1),
		newCorner(lowerNext, lowerNextTangent, stripTexCoord(actual, inverseTextureOffset-2), inverseMainVertexOffset+2),
		d.Resolution, inverseTriangleOffset,
	)

	// Upper kite, secondary triangle reaching down to the lower ring
	mesh.FitTriangle(m,
		newCorner(upper, upperTangent, noNumeral, secondaryVertexOffset),
		newCorner(lowerNext, lowerNextTangent, noNumeral, secondaryVertexOffset+1),
		newCorner(upperNext, upperNextTangent, noNumeral, secondaryVertexOffset+2),
		d.Resolution, triangleOffset+trianglesPerTriangle,
	)

	// Lower kite, secondary triangle reaching up to the upper ring
	mesh.FitTriangle(m,
		newCorner(lowerNext, lowerNextTangent, noNumeral, inverseSecondaryVertexOffset+2),
		newCorner(upper, upperTangent, noNumeral, inverseSecondaryVertexOffset+1),
		newCorner(lower, lowerTangent, noNumeral, inverseSecondaryVertexOffset),
		d.Resolution, inverseTriangleOffset+trianglesPerTriangle,
	)
}

func (trapezohedron) placement(d Die, face int) Placement {
	return stripPlacement(d, face, 3/(float32(d.ActualDieSize()/2)+0.5))
}
