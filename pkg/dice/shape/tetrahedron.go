package shape

import (
	"fmt"
	gomath "math"

	"github.com/Faultbox/dicer/pkg/dice/constraint"
	"github.com/Faultbox/dicer/pkg/dice/mesh"
	"github.com/Faultbox/dicer/pkg/math"
)

// tetrahedron is the regular four-sided die inscribed in the unit sphere.
// Every face owns its own three corners so each side keeps its own UVs.
type tetrahedron struct{}

var (
	sqrt2over9 = float32(gomath.Sqrt(2.0 / 9))
	sqrt2over3 = float32(gomath.Sqrt(2.0 / 3))
	sqrt8over9 = float32(gomath.Sqrt(8.0 / 9))
	sqrt3over4 = float32(gomath.Sqrt(3) / 4)
)

// tetraSide lists the corner indices of a face.
type tetraSide struct {
	top, left, right int
}

var tetraSides = [4]tetraSide{
	{top: 0, left: 1, right: 2},
	{top: 0, left: 3, right: 1},
	{top: 0, left: 2, right: 3},
	{top: 3, left: 2, right: 1},
}

// tetraTexSide is a face of the triangular unwrap: the three outer triangles
// share the top point, the last one points down.
type tetraTexSide struct {
	top, left, right math.Vec2
}

var tetraTexSides = [4]tetraTexSide{
	{top: math.Vec2{X: 0.5, Y: 0.5 + sqrt3over4}, left: math.Vec2{X: 0.25, Y: 0.5}, right: math.Vec2{X: 0.75, Y: 0.5}},
	{top: math.Vec2{X: 0.5, Y: 0.5 + sqrt3over4}, left: math.Vec2{X: 0, Y: 0.5 + sqrt3over4}, right: math.Vec2{X: 0.25, Y: 0.5}},
	{top: math.Vec2{X: 0.5, Y: 0.5 + sqrt3over4}, left: math.Vec2{X: 0.75, Y: 0.5}, right: math.Vec2{X: 1, Y: 0.5 + sqrt3over4}},
	{top: math.Vec2{X: 0.5, Y: 0.5 - sqrt3over4}, left: math.Vec2{X: 0.75, Y: 0.5}, right: math.Vec2{X: 0.25, Y: 0.5}},
}

var tetraNumberAngles = [4]math.Vec3{
	{X: 0, Y: 180, Z: 0},
	{X: 180, Y: 0, Z: -120},
	{X: 180, Y: 0, Z: 120},
	{X: 180, Y: 180, Z: -120},
}

func tetraCorner(index int) math.Vec3 {
	switch index {
	case 0:
		return math.Vec3{X: -sqrt2over9, Y: sqrt2over3, Z: -1.0 / 3}
	case 1:
		return math.Vec3{X: -sqrt2over9, Y: -sqrt2over3, Z: -1.0 / 3}
	case 2:
		return math.Vec3{X: 0, Y: 0, Z: 1}
	case 3:
		return math.Vec3{X: sqrt8over9, Y: 0, Z: -1.0 / 3}
	default:
		panic(fmt.Sprintf("tetrahedron has only four corners, indexed from 0 to 3. Received: %d", index))
	}
}

func tetraFace(side int) (tetraSide, tetraTexSide) {
	if side < 0 || side >= len(tetraSides) {
		panic(fmt.Sprintf("tetrahedron has only four sides, indexed from 0 to 3. Received: %d", side))
	}
	return tetraSides[side], tetraTexSides[side]
}

// tetraTangent points along the face, perpendicular to the plane through
// the origin, the face's top corner and p.
func tetraTangent(top, p math.Vec3) math.Vec4 {
	xz := top.Cross(p).Normalize().XZ()
	return math.Vec4{X: xz.X, Z: xz.Y, W: -1}
}

func (tetrahedron) name() string { return "tetrahedron" }

func (tetrahedron) constraint() constraint.Linear { return constraint.NewLinear(0, 4, false) }

func (tetrahedron) vertexCount(d Die) int {
	return 4 * mesh.VerticesPerTriangle(d.Resolution)
}

func (tetrahedron) indexCount(d Die) int {
	return 3 * 4 * mesh.TrianglesPerTriangle(d.Resolution)
}

func (tetrahedron) jobLength(d Die) int { return d.ActualDieSize() }

func (tetrahedron) trianglesPerFace(d Die) int { return mesh.TrianglesPerTriangle(d.Resolution) }

func (tetrahedron) faceVertexOffset(d Die, face int) int {
	return face * mesh.VerticesPerTriangle(d.Resolution)
}

func (tetrahedron) mirrored(Die, int) bool { return false }

func (tetrahedron) execute(d Die, i int, m *mesh.Mesh) {
	vertexOffset := i * mesh.VerticesPerTriangle(d.Resolution)
	triangleOffset := i * mesh.TrianglesPerTriangle(d.Resolution)

	side, tex := tetraFace(i)
	top := tetraCorner(side.top)
	left := tetraCorner(side.left)
	right := tetraCorner(side.right)

	mesh.FitTriangle(m,
		newCorner(left, tetraTangent(top, left), tex.left, vertexOffset),
		newCorner(top, tetraTangent(top, top), tex.top, vertexOffset+1),
		newCorner(right, tetraTangent(top, right), tex.right, vertexOffset+2),
		d.Resolution, triangleOffset,
	)
}

func (tetrahedron) placement(d Die, face int) Placement {
	_, tex := tetraFace(face)
	return Placement{
		Number:   d.LogicalFace(face),
		Position: tex.top.Add(tex.left).Add(tex.right).Scale(1.0 / 3),
		Rotation: tetraNumberAngles[face],
		Scale:    math.Vec2{X: 0.5, Y: 0.5},
	}
}
