package shape

import (
	gomath "math"

	"github.com/Faultbox/dicer/pkg/dice/mesh"
	"github.com/Faultbox/dicer/pkg/math"
)

// apexTangent is the tangent used at the poles, where the ring tangent is undefined.
func apexTangent(up bool) math.Vec4 {
	if up {
		return math.Vec4{Z: 1, W: -1}
	}
	return math.Vec4{Z: -1, W: -1}
}

// ringPoint returns the point at angle (radians) on a horizontal unit ring at height y.
func ringPoint(angle float64, y float32) math.Vec3 {
	return math.Vec3{
		X: float32(-gomath.Sin(angle)),
		Y: y,
		Z: float32(gomath.Cos(angle)),
	}
}

// ringTangent returns the tangent of the ring at angle, pointing along the
// direction of increasing angle.
func ringTangent(angle float64) math.Vec4 {
	a := angle + gomath.Pi/2
	return math.Vec4{
		X: float32(-gomath.Sin(a)),
		Z: float32(gomath.Cos(a)),
		W: -1,
	}
}

func newCorner(p math.Vec3, tangent math.Vec4, uv math.Vec2, index int) mesh.Corner {
	return mesh.Corner{
		Vertex: mesh.Vertex{
			Position: p,
			Normal:   p.Normalize(),
			Tangent:  tangent,
			TexCoord: uv,
		},
		Index: index,
	}
}

// stripTexCoord returns the i-th point of the zig-zag strip the pyramid
// families unwrap onto: even points on the u=1 edge, odd points on u=0.
func stripTexCoord(actual, i int) math.Vec2 {
	if i > actual {
		i -= actual
	}

	denom := float32(actual + 1)
	if i%2 == 0 {
		return math.Vec2{X: 1, Y: 1 - float32(i)/denom}
	}
	return math.Vec2{X: 0, Y: float32(actual+1-i) / denom}
}

// stripPlacement places numerals of the pyramid families: upper faces run
// down the right column, lower faces up the left one.
func stripPlacement(d Die, face int, size float32) Placement {
	actual := d.ActualDieSize()
	half := actual / 2
	offset := float32(2*(face%half)+1) / float32(actual+1)

	p := Placement{
		Number: d.LogicalFace(face),
		Scale:  math.Vec2{X: size, Y: 2 * size},
	}
	if face < half {
		p.Position = math.Vec2{X: 2.0 / 3, Y: 1 - offset}
		p.Rotation = math.Vec3{X: 180, Y: 0, Z: 90}
	} else {
		p.Position = math.Vec2{X: 1.0 / 3, Y: offset}
		p.Rotation = math.Vec3{X: 180, Y: 180, Z: -90}
	}
	return p
}
