// Package mesh holds the vertex and index buffers of a generated die and the
// subdivision routine every shape uses to fill them.
package mesh

import "github.com/Faultbox/dicer/pkg/math"

// Vertex represents a die mesh vertex with all attributes.
type Vertex struct {
	Position math.Vec3
	Normal   math.Vec3
	Tangent  math.Vec4 // W holds the handedness sign
	TexCoord math.Vec2
}

// Bounds holds the axis-aligned bounding box of the mesh.
type Bounds struct {
	Min math.Vec3
	Max math.Vec3
}

// Size returns the extent of the box along each axis.
func (b Bounds) Size() math.Vec3 {
	return b.Max.Sub(b.Min)
}

// Contains reports whether p lies inside the box, allowing eps of slack.
func (b Bounds) Contains(p math.Vec3, eps float32) bool {
	return p.X >= b.Min.X-eps && p.Y >= b.Min.Y-eps && p.Z >= b.Min.Z-eps &&
		p.X <= b.Max.X+eps && p.Y <= b.Max.Y+eps && p.Z <= b.Max.Z+eps
}

// Mesh holds the complete die mesh. Indices are grouped in triples, one per
// triangle. Buffers are sized up front and filled by index so that disjoint
// regions can be written concurrently.
type Mesh struct {
	Vertices []Vertex
	Indices  []uint32
	Bounds   Bounds
}

// New allocates a mesh with the given buffer sizes.
func New(vertexCount, indexCount int, bounds Bounds) *Mesh {
	return &Mesh{
		Vertices: make([]Vertex, vertexCount),
		Indices:  make([]uint32, indexCount),
		Bounds:   bounds,
	}
}

// SetVertex stores v at index i.
func (m *Mesh) SetVertex(i int, v Vertex) {
	m.Vertices[i] = v
}

// SetTriangle stores the triangle (a, b, c) at triangle slot i.
func (m *Mesh) SetTriangle(i int, a, b, c int) {
	m.Indices[3*i] = uint32(a)
	m.Indices[3*i+1] = uint32(b)
	m.Indices[3*i+2] = uint32(c)
}

// TriangleCount returns the number of triangles.
func (m *Mesh) TriangleCount() int {
	return len(m.Indices) / 3
}

// Triangle returns the vertex indices of triangle i.
func (m *Mesh) Triangle(i int) [3]uint32 {
	return [3]uint32{m.Indices[3*i], m.Indices[3*i+1], m.Indices[3*i+2]}
}

// Transform returns a copy of the mesh with positions transformed by t and
// normals and tangents rotated by its linear part.
func (m *Mesh) Transform(t math.Mat4) *Mesh {
	out := &Mesh{
		Vertices: make([]Vertex, len(m.Vertices)),
		Indices:  append([]uint32(nil), m.Indices...),
		Bounds: Bounds{
			Min: math.Vec3{X: 1e10, Y: 1e10, Z: 1e10},
			Max: math.Vec3{X: -1e10, Y: -1e10, Z: -1e10},
		},
	}

	for i, v := range m.Vertices {
		tangent := t.TransformDirection(v.Tangent.XYZ())
		v.Position = t.TransformVec3(v.Position)
		v.Normal = t.TransformDirection(v.Normal).Normalize()
		v.Tangent = math.Vec4{X: tangent.X, Y: tangent.Y, Z: tangent.Z, W: v.Tangent.W}
		out.Vertices[i] = v
		updateBounds(&out.Bounds, v.Position)
	}
	if len(m.Vertices) == 0 {
		out.Bounds = Bounds{}
	}

	return out
}

func updateBounds(b *Bounds, p math.Vec3) {
	if p.X < b.Min.X {
		b.Min.X = p.X
	}
	if p.Y < b.Min.Y {
		b.Min.Y = p.Y
	}
	if p.Z < b.Min.Z {
		b.Min.Z = p.Z
	}
	if p.X > b.Max.X {
		b.Max.X = p.X
	}
	if p.Y > b.Max.Y {
		b.Max.Y = p.Y
	}
	if p.Z > b.Max.Z {
		b.Max.Z = p.Z
	}
}
