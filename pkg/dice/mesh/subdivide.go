package mesh

// Corner is a triangle corner together with the buffer index it occupies.
type Corner struct {
	Vertex
	Index int
}

// VerticesPerTriangle returns how many vertices FitTriangle writes for one
// triangle at the given resolution, corners included.
func VerticesPerTriangle(resolution int) int {
	return (resolution + 1) * (resolution + 2) / 2
}

// TrianglesPerTriangle returns how many triangles FitTriangle writes.
func TrianglesPerTriangle(resolution int) int {
	return resolution * resolution
}

// vertexLevel is the number of grid vertices above row level.
func vertexLevel(level int) int {
	return level * (level + 1) / 2
}

// FitTriangle subdivides the triangle (left, top, right) into
// resolution² triangles and writes the result into m.
//
// Rows run from top (row 0) down to the left-right edge (row resolution);
// row L holds L+1 vertices. The three corners are written at the indices they
// carry. Interior vertices take consecutive indices starting right after the
// highest corner index, and triangles are written from triangleOffset on.
func FitTriangle(m *Mesh, left, top, right Corner, resolution, triangleOffset int) {
	interiorStart := max(left.Index, top.Index, right.Index) + 1
	lastRow := vertexLevel(resolution)
	rightGrid := vertexLevel(resolution+1) - 1

	// bufferIndex maps a row-major grid position to its buffer index.
	bufferIndex := func(grid int) int {
		switch {
		case grid == 0:
			return top.Index
		case grid == lastRow:
			return left.Index
		case grid == rightGrid:
			return right.Index
		case grid > lastRow:
			return interiorStart + grid - 2
		default:
			return interiorStart + grid - 1
		}
	}

	r := float32(resolution)
	triangle := triangleOffset

	for level := 0; level <= resolution; level++ {
		t := float32(level) / r

		rowLeft := top.Vertex.Position.Lerp(left.Vertex.Position, t)
		rowRight := top.Vertex.Position.Lerp(right.Vertex.Position, t)
		texLeft := top.TexCoord.Lerp(left.TexCoord, t)
		texRight := top.TexCoord.Lerp(right.TexCoord, t)
		tanLeft := top.Tangent.Lerp(left.Tangent, t)
		tanRight := top.Tangent.Lerp(right.Tangent, t)

		for v := 0; v <= level; v++ {
			grid := vertexLevel(level) + v

			var vertex Vertex
			switch {
			case level == 0:
				vertex = top.Vertex
			case level == resolution && v == 0:
				vertex = left.Vertex
			case level == resolution && v == level:
				vertex = right.Vertex
			default:
				s := float32(v) / float32(level)
				vertex.Position = rowLeft.Lerp(rowRight, s)
				vertex.Normal = vertex.Position.Normalize()
				vertex.TexCoord = texLeft.Lerp(texRight, s)
				vertex.Tangent = tanLeft.Lerp(tanRight, s)
			}
			m.SetVertex(bufferIndex(grid), vertex)

			if v == 0 {
				continue
			}

			// Upright triangle below the previous row
			m.SetTriangle(triangle,
				bufferIndex(grid),
				bufferIndex(grid-level-1),
				bufferIndex(grid-1),
			)
			triangle++

			if v < level {
				// Inverted triangle between this row and the previous one
				m.SetTriangle(triangle,
					bufferIndex(grid),
					bufferIndex(grid-level),
					bufferIndex(grid-level-1),
				)
				triangle++
			}
		}
	}
}
