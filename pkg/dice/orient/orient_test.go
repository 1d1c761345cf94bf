package orient

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"
	"pgregory.net/rapid"

	"github.com/Faultbox/dicer/pkg/dice/mesh"
	"github.com/Faultbox/dicer/pkg/dice/shape"
	"github.com/Faultbox/dicer/pkg/math"
)

func generate(t testing.TB, d shape.Die) *mesh.Mesh {
	t.Helper()
	require.True(t, d.Validate(), "invalid die %+v", d)

	m := mesh.New(d.VertexCount(), d.IndexCount(), d.Bounds())
	for i := 0; i < d.JobLength(); i++ {
		d.Execute(i, m)
	}
	return m
}

func testDice() []shape.Die {
	return []shape.Die{
		shape.New(shape.Tetrahedron, 4, 1),
		shape.New(shape.Tetrahedron, 4, 3),
		shape.New(shape.Bipyramid, 8, 1),
		shape.New(shape.Bipyramid, 12, 2),
		shape.New(shape.Bipyramid, 4, 1),
		shape.New(shape.Trapezohedron, 10, 1),
		shape.New(shape.Trapezohedron, 6, 3),
		shape.New(shape.Trapezohedron, 3, 2),
	}
}

func TestPresentedSideIsRolled(t *testing.T) {
	d := shape.New(shape.Bipyramid, 8, 1)
	m := generate(t, d)

	q := SideRotation(m, d, 1, math.Up, math.Forward)
	assert.Equal(t, 1, RolledSide(m, d, q, math.Forward))

	q = SideRotation(m, d, 1, math.Forward, math.Up)
	assert.Equal(t, 1, RolledSide(m, d, q, math.Up))
}

func TestSideRotationEveryFace(t *testing.T) {
	for _, d := range testDice() {
		m := generate(t, d)

		for logical := 1; logical <= d.DieSize; logical++ {
			q := SideRotation(m, d, logical, math.Up, math.Back)

			centroid := q.Rotate(FaceCentroid(m, d, logical-1)).Normalize()
			assert.InDelta(t, 1, centroid.Dot(math.Back), 1e-4, "%s %d face %d", d.Kind, d.DieSize, logical)
			assert.Equal(t, logical, RolledSide(m, d, q, math.Back), "%s %d face %d", d.Kind, d.DieSize, logical)
		}
	}
}

func TestSideRotationAlignsTopCorner(t *testing.T) {
	for _, d := range testDice() {
		m := generate(t, d)

		for logical := 1; logical <= d.DieSize; logical++ {
			face := d.GeometricFace(logical)
			q := SideRotation(m, d, logical, math.Up, math.Back)

			centroid := FaceCentroid(m, d, face)
			corner := m.Vertices[d.FaceVertexOffset(face)+1].Position
			dir := q.Rotate(corner.Sub(centroid)).ProjectOnPlane(math.Back).Normalize()

			want := float32(1)
			if d.Mirrored(face) {
				want = -1
			}
			assert.InDelta(t, want, dir.Dot(math.Up), 1e-3, "%s %d face %d", d.Kind, d.DieSize, logical)
		}
	}
}

func TestRolledSideOwnCentroid(t *testing.T) {
	for _, d := range testDice() {
		m := generate(t, d)

		for face, centroid := range Centroids(m, d) {
			got := RolledSide(m, d, math.QuatIdentity(), centroid)
			assert.Equal(t, d.LogicalFace(face), got, "%s %d face %d", d.Kind, d.DieSize, face)
		}
	}
}

func TestRolledSideRepetition(t *testing.T) {
	d := shape.New(shape.Trapezohedron, 3, 1)
	m := generate(t, d)
	require.Equal(t, 6, d.ActualDieSize())

	seen := map[int]bool{}
	for _, centroid := range Centroids(m, d) {
		side := RolledSide(m, d, math.QuatIdentity(), centroid)
		assert.True(t, side >= 1 && side <= 3, "side %d", side)
		seen[side] = true
	}
	assert.Len(t, seen, 3)
}

func TestCentroidIndependentOfResolution(t *testing.T) {
	for _, k := range shape.Kinds() {
		size := k.Constraint().GetSize(1)
		coarse := shape.New(k, size, 1)
		fine := shape.New(k, size, 4)

		coarseMesh := generate(t, coarse)
		fineMesh := generate(t, fine)
		for face := 0; face < coarse.ActualDieSize(); face++ {
			a := FaceCentroid(coarseMesh, coarse, face)
			b := FaceCentroid(fineMesh, fine, face)
			assert.True(t, a.ApproxEqual(b, 1e-4), "%s face %d: %v != %v", k, face, a, b)
		}
	}
}

func TestSideRotationOutOfRangePanics(t *testing.T) {
	d := shape.New(shape.Tetrahedron, 4, 1)
	m := generate(t, d)

	assert.PanicsWithValue(t, "tetrahedron has 4 sides, numbered from 1 to 4. Received: 0",
		func() { SideRotation(m, d, 0, math.Up, math.Forward) })
	assert.PanicsWithValue(t, "tetrahedron has 4 sides, numbered from 1 to 4. Received: 5",
		func() { SideRotation(m, d, 5, math.Up, math.Forward) })
	assert.PanicsWithValue(t, "tetrahedron has 4 sides, indexed from 0 to 3. Received: -1",
		func() { FaceCentroid(m, d, -1) })
}

func TestSideRotationRejectsPackedNumeral(t *testing.T) {
	d := shape.New(shape.Trapezohedron, 3, 1)
	m := generate(t, d)
	require.Equal(t, 6, d.ActualDieSize())

	assert.PanicsWithValue(t, "trapezohedron has 3 sides, numbered from 1 to 3. Received: 5",
		func() { SideRotation(m, d, 5, math.Up, math.Forward) })
	assert.NotPanics(t, func() { FaceCentroid(m, d, 5) })
}

func TestRolledSideIsHighestFace(t *testing.T) {
	dice := testDice()
	meshes := make([]*mesh.Mesh, len(dice))
	for i, d := range dice {
		meshes[i] = generate(t, d)
	}

	rapid.Check(t, func(t *rapid.T) {
		i := rapid.IntRange(0, len(dice)-1).Draw(t, "die")
		q := math.QuatFromUniform(
			rapid.Float64Range(0, 1).Draw(t, "u1"),
			rapid.Float64Range(0, 1).Draw(t, "u2"),
			rapid.Float64Range(0, 1).Draw(t, "u3"),
		)

		d, m := dice[i], meshes[i]
		side := RolledSide(m, d, q, math.Up)
		if side < 1 || side > d.DieSize {
			t.Fatalf("side %d outside 1..%d", side, d.DieSize)
		}

		// No face points higher than the best face carrying the rolled numeral.
		var best, overall float32 = -2, -2
		for face, centroid := range Centroids(m, d) {
			y := q.Rotate(centroid).Normalize().Y
			overall = max(overall, y)
			if d.LogicalFace(face) == side {
				best = max(best, y)
			}
		}
		if overall > best+1e-6 {
			t.Fatalf("rolled side %d reaches y=%f, another face reaches y=%f", side, best, overall)
		}
	})
}

func TestConcurrentQueries(t *testing.T) {
	d := shape.New(shape.Trapezohedron, 10, 2)
	m := generate(t, d)

	g, _ := errgroup.WithContext(context.Background())
	results := make([]int, 32)
	for i := range results {
		g.Go(func() error {
			logical := i%d.DieSize + 1
			q := SideRotation(m, d, logical, math.Up, math.Forward)
			results[i] = RolledSide(m, d, q, math.Forward)
			return nil
		})
	}
	require.NoError(t, g.Wait())

	for i, got := range results {
		assert.Equal(t, i%d.DieSize+1, got)
	}
}
