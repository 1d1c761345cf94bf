package dice

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
	"pgregory.net/rapid"

	"github.com/Faultbox/dicer/pkg/dice/mesh"
	"github.com/Faultbox/dicer/pkg/dice/orient"
	"github.com/Faultbox/dicer/pkg/dice/shape"
	"github.com/Faultbox/dicer/pkg/math"
)

func TestGenerate(t *testing.T) {
	tests := []struct {
		kind       shape.Kind
		size       int
		resolution int
		vertices   int
		triangles  int
	}{
		{shape.Tetrahedron, 4, 1, 12, 4},
		{shape.Tetrahedron, 4, 2, 24, 16},
		{shape.Bipyramid, 8, 1, 24, 8},
		{shape.Bipyramid, 4, 1, 24, 8},
		{shape.Trapezohedron, 10, 1, 60, 20},
		{shape.Trapezohedron, 10, 3, 200, 180},
	}

	for _, tt := range tests {
		t.Run(tt.kind.String(), func(t *testing.T) {
			d, err := Generate(context.Background(), tt.kind, tt.size, tt.resolution, Options{})
			require.NoError(t, err)

			assert.Len(t, d.Mesh.Vertices, tt.vertices)
			assert.Equal(t, tt.triangles, d.Mesh.TriangleCount())
			assert.NoError(t, mesh.Check(d.Mesh))
		})
	}
}

func TestGenerateErrors(t *testing.T) {
	ctx := context.Background()

	_, err := Generate(ctx, shape.Tetrahedron, 6, 1, Options{})
	assert.ErrorIs(t, err, ErrInvalidConfig)

	_, err = Generate(ctx, shape.Bipyramid, 8, 0, Options{})
	assert.ErrorIs(t, err, ErrInvalidConfig)

	_, err = Generate(ctx, shape.Kind(5), 8, 1, Options{})
	assert.ErrorIs(t, err, ErrUnknownShape)
}

func TestGenerateCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	d, err := Generate(ctx, shape.Trapezohedron, 22, 4, Options{Workers: 2})
	assert.ErrorIs(t, err, context.Canceled)
	assert.Nil(t, d)
}

func TestGenerateIsDeterministic(t *testing.T) {
	ctx := context.Background()

	serial, err := Generate(ctx, shape.Trapezohedron, 14, 4, Options{Workers: 1})
	require.NoError(t, err)

	for _, workers := range []int{0, 2, 16} {
		parallel, err := Generate(ctx, shape.Trapezohedron, 14, 4, Options{Workers: workers})
		require.NoError(t, err)
		assert.Equal(t, serial.Mesh, parallel.Mesh, "workers=%d", workers)
	}
}

func TestGenerateLogs(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)

	_, err := Generate(context.Background(), shape.Bipyramid, 6, 2, Options{Logger: zap.New(core)})
	require.NoError(t, err)

	entries := logs.FilterMessage("generated die").All()
	require.Len(t, entries, 1)

	fields := entries[0].ContextMap()
	assert.Equal(t, "bipyramid", fields["shape"])
	assert.Equal(t, int64(6), fields["size"])
	assert.Equal(t, int64(12), fields["actual_size"])
	assert.Equal(t, int64(6), fields["jobs"])
}

func TestResolveSize(t *testing.T) {
	size, err := ResolveSize(shape.Trapezohedron, 1)
	require.NoError(t, err)
	assert.Equal(t, 10, size)

	size, err = ResolveSize(shape.Tetrahedron, 7)
	require.NoError(t, err)
	assert.Equal(t, 4, size)

	_, err = ResolveSize(shape.Bipyramid, -1)
	assert.ErrorIs(t, err, ErrInvalidConfig)

	_, err = ResolveSize(shape.Kind(-1), 0)
	assert.ErrorIs(t, err, ErrUnknownShape)
}

func TestResolvedSizesAreValid(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		kind := rapid.SampledFrom(shape.Kinds()).Draw(t, "kind")
		seed := rapid.IntRange(0, 200).Draw(t, "seed")
		resolution := rapid.IntRange(1, 16).Draw(t, "resolution")

		size, err := ResolveSize(kind, seed)
		if err != nil {
			t.Fatalf("ResolveSize: %v", err)
		}
		if !Validate(kind, size, resolution) {
			t.Fatalf("%s size %d resolution %d should be valid", kind, size, resolution)
		}
		if Validate(kind, size, 0) {
			t.Fatalf("%s size %d resolution 0 should be invalid", kind, size)
		}
	})
}

func TestGeneratedMeshIntegrity(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		kind := rapid.SampledFrom(shape.Kinds()).Draw(t, "kind")
		size := rapid.IntRange(1, 24).Draw(t, "size")
		resolution := rapid.IntRange(1, 5).Draw(t, "resolution")

		d, err := Generate(context.Background(), kind, size, resolution, Options{Workers: 3})
		if !Validate(kind, size, resolution) {
			if err == nil {
				t.Fatalf("expected an error for %s size %d", kind, size)
			}
			return
		}
		if err != nil {
			t.Fatalf("Generate: %v", err)
		}

		if len(d.Mesh.Vertices) != d.VertexCount() {
			t.Fatalf("got %d vertices, want %d", len(d.Mesh.Vertices), d.VertexCount())
		}
		if len(d.Mesh.Indices) != d.IndexCount() {
			t.Fatalf("got %d indices, want %d", len(d.Mesh.Indices), d.IndexCount())
		}
		if err := mesh.Check(d.Mesh); err != nil {
			t.Fatal(err)
		}
	})
}

// TestPresentAndRoll observes the same direction each face was presented to.
func TestPresentAndRoll(t *testing.T) {
	d, err := Generate(context.Background(), shape.Bipyramid, 8, 1, Options{})
	require.NoError(t, err)

	for face := 1; face <= 8; face++ {
		q, err := d.SideRotation(face, math.Up, math.Forward)
		require.NoError(t, err)
		assert.Equal(t, face, d.RolledSide(q, math.Forward))

		q, err = d.SideRotation(face, math.Forward, math.Up)
		require.NoError(t, err)
		assert.Equal(t, face, d.RolledSide(q, math.Up))
	}

	_, err = d.SideRotation(0, math.Up, math.Forward)
	assert.ErrorIs(t, err, ErrFaceOutOfRange)
	_, err = d.SideRotation(9, math.Up, math.Forward)
	assert.ErrorIs(t, err, ErrFaceOutOfRange)
}

func TestRotatedMeshPresentsFace(t *testing.T) {
	d, err := Generate(context.Background(), shape.Trapezohedron, 10, 2, Options{})
	require.NoError(t, err)

	q, err := d.SideRotation(7, math.Up, math.Back)
	require.NoError(t, err)

	rotated := d.Rotated(q)
	require.NoError(t, mesh.Check(rotated))

	centroid := orient.FaceCentroid(rotated, d.Die, d.GeometricFace(7)).Normalize()
	assert.InDelta(t, 1, centroid.Dot(math.Back), 1e-4)
	assert.Equal(t, 7, orient.RolledSide(rotated, d.Die, math.QuatIdentity(), math.Back))
}

func TestUVLayout(t *testing.T) {
	p, err := UVLayout(shape.Trapezohedron, 5, 7)
	require.NoError(t, err)
	assert.Equal(t, 3, p.Number)

	d, err := Generate(context.Background(), shape.Trapezohedron, 5, 2, Options{})
	require.NoError(t, err)
	fromDie, err := d.UVLayout(7)
	require.NoError(t, err)
	assert.Equal(t, p, fromDie)

	_, err = UVLayout(shape.Trapezohedron, 5, 10)
	assert.ErrorIs(t, err, ErrFaceOutOfRange)
	_, err = UVLayout(shape.Trapezohedron, 8, 0)
	assert.ErrorIs(t, err, ErrInvalidConfig)
	_, err = UVLayout(shape.Kind(3), 8, 0)
	assert.ErrorIs(t, err, ErrUnknownShape)
}
