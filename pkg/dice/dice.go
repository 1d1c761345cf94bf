// Package dice is the entry point for generating and reading procedural dice.
//
// Generate validates a request, builds the mesh by fanning its independent
// work items out over a bounded worker pool and returns a Die that answers
// orientation queries. The lower-level packages (constraint, mesh, shape,
// orient) can be used directly when the caller manages validation itself.
package dice

import (
	"context"
	"errors"
	"fmt"
	"runtime"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/Faultbox/dicer/pkg/dice/mesh"
	"github.com/Faultbox/dicer/pkg/dice/orient"
	"github.com/Faultbox/dicer/pkg/dice/shape"
	"github.com/Faultbox/dicer/pkg/math"
)

var (
	// ErrInvalidConfig indicates a size or resolution the shape cannot realize.
	ErrInvalidConfig = errors.New("dice: invalid configuration")
	// ErrUnknownShape indicates a shape kind outside the supported families.
	ErrUnknownShape = errors.New("dice: unknown shape")
	// ErrFaceOutOfRange indicates a face number the die does not have.
	ErrFaceOutOfRange = errors.New("dice: face out of range")
)

// Options tunes generation.
type Options struct {
	// Workers bounds the number of concurrently running work items.
	// Zero means runtime.GOMAXPROCS(0).
	Workers int
	// Logger receives debug records. Nil means no logging.
	Logger *zap.Logger
	// Metrics receives generation and roll statistics. Nil disables them.
	Metrics *Metrics
}

func (o Options) withDefaults() Options {
	if o.Workers <= 0 {
		o.Workers = runtime.GOMAXPROCS(0)
	}
	if o.Logger == nil {
		o.Logger = zap.NewNop()
	}
	return o
}

// Die is a generated die: its resolved parameters and its immutable mesh.
// All methods only read and are safe for concurrent use.
type Die struct {
	shape.Die
	Mesh *mesh.Mesh

	metrics *Metrics
}

func checkKind(kind shape.Kind) error {
	if !kind.Valid() {
		return fmt.Errorf("%w: %s", ErrUnknownShape, kind)
	}
	return nil
}

// Validate reports whether the shape can realize size numerals at resolution.
func Validate(kind shape.Kind, size, resolution int) bool {
	return shape.New(kind, size, resolution).Validate()
}

// ResolveSize returns the seed-th legal geometric size of the shape.
func ResolveSize(kind shape.Kind, seed int) (int, error) {
	if err := checkKind(kind); err != nil {
		return 0, err
	}
	if seed < 0 {
		return 0, fmt.Errorf("%w: negative seed %d", ErrInvalidConfig, seed)
	}
	return kind.Constraint().GetSize(seed), nil
}

// Generate builds the mesh of a die showing size numerals. Work items write
// disjoint buffer regions, so they run without locks; the mesh is returned
// only after all of them finish. A cancelled context abandons the build.
func Generate(ctx context.Context, kind shape.Kind, size, resolution int, opts Options) (*Die, error) {
	if err := checkKind(kind); err != nil {
		return nil, err
	}

	d := shape.New(kind, size, resolution)
	if !d.Validate() {
		return nil, fmt.Errorf("%w: %s with %d sides at resolution %d", ErrInvalidConfig, kind, size, resolution)
	}

	opts = opts.withDefaults()
	start := time.Now()

	m := mesh.New(d.VertexCount(), d.IndexCount(), d.Bounds())

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(opts.Workers)
	for i := 0; i < d.JobLength(); i++ {
		if gctx.Err() != nil {
			break
		}
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			d.Execute(i, m)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	elapsed := time.Since(start)
	opts.Metrics.recordGeneration(kind, m.TriangleCount(), elapsed)
	opts.Logger.Debug("generated die",
		zap.Stringer("shape", kind),
		zap.Int("size", size),
		zap.Int("actual_size", d.ActualDieSize()),
		zap.Int("resolution", resolution),
		zap.Int("jobs", d.JobLength()),
		zap.Int("workers", opts.Workers),
		zap.Int("vertices", len(m.Vertices)),
		zap.Int("triangles", m.TriangleCount()),
		zap.Duration("elapsed", elapsed),
	)

	return &Die{Die: d, Mesh: m, metrics: opts.Metrics}, nil
}

func (d *Die) checkLogical(face int) error {
	if face < 1 || face > d.DieSize {
		return fmt.Errorf("%w: %s has faces 1 to %d, got %d", ErrFaceOutOfRange, d.Kind, d.DieSize, face)
	}
	return nil
}

// SideRotation returns the rotation from identity that shows the 1-based
// numeral face towards forward with its top corner pointing at top.
func (d *Die) SideRotation(face int, top, forward math.Vec3) (math.Quat, error) {
	if err := d.checkLogical(face); err != nil {
		return math.Quat{}, err
	}
	return orient.SideRotation(d.Mesh, d.Die, face, top, forward), nil
}

// RolledSide returns the 1-based numeral facing observe once the die is
// rotated by rotation.
func (d *Die) RolledSide(rotation math.Quat, observe math.Vec3) int {
	side := orient.RolledSide(d.Mesh, d.Die, rotation, observe)
	d.metrics.recordRoll(d.Kind, side)
	return side
}

// Rotated returns a copy of the mesh with rotation applied to every vertex.
func (d *Die) Rotated(rotation math.Quat) *mesh.Mesh {
	return d.Mesh.Transform(rotation.ToMat4())
}

// UVLayout returns the atlas placement of a 0-based geometric face.
func (d *Die) UVLayout(face int) (shape.Placement, error) {
	return UVLayout(d.Kind, d.DieSize, face)
}

// UVLayout returns the atlas placement of a 0-based geometric face of a die
// showing size numerals. Placements do not depend on the resolution.
func UVLayout(kind shape.Kind, size, face int) (shape.Placement, error) {
	if err := checkKind(kind); err != nil {
		return shape.Placement{}, err
	}

	d := shape.New(kind, size, 1)
	if !d.Validate() {
		return shape.Placement{}, fmt.Errorf("%w: %s with %d sides", ErrInvalidConfig, kind, size)
	}
	if face < 0 || face >= d.ActualDieSize() {
		return shape.Placement{}, fmt.Errorf("%w: %s has geometric faces 0 to %d, got %d",
			ErrFaceOutOfRange, kind, d.ActualDieSize()-1, face)
	}
	return d.Placement(face), nil
}
