package main

import (
	"fmt"
	"math/rand/v2"
	"os"
	"strings"

	"go.uber.org/zap"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"gopkg.in/yaml.v3"

	"github.com/Faultbox/dicer/internal/atlas"
	"github.com/Faultbox/dicer/internal/config"
	"github.com/Faultbox/dicer/internal/logger"
	"github.com/Faultbox/dicer/pkg/dice"
	"github.com/Faultbox/dicer/pkg/dice/mesh"
	"github.com/Faultbox/dicer/pkg/dice/shape"
	"github.com/Faultbox/dicer/pkg/math"
)

func cmdSizes(args []string) error {
	fs, flags := newFlagSet("sizes")
	n := fs.Int("n", 8, "Number of sizes per shape")
	if _, err := setup(fs, flags, args); err != nil {
		return err
	}

	for _, kind := range shape.Kinds() {
		c := kind.Constraint()

		sizes := make([]string, 0, *n)
		for seed := 0; seed < *n; seed++ {
			size, err := dice.ResolveSize(kind, seed)
			if err != nil {
				return err
			}
			sizes = append(sizes, fmt.Sprint(size))
			if c.A == 0 {
				break
			}
		}

		fmt.Printf("%-14s %dn+%d  repetition=%-5t multipliers=%v\n", kind, c.A, c.B, c.AllowRepetition, c.Multipliers())
		fmt.Printf("  %s\n", strings.Join(sizes, " "))
	}
	return nil
}

func cmdInfo(args []string) error {
	fs, flags := newFlagSet("info")
	showMetrics := fs.Bool("metrics", false, "Print collected metrics")
	cfg, err := setup(fs, flags, args)
	if err != nil {
		return err
	}

	stats := newStats(*showMetrics)
	d, elapsed, err := generate(cfg, stats.metrics)
	if err != nil {
		return err
	}
	defer stats.print()

	check := "ok"
	if err := mesh.Check(d.Mesh); err != nil {
		check = err.Error()
	}

	b := d.Mesh.Bounds
	fmt.Printf("Shape:      %s\n", d.Kind)
	fmt.Printf("Size:       %d (actual %d, scaling %d)\n", d.DieSize, d.ActualDieSize(), d.Scaling)
	fmt.Printf("Resolution: %d\n", d.Resolution)
	fmt.Printf("Jobs:       %d\n", d.JobLength())
	p := message.NewPrinter(language.English)
	p.Printf("Vertices:   %d\n", len(d.Mesh.Vertices))
	p.Printf("Triangles:  %d (%d per face)\n", d.Mesh.TriangleCount(), d.TrianglesPerFace())
	fmt.Printf("Bounds:     (%.2f, %.2f, %.2f) - (%.2f, %.2f, %.2f)\n", b.Min.X, b.Min.Y, b.Min.Z, b.Max.X, b.Max.Y, b.Max.Z)
	fmt.Printf("Check:      %s\n", check)
	fmt.Printf("Elapsed:    %s\n", elapsed)
	return nil
}

func cmdLayout(args []string) error {
	fs, flags := newFlagSet("layout")
	asYAML := fs.Bool("yaml", false, "Print the layout as YAML")
	cfg, err := setup(fs, flags, args)
	if err != nil {
		return err
	}

	placements, err := layout(cfg)
	if err != nil {
		return err
	}

	if *asYAML {
		enc := yaml.NewEncoder(os.Stdout)
		enc.SetIndent(2)
		if err := enc.Encode(placements); err != nil {
			return err
		}
		return enc.Close()
	}

	fmt.Printf("%-5s %-6s %-18s %-22s %s\n", "Face", "Number", "Position", "Rotation", "Scale")
	for face, p := range placements {
		fmt.Printf("%-5d %-6d (%.3f, %.3f)     (%4.0f, %4.0f, %4.0f)     (%.3f, %.3f)\n",
			face, p.Number, p.Position.X, p.Position.Y,
			p.Rotation.X, p.Rotation.Y, p.Rotation.Z, p.Scale.X, p.Scale.Y)
	}
	return nil
}

// layout returns the atlas placement of every geometric face.
func layout(cfg *config.Config) ([]shape.Placement, error) {
	d := shape.New(cfg.Die.Shape, cfg.Die.Size, cfg.Die.Resolution)
	if !d.Validate() {
		return nil, fmt.Errorf("%w: %s with %d sides", dice.ErrInvalidConfig, cfg.Die.Shape, cfg.Die.Size)
	}

	placements := make([]shape.Placement, d.ActualDieSize())
	for face := range placements {
		p, err := dice.UVLayout(cfg.Die.Shape, cfg.Die.Size, face)
		if err != nil {
			return nil, err
		}
		placements[face] = p
	}
	return placements, nil
}

func cmdAtlas(args []string) error {
	fs, flags := newFlagSet("atlas")
	output := fs.String("o", "atlas.png", "Output PNG path")
	size := fs.Int("px", 512, "Atlas width and height in pixels")
	cfg, err := setup(fs, flags, args)
	if err != nil {
		return err
	}
	if *size <= 0 {
		return fmt.Errorf("atlas size must be positive, got %d", *size)
	}

	placements, err := layout(cfg)
	if err != nil {
		return err
	}

	if err := atlas.WritePNG(*output, atlas.Render(placements, *size)); err != nil {
		return err
	}
	logger.Info("atlas written", zap.String("path", *output), zap.Int("faces", len(placements)))
	return nil
}

func cmdOrient(args []string) error {
	fs, flags := newFlagSet("orient")
	only := fs.Int("face", 0, "Show only this numeral (0 = all)")
	cfg, err := setup(fs, flags, args)
	if err != nil {
		return err
	}

	d, _, err := generate(cfg, nil)
	if err != nil {
		return err
	}

	o := cfg.Orientation
	first, last := 1, d.DieSize
	if *only != 0 {
		first, last = *only, *only
	}

	fmt.Printf("%-5s %-40s %s\n", "Face", "Rotation (x, y, z, w)", "Rolled")
	for face := first; face <= last; face++ {
		q, err := d.SideRotation(face, o.Top, o.Forward)
		if err != nil {
			return err
		}

		rolled := d.RolledSide(q, o.Forward)
		if rolled != face {
			logger.Warn("presented face does not roll back", zap.Int("face", face), zap.Int("rolled", rolled))
		}
		fmt.Printf("%-5d (%7.4f, %7.4f, %7.4f, %7.4f)     %d\n", face, q.X, q.Y, q.Z, q.W, rolled)
	}
	return nil
}

func cmdRoll(args []string) error {
	fs, flags := newFlagSet("roll")
	count := fs.Int("n", 0, "Number of rolls (0 = config roll.count)")
	seed := fs.Int64("seed", 0, "Random seed (0 = config roll.seed)")
	showMetrics := fs.Bool("metrics", false, "Print collected metrics")
	cfg, err := setup(fs, flags, args)
	if err != nil {
		return err
	}
	if *count > 0 {
		cfg.Roll.Count = *count
	}
	if *seed != 0 {
		cfg.Roll.Seed = *seed
	}

	stats := newStats(*showMetrics)
	d, _, err := generate(cfg, stats.metrics)
	if err != nil {
		return err
	}
	defer stats.print()

	histogram := rollHistogram(d, cfg.Roll.Count, cfg.Roll.Seed, cfg.Orientation.Observe)
	chi2 := chiSquared(histogram[1:], cfg.Roll.Count)

	p := message.NewPrinter(language.English)
	expected := float64(cfg.Roll.Count) / float64(d.DieSize)
	p.Printf("Rolls: %d  Seed: %d  Expected per face: %.1f\n\n", cfg.Roll.Count, cfg.Roll.Seed, expected)
	for face := 1; face <= d.DieSize; face++ {
		share := 0.0
		if cfg.Roll.Count > 0 {
			share = 100 * float64(histogram[face]) / float64(cfg.Roll.Count)
		}
		p.Printf("  %3d  %9d  %6.2f%%\n", face, histogram[face], share)
	}
	p.Printf("\nChi-squared: %.3f (%d degrees of freedom)\n", chi2, d.DieSize-1)
	return nil
}

// rollHistogram counts the rolled numerals over uniformly random rotations.
// Index 0 is unused.
func rollHistogram(d *dice.Die, count int, seed int64, observe math.Vec3) []int {
	rng := rand.New(rand.NewPCG(uint64(seed), uint64(seed)^0x9e3779b97f4a7c15))

	histogram := make([]int, d.DieSize+1)
	for i := 0; i < count; i++ {
		q := math.QuatFromUniform(rng.Float64(), rng.Float64(), rng.Float64())
		histogram[d.RolledSide(q, observe)]++
	}
	return histogram
}

// chiSquared returns Pearson's statistic of counts against a uniform distribution.
func chiSquared(counts []int, total int) float64 {
	if total == 0 || len(counts) == 0 {
		return 0
	}

	expected := float64(total) / float64(len(counts))
	var sum float64
	for _, c := range counts {
		diff := float64(c) - expected
		sum += diff * diff / expected
	}
	return sum
}
