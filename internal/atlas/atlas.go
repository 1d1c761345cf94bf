// Package atlas rasterizes a preview of the side-number atlas described by a
// die's UV layout.
package atlas

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	gomath "math"
	"os"
	"path/filepath"
	"strconv"

	xdraw "golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/f64"
	"golang.org/x/image/math/fixed"

	"github.com/Faultbox/dicer/pkg/dice/shape"
)

// glyphHeight is the numeral height, in atlas widths, at placement scale 1.
const glyphHeight = 0.15

var (
	background = color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
	ink        = color.RGBA{R: 0x10, G: 0x10, B: 0x10, A: 0xff}
)

// Render draws every placement's numeral onto a size×size image. UV (0,0) is
// the bottom-left corner, so v is flipped. Only the in-plane (Z) rotation is
// applied.
func Render(placements []shape.Placement, size int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, size, size))
	draw.Draw(img, img.Bounds(), image.NewUniform(background), image.Point{}, draw.Src)

	for _, p := range placements {
		glyph := numeral(p.Number)
		gw, gh := float64(glyph.Bounds().Dx()), float64(glyph.Bounds().Dy())

		scale := glyphHeight * float64(p.Scale.X) * float64(size) / gh
		theta := -float64(p.Rotation.Z) * gomath.Pi / 180
		sin, cos := gomath.Sincos(theta)

		cx := float64(p.Position.X) * float64(size)
		cy := (1 - float64(p.Position.Y)) * float64(size)

		a, b := scale*cos, -scale*sin
		d, e := scale*sin, scale*cos
		s2d := f64.Aff3{
			a, b, cx - (a*gw/2 + b*gh/2),
			d, e, cy - (d*gw/2 + e*gh/2),
		}
		xdraw.BiLinear.Transform(img, s2d, glyph, glyph.Bounds(), xdraw.Over, nil)
	}

	return img
}

// numeral renders n with the fixed 7×13 face on a transparent background.
func numeral(n int) *image.RGBA {
	text := strconv.Itoa(n)
	face := basicfont.Face7x13

	drawer := font.Drawer{Src: image.NewUniform(ink), Face: face}
	width := drawer.MeasureString(text).Ceil()
	height := face.Metrics().Height.Ceil()

	drawer.Dst = image.NewRGBA(image.Rect(0, 0, width, height))
	drawer.Dot = fixed.P(0, face.Metrics().Ascent.Ceil())
	drawer.DrawString(text)

	return drawer.Dst.(*image.RGBA)
}

// WritePNG encodes img to path, creating parent directories as needed.
func WritePNG(path string, img image.Image) error {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("creating output dir: %w", err)
		}
	}

	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating file: %w", err)
	}

	if err := png.Encode(file, img); err != nil {
		file.Close()
		return fmt.Errorf("encoding PNG: %w", err)
	}
	if err := file.Close(); err != nil {
		return fmt.Errorf("closing file: %w", err)
	}
	return nil
}
