// Package shape generates the meshes of the supported die families.
//
// Every family is stateless geometry parameterized by a die size and a
// subdivision resolution. The set of families is closed: Kind enumerates them
// and a static table maps each Kind to its formulas.
package shape

import (
	"errors"
	"fmt"
	"strings"

	"github.com/Faultbox/dicer/pkg/dice/constraint"
	"github.com/Faultbox/dicer/pkg/dice/mesh"
	"github.com/Faultbox/dicer/pkg/math"
)

// ErrUnknownKind indicates a shape name or value outside the supported set.
var ErrUnknownKind = errors.New("shape: unknown kind")

// Kind identifies a die family.
type Kind int

const (
	Tetrahedron Kind = iota
	Bipyramid
	Trapezohedron
)

// Kinds lists every supported family.
func Kinds() []Kind {
	return []Kind{Tetrahedron, Bipyramid, Trapezohedron}
}

// String returns the lowercase family name.
func (k Kind) String() string {
	if !k.Valid() {
		return fmt.Sprintf("kind(%d)", int(k))
	}
	return families[k].name()
}

// Valid reports whether k is a supported family.
func (k Kind) Valid() bool {
	return k >= 0 && int(k) < len(families)
}

// ParseKind resolves a family by name, case-insensitively.
func ParseKind(name string) (Kind, error) {
	for _, k := range Kinds() {
		if strings.EqualFold(name, k.String()) {
			return k, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownKind, name)
}

// MarshalText implements encoding.TextMarshaler.
func (k Kind) MarshalText() ([]byte, error) {
	if !k.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrUnknownKind, int(k))
	}
	return []byte(k.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (k *Kind) UnmarshalText(text []byte) error {
	parsed, err := ParseKind(string(text))
	if err != nil {
		return err
	}
	*k = parsed
	return nil
}

// Constraint returns the size constraint of the family.
func (k Kind) Constraint() constraint.Linear {
	return families[k].constraint()
}

// Placement locates the numeral of one geometric face in the side atlas.
type Placement struct {
	Number   int       `yaml:"number"`   // 1-based numeral printed on the face
	Position math.Vec2 `yaml:"position"` // atlas UV of the numeral center
	Rotation math.Vec3 `yaml:"rotation"` // Euler angles in degrees
	Scale    math.Vec2 `yaml:"scale"`
}

// family holds the closed-form formulas of one die family.
type family interface {
	name() string
	constraint() constraint.Linear
	vertexCount(d Die) int
	indexCount(d Die) int
	jobLength(d Die) int
	trianglesPerFace(d Die) int
	faceVertexOffset(d Die, face int) int
	mirrored(d Die, face int) bool
	execute(d Die, i int, m *mesh.Mesh)
	placement(d Die, face int) Placement
}

var families = [...]family{
	Tetrahedron:   tetrahedron{},
	Bipyramid:     bipyramid{},
	Trapezohedron: trapezohedron{},
}

// unitBounds encloses every family: all shapes are inscribed in the unit sphere.
var unitBounds = mesh.Bounds{
	Min: math.Vec3{X: -1, Y: -1, Z: -1},
	Max: math.Vec3{X: 1, Y: 1, Z: 1},
}
