package config

import (
	"flag"

	"github.com/Faultbox/dicer/pkg/dice/shape"
)

// Flags holds the command-line overrides shared by every dicetool command.
// Zero values mean "not set".
type Flags struct {
	ConfigPath string
	Debug      bool
	Shape      string
	Size       int
	Resolution int
	Workers    int
}

// RegisterFlags binds the shared overrides to fs.
func RegisterFlags(fs *flag.FlagSet) *Flags {
	f := &Flags{}
	fs.StringVar(&f.ConfigPath, "config", "", "Path to config file")
	fs.BoolVar(&f.Debug, "debug", false, "Enable debug logging")
	fs.StringVar(&f.Shape, "shape", "", "Die shape: tetrahedron, bipyramid or trapezohedron")
	fs.IntVar(&f.Size, "size", 0, "Number of distinct numerals")
	fs.IntVar(&f.Resolution, "resolution", 0, "Subdivisions per face edge")
	fs.IntVar(&f.Workers, "workers", 0, "Parallel generation workers")
	return f
}

// apply copies the set overrides onto cfg.
func (f *Flags) apply(cfg *Config) error {
	if f.Debug {
		cfg.Logging.Level = "debug"
	}
	if f.Shape != "" {
		kind, err := shape.ParseKind(f.Shape)
		if err != nil {
			return err
		}
		cfg.Die.Shape = kind
	}
	if f.Size > 0 {
		cfg.Die.Size = f.Size
	}
	if f.Resolution > 0 {
		cfg.Die.Resolution = f.Resolution
	}
	if f.Workers > 0 {
		cfg.Generation.Workers = f.Workers
	}
	return nil
}
