// dicetool is a CLI utility for generating and inspecting procedural dice.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/Faultbox/dicer/internal/config"
	"github.com/Faultbox/dicer/internal/logger"
	"github.com/Faultbox/dicer/pkg/dice"
)

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	command := os.Args[1]
	args := os.Args[2:]

	var err error
	switch command {
	case "sizes":
		err = cmdSizes(args)
	case "info":
		err = cmdInfo(args)
	case "layout":
		err = cmdLayout(args)
	case "atlas":
		err = cmdAtlas(args)
	case "orient":
		err = cmdOrient(args)
	case "roll":
		err = cmdRoll(args)
	case "help", "-h", "--help":
		printUsage()
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", command)
		printUsage()
		os.Exit(1)
	}

	logger.Sync()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Println(`dicetool - procedural dice utility

Usage:
  dicetool <command> [options]

Commands:
  sizes   [-n N]             List the legal sizes of every shape
  info    [-metrics]         Generate a die and show mesh statistics
  layout  [-yaml]            Show the numeral atlas placement of every face
  atlas   [-o file] [-px N]  Write a PNG preview of the numeral atlas
  orient  [-face N]          Show the rotation presenting each face
  roll    [-n N] [-seed S]   Roll the die at random and show the distribution
          [-metrics]

Shared options:
  -config <file>  -debug  -shape <name>  -size <n>  -resolution <n>  -workers <n>

Examples:
  dicetool sizes -n 5
  dicetool info -shape bipyramid -size 8 -resolution 4
  dicetool layout -shape trapezohedron -size 3 -yaml
  dicetool roll -shape tetrahedron -size 4 -n 100000`)
}

// newFlagSet returns a flag set carrying the shared config overrides.
func newFlagSet(name string) (*flag.FlagSet, *config.Flags) {
	fs := flag.NewFlagSet(name, flag.ExitOnError)
	return fs, config.RegisterFlags(fs)
}

// setup parses args, loads the configuration and starts logging.
func setup(fs *flag.FlagSet, flags *config.Flags, args []string) (*config.Config, error) {
	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	cfg, err := config.Load(flags)
	if err != nil {
		return nil, err
	}
	if err := logger.Init(cfg.Logging.Level, cfg.Logging.LogFile); err != nil {
		return nil, err
	}

	logger.Debug("configuration loaded")
	return cfg, nil
}

// generate builds the configured die.
func generate(cfg *config.Config, metrics *dice.Metrics) (*dice.Die, time.Duration, error) {
	start := time.Now()
	d, err := dice.Generate(context.Background(), cfg.Die.Shape, cfg.Die.Size, cfg.Die.Resolution, dice.Options{
		Workers: cfg.Generation.Workers,
		Logger:  logger.Named("dice"),
		Metrics: metrics,
	})
	return d, time.Since(start), err
}
