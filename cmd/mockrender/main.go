// Command mockrender builds a mockup without a window. Each argument is
// one input step, applied in order, and the canvas is written to -o:
//
//	mockrender -o concept.png window taskbar color:#e04040 shape drag:50,50>350,120
//
// Steps:
//
//	add:NAME | NAME     press the button for a preset (window, taskbar, shape, logo)
//	color:#RRGGBB       pick a colour for later shape/logo paints
//	toggle:N            click row N of the layer list
//	down:X,Y move:X,Y up
//	drag:X,Y>X,Y        down, move and up in one step
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/ha1tch/mockboard/internal/board"
	"github.com/ha1tch/mockboard/internal/config"
	"github.com/ha1tch/mockboard/internal/raster"
	"github.com/ha1tch/mockboard/internal/script"
)

func main() {
	configPath := flag.String("config", "", "config file (default: $MOCKBOARD_CONFIG_DIR or user config dir)")
	out := flag.String("o", "", "output image, .png or .jpg (default: export.path)")
	verbose := flag.Bool("v", false, "log every step")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "usage: mockrender [flags] step...\n")
		flag.PrintDefaults()
	}
	flag.Parse()

	if err := run(*configPath, *out, *verbose, flag.Args()); err != nil {
		fmt.Fprintf(os.Stderr, "mockrender: %v\n", err)
		os.Exit(1)
	}
}

func run(configPath, out string, verbose bool, args []string) error {
	cfg, _, err := config.Resolve(configPath)
	if err != nil {
		return fmt.Errorf("config: %w", err)
	}
	if verbose {
		cfg.Log.Level = "debug"
	}
	board.SetLogger(cfg.Logger(os.Stderr))

	if out == "" {
		out = cfg.Export.Path
	}
	if _, err := raster.FormatFor(out); err != nil {
		return err
	}

	steps, err := script.ParseAll(args)
	if err != nil {
		return err
	}

	canvas, err := cfg.NewCanvas()
	if err != nil {
		return err
	}
	defer canvas.Close()

	s := board.NewSession(canvas, cfg.StackOptions()...)
	if err := script.Run(s, steps); err != nil {
		return err
	}
	return raster.Save(canvas, out, cfg.Export.Quality)
}
