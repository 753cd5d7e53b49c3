// Command mockboard is a small mockup board: stack window, taskbar,
// shape and logo layers on a canvas, show or hide them from the layer
// list, drag them into place and export the result as an image.
package main

import (
	"flag"
	"fmt"
	"os"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/ha1tch/mockboard/internal/board"
	"github.com/ha1tch/mockboard/internal/config"
	"github.com/ha1tch/mockboard/internal/panel"
)

func main() {
	configPath := flag.String("config", "", "config file (default: $MOCKBOARD_CONFIG_DIR or user config dir)")
	exportPath := flag.String("o", "", "export file, overrides export.path")
	flag.Parse()

	cfg, used, err := config.Resolve(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "mockboard: config: %v\n", err)
		os.Exit(1)
	}
	if *exportPath != "" {
		cfg.Export.Path = *exportPath
		if err := cfg.Validate(); err != nil {
			fmt.Fprintf(os.Stderr, "mockboard: %v\n", err)
			os.Exit(2)
		}
	}

	log := cfg.Logger(os.Stderr)
	board.SetLogger(log)
	if used != "" {
		log.Info("config loaded", "path", used)
	}

	canvas, err := cfg.NewCanvas()
	if err != nil {
		fmt.Fprintf(os.Stderr, "mockboard: %v\n", err)
		os.Exit(1)
	}
	defer canvas.Close()

	w, h := panel.Layout{CanvasW: canvas.Width(), CanvasH: canvas.Height()}.ScreenSize()
	rl.SetTraceLogLevel(rl.LogWarning)
	rl.InitWindow(int32(w), int32(h), "Mockboard")
	rl.SetTargetFPS(60)

	app, err := NewApp(cfg, canvas)
	if err != nil {
		rl.CloseWindow()
		fmt.Fprintf(os.Stderr, "mockboard: %v\n", err)
		os.Exit(1)
	}

	for !rl.WindowShouldClose() {
		app.Update()
		app.Draw()
	}

	app.Close()
	rl.CloseWindow()
}
