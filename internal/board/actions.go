package board

import (
	"errors"
	"image/color"
)

// ErrUnknownAction is returned when no action has the requested name.
var ErrUnknownAction = errors.New("unknown action")

// Action is a button preset: a fixed layer name and paint.
type Action struct {
	Name  string
	Paint Paint
}

// Preset names.
const (
	ActionWindow  = "window"
	ActionTaskbar = "taskbar"
	ActionShape   = "shape"
	ActionLogo    = "logo"
)

var taskbarGray = color.RGBA{R: 0x33, G: 0x33, B: 0x33, A: 0xff}

// Actions returns the presets in button order. Shape and logo follow the
// palette; window and taskbar have fixed colours.
func Actions() []Action {
	return []Action{
		{
			Name: ActionWindow,
			Paint: Paint{
				FillRect{Rect: R(100, 100, 600, 400), Ink: Solid(color.White)},
				StrokeRect{Rect: R(100, 100, 600, 400), Ink: Solid(color.Black), Width: 2},
			},
		},
		{
			Name: ActionTaskbar,
			Paint: Paint{
				FillRect{Rect: R(0, 550, 800, 50), Ink: Solid(taskbarGray)},
			},
		},
		{
			Name: ActionShape,
			Paint: Paint{
				FillRect{Rect: R(200, 200, 100, 100), Ink: CurrentInk},
			},
		},
		{
			Name: ActionLogo,
			Paint: Paint{
				Text{At: Pt(300, 300), Text: "Logo", Size: 48, Ink: CurrentInk},
			},
		},
	}
}

// Lookup returns the preset called name.
func Lookup(name string) (Action, bool) {
	for _, a := range Actions() {
		if a.Name == name {
			return a, true
		}
	}
	return Action{}, false
}
