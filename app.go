package main

import (
	"fmt"
	"image/color"
	"strings"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/ha1tch/mockboard/internal/board"
	"github.com/ha1tch/mockboard/internal/config"
	"github.com/ha1tch/mockboard/internal/panel"
	"github.com/ha1tch/mockboard/internal/raster"
)

const (
	fontSize  = 10
	exportTag = "EXPORT"
)

var (
	panelBg    = rl.Color{R: 50, G: 50, B: 50, A: 255}
	buttonBg   = rl.Color{R: 70, G: 70, B: 70, A: 255}
	buttonHot  = rl.Color{R: 80, G: 80, B: 80, A: 255}
	buttonEdge = rl.Color{R: 90, G: 90, B: 90, A: 255}
	rowBg      = rl.Color{R: 60, G: 60, B: 60, A: 255}
	rowHidden  = rl.Color{R: 45, G: 45, B: 45, A: 255}
	topBarBg   = rl.Color{R: 60, G: 60, B: 60, A: 255}
	checker    = rl.Color{R: 150, G: 150, B: 150, A: 255}
	checkerAlt = rl.Color{R: 120, G: 120, B: 120, A: 255}
)

// App is the window: tool bar and swatches on the left, the layer list on
// the right, the canvas in the middle.
type App struct {
	cfg     *config.Config
	layout  panel.Layout
	canvas  *raster.Canvas
	session *board.Session
	list    *panel.LayerList
	actions []board.Action

	tools    []panel.Button
	swatches []board.Rect
	colors   []color.Color

	texture  rl.Texture2D
	uploaded uint64
	pixels   []color.RGBA
	status   string
}

// NewApp builds the session and chrome. The window must already be open
// because the canvas texture is created here.
func NewApp(cfg *config.Config, canvas *raster.Canvas) (*App, error) {
	layout := panel.Layout{CanvasW: canvas.Width(), CanvasH: canvas.Height()}
	list := panel.NewLayerList(layout)

	app := &App{
		cfg:     cfg,
		layout:  layout,
		canvas:  canvas,
		session: board.NewSession(canvas, cfg.StackOptions(board.WithListView(list))...),
		list:    list,
		actions: board.Actions(),
	}

	labels := make([]string, 0, len(app.actions)+1)
	for _, a := range app.actions {
		labels = append(labels, strings.ToUpper(a.Name))
	}
	labels = append(labels, exportTag)
	app.tools = panel.Toolbar(labels)

	for _, hex := range cfg.Color.Swatches {
		c, err := board.ParseColor(hex)
		if err != nil {
			return nil, fmt.Errorf("swatch %q: %w", hex, err)
		}
		app.colors = append(app.colors, c)
	}
	app.swatches = panel.Swatches(len(app.colors), panel.SwatchesTop(len(app.tools)))

	img := rl.NewImageFromImage(canvas.Image())
	app.texture = rl.LoadTextureFromImage(img)
	rl.UnloadImage(img)
	app.uploaded = canvas.Frames()
	return app, nil
}

// Close releases the canvas texture.
func (app *App) Close() {
	rl.UnloadTexture(app.texture)
}

func toPoint(v rl.Vector2) board.Point {
	return board.Pt(float64(v.X), float64(v.Y))
}

func toRec(r board.Rect) rl.Rectangle {
	return rl.Rectangle{X: float32(r.Min.X), Y: float32(r.Min.Y), Width: float32(r.W), Height: float32(r.H)}
}

func toRL(c color.Color) rl.Color {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return rl.Color{R: n.R, G: n.G, B: n.B, A: n.A}
}

// Update handles one frame of input. Each press is routed to exactly one
// of: tool bar, swatches, layer list, canvas.
func (app *App) Update() {
	log := board.Logger()
	mouse := toPoint(rl.GetMousePosition())
	view := app.layout.Viewport()
	panel.UpdateHover(app.tools, mouse)

	if rl.IsMouseButtonPressed(rl.MouseLeftButton) {
		if i := panel.ButtonAt(app.tools, mouse); i >= 0 {
			if i < len(app.actions) {
				if _, err := app.session.Add(app.actions[i].Name); err != nil {
					log.Warn("add layer", "action", app.actions[i].Name, "err", err)
				}
			} else {
				app.export()
			}
		} else if i := panel.SwatchAt(app.swatches, mouse); i >= 0 {
			app.session.Palette.Set(app.colors[i])
		} else if i := app.list.RowAt(mouse); i >= 0 {
			if err := app.session.Toggle(i); err != nil {
				log.Warn("toggle layer", "index", i, "err", err)
			}
		} else if view.Contains(mouse) {
			app.session.PointerDown(view.ToCanvas(mouse))
		}
	}

	if app.session.Drag.Dragging() && rl.IsMouseButtonDown(rl.MouseLeftButton) {
		if d := rl.GetMouseDelta(); d.X != 0 || d.Y != 0 {
			if err := app.session.PointerMove(view.ToCanvas(mouse)); err != nil {
				log.Warn("drag layer", "err", err)
			}
		}
	}

	if rl.IsMouseButtonReleased(rl.MouseLeftButton) {
		app.session.PointerUp()
	}

	if f := app.canvas.Frames(); f != app.uploaded {
		app.upload()
		app.uploaded = f
	}
}

// export writes the canvas to the configured path. Failures only reach
// the log and the status line.
func (app *App) export() {
	path := app.cfg.Export.Path
	if err := raster.Save(app.canvas, path, app.cfg.Export.Quality); err != nil {
		board.Logger().Warn("export failed", "path", path, "err", err)
		app.status = "EXPORT FAILED"
		return
	}
	app.status = "SAVED " + path
}

// upload copies the canvas pixels into the texture. raylib wants straight
// alpha, gg keeps premultiplied. The pixel buffer is reused across frames.
func (app *App) upload() {
	app.pixels = app.canvas.Straight(app.pixels)
	rl.UpdateTexture(app.texture, app.pixels)
}

// Draw renders the frame.
func (app *App) Draw() {
	rl.BeginDrawing()
	rl.ClearBackground(rl.Color{R: 40, G: 40, B: 40, A: 255})

	app.drawToolbar()
	app.drawLayerList()
	app.drawTopBar()
	app.drawCanvas()

	rl.EndDrawing()
}

func (app *App) drawToolbar() {
	_, h := app.layout.ScreenSize()
	rl.DrawRectangle(0, 0, panel.LeftWidth, int32(h), panelBg)
	rl.DrawText("MOCKBOARD", 10, 10, fontSize, rl.White)

	for _, btn := range app.tools {
		bg := buttonBg
		if btn.Hover {
			bg = buttonHot
		}
		rec := toRec(btn.Rect)
		rl.DrawRectangleRec(rec, bg)
		rl.DrawRectangleLinesEx(rec, 1, buttonEdge)

		textW := rl.MeasureText(btn.Label, fontSize)
		textX := int32(rec.X + rec.Width/2 - float32(textW)/2)
		textY := int32(rec.Y + rec.Height/2 - fontSize/2)
		rl.DrawText(btn.Label, textX, textY, fontSize, rl.White)
	}

	top := panel.SwatchesTop(len(app.tools))
	rl.DrawText("COLORS", 10, int32(top)-14, fontSize, rl.LightGray)
	current := app.session.Palette.Hex()
	for i, r := range app.swatches {
		rec := toRec(r)
		rl.DrawRectangleRec(rec, toRL(app.colors[i]))
		if board.Hex(app.colors[i]) == current {
			rl.DrawRectangleLinesEx(rec, 2, rl.White)
		} else {
			rl.DrawRectangleLinesEx(rec, 1, buttonBg)
		}
	}

	// Current colour
	y := int32(top) + int32((len(app.swatches)+2)/3)*25 + 10
	rl.DrawRectangle(10, y, 40, 30, toRL(app.session.Palette.Current()))
	rl.DrawRectangleLines(10, y, 40, 30, rl.White)
	rl.DrawText(current, 10, y+36, fontSize, rl.LightGray)
}

func (app *App) drawLayerList() {
	area := toRec(app.layout.RightPanel())
	rl.DrawRectangleRec(area, panelBg)
	rl.DrawText("LAYERS", int32(area.X)+10, 10, fontSize, rl.White)
	rl.DrawText("CLICK TO SHOW/HIDE", int32(area.X)+10, 30, fontSize, rl.Gray)

	mouse := toPoint(rl.GetMousePosition())
	for _, row := range app.list.Rows() {
		l, ok := app.session.Stack.Get(row.Index)
		if !ok {
			continue
		}
		bg := rowBg
		if !l.Visible {
			bg = rowHidden
		}
		if row.Rect.Contains(mouse) {
			bg = buttonHot
		}
		rl.DrawRectangleRec(toRec(row.Rect), bg)

		marker := toRec(row.Marker)
		rl.DrawRectangleRec(marker, rl.Color{R: 40, G: 40, B: 40, A: 255})
		rl.DrawRectangleLinesEx(marker, 1, rl.White)
		if l.Visible {
			rl.DrawText("V", int32(marker.X)+7, int32(marker.Y)+5, fontSize, rl.White)
		}

		nameColor := rl.White
		if !l.Visible {
			nameColor = rl.Gray
		}
		label := fmt.Sprintf("%d %s", row.Index, l.Name)
		rl.DrawText(label, int32(marker.X+marker.Width)+10, int32(marker.Y)+5, fontSize, nameColor)
	}
}

func (app *App) drawTopBar() {
	view := app.layout.Viewport().Rect
	rl.DrawRectangle(int32(view.Min.X), 0, int32(view.W), panel.TopHeight, topBarBg)

	info := fmt.Sprintf("SIZE: %dX%d | LAYERS: %d", app.layout.CanvasW, app.layout.CanvasH, app.session.Stack.Len())
	if i, ok := app.session.Drag.Target(); ok {
		l, _ := app.session.Stack.Get(i)
		info += fmt.Sprintf(" | DRAGGING: %s (%.0f, %.0f)", l.Name, l.Pos.X, l.Pos.Y)
	}
	if app.status != "" {
		info += " | " + app.status
	}
	rl.DrawText(info, int32(view.Min.X)+10, 20, fontSize, rl.White)
}

func (app *App) drawCanvas() {
	view := app.layout.Viewport().Rect
	x, y := int32(view.Min.X), int32(view.Min.Y)
	w, h := int32(view.W), int32(view.H)

	rl.BeginScissorMode(x, y, w, h)

	// Checkerboard behind transparent pixels
	const tile = 16
	for ty := int32(0); ty*tile < h; ty++ {
		for tx := int32(0); tx*tile < w; tx++ {
			c := checker
			if (tx+ty)%2 == 0 {
				c = checkerAlt
			}
			rl.DrawRectangle(x+tx*tile, y+ty*tile, tile, tile, c)
		}
	}
	rl.DrawTexture(app.texture, x, y, rl.White)

	rl.EndScissorMode()
	rl.DrawRectangleLinesEx(toRec(view), 2, rl.Color{R: 100, G: 100, B: 100, A: 255})
}
