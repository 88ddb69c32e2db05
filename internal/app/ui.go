package app

import (
	"fmt"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/philipparndt/mapwalk/internal/measurement"
	"github.com/philipparndt/mapwalk/internal/mode"
	"github.com/philipparndt/mapwalk/pkg/geometry"
	"github.com/philipparndt/mapwalk/version"
)

// Counter position and glyph scale in NDC
const (
	counterX     = -0.95
	counterY     = 0.9
	counterScale = 0.05
)

// draw renders the active mode
func (app *App) draw(screen geometry.Size, pointer geometry.Vector2) {
	switch app.controller.Mode() {
	case mode.Walking:
		app.drawWalking(screen)
	case mode.Measuring:
		app.drawMeasuring(screen)
	}

	// Info image (bottom-right corner)
	if b, err := geometry.CornerBounds(app.textures.Corner.Size, screen); err == nil {
		drawQuad(app.textures.Corner, geometry.QuadFromBound(b), screen)
	}

	app.drawHelp(screen)
	app.drawCursor(pointer, screen)
}

func (app *App) drawWalking(screen geometry.Size) {
	scale := app.cfg.Walking.MapScale
	offset := app.controller.Offset()
	drawQuad(app.textures.Map, geometry.Quad{Center: offset.Point(), Width: scale, Height: scale}, screen)

	pin := app.cfg.Walking.PinScale
	drawQuad(app.textures.Pin, geometry.Quad{Width: pin, Height: pin}, screen)

	app.drawIndicator(app.textures.WalkingIndicator, screen)
	app.drawCounter(app.controller.DistanceWalked(), counterX, counterY, counterScale, screen)
}

func (app *App) drawMeasuring(screen geometry.Size) {
	sx, sy := geometry.FitScale(screen, app.textures.Map.Size)
	drawQuad(app.textures.Map, geometry.Quad{Width: sx, Height: sy}, screen)

	engine := app.controller.Engine()
	segments := engine.Segments()
	drawLegs(segments, screen)
	drawWaypoints(engine.Waypoints(), engine.HitRadius(), screen)
	for _, s := range segments {
		app.drawLegLabel(s, screen)
	}

	app.drawIndicator(app.textures.MeasuringIndicator, screen)
	app.drawCounter(engine.Total(), counterX, counterY, counterScale, screen)
}

// drawIndicator draws a mode indicator over its hit box in the top-left corner
func (app *App) drawIndicator(tex Texture, screen geometry.Size) {
	b, err := geometry.IndicatorBounds(tex.Size, screen)
	if err != nil {
		return
	}
	q := geometry.QuadFromBound(b)
	if !tex.Valid {
		drawSolidQuad(q, screen, rl.Fade(rl.DarkGray, 0.7))
		return
	}
	drawQuad(tex, q, screen)
}

// drawLegLabel draws the distance of one leg at its midpoint
func (app *App) drawLegLabel(s measurement.Segment, screen geometry.Size) {
	label := Label{
		Text:      fmt.Sprintf("%.3f", s.Distance),
		ScreenPos: toScreen(s.Midpoint(), screen),
		BaseColor: legColor,
	}
	label.Draw(app.UI.font, 18, 4)
}

// drawHelp draws the key bindings and version in the bottom-left corner
func (app *App) drawHelp(screen geometry.Size) {
	lines := []string{
		fmt.Sprintf("[%s] or click indicator: switch mode", app.cfg.ToggleKey),
		"[W A S D] walk   [Click] add/remove waypoint   [Esc] quit",
		"mapwalk " + version.GetVersion(),
	}
	y := int32(screen.Height) - int32(len(lines))*18 - 10
	for _, line := range lines {
		rl.DrawText(line, 10, y, 14, rl.LightGray)
		y += 18
	}
}

// drawCursor draws the compass at the pointer, turned to the last walking
// heading, when the system cursor is hidden
func (app *App) drawCursor(pointer geometry.Vector2, screen geometry.Size) {
	if !app.UI.cursorHidden {
		return
	}
	center, err := geometry.ToNDC(pointer, screen)
	if err != nil {
		return
	}
	size := app.textures.Cursor.Size
	drawQuad(app.textures.Cursor, geometry.Quad{
		Center:   center,
		Width:    2 * size.Width / screen.Width,
		Height:   2 * size.Height / screen.Height,
		Rotation: app.UI.heading,
	}, screen)
}
