package app

import (
	"image/color"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/paulmach/orb"

	"github.com/philipparndt/mapwalk/internal/hud"
	"github.com/philipparndt/mapwalk/internal/measurement"
	"github.com/philipparndt/mapwalk/pkg/geometry"
)

var (
	waypointColor = rl.NewColor(230, 57, 70, 255)
	legColor      = rl.NewColor(255, 209, 102, 230)
)

// drawQuad draws a texture stretched over an NDC quad
func drawQuad(tex Texture, q geometry.Quad, screen geometry.Size) {
	drawQuadTinted(tex, q, screen, rl.White)
}

func drawQuadTinted(tex Texture, q geometry.Quad, screen geometry.Size, tint color.RGBA) {
	if !tex.Valid {
		return
	}
	x, y, w, h := q.PixelRect(screen)
	src := rl.NewRectangle(0, 0, float32(tex.Handle.Width), float32(tex.Handle.Height))

	// Rotate about the centre: raylib places dst at the origin point
	origin := rl.NewVector2(float32(w/2), float32(h/2))
	dst := rl.NewRectangle(float32(x+w/2), float32(y+h/2), float32(w), float32(h))
	rl.DrawTexturePro(tex.Handle, src, dst, origin, float32(q.Rotation), tint)
}

// drawSolidQuad fills an NDC quad with a colour
func drawSolidQuad(q geometry.Quad, screen geometry.Size, c color.RGBA) {
	x, y, w, h := q.PixelRect(screen)
	rl.DrawRectangleRec(rl.NewRectangle(float32(x), float32(y), float32(w), float32(h)), c)
}

// toScreen converts an NDC point to a raylib screen position
func toScreen(p orb.Point, screen geometry.Size) rl.Vector2 {
	d := geometry.ToDevice(p, screen)
	return rl.NewVector2(float32(d.X), float32(d.Y))
}

// drawLegs draws the lines between consecutive waypoints
func drawLegs(segments []measurement.Segment, screen geometry.Size) {
	for _, s := range segments {
		rl.DrawLineEx(toScreen(s.Start.Point(), screen), toScreen(s.End.Point(), screen), 3, legColor)
	}
}

// drawWaypoints draws a dot per waypoint with a ring showing the hit radius
func drawWaypoints(waypoints []measurement.Waypoint, hitRadius float64, screen geometry.Size) {
	ringRadius := float32(hitRadius / 2 * screen.Width)
	for _, wp := range waypoints {
		center := toScreen(wp.Point(), screen)
		rl.DrawCircleLinesV(center, ringRadius, rl.Fade(waypointColor, 0.5))
		rl.DrawCircleV(center, 6, waypointColor)
	}
}

// drawCounter draws a number with the counter glyphs, falling back to text
// when a glyph texture is missing
func (app *App) drawCounter(value, x, y, scale float64, screen geometry.Size) {
	for _, g := range hud.Layout(value, x, y, scale) {
		tex, ok := app.textures.Digits[g.Char]
		if !ok || !tex.Valid {
			pos := toScreen(g.Quad.Center, screen)
			rl.DrawText(string(g.Char), int32(pos.X), int32(pos.Y), 20, rl.White)
			continue
		}
		drawQuad(tex, g.Quad, screen)
	}
}
