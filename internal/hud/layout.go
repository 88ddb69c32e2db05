package hud

import (
	"fmt"

	"github.com/paulmach/orb"

	"github.com/philipparndt/mapwalk/pkg/geometry"
)

// AdvanceFactor is the horizontal distance between glyphs relative to their scale
const AdvanceFactor = 0.6

// Glyph is one character placed in NDC
type Glyph struct {
	Char rune
	Quad geometry.Quad
}

// Format renders a distance the way the counter shows it
func Format(number float64) string {
	return fmt.Sprintf("%f", number)
}

// Layout places the digits and decimal point of number left to right,
// starting with the centre of the first glyph at (x, y). Characters without
// a glyph (such as a minus sign) are skipped without advancing.
func Layout(number, x, y, scale float64) []Glyph {
	text := Format(number)
	glyphs := make([]Glyph, 0, len(text))
	offset := 0.0
	for _, r := range text {
		if !HasGlyph(r) {
			continue
		}
		glyphs = append(glyphs, Glyph{
			Char: r,
			Quad: geometry.Quad{
				Center: orb.Point{x + offset, y},
				Width:  scale,
				Height: scale,
			},
		})
		offset += scale * AdvanceFactor
	}
	return glyphs
}

// HasGlyph reports whether r is drawn by the counter
func HasGlyph(r rune) bool {
	return (r >= '0' && r <= '9') || r == '.'
}

// GlyphName returns the texture file name for a counter character
func GlyphName(r rune) string {
	if r == '.' {
		return "dot.png"
	}
	return string(r) + ".png"
}
