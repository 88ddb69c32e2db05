package hud

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"

	"github.com/golang/freetype"
	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/math/fixed"
)

// Rasterizer draws counter glyphs into images when no glyph textures exist
type Rasterizer struct {
	font  *truetype.Font
	size  float64
	color color.Color
}

// NewRasterizer parses the built-in Go font
func NewRasterizer(size float64, c color.Color) (*Rasterizer, error) {
	f, err := truetype.Parse(goregular.TTF)
	if err != nil {
		return nil, fmt.Errorf("failed to parse font: %w", err)
	}
	return &Rasterizer{font: f, size: size, color: c}, nil
}

// Glyph renders a single character centred in a square transparent image
func (r *Rasterizer) Glyph(ch rune) (*image.RGBA, error) {
	face := truetype.NewFace(r.font, &truetype.Options{Size: r.size, DPI: 72, Hinting: font.HintingFull})
	defer face.Close()

	advance, ok := face.GlyphAdvance(ch)
	if !ok {
		return nil, fmt.Errorf("no glyph for %q", ch)
	}
	metrics := face.Metrics()

	side := metrics.Height.Ceil()
	if w := advance.Ceil(); w > side {
		side = w
	}
	img := image.NewRGBA(image.Rect(0, 0, side, side))
	draw.Draw(img, img.Bounds(), image.Transparent, image.Point{}, draw.Src)

	c := freetype.NewContext()
	c.SetDPI(72)
	c.SetFont(r.font)
	c.SetFontSize(r.size)
	c.SetClip(img.Bounds())
	c.SetDst(img)
	c.SetSrc(image.NewUniform(r.color))
	c.SetHinting(font.HintingFull)

	x := (fixed.I(side) - advance) / 2
	baseline := (fixed.I(side)-metrics.Height)/2 + metrics.Ascent
	if _, err := c.DrawString(string(ch), fixed.Point26_6{X: x, Y: baseline}); err != nil {
		return nil, fmt.Errorf("failed to draw %q: %w", ch, err)
	}
	return img, nil
}

// Glyphs renders every counter character, keyed by the character
func (r *Rasterizer) Glyphs() (map[rune]*image.RGBA, error) {
	out := make(map[rune]*image.RGBA, 11)
	for _, ch := range "0123456789." {
		img, err := r.Glyph(ch)
		if err != nil {
			return nil, err
		}
		out[ch] = img
	}
	return out, nil
}
