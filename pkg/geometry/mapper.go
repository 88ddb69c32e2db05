package geometry

import (
	"errors"
	"fmt"
	"math"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/planar"
)

// ErrInvalidDimension is returned when a screen width or height is not positive
var ErrInvalidDimension = errors.New("invalid screen dimension")

// ToNDC converts a device position (pixels, origin top-left, Y down) into
// normalized device coordinates (origin centre, Y up).
func ToNDC(device Vector2, screen Size) (orb.Point, error) {
	if !screen.Valid() {
		return orb.Point{}, fmt.Errorf("%w: %gx%g", ErrInvalidDimension, screen.Width, screen.Height)
	}
	return orb.Point{
		device.X/screen.Width*2 - 1,
		1 - device.Y/screen.Height*2,
	}, nil
}

// ToDevice is the inverse of ToNDC. The screen must be valid.
func ToDevice(p orb.Point, screen Size) Vector2 {
	return Vector2{
		X: (p.X() + 1) / 2 * screen.Width,
		Y: (1 - p.Y()) / 2 * screen.Height,
	}
}

// NDCDistanceToMapUnits converts a distance measured in NDC into map units.
//
// mapScale and referenceScale must belong to the mode that produced the
// points being measured; mixing scales of different modes is not detected.
func NDCDistanceToMapUnits(ndcDistance, mapScale, referenceScale float64) float64 {
	return ndcDistance * (mapScale / referenceScale)
}

// NDCDistance returns the Euclidean distance between two NDC points
func NDCDistance(a, b orb.Point) float64 {
	return planar.Distance(a, b)
}

// IndicatorBounds returns the NDC box of a mode indicator drawn at its native
// pixel size in the top-left corner of the screen.
func IndicatorBounds(texture, screen Size) (orb.Bound, error) {
	if !screen.Valid() {
		return orb.Bound{}, fmt.Errorf("%w: %gx%g", ErrInvalidDimension, screen.Width, screen.Height)
	}
	halfW := texture.Width / screen.Width
	halfH := texture.Height / screen.Height
	center := orb.Point{-1 + halfW, 1 - halfH}
	return orb.Bound{
		Min: orb.Point{center.X() - halfW, center.Y() - halfH},
		Max: orb.Point{center.X() + halfW, center.Y() + halfH},
	}, nil
}

// CornerBounds returns the NDC box of an image drawn at its native pixel size
// in the bottom-right corner of the screen.
func CornerBounds(texture, screen Size) (orb.Bound, error) {
	if !screen.Valid() {
		return orb.Bound{}, fmt.Errorf("%w: %gx%g", ErrInvalidDimension, screen.Width, screen.Height)
	}
	w := 2 * texture.Width / screen.Width
	h := 2 * texture.Height / screen.Height
	return orb.Bound{
		Min: orb.Point{1 - w, -1},
		Max: orb.Point{1, -1 + h},
	}, nil
}

// HitIndicator reports whether an NDC point lies inside the box, edges included
func HitIndicator(p orb.Point, bounds orb.Bound) bool {
	return bounds.Contains(p)
}

// FitScale returns the NDC scale that fits an image inside the screen while
// keeping its aspect ratio. The limiting axis gets a scale of 2.
func FitScale(screen, image Size) (scaleX, scaleY float64) {
	screenAspect := screen.Aspect()
	imageAspect := image.Aspect()
	if screenAspect > imageAspect {
		scaleY = 2
		scaleX = scaleY * imageAspect / screenAspect
		return scaleX, scaleY
	}
	scaleX = 2
	scaleY = scaleX * screenAspect / imageAspect
	return scaleX, scaleY
}

// Quad is a rectangle in NDC described by its centre and full size.
// Rotation turns it about its centre, in degrees clockwise on screen.
type Quad struct {
	Center   orb.Point
	Width    float64
	Height   float64
	Rotation float64
}

// Bound returns the NDC box covered by the quad
func (q Quad) Bound() orb.Bound {
	return orb.Bound{
		Min: orb.Point{q.Center.X() - q.Width/2, q.Center.Y() - q.Height/2},
		Max: orb.Point{q.Center.X() + q.Width/2, q.Center.Y() + q.Height/2},
	}
}

// QuadFromBound builds a quad covering the given NDC box
func QuadFromBound(b orb.Bound) Quad {
	return Quad{
		Center: b.Center(),
		Width:  b.Max.X() - b.Min.X(),
		Height: b.Max.Y() - b.Min.Y(),
	}
}

// PixelRect returns the unrotated quad in device pixels as x, y (top-left), width, height
func (q Quad) PixelRect(screen Size) (x, y, w, h float64) {
	b := q.Bound()
	topLeft := ToDevice(orb.Point{b.Min.X(), b.Max.Y()}, screen)
	return topLeft.X, topLeft.Y, q.Width / 2 * screen.Width, q.Height / 2 * screen.Height
}

// Heading returns the on-screen direction of travel for a walking move, in
// degrees clockwise from up. The map moves opposite to the viewer, so the
// move vector is mirrored on X. ok is false when there is no movement.
func Heading(move Vector2) (degrees float64, ok bool) {
	if move.Length() == 0 {
		return 0, false
	}
	deg := math.Atan2(-move.X, -move.Y) * 180 / math.Pi
	if deg < 0 {
		deg += 360
	}
	return deg, true
}
