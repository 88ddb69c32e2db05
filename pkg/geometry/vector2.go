package geometry

import (
	"math"

	"github.com/paulmach/orb"
)

// Vector2 represents a 2D point or vector
type Vector2 struct {
	X, Y float64
}

// NewVector2 creates a new 2D vector
func NewVector2(x, y float64) Vector2 {
	return Vector2{X: x, Y: y}
}

// Add returns the sum of two vectors
func (v Vector2) Add(other Vector2) Vector2 {
	return Vector2{
		X: v.X + other.X,
		Y: v.Y + other.Y,
	}
}

// Sub returns the difference between two vectors
func (v Vector2) Sub(other Vector2) Vector2 {
	return Vector2{
		X: v.X - other.X,
		Y: v.Y - other.Y,
	}
}

// Mul multiplies the vector by a scalar
func (v Vector2) Mul(scalar float64) Vector2 {
	return Vector2{
		X: v.X * scalar,
		Y: v.Y * scalar,
	}
}

// Length returns the magnitude of the vector
func (v Vector2) Length() float64 {
	return math.Sqrt(v.X*v.X + v.Y*v.Y)
}

// Distance returns the distance between two points
func (v Vector2) Distance(other Vector2) float64 {
	return v.Sub(other).Length()
}

// Point converts the vector to an orb.Point
func (v Vector2) Point() orb.Point {
	return orb.Point{v.X, v.Y}
}

// FromPoint converts an orb.Point to a Vector2
func FromPoint(p orb.Point) Vector2 {
	return Vector2{X: p.X(), Y: p.Y()}
}

// Size is a width/height pair in pixels
type Size struct {
	Width, Height float64
}

// NewSize creates a new size from integer pixel dimensions
func NewSize(width, height int) Size {
	return Size{Width: float64(width), Height: float64(height)}
}

// Valid reports whether both dimensions are positive
func (s Size) Valid() bool {
	return s.Width > 0 && s.Height > 0
}

// Aspect returns width divided by height
func (s Size) Aspect() float64 {
	return s.Width / s.Height
}
