package mode

import (
	"github.com/philipparndt/mapwalk/pkg/geometry"
)

// Mode is the active interaction mode
type Mode int

const (
	Walking Mode = iota
	Measuring
)

func (m Mode) String() string {
	switch m {
	case Walking:
		return "walking"
	case Measuring:
		return "measuring"
	default:
		return "unknown"
	}
}

// Other returns the mode a switch leads to
func (m Mode) Other() Mode {
	if m == Walking {
		return Measuring
	}
	return Walking
}

// Accumulator holds the walking offset in map space and the distance walked
type Accumulator struct {
	Offset   geometry.Vector2
	Distance float64 // never decreases
}

// Input is everything the controller needs from one frame of sampling
type Input struct {
	Now           float64 // monotonic clock in seconds
	Screen        geometry.Size
	Pointer       geometry.Vector2 // device pixels
	Clicked       bool             // primary button pressed this frame
	TogglePressed bool             // mode switch key pressed this frame
	Move          geometry.Vector2 // each axis in {-1, 0, 1}
}

// Settings holds the tunables of the controller
type Settings struct {
	Speed    float64 // map units per second
	TickRate float64 // frames per second
	Debounce float64 // seconds between accepted switches

	// Native pixel size of each mode's indicator, used for click hit-testing
	WalkingIndicator   geometry.Size
	MeasuringIndicator geometry.Size
}

// DefaultSettings returns the stock settings
func DefaultSettings() Settings {
	return Settings{
		Speed:              0.4,
		TickRate:           75,
		Debounce:           0.2,
		WalkingIndicator:   geometry.Size{Width: 482, Height: 100},
		MeasuringIndicator: geometry.Size{Width: 482, Height: 100},
	}
}

func (s Settings) indicator(m Mode) geometry.Size {
	if m == Walking {
		return s.WalkingIndicator
	}
	return s.MeasuringIndicator
}

// MoveFromKeys maps the four walking keys to a move vector. Up is -Y and
// left is +X because the map moves opposite to the viewer. Down wins over up
// and right wins over left when both are held.
func MoveFromKeys(up, down, left, right bool) geometry.Vector2 {
	var move geometry.Vector2
	if up {
		move.Y = -1
	}
	if down {
		move.Y = 1
	}
	if left {
		move.X = 1
	}
	if right {
		move.X = -1
	}
	return move
}
