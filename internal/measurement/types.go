package measurement

import (
	"math"

	"github.com/paulmach/orb"
)

// waypointEpsilon is the per-axis tolerance used by Waypoint.Equal
const waypointEpsilon = 0.001

// DefaultHitRadius is the NDC distance within which a click selects an existing waypoint
const DefaultHitRadius = 0.03

// Waypoint is a user-placed measurement point in NDC
type Waypoint orb.Point

// NewWaypoint creates a waypoint from NDC coordinates
func NewWaypoint(x, y float64) Waypoint {
	return Waypoint{x, y}
}

// X returns the horizontal NDC coordinate
func (w Waypoint) X() float64 { return w[0] }

// Y returns the vertical NDC coordinate
func (w Waypoint) Y() float64 { return w[1] }

// Point returns the waypoint as an orb.Point
func (w Waypoint) Point() orb.Point {
	return orb.Point(w)
}

// Equal reports whether both coordinates differ by less than 0.001
func (w Waypoint) Equal(other Waypoint) bool {
	return math.Abs(w[0]-other[0]) < waypointEpsilon && math.Abs(w[1]-other[1]) < waypointEpsilon
}

// Segment is a single leg between two consecutive waypoints
type Segment struct {
	Start    Waypoint
	End      Waypoint
	Distance float64 // map units
}

// Midpoint returns the NDC centre of the leg
func (s Segment) Midpoint() orb.Point {
	return orb.Point{(s.Start[0] + s.End[0]) / 2, (s.Start[1] + s.End[1]) / 2}
}

// Result tells the caller what AddOrToggle did
type Result int

const (
	Added Result = iota
	Removed
)

func (r Result) String() string {
	switch r {
	case Added:
		return "added"
	case Removed:
		return "removed"
	default:
		return "unknown"
	}
}
