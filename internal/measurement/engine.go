package measurement

import (
	"github.com/paulmach/orb"

	"github.com/philipparndt/mapwalk/pkg/geometry"
)

// Engine keeps an ordered list of waypoints and the cumulative distance
// between them in map units.
//
// The total is maintained so that it is always identical to Recompute:
// appending adds the new leg, removing sums every remaining leg again from
// the first one.
type Engine struct {
	waypoints      []Waypoint
	total          float64
	mapScale       float64
	referenceScale float64
	hitRadius      float64
}

// Option configures an Engine
type Option func(*Engine)

// WithHitRadius overrides DefaultHitRadius
func WithHitRadius(r float64) Option {
	return func(e *Engine) {
		e.hitRadius = r
	}
}

// NewEngine creates an empty engine. The scale ratio is fixed for its lifetime.
func NewEngine(mapScale, referenceScale float64, opts ...Option) *Engine {
	e := &Engine{
		mapScale:       mapScale,
		referenceScale: referenceScale,
		hitRadius:      DefaultHitRadius,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// AddOrToggle removes the first waypoint within the hit radius of p, or
// appends p when none is close enough. Leg distances use the scales given to
// NewEngine, which stay fixed for the engine's lifetime; callers measuring
// with other scales need another engine.
func (e *Engine) AddOrToggle(p orb.Point) Result {
	if i := e.hitIndex(p); i >= 0 {
		e.waypoints = append(e.waypoints[:i], e.waypoints[i+1:]...)
		e.total = e.Recompute()
		return Removed
	}

	wp := Waypoint(p)
	if n := len(e.waypoints); n > 0 {
		e.total += e.legDistance(e.waypoints[n-1], wp)
	}
	e.waypoints = append(e.waypoints, wp)
	return Added
}

// hitIndex returns the lowest index within the hit radius, or -1
func (e *Engine) hitIndex(p orb.Point) int {
	for i, wp := range e.waypoints {
		if geometry.NDCDistance(wp.Point(), p) <= e.hitRadius {
			return i
		}
	}
	return -1
}

func (e *Engine) legDistance(a, b Waypoint) float64 {
	return geometry.NDCDistanceToMapUnits(geometry.NDCDistance(a.Point(), b.Point()), e.mapScale, e.referenceScale)
}

// Reset removes every waypoint
func (e *Engine) Reset() {
	e.waypoints = nil
	e.total = 0
}

// Total returns the cumulative distance in map units
func (e *Engine) Total() float64 {
	return e.total
}

// Recompute sums every leg from scratch
func (e *Engine) Recompute() float64 {
	total := 0.0
	for i := 1; i < len(e.waypoints); i++ {
		total += e.legDistance(e.waypoints[i-1], e.waypoints[i])
	}
	return total
}

// Waypoints returns a copy of the waypoints in insertion order
func (e *Engine) Waypoints() []Waypoint {
	out := make([]Waypoint, len(e.waypoints))
	copy(out, e.waypoints)
	return out
}

// Len returns the number of waypoints
func (e *Engine) Len() int {
	return len(e.waypoints)
}

// Segments returns every leg with its distance in map units
func (e *Engine) Segments() []Segment {
	if len(e.waypoints) < 2 {
		return nil
	}
	segments := make([]Segment, 0, len(e.waypoints)-1)
	for i := 1; i < len(e.waypoints); i++ {
		segments = append(segments, Segment{
			Start:    e.waypoints[i-1],
			End:      e.waypoints[i],
			Distance: e.legDistance(e.waypoints[i-1], e.waypoints[i]),
		})
	}
	return segments
}

// Path returns the waypoints as a line string
func (e *Engine) Path() orb.LineString {
	ls := make(orb.LineString, len(e.waypoints))
	for i, wp := range e.waypoints {
		ls[i] = wp.Point()
	}
	return ls
}

// HitRadius returns the configured hit radius
func (e *Engine) HitRadius() float64 {
	return e.hitRadius
}
