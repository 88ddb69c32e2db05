package mode

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/philipparndt/mapwalk/internal/measurement"
	"github.com/philipparndt/mapwalk/pkg/geometry"
)

// Controller owns the active mode, the walking accumulator and the snapshot
// taken when walking is left. Waypoints live in the engine and survive every
// switch.
type Controller struct {
	engine   *measurement.Engine
	settings Settings
	logger   *zap.Logger

	mode     Mode
	walk     Accumulator
	snapshot Accumulator
	debounce *debouncer
}

// New creates a controller in walking mode at the origin
func New(engine *measurement.Engine, settings Settings, logger *zap.Logger) *Controller {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Controller{
		engine:   engine,
		settings: settings,
		logger:   logger,
		mode:     Walking,
		debounce: newDebouncer(settings.Debounce),
	}
}

// SampleSwitchRequest reports whether a switch should happen now. A true
// result starts a new debounce window.
func (c *Controller) SampleSwitchRequest(keyPressed, clickedOnIndicator bool, now float64) bool {
	if !keyPressed && !clickedOnIndicator {
		return false
	}
	if !c.debounce.allow(now) {
		c.logger.Debug("Switch request debounced", zap.Float64("now", now))
		return false
	}
	return true
}

// PerformSwitch flips the mode. Leaving walking stores the accumulator and
// parks the live offset at the origin; entering walking restores it.
func (c *Controller) PerformSwitch() {
	switch c.mode {
	case Walking:
		c.snapshot = c.walk
		c.walk.Offset = geometry.Vector2{}
	case Measuring:
		c.walk = c.snapshot
	}
	c.mode = c.mode.Other()
	c.logger.Info("Mode switched",
		zap.Stringer("mode", c.mode),
		zap.Float64("distance_walked", c.walk.Distance),
		zap.Int("waypoints", c.engine.Len()))
}

// TickWalking advances the walking accumulator by one frame
func (c *Controller) TickWalking(move geometry.Vector2, speed, tickRate float64) {
	step := move.Mul(speed / tickRate)
	c.walk.Offset = c.walk.Offset.Add(step)
	c.walk.Distance += step.Length()
}

// Frame processes one frame of input. An invalid screen aborts the frame and
// is returned as geometry.ErrInvalidDimension.
func (c *Controller) Frame(in Input) error {
	pointer, err := geometry.ToNDC(in.Pointer, in.Screen)
	if err != nil {
		return fmt.Errorf("frame skipped: %w", err)
	}

	onIndicator := false
	if in.Clicked {
		bounds, err := geometry.IndicatorBounds(c.settings.indicator(c.mode), in.Screen)
		if err != nil {
			return fmt.Errorf("frame skipped: %w", err)
		}
		onIndicator = geometry.HitIndicator(pointer, bounds)
	}

	if c.SampleSwitchRequest(in.TogglePressed, onIndicator, in.Now) {
		c.PerformSwitch()
		return nil
	}

	switch c.mode {
	case Walking:
		c.TickWalking(in.Move, c.settings.Speed, c.settings.TickRate)
	case Measuring:
		if in.Clicked && !onIndicator {
			result := c.engine.AddOrToggle(pointer)
			c.logger.Debug("Waypoint toggled",
				zap.Stringer("result", result),
				zap.Float64("x", pointer.X()),
				zap.Float64("y", pointer.Y()),
				zap.Float64("total", c.engine.Total()))
		}
	}
	return nil
}

// Mode returns the active mode
func (c *Controller) Mode() Mode {
	return c.mode
}

// Offset returns the live walking offset in map space
func (c *Controller) Offset() geometry.Vector2 {
	return c.walk.Offset
}

// DistanceWalked returns the live distance walked
func (c *Controller) DistanceWalked() float64 {
	return c.walk.Distance
}

// Snapshot returns the accumulator saved when walking was last left
func (c *Controller) Snapshot() Accumulator {
	return c.snapshot
}

// Engine returns the measurement engine
func (c *Controller) Engine() *measurement.Engine {
	return c.engine
}

// SetIndicatorSizes updates the indicator hit boxes, e.g. after a texture reload
func (c *Controller) SetIndicatorSizes(walking, measuring geometry.Size) {
	c.settings.WalkingIndicator = walking
	c.settings.MeasuringIndicator = measuring
}
