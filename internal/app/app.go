package app

import (
	"errors"
	"fmt"
	"image"
	"image/color"

	rl "github.com/gen2brain/raylib-go/raylib"
	"go.uber.org/zap"

	"github.com/philipparndt/mapwalk/internal/assets"
	"github.com/philipparndt/mapwalk/internal/config"
	"github.com/philipparndt/mapwalk/internal/hud"
	"github.com/philipparndt/mapwalk/internal/measurement"
	"github.com/philipparndt/mapwalk/internal/mode"
	"github.com/philipparndt/mapwalk/pkg/geometry"
)

// App owns the window, the textures and the mode controller
type App struct {
	cfg        *config.Config
	logger     *zap.Logger
	controller *mode.Controller
	loader     *assets.Loader[rl.Texture2D]
	glyphs     map[rune]*image.RGBA
	toggleKey  int32
	closers    []func()

	textures  TextureSet
	fileWatch FileWatchState
	UI        UIState
}

// New opens the window and loads every texture. Anything acquired before a
// failure is released again.
func New(cfg *config.Config, logger *zap.Logger) (_ *App, err error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	engine := measurement.NewEngine(cfg.Walking.MapScale, cfg.Measuring.ReferenceScale,
		measurement.WithHitRadius(cfg.Measuring.HitRadius))
	settings := mode.Settings{
		Speed:              cfg.Walking.Speed,
		TickRate:           float64(cfg.Window.FPS),
		Debounce:           cfg.Debounce,
		WalkingIndicator:   assets.FallbackSize,
		MeasuringIndicator: assets.FallbackSize,
	}

	app := &App{
		cfg:        cfg,
		logger:     logger,
		controller: mode.New(engine, settings, logger.Named("mode")),
		toggleKey:  keyCode(cfg.ToggleKey),
	}
	defer func() {
		if err != nil {
			app.Close()
		}
	}()

	rl.SetTraceLogLevel(rl.LogWarning)
	rl.SetConfigFlags(rl.FlagWindowResizable | rl.FlagWindowHighdpi | rl.FlagMsaa4xHint) // Must be before InitWindow
	rl.InitWindow(int32(cfg.Window.Width), int32(cfg.Window.Height), cfg.Window.Title)
	if !rl.IsWindowReady() {
		return nil, errors.New("failed to open window")
	}
	app.onClose(rl.CloseWindow)
	if cfg.Window.Fullscreen {
		rl.ToggleFullscreen()
	}
	rl.SetTargetFPS(int32(cfg.Window.FPS))
	app.UI.font = rl.GetFontDefault()

	loader, err := assets.NewLoader[rl.Texture2D](raylibBackend{}, textureCacheSize, logger.Named("assets"))
	if err != nil {
		return nil, err
	}
	app.loader = loader
	app.onClose(loader.Close)

	if glyphs, err := hud.NewRasterizer(64, color.White); err != nil {
		logger.Warn("Counter glyphs unavailable", zap.Error(err))
	} else if app.glyphs, err = glyphs.Glyphs(); err != nil {
		logger.Warn("Counter glyphs unavailable", zap.Error(err))
	}

	app.loadTextures()
	if app.textures.Cursor.Valid {
		rl.HideCursor()
		app.UI.cursorHidden = true
		app.onClose(rl.ShowCursor)
	}

	if cfg.Watch {
		if err := app.setupFileWatcher(); err != nil {
			logger.Warn("Texture hot reload disabled", zap.Error(err))
		}
	}

	logger.Info("Viewer started",
		zap.Int("width", cfg.Window.Width),
		zap.Int("height", cfg.Window.Height),
		zap.Int("fps", cfg.Window.FPS),
		zap.Stringer("mode", app.controller.Mode()))
	return app, nil
}

// Run processes frames until the window is closed
func (app *App) Run() error {
	for !rl.WindowShouldClose() {
		app.reloadIfRequested()

		in := app.sampleInput()
		app.handleFrameError(app.controller.Frame(in))
		if app.controller.Mode() == mode.Walking {
			if heading, ok := geometry.Heading(in.Move); ok {
				app.UI.heading = heading
			}
		}

		rl.BeginDrawing()
		rl.ClearBackground(rl.Black)
		if in.Screen.Valid() {
			app.draw(in.Screen, in.Pointer)
		}
		rl.EndDrawing()
	}

	app.logger.Info("Viewer closed",
		zap.Float64("distance_walked", app.controller.DistanceWalked()),
		zap.Float64("measured_total", app.controller.Engine().Total()),
		zap.Int("waypoints", app.controller.Engine().Len()))
	return nil
}

// handleFrameError logs frame errors once per distinct message
func (app *App) handleFrameError(err error) {
	if err == nil {
		app.UI.lastFrameErr = ""
		return
	}
	if err.Error() == app.UI.lastFrameErr {
		return
	}
	app.UI.lastFrameErr = err.Error()
	if errors.Is(err, geometry.ErrInvalidDimension) {
		app.logger.Debug("Frame skipped", zap.Error(err))
		return
	}
	app.logger.Warn("Frame failed", zap.Error(err))
}

// onClose registers a release step. Steps run in reverse order on Close.
func (app *App) onClose(release func()) {
	app.closers = append(app.closers, release)
}

// Close releases everything acquired so far, newest first. It is safe to
// call more than once and on a partially built App.
func (app *App) Close() {
	for i := len(app.closers) - 1; i >= 0; i-- {
		app.closers[i]()
	}
	app.closers = nil
}

// Run opens the viewer, runs it until the window closes and releases it
func Run(cfg *config.Config, logger *zap.Logger) error {
	app, err := New(cfg, logger)
	if err != nil {
		return fmt.Errorf("failed to start viewer: %w", err)
	}
	defer app.Close()
	return app.Run()
}
