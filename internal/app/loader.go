package app

import (
	"fmt"
	"image"
	"os"
	"path/filepath"
	"time"

	rl "github.com/gen2brain/raylib-go/raylib"
	"go.uber.org/zap"

	"github.com/philipparndt/mapwalk/internal/hud"
	"github.com/philipparndt/mapwalk/pkg/watcher"
)

// textureCacheSize covers the fixed textures plus the counter glyphs
const textureCacheSize = 32

// raylibBackend uploads textures through raylib
type raylibBackend struct{}

func (raylibBackend) Upload(path string) (rl.Texture2D, bool) {
	if _, err := os.Stat(path); err != nil {
		return rl.Texture2D{}, false
	}
	tex := rl.LoadTexture(path)
	return tex, rl.IsTextureValid(tex)
}

func (raylibBackend) UploadImage(img image.Image) (rl.Texture2D, bool) {
	im := rl.NewImageFromImage(img)
	defer rl.UnloadImage(im)
	tex := rl.LoadTextureFromImage(im)
	return tex, rl.IsTextureValid(tex)
}

func (raylibBackend) Release(tex rl.Texture2D) {
	rl.UnloadTexture(tex)
}

// assetPath resolves a configured asset to an absolute path so that it
// matches the paths reported by the watcher
func (app *App) assetPath(name string) string {
	path := app.cfg.AssetPath(name)
	if abs, err := filepath.Abs(path); err == nil {
		return abs
	}
	return path
}

// loadTextures fills the texture set from the loader cache
func (app *App) loadTextures() {
	a := app.cfg.Assets
	app.textures.Map = app.loader.Load(app.assetPath(a.Map))
	app.textures.Pin = app.loader.Load(app.assetPath(a.Pin))
	app.textures.WalkingIndicator = app.loader.Load(app.assetPath(a.WalkingIndicator))
	app.textures.MeasuringIndicator = app.loader.Load(app.assetPath(a.MeasuringIndicator))
	app.textures.Corner = app.loader.Load(app.assetPath(a.Corner))
	app.textures.Cursor = app.loader.Load(app.assetPath(a.Cursor))

	digitsDir := app.assetPath(a.Digits)
	app.textures.Digits = make(map[rune]Texture, 11)
	for _, ch := range "0123456789." {
		path := filepath.Join(digitsDir, hud.GlyphName(ch))
		app.textures.Digits[ch] = app.loader.LoadOrGenerate(path, func() image.Image {
			return app.generateGlyph(ch)
		})
	}

	app.controller.SetIndicatorSizes(app.textures.WalkingIndicator.Size, app.textures.MeasuringIndicator.Size)
	app.logger.Debug("Textures loaded",
		zap.Int("cached", app.loader.Len()),
		zap.Bool("map", app.textures.Map.Valid),
		zap.Bool("cursor", app.textures.Cursor.Valid))
}

// generateGlyph returns the rasterised counter glyph used when no glyph
// texture exists
func (app *App) generateGlyph(ch rune) image.Image {
	if img, ok := app.glyphs[ch]; ok {
		return img
	}
	return image.NewRGBA(image.Rect(0, 0, 1, 1))
}

// setupFileWatcher watches the texture directories and requests a reload
// when any image in them changes
func (app *App) setupFileWatcher() error {
	fw, err := watcher.NewDirWatcher(300*time.Millisecond, app.logger, ".png", ".jpg", ".jpeg", ".bmp", ".webp")
	if err != nil {
		return fmt.Errorf("failed to create file watcher: %w", err)
	}

	dirs := uniqueDirs(
		app.textures.Map.Path,
		app.textures.Pin.Path,
		app.textures.WalkingIndicator.Path,
		app.textures.MeasuringIndicator.Path,
		app.textures.Corner.Path,
		app.textures.Cursor.Path,
		app.assetPath(filepath.Join(app.cfg.Assets.Digits, hud.GlyphName('0'))),
	)
	if err := fw.Watch(dirs, app.fileWatch.request); err != nil {
		fw.Close()
		return fmt.Errorf("failed to watch textures: %w", err)
	}

	fw.Start()
	app.onClose(func() {
		if err := fw.Close(); err != nil {
			app.logger.Warn("Failed to close file watcher", zap.Error(err))
		}
	})
	app.logger.Info("Watching textures for changes", zap.Strings("dirs", dirs))
	return nil
}

// uniqueDirs returns the existing parent directories of the given files
func uniqueDirs(files ...string) []string {
	seen := make(map[string]bool)
	var dirs []string
	for _, f := range files {
		dir := filepath.Dir(f)
		if seen[dir] {
			continue
		}
		seen[dir] = true
		if info, err := os.Stat(dir); err == nil && info.IsDir() {
			dirs = append(dirs, dir)
		}
	}
	return dirs
}

// reloadIfRequested drops changed textures from the cache and reloads the set
func (app *App) reloadIfRequested() {
	changed := app.fileWatch.take()
	if len(changed) == 0 {
		return
	}
	app.loader.Invalidate(changed...)
	app.loadTextures()
	app.logger.Info("Textures reloaded", zap.Int("files", len(changed)))
}
