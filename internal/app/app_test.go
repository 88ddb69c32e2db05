package app

import (
	"image"
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/philipparndt/mapwalk/internal/config"
	"github.com/philipparndt/mapwalk/internal/hud"
	"github.com/philipparndt/mapwalk/pkg/geometry"
)

func TestCloseOnEmptyApp(t *testing.T) {
	app := &App{}
	assert.NotPanics(t, app.Close)
}

func TestCloseReleasesNewestFirst(t *testing.T) {
	app := &App{}
	var order []string
	app.onClose(func() { order = append(order, "window") })
	app.onClose(func() { order = append(order, "textures") })
	app.onClose(func() { order = append(order, "cursor") })

	app.Close()
	assert.Equal(t, []string{"cursor", "textures", "window"}, order)
}

func TestCloseTwiceReleasesOnce(t *testing.T) {
	app := &App{}
	calls := 0
	app.onClose(func() { calls++ })

	app.Close()
	app.Close()
	assert.Equal(t, 1, calls)
}

func TestNewRejectsInvalidConfigWithoutPanic(t *testing.T) {
	cfg := config.Default()
	cfg.Walking.Speed = 0

	var (
		app *App
		err error
	)
	assert.NotPanics(t, func() { app, err = New(cfg, zap.NewNop()) })
	assert.ErrorIs(t, err, config.ErrInvalid)
	assert.Nil(t, app)
}

func TestHandleFrameErrorLogsOnce(t *testing.T) {
	app := &App{logger: zap.NewNop()}
	err := geometry.ErrInvalidDimension

	app.handleFrameError(err)
	assert.Equal(t, err.Error(), app.UI.lastFrameErr)

	app.handleFrameError(nil)
	assert.Empty(t, app.UI.lastFrameErr)
}

func TestGenerateGlyphUsesRasterisedSet(t *testing.T) {
	r, err := hud.NewRasterizer(32, color.White)
	require.NoError(t, err)
	glyphs, err := r.Glyphs()
	require.NoError(t, err)

	app := &App{glyphs: glyphs}
	assert.Same(t, glyphs['7'], app.generateGlyph('7'))
	assert.Equal(t, image.Rect(0, 0, 1, 1), app.generateGlyph('x').Bounds())
}
