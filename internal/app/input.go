package app

import (
	"unicode"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/philipparndt/mapwalk/internal/mode"
	"github.com/philipparndt/mapwalk/pkg/geometry"
)

// keyCode maps a single letter or digit to its raylib key code
func keyCode(key string) int32 {
	if key == "" {
		return rl.KeyR
	}
	return int32(unicode.ToUpper(rune(key[0])))
}

// sampleInput reads this frame's keyboard, mouse and window state
func (app *App) sampleInput() mode.Input {
	pointer := rl.GetMousePosition()

	return mode.Input{
		Now:           rl.GetTime(),
		Screen:        geometry.NewSize(rl.GetScreenWidth(), rl.GetScreenHeight()),
		Pointer:       geometry.NewVector2(float64(pointer.X), float64(pointer.Y)),
		Clicked:       rl.IsMouseButtonPressed(rl.MouseLeftButton),
		TogglePressed: rl.IsKeyPressed(app.toggleKey),
		Move: mode.MoveFromKeys(
			rl.IsKeyDown(rl.KeyW),
			rl.IsKeyDown(rl.KeyS),
			rl.IsKeyDown(rl.KeyA),
			rl.IsKeyDown(rl.KeyD),
		),
	}
}
