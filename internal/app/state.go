package app

import (
	"sync"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/philipparndt/mapwalk/internal/assets"
)

// Texture is a loaded raylib texture with its probed size
type Texture = assets.Texture[rl.Texture2D]

// TextureSet holds every texture drawn by the viewer
type TextureSet struct {
	Map                Texture
	Pin                Texture
	WalkingIndicator   Texture
	MeasuringIndicator Texture
	Corner             Texture
	Cursor             Texture
	Digits             map[rune]Texture
}

// FileWatchState holds texture hot-reload state
type FileWatchState struct {
	mu      sync.Mutex
	changed []string // files reported by the watcher, consumed by the frame loop
}

// request records changed files. Called from the watcher goroutine.
func (fw *FileWatchState) request(files []string) {
	fw.mu.Lock()
	defer fw.mu.Unlock()
	fw.changed = append(fw.changed, files...)
}

// take returns and clears the pending files
func (fw *FileWatchState) take() []string {
	fw.mu.Lock()
	defer fw.mu.Unlock()
	files := fw.changed
	fw.changed = nil
	return files
}

// UIState holds UI-related state
type UIState struct {
	font         rl.Font
	cursorHidden bool
	heading      float64 // last walking direction, degrees clockwise from up
	lastFrameErr string  // last frame error logged, to avoid repeating it every frame
}
