package assets

import (
	"fmt"
	"image"

	lru "github.com/hashicorp/golang-lru/v2"
	"go.uber.org/zap"

	"github.com/philipparndt/mapwalk/pkg/geometry"
)

// Texture is a loaded texture handle with its pixel size
type Texture[T any] struct {
	Handle T
	Size   geometry.Size
	Path   string
	Valid  bool // false when the backend could not upload the file
}

// Backend uploads images to the GPU and releases them again
type Backend[T any] interface {
	Upload(path string) (T, bool)
	UploadImage(img image.Image) (T, bool)
	Release(handle T)
}

// Loader caches textures by path. Evicted textures are released.
type Loader[T any] struct {
	backend Backend[T]
	cache   *lru.Cache[string, Texture[T]]
	logger  *zap.Logger
}

// NewLoader creates a loader holding at most capacity textures
func NewLoader[T any](backend Backend[T], capacity int, logger *zap.Logger) (*Loader[T], error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	cache, err := lru.NewWithEvict(capacity, func(path string, tex Texture[T]) {
		if tex.Valid {
			backend.Release(tex.Handle)
		}
		logger.Debug("Texture released", zap.String("path", path))
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create texture cache: %w", err)
	}
	return &Loader[T]{backend: backend, cache: cache, logger: logger}, nil
}

// Load returns the texture for path, uploading it on first use. The size
// falls back to FallbackSize when the header cannot be decoded.
func (l *Loader[T]) Load(path string) Texture[T] {
	if tex, ok := l.cache.Get(path); ok {
		return tex
	}

	size, err := ProbeSize(path)
	if err != nil {
		l.logger.Warn("Using fallback texture size", zap.Error(err),
			zap.Float64("width", size.Width), zap.Float64("height", size.Height))
	}

	handle, ok := l.backend.Upload(path)
	if !ok {
		l.logger.Warn("Texture upload failed", zap.String("path", path))
	}

	tex := Texture[T]{Handle: handle, Size: size, Path: path, Valid: ok}
	l.cache.Add(path, tex)
	return tex
}

// LoadOrGenerate loads path when it exists and otherwise uploads the image
// produced by generate under the same key.
func (l *Loader[T]) LoadOrGenerate(path string, generate func() image.Image) Texture[T] {
	if tex, ok := l.cache.Get(path); ok {
		return tex
	}
	if _, err := ProbeSize(path); err == nil {
		return l.Load(path)
	}

	img := generate()
	b := img.Bounds()
	handle, ok := l.backend.UploadImage(img)
	tex := Texture[T]{
		Handle: handle,
		Size:   geometry.NewSize(b.Dx(), b.Dy()),
		Path:   path,
		Valid:  ok,
	}
	l.logger.Debug("Generated texture", zap.String("path", path), zap.Bool("uploaded", ok))
	l.cache.Add(path, tex)
	return tex
}

// Invalidate drops textures so the next Load reads them again
func (l *Loader[T]) Invalidate(paths ...string) {
	for _, path := range paths {
		if l.cache.Remove(path) {
			l.logger.Info("Texture invalidated", zap.String("path", path))
		}
	}
}

// Len returns the number of cached textures
func (l *Loader[T]) Len() int {
	return l.cache.Len()
}

// Close releases every cached texture
func (l *Loader[T]) Close() {
	l.cache.Purge()
}
