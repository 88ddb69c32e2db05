package assets

import (
	"errors"
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"os"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/webp"

	"github.com/philipparndt/mapwalk/pkg/geometry"
)

// FallbackSize is reported for any image whose header cannot be decoded
var FallbackSize = geometry.Size{Width: 482, Height: 100}

// ErrDecode is returned when an image header cannot be read
var ErrDecode = errors.New("failed to decode image")

// ProbeSize reads the pixel size from the image header. On failure it
// returns FallbackSize together with an error wrapping ErrDecode.
func ProbeSize(path string) (geometry.Size, error) {
	f, err := os.Open(path)
	if err != nil {
		return FallbackSize, fmt.Errorf("%w %s: %w", ErrDecode, path, err)
	}
	defer f.Close()

	cfg, format, err := image.DecodeConfig(f)
	if err != nil {
		return FallbackSize, fmt.Errorf("%w %s: %w", ErrDecode, path, err)
	}
	if cfg.Width <= 0 || cfg.Height <= 0 {
		return FallbackSize, fmt.Errorf("%w %s: empty %s image", ErrDecode, path, format)
	}
	return geometry.NewSize(cfg.Width, cfg.Height), nil
}
