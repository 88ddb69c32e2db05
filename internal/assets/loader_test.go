package assets

import (
	"image"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"github.com/philipparndt/mapwalk/pkg/geometry"
)

type fakeBackend struct {
	next     int
	uploads  []string
	released []int
}

func (f *fakeBackend) Upload(path string) (int, bool) {
	if _, err := os.Stat(path); err != nil {
		return 0, false
	}
	f.next++
	f.uploads = append(f.uploads, path)
	return f.next, true
}

func (f *fakeBackend) UploadImage(img image.Image) (int, bool) {
	f.next++
	return f.next, true
}

func (f *fakeBackend) Release(handle int) {
	f.released = append(f.released, handle)
}

func writePNG(t *testing.T, dir, name string, w, h int) string {
	t.Helper()
	path := filepath.Join(dir, name)
	f, err := os.Create(path)
	require.NoError(t, err)
	defer f.Close()
	require.NoError(t, png.Encode(f, image.NewRGBA(image.Rect(0, 0, w, h))))
	return path
}

func TestProbeSize(t *testing.T) {
	path := writePNG(t, t.TempDir(), "pin.png", 64, 32)
	size, err := ProbeSize(path)
	require.NoError(t, err)
	assert.Equal(t, geometry.NewSize(64, 32), size)
}

func TestProbeSizeFallback(t *testing.T) {
	dir := t.TempDir()
	broken := filepath.Join(dir, "broken.png")
	require.NoError(t, os.WriteFile(broken, []byte("not an image"), 0o644))

	for _, path := range []string{broken, filepath.Join(dir, "missing.png")} {
		size, err := ProbeSize(path)
		assert.ErrorIs(t, err, ErrDecode)
		assert.Equal(t, geometry.Size{Width: 482, Height: 100}, size)
	}
}

func TestLoaderCaches(t *testing.T) {
	backend := &fakeBackend{}
	loader, err := NewLoader[int](backend, 4, zaptest.NewLogger(t))
	require.NoError(t, err)

	path := writePNG(t, t.TempDir(), "map.png", 100, 50)
	first := loader.Load(path)
	second := loader.Load(path)

	assert.True(t, first.Valid)
	assert.Equal(t, first, second)
	assert.Len(t, backend.uploads, 1)
	assert.Equal(t, geometry.NewSize(100, 50), first.Size)
}

func TestLoaderMissingFile(t *testing.T) {
	loader, err := NewLoader[int](&fakeBackend{}, 4, zaptest.NewLogger(t))
	require.NoError(t, err)

	tex := loader.Load(filepath.Join(t.TempDir(), "ruler.png"))
	assert.False(t, tex.Valid)
	assert.Equal(t, FallbackSize, tex.Size)
}

func TestLoaderEvictionReleases(t *testing.T) {
	backend := &fakeBackend{}
	loader, err := NewLoader[int](backend, 1, zaptest.NewLogger(t))
	require.NoError(t, err)

	dir := t.TempDir()
	a := loader.Load(writePNG(t, dir, "a.png", 2, 2))
	loader.Load(writePNG(t, dir, "b.png", 2, 2))

	assert.Equal(t, []int{a.Handle}, backend.released)
	assert.Equal(t, 1, loader.Len())
}

func TestLoaderInvalidateReloads(t *testing.T) {
	backend := &fakeBackend{}
	loader, err := NewLoader[int](backend, 4, zaptest.NewLogger(t))
	require.NoError(t, err)

	dir := t.TempDir()
	path := writePNG(t, dir, "pin.png", 10, 10)
	old := loader.Load(path)

	writePNG(t, dir, "pin.png", 20, 30)
	loader.Invalidate(path)
	fresh := loader.Load(path)

	assert.Contains(t, backend.released, old.Handle)
	assert.NotEqual(t, old.Handle, fresh.Handle)
	assert.Equal(t, geometry.NewSize(20, 30), fresh.Size)
}

func TestLoadOrGenerate(t *testing.T) {
	backend := &fakeBackend{}
	loader, err := NewLoader[int](backend, 4, zaptest.NewLogger(t))
	require.NoError(t, err)

	tex := loader.LoadOrGenerate(filepath.Join(t.TempDir(), "7.png"), func() image.Image {
		return image.NewRGBA(image.Rect(0, 0, 12, 24))
	})
	assert.True(t, tex.Valid)
	assert.Equal(t, geometry.NewSize(12, 24), tex.Size)
	assert.Empty(t, backend.uploads)
}

func TestCloseReleasesAll(t *testing.T) {
	backend := &fakeBackend{}
	loader, err := NewLoader[int](backend, 4, zaptest.NewLogger(t))
	require.NoError(t, err)

	dir := t.TempDir()
	loader.Load(writePNG(t, dir, "a.png", 2, 2))
	loader.Load(writePNG(t, dir, "b.png", 2, 2))
	loader.Load(filepath.Join(dir, "missing.png"))
	loader.Close()

	assert.Len(t, backend.released, 2)
	assert.Equal(t, 0, loader.Len())
}
