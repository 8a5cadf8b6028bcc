package lumen

import (
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/image/bmp"
)

var (
	red  = color.NRGBA{R: 255, A: 255}
	blue = color.NRGBA{B: 255, A: 255}
)

// twoRowImage is 2x2 with a red top row and a blue bottom row.
func twoRowImage() image.Image {
	img := image.NewNRGBA(image.Rect(0, 0, 2, 2))
	for x := 0; x < 2; x++ {
		img.SetNRGBA(x, 0, red)
		img.SetNRGBA(x, 1, blue)
	}
	return img
}

func writeImage(t *testing.T, name string, encode func(f *os.File) error) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	f, err := os.Create(path)
	require.NoError(t, err)
	require.NoError(t, encode(f))
	require.NoError(t, f.Close())
	return path
}

func assertFlipped(t *testing.T, asset *TextureAsset) {
	t.Helper()
	require.Equal(t, uint32(2), asset.Width)
	require.Equal(t, uint32(2), asset.Height)
	require.Len(t, asset.Texels, 2*2*4)

	// Bottom row first.
	assert.Equal(t, []uint8{0, 0, 255, 255}, asset.Texels[0:4])
	assert.Equal(t, []uint8{0, 0, 255, 255}, asset.Texels[4:8])
	assert.Equal(t, []uint8{255, 0, 0, 255}, asset.Texels[8:12])
	assert.Equal(t, []uint8{255, 0, 0, 255}, asset.Texels[12:16])
}

func TestNewTextureAsset_FlipsVertically(t *testing.T) {
	asset := NewTextureAsset(twoRowImage())

	assertFlipped(t, asset)
	_, err := uuid.Parse(string(asset.Id))
	assert.NoError(t, err)
}

func TestNewTextureAsset_NonZeroOrigin(t *testing.T) {
	src := image.NewNRGBA(image.Rect(10, 20, 12, 22))
	for x := 10; x < 12; x++ {
		src.SetNRGBA(x, 20, red)
		src.SetNRGBA(x, 21, blue)
	}

	assertFlipped(t, NewTextureAsset(src))
}

func TestLoadTextureAsset_PNG(t *testing.T) {
	path := writeImage(t, "diffuse.png", func(f *os.File) error {
		return png.Encode(f, twoRowImage())
	})

	asset, err := LoadTextureAsset(path)
	require.NoError(t, err)
	assert.Equal(t, path, asset.Path)
	assertFlipped(t, asset)
}

func TestLoadTextureAsset_BMP(t *testing.T) {
	path := writeImage(t, "icon.bmp", func(f *os.File) error {
		return bmp.Encode(f, twoRowImage())
	})

	asset, err := LoadTextureAsset(path)
	require.NoError(t, err)
	assertFlipped(t, asset)
}

func TestLoadTextureAsset_Errors(t *testing.T) {
	_, err := LoadTextureAsset(filepath.Join(t.TempDir(), "missing.jpg"))
	assert.ErrorIs(t, err, os.ErrNotExist)

	garbage := filepath.Join(t.TempDir(), "garbage.jpg")
	require.NoError(t, os.WriteFile(garbage, []byte("not an image"), 0o644))
	_, err = LoadTextureAsset(garbage)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "decode")
}

func TestPlaceholderTexture(t *testing.T) {
	a := PlaceholderTexture()
	b := PlaceholderTexture()

	assert.Equal(t, uint32(1), a.Width)
	assert.Equal(t, uint32(1), a.Height)
	assert.Equal(t, []uint8{0xff, 0xff, 0xff, 0xff}, a.Texels)
	assert.NotEqual(t, a.Id, b.Id)
}

func TestFlipRows_OddHeight(t *testing.T) {
	pix := []uint8{1, 2, 3}
	flipRows(pix, 1, 3)
	assert.Equal(t, []uint8{3, 2, 1}, pix)
}
