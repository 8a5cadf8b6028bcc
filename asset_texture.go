package lumen

import (
	"fmt"
	"image"
	"os"

	_ "image/jpeg"
	_ "image/png"

	"github.com/google/uuid"
	_ "golang.org/x/image/bmp"
	xdraw "golang.org/x/image/draw"
	_ "golang.org/x/image/webp"
)

type AssetId string

// TextureAsset is decoded RGBA8 pixel data laid out bottom row first, the
// order glTexImage2D expects.
type TextureAsset struct {
	Id     AssetId
	Path   string
	Texels []uint8
	Width  uint32
	Height uint32
}

// LoadImage decodes a jpeg, png, bmp or webp file.
func LoadImage(path string) (image.Image, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	img, _, err := image.Decode(file)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}
	return img, nil
}

func LoadTextureAsset(path string) (*TextureAsset, error) {
	img, err := LoadImage(path)
	if err != nil {
		return nil, err
	}
	asset := NewTextureAsset(img)
	asset.Path = path
	return asset, nil
}

// NewTextureAsset converts img to RGBA and flips it vertically.
func NewTextureAsset(img image.Image) *TextureAsset {
	bounds := img.Bounds()
	width, height := bounds.Dx(), bounds.Dy()

	rgba := image.NewRGBA(image.Rect(0, 0, width, height))
	xdraw.Draw(rgba, rgba.Bounds(), img, bounds.Min, xdraw.Src)
	flipRows(rgba.Pix, rgba.Stride, height)

	return &TextureAsset{
		Id:     makeAssetId(),
		Texels: rgba.Pix,
		Width:  uint32(width),
		Height: uint32(height),
	}
}

// PlaceholderTexture is a single white texel used when a texture fails to
// load.
func PlaceholderTexture() *TextureAsset {
	return &TextureAsset{
		Id:     makeAssetId(),
		Path:   "<placeholder>",
		Texels: []uint8{0xff, 0xff, 0xff, 0xff},
		Width:  1,
		Height: 1,
	}
}

func flipRows(pix []uint8, stride, height int) {
	tmp := make([]uint8, stride)
	for top, bottom := 0, height-1; top < bottom; top, bottom = top+1, bottom-1 {
		a := pix[top*stride : (top+1)*stride]
		b := pix[bottom*stride : (bottom+1)*stride]
		copy(tmp, a)
		copy(a, b)
		copy(b, tmp)
	}
}

func makeAssetId() AssetId {
	return AssetId(uuid.NewString())
}
