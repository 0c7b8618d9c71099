package g2d

import (
	"image"
	"image/draw"

	"github.com/gogpu/gputypes"
)

// Texture is a read-only handle to pixel data owned by a collaborator.
// The core only needs its size to compute texture coordinates.
type Texture interface {
	Size() Vector2i
}

// ImageTexture is a Texture backed by an in-memory RGBA image.
type ImageTexture struct {
	img *image.RGBA
}

// NewImageTexture copies img into an RGBA texture whose top-left pixel is
// at (0, 0).
func NewImageTexture(img image.Image) *ImageTexture {
	if rgba, ok := img.(*image.RGBA); ok && rgba.Rect.Min == (image.Point{}) {
		return &ImageTexture{img: rgba}
	}
	b := img.Bounds()
	rgba := image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(rgba, rgba.Bounds(), img, b.Min, draw.Src)
	return &ImageTexture{img: rgba}
}

// Size returns the texture size in pixels.
func (t *ImageTexture) Size() Vector2i {
	return Vector2i{X: int32(t.img.Rect.Dx()), Y: int32(t.img.Rect.Dy())}
}

// Image returns the pixel data. It must not be modified.
func (t *ImageTexture) Image() *image.RGBA {
	return t.img
}

// Format returns the GPU texture format matching the pixel layout.
func (t *ImageTexture) Format() gputypes.TextureFormat {
	return gputypes.TextureFormatRGBA8Unorm
}

// textureSize returns the texture size as floats, or 1x1 without texture.
func textureSize(tex Texture) Vector2f {
	if tex == nil {
		return Vector2f{X: 1, Y: 1}
	}
	return ToFloat(tex.Size())
}

// texelToUV divides a texel coordinate by the texture extent, giving 0 for
// an empty texture.
func texelToUV(v, extent float32) float32 {
	if extent == 0 {
		return 0
	}
	return v / extent
}

// fullRect returns the rectangle covering the whole texture.
func fullRect(tex Texture) FloatRect {
	size := ToFloat(tex.Size())
	return FloatRect{W: size.X, H: size.Y}
}
