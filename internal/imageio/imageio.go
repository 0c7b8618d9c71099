// Package imageio loads textures from encoded image files.
//
// The container format is detected from the leading bytes with
// github.com/h2non/filetype rather than from the file name, so textures
// with a wrong or missing extension still load.
package imageio

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/gif"
	"image/jpeg"
	"image/png"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/h2non/filetype"
	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"
	"golang.org/x/image/webp"

	"github.com/gogpu/g2d"
)

// ErrEmptyData is returned when image data is empty.
var ErrEmptyData = errors.New("imageio: empty data")

// UnsupportedFormatError is returned for data that is not an image in one
// of the supported formats. Kind is the detected extension, or "unknown".
type UnsupportedFormatError struct {
	Kind string
}

func (e *UnsupportedFormatError) Error() string {
	return "imageio: unsupported format: " + e.Kind
}

type decodeFunc func(io.Reader) (image.Image, error)

// decoders maps filetype extensions to decoders.
var decoders = map[string]decodeFunc{
	"png":  png.Decode,
	"jpg":  jpeg.Decode,
	"gif":  gif.Decode,
	"bmp":  bmp.Decode,
	"tif":  tiff.Decode,
	"webp": webp.Decode,
}

// Formats returns the extensions of the supported formats.
func Formats() []string {
	return []string{"bmp", "gif", "jpg", "png", "tif", "webp"}
}

// Sniff returns the extension of the image format of data, as detected
// from its header.
func Sniff(data []byte) (string, error) {
	if len(data) == 0 {
		return "", ErrEmptyData
	}
	kind, err := filetype.Image(data)
	if err != nil {
		return "", &UnsupportedFormatError{Kind: "unknown"}
	}
	if _, ok := decoders[kind.Extension]; !ok {
		return "", &UnsupportedFormatError{Kind: kind.Extension}
	}
	return kind.Extension, nil
}

// DecodeImage decodes data after detecting its format.
func DecodeImage(data []byte) (image.Image, string, error) {
	kind, err := Sniff(data)
	if err != nil {
		return nil, "", err
	}
	img, err := decoders[kind](bytes.NewReader(data))
	if err != nil {
		return nil, kind, fmt.Errorf("imageio: decode %s: %w", kind, err)
	}
	return img, kind, nil
}

// DecodeBytes decodes data into a texture.
func DecodeBytes(data []byte) (*g2d.ImageTexture, error) {
	img, kind, err := DecodeImage(data)
	if err != nil {
		return nil, err
	}
	tex := g2d.NewImageTexture(img)
	size := tex.Size()
	g2d.Logger().Debug("imageio: decoded texture",
		slog.String("format", kind),
		slog.Int("width", int(size.X)),
		slog.Int("height", int(size.Y)))
	return tex, nil
}

// Decode reads r to the end and decodes it into a texture.
func Decode(r io.Reader) (*g2d.ImageTexture, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("imageio: read: %w", err)
	}
	return DecodeBytes(data)
}

// Load loads a texture from the given file path.
func Load(path string) (*g2d.ImageTexture, error) {
	data, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		return nil, fmt.Errorf("imageio: open file: %w", err)
	}
	tex, err := DecodeBytes(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	g2d.Logger().Info("imageio: loaded texture", slog.String("path", path))
	return tex, nil
}

// LoadFS loads a texture from fsys, for textures referenced by scene files.
func LoadFS(fsys fs.FS, name string) (*g2d.ImageTexture, error) {
	data, err := fs.ReadFile(fsys, name)
	if err != nil {
		return nil, fmt.Errorf("imageio: open file: %w", err)
	}
	tex, err := DecodeBytes(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}
	return tex, nil
}
