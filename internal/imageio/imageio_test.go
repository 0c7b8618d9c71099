package imageio

import (
	"bytes"
	"errors"
	"image"
	"image/color"
	"image/gif"
	"image/jpeg"
	"image/png"
	"os"
	"path/filepath"
	"testing"
	"testing/fstest"

	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"
)

func testImage() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, 4, 3))
	for y := 0; y < 3; y++ {
		for x := 0; x < 4; x++ {
			img.SetRGBA(x, y, color.RGBA{R: 255, A: 255})
		}
	}
	img.SetRGBA(0, 0, color.RGBA{B: 255, A: 255})
	return img
}

func encode(t *testing.T, enc func(*bytes.Buffer, image.Image) error) []byte {
	t.Helper()
	var buf bytes.Buffer
	if err := enc(&buf, testImage()); err != nil {
		t.Fatalf("encode: %v", err)
	}
	return buf.Bytes()
}

func TestDecodeBytesFormats(t *testing.T) {
	tests := []struct {
		kind string
		enc  func(*bytes.Buffer, image.Image) error
	}{
		{"png", func(b *bytes.Buffer, m image.Image) error { return png.Encode(b, m) }},
		{"jpg", func(b *bytes.Buffer, m image.Image) error { return jpeg.Encode(b, m, &jpeg.Options{Quality: 95}) }},
		{"gif", func(b *bytes.Buffer, m image.Image) error { return gif.Encode(b, m, nil) }},
		{"bmp", func(b *bytes.Buffer, m image.Image) error { return bmp.Encode(b, m) }},
		{"tif", func(b *bytes.Buffer, m image.Image) error { return tiff.Encode(b, m, nil) }},
	}

	for _, tt := range tests {
		t.Run(tt.kind, func(t *testing.T) {
			data := encode(t, tt.enc)

			kind, err := Sniff(data)
			if err != nil {
				t.Fatalf("Sniff: %v", err)
			}
			if kind != tt.kind {
				t.Errorf("Sniff = %q, want %q", kind, tt.kind)
			}

			tex, err := DecodeBytes(data)
			if err != nil {
				t.Fatalf("DecodeBytes: %v", err)
			}
			if s := tex.Size(); s.X != 4 || s.Y != 3 {
				t.Errorf("Size = %v, want 4x3", s)
			}
		})
	}
}

func TestDecodeLosslessPixels(t *testing.T) {
	data := encode(t, func(b *bytes.Buffer, m image.Image) error { return png.Encode(b, m) })
	tex, err := Decode(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	img := tex.Image()
	if c := img.RGBAAt(0, 0); c != (color.RGBA{B: 255, A: 255}) {
		t.Errorf("pixel (0, 0) = %v, want blue", c)
	}
	if c := img.RGBAAt(3, 2); c != (color.RGBA{R: 255, A: 255}) {
		t.Errorf("pixel (3, 2) = %v, want red", c)
	}
}

func TestSniffErrors(t *testing.T) {
	if _, err := Sniff(nil); !errors.Is(err, ErrEmptyData) {
		t.Errorf("Sniff(nil) = %v, want ErrEmptyData", err)
	}

	var unsupported *UnsupportedFormatError
	if _, err := Sniff([]byte("plain text, not an image at all")); !errors.As(err, &unsupported) {
		t.Errorf("Sniff(text) = %v, want UnsupportedFormatError", err)
	} else if unsupported.Kind != "unknown" {
		t.Errorf("Kind = %q, want unknown", unsupported.Kind)
	}
}

func TestDecodeCorrupt(t *testing.T) {
	data := encode(t, func(b *bytes.Buffer, m image.Image) error { return png.Encode(b, m) })
	if _, err := DecodeBytes(data[:len(data)/2]); err == nil {
		t.Error("truncated PNG should fail to decode")
	}
}

func TestLoad(t *testing.T) {
	data := encode(t, func(b *bytes.Buffer, m image.Image) error { return png.Encode(b, m) })

	// The extension does not matter.
	path := filepath.Join(t.TempDir(), "texture.dat")
	if err := os.WriteFile(path, data, 0o600); err != nil {
		t.Fatal(err)
	}
	tex, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if s := tex.Size(); s.X != 4 {
		t.Errorf("Size = %v", s)
	}

	if _, err := Load(filepath.Join(t.TempDir(), "missing.png")); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("Load(missing) = %v, want ErrNotExist", err)
	}
}

func TestLoadFS(t *testing.T) {
	fsys := fstest.MapFS{
		"tex/a.png": {Data: encode(t, func(b *bytes.Buffer, m image.Image) error { return png.Encode(b, m) })},
		"tex/b.txt": {Data: []byte("hello")},
	}
	if _, err := LoadFS(fsys, "tex/a.png"); err != nil {
		t.Fatalf("LoadFS: %v", err)
	}
	var unsupported *UnsupportedFormatError
	if _, err := LoadFS(fsys, "tex/b.txt"); !errors.As(err, &unsupported) {
		t.Errorf("LoadFS(text) = %v, want UnsupportedFormatError", err)
	}
}
