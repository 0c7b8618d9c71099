package g2d

import (
	"image/color"
	"testing"
)

func TestColorFromHex(t *testing.T) {
	tests := []struct {
		hex  uint32
		want Color
	}{
		{0xFFFFFFFF, White},
		{0x000000FF, Black},
		{0x00000000, Transparent},
		{0xFF0000FF, Red},
		{0x00FF00FF, Green},
		{0x0000FFFF, Blue},
	}
	for _, tt := range tests {
		if got := ColorFromHex(tt.hex); got != tt.want {
			t.Errorf("ColorFromHex(%#08x) = %v, want %v", tt.hex, got, tt.want)
		}
	}
}

func TestColorHexRoundTrip(t *testing.T) {
	for _, hex := range []uint32{0x12345678, 0xFF8000C0, 0x01020304, 0} {
		if got := ColorFromHex(hex).Hex(); got != hex {
			t.Errorf("Hex(ColorFromHex(%#08x)) = %#08x", hex, got)
		}
	}
}

func TestColorClamp(t *testing.T) {
	c := Color{R: -0.5, G: 2, B: 0.5, A: 1}
	want := color.NRGBA{R: 0, G: 255, B: 128, A: 255}
	if got := c.NRGBA(); got != want {
		t.Errorf("NRGBA() = %v, want %v", got, want)
	}
}

func TestColorStdConversion(t *testing.T) {
	in := color.NRGBA{R: 10, G: 20, B: 30, A: 128}
	c := FromStdColor(in)
	if got := c.NRGBA(); got != in {
		t.Errorf("FromStdColor round trip = %v, want %v", got, in)
	}
	if got := ColorFromRGBA8(255, 0, 0, 255); got != Red {
		t.Errorf("ColorFromRGBA8 = %v, want red", got)
	}
}

func TestColorModulate(t *testing.T) {
	got := Color{R: 1, G: 0.5, B: 0.25, A: 1}.Modulate(Color{R: 0.5, G: 0.5, B: 1, A: 0.5})
	want := Color{R: 0.5, G: 0.25, B: 0.25, A: 0.5}
	if got != want {
		t.Errorf("Modulate = %v, want %v", got, want)
	}
	if got := Red.Modulate(White); got != Red {
		t.Errorf("Red*White = %v", got)
	}
}
