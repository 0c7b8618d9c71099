package g2d

import "image/color"

// Color is a non-premultiplied colour with components in [0, 1].
// Colours are passed to the target per batch; they are never baked into
// vertex data.
type Color struct {
	R, G, B, A float32
}

// Named colours.
var (
	White       = Color{1, 1, 1, 1}
	Black       = Color{0, 0, 0, 1}
	Transparent = Color{0, 0, 0, 0}

	Red   = Color{1, 0, 0, 1}
	Green = Color{0, 1, 0, 1}
	Blue  = Color{0, 0, 1, 1}

	Yellow  = Color{1, 1, 0, 1}
	Cyan    = Color{0, 1, 1, 1}
	Magenta = Color{1, 0, 1, 1}

	Grey      = Color{0.5, 0.5, 0.5, 1}
	DarkGrey  = Color{0.25, 0.25, 0.25, 1}
	LightGrey = Color{0.75, 0.75, 0.75, 1}
)

// ColorFromHex creates a colour from a 0xRRGGBBAA value.
func ColorFromHex(hex uint32) Color {
	return Color{
		R: float32((hex>>24)&0xFF) / 255,
		G: float32((hex>>16)&0xFF) / 255,
		B: float32((hex>>8)&0xFF) / 255,
		A: float32(hex&0xFF) / 255,
	}
}

// ColorFromRGBA8 creates a colour from 8-bit components.
func ColorFromRGBA8(r, g, b, a uint8) Color {
	return Color{
		R: float32(r) / 255,
		G: float32(g) / 255,
		B: float32(b) / 255,
		A: float32(a) / 255,
	}
}

// FromStdColor converts a standard color.Color.
func FromStdColor(c color.Color) Color {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return ColorFromRGBA8(n.R, n.G, n.B, n.A)
}

// Hex returns the colour packed as 0xRRGGBBAA.
func (c Color) Hex() uint32 {
	return uint32(to8(c.R))<<24 |
		uint32(to8(c.G))<<16 |
		uint32(to8(c.B))<<8 |
		uint32(to8(c.A))
}

// NRGBA converts the colour to the standard non-premultiplied 8-bit form.
func (c Color) NRGBA() color.NRGBA {
	return color.NRGBA{R: to8(c.R), G: to8(c.G), B: to8(c.B), A: to8(c.A)}
}

// Modulate multiplies two colours componentwise.
func (c Color) Modulate(o Color) Color {
	return Color{R: c.R * o.R, G: c.G * o.G, B: c.B * o.B, A: c.A * o.A}
}

func to8(v float32) uint8 {
	switch {
	case v <= 0:
		return 0
	case v >= 1:
		return 255
	}
	return uint8(v*255 + 0.5)
}
