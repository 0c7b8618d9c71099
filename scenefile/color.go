package scenefile

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/gogpu/g2d"
)

var namedColors = map[string]g2d.Color{
	"white":       g2d.White,
	"black":       g2d.Black,
	"transparent": g2d.Transparent,
	"red":         g2d.Red,
	"green":       g2d.Green,
	"blue":        g2d.Blue,
	"yellow":      g2d.Yellow,
	"cyan":        g2d.Cyan,
	"magenta":     g2d.Magenta,
	"grey":        g2d.Grey,
	"gray":        g2d.Grey,
	"darkgrey":    g2d.DarkGrey,
	"darkgray":    g2d.DarkGrey,
	"lightgrey":   g2d.LightGrey,
	"lightgray":   g2d.LightGrey,
}

// ParseColor parses a colour name or a "#RRGGBB" / "#RRGGBBAA" hex value.
// The empty string yields def.
func ParseColor(s string, def g2d.Color) (g2d.Color, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return def, nil
	}
	if c, ok := namedColors[strings.ToLower(s)]; ok {
		return c, nil
	}
	hex, ok := strings.CutPrefix(s, "#")
	if !ok {
		return g2d.Color{}, fmt.Errorf("scenefile: unknown colour %q", s)
	}
	switch len(hex) {
	case 6:
		hex += "ff"
	case 8:
	default:
		return g2d.Color{}, fmt.Errorf("scenefile: bad hex colour %q", s)
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return g2d.Color{}, fmt.Errorf("scenefile: bad hex colour %q: %w", s, err)
	}
	return g2d.ColorFromHex(uint32(v)), nil
}
