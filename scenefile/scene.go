// Package scenefile reads scene descriptions and turns them into g2d
// drawables.
//
// A scene is written in TOML or YAML; the format is picked from the file
// extension (.toml, .yaml, .yml). Unknown keys are rejected so typos show
// up as errors instead of silently ignored settings.
//
// Example (TOML):
//
//	[canvas]
//	width = 200
//	height = 100
//	clear = "#202020"
//
//	[textures]
//	brick = "brick.png"
//
//	[[shapes]]
//	kind = "circle"
//	radius = 30
//	points = 32
//	fill = "red"
//	outline = "white"
//	outline_thickness = 2
//	position = [50, 50]
//
//	[[sprites]]
//	texture = "brick"
//	position = [120, 20]
//	scale = [2, 2]
package scenefile

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"github.com/gogpu/g2d"
)

// ErrUnknownFormat is returned for files whose extension names no
// supported scene format.
var ErrUnknownFormat = errors.New("scenefile: unknown format")

// Format is a scene file encoding.
type Format int

// Supported formats.
const (
	TOML Format = iota
	YAML
)

// String returns the format name.
func (f Format) String() string {
	switch f {
	case TOML:
		return "toml"
	case YAML:
		return "yaml"
	default:
		return fmt.Sprintf("Format(%d)", int(f))
	}
}

// FormatFromPath picks the format from the file extension.
func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		return TOML, nil
	case ".yaml", ".yml":
		return YAML, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownFormat, filepath.Ext(path))
	}
}

// Default canvas size used when the scene leaves it out.
const (
	DefaultWidth  = 800
	DefaultHeight = 600
)

// Scene is the decoded form of a scene file.
type Scene struct {
	Canvas   Canvas            `toml:"canvas" yaml:"canvas"`
	View     *View             `toml:"view" yaml:"view"`
	Textures map[string]string `toml:"textures" yaml:"textures"`
	Shapes   []Shape           `toml:"shapes" yaml:"shapes"`
	Sprites  []Sprite          `toml:"sprites" yaml:"sprites"`
}

// Canvas describes the render target.
type Canvas struct {
	Width  int    `toml:"width" yaml:"width"`
	Height int    `toml:"height" yaml:"height"`
	Clear  string `toml:"clear" yaml:"clear"`

	// Logical size, when set, fixes the target center independently of
	// the pixel size.
	LogicalWidth  int `toml:"logical_width" yaml:"logical_width"`
	LogicalHeight int `toml:"logical_height" yaml:"logical_height"`
}

// View is the camera. Zoom 0 means 1.
type View struct {
	Center [2]float32 `toml:"center" yaml:"center"`
	Zoom   float32    `toml:"zoom" yaml:"zoom"`
	ZoomXY [2]float32 `toml:"zoom_xy" yaml:"zoom_xy"`
	Angle  float32    `toml:"angle" yaml:"angle"`
}

// Transform is the placement shared by shapes and sprites.
type Transform struct {
	Position [2]float32  `toml:"position" yaml:"position"`
	Origin   [2]float32  `toml:"origin" yaml:"origin"`
	Scale    *[2]float32 `toml:"scale" yaml:"scale"`
	Rotation float32     `toml:"rotation" yaml:"rotation"`
	Mirror   bool        `toml:"mirror" yaml:"mirror"`
}

// Shape describes one g2d.Shape. Kind selects which geometry fields are
// read: circle (Radius, Points), ellipse (Radii, Points), rectangle (Size)
// or polygon (Vertices).
type Shape struct {
	Name string `toml:"name" yaml:"name"`
	Kind string `toml:"kind" yaml:"kind"`

	Radius   float32      `toml:"radius" yaml:"radius"`
	Radii    [2]float32   `toml:"radii" yaml:"radii"`
	Points   int          `toml:"points" yaml:"points"`
	Size     [2]float32   `toml:"size" yaml:"size"`
	Vertices [][2]float32 `toml:"vertices" yaml:"vertices"`

	Fill             string   `toml:"fill" yaml:"fill"`
	Outline          string   `toml:"outline" yaml:"outline"`
	OutlineThickness float32  `toml:"outline_thickness" yaml:"outline_thickness"`
	MiterCutoff      *float32 `toml:"miter_cutoff" yaml:"miter_cutoff"`

	Texture     string      `toml:"texture" yaml:"texture"`
	TextureRect *[4]float32 `toml:"texture_rect" yaml:"texture_rect"`

	Transform `yaml:",inline"`
}

// Sprite describes one g2d.Sprite.
type Sprite struct {
	Name        string      `toml:"name" yaml:"name"`
	Texture     string      `toml:"texture" yaml:"texture"`
	TextureRect *[4]float32 `toml:"texture_rect" yaml:"texture_rect"`
	Color       string      `toml:"color" yaml:"color"`

	// Center, when set, places the middle of the texture here instead of
	// using Position.
	Center *[2]float32 `toml:"center" yaml:"center"`

	Transform `yaml:",inline"`
}

// Decode parses data in the given format.
func Decode(data []byte, f Format) (*Scene, error) {
	var sc Scene
	switch f {
	case TOML:
		dec := toml.NewDecoder(bytes.NewReader(data))
		dec.DisallowUnknownFields()
		if err := dec.Decode(&sc); err != nil {
			return nil, fmt.Errorf("scenefile: decode toml: %w", err)
		}
	case YAML:
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		// An empty document decodes to the zero scene.
		if err := dec.Decode(&sc); err != nil && !errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("scenefile: decode yaml: %w", err)
		}
	default:
		return nil, fmt.Errorf("%w: %v", ErrUnknownFormat, f)
	}
	sc.applyDefaults()
	return &sc, nil
}

// Load reads and decodes the scene file at path.
func Load(path string) (*Scene, error) {
	f, err := FormatFromPath(path)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		return nil, fmt.Errorf("scenefile: read file: %w", err)
	}
	sc, err := Decode(data, f)
	if err != nil {
		return nil, fmt.Errorf("%w (%s)", err, path)
	}
	g2d.Logger().Info("scenefile: loaded",
		slog.String("path", path),
		slog.String("format", f.String()),
		slog.Int("shapes", len(sc.Shapes)),
		slog.Int("sprites", len(sc.Sprites)))
	return sc, nil
}

func (sc *Scene) applyDefaults() {
	if sc.Canvas.Width <= 0 {
		sc.Canvas.Width = DefaultWidth
	}
	if sc.Canvas.Height <= 0 {
		sc.Canvas.Height = DefaultHeight
	}
}
