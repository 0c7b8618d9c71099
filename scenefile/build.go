package scenefile

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"sort"

	"github.com/gogpu/g2d"
	"github.com/gogpu/g2d/internal/imageio"
	"github.com/gogpu/g2d/surface"
)

// ErrUnknownTexture is wrapped by a ShapeError when an entry names a
// texture the scene does not declare.
var ErrUnknownTexture = errors.New("scenefile: unknown texture")

// ShapeError reports an invalid shape or sprite entry.
type ShapeError struct {
	// Section is "shapes" or "sprites".
	Section string
	Index   int
	Name    string
	Err     error
}

func (e *ShapeError) Error() string {
	if e.Name != "" {
		return fmt.Sprintf("scenefile: %s[%d] %q: %v", e.Section, e.Index, e.Name, e.Err)
	}
	return fmt.Sprintf("scenefile: %s[%d]: %v", e.Section, e.Index, e.Err)
}

func (e *ShapeError) Unwrap() error { return e.Err }

// Drawing is a scene turned into ready-to-draw objects.
type Drawing struct {
	Width, Height int
	Clear         g2d.Color

	LogicalWidth, LogicalHeight int

	// View is nil when the scene keeps the target's default view.
	View *g2d.View

	Textures map[string]*g2d.ImageTexture

	// Items holds every shape and then every sprite, in file order.
	Items []g2d.Drawable

	// Named objects, for callers that animate them.
	Shapes  map[string]*g2d.Shape
	Sprites map[string]*g2d.Sprite
}

// TextureLoader decodes the texture stored at name in fsys.
type TextureLoader interface {
	Load(fsys fs.FS, name string) (*g2d.ImageTexture, error)
}

type loaderFunc func(fsys fs.FS, name string) (*g2d.ImageTexture, error)

func (f loaderFunc) Load(fsys fs.FS, name string) (*g2d.ImageTexture, error) { return f(fsys, name) }

// Build loads the scene's textures from fsys and creates its drawables.
// Texture paths are fs.FS paths: slash separated and relative to the root
// of fsys.
func (sc *Scene) Build(fsys fs.FS) (*Drawing, error) {
	return sc.BuildWith(fsys, loaderFunc(imageio.LoadFS))
}

// BuildWith is Build with a custom texture loader, typically a cache that
// survives rebuilds.
func (sc *Scene) BuildWith(fsys fs.FS, loader TextureLoader) (*Drawing, error) {
	clr, err := ParseColor(sc.Canvas.Clear, g2d.Transparent)
	if err != nil {
		return nil, fmt.Errorf("scenefile: canvas: %w", err)
	}
	d := &Drawing{
		Width:         sc.Canvas.Width,
		Height:        sc.Canvas.Height,
		Clear:         clr,
		LogicalWidth:  sc.Canvas.LogicalWidth,
		LogicalHeight: sc.Canvas.LogicalHeight,
		Textures:      make(map[string]*g2d.ImageTexture, len(sc.Textures)),
		Shapes:        make(map[string]*g2d.Shape),
		Sprites:       make(map[string]*g2d.Sprite),
	}
	if sc.View != nil {
		v := sc.View.build()
		d.View = &v
	}

	names := make([]string, 0, len(sc.Textures))
	for name := range sc.Textures {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		tex, err := loader.Load(fsys, sc.Textures[name])
		if err != nil {
			return nil, fmt.Errorf("scenefile: texture %q: %w", name, err)
		}
		d.Textures[name] = tex
	}

	for i := range sc.Shapes {
		entry := &sc.Shapes[i]
		s, err := entry.build(d.Textures)
		if err != nil {
			return nil, &ShapeError{Section: "shapes", Index: i, Name: entry.Name, Err: err}
		}
		d.Items = append(d.Items, s)
		if entry.Name != "" {
			d.Shapes[entry.Name] = s
		}
	}
	for i := range sc.Sprites {
		entry := &sc.Sprites[i]
		s, err := entry.build(d.Textures)
		if err != nil {
			return nil, &ShapeError{Section: "sprites", Index: i, Name: entry.Name, Err: err}
		}
		d.Items = append(d.Items, s)
		if entry.Name != "" {
			d.Sprites[entry.Name] = s
		}
	}

	g2d.Logger().Debug("scenefile: built",
		slog.Int("textures", len(d.Textures)),
		slog.Int("items", len(d.Items)))
	return d, nil
}

// Options returns surface options matching the canvas.
func (d *Drawing) Options() surface.Options {
	o := surface.DefaultOptions(d.Width, d.Height)
	o.ClearColor = d.Clear
	o.LogicalWidth = d.LogicalWidth
	o.LogicalHeight = d.LogicalHeight
	return o
}

// Render applies the view, clears t and draws every item.
func (d *Drawing) Render(t surface.Surface) {
	if d.View != nil {
		t.SetView(*d.View)
	}
	t.Clear(d.Clear)
	g2d.Draw(t, d.Items...)
}

func (v *View) build() g2d.View {
	view := g2d.NewView()
	view.SetCenter(vec(v.Center))
	switch {
	case v.ZoomXY != [2]float32{}:
		view.SetZoom(vec(v.ZoomXY))
	case v.Zoom != 0:
		view.SetUniformZoom(v.Zoom)
	}
	view.SetAngle(v.Angle)
	return view
}

func (tr *Transform) apply(t *g2d.Transformable) {
	t.SetMirroring(tr.Mirror)
	t.SetOrigin(vec(tr.Origin))
	if tr.Scale != nil {
		t.SetScale(vec(*tr.Scale))
	}
	t.SetRotation(tr.Rotation)
	t.SetPosition(vec(tr.Position))
}

func (entry *Shape) geometry() (g2d.Geometry, error) {
	switch entry.Kind {
	case "circle":
		n := entry.Points
		if n == 0 {
			n = g2d.DefaultCirclePoints
		}
		return g2d.Circle{Radius: entry.Radius, Points: n}, nil
	case "ellipse":
		n := entry.Points
		if n == 0 {
			n = g2d.DefaultEllipsePoints
		}
		return g2d.Ellipse{Radii: vec(entry.Radii), Points: n}, nil
	case "rectangle":
		return g2d.Rectangle{Size: vec(entry.Size)}, nil
	case "polygon":
		pts := make([]g2d.Vector2f, len(entry.Vertices))
		for i, p := range entry.Vertices {
			pts[i] = vec(p)
		}
		return g2d.Polygon{Points: pts}, nil
	case "":
		return nil, errors.New("missing kind")
	default:
		return nil, fmt.Errorf("unknown kind %q", entry.Kind)
	}
}

func (entry *Shape) build(textures map[string]*g2d.ImageTexture) (*g2d.Shape, error) {
	geom, err := entry.geometry()
	if err != nil {
		return nil, err
	}
	fill, err := ParseColor(entry.Fill, g2d.White)
	if err != nil {
		return nil, err
	}
	line, err := ParseColor(entry.Outline, g2d.White)
	if err != nil {
		return nil, err
	}

	s := g2d.NewShape(geom)
	s.SetFillColor(fill)
	s.SetOutlineColor(line)
	if entry.MiterCutoff != nil {
		s.SetMiterCutoff(*entry.MiterCutoff)
	}
	s.SetOutlineThickness(entry.OutlineThickness)
	if entry.Texture != "" {
		tex, ok := textures[entry.Texture]
		if !ok {
			return nil, fmt.Errorf("%w %q", ErrUnknownTexture, entry.Texture)
		}
		if entry.TextureRect != nil {
			s.SetTextureWithRect(tex, rect(*entry.TextureRect))
		} else {
			s.SetTexture(tex)
		}
	}
	entry.Transform.apply(&s.Transformable)
	return s, nil
}

func (entry *Sprite) build(textures map[string]*g2d.ImageTexture) (*g2d.Sprite, error) {
	if entry.Texture == "" {
		return nil, errors.New("missing texture")
	}
	tex, ok := textures[entry.Texture]
	if !ok {
		return nil, fmt.Errorf("%w %q", ErrUnknownTexture, entry.Texture)
	}
	tint, err := ParseColor(entry.Color, g2d.White)
	if err != nil {
		return nil, err
	}

	s := g2d.NewSprite()
	if entry.TextureRect != nil {
		s.SetTextureWithRect(tex, rect(*entry.TextureRect))
	} else {
		s.SetTexture(tex)
	}
	s.SetFilterColor(tint)
	entry.Transform.apply(&s.Transformable)
	if entry.Center != nil {
		s.SetCenterPosition(vec(*entry.Center))
	}
	return s, nil
}

func vec(v [2]float32) g2d.Vector2f { return g2d.Vec2(v[0], v[1]) }

func rect(r [4]float32) g2d.FloatRect {
	return g2d.FloatRect{X: r[0], Y: r[1], W: r[2], H: r[3]}
}
