// Package g2d provides transformable 2D shapes, sprites and cameras that
// tessellate themselves into triangle lists for a render target.
//
// # Overview
//
// Objects embed a Transformable (position, origin, scale, rotation) and
// implement Drawable. A Target holds a View (camera) and accepts Batches:
// plain triangle lists in pixel space with an optional texture and a
// colour. The target does the rasterizing; package surface provides a
// software implementation.
//
// # Quick Start
//
//	s := surface.NewImageSurface(800, 600)
//
//	c := g2d.NewCircleShape(50, 32)
//	c.SetPosition(g2d.Vec2(400, 300))
//	c.SetFillColor(g2d.Red)
//	c.SetOutlineThickness(4)
//
//	view := s.View()
//	view.SetUniformZoom(2)
//	s.SetView(view)
//
//	c.Draw(s)
//	_ = s.SavePNG("circle.png")
//
// # Caching
//
// Shapes keep three layers of geometry: the outline points, local meshes
// (a triangle fan for the fill, a mitered ribbon for the outline) and
// world-space meshes baked for the last target view. Local meshes are
// rebuilt only when geometry or outline thickness change; world meshes are
// rebaked during Draw only when the shape's transform generation, its
// local meshes or the target's view ID differ from the last bake.
//
// # Coordinate System
//
//   - Origin (0,0) at top-left of the target
//   - X increases right, Y increases down
//   - Angles in degrees; positive angles turn +X towards +Y
//
// # Concurrency
//
// Shapes, sprites, views and targets are meant to be driven by one
// goroutine per frame. None of them lock; concurrent mutation is not
// supported.
package g2d

// Version information
const (
	// Version is the current version of the library
	Version = "0.1.0"

	// VersionMajor is the major version
	VersionMajor = 0

	// VersionMinor is the minor version
	VersionMinor = 1

	// VersionPatch is the patch version
	VersionPatch = 0
)
