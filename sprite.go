package g2d

// spriteIndices splits the sprite quad into two triangles.
var spriteIndices = [6]uint16{0, 1, 2, 2, 3, 0}

// Sprite is a transformable textured rectangle sized to its texture
// rectangle. It draws nothing until a texture is set.
//
// Sprite is not safe for concurrent use.
type Sprite struct {
	Transformable

	texture     Texture
	textureRect FloatRect
	color       Color

	local [4]Vector2f
	uvs   [4]Vector2f
	mesh  bakedMesh
}

// NewSprite returns a sprite without texture.
func NewSprite() *Sprite {
	return &Sprite{
		Transformable: NewTransformable(),
		color:         White,
	}
}

// NewSpriteWithTexture returns a sprite showing the whole texture.
func NewSpriteWithTexture(tex Texture) *Sprite {
	s := NewSprite()
	s.SetTexture(tex)
	return s
}

// Texture returns the texture, or nil.
func (s *Sprite) Texture() Texture { return s.texture }

// TextureRect returns the displayed texture sub-rectangle in pixels.
func (s *Sprite) TextureRect() FloatRect { return s.textureRect }

// SetTexture shows the whole of tex.
func (s *Sprite) SetTexture(tex Texture) {
	if tex == nil {
		s.texture = nil
		s.updateLocalGeometry()
		return
	}
	s.SetTextureWithRect(tex, fullRect(tex))
}

// SetTextureWithRect shows the given sub-rectangle of tex.
func (s *Sprite) SetTextureWithRect(tex Texture, rect FloatRect) {
	s.texture = tex
	s.textureRect = rect
	s.updateLocalGeometry()
}

// SetTextureRect changes the displayed sub-rectangle. The sprite is
// resized to match.
func (s *Sprite) SetTextureRect(rect FloatRect) {
	s.textureRect = rect
	s.updateLocalGeometry()
}

// FilterColor returns the colour modulating the texture.
func (s *Sprite) FilterColor() Color { return s.color }

// SetFilterColor sets the colour modulating the texture.
func (s *Sprite) SetFilterColor(c Color) { s.color = c }

// SetCenterPosition positions the sprite so that the texture's center
// lands on p. Without texture this is SetPosition.
func (s *Sprite) SetCenterPosition(p Vector2f) {
	if s.texture != nil {
		p = p.Sub(ToFloat(s.texture.Size()).Div(2))
	}
	s.SetPosition(p)
}

// CenterPosition returns the position offset by half the texture size.
// Without texture this is Position.
func (s *Sprite) CenterPosition() Vector2f {
	p := s.Position()
	if s.texture != nil {
		p = p.Add(ToFloat(s.texture.Size()).Div(2))
	}
	return p
}

// LocalBounds returns the local rectangle covered by the sprite.
func (s *Sprite) LocalBounds() FloatRect {
	return FloatRect{W: s.textureRect.W, H: s.textureRect.H}
}

// GlobalBounds returns the bounding box of the transformed sprite.
func (s *Sprite) GlobalBounds() FloatRect {
	return transformRect(s.Matrix(), s.LocalBounds())
}

// LocalVertices returns the four corners in local space, clockwise from
// the top-left.
func (s *Sprite) LocalVertices() [4]Vector2f { return s.local }

// TextureUVs returns the texture coordinates of the four corners.
func (s *Sprite) TextureUVs() [4]Vector2f { return s.uvs }

// Indices returns the index list splitting the quad into two triangles.
func (s *Sprite) Indices() [6]uint16 { return spriteIndices }

// Bakes returns how many times the corners have been transformed.
func (s *Sprite) Bakes() uint64 { return s.mesh.bakes }

// Draw bakes the corners if stale and submits one indexed batch.
func (s *Sprite) Draw(t Target) {
	if s.texture == nil {
		return
	}
	gen := s.Generation()
	viewID := t.ViewID()
	if s.mesh.stale(gen, viewID) {
		m := t.Transform().Multiply(s.Matrix())
		s.mesh.bake(s.local[:], m, gen, viewID)
	}
	t.DrawBatch(Batch{
		Texture:   s.texture,
		Positions: s.mesh.world,
		UVs:       s.uvs[:],
		Color:     s.color,
		Indices:   spriteIndices[:],
	})
}

func (s *Sprite) updateLocalGeometry() {
	w, h := s.textureRect.W, s.textureRect.H
	s.local = [4]Vector2f{{}, {X: w}, {X: w, Y: h}, {Y: h}}
	s.mesh.dirty = true

	if s.texture == nil {
		s.uvs = [4]Vector2f{}
		return
	}

	size := ToFloat(s.texture.Size())
	u1 := texelToUV(s.textureRect.X, size.X)
	v1 := texelToUV(s.textureRect.Y, size.Y)
	u2 := texelToUV(s.textureRect.X+s.textureRect.W, size.X)
	v2 := texelToUV(s.textureRect.Y+s.textureRect.H, size.Y)
	s.uvs = [4]Vector2f{{X: u1, Y: v1}, {X: u2, Y: v1}, {X: u2, Y: v2}, {X: u1, Y: v2}}
}
