package joystick

import (
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// Fallback placeholder geometry used when no visuals are supplied to NewWidget.
const (
	DefaultOuterRadius      = 60.0
	DefaultInnerRadius      = 35.0
	DefaultPlaceholderAlpha = 0.5
)

// Visual is the capability set the controller needs from a drawable element.
// Width must report the on-screen width after scale is applied.
type Visual interface {
	Width() float64
	SetScale(x, y float64)
	SetOffset(x, y float64)
	SetAlpha(a float64)
}

// Anchorer is implemented by visuals whose origin point can be moved.
// The controller centers both visuals with SetAnchor(0.5, 0.5).
type Anchorer interface {
	SetAnchor(cx, cy float64)
}

// Drawer is implemented by visuals the Widget can render itself.
// (x, y) is the joystick center in screen coordinates; the visual adds its
// own offset.
type Drawer interface {
	Draw(dst *ebiten.Image, x, y float64)
}

// Sprite is an image-backed Visual. The zero value is not usable; create one
// with NewSprite or NewCircle.
type Sprite struct {
	Name  string
	Image *ebiten.Image

	// Offset from the joystick center, in pixels.
	X, Y float64

	ScaleX, ScaleY float64

	// Anchor is the fraction of the scaled size placed at (X, Y).
	AnchorX, AnchorY float64

	Alpha   float64
	Color   Color
	Visible bool
}

// NewSprite creates a sprite that renders img.
func NewSprite(name string, img *ebiten.Image) *Sprite {
	return &Sprite{
		Name:    name,
		Image:   img,
		ScaleX:  1,
		ScaleY:  1,
		Alpha:   1,
		Color:   ColorWhite,
		Visible: true,
	}
}

// NewCircle creates a sprite holding a filled circle of the given radius.
func NewCircle(name string, radius float64, c Color) *Sprite {
	size := int(math.Ceil(radius * 2))
	if size < 1 {
		size = 1
	}
	img := ebiten.NewImage(size, size)
	r := float32(radius)
	vector.DrawFilledCircle(img, r, r, r, c.toRGBA(), true)
	return NewSprite(name, img)
}

// Width returns the scaled width in pixels.
func (s *Sprite) Width() float64 {
	if s.Image == nil {
		return 0
	}
	return float64(s.Image.Bounds().Dx()) * math.Abs(s.ScaleX)
}

// Height returns the scaled height in pixels.
func (s *Sprite) Height() float64 {
	if s.Image == nil {
		return 0
	}
	return float64(s.Image.Bounds().Dy()) * math.Abs(s.ScaleY)
}

// SetScale sets ScaleX and ScaleY.
func (s *Sprite) SetScale(x, y float64) {
	s.ScaleX = x
	s.ScaleY = y
}

// SetAnchor sets AnchorX and AnchorY.
func (s *Sprite) SetAnchor(cx, cy float64) {
	s.AnchorX = cx
	s.AnchorY = cy
}

// SetOffset sets the sprite's offset from the joystick center.
func (s *Sprite) SetOffset(x, y float64) {
	s.X = x
	s.Y = y
}

// Offset returns the sprite's offset from the joystick center.
func (s *Sprite) Offset() Vec2 {
	return Vec2{s.X, s.Y}
}

// SetAlpha sets the sprite's alpha.
func (s *Sprite) SetAlpha(a float64) {
	s.Alpha = a
}

// geoM builds the transform Translate(-anchor) -> Scale -> Translate(center+offset).
func (s *Sprite) geoM(x, y float64) ebiten.GeoM {
	var m ebiten.GeoM
	b := s.Image.Bounds()
	m.Translate(-s.AnchorX*float64(b.Dx()), -s.AnchorY*float64(b.Dy()))
	m.Scale(s.ScaleX, s.ScaleY)
	m.Translate(x+s.X, y+s.Y)
	return m
}

// Draw renders the sprite with its center offset applied.
func (s *Sprite) Draw(dst *ebiten.Image, x, y float64) {
	if !s.Visible || s.Image == nil || s.Alpha <= 0 {
		return
	}
	var op ebiten.DrawImageOptions
	op.GeoM = s.geoM(x, y)
	a := float32(s.Alpha * s.Color.A)
	op.ColorScale.Scale(float32(s.Color.R)*a, float32(s.Color.G)*a, float32(s.Color.B)*a, a)
	dst.DrawImage(s.Image, &op)
}

// toRGBA converts a Color to a premultiplied color.RGBA.
func (c Color) toRGBA() color.RGBA {
	return color.RGBA{
		R: uint8(clamp01(c.R*c.A) * 255),
		G: uint8(clamp01(c.G*c.A) * 255),
		B: uint8(clamp01(c.B*c.A) * 255),
		A: uint8(clamp01(c.A) * 255),
	}
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
