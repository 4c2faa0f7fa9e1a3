package core

// Vec2 is a two-component vector with value semantics.
type Vec2 struct {
	X, Y float64
}

// Add returns the component-wise sum of v and o.
func (v Vec2) Add(o Vec2) Vec2 {
	return Vec2{X: v.X + o.X, Y: v.Y + o.Y}
}

// Scale returns v multiplied by s.
func (v Vec2) Scale(s float64) Vec2 {
	return Vec2{X: v.X * s, Y: v.Y * s}
}

// Body is a rectangle that moves: it carries velocity and acceleration
// alongside its bounds.
type Body struct {
	Rect  Rect
	Vel   Vec2
	Accel Vec2
}

// NewBody creates a body at rest with the given bounds.
func NewBody(r Rect) Body {
	return Body{Rect: r}
}

// Integrate advances the body by exactly one fixed tick using
// semi-implicit Euler: velocity first, then position with the new velocity.
func (b *Body) Integrate() {
	b.Vel = b.Vel.Add(b.Accel)
	b.Rect.X += b.Vel.X
	b.Rect.Y += b.Vel.Y
}
