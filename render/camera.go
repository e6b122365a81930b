package render

import (
	"github.com/lixenwraith/planar/vmath"
)

// Camera maps world space to terminal cells. Floats never appear:
// the mapping is fixed-point until the final integer cell index.
// Vertical resolution is halved to compensate for tall cells
type Camera struct {
	Center vmath.Vec2
	// Zoom is horizontal cells per world unit
	Zoom int
}

func NewCamera() Camera {
	return Camera{Zoom: 4}
}

// ToCell converts a world position to screen cell coordinates for a
// viewport of w by h cells. Y grows upward in world space, downward
// on screen
func (c Camera) ToCell(v vmath.Vec2, w, h int) (int, int) {
	d := v.Sub(c.Center)
	zx := vmath.FromInt(c.Zoom)
	zy := vmath.FromInt(max(c.Zoom/2, 1))
	cx := w/2 + vmath.ToInt(vmath.Mul(d.X, zx))
	cy := h/2 - vmath.ToInt(vmath.Mul(d.Y, zy))
	return cx, cy
}

// FromCell converts a screen cell back to the world position at its
// center, the inverse used for mouse picking
func (c Camera) FromCell(cx, cy, w, h int) vmath.Vec2 {
	zx := vmath.FromInt(c.Zoom)
	zy := vmath.FromInt(max(c.Zoom/2, 1))
	x := vmath.Div(vmath.FromInt(cx-w/2), zx)
	y := vmath.Div(vmath.FromInt(h/2-cy), zy)
	return c.Center.Add(vmath.V(x, y))
}

// Pan shifts the view center by the given world-space offset
func (c *Camera) Pan(offset vmath.Vec2) {
	c.Center = c.Center.Add(offset)
}

// ZoomIn and ZoomOut step the zoom within sane bounds
func (c *Camera) ZoomIn() {
	if c.Zoom < 32 {
		c.Zoom *= 2
	}
}

func (c *Camera) ZoomOut() {
	if c.Zoom > 1 {
		c.Zoom /= 2
	}
}
