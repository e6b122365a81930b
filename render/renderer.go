// Package render draws the scene into the terminal: shapes, the
// draft, collision highlights, separation arrows and the Minkowski
// overlay. It is a read-only sink: nothing in the simulation depends
// on it running
package render

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/planar/config"
	"github.com/lixenwraith/planar/constants"
	"github.com/lixenwraith/planar/core"
	"github.com/lixenwraith/planar/editor"
	"github.com/lixenwraith/planar/engine"
	"github.com/lixenwraith/planar/geometry"
	"github.com/lixenwraith/planar/physics"
	"github.com/lixenwraith/planar/vmath"
)

var (
	styleShape     = tcell.StyleDefault.Foreground(tcell.ColorWhite)
	styleColliding = tcell.StyleDefault.Foreground(tcell.ColorRed)
	styleDraft     = tcell.StyleDefault.Foreground(tcell.ColorYellow)
	styleSelected  = tcell.StyleDefault.Foreground(tcell.ColorAqua)
	styleArrow     = tcell.StyleDefault.Foreground(tcell.ColorGreen)
	styleVelocity  = tcell.StyleDefault.Foreground(tcell.ColorTeal)
	styleMinkowski = tcell.StyleDefault.Foreground(tcell.ColorFuchsia)
	styleGrid      = tcell.StyleDefault.Foreground(tcell.ColorGray)
	styleStatus    = tcell.StyleDefault.Reverse(true)
)

// Renderer is the terminal drawing system, running last in the tick
type Renderer struct {
	screen   tcell.Screen
	Camera   Camera
	world    *engine.World
	space    *physics.Space
	session  *editor.Session
	pipeline *physics.Pipeline
	debug    config.DebugConfig
	paused   func() bool
}

func NewRenderer(
	screen tcell.Screen,
	world *engine.World,
	space *physics.Space,
	session *editor.Session,
	pipeline *physics.Pipeline,
	debug config.DebugConfig,
	paused func() bool,
) *Renderer {
	return &Renderer{
		screen:   screen,
		Camera:   NewCamera(),
		world:    world,
		space:    space,
		session:  session,
		pipeline: pipeline,
		debug:    debug,
		paused:   paused,
	}
}

func (r *Renderer) Priority() int {
	return constants.PriorityRender
}

// Update redraws the whole frame
func (r *Renderer) Update() {
	r.screen.Clear()
	w, h := r.screen.Size()

	r.drawAxes(w, h)

	pairs := r.pipeline.Pairs()
	colliding := make(map[core.Entity]bool, len(pairs)*2)
	for _, p := range pairs {
		colliding[p.A] = true
		colliding[p.B] = true
	}
	selected := make(map[core.Entity]bool)
	for _, e := range r.session.Selection() {
		selected[e] = true
	}

	for _, e := range r.space.Shapes.Entities() {
		shape, ok := r.space.WorldShape(e)
		if !ok {
			continue
		}
		style := styleShape
		if r.debug.ShowColliders && colliding[e] {
			style = styleColliding
		}
		if selected[e] {
			style = styleSelected
		}
		r.drawShape(shape, style, w, h)
	}

	if draft, ok := r.session.Draft(); ok {
		r.drawShape(draft, styleDraft, w, h)
	}

	if r.debug.ShowSeparation {
		r.drawSeparations(pairs, w, h)
	}
	if r.debug.ShowVelocity {
		r.drawVelocities(w, h)
	}

	if overlay, ok := r.session.MinkowskiOverlay(); ok {
		r.drawShape(overlay, styleMinkowski, w, h)
	}

	r.drawCursor(w, h)
	r.drawStatus(w, h, len(pairs))
	r.screen.Show()
}

func (r *Renderer) drawAxes(w, h int) {
	ox, oy := r.Camera.ToCell(vmath.Vec2Zero, w, h)
	if oy >= 0 && oy < h {
		for x := 0; x < w; x++ {
			r.screen.SetContent(x, oy, '-', nil, styleGrid)
		}
	}
	if ox >= 0 && ox < w {
		for y := 0; y < h; y++ {
			r.screen.SetContent(ox, y, '|', nil, styleGrid)
		}
	}
	if ox >= 0 && ox < w && oy >= 0 && oy < h {
		r.screen.SetContent(ox, oy, '+', nil, styleGrid)
	}
}

// drawShape rasterizes any shape through its polygon reduction;
// single points render as a dot, degenerate polygons as their centroid
func (r *Renderer) drawShape(shape geometry.Shape, style tcell.Style, w, h int) {
	poly := shape.ToPolygon()
	switch len(poly) {
	case 0:
		return
	case 1:
		cx, cy := r.Camera.ToCell(poly[0].Pos, w, h)
		r.setCell(cx, cy, '•', style, w, h)
		return
	}
	for i := range poly {
		a := poly[i].Pos
		b := poly[(i+1)%len(poly)].Pos
		r.drawSegment(a, b, '·', style, w, h)
	}
}

func (r *Renderer) drawSeparations(pairs []physics.Pair, w, h int) {
	for _, pair := range pairs {
		shapeA, ok := r.space.WorldShape(pair.A)
		if !ok {
			continue
		}
		shapeB, ok := r.space.WorldShape(pair.B)
		if !ok {
			continue
		}
		sep, ok := geometry.SeparationVector(shapeA, shapeB)
		if !ok {
			continue
		}
		from := shapeB.Centroid().Pos
		r.drawSegment(from, from.Add(sep), '*', styleArrow, w, h)
	}
}

// drawVelocities marks one second of travel from each moving shape's
// centroid
func (r *Renderer) drawVelocities(w, h int) {
	for _, e := range r.space.Motions.Entities() {
		motion, ok := r.space.Motions.Get(e)
		if !ok || motion.Velocity.IsZero() {
			continue
		}
		shape, ok := r.space.WorldShape(e)
		if !ok {
			continue
		}
		from := shape.Centroid().Pos
		r.drawSegment(from, from.Add(motion.Velocity), '~', styleVelocity, w, h)
	}
}

func (r *Renderer) drawCursor(w, h int) {
	cx, cy := r.Camera.ToCell(r.session.Cursor, w, h)
	r.setCell(cx, cy, '┼', styleDraft, w, h)
}

func (r *Renderer) drawStatus(w, h int, pairCount int) {
	state := "running"
	if r.paused != nil && r.paused() {
		state = "paused"
	}
	line := fmt.Sprintf(" tool:%s  shapes:%d  colliding:%d  tick:%d  %s ",
		r.session.Tool(), r.space.Shapes.Len(), pairCount, r.world.Tick(), state)
	for x := 0; x < w; x++ {
		ch := ' '
		if x < len(line) {
			ch = rune(line[x])
		}
		r.screen.SetContent(x, h-1, ch, nil, styleStatus)
	}
}

// drawSegment walks the cells between two world points, Bresenham on
// the cell grid
func (r *Renderer) drawSegment(a, b vmath.Vec2, ch rune, style tcell.Style, w, h int) {
	x0, y0 := r.Camera.ToCell(a, w, h)
	x1, y1 := r.Camera.ToCell(b, w, h)

	// Skip segments entirely outside the viewport; saturated
	// coordinates would otherwise walk the grid for a very long time
	if (x0 < 0 && x1 < 0) || (x0 >= w && x1 >= w) ||
		(y0 < 0 && y1 < 0) || (y0 >= h && y1 >= h) {
		return
	}

	dx := abs(x1 - x0)
	dy := -abs(y1 - y0)
	sx, sy := 1, 1
	if x0 > x1 {
		sx = -1
	}
	if y0 > y1 {
		sy = -1
	}
	err := dx + dy

	for {
		r.setCell(x0, y0, ch, style, w, h)
		if x0 == x1 && y0 == y1 {
			return
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x0 += sx
		}
		if e2 <= dx {
			err += dx
			y0 += sy
		}
	}
}

func (r *Renderer) setCell(x, y int, ch rune, style tcell.Style, w, h int) {
	if x < 0 || x >= w || y < 0 || y >= h-1 {
		return
	}
	r.screen.SetContent(x, y, ch, nil, style)
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
