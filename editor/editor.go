// Package editor owns the interactive session state: the active
// tool, the shape being drawn, and the selection. Shapes grow
// incrementally while drawing, so every draft passes through the
// degenerate forms the geometry layer tolerates: a line with
// coincident endpoints, a circle at EPS radius, a polygon of one or
// two points
package editor

import (
	"github.com/lixenwraith/planar/core"
	"github.com/lixenwraith/planar/engine"
	"github.com/lixenwraith/planar/events"
	"github.com/lixenwraith/planar/geometry"
	"github.com/lixenwraith/planar/physics"
	"github.com/lixenwraith/planar/vmath"
)

// Tool selects what the next primary action draws or does
type Tool int

const (
	ToolSelect Tool = iota
	ToolPoint
	ToolLine
	ToolBbox
	ToolCircle
	ToolPolygon
)

func (t Tool) String() string {
	switch t {
	case ToolSelect:
		return "select"
	case ToolPoint:
		return "point"
	case ToolLine:
		return "line"
	case ToolBbox:
		return "bbox"
	case ToolCircle:
		return "circle"
	case ToolPolygon:
		return "polygon"
	}
	return "unknown"
}

// Session is the editor state threaded between input, rendering and
// the world. All mutation happens on the input path under the
// world's update lock
type Session struct {
	world *engine.World
	space *physics.Space

	tool     Tool
	drafting bool
	draft    geometry.Shape
	anchor   vmath.Vec2

	// Cursor in world space, driven by movement intents
	Cursor vmath.Vec2

	// CommitFlag is assigned to every committed shape; the layer
	// matrix from configuration lands here
	CommitFlag physics.CollisionFlag

	// Selection holds up to two entities; two enable the
	// Minkowski-difference overlay
	selection     []core.Entity
	showMinkowski bool
}

func NewSession(world *engine.World, space *physics.Space) *Session {
	return &Session{
		world:      world,
		space:      space,
		tool:       ToolSelect,
		CommitFlag: physics.DefaultFlag(),
	}
}

func (s *Session) Tool() Tool {
	return s.tool
}

// SetTool switches tools, cancelling any draft in progress
func (s *Session) SetTool(t Tool) {
	s.tool = t
	s.drafting = false
	s.draft = nil
}

// Draft returns the in-progress shape for rendering
func (s *Session) Draft() (geometry.Shape, bool) {
	return s.draft, s.drafting
}

// Begin starts a draft at the cursor. Every kind starts degenerate
// and grows as the cursor moves
func (s *Session) Begin() {
	at := s.Cursor
	s.anchor = at
	switch s.tool {
	case ToolPoint:
		s.draft = geometry.PtVec(at)
	case ToolLine:
		s.draft = geometry.Ln(geometry.PtVec(at), geometry.PtVec(at))
	case ToolBbox:
		s.draft = geometry.Bb(geometry.PtVec(at), geometry.PtVec(at))
	case ToolCircle:
		s.draft = geometry.Cr(geometry.PtVec(at), vmath.EPS)
	case ToolPolygon:
		if s.drafting {
			// Each Begin while drafting adds a vertex
			poly := s.draft.(geometry.Polygon)
			s.draft = append(poly, geometry.PtVec(at))
			return
		}
		// A polygon begins as two coincident points: the fixed
		// first vertex and the one tracking the cursor
		s.draft = geometry.Polygon{geometry.PtVec(at), geometry.PtVec(at)}
	case ToolSelect:
		s.selectAt(at)
		return
	}
	s.drafting = true
}

// Track updates the draft's moving part as the cursor moves
func (s *Session) Track() {
	if !s.drafting {
		return
	}
	at := s.Cursor
	switch sh := s.draft.(type) {
	case geometry.Point:
		s.draft = geometry.PtVec(at)
	case geometry.Line:
		s.draft = geometry.Ln(geometry.PtVec(s.anchor), geometry.PtVec(at))
	case geometry.Bbox:
		s.draft = geometry.Bb(geometry.PtVec(s.anchor), geometry.PtVec(at))
	case geometry.Circle:
		radius := at.Sub(s.anchor).Length()
		if radius < vmath.EPS {
			radius = vmath.EPS
		}
		s.draft = geometry.Cr(geometry.PtVec(s.anchor), radius)
	case geometry.Polygon:
		if len(sh) > 0 {
			sh[len(sh)-1] = geometry.PtVec(at)
			s.draft = sh
		}
	}
}

// Commit finalizes the draft into a static solid entity. The shape
// keeps its world-space coordinates; the transform starts as identity
func (s *Session) Commit() (core.Entity, bool) {
	if !s.drafting || s.draft == nil {
		return core.NoEntity, false
	}

	e := s.world.CreateEntity()
	s.space.Shapes.Set(e, s.draft)
	s.space.Transforms.Set(e, physics.NewTransform(vmath.Vec2Zero))
	s.space.Flags.Set(e, s.CommitFlag)
	s.space.Bodies.Set(e, physics.NewStaticBody(vmath.FromFloat(0.5), 0))
	s.space.Motions.Set(e, physics.Motion{})

	s.drafting = false
	s.draft = nil
	s.world.PushEvent(events.ShapeCommitted, e, core.NoEntity, nil)
	return e, true
}

// Cancel discards the draft
func (s *Session) Cancel() {
	s.drafting = false
	s.draft = nil
}

// selectAt toggles selection of the topmost shape containing the
// point, keeping at most the two most recent picks
func (s *Session) selectAt(at vmath.Vec2) {
	target := geometry.PtVec(at)
	for _, e := range s.space.Shapes.Entities() {
		world, ok := s.space.WorldShape(e)
		if !ok {
			continue
		}
		if !world.ContainsPoint(target) {
			continue
		}
		for i, sel := range s.selection {
			if sel == e {
				s.selection = append(s.selection[:i], s.selection[i+1:]...)
				return
			}
		}
		s.selection = append(s.selection, e)
		if len(s.selection) > 2 {
			s.selection = s.selection[len(s.selection)-2:]
		}
		return
	}
}

// Selection returns the selected entities, most recent last
func (s *Session) Selection() []core.Entity {
	return s.selection
}

// DeleteSelection despawns every selected entity
func (s *Session) DeleteSelection() {
	for _, e := range s.selection {
		s.world.DestroyEntity(e)
		s.world.PushEvent(events.ShapeDeleted, e, core.NoEntity, nil)
	}
	s.selection = s.selection[:0]
}

// ToggleMinkowski flips the difference overlay
func (s *Session) ToggleMinkowski() {
	s.showMinkowski = !s.showMinkowski
}

// MinkowskiOverlay returns the difference polygon of the two selected
// shapes when the overlay is enabled
func (s *Session) MinkowskiOverlay() (geometry.Polygon, bool) {
	if !s.showMinkowski || len(s.selection) != 2 {
		return nil, false
	}
	a, ok := s.space.WorldShape(s.selection[0])
	if !ok {
		return nil, false
	}
	b, ok := s.space.WorldShape(s.selection[1])
	if !ok {
		return nil, false
	}
	return geometry.MinkowskiDifference(a.ToPolygon(), b.ToPolygon()), true
}

// MakeDynamic converts the selected shapes into falling bodies with
// the given mass, for playing with the simulation
func (s *Session) MakeDynamic(mass int64) {
	for _, e := range s.selection {
		body, ok := s.space.Bodies.Get(e)
		if !ok {
			continue
		}
		body.Mass = mass
		s.space.Bodies.Set(e, body)
	}
}
