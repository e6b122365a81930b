package physics

import (
	"github.com/lixenwraith/planar/core"
	"github.com/lixenwraith/planar/engine"
	"github.com/lixenwraith/planar/geometry"
)

// Space owns the physics-side component stores. Each simulated
// entity carries at most one of each; the pipeline reads them through
// the stores and never aliases components across entities
type Space struct {
	Shapes     *engine.Store[geometry.Shape]
	Flags      *engine.Store[CollisionFlag]
	Transforms *engine.Store[Transform]
	Bodies     *engine.Store[Body]
	Motions    *engine.Store[Motion]
}

func NewSpace() *Space {
	return &Space{
		Shapes:     engine.NewStore[geometry.Shape](),
		Flags:      engine.NewStore[CollisionFlag](),
		Transforms: engine.NewStore[Transform](),
		Bodies:     engine.NewStore[Body](),
		Motions:    engine.NewStore[Motion](),
	}
}

// Register wires entity destruction so a despawned entity vanishes
// from every store before the next phase reads it
func (s *Space) Register(w *engine.World) {
	w.OnDestroy(func(e core.Entity) {
		s.Shapes.Remove(e)
		s.Flags.Remove(e)
		s.Transforms.Remove(e)
		s.Bodies.Remove(e)
		s.Motions.Remove(e)
	})
}

// WorldShape returns the entity's shape with its transform applied,
// or false when either component is missing
func (s *Space) WorldShape(e core.Entity) (geometry.Shape, bool) {
	shape, ok := s.Shapes.Get(e)
	if !ok {
		return nil, false
	}
	tr, ok := s.Transforms.Get(e)
	if !ok {
		return nil, false
	}
	return tr.Apply(shape), true
}
