package physics

import (
	"sort"

	"github.com/lixenwraith/planar/constants"
	"github.com/lixenwraith/planar/core"
	"github.com/lixenwraith/planar/engine"
	"github.com/lixenwraith/planar/events"
	"github.com/lixenwraith/planar/geometry"
	"github.com/lixenwraith/planar/vmath"
)

// Pipeline advances the simulation one fixed timestep at a time.
// Each Step runs the phases strictly in order with no interleaving:
// force application, velocity integration, broad phase, narrow phase,
// resolution, position integration. The pair sets are explicit
// tick-scoped state owned here, replaced wholesale at tick
// boundaries; nothing ambient survives between ticks
type Pipeline struct {
	world  *engine.World
	space  *Space
	config Config

	// pairs is the set of exactly-colliding pairs after the narrow
	// phase; previous is last tick's snapshot for the enter/stay/exit
	// diff
	pairs    PairSet
	previous PairSet

	// candidates is the broad-phase output in deterministic scan
	// order, re-filtered by the narrow phase each tick
	candidates []Pair
}

func NewPipeline(world *engine.World, space *Space, config Config) *Pipeline {
	return &Pipeline{
		world:    world,
		space:    space,
		config:   config,
		pairs:    NewPairSet(),
		previous: NewPairSet(),
	}
}

// Update runs one fixed step; implements engine.System
func (p *Pipeline) Update() {
	p.Step(p.config.TimeStep)
}

// Priority places the pipeline after input intents and before
// rendering in the system order
func (p *Pipeline) Priority() int {
	return constants.PriorityPhysics
}

// Step executes the phase sequence for one tick of duration dt
func (p *Pipeline) Step(dt int64) {
	p.applyForces()
	p.integrateVelocities(dt)
	p.broadPhase()
	surviving := p.narrowPhase()
	p.resolveCollisions(surviving)
	p.integratePositions(dt)
}

// applyForces resets every non-static body's acceleration to gravity.
// External force accumulation beyond gravity hangs off this phase if
// it is ever needed
func (p *Pipeline) applyForces() {
	for _, e := range p.space.Bodies.Entities() {
		body, ok := p.space.Bodies.Get(e)
		if !ok || body.IsStatic() {
			continue
		}
		motion, ok := p.space.Motions.Get(e)
		if !ok {
			continue
		}
		motion.Acceleration = p.config.Gravity
		p.space.Motions.Set(e, motion)
	}
}

// integrateVelocities advances velocity for every motion-carrying
// entity, static ones included; a static body's velocity is never
// consumed because resolution and gravity both skip it
func (p *Pipeline) integrateVelocities(dt int64) {
	for _, e := range p.space.Motions.Entities() {
		motion, ok := p.space.Motions.Get(e)
		if !ok {
			continue
		}
		motion.Velocity = motion.Velocity.Add(motion.Acceleration.Scale(dt))
		p.space.Motions.Set(e, motion)
	}
}

// broadPhase snapshots the previous tick's pair set and rebuilds the
// candidate list: an O(n²) unordered-pair scan gated first by the
// symmetric layer masks, then by world-space bounding-box overlap
func (p *Pipeline) broadPhase() {
	p.previous = p.pairs
	p.pairs = NewPairSet()
	p.candidates = p.candidates[:0]

	ents := p.space.Shapes.Entities()

	// World bbox per entity, computed fresh this phase
	type entry struct {
		e    core.Entity
		flag CollisionFlag
		bbox geometry.Bbox
	}
	entries := make([]entry, 0, len(ents))
	for _, e := range ents {
		flag, ok := p.space.Flags.Get(e)
		if !ok {
			continue
		}
		shape, ok := p.space.WorldShape(e)
		if !ok {
			continue
		}
		entries = append(entries, entry{e: e, flag: flag, bbox: shape.Bounds()})
	}

	for i := 0; i < len(entries); i++ {
		for j := i + 1; j < len(entries); j++ {
			if !entries[i].flag.CanCollideWith(entries[j].flag) {
				continue
			}
			if !entries[i].bbox.Overlaps(entries[j].bbox) {
				continue
			}
			p.candidates = append(p.candidates, MakePair(entries[i].e, entries[j].e))
		}
	}
}

// narrowPhase re-tests every candidate with the exact collision
// predicate on freshly transformed shapes, discards broad-phase false
// positives, fills the current pair set, and emits the classification
// events. A pair forks into exactly one stream: trigger when either
// flag marks it, collision otherwise
func (p *Pipeline) narrowPhase() []Pair {
	surviving := make([]Pair, 0, len(p.candidates))

	for _, pair := range p.candidates {
		shapeA, ok := p.space.WorldShape(pair.A)
		if !ok {
			continue
		}
		shapeB, ok := p.space.WorldShape(pair.B)
		if !ok {
			continue
		}
		if !geometry.Collides(shapeA, shapeB) {
			continue
		}

		p.pairs.Add(pair)
		surviving = append(surviving, pair)

		entered := !p.previous.Has(pair)
		if p.isTriggerPair(pair) {
			if entered {
				p.world.PushEvent(events.TriggerEnter, pair.A, pair.B, nil)
			} else {
				p.world.PushEvent(events.TriggerStay, pair.A, pair.B, nil)
			}
		} else {
			if entered {
				p.world.PushEvent(events.CollisionStarted, pair.A, pair.B, nil)
			} else {
				p.world.PushEvent(events.CollisionOngoing, pair.A, pair.B, nil)
			}
		}
	}

	// Pairs colliding last tick but gone now: exactly one exit event,
	// sorted for a stable stream
	exits := make([]Pair, 0)
	for pair := range p.previous {
		if !p.pairs.Has(pair) {
			exits = append(exits, pair)
		}
	}
	sort.Slice(exits, func(i, j int) bool {
		if exits[i].A != exits[j].A {
			return exits[i].A < exits[j].A
		}
		return exits[i].B < exits[j].B
	})
	for _, pair := range exits {
		// A despawned participant drops the pair silently
		if !p.space.Flags.Has(pair.A) || !p.space.Flags.Has(pair.B) {
			continue
		}
		if p.isTriggerPair(pair) {
			p.world.PushEvent(events.TriggerExit, pair.A, pair.B, nil)
		} else {
			p.world.PushEvent(events.CollisionEnded, pair.A, pair.B, nil)
		}
	}

	return surviving
}

func (p *Pipeline) isTriggerPair(pair Pair) bool {
	flagA, okA := p.space.Flags.Get(pair.A)
	flagB, okB := p.space.Flags.Get(pair.B)
	return (okA && flagA.IsTrigger) || (okB && flagB.IsTrigger)
}

// resolveCollisions separates the surviving non-trigger pairs and
// applies the restitution impulse. Positional correction splits by
// inverse-mass share, so for two dynamic bodies each moves by the
// other's fraction of the mass sum and a static body never moves
func (p *Pipeline) resolveCollisions(surviving []Pair) {
	for _, pair := range surviving {
		if p.isTriggerPair(pair) {
			continue
		}

		bodyA, ok := p.space.Bodies.Get(pair.A)
		if !ok {
			continue
		}
		bodyB, ok := p.space.Bodies.Get(pair.B)
		if !ok {
			continue
		}
		motionA, ok := p.space.Motions.Get(pair.A)
		if !ok {
			continue
		}
		motionB, ok := p.space.Motions.Get(pair.B)
		if !ok {
			continue
		}
		trA, ok := p.space.Transforms.Get(pair.A)
		if !ok {
			continue
		}
		trB, ok := p.space.Transforms.Get(pair.B)
		if !ok {
			continue
		}

		shapeA, ok := p.space.WorldShape(pair.A)
		if !ok {
			continue
		}
		shapeB, ok := p.space.WorldShape(pair.B)
		if !ok {
			continue
		}

		// sep translates B out of A
		sep, ok := geometry.SeparationVector(shapeA, shapeB)
		if !ok {
			continue
		}

		invA := bodyA.InverseMass()
		invB := bodyB.InverseMass()
		invSum := vmath.Add(invA, invB)
		if invSum == 0 {
			// Both static: nothing correctable
			continue
		}

		// Positional correction, heavier body moves less
		weightA := vmath.Div(invA, invSum)
		weightB := vmath.Div(invB, invSum)
		trA.Position = trA.Position.Sub(sep.Scale(weightA))
		trB.Position = trB.Position.Add(sep.Scale(weightB))
		p.space.Transforms.Set(pair.A, trA)
		p.space.Transforms.Set(pair.B, trB)

		normal := sep.Normalize()
		if normal.IsZero() {
			continue
		}

		// Skip the impulse when the pair is already separating
		velAlongNormal := motionB.Velocity.Sub(motionA.Velocity).Dot(normal)
		if velAlongNormal >= 0 {
			continue
		}

		restitution := vmath.Add(bodyA.Restitution, bodyB.Restitution) >> 1
		j := vmath.Div(
			vmath.Mul(-(vmath.One+restitution), velAlongNormal),
			invSum,
		)
		impulse := normal.Scale(j)

		motionA.Velocity = motionA.Velocity.Sub(impulse.Scale(invA))
		motionB.Velocity = motionB.Velocity.Add(impulse.Scale(invB))
		p.space.Motions.Set(pair.A, motionA)
		p.space.Motions.Set(pair.B, motionB)
	}
}

// integratePositions advances each transform by its motion
func (p *Pipeline) integratePositions(dt int64) {
	for _, e := range p.space.Transforms.Entities() {
		motion, ok := p.space.Motions.Get(e)
		if !ok {
			continue
		}
		tr, ok := p.space.Transforms.Get(e)
		if !ok {
			continue
		}
		tr.Position = tr.Position.Add(motion.Velocity.Scale(dt))
		tr.Rotation = tr.Rotation.Compose(vmath.Mul(motion.AngularVelocity, dt))
		p.space.Transforms.Set(e, tr)
	}
}

// Pairs returns the current colliding pair set, read by the debug
// renderer after the tick completes
func (p *Pipeline) Pairs() []Pair {
	out := make([]Pair, 0, len(p.pairs))
	for pair := range p.pairs {
		out = append(out, pair)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].A != out[j].A {
			return out[i].A < out[j].A
		}
		return out[i].B < out[j].B
	})
	return out
}
