// Package physics implements the deterministic collision and
// resolution pipeline over the geometry primitives: body/motion
// components, layer-masked broad phase, exact narrow phase with
// enter/stay/exit classification, and impulse-based resolution with
// positional correction. Everything runs in Q32.32 fixed point
package physics

import (
	"github.com/lixenwraith/planar/vmath"
)

// Body carries the mass properties resolution consumes. Mass <= 0
// denotes infinite mass: the body never moves, with no special-casing
// in the resolution formulas because its inverse mass is simply zero.
// Friction is stored and serialized for scene compatibility but the
// resolution step applies no tangential impulse
type Body struct {
	// Mass in Q32.32; 0 means static (infinite mass)
	Mass int64
	// Restitution (bounciness), conceptually [0, 1]
	Restitution int64
	// Friction, conceptually [0, 1]; carried, not consumed
	Friction int64
}

// NewStaticBody creates an immovable body
func NewStaticBody(restitution, friction int64) Body {
	return Body{
		Mass:        0,
		Restitution: restitution,
		Friction:    friction,
	}
}

// NewDynamicBody creates a movable body with the given mass
func NewDynamicBody(mass, restitution, friction int64) Body {
	return Body{
		Mass:        mass,
		Restitution: restitution,
		Friction:    friction,
	}
}

// IsStatic reports whether the body has infinite mass
func (b Body) IsStatic() bool {
	return b.Mass <= 0
}

// InverseMass is the sole quantity resolution reads: 0 for static
// bodies, saturating 1/mass otherwise
func (b Body) InverseMass() int64 {
	if b.IsStatic() {
		return 0
	}
	return vmath.Recip(b.Mass)
}
