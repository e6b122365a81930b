package physics

import (
	"github.com/lixenwraith/planar/vmath"
)

// Motion is the per-entity kinematic state, mutated once per phase
type Motion struct {
	// Velocity in units per second
	Velocity vmath.Vec2
	// AngularVelocity in turns per second (Q32.32, One = full turn)
	AngularVelocity int64
	// Acceleration in units per second squared
	Acceleration vmath.Vec2
}

// NewMotion creates a motion state with the given linear velocity
func NewMotion(velocity vmath.Vec2) Motion {
	return Motion{Velocity: velocity}
}

// WithAngular returns a copy spinning at the given rate
func (m Motion) WithAngular(angular int64) Motion {
	m.AngularVelocity = angular
	return m
}
