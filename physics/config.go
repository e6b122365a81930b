package physics

import (
	"github.com/lixenwraith/planar/vmath"
)

// Config is the simulation configuration the pipeline consumes.
// Iteration counts are carried for config compatibility with an
// iterative solver; the single-pass resolution step ignores them
type Config struct {
	// Gravity in units per second squared
	Gravity vmath.Vec2
	// TimeStep is the fixed dt per tick, Q32.32 seconds
	TimeStep int64
	// VelocityIterations and PositionIterations are reserved
	VelocityIterations int
	PositionIterations int
}

// DefaultConfig mirrors the stock editor settings: earth-ish gravity,
// ten simulation ticks per second
func DefaultConfig() Config {
	return Config{
		Gravity:            vmath.V(0, vmath.FromInt(-10)),
		TimeStep:           vmath.FromFloat(0.1),
		VelocityIterations: 8,
		PositionIterations: 3,
	}
}
