// Package core holds the primitive identities shared by every layer.
package core

// Entity is a stable identifier for a simulated object. IDs are
// allocated monotonically and never reused within a session, so they
// stay valid as map and set keys across ticks
type Entity uint64

// NoEntity is the zero value, never allocated
const NoEntity Entity = 0
