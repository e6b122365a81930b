package physics

// CollisionFlag gates which pairs the broad phase considers and
// whether a pair is detect-only. Layer holds the object's own layer
// bit (stored as a mask by convention), Mask the layers it tests
// against
type CollisionFlag struct {
	// IsTrigger marks the object detect-only: its pairs produce
	// trigger events and are never physically resolved
	IsTrigger bool
	Layer     uint32
	Mask      uint32
}

// DefaultFlag is a solid object on layer 1 colliding with everything
func DefaultFlag() CollisionFlag {
	return CollisionFlag{
		IsTrigger: false,
		Layer:     1,
		Mask:      0xFFFFFFFF,
	}
}

// Solid creates a non-trigger flag
func Solid(layer, mask uint32) CollisionFlag {
	return CollisionFlag{IsTrigger: false, Layer: layer, Mask: mask}
}

// Trigger creates a detect-only flag
func Trigger(layer, mask uint32) CollisionFlag {
	return CollisionFlag{IsTrigger: true, Layer: layer, Mask: mask}
}

// CanCollideWith is the symmetric gate: both sides must accept the
// other's layer. Used in the broad phase; pairs that pass it are the
// only ones later phases ever see
func (f CollisionFlag) CanCollideWith(other CollisionFlag) bool {
	return (f.Mask&other.Layer) != 0 && (other.Mask&f.Layer) != 0
}
