package constants

// System priorities; lower runs earlier within a tick
const (
	PriorityInput   = 10
	PriorityEditor  = 50
	PriorityPhysics = 100
	PriorityAudio   = 150
	PriorityRender  = 200
)
