package events

import (
	"github.com/lixenwraith/planar/core"
)

// Type identifies an event on the queue
type Type int

const (
	// CollisionStarted fires the first tick a non-trigger pair collides
	// Producer: narrow phase | Payload: nil
	CollisionStarted Type = iota

	// CollisionOngoing fires every subsequent tick the pair stays in contact
	CollisionOngoing

	// CollisionEnded fires once when a previously colliding pair separates
	CollisionEnded

	// TriggerEnter fires when a pair with either side flagged as a
	// trigger begins overlapping. Trigger pairs never produce
	// collision events and are never physically resolved
	TriggerEnter

	// TriggerStay fires while a trigger pair keeps overlapping
	TriggerStay

	// TriggerExit fires once when a trigger pair separates
	TriggerExit

	// ShapeCommitted signals the editor finished drawing a shape
	// Producer: editor | Payload: nil, A is the new entity
	ShapeCommitted

	// ShapeDeleted signals a shape was removed from the scene
	ShapeDeleted

	// SceneSaved / SceneLoaded signal persistence round-trips
	// Payload: scene path string
	SceneSaved
	SceneLoaded
)

func (t Type) String() string {
	switch t {
	case CollisionStarted:
		return "collision_started"
	case CollisionOngoing:
		return "collision_ongoing"
	case CollisionEnded:
		return "collision_ended"
	case TriggerEnter:
		return "trigger_enter"
	case TriggerStay:
		return "trigger_stay"
	case TriggerExit:
		return "trigger_exit"
	case ShapeCommitted:
		return "shape_committed"
	case ShapeDeleted:
		return "shape_deleted"
	case SceneSaved:
		return "scene_saved"
	case SceneLoaded:
		return "scene_loaded"
	}
	return "unknown"
}

// Event carries the participants of a pairwise occurrence. B is
// NoEntity for single-entity events
type Event struct {
	Type    Type
	A, B    core.Entity
	Payload any
	Tick    int64
}
