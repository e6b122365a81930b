package engine

import (
	"sync"
	"sync/atomic"

	"github.com/lixenwraith/planar/core"
	"github.com/lixenwraith/planar/events"
)

// System is one unit of per-tick work. Systems run sequentially in
// ascending priority order; the physics pipeline runs its phases
// inside a single system so the phase ordering never interleaves
// with other systems
type System interface {
	Update()
	Priority() int
}

// World allocates entities and drives the ordered system list.
// Component stores are owned by the subsystems that use them and
// attach to the world only through their systems
type World struct {
	mu           sync.RWMutex
	nextEntityID core.Entity

	systems []System

	eventQueue *events.Queue
	tick       atomic.Int64

	updateMu sync.Mutex

	// Destruction hooks let stores owned by other packages drop a
	// despawned entity without the world knowing their types
	destroyHooks []func(core.Entity)
}

func NewWorld(queue *events.Queue) *World {
	return &World{
		nextEntityID: 1,
		systems:      make([]System, 0),
		eventQueue:   queue,
	}
}

// CreateEntity reserves a new entity ID. IDs are never reused
func (w *World) CreateEntity() core.Entity {
	w.mu.Lock()
	defer w.mu.Unlock()

	id := w.nextEntityID
	w.nextEntityID++
	return id
}

// DestroyEntity runs every registered destruction hook. A pair
// referencing the entity mid-tick is dropped by the phase that
// notices the missing component, never treated as an error
func (w *World) DestroyEntity(e core.Entity) {
	w.mu.RLock()
	hooks := w.destroyHooks
	w.mu.RUnlock()
	for _, hook := range hooks {
		hook(e)
	}
}

// OnDestroy registers a hook invoked for every destroyed entity
func (w *World) OnDestroy(hook func(core.Entity)) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.destroyHooks = append(w.destroyHooks, hook)
}

// AddSystem registers a system and keeps the list priority sorted
func (w *World) AddSystem(system System) {
	w.mu.Lock()
	defer w.mu.Unlock()

	w.systems = append(w.systems, system)

	// Bubble sort, small N
	for i := 0; i < len(w.systems)-1; i++ {
		for j := 0; j < len(w.systems)-i-1; j++ {
			if w.systems[j].Priority() > w.systems[j+1].Priority() {
				w.systems[j], w.systems[j+1] = w.systems[j+1], w.systems[j]
			}
		}
	}
}

// Update runs all systems sequentially under the update lock
func (w *World) Update() {
	w.updateMu.Lock()
	defer w.updateMu.Unlock()

	w.mu.RLock()
	systems := make([]System, len(w.systems))
	copy(systems, w.systems)
	w.mu.RUnlock()

	for _, system := range systems {
		system.Update()
	}
	w.tick.Add(1)
}

// RunSafe executes fn while holding the update lock, for callers
// that mutate components from outside the tick loop (editor input)
func (w *World) RunSafe(fn func()) {
	w.updateMu.Lock()
	defer w.updateMu.Unlock()
	fn()
}

// Tick returns the number of completed updates
func (w *World) Tick() int64 {
	return w.tick.Load()
}

// PushEvent emits an event stamped with the current tick
func (w *World) PushEvent(t events.Type, a, b core.Entity, payload any) {
	if w.eventQueue == nil {
		return
	}
	w.eventQueue.Push(events.Event{
		Type:    t,
		A:       a,
		B:       b,
		Payload: payload,
		Tick:    w.tick.Load(),
	})
}
