package engine

import (
	"testing"

	"github.com/lixenwraith/planar/core"
	"github.com/lixenwraith/planar/events"
)

func TestStoreSetGetRemove(t *testing.T) {
	s := NewStore[int]()
	e := core.Entity(1)

	s.Set(e, 42)
	if got, ok := s.Get(e); !ok || got != 42 {
		t.Errorf("Expected 42, got %d (ok=%v)", got, ok)
	}

	s.Set(e, 7)
	if got, _ := s.Get(e); got != 7 {
		t.Errorf("Expected update to 7, got %d", got)
	}
	if s.Len() != 1 {
		t.Errorf("Expected Len 1 after update, got %d", s.Len())
	}

	s.Remove(e)
	if s.Has(e) {
		t.Errorf("Expected component removed")
	}
}

func TestStoreIterationOrderStable(t *testing.T) {
	s := NewStore[string]()
	ids := []core.Entity{5, 2, 9, 1, 7}
	for _, e := range ids {
		s.Set(e, "x")
	}

	// Insertion order survives removal of a middle element
	s.Remove(9)
	want := []core.Entity{5, 2, 1, 7}
	got := s.Entities()
	if len(got) != len(want) {
		t.Fatalf("Expected %d entities, got %d", len(want), len(got))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Expected entity %d at index %d, got %d", want[i], i, got[i])
		}
	}
}

func TestWorldEntityAllocation(t *testing.T) {
	w := NewWorld(events.NewQueue())
	a := w.CreateEntity()
	b := w.CreateEntity()
	if a == b || a == core.NoEntity || b == core.NoEntity {
		t.Errorf("Expected distinct nonzero entities, got %d and %d", a, b)
	}
}

func TestWorldDestroyHooks(t *testing.T) {
	w := NewWorld(events.NewQueue())
	s := NewStore[int]()
	w.OnDestroy(s.Remove)

	e := w.CreateEntity()
	s.Set(e, 1)
	w.DestroyEntity(e)
	if s.Has(e) {
		t.Errorf("Expected destroy hook to remove the component")
	}
}

type countingSystem struct {
	priority int
	order    *[]int
	id       int
}

func (c *countingSystem) Update() {
	*c.order = append(*c.order, c.id)
}

func (c *countingSystem) Priority() int {
	return c.priority
}

func TestWorldSystemOrder(t *testing.T) {
	w := NewWorld(events.NewQueue())
	var order []int
	w.AddSystem(&countingSystem{priority: 20, order: &order, id: 2})
	w.AddSystem(&countingSystem{priority: 10, order: &order, id: 1})
	w.AddSystem(&countingSystem{priority: 30, order: &order, id: 3})

	w.Update()

	if len(order) != 3 || order[0] != 1 || order[1] != 2 || order[2] != 3 {
		t.Errorf("Expected priority order [1 2 3], got %v", order)
	}
	if w.Tick() != 1 {
		t.Errorf("Expected tick counter 1, got %d", w.Tick())
	}
}
