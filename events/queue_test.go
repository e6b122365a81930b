package events

import (
	"sync"
	"testing"

	"github.com/lixenwraith/planar/core"
)

func TestQueueFIFO(t *testing.T) {
	q := NewQueue()
	for i := 0; i < 5; i++ {
		q.Push(Event{Type: CollisionStarted, A: core.Entity(i + 1)})
	}

	got := q.Consume()
	if len(got) != 5 {
		t.Fatalf("Expected 5 events, got %d", len(got))
	}
	for i, ev := range got {
		if ev.A != core.Entity(i+1) {
			t.Errorf("Expected FIFO order, got entity %d at index %d", ev.A, i)
		}
	}

	if q.Consume() != nil {
		t.Errorf("Expected empty queue after consume")
	}
}

func TestQueueConcurrentProducers(t *testing.T) {
	q := NewQueue()
	const producers = 8
	const perProducer = 50

	var wg sync.WaitGroup
	for p := 0; p < producers; p++ {
		wg.Add(1)
		go func(p int) {
			defer wg.Done()
			for i := 0; i < perProducer; i++ {
				q.Push(Event{Type: TriggerEnter, A: core.Entity(p*perProducer + i + 1)})
			}
		}(p)
	}
	wg.Wait()

	total := 0
	for {
		batch := q.Consume()
		if batch == nil {
			break
		}
		total += len(batch)
	}
	if total != producers*perProducer {
		t.Errorf("Expected %d events, got %d", producers*perProducer, total)
	}
}

type captureHandler struct {
	types []Type
	seen  []Event
}

func (c *captureHandler) HandleEvent(_ struct{}, ev Event) {
	c.seen = append(c.seen, ev)
}

func (c *captureHandler) EventTypes() []Type {
	return c.types
}

func TestRouterDispatch(t *testing.T) {
	q := NewQueue()
	r := NewRouter[struct{}](q)

	collisions := &captureHandler{types: []Type{CollisionStarted, CollisionEnded}}
	triggers := &captureHandler{types: []Type{TriggerEnter}}
	r.Register(collisions)
	r.Register(triggers)

	q.Push(Event{Type: CollisionStarted, A: 1, B: 2})
	q.Push(Event{Type: TriggerEnter, A: 3, B: 4})
	q.Push(Event{Type: CollisionEnded, A: 1, B: 2})
	q.Push(Event{Type: ShapeCommitted, A: 9})

	r.DispatchAll(struct{}{})

	if len(collisions.seen) != 2 {
		t.Errorf("Expected 2 collision events, got %d", len(collisions.seen))
	}
	if len(triggers.seen) != 1 {
		t.Errorf("Expected 1 trigger event, got %d", len(triggers.seen))
	}
	if !r.HasHandlers(TriggerEnter) || r.HasHandlers(SceneSaved) {
		t.Errorf("Expected handler registration to match declared types")
	}
}
