package audio

import (
	"testing"
	"time"

	"github.com/lixenwraith/planar/events"
)

func TestToneStreamsRequestedDuration(t *testing.T) {
	duration := 20 * time.Millisecond
	want := sampleRate.N(duration)

	streamer := newTone(440, duration)
	buf := make([][2]float64, 512)

	total := 0
	for {
		n, ok := streamer.Stream(buf)
		total += n
		if !ok {
			break
		}
	}

	if total != want {
		t.Errorf("Expected %d samples, got %d", want, total)
	}
}

func TestToneFadesToSilence(t *testing.T) {
	duration := 10 * time.Millisecond
	want := sampleRate.N(duration)

	streamer := newTone(440, duration)
	buf := make([][2]float64, want)
	streamer.Stream(buf)

	last := buf[want-1][0]
	if last > 0.01 || last < -0.01 {
		t.Errorf("Expected final sample near zero, got %f", last)
	}
}

func TestFeedbackSilentWithoutSpeaker(t *testing.T) {
	f := NewFeedback()

	// Never initialized; must not panic or block
	f.HandleEvent(nil, events.Event{Type: events.CollisionStarted})
	f.SetMuted(true)
	f.HandleEvent(nil, events.Event{Type: events.ShapeCommitted})
	f.Cleanup()
}

func TestFeedbackEventTypes(t *testing.T) {
	f := NewFeedback()

	types := f.EventTypes()
	seen := make(map[events.Type]bool, len(types))
	for _, typ := range types {
		seen[typ] = true
	}

	if !seen[events.CollisionStarted] || !seen[events.ShapeCommitted] {
		t.Errorf("Expected collision and commit events to be handled, got %v", types)
	}
	if seen[events.CollisionOngoing] {
		t.Errorf("Expected no tone for ongoing collisions")
	}
}
