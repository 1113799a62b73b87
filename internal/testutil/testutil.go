// Package testutil provides testing utilities for larek tests.
package testutil

import (
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/Iron-Ham/larek/internal/event"
	"github.com/Iron-Ham/larek/internal/model"
)

// Products returns a small catalog: two priced products and one unpriced.
func Products() []model.Product {
	return []model.Product{
		{
			ID:          "p1",
			Title:       "+1 hour in a day",
			Description: "Extra time for your side projects.",
			Category:    "soft-skill",
			Price:       model.NewPrice(500),
			Image:       "/Clock.svg",
		},
		{
			ID:          "p2",
			Title:       "HEX lollipop",
			Description: "Licking it makes you a better colorist.",
			Category:    "other",
			Price:       model.NewPrice(1450),
			Image:       "/Lollipop.svg",
		},
		{
			ID:          "p3",
			Title:       "Mythical Bug",
			Description: "Cannot be bought, only caught.",
			Category:    "additional",
			Price:       model.NoPrice(),
			Image:       "/Bug.svg",
		},
	}
}

// Recorder collects published events. It can be passed wherever a
// publisher is expected, or attached to a bus with Attach.
type Recorder struct {
	mu     sync.Mutex
	events []event.Event
}

// NewRecorder creates an empty Recorder.
func NewRecorder() *Recorder {
	return &Recorder{}
}

// Attach subscribes the recorder to every event on the bus.
func (r *Recorder) Attach(bus *event.Bus) *Recorder {
	bus.SubscribeAll(r.Publish)
	return r
}

// Publish records the event.
func (r *Recorder) Publish(e event.Event) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, e)
}

// Names returns the names of the recorded events in order.
func (r *Recorder) Names() []string {
	r.mu.Lock()
	defer r.mu.Unlock()

	names := make([]string, len(r.events))
	for i, e := range r.events {
		names[i] = e.EventType()
	}
	return names
}

// Last returns the most recent event with the given name, or nil.
func (r *Recorder) Last(name string) event.Event {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := len(r.events) - 1; i >= 0; i-- {
		if r.events[i].EventType() == name {
			return r.events[i]
		}
	}
	return nil
}

// Count returns how many events with the given name were recorded.
func (r *Recorder) Count(name string) int {
	r.mu.Lock()
	defer r.mu.Unlock()

	n := 0
	for _, e := range r.events {
		if e.EventType() == name {
			n++
		}
	}
	return n
}

// Reset forgets all recorded events.
func (r *Recorder) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = nil
}

// WriteFile writes content to name inside a fresh temp dir and returns the path.
func WriteFile(t *testing.T, name, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write %s: %v", name, err)
	}
	return path
}
