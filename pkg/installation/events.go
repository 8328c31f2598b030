package installation

import "slices"

// EventType names a change to the registry.
type EventType string

const (
	EventAdded            EventType = "added"
	EventRemoved          EventType = "removed"
	EventRenamed          EventType = "renamed"
	EventDirectoryChanged EventType = "directory-changed"
	EventRelinked         EventType = "relinked"
)

// Event describes one change. Previous holds the old version string for
// EventRenamed and the old directory for EventDirectoryChanged.
type Event struct {
	Type         EventType
	Installation *Installation
	Previous     string
}

// Listener receives events synchronously, after the change is complete.
type Listener func(Event)

// Subscribe registers l and returns a function that unregisters it.
func (r *Registry) Subscribe(l Listener) func() {
	r.nextListener++
	id := r.nextListener
	r.listeners[id] = l
	return func() {
		delete(r.listeners, id)
	}
}

func (r *Registry) emit(t EventType, inst *Installation, previous string) {
	e := Event{Type: t, Installation: inst, Previous: previous}
	for _, id := range r.listenerOrder() {
		// a listener may unsubscribe another during this emit
		if l, ok := r.listeners[id]; ok {
			l(e)
		}
	}
}

func (r *Registry) listenerOrder() []int {
	ids := make([]int, 0, len(r.listeners))
	for id := range r.listeners {
		ids = append(ids, id)
	}
	slices.Sort(ids)
	return ids
}
