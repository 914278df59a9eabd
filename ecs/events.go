package ecs

// Event is a generic ECS event payload.
type Event struct {
	Type string
	Data any
}

const (
	EventPlatformSpawned = "platform_spawned"
	EventPlatformSinking = "platform_sinking"
	EventPlatformRemoved = "platform_removed"
	EventPlatformSettled = "platform_settled"
)

// PlatformEvent describes a platform lifecycle step.
type PlatformEvent struct {
	Entity Entity
	X      float64
	Y      float64
}

// EventQueue is a simple FIFO queue.
type EventQueue struct {
	items []Event
}

// Push adds an event.
func (q *EventQueue) Push(evt Event) {
	if q == nil {
		return
	}
	q.items = append(q.items, evt)
}

// Drain returns all events and clears the queue.
func (q *EventQueue) Drain() []Event {
	if q == nil || len(q.items) == 0 {
		return nil
	}
	out := q.items
	q.items = nil
	return out
}
