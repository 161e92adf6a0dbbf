package ecs

// EventType names a frame event.
type EventType string

const (
	// EventBonusWoke fires when the bonus starts moving.
	EventBonusWoke EventType = "bonus.woke"
	// EventBonusSlept fires when the bonus comes to rest again.
	EventBonusSlept EventType = "bonus.slept"
	// EventBonusTouched fires when the rig starts a new contact with the bonus.
	EventBonusTouched EventType = "bonus.touched"
	// EventInspect is raised by the inspect key.
	EventInspect EventType = "inspect"
)

// Event is a frame-local notification. Data is event specific.
type Event struct {
	Type   EventType
	Entity Entity
	Data   any
}

// EventQueue is a FIFO cleared at the end of every scheduler update.
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

// Peek returns the queued events without removing them.
func (q *EventQueue) Peek() []Event {
	if q == nil {
		return nil
	}
	return q.items
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

func (q *EventQueue) flush() {
	if q == nil {
		return
	}
	q.items = nil
}
