// internal/event/event.go
package event

// EventType names a kind of event.
type EventType string

// Event is a discrete thing that happened during a tick or an economy action.
type Event struct {
	Type EventType
	Data interface{} // payload, see types.go
}

// Listener receives dispatched events.
type Listener interface {
	OnEvent(event Event)
}

// ListenerFunc adapts a plain function to a Listener.
type ListenerFunc func(Event)

func (f ListenerFunc) OnEvent(e Event) {
	f(e)
}

// Dispatcher fans events out to subscribed listeners in subscription order.
type Dispatcher struct {
	listeners map[EventType][]Listener
}

func NewDispatcher() *Dispatcher {
	return &Dispatcher{
		listeners: make(map[EventType][]Listener),
	}
}

// Subscribe registers listener for each of the given types.
func (d *Dispatcher) Subscribe(listener Listener, types ...EventType) {
	for _, t := range types {
		d.listeners[t] = append(d.listeners[t], listener)
	}
}

func (d *Dispatcher) Unsubscribe(eventType EventType, listener Listener) {
	if listeners, exists := d.listeners[eventType]; exists {
		for i, l := range listeners {
			if l == listener {
				d.listeners[eventType] = append(listeners[:i], listeners[i+1:]...)
				break
			}
		}
	}
}

func (d *Dispatcher) Dispatch(event Event) {
	for _, listener := range d.listeners[event.Type] {
		listener.OnEvent(event)
	}
}

// DispatchAll dispatches events in order.
func (d *Dispatcher) DispatchAll(events []Event) {
	for _, e := range events {
		d.Dispatch(e)
	}
}

// Recorder collects the ordered events of one step.
type Recorder struct {
	events []Event
}

func (r *Recorder) Emit(t EventType, data interface{}) {
	r.events = append(r.events, Event{Type: t, Data: data})
}

// Drain returns the collected events and empties the recorder.
func (r *Recorder) Drain() []Event {
	out := r.events
	r.events = nil
	return out
}

func (r *Recorder) Len() int {
	return len(r.events)
}
