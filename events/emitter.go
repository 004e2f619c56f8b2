package events

// Emitter is the capability set a registry exposes. Host types that keep a
// Registry in an unexported field can satisfy it by forwarding.
type Emitter interface {
	AddListener(eventType EventType, listener EventListener, opts ...ListenerOption) error
	On(eventType EventType, listener EventListener, opts ...ListenerOption) error
	Once(eventType EventType, listener EventListener, opts ...ListenerOption) error
	Emit(eventType EventType, data ...any) error
	RemoveListener(eventType EventType, listener EventListener) error
	RemoveAllListeners(eventTypes ...EventType) error
	Listeners(eventType EventType) ([]ListenerEntry, error)
	ListenerCount(eventType EventType) (int, error)
}
