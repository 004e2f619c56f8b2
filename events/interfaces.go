package events

//go:generate mockgen -destination=mock/mock_event_listener.go -package=mockevents -source=interfaces.go EventListener

// EventListener receives the data passed to Emit for the event types it is
// attached to. scope is the value given with WithScope, or a fresh empty map
// when none was given.
//
// A listener is identified by interface equality, so its dynamic type must be
// comparable. Pointer types are the usual choice.
type EventListener interface {
	HandleEvent(scope any, data ...any)
}
