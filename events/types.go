package events

// EventType names a category of event a registry can dispatch
type EventType string

// ListenerEntry is a read-only view of one attached listener
type ListenerEntry struct {
	ID       string
	Listener EventListener
	Scope    any
	Once     bool
}

type funcListener struct {
	fn func(scope any, data ...any)
}

func (l *funcListener) HandleEvent(scope any, data ...any) { l.fn(scope, data...) }

// ListenerFunc adapts fn into an EventListener. Every call returns a new
// identity, so keep the result around if the listener must be removed later.
func ListenerFunc(fn func(scope any, data ...any)) EventListener {
	return &funcListener{fn: fn}
}

type entryState int

const (
	statePending entryState = iota
	stateFired
)

// entry is the registry's record of one attachment. state only moves from
// pending to fired, and only for once entries.
type entry struct {
	id       string
	listener EventListener
	scope    any
	once     bool
	state    entryState
}

func (e *entry) view() ListenerEntry {
	return ListenerEntry{
		ID:       e.id,
		Listener: e.listener,
		Scope:    e.scope,
		Once:     e.once,
	}
}
