// Package events provides a synchronous registry that dispatches named events
// to attached listeners.
//
// A Registry declares its event types once, either through NewRegistry or by
// calling Init on a Registry embedded in a host type. Listeners run on the
// goroutine that calls Emit, in the order they were attached.
package events

import (
	"log/slog"
	"maps"
	"reflect"
	"slices"
	"sync"

	regerrors "github.com/KirkDiggler/eventregistry/internal/errors"
	"github.com/KirkDiggler/eventregistry/internal/uuid"
)

// Registry maps declared event types to their ordered listeners.
//
// The zero value declares no event types; call Init before use. A Registry
// must not be copied after Init.
type Registry struct {
	listeners map[EventType][]*entry
	mu        sync.RWMutex
	logger    *slog.Logger
	ids       uuid.Generator
}

var _ Emitter = (*Registry)(nil)

// NewRegistry creates a registry that accepts exactly eventTypes
func NewRegistry(eventTypes []EventType, opts ...Option) (*Registry, error) {
	r := &Registry{}
	if err := r.Init(eventTypes, opts...); err != nil {
		return nil, err
	}
	return r, nil
}

// Init declares the event types of a zero Registry. Host types embedding a
// Registry call it from their own constructor. The declared set cannot be
// changed afterwards, so a second call fails.
func (r *Registry) Init(eventTypes []EventType, opts ...Option) error {
	if len(eventTypes) == 0 {
		return regerrors.InvalidArgument("at least one event type is required")
	}

	declared := make(map[EventType][]*entry, len(eventTypes))
	for i, eventType := range eventTypes {
		if eventType == "" {
			return regerrors.InvalidArgumentf("event type at index %d is empty", i).
				WithMeta("index", i)
		}
		declared[eventType] = nil
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if r.listeners != nil {
		return regerrors.InvalidArgument("registry is already initialized")
	}

	r.listeners = declared
	r.logger = discardLogger
	r.ids = uuid.NewGoogleUUIDGenerator()
	for _, opt := range opts {
		opt(r)
	}

	r.logger.Debug("registry initialized", "event_types", len(declared))
	return nil
}

// AddListener attaches listener to eventType. A listener may be attached to
// any number of event types, but only once to each.
func (r *Registry) AddListener(eventType EventType, listener EventListener, opts ...ListenerOption) error {
	if err := validateListener(listener); err != nil {
		return err
	}

	var o listenerOptions
	for _, opt := range opts {
		opt(&o)
	}
	scope := o.scope
	if scope == nil {
		scope = map[string]any{}
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	list, err := r.lookup(eventType)
	if err != nil {
		return err
	}

	if idx := indexOf(list, listener); idx != -1 {
		return regerrors.DuplicateListenerf("listener is already attached to event type %q", eventType).
			WithMeta("event_type", string(eventType)).
			WithMeta("listener_id", list[idx].id)
	}

	e := &entry{
		id:       r.ids.New(),
		listener: listener,
		scope:    scope,
		once:     o.once,
	}
	r.listeners[eventType] = append(list, e)

	r.logger.Debug("listener attached",
		"event_type", eventType,
		"listener_id", e.id,
		"once", e.once,
		"listeners", len(r.listeners[eventType]))
	return nil
}

// On is an alias for AddListener
func (r *Registry) On(eventType EventType, listener EventListener, opts ...ListenerOption) error {
	return r.AddListener(eventType, listener, opts...)
}

// Once attaches listener so that it is detached after its first invocation
func (r *Registry) Once(eventType EventType, listener EventListener, opts ...ListenerOption) error {
	return r.AddListener(eventType, listener, append([]ListenerOption{WithOnce()}, opts...)...)
}

// Emit calls every listener attached to eventType with data.
//
// The listener list is copied before the first call. Listeners attached while
// Emit runs are not called until the next Emit, and listeners removed while it
// runs are still called this time.
func (r *Registry) Emit(eventType EventType, data ...any) error {
	r.mu.RLock()
	list, err := r.lookup(eventType)
	if err != nil {
		r.mu.RUnlock()
		return err
	}
	snapshot := slices.Clone(list)
	r.mu.RUnlock()

	r.log().Debug("emitting event", "event_type", eventType, "listeners", len(snapshot))

	for _, e := range snapshot {
		if e.once && !r.claim(eventType, e) {
			continue
		}
		e.listener.HandleEvent(e.scope, data...)
	}

	return nil
}

// claim moves a once entry to fired and detaches it. It reports false when
// the entry has already fired, e.g. from a nested Emit.
func (r *Registry) claim(eventType EventType, e *entry) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	if e.state == stateFired {
		return false
	}
	e.state = stateFired

	list := r.listeners[eventType]
	if idx := slices.Index(list, e); idx != -1 {
		r.listeners[eventType] = slices.Delete(list, idx, idx+1)
	}

	r.logger.Debug("once listener fired", "event_type", eventType, "listener_id", e.id)
	return true
}

// RemoveListener detaches listener from eventType. Removing a listener that
// is not attached is a no-op.
func (r *Registry) RemoveListener(eventType EventType, listener EventListener) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	list, err := r.lookup(eventType)
	if err != nil {
		return err
	}
	if validateListener(listener) != nil {
		return nil
	}

	idx := indexOf(list, listener)
	if idx == -1 {
		return nil
	}

	id := list[idx].id
	r.listeners[eventType] = slices.Delete(list, idx, idx+1)

	r.logger.Debug("listener removed", "event_type", eventType, "listener_id", id)
	return nil
}

// RemoveAllListeners detaches every listener from the given event types, or
// from all declared types when none are given. All names are checked before
// anything is removed.
func (r *Registry) RemoveAllListeners(eventTypes ...EventType) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if len(eventTypes) == 0 {
		for eventType := range r.listeners {
			r.listeners[eventType] = nil
		}
		r.log().Debug("all listeners removed")
		return nil
	}

	for _, eventType := range eventTypes {
		if _, err := r.lookup(eventType); err != nil {
			return err
		}
	}
	for _, eventType := range eventTypes {
		r.listeners[eventType] = nil
		r.logger.Debug("listeners removed", "event_type", eventType)
	}

	return nil
}

// Listeners returns a copy of the entries attached to eventType
func (r *Registry) Listeners(eventType EventType) ([]ListenerEntry, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	list, err := r.lookup(eventType)
	if err != nil {
		return nil, err
	}

	entries := make([]ListenerEntry, 0, len(list))
	for _, e := range list {
		entries = append(entries, e.view())
	}
	return entries, nil
}

// ListenerCount returns the number of listeners attached to eventType
func (r *Registry) ListenerCount(eventType EventType) (int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	list, err := r.lookup(eventType)
	if err != nil {
		return 0, err
	}
	return len(list), nil
}

// TotalListenerCount returns the number of listeners across all event types
func (r *Registry) TotalListenerCount() int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	total := 0
	for _, list := range r.listeners {
		total += len(list)
	}
	return total
}

// EventTypes returns the declared event types in sorted order
func (r *Registry) EventTypes() []EventType {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return slices.Sorted(maps.Keys(r.listeners))
}

// HasEventType reports whether eventType was declared
func (r *Registry) HasEventType(eventType EventType) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()

	_, ok := r.listeners[eventType]
	return ok
}

// lookup must be called with r.mu held
func (r *Registry) lookup(eventType EventType) ([]*entry, error) {
	list, ok := r.listeners[eventType]
	if !ok {
		return nil, regerrors.UnknownEventTypef("event type %q is not declared", eventType).
			WithMeta("event_type", string(eventType))
	}
	return list, nil
}

func (r *Registry) log() *slog.Logger {
	if r.logger == nil {
		return discardLogger
	}
	return r.logger
}

func indexOf(list []*entry, listener EventListener) int {
	return slices.IndexFunc(list, func(e *entry) bool {
		return e.listener == listener
	})
}

func validateListener(listener EventListener) error {
	if listener == nil {
		return regerrors.InvalidArgument("listener is nil")
	}
	if fl, ok := listener.(*funcListener); ok && (fl == nil || fl.fn == nil) {
		return regerrors.InvalidArgument("listener func is nil")
	}

	v := reflect.ValueOf(listener)
	switch v.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan:
		if v.IsNil() {
			return regerrors.InvalidArgumentf("listener is a nil %s", v.Type())
		}
	}

	// Identity is interface equality, which panics for these values. The
	// value is checked, not the type: an interface field may hold a slice.
	if !v.Comparable() {
		return regerrors.InvalidArgumentf("listener value of type %s is not comparable", v.Type())
	}
	return nil
}
