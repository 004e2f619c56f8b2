package events

import (
	"io"
	"log/slog"

	"github.com/KirkDiggler/eventregistry/internal/uuid"
)

// Option configures a Registry
type Option func(*Registry)

// WithLogger sets the logger used for debug output. The default discards everything.
func WithLogger(logger *slog.Logger) Option {
	return func(r *Registry) {
		if logger != nil {
			r.logger = logger
		}
	}
}

// IDGenerator produces the IDs assigned to listener entries
type IDGenerator = uuid.Generator

// WithIDGenerator sets the source of listener entry IDs
func WithIDGenerator(gen IDGenerator) Option {
	return func(r *Registry) {
		if gen != nil {
			r.ids = gen
		}
	}
}

// ListenerOption configures a single AddListener call
type ListenerOption func(*listenerOptions)

type listenerOptions struct {
	scope any
	once  bool
}

// WithScope sets the scope value handed to the listener on each call
func WithScope(scope any) ListenerOption {
	return func(o *listenerOptions) {
		o.scope = scope
	}
}

// WithOnce detaches the listener after its first invocation
func WithOnce() ListenerOption {
	return func(o *listenerOptions) {
		o.once = true
	}
}

var discardLogger = slog.New(slog.NewTextHandler(io.Discard, nil))
