package errors_test

import (
	stderrors "errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/eventregistry/internal/errors"
)

func TestCodedConstructors(t *testing.T) {
	tests := []struct {
		name  string
		err   error
		code  errors.Code
		check func(error) bool
	}{
		{"invalid argument", errors.InvalidArgument("no event types"), errors.CodeInvalidArgument, errors.IsInvalidArgument},
		{"duplicate listener", errors.DuplicateListenerf("listener on %s", "open"), errors.CodeDuplicateListener, errors.IsDuplicateListener},
		{"unknown event type", errors.UnknownEventTypef("event type %q", "nope"), errors.CodeUnknownEventType, errors.IsUnknownEventType},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.code, errors.GetCode(tt.err))
			assert.True(t, tt.check(tt.err))
		})
	}
}

func TestWrap_PreservesCodeAndMeta(t *testing.T) {
	base := errors.UnknownEventTypef("event type %q is not declared", "nope").
		WithMeta("event_type", "nope")

	wrapped := errors.Wrap(base, "emit failed")
	require.NotNil(t, wrapped)

	assert.True(t, errors.IsUnknownEventType(wrapped))
	assert.Equal(t, "nope", errors.GetMeta(wrapped)["event_type"])
	assert.Equal(t, `emit failed: event type "nope" is not declared`, wrapped.Error())

	// Meta is copied, not shared
	wrapped.WithMeta("extra", true)
	_, ok := base.Meta["extra"]
	assert.False(t, ok)
}

func TestWrap_ForeignError(t *testing.T) {
	cause := stderrors.New("disk on fire")
	wrapped := errors.Wrap(cause, "loading .env")

	assert.Equal(t, errors.CodeUnknown, errors.GetCode(wrapped))
	assert.ErrorIs(t, wrapped, cause)
	assert.Nil(t, errors.Wrap(nil, "nothing"))
}

func TestIs_NonRegistryError(t *testing.T) {
	err := stderrors.New("plain")

	assert.False(t, errors.IsUnknownEventType(err))
	assert.Equal(t, errors.CodeUnknown, errors.GetCode(err))
	assert.Nil(t, errors.GetMeta(err))
}
