package events_test

import (
	"github.com/KirkDiggler/eventregistry/events"
)

func (s *RegistrySuite) TestOnceFiresExactlyOnce() {
	listener := &recordingListener{name: "once"}
	s.Require().NoError(s.registry.Once(eventOpen, listener))

	s.Require().NoError(s.registry.Emit(eventOpen, 1))
	s.Equal(0, s.count(eventOpen))

	s.Require().NoError(s.registry.Emit(eventOpen, 2))
	s.Equal([][]any{{1}}, listener.calls)
}

func (s *RegistrySuite) TestWithOnceOption() {
	type owner struct{ id int }
	scope := &owner{id: 7}
	listener := &recordingListener{name: "once"}

	s.Require().NoError(s.registry.AddListener(eventOpen, listener, events.WithScope(scope), events.WithOnce()))

	entries, err := s.registry.Listeners(eventOpen)
	s.Require().NoError(err)
	s.Require().Len(entries, 1)
	s.True(entries[0].Once)
	s.Same(scope, entries[0].Scope)

	s.Require().NoError(s.registry.Emit(eventOpen))
	s.Require().NoError(s.registry.Emit(eventOpen))

	s.Require().Len(listener.scopes, 1)
	s.Same(scope, listener.scopes[0])
}

func (s *RegistrySuite) TestOnceIsNotRefiredByNestedEmit() {
	listener := &recordingListener{name: "once"}
	listener.handler = func(_ any, data ...any) {
		if data[0] == "outer" {
			s.Require().NoError(s.registry.Emit(eventOpen, "inner"))
		}
	}
	s.Require().NoError(s.registry.Once(eventOpen, listener))

	s.Require().NoError(s.registry.Emit(eventOpen, "outer"))

	s.Equal([][]any{{"outer"}}, listener.calls)
	s.Equal(0, s.count(eventOpen))
}

func (s *RegistrySuite) TestOnceClaimedByNestedEmitIsSkippedByOuter() {
	// trigger runs before the once listener and re-emits, so the inner
	// emission reaches the once listener first.
	once := &recordingListener{name: "once"}
	trigger := &recordingListener{name: "trigger"}
	trigger.handler = func(_ any, data ...any) {
		if data[0] == "outer" {
			s.Require().NoError(s.registry.Emit(eventOpen, "inner"))
		}
	}

	s.Require().NoError(s.registry.On(eventOpen, trigger))
	s.Require().NoError(s.registry.Once(eventOpen, once))

	s.Require().NoError(s.registry.Emit(eventOpen, "outer"))

	s.Equal([][]any{{"inner"}}, once.calls)
	s.Equal([][]any{{"outer"}, {"inner"}}, trigger.calls)
	s.Equal(1, s.count(eventOpen))
}

func (s *RegistrySuite) TestRemoveOnceListenerBeforeEmit() {
	listener := &recordingListener{name: "once"}
	s.Require().NoError(s.registry.Once(eventOpen, listener))

	s.Require().NoError(s.registry.RemoveListener(eventOpen, listener))
	s.Require().NoError(s.registry.Emit(eventOpen))

	s.Empty(listener.calls)
}

func (s *RegistrySuite) TestRemovedDuringEmitStillFires() {
	var order []string
	b := &recordingListener{name: "b", log: &order}
	a := &recordingListener{name: "a", log: &order}
	a.handler = func(any, ...any) {
		s.Require().NoError(s.registry.RemoveListener(eventOpen, b))
	}

	s.Require().NoError(s.registry.On(eventOpen, a))
	s.Require().NoError(s.registry.On(eventOpen, b))

	s.Require().NoError(s.registry.Emit(eventOpen))
	s.Equal([]string{"a", "b"}, order)
	s.Equal(1, s.count(eventOpen))

	s.Require().NoError(s.registry.Emit(eventOpen))
	s.Equal([]string{"a", "b", "a"}, order)
}

func (s *RegistrySuite) TestAddedDuringEmitWaitsForNextEmit() {
	var order []string
	late := &recordingListener{name: "late", log: &order}
	early := &recordingListener{name: "early", log: &order}
	early.handler = func(any, ...any) {
		if s.count(eventOpen) == 1 {
			s.Require().NoError(s.registry.On(eventOpen, late))
		}
	}

	s.Require().NoError(s.registry.On(eventOpen, early))

	s.Require().NoError(s.registry.Emit(eventOpen))
	s.Equal([]string{"early"}, order)

	s.Require().NoError(s.registry.Emit(eventOpen))
	s.Equal([]string{"early", "early", "late"}, order)
}

func (s *RegistrySuite) TestReattachedDuringEmitFiresOnce() {
	var order []string
	b := &recordingListener{name: "b", log: &order}
	a := &recordingListener{name: "a", log: &order}
	a.handler = func(any, ...any) {
		s.Require().NoError(s.registry.RemoveListener(eventOpen, b))
		s.Require().NoError(s.registry.On(eventOpen, b))
	}

	s.Require().NoError(s.registry.On(eventOpen, a))
	s.Require().NoError(s.registry.On(eventOpen, b))

	s.Require().NoError(s.registry.Emit(eventOpen))
	s.Equal([]string{"a", "b"}, order)
	s.Equal(2, s.count(eventOpen))
}

func (s *RegistrySuite) TestRemoveAllDuringEmitStillFiresSnapshot() {
	var order []string
	b := &recordingListener{name: "b", log: &order}
	a := &recordingListener{name: "a", log: &order}
	a.handler = func(any, ...any) {
		s.Require().NoError(s.registry.RemoveAllListeners())
	}

	s.Require().NoError(s.registry.On(eventOpen, a))
	s.Require().NoError(s.registry.Once(eventOpen, b))

	s.Require().NoError(s.registry.Emit(eventOpen))
	s.Equal([]string{"a", "b"}, order)
	s.Equal(0, s.count(eventOpen))
}

func (s *RegistrySuite) TestPanickingListenerLeavesRegistryUsable() {
	boom := events.ListenerFunc(func(any, ...any) { panic("boom") })
	s.Require().NoError(s.registry.On(eventOpen, boom))

	s.Panics(func() {
		_ = s.registry.Emit(eventOpen) //nolint:errcheck // panics
	})

	s.NoError(s.registry.RemoveListener(eventOpen, boom))
	s.Equal(0, s.count(eventOpen))
}
