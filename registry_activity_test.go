package optioneer

import (
	"errors"
	"testing"

	"github.com/goliatone/go-optioneer/pkg/activity"
)

func TestRegistryEmitsLifecycleEvents(t *testing.T) {
	capture := &activity.CaptureHook{}
	registry := New(WithActivityHooks(activity.Hooks{capture}))

	registry.MustRegister("display.width", 200)
	registry.MustRegister("display.height", 100)
	if err := registry.Set("display.width", 300); err != nil {
		t.Fatalf("unexpected set error: %v", err)
	}
	if err := registry.Deprecate("display.height", WithRedirect("display.width")); err != nil {
		t.Fatalf("unexpected deprecate error: %v", err)
	}

	events := capture.Recorded()
	if len(events) != 4 {
		t.Fatalf("expected 4 events, got %d: %+v", len(events), events)
	}
	if events[0].Verb != activity.VerbRegistered || events[0].Path != "display.width" {
		t.Fatalf("unexpected first event %+v", events[0])
	}
	if events[2].Verb != activity.VerbUpdated || events[2].OldValue != 200 || events[2].NewValue != 300 {
		t.Fatalf("unexpected update event %+v", events[2])
	}
	if events[3].Verb != activity.VerbDeprecated || events[3].Metadata["redirect"] != "display.width" {
		t.Fatalf("unexpected deprecate event %+v", events[3])
	}
}

func TestRedirectedSetEmitsTargetPath(t *testing.T) {
	capture := &activity.CaptureHook{}
	registry := New(WithActivityHooks(activity.Hooks{capture}))
	registry.MustRegister("new", 1)
	registry.MustRegister("old", 2)
	if err := registry.Deprecate("old", WithRedirect("new")); err != nil {
		t.Fatalf("unexpected deprecate error: %v", err)
	}
	if err := registry.Set("old", 9); err != nil {
		t.Fatalf("unexpected set error: %v", err)
	}

	events := capture.Recorded()
	last := events[len(events)-1]
	if last.Verb != activity.VerbUpdated || last.Path != "new" {
		t.Fatalf("redirected writes must report the resolved path, got %+v", last)
	}
}

func TestHookFailuresAreLoggedNotFatal(t *testing.T) {
	boom := errors.New("sink down")
	var logged []AccessEvent
	registry := New(
		WithActivityHooks(activity.Hooks{&activity.CaptureHook{Err: boom}}),
		WithAccessLogger(AccessLoggerFunc(func(event AccessEvent) {
			logged = append(logged, event)
		})),
	)

	if err := registry.Register("display.width", 200); err != nil {
		t.Fatalf("hook failures must not fail the operation: %v", err)
	}

	var sawNotify bool
	for _, event := range logged {
		if event.Op == "notify" && errors.Is(event.Err, boom) {
			sawNotify = true
		}
	}
	if !sawNotify {
		t.Fatalf("expected the hook failure to be logged, got %+v", logged)
	}
}

func TestNoEventsWithoutHooks(t *testing.T) {
	// Mostly a guard that notify() short-circuits; no hooks, no panic.
	registry := New()
	registry.MustRegister("a", 1)
	if err := registry.Set("a", 2); err != nil {
		t.Fatalf("unexpected set error: %v", err)
	}
}
