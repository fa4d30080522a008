package activity

import (
	"context"
	"errors"
	"testing"
)

func TestNormalizeEventTrimsClonesAndDefaults(t *testing.T) {
	meta := map[string]any{"k": "v"}
	evt := Event{
		Verb:     " option.updated ",
		Path:     " display.width ",
		Metadata: meta,
	}

	got := NormalizeEvent(evt)

	if got.Verb != "option.updated" || got.Path != "display.width" {
		t.Fatalf("unexpected normalized fields: %+v", got)
	}
	if got.OccurredAt.IsZero() {
		t.Fatalf("expected OccurredAt to be set")
	}
	if got.Metadata["k"] != "v" {
		t.Fatalf("expected metadata value preserved: %+v", got.Metadata)
	}
	got.Metadata["k"] = "changed"
	if evt.Metadata["k"] != "v" {
		t.Fatalf("expected original metadata untouched: %+v", evt.Metadata)
	}
}

func TestHooksNotifyDropsVerblessEvents(t *testing.T) {
	hooks := Hooks{&CaptureHook{}}
	if err := hooks.Notify(context.Background(), Event{Path: "x"}); err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
	capture := hooks[0].(*CaptureHook)
	if len(capture.Recorded()) != 0 {
		t.Fatalf("expected no events captured, got %d", len(capture.Recorded()))
	}
}

func TestHooksNotifyFansOutAndJoinsErrors(t *testing.T) {
	boom := errors.New("sink down")
	failing := &CaptureHook{Err: boom}
	healthy := &CaptureHook{}
	hooks := Hooks{failing, nil, healthy}

	err := hooks.Notify(context.Background(), BuildUpdatedEvent("display.width", 200, 300))
	if !errors.Is(err, boom) {
		t.Fatalf("expected joined error to include sink failure, got %v", err)
	}
	if len(healthy.Recorded()) != 1 {
		t.Fatalf("healthy hooks must still be notified, got %d", len(healthy.Recorded()))
	}
	event := healthy.Recorded()[0]
	if event.Verb != VerbUpdated || event.Path != "display.width" || event.OldValue != 200 || event.NewValue != 300 {
		t.Fatalf("unexpected event %+v", event)
	}
}

func TestEventBuilders(t *testing.T) {
	registered := BuildRegisteredEvent("a.b", 1)
	if registered.Verb != VerbRegistered || registered.NewValue != 1 {
		t.Fatalf("unexpected event %+v", registered)
	}

	deprecated := BuildDeprecatedEvent("a.b", "a.c")
	if deprecated.Verb != VerbDeprecated || deprecated.Metadata["redirect"] != "a.c" {
		t.Fatalf("unexpected event %+v", deprecated)
	}
	if terminal := BuildDeprecatedEvent("a.b", ""); terminal.Metadata != nil {
		t.Fatalf("terminal deprecation should carry no redirect metadata: %+v", terminal)
	}

	restored := BuildRestoredEvent("snap-1", 3)
	if restored.Verb != VerbRestored || restored.Metadata["snapshot_id"] != "snap-1" || restored.Metadata["changed"] != 3 {
		t.Fatalf("unexpected event %+v", restored)
	}
}

func TestHooksEnabled(t *testing.T) {
	if (Hooks{}).Enabled() {
		t.Fatalf("empty hooks should be disabled")
	}
	if !(Hooks{&CaptureHook{}}).Enabled() {
		t.Fatalf("non-empty hooks should be enabled")
	}
}
