package activity

// Verbs emitted by the option registry.
const (
	VerbRegistered = "option.registered"
	VerbUpdated    = "option.updated"
	VerbDeprecated = "option.deprecated"
	VerbRestored   = "registry.restored"
)

// BuildRegisteredEvent constructs the event for a new option registration.
func BuildRegisteredEvent(path string, defaultValue any) Event {
	return Event{
		Verb:     VerbRegistered,
		Path:     path,
		NewValue: defaultValue,
	}
}

// BuildUpdatedEvent constructs the event for a committed value change. Path
// is the resolved path: for a redirected write it names the target option.
func BuildUpdatedEvent(path string, oldValue, newValue any) Event {
	return Event{
		Verb:     VerbUpdated,
		Path:     path,
		OldValue: oldValue,
		NewValue: newValue,
	}
}

// BuildDeprecatedEvent constructs the event for a deprecation. The redirect
// path, when set, travels in metadata.
func BuildDeprecatedEvent(path, redirect string) Event {
	event := Event{
		Verb: VerbDeprecated,
		Path: path,
	}
	if redirect != "" {
		event.Metadata = map[string]any{"redirect": redirect}
	}
	return event
}

// BuildRestoredEvent constructs the event for a snapshot restore.
func BuildRestoredEvent(snapshotID string, changed int) Event {
	return Event{
		Verb: VerbRestored,
		Metadata: map[string]any{
			"snapshot_id": snapshotID,
			"changed":     changed,
		},
	}
}
