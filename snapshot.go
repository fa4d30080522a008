package optioneer

import (
	"errors"
	"fmt"
	"reflect"
	"time"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"

	"github.com/goliatone/go-optioneer/pkg/activity"
)

// Snapshot captures the current value of every registered option, deprecated
// ones included, at one point in time.
type Snapshot struct {
	ID      string         `json:"id" yaml:"id"`
	TakenAt time.Time      `json:"taken_at" yaml:"taken_at"`
	Values  map[string]any `json:"values" yaml:"values"`
}

// Snapshot captures the registry's current values under a fresh snapshot ID.
func (r *Registry) Snapshot() Snapshot {
	r.mu.RLock()
	defer r.mu.RUnlock()
	values := make(map[string]any, len(r.nodes))
	for dotted, node := range r.nodes {
		values[dotted] = node.currentValue
	}
	return Snapshot{
		ID:      uuid.NewString(),
		TakenAt: time.Now(),
		Values:  values,
	}
}

// Restore writes snapshot values back onto their options. Paths are resolved
// directly, without redirects or warnings: a snapshot names actual nodes.
// Every value is validated before any is committed, so a rejected snapshot
// leaves the registry untouched. Callbacks fire after commit for each option
// whose value changed; their failures are collected and returned joined, and
// never roll the restore back.
func (r *Registry) Restore(snapshot Snapshot) error {
	start := time.Now()

	type pending struct {
		node     *option
		value    any
		callback Callback
	}

	r.mu.Lock()
	var applied []pending
	var err error
	for dotted, value := range snapshot.Values {
		node, ok := r.nodes[dotted]
		if !ok {
			err = fmt.Errorf("%w: %q", ErrUnknownOption, dotted)
			break
		}
		if verr := node.validate(value); verr != nil {
			err = &ValidationError{Path: dotted, Value: value, Err: verr}
			break
		}
		if reflect.DeepEqual(node.currentValue, value) {
			continue
		}
		applied = append(applied, pending{node: node, value: value, callback: node.callback})
	}
	if err == nil {
		for _, change := range applied {
			change.node.currentValue = change.value
		}
	}
	r.mu.Unlock()

	r.logger.LogAccess(AccessEvent{Op: "restore", Path: snapshot.ID, Duration: time.Since(start), Err: err})
	if err != nil {
		return err
	}

	r.notify(activity.BuildRestoredEvent(snapshot.ID, len(applied)))
	var callbackErrs []error
	for _, change := range applied {
		if change.callback == nil {
			continue
		}
		if cerr := change.callback(change.value); cerr != nil {
			callbackErrs = append(callbackErrs, &CallbackError{Path: change.node.path.String(), Err: cerr})
		}
	}
	return errors.Join(callbackErrs...)
}

// ToYAML serialises the snapshot as a YAML document.
func (s Snapshot) ToYAML() ([]byte, error) {
	type alias Snapshot
	return yaml.Marshal(alias(s))
}

// SnapshotFromYAML deserialises a document produced by ToYAML.
func SnapshotFromYAML(payload []byte) (Snapshot, error) {
	type alias Snapshot
	var snapshot alias
	if err := yaml.Unmarshal(payload, &snapshot); err != nil {
		return Snapshot{}, err
	}
	return Snapshot(snapshot), nil
}
