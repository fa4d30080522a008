package state

import (
	"context"
	"errors"
	"time"

	optioneer "github.com/goliatone/go-optioneer"
)

// ErrNameRequired indicates a Load or Save with an empty snapshot name.
var ErrNameRequired = errors.New("state: name must be provided")

// Meta is storage-owned metadata kept alongside a snapshot.
type Meta struct {
	SnapshotID string            `json:"snapshot_id,omitempty"`
	UpdatedAt  time.Time         `json:"updated_at,omitempty"`
	Extra      map[string]string `json:"extra,omitempty"`
}

// Store loads and saves one snapshot per name.
type Store interface {
	Load(ctx context.Context, name string) (snapshot optioneer.Snapshot, meta Meta, ok bool, err error)
	Save(ctx context.Context, name string, snapshot optioneer.Snapshot, meta Meta) (Meta, error)
	Names(ctx context.Context) ([]string, error)
}
