// Package state defines storage-facing contracts for holding named registry
// snapshots. The core optioneer package stays storage-agnostic: it only
// produces and consumes Snapshot values, and everything beyond that lives
// behind Store implementations supplied by consumers. MemoryStore is the
// in-process implementation used by tests and short-lived tooling.
package state
