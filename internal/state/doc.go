// Package state tracks the health of the catalog source for the UI.
//
// The app reloader is the single writer: after every load attempt it calls
// Store.Update with either the fresh lists or the error. The UI reads
// Store.Snapshot on each tick to render the header line, for example
//
//	catalog: feed http://catalog.local:8080 · 5 lists · 18 products · 12:04:31
//	catalog: reload failed (x3): execute request: connection refused
//
// Snapshots are returned by value and the recorded error is re-wrapped, so
// callers never share mutable data with the store.
//
// Failed loads keep the previous counts. Two or more consecutive failures
// mark the snapshot stale, which the header renders in the warning color.
package state
