// Package compare owns the list of products selected for side-by-side
// comparison and the layout shared by every surface that renders it.
//
// # Overview
//
// The compare list is the only shared mutable state in devicedeck. A single
// Manager owns it; presenters (the floating bar, the comparison page and the
// product card toggle) read snapshots and call the Manager's operations.
// Nothing else holds a reference to the underlying slice.
//
//	Presenters:                      Manager:
//	┌────────────────┐              ┌────────────────────┐
//	│ card toggle    │──Toggle()───→│                    │
//	│ floating bar   │──Remove()───→│  items (≤ 4)       │
//	│ compare page   │──Clear()────→│  version           │
//	│                │←─Snapshot()──│                    │
//	└────────────────┘              └─────────┬──────────┘
//	                                          │ Publish(Set)
//	                                          ↓
//	                                    subscribers
//
// # Invariants
//
//   - At most Capacity (4) members.
//   - Members are unique by product ID.
//   - Insertion order is preserved; removal collapses the gap.
//
// # Operations
//
//	Add(p)     duplicate  → OutcomeDuplicate, nil
//	           full       → OutcomeRejected, ErrCapacityExceeded
//	           otherwise  → OutcomeAdded (appended)
//	Toggle(p)  member     → OutcomeRemoved
//	           otherwise  → same as Add
//	Remove(id) absent IDs are ignored
//	Clear()    always ends empty; repeated calls are no-ops
//
// The duplicate check lives here only. Call sites that want to tell the
// user "already added" look at the returned Outcome instead of checking
// membership themselves.
//
// # Change Notification
//
// Every effective mutation bumps Set.Version and publishes the new Set on an
// in-process event bus. Publishing is synchronous: subscribers have run
// before Add/Remove/Toggle/Clear return. The Manager's lock is released
// before publishing, so subscribers may call Snapshot.
//
// The Manager is safe for concurrent use. When mutations race on different
// goroutines, the snapshots can reach the publish step out of order; a
// snapshot older than one already delivered is dropped, so subscribers
// always see increasing versions and the last delivery is the current set.
//
// # Table Assembly
//
// BuildTable and BuildStrip turn a Set into presenter-neutral layouts:
//
//	Slots: one per member in insertion order, optionally padded to 4
//	Rows:  Spec Score, Processor, RAM, Storage, Display, Camera, Battery, OS
//
// Spec rows come from specs.Derive and are recomputed on every build, so all
// presenters agree on the values without caching. Assembly never mutates the
// set.
//
// # Score Tiers
//
//	score ≥ 90  → TierHigh
//	score < 90  → TierStandard
//	no score    → TierNone (cell shows "—")
package compare
