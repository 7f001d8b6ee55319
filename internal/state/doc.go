// Package state holds the catalog load state shared between the fetch
// command and the UI.
//
// # Overview
//
// Fetching the catalog happens off the UI goroutine. The result lands in a
// Store and every render reads a Snapshot of it:
//
//	Fetch command:                 UI:
//	┌────────────────┐            ┌─────────────────┐
//	│ store.Begin()  │            │                 │
//	│ fetcher.Fetch()│            │                 │
//	│ store.Update() │───────────→│ store.Snapshot()│
//	└────────────────┘  (mutex)   └─────────────────┘
//
// # Snapshot
//
// Filters is the last catalog that loaded successfully. A failed fetch keeps
// it and records LastError, so the editor stays usable with slightly old
// data. Attempts counts fetches since the last success and is shown next to
// the error.
//
// Ready is false until the first catalog arrives. The UI will not open the
// filter editor before that, so drafts are only ever built against a known
// catalog.
//
// # Retry
//
// There is none. The user reloads with a key press and the app calls Begin
// and Update again.
package state
