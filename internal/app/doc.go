// Package app is the composition root for facet.
//
// # Startup
//
//	Run()
//	  ├─> config.Load()          read ~/.config/facet/config.toml
//	  ├─> applyOverrides()       command line flags win
//	  ├─> logging.File()         zerolog to log_file (the TUI owns the terminal)
//	  ├─> Build()
//	  │     ├─> persist.Open()       file or sqlite record
//	  │     ├─> loadSelection()      restore the committed selection
//	  │     ├─> selection.NewStore() with saveOnCommit as commit hook
//	  │     ├─> flow.New()           gate + dismiss policy
//	  │     └─> newFetcher()         catalog file or HTTP client, cached
//	  └─> ui.Run()               blocks until quit or ctx is cancelled
//
// # Persistence
//
// Only commits reach the record: ApplyDraft and ResetAll call the store's
// commit hook, which saves. Draft edits never do. A record that fails to
// decode is logged and the session starts empty; a failed save is logged and
// the session carries on with the in-memory selection.
//
// # Catalog
//
// The catalog is not fetched here. The UI starts the first fetch from Init
// and reloads on demand, so a slow or missing catalog server never blocks
// startup.
package app
