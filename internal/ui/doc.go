// Package ui provides the facet terminal interface, built on Bubble Tea.
//
// # Layers
//
// The screen is one of four layers, picked from the stores on every render:
//
//   - help overlay (h/?), owned by the Model
//   - confirm dialog, shown while the confirmation gate has a pending request
//   - filter editor, shown while the selection store reports the editor open
//   - home view: the committed selection as JSON plus "Filter: Option" chips
//
// Keys go to the top-most layer only. The Model never keeps its own copy of
// "is the editor open" or "is a prompt showing"; the selection store and the
// gate answer those, so the UI cannot drift from the state machine.
//
// # Editor
//
// The editor lists every catalog filter with its options as [x]/[ ] rows.
// Edits change the draft only. Apply goes through flow.Controller: with no
// changes the editor just closes, otherwise the confirm dialog opens on top
// and the editor stays underneath until the prompt is resolved.
//
// # Confirm Dialog
//
//	y    Apply new filter   (commit the draft)
//	n    Use old filter     (discard the draft)
//	esc  Dismiss            (per confirm_dismiss: keep editing, or discard)
//
// The dialog lists the pending changes as + and - lines.
//
// # Catalog
//
// The catalog is fetched in a tea.Cmd and lands in a state.Store. Errors are
// shown on the status line and logged; r reloads. The editor refuses to open
// until a catalog has loaded.
package ui
