// Package selection holds the filter selection model and the store that
// stages edits to it.
//
// # Model
//
// A Selection is an ordered list of entries, one per filter id, each naming
// the option ids chosen for that filter. Entries never carry an empty option
// list: removing the last option removes the entry. The order of entries and
// of option ids is kept so persisted records and rendered JSON stay stable,
// but Equal and Diff treat every entry as a set.
//
// # Store
//
// Store keeps three pieces of state:
//
//   - the committed selection (persisted by the app through a commit hook)
//   - the draft selection (edited while the editor is open, never persisted)
//   - whether the editor is open
//
// Draft edits (ToggleOption, SetDraftOptions, ClearDraftFilter,
// ClearAllDraft) never touch the committed selection. Only ApplyDraft and
// ResetAll replace it:
//
//	OpenModal      draft := clone(committed), open
//	ToggleOption   draft edited
//	ApplyDraft     committed := clone(draft), closed, hook(committed)
//	DiscardDraft   draft := clone(committed), closed
//	CloseModal     draft := clone(committed), closed
//	ResetAll       committed, draft := empty, closed, hook(empty)
//
// HasPendingChanges compares draft and committed with Equal, so two drafts
// that record the same options in a different order are not a change.
//
// # Concurrency
//
// The Store guards its fields with a sync.RWMutex. Readers get copies; no
// caller ever holds a reference into the store's slices. The commit hook is
// invoked after the lock is released.
package selection
