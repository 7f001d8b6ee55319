package selection

import "sync"

// CommitHook observes every change of the committed selection.
type CommitHook func(committed Selection)

// Option configures a Store.
type Option func(*Store)

// WithCommitHook registers fn to run after ApplyDraft and ResetAll. The
// selection passed to fn is a copy.
func WithCommitHook(fn CommitHook) Option {
	return func(s *Store) {
		s.onCommit = fn
	}
}

// Store owns the committed selection, the draft being edited and whether the
// editor is open. Every method is a single atomic transition.
type Store struct {
	mu        sync.RWMutex
	committed Selection
	draft     Selection
	modalOpen bool
	onCommit  CommitHook
}

// NewStore builds a store whose committed selection and draft both start as
// copies of initial.
func NewStore(initial Selection, opts ...Option) *Store {
	committed := initial.Normalize()
	s := &Store{
		committed: committed,
		draft:     committed.Clone(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Selection returns a copy of the committed selection.
func (s *Store) Selection() Selection {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.committed.Clone()
}

// Draft returns a copy of the draft selection.
func (s *Store) Draft() Selection {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.draft.Clone()
}

// ModalOpen reports whether the editor is presented.
func (s *Store) ModalOpen() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.modalOpen
}

// OpenModal shows the editor and restarts the draft from the committed
// selection, discarding any earlier unsaved draft.
func (s *Store) OpenModal() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.modalOpen = true
	s.draft = s.committed.Clone()
}

// CloseModal hides the editor and drops unsaved draft edits.
func (s *Store) CloseModal() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.modalOpen = false
	s.draft = s.committed.Clone()
}

// ToggleOption flips optionID for filterID in the draft. An entry whose last
// option is removed disappears. Ids are not checked against any catalog, but
// empty ids are out of contract: Normalize drops them, so they do not survive
// persistence.
func (s *Store) ToggleOption(filterID, optionID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.draft.index(filterID)
	if i < 0 {
		s.draft = append(s.draft, Entry{ID: filterID, OptionIDs: []string{optionID}})
		return
	}

	opts := s.draft[i].OptionIDs
	if j := indexOf(opts, optionID); j >= 0 {
		remaining := make([]string, 0, len(opts)-1)
		remaining = append(remaining, opts[:j]...)
		remaining = append(remaining, opts[j+1:]...)
		if len(remaining) == 0 {
			s.draft = s.draft.without(i)
			return
		}
		s.draft[i].OptionIDs = remaining
		return
	}
	s.draft[i].OptionIDs = append(cloneIDs(opts), optionID)
}

// SetDraftOptions replaces the draft entry for filterID. An empty list
// removes the entry.
func (s *Store) SetDraftOptions(filterID string, optionIDs []string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var ids []string
	for _, id := range optionIDs {
		if indexOf(ids, id) < 0 {
			ids = append(ids, id)
		}
	}

	i := s.draft.index(filterID)
	switch {
	case len(ids) == 0 && i >= 0:
		s.draft = s.draft.without(i)
	case len(ids) == 0:
	case i >= 0:
		s.draft[i].OptionIDs = ids
	default:
		s.draft = append(s.draft, Entry{ID: filterID, OptionIDs: ids})
	}
}

// ClearDraftFilter removes filterID from the draft.
func (s *Store) ClearDraftFilter(filterID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if i := s.draft.index(filterID); i >= 0 {
		s.draft = s.draft.without(i)
	}
}

// ClearAllDraft empties the draft. The committed selection is untouched.
func (s *Store) ClearAllDraft() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.draft = nil
}

// ResetDraft makes the draft a copy of the committed selection again without
// changing editor visibility.
func (s *Store) ResetDraft() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.draft = s.committed.Clone()
}

// ApplyDraft commits a copy of the draft and closes the editor.
func (s *Store) ApplyDraft() {
	s.mu.Lock()
	s.committed = s.draft.Clone()
	s.modalOpen = false
	committed := s.committed.Clone()
	hook := s.onCommit
	s.mu.Unlock()

	if hook != nil {
		hook(committed)
	}
}

// DiscardDraft restores the draft from the committed selection and closes
// the editor.
func (s *Store) DiscardDraft() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.draft = s.committed.Clone()
	s.modalOpen = false
}

// ResetAll empties both selections and closes the editor.
func (s *Store) ResetAll() {
	s.mu.Lock()
	s.committed = nil
	s.draft = nil
	s.modalOpen = false
	hook := s.onCommit
	s.mu.Unlock()

	if hook != nil {
		hook(nil)
	}
}

// HasSelection reports whether anything is committed.
func (s *Store) HasSelection() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return !s.committed.IsEmpty()
}

// HasDraftSelection reports whether the draft selects anything.
func (s *Store) HasDraftSelection() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return !s.draft.IsEmpty()
}

// HasPendingChanges reports whether the draft differs from the committed
// selection as a set.
func (s *Store) HasPendingChanges() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return !Equal(s.draft, s.committed)
}

// PendingDiff lists the changes ApplyDraft would commit.
func (s *Store) PendingDiff() []Change {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return Diff(s.committed, s.draft)
}

func (s Selection) without(i int) Selection {
	out := make(Selection, 0, len(s)-1)
	out = append(out, s[:i]...)
	out = append(out, s[i+1:]...)
	if len(out) == 0 {
		return nil
	}
	return out
}
