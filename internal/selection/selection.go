package selection

import "sort"

// Entry records the options chosen for one filter.
type Entry struct {
	ID        string   `json:"id" toml:"id"`
	OptionIDs []string `json:"optionIds" toml:"option_ids"`
}

// Selection is an ordered list of per-filter entries. Order is kept for
// persistence and display only; equality treats each entry as a set.
type Selection []Entry

// Clone returns a structural deep copy.
func (s Selection) Clone() Selection {
	if len(s) == 0 {
		return nil
	}
	dup := make(Selection, len(s))
	for i, e := range s {
		dup[i] = Entry{ID: e.ID, OptionIDs: cloneIDs(e.OptionIDs)}
	}
	return dup
}

// Len returns the number of filter entries.
func (s Selection) Len() int {
	return len(s)
}

// IsEmpty reports whether no filter has a selected option.
func (s Selection) IsEmpty() bool {
	for _, e := range s {
		if len(e.OptionIDs) > 0 {
			return false
		}
	}
	return true
}

// Options returns a copy of the option ids chosen for filterID.
func (s Selection) Options(filterID string) []string {
	if i := s.index(filterID); i >= 0 {
		return cloneIDs(s[i].OptionIDs)
	}
	return nil
}

// Contains reports whether optionID is selected for filterID.
func (s Selection) Contains(filterID, optionID string) bool {
	i := s.index(filterID)
	if i < 0 {
		return false
	}
	return indexOf(s[i].OptionIDs, optionID) >= 0
}

// Normalize returns a copy that satisfies the selection invariants: duplicate
// filter ids are merged in first-seen order, duplicate option ids are dropped
// and entries left without options are removed.
func (s Selection) Normalize() Selection {
	var out Selection
	for _, e := range s {
		if e.ID == "" {
			continue
		}
		i := out.index(e.ID)
		if i < 0 {
			out = append(out, Entry{ID: e.ID})
			i = len(out) - 1
		}
		for _, opt := range e.OptionIDs {
			if opt == "" || indexOf(out[i].OptionIDs, opt) >= 0 {
				continue
			}
			out[i].OptionIDs = append(out[i].OptionIDs, opt)
		}
	}
	return out.compact()
}

// Equal reports whether a and b select the same options for the same filters,
// ignoring the order of entries and of option ids.
func Equal(a, b Selection) bool {
	am, bm := a.sets(), b.sets()
	if len(am) != len(bm) {
		return false
	}
	for id, aset := range am {
		bset, ok := bm[id]
		if !ok || len(aset) != len(bset) {
			return false
		}
		for opt := range aset {
			if _, ok := bset[opt]; !ok {
				return false
			}
		}
	}
	return true
}

// Change describes how one filter differs between two selections.
type Change struct {
	FilterID string
	Added    []string
	Removed  []string
}

// Diff lists per-filter changes needed to turn from into to. Filters are
// reported in the order they first appear in to, then from; option ids keep
// their recorded order.
func Diff(from, to Selection) []Change {
	var order []string
	seen := make(map[string]struct{})
	for _, src := range []Selection{to, from} {
		for _, e := range src {
			if _, ok := seen[e.ID]; ok {
				continue
			}
			seen[e.ID] = struct{}{}
			order = append(order, e.ID)
		}
	}

	var changes []Change
	for _, id := range order {
		before := from.Options(id)
		after := to.Options(id)
		c := Change{FilterID: id}
		for _, opt := range after {
			if indexOf(before, opt) < 0 {
				c.Added = append(c.Added, opt)
			}
		}
		for _, opt := range before {
			if indexOf(after, opt) < 0 {
				c.Removed = append(c.Removed, opt)
			}
		}
		if len(c.Added) > 0 || len(c.Removed) > 0 {
			changes = append(changes, c)
		}
	}
	return changes
}

// Map returns the selection as filter id -> sorted option ids.
func (s Selection) Map() map[string][]string {
	out := make(map[string][]string, len(s))
	for _, e := range s {
		ids := cloneIDs(e.OptionIDs)
		sort.Strings(ids)
		out[e.ID] = ids
	}
	return out
}

func (s Selection) index(filterID string) int {
	for i, e := range s {
		if e.ID == filterID {
			return i
		}
	}
	return -1
}

func (s Selection) sets() map[string]map[string]struct{} {
	out := make(map[string]map[string]struct{}, len(s))
	for _, e := range s {
		if len(e.OptionIDs) == 0 {
			continue
		}
		set, ok := out[e.ID]
		if !ok {
			set = make(map[string]struct{}, len(e.OptionIDs))
			out[e.ID] = set
		}
		for _, opt := range e.OptionIDs {
			set[opt] = struct{}{}
		}
	}
	return out
}

// compact drops entries with no options.
func (s Selection) compact() Selection {
	out := s[:0]
	for _, e := range s {
		if len(e.OptionIDs) > 0 {
			out = append(out, e)
		}
	}
	if len(out) == 0 {
		return nil
	}
	return out
}

func cloneIDs(ids []string) []string {
	if len(ids) == 0 {
		return nil
	}
	dup := make([]string, len(ids))
	copy(dup, ids)
	return dup
}

func indexOf(ids []string, id string) int {
	for i, v := range ids {
		if v == id {
			return i
		}
	}
	return -1
}
