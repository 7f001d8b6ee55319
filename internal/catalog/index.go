package catalog

import "github.com/five82/facet/internal/selection"

// Index answers name lookups over a catalog.
type Index struct {
	filters []Filter
	byID    map[string]int
}

// NewIndex builds an index over filters.
func NewIndex(filters []Filter) Index {
	idx := Index{
		filters: filters,
		byID:    make(map[string]int, len(filters)),
	}
	for i, f := range filters {
		idx.byID[f.ID] = i
	}
	return idx
}

// Filters returns the indexed catalog in order.
func (x Index) Filters() []Filter {
	return x.filters
}

// Filter looks up a filter by id.
func (x Index) Filter(id string) (Filter, bool) {
	i, ok := x.byID[id]
	if !ok {
		return Filter{}, false
	}
	return x.filters[i], true
}

// FilterName returns the display name of a filter, or "" when unknown.
func (x Index) FilterName(id string) string {
	f, _ := x.Filter(id)
	return f.Name
}

// OptionName returns the display name of an option, or "" when unknown.
func (x Index) OptionName(filterID, optionID string) string {
	f, ok := x.Filter(filterID)
	if !ok {
		return ""
	}
	for _, o := range f.Options {
		if o.ID == optionID {
			return o.Name
		}
	}
	return ""
}

// Label pairs a filter name with an option name.
type Label struct {
	FilterID string
	OptionID string
	Filter   string
	Option   string
}

func (l Label) String() string {
	return l.Filter + ": " + l.Option
}

// Labels resolves sel into display labels in selection order. Ids without a
// name in the catalog are skipped.
func (x Index) Labels(sel selection.Selection) []Label {
	var out []Label
	for _, e := range sel {
		filterName := x.FilterName(e.ID)
		if filterName == "" {
			continue
		}
		for _, opt := range e.OptionIDs {
			optionName := x.OptionName(e.ID, opt)
			if optionName == "" {
				continue
			}
			out = append(out, Label{FilterID: e.ID, OptionID: opt, Filter: filterName, Option: optionName})
		}
	}
	return out
}
