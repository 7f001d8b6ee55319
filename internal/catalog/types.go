package catalog

import (
	"errors"
	"fmt"
	"strings"
)

// Kind is the category kind of a filter.
type Kind string

// KindOption is a filter whose options are picked with checkboxes.
const KindOption Kind = "option"

// ErrInvalidCatalog marks a catalog that breaks id uniqueness or uses an
// unknown kind.
var ErrInvalidCatalog = errors.New("invalid catalog")

// Filter is one catalog entry.
type Filter struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Description string   `json:"description,omitempty"`
	Image       string   `json:"image,omitempty"`
	Icon        string   `json:"icon,omitempty"`
	Type        Kind     `json:"type"`
	Options     []Option `json:"options"`
}

// Option is a selectable value of a filter.
type Option struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// Document is the JSON envelope served by /api/filters and stored in
// catalog files.
type Document struct {
	FilterItems []Filter `json:"filterItems"`
}

// Validate checks id uniqueness and kinds. An empty type is read as
// KindOption.
func Validate(filters []Filter) error {
	seen := make(map[string]struct{}, len(filters))
	for i, f := range filters {
		id := strings.TrimSpace(f.ID)
		if id == "" {
			return fmt.Errorf("%w: filter %d has no id", ErrInvalidCatalog, i)
		}
		if _, dup := seen[id]; dup {
			return fmt.Errorf("%w: duplicate filter id %q", ErrInvalidCatalog, id)
		}
		seen[id] = struct{}{}

		if f.Type != "" && f.Type != KindOption {
			return fmt.Errorf("%w: filter %q has unknown type %q", ErrInvalidCatalog, id, f.Type)
		}

		opts := make(map[string]struct{}, len(f.Options))
		for _, o := range f.Options {
			if strings.TrimSpace(o.ID) == "" {
				return fmt.Errorf("%w: filter %q has an option without id", ErrInvalidCatalog, id)
			}
			if _, dup := opts[o.ID]; dup {
				return fmt.Errorf("%w: filter %q repeats option %q", ErrInvalidCatalog, id, o.ID)
			}
			opts[o.ID] = struct{}{}
		}
	}
	return nil
}

func normalize(filters []Filter) []Filter {
	out := make([]Filter, len(filters))
	for i, f := range filters {
		if f.Type == "" {
			f.Type = KindOption
		}
		f.Options = append([]Option(nil), f.Options...)
		out[i] = f
	}
	return out
}

// Clone returns a deep copy of filters.
func Clone(filters []Filter) []Filter {
	if len(filters) == 0 {
		return nil
	}
	out := make([]Filter, len(filters))
	for i, f := range filters {
		f.Options = append([]Option(nil), f.Options...)
		out[i] = f
	}
	return out
}
