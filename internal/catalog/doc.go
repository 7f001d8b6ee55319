// Package catalog provides the filter catalog: its types, the sources it is
// fetched from and lookups over it.
//
// # Overview
//
// A catalog is an ordered list of filters. Each filter has an id, a display
// name, a kind and an ordered list of options. The selection core never
// depends on this package; the UI uses it to render option lists and to turn
// committed ids back into names.
//
// # Sources
//
// Every source implements Fetcher:
//
//   - Client: GET /api/filters on a catalog server (see internal/catalogd)
//   - FileSource: the same JSON document read from disk
//   - Cached: wraps another Fetcher and serves results until they are stale
//
// The JSON document looks like:
//
//	{
//	  "filterItems": [
//	    {"id": "color", "name": "Color", "type": "option",
//	     "options": [{"id": "red", "name": "Red"}, {"id": "blue", "name": "Blue"}]}
//	  ]
//	}
//
// # Validation
//
// Fetched catalogs go through Validate: filter ids must be unique and
// non-empty, option ids must be unique within their filter and the type must
// be empty or "option". A failed validation wraps ErrInvalidCatalog and is
// reported like any other fetch error.
//
// # Error Handling
//
// All errors are wrapped with fmt.Errorf and describe what failed:
//
//   - "execute request: dial tcp: connection refused"
//   - "api /api/filters returned status 500"
//   - "decode response: unexpected EOF"
//   - "invalid catalog: duplicate filter id \"color\""
//
// The caller decides what to do with them. The app shows them on the home
// view and waits for a manual reload; nothing here retries.
package catalog
