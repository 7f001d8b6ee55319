// Package config loads facet's TOML configuration.
//
// # Configuration Discovery
//
// Load follows this resolution order:
//
//  1. If a path is explicitly provided, use it
//  2. Otherwise, use ~/.config/facet/config.toml
//  3. If the file doesn't exist, fall back to Default()
//  4. If the file exists but fields are missing or blank, use defaults
//
// # TOML Format
//
//	catalog_url = "127.0.0.1:7488"          # catalog server (see facet-catalogd)
//	catalog_file = ""                       # read the catalog from disk instead
//	catalog_stale_seconds = 300
//	state_backend = "file"                  # "file" or "sqlite"
//	state_dir = "~/.local/state/facet"
//	state_name = "filter-storage"
//	confirm_dismiss = "keep"                # "keep" or "cancel"
//	theme = "Nightfox"
//	log_file = "~/.local/state/facet/facet.log"
//	log_level = "info"
//
// All fields are optional. Paths get tilde expansion and are made absolute.
// When catalog_file is set it wins over catalog_url.
//
// # Error Handling
//
// Load returns errors for:
//   - Path expansion failures
//   - File read errors (except os.ErrNotExist, which triggers defaults)
//   - TOML parsing errors
//   - Values outside the accepted sets (state_backend, confirm_dismiss) and a
//     state_name containing a path separator
//
// A missing config file is not an error.
package config
