package ui

import "time"

// Modal sizing.
const (
	// EditorWidth is the width of the filter editor box.
	EditorWidth = 56

	// ConfirmWidth is the width of the confirm dialog.
	ConfirmWidth = 52

	// HelpWidth is the width of the help overlay.
	HelpWidth = 44

	// ModalChrome is the vertical space taken by a modal's border, padding,
	// title and footer.
	ModalChrome = 8
)

// Timing constants.
const (
	// CatalogFetchTimeout bounds a single catalog fetch.
	CatalogFetchTimeout = 10 * time.Second

	// StatusFlashDuration is how long a status message stays visible.
	StatusFlashDuration = 3 * time.Second
)
