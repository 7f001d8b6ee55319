package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"
)

// truncate shortens a string to the given limit, adding an ellipsis if needed.
func truncate(value string, limit int) string {
	if limit <= 0 {
		return value
	}
	runes := []rune(value)
	if len(runes) <= limit {
		return value
	}
	if limit <= 1 {
		return string(runes[:limit])
	}
	return string(runes[:limit-1]) + "…"
}

// orID returns name, or id when the catalog has no name for it.
func orID(name, id string) string {
	if name == "" {
		return id
	}
	return name
}

// wrapChips lays out rendered chips in rows no wider than width.
func wrapChips(chips []string, width int) string {
	if len(chips) == 0 {
		return ""
	}
	var rows []string
	var row []string
	rowWidth := 0
	for _, chip := range chips {
		w := lipgloss.Width(chip)
		if len(row) > 0 && rowWidth+1+w > width {
			rows = append(rows, strings.Join(row, " "))
			row, rowWidth = nil, 0
		}
		if len(row) > 0 {
			rowWidth++
		}
		row = append(row, chip)
		rowWidth += w
	}
	rows = append(rows, strings.Join(row, " "))
	return strings.Join(rows, "\n")
}

// renderBindings renders "key desc · key desc" for a footer.
func renderBindings(styles Styles, bindings []key.Binding) string {
	parts := make([]string, 0, len(bindings))
	for _, b := range bindings {
		if !b.Enabled() {
			continue
		}
		h := b.Help()
		parts = append(parts, styles.Key.Render(h.Key)+" "+styles.MutedText.Render(h.Desc))
	}
	return strings.Join(parts, styles.FaintText.Render(" · "))
}
