package ui

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/five82/facet/internal/selection"
)

// renderHome renders the header, status line, scrolling body and footer.
func (m Model) renderHome() string {
	styles := m.theme.Styles()

	var b strings.Builder
	b.WriteString(m.renderHeader())
	b.WriteString("\n")
	b.WriteString(m.renderStatus())
	b.WriteString("\n")
	b.WriteString(m.home.View())
	b.WriteString("\n")
	b.WriteString(styles.Footer.Width(m.width).Render(renderBindings(styles, m.keys.ShortHelp())))
	return b.String()
}

func (m Model) renderHeader() string {
	styles := m.theme.Styles()
	parts := []string{styles.Logo.Render("facet")}
	if m.source != "" {
		parts = append(parts, styles.MutedText.Render("catalog "+m.source))
	}
	if m.snapshot.Ready() {
		parts = append(parts, styles.MutedText.Render(fmt.Sprintf("%d filters", len(m.snapshot.Filters))))
	}
	return styles.Header.Width(m.width).Render(strings.Join(parts, styles.FaintText.Render("  ·  ")))
}

// renderStatus shows, in order of priority, a flash message, catalog
// loading, or the last catalog error.
func (m Model) renderStatus() string {
	styles := m.theme.Styles()
	snap := m.catalog.Snapshot()

	switch {
	case m.flash != "":
		return styles.SuccessText.Render(m.flash)
	case snap.Loading:
		return styles.InfoText.Render("Loading catalog…")
	case snap.LastError != nil:
		msg := fmt.Sprintf("Catalog error: %v (attempt %d, press r to reload)", snap.LastError, snap.Attempts)
		return styles.DangerText.Render(truncate(msg, m.width))
	case !snap.Ready():
		return styles.WarningText.Render("No catalog loaded")
	}
	return ""
}

// syncHome refreshes the home viewport content from the store.
func (m *Model) syncHome() {
	if !m.ready {
		return
	}
	m.home.SetContent(m.homeContent())
}

func (m Model) homeContent() string {
	styles := m.theme.Styles()
	sel := m.flow.Store().Selection()

	var b strings.Builder
	b.WriteString(styles.AccentText.Bold(true).Render("Current selection"))
	b.WriteString("\n")
	b.WriteString(styles.Text.Render(selectionJSON(sel)))
	b.WriteString("\n\n")

	b.WriteString(styles.AccentText.Bold(true).Render("Selected options"))
	b.WriteString("\n")
	labels := m.index.Labels(sel)
	switch {
	case len(labels) > 0:
		chips := make([]string, 0, len(labels))
		for _, l := range labels {
			chips = append(chips, styles.Chip.Render(l.String()))
		}
		b.WriteString(wrapChips(chips, m.width))
	case !sel.IsEmpty() && !m.snapshot.Ready():
		b.WriteString(styles.FaintText.Render("Names appear once the catalog loads."))
	default:
		b.WriteString(styles.FaintText.Render("No filters selected."))
	}
	b.WriteString("\n")
	return b.String()
}

// selectionJSON renders sel as indented JSON, using [] for an empty selection.
func selectionJSON(sel selection.Selection) string {
	if sel == nil {
		sel = selection.Selection{}
	}
	data, err := json.MarshalIndent(sel, "", "  ")
	if err != nil {
		return err.Error()
	}
	return string(data)
}
