package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/five82/facet/internal/catalog"
	"github.com/five82/facet/internal/flow"
)

// editorRow is one selectable option in the editor.
type editorRow struct {
	FilterID string
	OptionID string
}

// editorModal edits the draft selection against the loaded catalog.
type editorModal struct {
	ctrl   *flow.Controller
	index  catalog.Index
	keys   keyMap
	rows   []editorRow
	cursor int
}

func newEditorModal(ctrl *flow.Controller, index catalog.Index, keys keyMap) editorModal {
	var rows []editorRow
	for _, f := range index.Filters() {
		for _, o := range f.Options {
			rows = append(rows, editorRow{FilterID: f.ID, OptionID: o.ID})
		}
	}
	return editorModal{ctrl: ctrl, index: index, keys: keys, rows: rows}
}

func (e editorModal) current() (editorRow, bool) {
	if e.cursor < 0 || e.cursor >= len(e.rows) {
		return editorRow{}, false
	}
	return e.rows[e.cursor], true
}

// Update handles editor keys. The modal closes when the editor closes in the
// store; an apply that needs confirmation leaves it open underneath the
// confirm dialog.
func (e editorModal) Update(msg tea.Msg, keys keyMap) (Modal, tea.Cmd, bool) {
	k, ok := msg.(tea.KeyMsg)
	if !ok {
		return e, nil, false
	}
	store := e.ctrl.Store()

	switch {
	case key.Matches(k, keys.Up):
		if e.cursor > 0 {
			e.cursor--
		}
	case key.Matches(k, keys.Down):
		if e.cursor < len(e.rows)-1 {
			e.cursor++
		}
	case key.Matches(k, keys.Toggle):
		if row, ok := e.current(); ok {
			store.ToggleOption(row.FilterID, row.OptionID)
		}
	case key.Matches(k, keys.ClearFilter):
		if row, ok := e.current(); ok {
			store.ClearDraftFilter(row.FilterID)
		}
	case key.Matches(k, keys.ClearAll):
		if store.HasDraftSelection() {
			store.ClearAllDraft()
		}
	case key.Matches(k, keys.Undo):
		store.ResetDraft()
	case key.Matches(k, keys.Apply):
		if e.ctrl.Apply() {
			return e, nil, false
		}
		return e, flashCmd("No changes to apply"), true
	case key.Matches(k, keys.Close):
		store.CloseModal()
		return e, nil, true
	}
	return e, nil, false
}

// View renders the editor box centered in width x height.
func (e editorModal) View(theme Theme, width, height int) string {
	styles := theme.Styles()
	store := e.ctrl.Store()
	draft := store.Draft()
	inner := EditorWidth - 6

	var lines []string
	cursorLine := 0
	n := 0
	for _, f := range e.index.Filters() {
		header := styles.AccentText.Bold(true).Render(f.Name)
		if count := len(draft.Options(f.ID)); count > 0 {
			header += styles.FaintText.Render(fmt.Sprintf(" (%d)", count))
		}
		lines = append(lines, header)
		if f.Description != "" {
			lines = append(lines, styles.FaintText.Render(truncate(f.Description, inner)))
		}
		if len(f.Options) == 0 {
			lines = append(lines, styles.FaintText.Render("  no options"))
		}
		for _, o := range f.Options {
			mark := "[ ]"
			if draft.Contains(f.ID, o.ID) {
				mark = "[x]"
			}
			line := truncate(fmt.Sprintf("  %s %s", mark, o.Name), inner)
			if n == e.cursor {
				cursorLine = len(lines)
				line = styles.Selected.Width(inner).Render(line)
			} else {
				line = styles.Text.Render(line)
			}
			lines = append(lines, line)
			n++
		}
		lines = append(lines, "")
	}
	if len(lines) == 0 {
		lines = append(lines, styles.FaintText.Render("The catalog has no filters."))
	}

	maxLines := height - ModalChrome
	if maxLines < 3 {
		maxLines = 3
	}
	lines = window(lines, cursorLine, maxLines)

	title := styles.Text.Bold(true).Render("Filters")
	if store.HasPendingChanges() {
		title += styles.WarningText.Render("  • modified")
	}

	var b strings.Builder
	b.WriteString(title)
	b.WriteString("\n\n")
	b.WriteString(strings.Join(lines, "\n"))
	b.WriteString("\n")
	b.WriteString(renderBindings(styles, e.keys.EditorHelp()))

	box := styles.Modal.Width(EditorWidth).Render(b.String())
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, box)
}

// window returns at most size lines of lines, keeping focus visible.
func window(lines []string, focus, size int) []string {
	if len(lines) <= size {
		return lines
	}
	start := focus - size/2
	if start < 0 {
		start = 0
	}
	if start+size > len(lines) {
		start = len(lines) - size
	}
	return lines[start : start+size]
}
