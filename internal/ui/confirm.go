package ui

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/five82/facet/internal/catalog"
	"github.com/five82/facet/internal/flow"
	"github.com/five82/facet/internal/selection"
)

// confirmModal renders the pending confirmation request and resolves it.
type confirmModal struct {
	ctrl  *flow.Controller
	index catalog.Index
}

// resolvedMsg reports how a confirmation ended. Kind is what was asked,
// Ran is the action that actually ran.
type resolvedMsg struct {
	Kind flow.Action
	Ran  flow.Action
}

func (c confirmModal) prompt() flow.Prompt {
	req, ok := c.ctrl.Gate().Pending()
	if !ok {
		return flow.Prompt{}
	}
	p, _ := req.Payload.(flow.Prompt)
	return p
}

// Update resolves the request on y, n or esc and closes.
func (c confirmModal) Update(msg tea.Msg, keys keyMap) (Modal, tea.Cmd, bool) {
	k, ok := msg.(tea.KeyMsg)
	if !ok {
		return c, nil, false
	}
	kind := c.prompt().Kind

	var ran flow.Action
	switch {
	case key.Matches(k, keys.Yes):
		ran = c.ctrl.Confirm()
	case key.Matches(k, keys.No):
		ran = c.ctrl.Cancel()
	case key.Matches(k, keys.Dismiss):
		ran = c.ctrl.Dismiss()
	default:
		return c, nil, false
	}
	return c, func() tea.Msg { return resolvedMsg{Kind: kind, Ran: ran} }, true
}

// View renders the dialog centered in width x height.
func (c confirmModal) View(theme Theme, width, height int) string {
	styles := theme.Styles()
	p := c.prompt()

	title, yes, no := "Do you want to apply new filter", "Apply new filter", "Use old filter"
	if p.Kind == flow.ActionResetAll {
		title, yes, no = "Clear all filters?", "Clear all", "Keep filters"
	}

	lines := c.changeLines(styles, p.Changes)
	maxLines := height - ModalChrome - 2
	if maxLines < 1 {
		maxLines = 1
	}
	if len(lines) > maxLines {
		more := len(lines) - maxLines + 1
		lines = append(lines[:maxLines-1], styles.FaintText.Render("… "+strconv.Itoa(more)+" more"))
	}

	var b strings.Builder
	b.WriteString(styles.Text.Bold(true).Render(title))
	b.WriteString("\n\n")
	if len(lines) == 0 {
		b.WriteString(styles.FaintText.Render("No changes."))
	} else {
		b.WriteString(strings.Join(lines, "\n"))
	}
	b.WriteString("\n\n")
	b.WriteString(styles.Key.Render("n") + " " + styles.Text.Render(no))
	b.WriteString("    ")
	b.WriteString(styles.Key.Render("y") + " " + styles.SuccessText.Render(yes))
	b.WriteString("\n")
	b.WriteString(styles.Key.Render("esc") + " " + styles.FaintText.Render("Dismiss"))

	box := styles.Modal.Width(ConfirmWidth).Render(b.String())
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, box)
}

func (c confirmModal) changeLines(styles Styles, changes []selection.Change) []string {
	var lines []string
	for _, ch := range changes {
		name := orID(c.index.FilterName(ch.FilterID), ch.FilterID)
		for _, opt := range ch.Added {
			label := name + ": " + orID(c.index.OptionName(ch.FilterID, opt), opt)
			lines = append(lines, styles.SuccessText.Render("+ "+label))
		}
		for _, opt := range ch.Removed {
			label := name + ": " + orID(c.index.OptionName(ch.FilterID, opt), opt)
			lines = append(lines, styles.DangerText.Render("- "+label))
		}
	}
	return lines
}
