package ui

import "github.com/charmbracelet/bubbles/key"

// keyMap defines all keyboard bindings for the application.
type keyMap struct {
	// Global
	Quit       key.Binding
	Help       key.Binding
	CycleTheme key.Binding

	// Home
	OpenEditor key.Binding
	Reset      key.Binding
	Reload     key.Binding
	ScrollUp   key.Binding
	ScrollDown key.Binding

	// Editor
	Up          key.Binding
	Down        key.Binding
	Toggle      key.Binding
	ClearFilter key.Binding
	ClearAll    key.Binding
	Undo        key.Binding
	Apply       key.Binding
	Close       key.Binding

	// Confirm dialog
	Yes     key.Binding
	No      key.Binding
	Dismiss key.Binding
}

// DefaultKeyMap returns the default key bindings.
func DefaultKeyMap() keyMap {
	return keyMap{
		// Global
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c", "e"),
			key.WithHelp("e", "Quit"),
		),
		Help: key.NewBinding(
			key.WithKeys("h", "?"),
			key.WithHelp("h/?", "Toggle help"),
		),
		CycleTheme: key.NewBinding(
			key.WithKeys("T"),
			key.WithHelp("T", "Cycle theme"),
		),

		// Home
		OpenEditor: key.NewBinding(
			key.WithKeys("f", "enter"),
			key.WithHelp("f", "Edit filters"),
		),
		Reset: key.NewBinding(
			key.WithKeys("X"),
			key.WithHelp("X", "Clear all filters"),
		),
		Reload: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "Reload catalog"),
		),
		ScrollUp: key.NewBinding(
			key.WithKeys("k", "up"),
			key.WithHelp("k/up", "Scroll up"),
		),
		ScrollDown: key.NewBinding(
			key.WithKeys("j", "down"),
			key.WithHelp("j/down", "Scroll down"),
		),

		// Editor
		Up: key.NewBinding(
			key.WithKeys("k", "up"),
			key.WithHelp("k/up", "Move up"),
		),
		Down: key.NewBinding(
			key.WithKeys("j", "down"),
			key.WithHelp("j/down", "Move down"),
		),
		Toggle: key.NewBinding(
			key.WithKeys(" ", "enter"),
			key.WithHelp("space", "Toggle option"),
		),
		ClearFilter: key.NewBinding(
			key.WithKeys("x"),
			key.WithHelp("x", "Clear filter"),
		),
		ClearAll: key.NewBinding(
			key.WithKeys("c"),
			key.WithHelp("c", "Clear all"),
		),
		Undo: key.NewBinding(
			key.WithKeys("u"),
			key.WithHelp("u", "Undo edits"),
		),
		Apply: key.NewBinding(
			key.WithKeys("a"),
			key.WithHelp("a", "Apply"),
		),
		Close: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "Close"),
		),

		// Confirm dialog
		Yes: key.NewBinding(
			key.WithKeys("y"),
			key.WithHelp("y", "Apply new filter"),
		),
		No: key.NewBinding(
			key.WithKeys("n"),
			key.WithHelp("n", "Use old filter"),
		),
		Dismiss: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "Dismiss"),
		),
	}
}

// ShortHelp returns key bindings for the footer on the home view.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.OpenEditor, k.Reset, k.Reload, k.Help, k.Quit}
}

// EditorHelp returns key bindings for the editor footer.
func (k keyMap) EditorHelp() []key.Binding {
	return []key.Binding{k.Toggle, k.ClearFilter, k.ClearAll, k.Apply, k.Close}
}

// FullHelp returns key bindings for the help overlay.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.OpenEditor, k.Reset, k.Reload, k.ScrollDown, k.ScrollUp},
		{k.Up, k.Down, k.Toggle, k.ClearFilter, k.ClearAll, k.Undo, k.Apply, k.Close},
		{k.Yes, k.No, k.Dismiss},
		{k.CycleTheme, k.Help, k.Quit},
	}
}
