package ui

import (
	"context"
	"errors"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"

	"github.com/five82/facet/internal/catalog"
	"github.com/five82/facet/internal/flow"
	"github.com/five82/facet/internal/state"
)

// Options configures the UI.
type Options struct {
	Context   context.Context
	Flow      *flow.Controller
	Catalog   *state.Store
	Fetcher   catalog.Fetcher
	Source    string // shown in the header
	ThemeName string
	Logger    zerolog.Logger
}

// Model is the root application state for Bubble Tea.
type Model struct {
	// Configuration
	ctx     context.Context
	flow    *flow.Controller
	catalog *state.Store
	fetcher catalog.Fetcher
	source  string
	log     zerolog.Logger

	// UI state
	theme  Theme
	keys   keyMap
	width  int
	height int
	ready  bool

	// Data state
	snapshot state.Snapshot
	index    catalog.Index

	// Home view
	home viewport.Model

	// Modals
	editor   editorModal
	showHelp bool

	// Status line
	flash   string
	flashID int
}

// New creates a new Bubble Tea model.
func New(opts Options) Model {
	ctx := opts.Context
	if ctx == nil {
		ctx = context.Background()
	}
	store := opts.Catalog
	if store == nil {
		store = &state.Store{}
	}

	themeName := opts.ThemeName
	if themeName == "" {
		themeName = themeOrder[0]
	}

	snap := store.Snapshot()
	return Model{
		ctx:      ctx,
		flow:     opts.Flow,
		catalog:  store,
		fetcher:  opts.Fetcher,
		source:   opts.Source,
		log:      opts.Logger,
		theme:    GetTheme(themeName),
		keys:     DefaultKeyMap(),
		snapshot: snap,
		index:    catalog.NewIndex(snap.Filters),
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return m.reload()
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		model, cmd := m.handleKey(msg)
		next := model.(Model)
		next.syncHome()
		return next, cmd

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		if !m.ready {
			m.home = viewport.New(msg.Width, m.homeHeight())
			m.home.KeyMap = viewport.KeyMap{Up: m.keys.ScrollUp, Down: m.keys.ScrollDown}
		}
		m.ready = true
		m.home.Width = msg.Width
		m.home.Height = m.homeHeight()
		m.syncHome()
		return m, nil

	case catalogMsg:
		m.snapshot = state.Snapshot(msg)
		m.index = catalog.NewIndex(m.snapshot.Filters)
		if m.snapshot.LastError != nil {
			m.log.Warn().Err(m.snapshot.LastError).Int("attempts", m.snapshot.Attempts).Msg("catalog fetch failed")
		} else {
			m.log.Debug().Int("filters", len(m.snapshot.Filters)).Msg("catalog loaded")
		}
		m.syncHome()
		return m, nil

	case resolvedMsg:
		m.syncHome()
		return m.setFlash(resolvedText(msg))

	case flashMsg:
		return m.setFlash(string(msg))

	case clearFlashMsg:
		if int(msg) == m.flashID {
			m.flash = ""
		}
		return m, nil
	}

	return m, nil
}

// View implements tea.Model.
func (m Model) View() string {
	if !m.ready {
		return "Loading..."
	}

	if m.showHelp {
		return m.renderHelp()
	}

	if m.flow.Gate().Visible() {
		return m.confirm().View(m.theme, m.width, m.height)
	}

	if m.flow.Store().ModalOpen() {
		return m.editor.View(m.theme, m.width, m.height)
	}

	return m.renderHome()
}

func (m Model) confirm() confirmModal {
	return confirmModal{ctrl: m.flow, index: m.index}
}

// handleKey routes a key to the top-most layer: help, confirm dialog,
// editor, then the home view.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.Type == tea.KeyCtrlC {
		return m, tea.Quit
	}

	if m.showHelp {
		// Any key closes help
		m.showHelp = false
		return m, nil
	}

	if m.flow.Gate().Visible() {
		_, cmd, _ := m.confirm().Update(msg, m.keys)
		return m, cmd
	}

	if m.flow.Store().ModalOpen() {
		if key.Matches(msg, m.keys.Help) {
			m.showHelp = true
			return m, nil
		}
		modal, cmd, _ := m.editor.Update(msg, m.keys)
		m.editor = modal.(editorModal)
		return m, cmd
	}

	return m.handleHomeKey(msg)
}

func (m Model) handleHomeKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.showHelp = true
		return m, nil

	case key.Matches(msg, m.keys.CycleTheme):
		m.theme = GetTheme(NextTheme(m.theme.Name))
		return m, nil

	case key.Matches(msg, m.keys.OpenEditor):
		return m.openEditor()

	case key.Matches(msg, m.keys.Reset):
		if blocked := m.catalogBlocked(); blocked != nil {
			return m, blocked
		}
		if !m.flow.RequestReset() {
			return m, flashCmd("Nothing to clear")
		}
		return m, nil

	case key.Matches(msg, m.keys.Reload):
		if m.catalog.Snapshot().Loading {
			return m, nil
		}
		if inv, ok := m.fetcher.(interface{ Invalidate() }); ok {
			inv.Invalidate()
		}
		return m, m.reload()
	}

	var cmd tea.Cmd
	m.home, cmd = m.home.Update(msg)
	return m, cmd
}

// openEditor opens the editor. Without a catalog there is nothing to edit
// against, so the store is left untouched.
func (m Model) openEditor() (tea.Model, tea.Cmd) {
	if blocked := m.catalogBlocked(); blocked != nil {
		return m, blocked
	}
	m.flow.Store().OpenModal()
	m.editor = newEditorModal(m.flow, m.index, m.keys)
	return m, nil
}

// catalogBlocked returns a flash explaining why the selection cannot be
// changed yet, or nil once a catalog has loaded.
func (m Model) catalogBlocked() tea.Cmd {
	if m.snapshot.Ready() {
		return nil
	}
	if m.catalog.Snapshot().Loading {
		return flashCmd("Catalog is still loading")
	}
	return flashCmd("No catalog loaded, press r to reload")
}

// reload marks the catalog as loading and starts a fetch.
func (m *Model) reload() tea.Cmd {
	if m.fetcher == nil {
		return nil
	}
	m.catalog.Begin()
	m.snapshot = m.catalog.Snapshot()
	return fetchCatalogCmd(m.ctx, m.fetcher, m.catalog)
}

func (m Model) setFlash(text string) (tea.Model, tea.Cmd) {
	m.flashID++
	m.flash = text
	if text == "" {
		return m, nil
	}
	return m, clearFlashCmd(m.flashID)
}

func resolvedText(msg resolvedMsg) string {
	switch msg.Ran {
	case flow.ActionApplyDraft:
		return "New filter applied"
	case flow.ActionDiscardDraft:
		return "Kept old filter"
	case flow.ActionResetAll:
		return "All filters cleared"
	}
	if msg.Kind == flow.ActionApplyDraft {
		return "Still editing"
	}
	return ""
}

func (m Model) homeHeight() int {
	// header, status line, footer
	h := m.height - 3
	if h < 1 {
		h = 1
	}
	return h
}

// Messages

type catalogMsg state.Snapshot

type flashMsg string

type clearFlashMsg int

// Commands

func fetchCatalogCmd(ctx context.Context, fetcher catalog.Fetcher, store *state.Store) tea.Cmd {
	return func() tea.Msg {
		fetchCtx, cancel := context.WithTimeout(ctx, CatalogFetchTimeout)
		defer cancel()
		filters, err := fetcher.Fetch(fetchCtx)
		store.Update(filters, err)
		return catalogMsg(store.Snapshot())
	}
}

func flashCmd(text string) tea.Cmd {
	return func() tea.Msg {
		return flashMsg(text)
	}
}

func clearFlashCmd(id int) tea.Cmd {
	return tea.Tick(StatusFlashDuration, func(time.Time) tea.Msg {
		return clearFlashMsg(id)
	})
}

// Run starts the Bubble Tea program.
func Run(opts Options) error {
	m := New(opts)
	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(m.ctx))
	_, err := p.Run()
	if errors.Is(err, tea.ErrProgramKilled) && m.ctx.Err() != nil {
		return nil
	}
	return err
}
