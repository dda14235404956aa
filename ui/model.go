package ui

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/qyinm/modeldeck/backdrop"
	"github.com/qyinm/modeldeck/browse"
	"github.com/qyinm/modeldeck/types"
	"github.com/rs/zerolog"
)

// ViewState represents where key input goes
type ViewState int

const (
	ListView ViewState = iota
	SearchView
	CompareView
)

const selectionFullNotice = "You can compare up to 4 models at a time."

// Options configures a new Model.
type Options struct {
	Filter   types.FilterState
	Backdrop bool
	Params   backdrop.Params
	Logger   zerolog.Logger
}

// Model is the main TUI model
type Model struct {
	engine    *browse.Engine
	selection *browse.Selection
	filter    types.FilterState
	visible   []types.ModelRecord
	stats     browse.Stats

	list     list.Model
	search   textinput.Model
	viewport viewport.Model
	help     help.Model
	keys     keyMap
	state    ViewState

	compareFocus int

	backdrop backdrop.Loop
	initCmd  tea.Cmd

	width  int
	height int

	notice    string
	noticeErr bool
	noticeID  int

	log zerolog.Logger
}

// NewModel creates a new Model browsing the engine's catalog
func NewModel(engine *browse.Engine, opts Options) Model {
	selection := browse.NewSelection()

	l := list.New([]list.Item{}, NewCardDelegate(selection), 0, 0)
	l.SetShowTitle(false)
	l.SetShowHelp(false)
	l.SetShowStatusBar(false)
	l.SetFilteringEnabled(false)
	l.DisableQuitKeybindings()

	ti := textinput.New()
	ti.Prompt = "⌕ "
	ti.PromptStyle = SearchPromptStyle
	ti.Placeholder = "Search models, features, developers..."
	ti.SetValue(opts.Filter.SearchTerm)

	h := help.New()
	h.Styles.ShortKey = HelpKeyStyle
	h.Styles.ShortDesc = HelpDescStyle
	h.Styles.FullKey = HelpKeyStyle
	h.Styles.FullDesc = HelpDescStyle

	m := Model{
		engine:    engine,
		selection: selection,
		filter:    opts.Filter,
		stats:     engine.Stats(),
		list:      l,
		search:    ti,
		viewport:  viewport.New(0, 0),
		help:      h,
		keys:      keys,
		state:     ListView,
		backdrop:  backdrop.New(opts.Params),
		log:       opts.Logger,
	}
	if opts.Backdrop {
		m.initCmd = m.backdrop.Start()
		m.log.Debug().Int("fps", opts.Params.FPS).Msg("backdrop started")
	}
	m.applyFilter()
	return m
}

// Init initializes the model
func (m Model) Init() tea.Cmd {
	return m.initCmd
}

// Update handles messages
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.backdrop.Update(msg)
		m.resizePanes()
		return m, nil

	case backdrop.FrameMsg:
		return m, m.backdrop.Update(msg)

	case tea.MouseMsg:
		m.backdrop.Update(msg)
		return m, nil

	case linkOpenedMsg:
		if msg.err != nil {
			m.log.Warn().Err(msg.err).Str("url", msg.url).Msg("open link failed")
			return m, m.setNotice("Could not open "+msg.url, true)
		}
		return m, m.setNotice("Opened "+msg.url, false)

	case linkCopiedMsg:
		if msg.err != nil {
			m.log.Warn().Err(msg.err).Str("url", msg.url).Msg("copy link failed")
			return m, m.setNotice("Could not copy link", true)
		}
		return m, m.setNotice("Copied "+msg.url, false)

	case noticeExpiredMsg:
		if msg.id == m.noticeID {
			m.notice = ""
			m.noticeErr = false
		}
		return m, nil

	case tea.KeyMsg:
		var cmd tea.Cmd
		switch m.state {
		case SearchView:
			cmd = m.updateSearch(msg)
		case CompareView:
			cmd = m.updateCompare(msg)
		default:
			cmd = m.updateList(msg)
		}
		return m, cmd
	}

	// Cursor blink and other input messages
	if m.state == SearchView {
		var cmd tea.Cmd
		m.search, cmd = m.search.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m *Model) updateList(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m.quit()

	case key.Matches(msg, m.keys.Search):
		m.state = SearchView
		return m.search.Focus()

	case key.Matches(msg, m.keys.NextCategory):
		m.setCategory(m.filter.Category.Next())
		return nil

	case key.Matches(msg, m.keys.PrevCategory):
		m.setCategory(m.filter.Category.Prev())
		return nil

	case key.Matches(msg, m.keys.JumpCategory):
		idx := int(msg.String()[0] - '0')
		if idx >= 0 && idx < len(types.FilterCategories) {
			m.setCategory(types.FilterCategories[idx])
		}
		return nil

	case key.Matches(msg, m.keys.Sort):
		m.filter.Sort = m.filter.Sort.Next()
		m.applyFilter()
		return nil

	case key.Matches(msg, m.keys.Toggle):
		if rec, ok := m.current(); ok {
			return m.toggle(rec)
		}
		return nil

	case key.Matches(msg, m.keys.Compare):
		m.openCompare()
		return nil

	case key.Matches(msg, m.keys.Open):
		if rec, ok := m.current(); ok {
			return m.open(rec)
		}
		return nil

	case key.Matches(msg, m.keys.Copy):
		rec, ok := m.current()
		if !ok {
			return nil
		}
		if !rec.HasLink() {
			return m.setNotice("No link for "+rec.Name(), false)
		}
		return copyLink(rec.Link())

	case key.Matches(msg, m.keys.Reset):
		m.clearFilters()
		return nil

	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		m.resizePanes()
		return nil
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return cmd
}

func (m *Model) updateSearch(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, searchKeys.Quit):
		return m.quit()

	case key.Matches(msg, searchKeys.Leave):
		m.search.Blur()
		m.state = ListView
		return nil

	case key.Matches(msg, searchKeys.Clear):
		m.search.SetValue("")
		m.syncSearch()
		return nil
	}

	var cmd tea.Cmd
	m.search, cmd = m.search.Update(msg)
	m.syncSearch()
	return cmd
}

func (m *Model) updateCompare(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, compareKeys.Quit):
		return m.quit()

	case key.Matches(msg, compareKeys.Close):
		m.state = ListView
		return nil

	case key.Matches(msg, compareKeys.Left):
		if m.compareFocus > 0 {
			m.compareFocus--
			m.renderCompare()
		}
		return nil

	case key.Matches(msg, compareKeys.Right):
		if m.compareFocus < m.selection.Len()-1 {
			m.compareFocus++
			m.renderCompare()
		}
		return nil

	case key.Matches(msg, compareKeys.Remove):
		records := m.selection.Records()
		if m.compareFocus >= len(records) {
			return nil
		}
		cmd := m.toggle(records[m.compareFocus])
		if m.selection.Empty() {
			m.state = ListView
			return cmd
		}
		m.compareFocus = min(m.compareFocus, m.selection.Len()-1)
		m.renderCompare()
		return cmd

	case key.Matches(msg, compareKeys.Open):
		records := m.selection.Records()
		if m.compareFocus < len(records) {
			return m.open(records[m.compareFocus])
		}
		return nil
	}

	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return cmd
}

// current returns the highlighted record
func (m Model) current() (types.ModelRecord, bool) {
	rec, ok := m.list.SelectedItem().(types.ModelRecord)
	return rec, ok
}

func (m *Model) toggle(rec types.ModelRecord) tea.Cmd {
	outcome, err := m.selection.Toggle(rec)
	if err != nil {
		m.log.Info().Str("model", rec.ID()).Int("selected", m.selection.Len()).Msg("selection rejected")
		return m.setNotice(selectionFullNotice, true)
	}
	m.log.Debug().Str("model", rec.ID()).Stringer("outcome", outcome).Msg("selection changed")
	return nil
}

func (m *Model) open(rec types.ModelRecord) tea.Cmd {
	if !rec.HasLink() {
		return m.setNotice("No link for "+rec.Name(), false)
	}
	return openLink(rec.Link())
}

func (m *Model) openCompare() {
	if m.selection.Empty() {
		return
	}
	m.state = CompareView
	m.compareFocus = 0
	m.renderCompare()
	m.log.Info().Strs("models", m.selection.IDs()).Msg("comparison opened")
}

func (m *Model) setCategory(c types.Category) {
	if c == m.filter.Category {
		return
	}
	m.filter.Category = c
	m.applyFilter()
}

func (m *Model) syncSearch() {
	if v := m.search.Value(); v != m.filter.SearchTerm {
		m.filter.SearchTerm = v
		m.applyFilter()
	}
}

func (m *Model) clearFilters() {
	m.search.SetValue("")
	m.filter.SearchTerm = ""
	m.filter.Category = types.All
	m.applyFilter()
}

// applyFilter recomputes the visible records and resets the cursor
func (m *Model) applyFilter() {
	m.visible = m.engine.Visible(m.filter)
	items := make([]list.Item, len(m.visible))
	for i, r := range m.visible {
		items[i] = r
	}
	m.list.SetItems(items)
	m.list.ResetSelected()
}

func (m *Model) setNotice(text string, isErr bool) tea.Cmd {
	m.noticeID++
	m.notice = text
	m.noticeErr = isErr
	return expireNotice(m.noticeID)
}

func (m *Model) quit() tea.Cmd {
	if m.backdrop.Running() {
		m.backdrop.Stop()
		m.log.Debug().Int("frames", m.backdrop.Frames()).Msg("backdrop stopped")
	}
	return tea.Quit
}

// State returns where key input currently goes
func (m Model) State() ViewState { return m.state }

// Filter returns the active filter state
func (m Model) Filter() types.FilterState { return m.filter }

// Visible returns the records currently listed
func (m Model) Visible() []types.ModelRecord { return m.visible }

// Selection returns the comparison selection
func (m Model) Selection() *browse.Selection { return m.selection }

// Notice returns the transient status message, if any
func (m Model) Notice() string { return m.notice }

// Backdrop returns the background animation loop
func (m Model) Backdrop() backdrop.Loop { return m.backdrop }
