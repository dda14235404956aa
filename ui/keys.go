package ui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Up           key.Binding
	Down         key.Binding
	Search       key.Binding
	NextCategory key.Binding
	PrevCategory key.Binding
	JumpCategory key.Binding
	Sort         key.Binding
	Toggle       key.Binding
	Compare      key.Binding
	Open         key.Binding
	Copy         key.Binding
	Reset        key.Binding
	Help         key.Binding
	Quit         key.Binding
}

var keys = keyMap{
	Up:           key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
	Down:         key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
	Search:       key.NewBinding(key.WithKeys("/"), key.WithHelp("/", "search")),
	NextCategory: key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "category")),
	PrevCategory: key.NewBinding(key.WithKeys("shift+tab"), key.WithHelp("shift+tab", "prev category")),
	JumpCategory: key.NewBinding(key.WithKeys("0", "1", "2", "3", "4"), key.WithHelp("0-4", "jump to category")),
	Sort:         key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "sort")),
	Toggle:       key.NewBinding(key.WithKeys(" ", "x"), key.WithHelp("space/x", "select")),
	Compare:      key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "compare")),
	Open:         key.NewBinding(key.WithKeys("o"), key.WithHelp("o", "open")),
	Copy:         key.NewBinding(key.WithKeys("y"), key.WithHelp("y", "copy link")),
	Reset:        key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "clear filters")),
	Help:         key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
	Quit:         key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
}

// ShortHelp returns short help key bindings (for help.Model)
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Search, k.NextCategory, k.Sort, k.Toggle, k.Compare, k.Help, k.Quit}
}

// FullHelp returns full help key bindings
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Search, k.Reset},
		{k.NextCategory, k.PrevCategory, k.JumpCategory, k.Sort},
		{k.Toggle, k.Compare, k.Open, k.Copy},
		{k.Help, k.Quit},
	}
}

// searchKeyMap is active while the search box has focus.
type searchKeyMap struct {
	Leave key.Binding
	Clear key.Binding
	Quit  key.Binding
}

var searchKeys = searchKeyMap{
	Leave: key.NewBinding(key.WithKeys("esc", "enter"), key.WithHelp("esc/enter", "done")),
	Clear: key.NewBinding(key.WithKeys("ctrl+u"), key.WithHelp("ctrl+u", "clear")),
	Quit:  key.NewBinding(key.WithKeys("ctrl+c"), key.WithHelp("ctrl+c", "quit")),
}

func (k searchKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Leave, k.Clear, k.Quit}
}

func (k searchKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}

// compareKeyMap is active while the comparison modal is open.
type compareKeyMap struct {
	Left   key.Binding
	Right  key.Binding
	Up     key.Binding
	Down   key.Binding
	Remove key.Binding
	Open   key.Binding
	Close  key.Binding
	Quit   key.Binding
}

var compareKeys = compareKeyMap{
	Left:   key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←/h", "prev")),
	Right:  key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("→/l", "next")),
	Up:     key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "scroll")),
	Down:   key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "scroll")),
	Remove: key.NewBinding(key.WithKeys("x", "d"), key.WithHelp("x/d", "remove")),
	Open:   key.NewBinding(key.WithKeys("o"), key.WithHelp("o", "open")),
	Close:  key.NewBinding(key.WithKeys("esc", "q"), key.WithHelp("esc/q", "close")),
	Quit:   key.NewBinding(key.WithKeys("ctrl+c"), key.WithHelp("ctrl+c", "quit")),
}

func (k compareKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Left, k.Right, k.Remove, k.Open, k.Close}
}

func (k compareKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Left, k.Right, k.Up, k.Down},
		{k.Remove, k.Open, k.Close, k.Quit},
	}
}
