package types

import "github.com/charmbracelet/bubbles/key"

// KeyMap holds the key bindings of the browse and detail modes. It also
// feeds the help footer.
type KeyMap struct {
	Up        key.Binding
	Down      key.Binding
	PageUp    key.Binding
	PageDown  key.Binding
	Home      key.Binding
	End       key.Binding
	Open      key.Binding
	Close     key.Binding
	Favorite  key.Binding
	Copy      key.Binding
	Browser   key.Binding
	Favorites key.Binding
	Pager     key.Binding
	Search    key.Binding
	Help      key.Binding
	Quit      key.Binding
}

// DefaultKeyMap returns the default bindings
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up:        key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down:      key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		PageUp:    key.NewBinding(key.WithKeys("pgup", "ctrl+u"), key.WithHelp("pgup", "page up")),
		PageDown:  key.NewBinding(key.WithKeys("pgdown", "ctrl+d"), key.WithHelp("pgdn", "page down")),
		Home:      key.NewBinding(key.WithKeys("home", "g"), key.WithHelp("g", "top")),
		End:       key.NewBinding(key.WithKeys("end", "G"), key.WithHelp("G", "bottom")),
		Open:      key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "details")),
		Close:     key.NewBinding(key.WithKeys("esc", "enter", "q"), key.WithHelp("esc", "close")),
		Favorite:  key.NewBinding(key.WithKeys("f", " "), key.WithHelp("f", "favorite")),
		Copy:      key.NewBinding(key.WithKeys("c", "y"), key.WithHelp("c", "copy url")),
		Browser:   key.NewBinding(key.WithKeys("o"), key.WithHelp("o", "open")),
		Favorites: key.NewBinding(key.WithKeys("v"), key.WithHelp("v", "favorites")),
		Pager:     key.NewBinding(key.WithKeys("p"), key.WithHelp("p", "pager")),
		Search:    key.NewBinding(key.WithKeys("/", "tab", "esc"), key.WithHelp("/", "search")),
		Help:      key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
		Quit:      key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// ShortHelp implements help.KeyMap
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Search, k.Open, k.Favorite, k.Copy, k.Favorites, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.PageUp, k.PageDown, k.Home, k.End},
		{k.Open, k.Favorite, k.Copy, k.Browser},
		{k.Search, k.Favorites, k.Pager, k.Help, k.Quit},
	}
}
