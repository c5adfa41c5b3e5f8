package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Send         key.Binding
	Newline      key.Binding
	NextFocus    key.Binding
	PrevFocus    key.Binding
	NextTab      key.Binding
	LoadComments key.Binding
	OpenBrowser  key.Binding
	ToggleHelp   key.Binding
	ScrollUp     key.Binding
	ScrollDown   key.Binding
	Quit         key.Binding
}

var keys = keyMap{
	Send:         key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "submit / ask")),
	Newline:      key.NewBinding(key.WithKeys("alt+enter"), key.WithHelp("alt+enter", "newline")),
	NextFocus:    key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "focus")),
	PrevFocus:    key.NewBinding(key.WithKeys("shift+tab")),
	NextTab:      key.NewBinding(key.WithKeys("f2"), key.WithHelp("f2", "tabs")),
	LoadComments: key.NewBinding(key.WithKeys("ctrl+l"), key.WithHelp("ctrl+l", "comments")),
	OpenBrowser:  key.NewBinding(key.WithKeys("ctrl+o"), key.WithHelp("ctrl+o", "watch")),
	ToggleHelp:   key.NewBinding(key.WithKeys("f1"), key.WithHelp("f1", "hide help")),
	ScrollUp:     key.NewBinding(key.WithKeys("pgup"), key.WithHelp("pgup/pgdn", "scroll")),
	ScrollDown:   key.NewBinding(key.WithKeys("pgdown")),
	Quit:         key.NewBinding(key.WithKeys("ctrl+c"), key.WithHelp("ctrl+c", "quit")),
}

// helpLine lists the bindings shown in the help bar
func (k keyMap) helpLine() []key.Binding {
	return []key.Binding{k.Send, k.Newline, k.NextFocus, k.NextTab, k.LoadComments, k.OpenBrowser, k.ScrollUp, k.ToggleHelp, k.Quit}
}
