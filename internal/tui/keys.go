package tui

import "github.com/charmbracelet/bubbles/key"

// keyMap lists the editor bindings. They are matched before the textarea
// sees a key, so they shadow the textarea's own emacs-style bindings.
type keyMap struct {
	Save    key.Binding
	Clear   key.Binding
	Theme   key.Binding
	Goal    key.Binding
	Upper   key.Binding
	Lower   key.Binding
	Title   key.Binding
	Squeeze key.Binding
	Export  key.Binding
	Copy    key.Binding
	Quit    key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Save:    key.NewBinding(key.WithKeys("ctrl+s"), key.WithHelp("ctrl+s", "save")),
		Clear:   key.NewBinding(key.WithKeys("ctrl+l"), key.WithHelp("ctrl+l", "clear")),
		Theme:   key.NewBinding(key.WithKeys("ctrl+t"), key.WithHelp("ctrl+t", "theme")),
		Goal:    key.NewBinding(key.WithKeys("ctrl+g"), key.WithHelp("ctrl+g", "goal")),
		Upper:   key.NewBinding(key.WithKeys("alt+u"), key.WithHelp("alt+u", "upper")),
		Lower:   key.NewBinding(key.WithKeys("alt+l"), key.WithHelp("alt+l", "lower")),
		Title:   key.NewBinding(key.WithKeys("alt+t"), key.WithHelp("alt+t", "title")),
		Squeeze: key.NewBinding(key.WithKeys("alt+s"), key.WithHelp("alt+s", "squeeze")),
		Export:  key.NewBinding(key.WithKeys("ctrl+x"), key.WithHelp("ctrl+x", "export")),
		Copy:    key.NewBinding(key.WithKeys("ctrl+y"), key.WithHelp("ctrl+y", "copy")),
		Quit:    key.NewBinding(key.WithKeys("ctrl+c", "esc"), key.WithHelp("esc", "quit")),
	}
}

// ShortHelp implements help.KeyMap.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Save, k.Clear, k.Theme, k.Goal, k.Export, k.Copy, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Save, k.Clear, k.Export, k.Copy},
		{k.Upper, k.Lower, k.Title, k.Squeeze},
		{k.Theme, k.Goal, k.Quit},
	}
}
