// Package keys contains keybinding definitions.
package keys

import "github.com/charmbracelet/bubbles/key"

// ShellKeyMap defines the keybindings for the interactive shell.
type ShellKeyMap struct {
	Submit   key.Binding
	Complete key.Binding
	Next     key.Binding
	Prev     key.Binding
	Clear    key.Binding
	Quit     key.Binding
}

// Shell is the default shell keymap.
var Shell = ShellKeyMap{
	Submit: key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("enter", "run command"),
	),
	Complete: key.NewBinding(
		key.WithKeys("tab"),
		key.WithHelp("tab", "complete"),
	),
	Next: key.NewBinding(
		key.WithKeys("down", "ctrl+n"),
		key.WithHelp("↓/ctrl+n", "next suggestion"),
	),
	Prev: key.NewBinding(
		key.WithKeys("up", "ctrl+p"),
		key.WithHelp("↑/ctrl+p", "previous suggestion"),
	),
	Clear: key.NewBinding(
		key.WithKeys("ctrl+u"),
		key.WithHelp("ctrl+u", "clear input"),
	),
	Quit: key.NewBinding(
		key.WithKeys("esc", "ctrl+c", "ctrl+d"),
		key.WithHelp("esc", "quit"),
	),
}

// ShortHelp returns the bindings shown in the shell footer.
func (k ShellKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Submit, k.Complete, k.Next, k.Quit}
}

// FullHelp returns every shell binding grouped by purpose.
func (k ShellKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Submit, k.Complete, k.Clear},
		{k.Next, k.Prev, k.Quit},
	}
}
