package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Bet1     key.Binding
	Bet2     key.Binding
	Bet3     key.Binding
	Bet4     key.Binding
	Hit      key.Binding
	Stand    key.Binding
	NewRound key.Binding
	Quit     key.Binding
}

func newKeyMap() keyMap {
	return keyMap{
		Bet1:     key.NewBinding(key.WithKeys("1"), key.WithHelp("1", "bet preset 1")),
		Bet2:     key.NewBinding(key.WithKeys("2"), key.WithHelp("2", "bet preset 2")),
		Bet3:     key.NewBinding(key.WithKeys("3"), key.WithHelp("3", "bet preset 3")),
		Bet4:     key.NewBinding(key.WithKeys("4"), key.WithHelp("4", "bet preset 4")),
		Hit:      key.NewBinding(key.WithKeys("h"), key.WithHelp("h", "hit")),
		Stand:    key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "stand")),
		NewRound: key.NewBinding(key.WithKeys("n"), key.WithHelp("n", "new round")),
		Quit:     key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// ShortHelp returns the bindings shown in the mini help view.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Hit, k.Stand, k.NewRound, k.Quit}
}

// FullHelp returns all bindings.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Bet1, k.Bet2, k.Bet3, k.Bet4},
		{k.Hit, k.Stand, k.NewRound, k.Quit},
	}
}
