package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Translation key.Binding
	Pinyin      key.Binding
	Border      key.Binding
	Print       key.Binding
	Copy        key.Binding
	Scroll      key.Binding
	Help        key.Binding
	Quit        key.Binding
}

func newKeyMap() keyMap {
	return keyMap{
		Translation: key.NewBinding(key.WithKeys("t"), key.WithHelp("t", "translation")),
		Pinyin:      key.NewBinding(key.WithKeys("p"), key.WithHelp("p", "pinyin")),
		Border:      key.NewBinding(key.WithKeys("b"), key.WithHelp("b", "borders")),
		Print:       key.NewBinding(key.WithKeys("w"), key.WithHelp("w", "print png")),
		Copy:        key.NewBinding(key.WithKeys("c", "y"), key.WithHelp("c", "copy text")),
		Scroll:      key.NewBinding(key.WithKeys("up", "down", "j", "k"), key.WithHelp("↑/↓", "scroll")),
		Help:        key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "more")),
		Quit:        key.NewBinding(key.WithKeys("q", "esc", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Translation, k.Pinyin, k.Border, k.Print, k.Copy, k.Help, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Translation, k.Pinyin, k.Border},
		{k.Print, k.Copy},
		{k.Scroll, k.Help, k.Quit},
	}
}
