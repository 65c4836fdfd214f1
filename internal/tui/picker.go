// Package tui implements the interactive picker shown when a navigation
// query matches more than one location. It is the CLI stand-in for a host
// editor's quick-pick dialog.
package tui

import (
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// Item is one selectable entry.
type Item struct {
	Label  string
	Detail string
}

func (i Item) Title() string       { return i.Label }
func (i Item) Description() string { return i.Detail }
func (i Item) FilterValue() string { return i.Label }

type model struct {
	list     list.Model
	selected Item
	chosen   bool
}

func newModel(title string, items []Item) model {
	entries := make([]list.Item, len(items))
	for i, item := range items {
		entries[i] = item
	}

	delegate := list.NewDefaultDelegate()
	delegate.SetHeight(2)
	delegate.SetSpacing(0)

	l := list.New(entries, delegate, 72, pickerHeight(len(items)))
	l.Title = title
	l.SetShowStatusBar(false)
	l.SetFilteringEnabled(true)
	l.Styles.Title = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("#6BCB77"))

	return model{list: l}
}

func pickerHeight(n int) int {
	h := n*2 + 6
	if h > 20 {
		h = 20
	}
	return h
}

func (m model) Init() tea.Cmd { return nil }

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		width := msg.Width - 4
		if width < 40 {
			width = msg.Width
		}
		m.list.SetSize(width, pickerHeight(len(m.list.Items())))
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			return m, tea.Quit
		case "enter":
			if item, ok := m.list.SelectedItem().(Item); ok {
				m.selected = item
				m.chosen = true
			}
			return m, tea.Quit
		}
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m model) View() string { return m.list.View() }

// Pick presents items and blocks until the user chooses one or cancels.
// The second return is false when the picker was dismissed without a choice.
func Pick(title string, items []Item) (Item, bool, error) {
	final, err := tea.NewProgram(newModel(title, items)).Run()
	if err != nil {
		return Item{}, false, err
	}
	m, ok := final.(model)
	if !ok || !m.chosen {
		return Item{}, false, nil
	}
	return m.selected, true, nil
}
