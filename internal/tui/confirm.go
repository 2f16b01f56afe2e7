package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// confirmModel asks a yes/no question about the content above it.
type confirmModel struct {
	title   string
	body    string
	answer  bool
	decided bool
}

func newConfirmModel(title, body string) confirmModel {
	return confirmModel{title: title, body: body}
}

func (m confirmModel) Init() tea.Cmd {
	return nil
}

// Update accepts on y or enter and declines on n, q, esc or ctrl+c.
func (m confirmModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, keys.yes, keys.enter):
		m.answer, m.decided = true, true
		return m, tea.Quit
	case key.Matches(keyMsg, keys.no, keys.esc, keys.quit):
		m.answer, m.decided = false, true
		return m, tea.Quit
	}
	return m, nil
}

func (m confirmModel) View() string {
	if m.decided {
		return ""
	}
	return overlayBoxStyle.Render(renderPage(m.title, m.body, "y/enter: proceed │ n/esc: cancel"))
}
