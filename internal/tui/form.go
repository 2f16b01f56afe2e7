// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// formField describes one input of a formModel.
type formField struct {
	label       string
	placeholder string
	value       string
	secret      bool
	charLimit   int
}

// formModel is a small multi-field form. Enter on the last field submits
// once validate accepts the values; esc or ctrl+c cancels.
type formModel struct {
	title    string
	labels   []string
	inputs   []textinput.Model
	focus    int
	validate func(values []string) string

	errMsg    string
	submitted bool
	cancelled bool
}

func newFormModel(title string, fields []formField, validate func([]string) string) formModel {
	m := formModel{title: title, validate: validate}

	for i, f := range fields {
		in := textinput.New()
		in.Placeholder = f.placeholder
		in.CharLimit = f.charLimit
		in.Width = 40
		in.SetValue(f.value)
		if f.secret {
			in.EchoMode = textinput.EchoPassword
			in.EchoCharacter = '*'
		}
		if i == 0 {
			in.Focus()
		}

		m.labels = append(m.labels, f.label)
		m.inputs = append(m.inputs, in)
	}

	// Start on the first empty field so a prefilled actor goes straight to
	// the password.
	for i, in := range m.inputs {
		if in.Value() == "" {
			m = m.focusOn(i)
			break
		}
	}

	return m
}

func (m formModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m formModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(keyMsg, keys.esc, keys.quit):
			m.cancelled = true
			return m, tea.Quit
		case key.Matches(keyMsg, keys.tab):
			return m.focusOn((m.focus + 1) % len(m.inputs)), nil
		case key.Matches(keyMsg, keys.backtab):
			return m.focusOn((m.focus + len(m.inputs) - 1) % len(m.inputs)), nil
		case key.Matches(keyMsg, keys.enter):
			if m.focus < len(m.inputs)-1 {
				return m.focusOn(m.focus + 1), nil
			}
			if m.validate != nil {
				if msg := m.validate(m.values()); msg != "" {
					m.errMsg = msg
					return m, nil
				}
			}
			m.submitted = true
			return m, tea.Quit
		}
	}

	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	return m, cmd
}

func (m formModel) View() string {
	if m.submitted || m.cancelled {
		return ""
	}

	width := 0
	for _, l := range m.labels {
		width = max(width, len(l))
	}

	var b strings.Builder
	for i, in := range m.inputs {
		b.WriteString(m.labels[i])
		b.WriteString(strings.Repeat(" ", width-len(m.labels[i])))
		b.WriteString(" │ ")
		b.WriteString(in.View())
		b.WriteString("\n")
	}
	if m.errMsg != "" {
		b.WriteString("\n")
		b.WriteString(errorStyle.Render(m.errMsg))
	}

	return renderPage(m.title, strings.TrimRight(b.String(), "\n"), "tab: next field │ enter: submit │ esc: cancel")
}

func (m formModel) focusOn(i int) formModel {
	m.inputs[m.focus].Blur()
	m.focus = i
	m.inputs[m.focus].Focus()
	return m
}

func (m formModel) values() []string {
	out := make([]string, len(m.inputs))
	for i, in := range m.inputs {
		out[i] = in.Value()
	}
	return out
}
