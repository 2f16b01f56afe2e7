// Package tui renders wlctl output with lipgloss and runs its interactive
// prompts as Bubble Tea programs.
package tui

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/MKhiriev/go-whitelist-keeper/models"
	tea "github.com/charmbracelet/bubbletea"
)

// TUI runs prompts on the given terminal streams.
type TUI struct {
	in  io.Reader
	out io.Writer
}

func New(in io.Reader, out io.Writer) *TUI {
	return &TUI{in: in, out: out}
}

func (t *TUI) run(model tea.Model) (tea.Model, error) {
	return tea.NewProgram(model, tea.WithInput(t.in), tea.WithOutput(t.out)).Run()
}

// Confirm shows body under title and asks whether to proceed.
func (t *TUI) Confirm(title, body string) (bool, error) {
	final, err := t.run(newConfirmModel(title, body))
	if err != nil {
		return false, err
	}

	result, ok := final.(confirmModel)
	if !ok {
		return false, tea.ErrProgramKilled
	}
	return result.answer, nil
}

// Credentials asks for the operator name and the admin password. actor
// prefills the first field.
func (t *TUI) Credentials(actor string) (models.TokenRequest, error) {
	form := newFormModel("Login", []formField{
		{label: "actor", placeholder: "operator name", value: actor, charLimit: 64},
		{label: "password", placeholder: "admin password", secret: true, charLimit: 256},
	}, func(v []string) string {
		if strings.TrimSpace(v[0]) == "" || v[1] == "" {
			return "actor and password are required"
		}
		return ""
	})

	values, err := t.runForm(form)
	if err != nil {
		return models.TokenRequest{}, err
	}
	return models.TokenRequest{Actor: strings.TrimSpace(values[0]), Password: values[1]}, nil
}

// NewPassword asks for a password twice.
func (t *TUI) NewPassword() (string, error) {
	form := newFormModel("Admin password", []formField{
		{label: "password", secret: true, charLimit: 72},
		{label: "repeat", secret: true, charLimit: 72},
	}, func(v []string) string {
		switch {
		case v[0] == "":
			return "password is required"
		case v[0] != v[1]:
			return "passwords do not match"
		}
		return ""
	})

	values, err := t.runForm(form)
	if err != nil {
		return "", err
	}
	return values[0], nil
}

func (t *TUI) runForm(form formModel) ([]string, error) {
	final, err := t.run(form)
	if err != nil {
		return nil, err
	}

	result, ok := final.(formModel)
	if !ok {
		return nil, tea.ErrProgramKilled
	}
	if result.cancelled || !result.submitted {
		return nil, ErrUserQuit
	}
	return result.values(), nil
}

// Spin runs work while showing label. ctrl+c cancels ctx and returns
// ErrUserQuit.
func (t *TUI) Spin(ctx context.Context, label string, work func(ctx context.Context) error) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	final, err := t.run(newSpinnerModel(label, func() error { return work(ctx) }))
	if err != nil {
		return fmt.Errorf("spinner: %w", err)
	}

	result, ok := final.(spinnerModel)
	if !ok {
		return tea.ErrProgramKilled
	}
	if result.cancelled {
		return ErrUserQuit
	}
	return result.err
}
