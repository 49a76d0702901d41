package prompt

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/trelliskit/cli/internal/output"
)

// InputOptions configures a free-text prompt.
type InputOptions struct {
	// Label is shown above the input.
	Label string
	// Placeholder is shown inside the empty input.
	Placeholder string
	// Default pre-fills the input; the user can edit or accept it.
	Default string
	// Validate runs on enter. A non-nil result keeps the prompt open and
	// shows the message; typing clears it.
	Validate func(string) error
}

// Input shows a validated text prompt and returns the submitted value.
func Input(opts InputOptions) (string, error) {
	if !output.IsInputTTY() {
		return "", ErrNonInteractive
	}

	final, err := tea.NewProgram(newInputModel(opts)).Run()
	if err != nil {
		return "", fmt.Errorf("running prompt: %w", err)
	}

	m := final.(inputModel)
	if m.cancelled {
		return "", ErrCancelled
	}
	return m.value(), nil
}

type inputModel struct {
	opts      InputOptions
	input     textinput.Model
	errMsg    string
	done      bool
	cancelled bool
}

func newInputModel(opts InputOptions) inputModel {
	ti := textinput.New()
	ti.Placeholder = opts.Placeholder
	ti.CharLimit = 120
	ti.Cursor.Style = output.StyleNoun
	if opts.Default != "" {
		ti.SetValue(opts.Default)
		ti.CursorEnd()
	}
	ti.Focus()

	return inputModel{opts: opts, input: ti}
}

func (m inputModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m inputModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.String() {
		case "ctrl+c", "esc":
			m.cancelled = true
			return m, tea.Quit
		case "enter":
			if m.opts.Validate != nil {
				if err := m.opts.Validate(m.value()); err != nil {
					m.errMsg = errorMessage(err)
					return m, nil
				}
			}
			m.done = true
			return m, tea.Quit
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	m.errMsg = ""
	return m, cmd
}

func (m inputModel) View() string {
	if m.done || m.cancelled {
		return ""
	}

	var b strings.Builder
	b.WriteString(output.StyleAction.Render("? "+m.opts.Label) + "\n")
	b.WriteString("  " + m.input.View() + "\n")
	if m.errMsg != "" {
		b.WriteString("  " + output.GetStyles().Error.Render("✗ "+m.errMsg) + "\n")
	}
	b.WriteString(output.StyleDim.Render("  enter confirm · esc cancel"))
	return b.String()
}

func (m inputModel) value() string {
	return strings.TrimSpace(m.input.Value())
}
