package prompt

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/trelliskit/cli/internal/output"
)

// SelectOption is one row of a single-choice menu.
type SelectOption struct {
	// Label is the text shown to the user.
	Label string
	// Value is the stable token reported when the row is chosen.
	Value string
	// Description is shown dimmed next to the cursor row.
	Description string
}

// Select shows a single-choice menu and returns the chosen option's value
// token.
func Select(label string, options []SelectOption) (string, error) {
	if !output.IsInputTTY() {
		return "", ErrNonInteractive
	}

	final, err := tea.NewProgram(newSelectModel(label, options)).Run()
	if err != nil {
		return "", fmt.Errorf("running menu: %w", err)
	}

	m := final.(selectModel)
	if m.cancelled {
		return "", ErrCancelled
	}
	return m.options[m.cursor].Value, nil
}

type selectModel struct {
	label     string
	options   []SelectOption
	cursor    int
	done      bool
	cancelled bool
}

func newSelectModel(label string, options []SelectOption) selectModel {
	return selectModel{label: label, options: options}
}

func (m selectModel) Init() tea.Cmd {
	return nil
}

func (m selectModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch key.String() {
	case "ctrl+c", "esc":
		m.cancelled = true
		return m, tea.Quit
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < len(m.options)-1 {
			m.cursor++
		}
	case "enter":
		m.done = true
		return m, tea.Quit
	}
	return m, nil
}

func (m selectModel) View() string {
	if m.done || m.cancelled {
		return ""
	}

	var b strings.Builder
	b.WriteString(output.StyleAction.Render("? "+m.label) + "\n")
	for i, opt := range m.options {
		if i == m.cursor {
			b.WriteString(output.StyleNoun.Render("  ❯ "+opt.Label))
			if opt.Description != "" {
				b.WriteString(output.StyleDim.Render("  " + opt.Description))
			}
		} else {
			b.WriteString("    " + opt.Label)
		}
		b.WriteString("\n")
	}
	b.WriteString(output.StyleDim.Render("  ↑/↓ move · enter select · esc cancel"))
	return b.String()
}
