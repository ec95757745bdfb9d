package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

var (
	titleStyle    = lipgloss.NewStyle().Bold(true)
	errStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
	selectedStyle = lipgloss.NewStyle().Bold(true).Underline(true)
)

// --- inputModel: bubbletea model for text input with validation ---

type inputModel struct {
	textInput textinput.Model
	title     string
	fallback  string
	validate  func(string) error
	errMsg    string
	done      bool
	aborted   bool
}

func (m inputModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m inputModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch msg.String() {
		case "ctrl+c", "esc":
			m.aborted = true
			return m, tea.Quit
		case "enter":
			if m.validate != nil {
				if err := m.validate(m.value()); err != nil {
					m.errMsg = err.Error()
					return m, nil
				}
			}
			m.done = true
			return m, tea.Quit
		}
	}
	m.errMsg = ""
	var cmd tea.Cmd
	m.textInput, cmd = m.textInput.Update(msg)
	return m, cmd
}

func (m inputModel) View() string {
	if m.done {
		return ""
	}
	var b strings.Builder
	b.WriteString(titleStyle.Render(m.title) + "\n")
	b.WriteString(m.textInput.View() + "\n")
	if m.errMsg != "" {
		b.WriteString(errStyle.Render(m.errMsg) + "\n")
	}
	return b.String()
}

// value returns the trimmed input, or the fallback when nothing was typed.
func (m inputModel) value() string {
	v := strings.TrimSpace(m.textInput.Value())
	if v == "" {
		return m.fallback
	}
	return v
}

// --- confirmModel: bubbletea model for yes/no confirmation ---

type confirmModel struct {
	title   string
	value   bool
	done    bool
	aborted bool
}

func (m confirmModel) Init() tea.Cmd {
	return nil
}

func (m confirmModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch msg.String() {
		case "ctrl+c", "esc":
			m.aborted = true
			return m, tea.Quit
		case "enter":
			m.done = true
			return m, tea.Quit
		case "y", "Y":
			m.value = true
			m.done = true
			return m, tea.Quit
		case "n", "N":
			m.value = false
			m.done = true
			return m, tea.Quit
		case "left", "right", "tab", "h", "l":
			m.value = !m.value
		}
	}
	return m, nil
}

func (m confirmModel) View() string {
	if m.done {
		return ""
	}
	yes := " Yes "
	no := " No "
	if m.value {
		yes = selectedStyle.Render(" Yes ")
	} else {
		no = selectedStyle.Render(" No ")
	}
	return fmt.Sprintf("%s %s / %s\n", titleStyle.Render(m.title), yes, no)
}

// --- prompt helpers ---

// promptInput asks for a single value. An empty answer selects fallback,
// which is also shown as the placeholder.
func promptInput(title, fallback string, validate func(string) error) (string, error) {
	ti := textinput.New()
	ti.Placeholder = fallback
	ti.Focus()

	m := inputModel{
		textInput: ti,
		title:     title,
		fallback:  fallback,
		validate:  validate,
	}

	result, err := tea.NewProgram(m).Run()
	if err != nil {
		return "", err
	}
	rm := result.(inputModel)
	if rm.aborted {
		return "", fmt.Errorf("user aborted")
	}
	return rm.value(), nil
}

func promptConfirm(title string) (bool, error) {
	m := confirmModel{
		title: title,
	}

	result, err := tea.NewProgram(m).Run()
	if err != nil {
		return false, err
	}
	rm := result.(confirmModel)
	if rm.aborted {
		return false, fmt.Errorf("user aborted")
	}
	return rm.value, nil
}

// requireVersion validates an expected version answer.
func requireVersion(s string) error {
	if strings.TrimSpace(s) == "" {
		return fmt.Errorf("version is required")
	}
	if strings.ContainsAny(s, " \t") {
		return fmt.Errorf("version must not contain whitespace")
	}
	return nil
}
