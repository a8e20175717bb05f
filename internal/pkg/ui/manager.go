// Package ui provides terminal output components for aicommit.
package ui

import (
	"fmt"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
)

// Spinner provides loading animation functionality.
type Spinner interface {
	Start()
	Stop()
	UpdateText(text string)
}

// Manager defines the interface for UI operations.
type Manager interface {
	ShowMessage(message string)
	ShowSpinner(text string) Spinner
	ShowError(err error)
	ShowWarning(message string)
	ShowSuccess(message string)
	PromptConfirm(message string) (bool, error)
}

// DefaultManager implements the Manager interface using charmbracelet libraries.
type DefaultManager struct {
	colorEnabled bool
	styles       *styles
}

// styles holds the lipgloss styles for UI rendering.
type styles struct {
	title      lipgloss.Style
	body       lipgloss.Style
	success    lipgloss.Style
	warning    lipgloss.Style
	errorStyle lipgloss.Style
	info       lipgloss.Style
}

// NewDefaultManager creates a new DefaultManager with the specified options.
func NewDefaultManager(colorEnabled bool) *DefaultManager {
	m := &DefaultManager{
		colorEnabled: colorEnabled,
	}
	m.initStyles()
	return m
}

// initStyles initializes the lipgloss styles.
func (m *DefaultManager) initStyles() {
	if !m.colorEnabled {
		m.styles = &styles{
			title:      lipgloss.NewStyle(),
			body:       lipgloss.NewStyle(),
			success:    lipgloss.NewStyle(),
			warning:    lipgloss.NewStyle(),
			errorStyle: lipgloss.NewStyle(),
			info:       lipgloss.NewStyle(),
		}
		return
	}

	m.styles = &styles{
		title: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("39")),
		body: lipgloss.NewStyle().
			Foreground(lipgloss.Color("252")),
		success: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("42")),
		warning: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("220")),
		errorStyle: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("196")),
		info: lipgloss.NewStyle().
			Foreground(lipgloss.Color("39")),
	}
}

// ShowMessage displays the generated commit message to the user.
func (m *DefaultManager) ShowMessage(message string) {
	fmt.Println()
	fmt.Println(m.styles.title.Render("Generated Commit Message"))
	fmt.Println(strings.Repeat("-", 50))
	fmt.Println(m.styles.body.Render(message))
	fmt.Println(strings.Repeat("-", 50))
	fmt.Println()
}

// ShowSpinner creates and returns a spinner for loading states.
func (m *DefaultManager) ShowSpinner(text string) Spinner {
	return newBubbleSpinner(text)
}

// ShowError displays an error message to the user.
func (m *DefaultManager) ShowError(err error) {
	if err == nil {
		return
	}
	fmt.Println(m.styles.errorStyle.Render("Error: " + err.Error()))
}

// ShowWarning displays a warning message to the user.
func (m *DefaultManager) ShowWarning(message string) {
	fmt.Println(m.styles.warning.Render("Warning: " + message))
}

// ShowSuccess displays a success message to the user.
func (m *DefaultManager) ShowSuccess(message string) {
	fmt.Println(m.styles.success.Render("[OK] " + message))
}

// PromptConfirm prompts the user for a yes/no confirmation.
func (m *DefaultManager) PromptConfirm(message string) (bool, error) {
	confirmed := false
	form := huh.NewForm(
		huh.NewGroup(
			huh.NewConfirm().
				Title(message).
				Affirmative("Yes").
				Negative("No").
				Value(&confirmed),
		),
	)

	if err := form.Run(); err != nil {
		return false, err
	}
	return confirmed, nil
}

// bubbleSpinner implements Spinner using Bubble Tea.
type bubbleSpinner struct {
	text    string
	program *tea.Program
	model   *spinnerModel
	mu      sync.Mutex
}

// spinnerModel is the Bubble Tea model for the spinner.
type spinnerModel struct {
	spinner  spinner.Model
	text     string
	quitting bool
}

// spinnerTextMsg is sent to update spinner text from outside.
type spinnerTextMsg struct {
	text string
}

// spinnerQuitMsg signals the spinner to quit.
type spinnerQuitMsg struct{}

func (m spinnerModel) Init() tea.Cmd {
	return m.spinner.Tick
}

func (m spinnerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case spinnerTextMsg:
		m.text = msg.text
		return m, nil
	case spinnerQuitMsg:
		m.quitting = true
		return m, tea.Quit
	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m spinnerModel) View() string {
	if m.quitting {
		return ""
	}
	return fmt.Sprintf("%s %s", m.spinner.View(), m.text)
}

func newBubbleSpinner(text string) *bubbleSpinner {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("205"))

	model := &spinnerModel{
		spinner: s,
		text:    text,
	}

	return &bubbleSpinner{
		text:  text,
		model: model,
	}
}

func (s *bubbleSpinner) Start() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.program = tea.NewProgram(s.model)
	go func() {
		_, _ = s.program.Run()
	}()
}

func (s *bubbleSpinner) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.program != nil {
		s.program.Send(spinnerQuitMsg{})
		time.Sleep(50 * time.Millisecond)
	}
}

func (s *bubbleSpinner) UpdateText(text string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.text = text
	if s.program != nil {
		s.program.Send(spinnerTextMsg{text: text})
	}
}

// NonInteractiveManager implements Manager for JSON/piped output. All
// diagnostics go to stderr so stdout stays clean, spinners are no-ops, and
// prompts are never shown.
type NonInteractiveManager struct{}

// NewNonInteractiveManager creates a new NonInteractiveManager.
func NewNonInteractiveManager() *NonInteractiveManager {
	return &NonInteractiveManager{}
}

// ShowMessage does nothing in non-interactive mode; the message is emitted
// through the JSON output path instead.
func (m *NonInteractiveManager) ShowMessage(message string) {}

// ShowSpinner returns a no-op spinner in non-interactive mode.
func (m *NonInteractiveManager) ShowSpinner(text string) Spinner {
	return &noopSpinner{}
}

// ShowError displays an error message on stderr.
func (m *NonInteractiveManager) ShowError(err error) {
	if err == nil {
		return
	}
	fmt.Fprintf(os.Stderr, "Error: %s\n", err.Error())
}

// ShowWarning displays a warning message on stderr.
func (m *NonInteractiveManager) ShowWarning(message string) {
	fmt.Fprintf(os.Stderr, "Warning: %s\n", message)
}

// ShowSuccess does nothing in non-interactive mode.
func (m *NonInteractiveManager) ShowSuccess(message string) {}

// PromptConfirm always declines in non-interactive mode: aicommit never
// changes the index without an explicit user answer.
func (m *NonInteractiveManager) PromptConfirm(message string) (bool, error) {
	return false, nil
}

// noopSpinner is a no-op implementation of Spinner.
type noopSpinner struct{}

func (s *noopSpinner) Start()            {}
func (s *noopSpinner) Stop()             {}
func (s *noopSpinner) UpdateText(string) {}
