package tui

import (
	"errors"
	"fmt"
	"os"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
)

// ErrInterrupted is returned by Spin when the user cancels the wait
var ErrInterrupted = errors.New("interrupted")

// doneMsg is sent when the wrapped function completes
type doneMsg struct {
	err error
}

type spinModel struct {
	spinner  spinner.Model
	message  string
	err      error
	quitting bool
}

func newSpinModel(message string, fn func() error) (spinModel, tea.Cmd) {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("6"))

	work := func() tea.Msg {
		return doneMsg{err: fn()}
	}

	return spinModel{spinner: s, message: message}, work
}

func (m spinModel) Init() tea.Cmd {
	return m.spinner.Tick
}

func (m spinModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			m.quitting = true
			m.err = ErrInterrupted
			return m, tea.Quit
		}
		return m, nil

	case doneMsg:
		m.err = msg.err
		m.quitting = true
		return m, tea.Quit

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m spinModel) View() string {
	if m.quitting {
		return ""
	}
	return fmt.Sprintf("%s %s", m.spinner.View(), m.message)
}

// Spin runs fn while showing a spinner with the given message. In a non-TTY
// environment the message is printed once and fn runs directly. Returns
// ErrInterrupted when the user cancels the wait with ctrl-c; otherwise
// returns fn's error.
func Spin(message string, fn func() error) error {
	if !isTerminal() {
		fmt.Fprintln(os.Stderr, message)
		return fn()
	}

	model, work := newSpinModel(message, fn)
	p := tea.NewProgram(model, tea.WithOutput(os.Stderr))
	go func() {
		p.Send(work())
	}()

	final, err := p.Run()
	if err != nil {
		return err
	}
	if m, ok := final.(spinModel); ok {
		return m.err
	}
	return nil
}

func isTerminal() bool {
	return (isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())) &&
		(isatty.IsTerminal(os.Stdout.Fd()) || isatty.IsCygwinTerminal(os.Stdout.Fd()))
}
