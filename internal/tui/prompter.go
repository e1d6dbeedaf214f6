// Package tui provides the interactive terminal boundary for lit:
// confirmation/edit prompts (survey) and a wait spinner (bubbletea).
package tui

import (
	"errors"

	"github.com/AlecAivazis/survey/v2"
	"github.com/AlecAivazis/survey/v2/terminal"

	"lit.dev/lit/internal/lingo"
)

// Action is the user's choice at the commit confirmation prompt
type Action int

const (
	// ActionAccept commits with the generated message as-is
	ActionAccept Action = iota
	// ActionEdit lets the user replace the title and body before committing
	ActionEdit
	// ActionCancel aborts without committing
	ActionCancel
)

// Prompter is the capability interface for interactive prompts, so the
// commit flow can be driven headlessly in tests with scripted responses.
type Prompter interface {
	// ChooseAction asks whether to accept, edit, or cancel the commit.
	// A user interrupt is reported as ActionCancel, not an error.
	ChooseAction() (Action, error)

	// EditCommit collects a replacement title and body. If either is left
	// empty the edit is discarded and the original commit returned.
	EditCommit(commit lingo.ConventionalCommit) (lingo.ConventionalCommit, error)
}

// SurveyPrompter implements Prompter with survey prompts on the terminal
type SurveyPrompter struct{}

// NewSurveyPrompter creates a SurveyPrompter
func NewSurveyPrompter() *SurveyPrompter {
	return &SurveyPrompter{}
}

const (
	choiceAccept = "Accept"
	choiceEdit   = "Edit manually"
	choiceCancel = "Cancel"
)

// ChooseAction implements Prompter
func (p *SurveyPrompter) ChooseAction() (Action, error) {
	var choice string
	prompt := &survey.Select{
		Message: "Commit with this message?",
		Options: []string{choiceAccept, choiceEdit, choiceCancel},
	}
	if err := survey.AskOne(prompt, &choice); err != nil {
		if errors.Is(err, terminal.InterruptErr) {
			return ActionCancel, nil
		}
		return ActionCancel, err
	}

	switch choice {
	case choiceAccept:
		return ActionAccept, nil
	case choiceEdit:
		return ActionEdit, nil
	default:
		return ActionCancel, nil
	}
}

// EditCommit implements Prompter
func (p *SurveyPrompter) EditCommit(commit lingo.ConventionalCommit) (lingo.ConventionalCommit, error) {
	var title string
	titlePrompt := &survey.Input{
		Message: "Edit title:",
		Default: commit.Title,
	}
	if err := survey.AskOne(titlePrompt, &title); err != nil {
		if errors.Is(err, terminal.InterruptErr) {
			return commit, nil
		}
		return commit, err
	}

	var body string
	bodyPrompt := &survey.Multiline{
		Message: "Edit body:",
		Default: commit.Body,
	}
	if err := survey.AskOne(bodyPrompt, &body); err != nil {
		if errors.Is(err, terminal.InterruptErr) {
			return commit, nil
		}
		return commit, err
	}

	if title == "" || body == "" {
		// An empty answer discards the whole edit.
		return commit, nil
	}

	return lingo.ConventionalCommit{Type: commit.Type, Title: title, Body: body}, nil
}
