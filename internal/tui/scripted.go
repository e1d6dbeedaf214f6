package tui

import (
	"lit.dev/lit/internal/lingo"
)

// ScriptedPrompter is a Prompter for tests: it answers with pre-set values
// instead of reading the terminal.
type ScriptedPrompter struct {
	Action    Action
	ActionErr error

	EditTitle string
	EditBody  string
	EditErr   error

	// EditInterrupt simulates ctrl-c during the edit prompts: the edit is
	// discarded and the original commit returned, as in the interactive
	// prompter.
	EditInterrupt bool

	ChooseCalls int
	EditCalls   int
}

// ChooseAction implements Prompter
func (p *ScriptedPrompter) ChooseAction() (Action, error) {
	p.ChooseCalls++
	return p.Action, p.ActionErr
}

// EditCommit implements Prompter, applying the same empty-answer rule as the
// interactive prompter.
func (p *ScriptedPrompter) EditCommit(commit lingo.ConventionalCommit) (lingo.ConventionalCommit, error) {
	p.EditCalls++
	if p.EditInterrupt {
		return commit, nil
	}
	if p.EditErr != nil {
		return commit, p.EditErr
	}
	if p.EditTitle == "" || p.EditBody == "" {
		return commit, nil
	}
	return lingo.ConventionalCommit{Type: commit.Type, Title: p.EditTitle, Body: p.EditBody}, nil
}
