package lingo

import (
	"context"

	"lit.dev/lit/internal/config"
	"lit.dev/lit/internal/output"
)

// instruction is embedded in the engine payload alongside the raw message
// and diff. It asks the engine to return only the commit JSON.
const instruction = `Detect the source language. It may be a mixed colloquial language like Hinglish (Hindi + English). Translate the intent to standard English. Analyze the provided git diff. Generate a Conventional Commit in JSON format:

{
  "type": one of [feat, fix, refactor, docs, chore, test, perf],
  "title": short description under 72 characters,
  "body": concise explanation of what changed and why
}

Return ONLY valid JSON, no additional text.`

// Generator produces Conventional Commits from a raw message and staged
// diff. Engine failures of any kind degrade to heuristic generation, so
// Generate always returns a usable commit.
type Generator struct {
	client Client
	splog  *output.Splog
}

// NewGenerator creates a Generator that resolves its engine client from the
// environment on first use.
func NewGenerator(splog *output.Splog) *Generator {
	return &Generator{splog: splog}
}

// NewGeneratorWithClient creates a Generator using the given client.
func NewGeneratorWithClient(client Client, splog *output.Splog) *Generator {
	return &Generator{client: client, splog: splog}
}

// Generate returns a Conventional Commit for the message and diff. The
// engine result is used when it parses and validates; otherwise a one-line
// warning is emitted and the heuristic fallback result is returned.
func (g *Generator) Generate(ctx context.Context, rawMessage, diff string) ConventionalCommit {
	commit, err := g.translate(ctx, rawMessage, diff)
	if err != nil {
		g.splog.Warn("Translation failed: %v", err)
		g.splog.Info("Using heuristic generation as fallback...")
		return Fallback(rawMessage, diff)
	}
	if commit == nil {
		g.splog.Warn("Failed to parse engine response. Using fallback.")
		return Fallback(rawMessage, diff)
	}
	return *commit
}

// translate performs the single engine call. It returns (nil, nil) only
// when the response could not be parsed into a valid commit.
func (g *Generator) translate(ctx context.Context, rawMessage, diff string) (*ConventionalCommit, error) {
	client := g.client
	if client == nil {
		c, err := NewEngineClient(config.APIKey(), config.EngineURL())
		if err != nil {
			return nil, err
		}
		client = c
	}

	response, err := client.Localize(ctx, map[string]string{
		"instruction": instruction,
		"raw_message": rawMessage,
		"diff":        diff,
	})
	if err != nil {
		return nil, err
	}

	return ParseResponse(response), nil
}
