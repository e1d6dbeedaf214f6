package git

import (
	"context"
	"fmt"
	"strings"
)

// FakeRunner is a scripted Runner implementation for testing. Responses are
// keyed by the space-joined argument list; interactive invocations are
// recorded so tests can assert on the final commit command.
type FakeRunner struct {
	Responses        map[string]string
	Errors           map[string]error
	InteractiveCalls [][]string
	InteractiveErr   error
}

// NewFakeRunner creates an empty FakeRunner
func NewFakeRunner() *FakeRunner {
	return &FakeRunner{
		Responses: make(map[string]string),
		Errors:    make(map[string]error),
	}
}

// Run implements Runner
func (f *FakeRunner) Run(ctx context.Context, args ...string) (string, error) {
	out, err := f.lookup(args)
	return strings.TrimSpace(out), err
}

// RunRaw implements Runner
func (f *FakeRunner) RunRaw(ctx context.Context, args ...string) (string, error) {
	return f.lookup(args)
}

// RunInteractive implements Runner
func (f *FakeRunner) RunInteractive(args ...string) error {
	f.InteractiveCalls = append(f.InteractiveCalls, args)
	return f.InteractiveErr
}

func (f *FakeRunner) lookup(args []string) (string, error) {
	key := strings.Join(args, " ")
	if err, ok := f.Errors[key]; ok {
		return "", err
	}
	if out, ok := f.Responses[key]; ok {
		return out, nil
	}
	return "", fmt.Errorf("fake runner: unscripted command %q", key)
}
