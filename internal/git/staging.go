package git

import (
	"context"
	"fmt"
	"strings"
)

// StagedFiles returns the list of file paths staged for the next commit.
// An empty slice means nothing is staged.
func StagedFiles(ctx context.Context, r Runner) ([]string, error) {
	output, err := r.Run(ctx, "diff", "--cached", "--name-only")
	if err != nil {
		return nil, fmt.Errorf("failed to get staged files: %w", err)
	}
	if output == "" {
		return []string{}, nil
	}
	files := make([]string, 0)
	for _, line := range strings.Split(output, "\n") {
		if line != "" {
			files = append(files, line)
		}
	}
	return files, nil
}

// StagedDiff returns the unified diff of staged changes. The diff may be
// empty even when files are staged (e.g. binary-only changes); callers treat
// that as a warning, not an error.
func StagedDiff(ctx context.Context, r Runner) (string, error) {
	output, err := r.RunRaw(ctx, "diff", "--cached")
	if err != nil {
		return "", fmt.Errorf("failed to get staged diff: %w", err)
	}
	return output, nil
}
