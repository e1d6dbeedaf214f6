package cli

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestShouldPassthrough(t *testing.T) {
	tests := []struct {
		name        string
		args        []string
		passthrough bool
	}{
		{"no arguments", []string{"lit"}, false},
		{"commit is routed", []string{"lit", "commit", "-m", "msg"}, false},
		{"help subcommand is routed", []string{"lit", "help"}, false},
		{"help flag is routed", []string{"lit", "--help"}, false},
		{"short help flag is routed", []string{"lit", "-h"}, false},
		{"completion is routed", []string{"lit", "completion", "bash"}, false},
		{"version flag is routed", []string{"lit", "--version"}, false},
		{"status passes through", []string{"lit", "status"}, true},
		{"push passes through", []string{"lit", "push", "origin", "main"}, true},
		{"log passes through", []string{"lit", "log", "--oneline"}, true},
		{"unknown subcommand passes through", []string{"lit", "frobnicate"}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.passthrough, ShouldPassthrough(tt.args))
		})
	}
}
