// Package tui implements the interactive search and detail screens on top
// of Bubble Tea. The view model owns the UI state; the model renders it.
package tui

import (
	"context"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/term"
)

// Run starts the interactive UI and blocks until it completes. The context
// bounds every fetch launched from the UI; cancelling it tears down any
// in-flight request when the program exits.
func Run(ctx context.Context, vm *ViewModel) error {
	p := tea.NewProgram(NewModel(ctx, vm), tea.WithAltScreen())
	_, err := p.Run()
	return err
}

// ShouldUseTUI returns true if the interactive UI should be used based on
// the environment.
func ShouldUseTUI() bool {
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		return false
	}

	ciVars := []string{
		"CI",
		"GITHUB_ACTIONS",
		"JENKINS_URL",
		"TRAVIS",
		"CIRCLECI",
		"GITLAB_CI",
		"BUILDKITE",
	}
	for _, v := range ciVars {
		if os.Getenv(v) != "" {
			return false
		}
	}

	return true
}
