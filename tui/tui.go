// Package tui provides the full-screen calculator.
package tui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/vpcalc/vpcalc/session"
)

// Options encapsulates the runtime configuration for the terminal user interface.
type Options struct {
	Precision int
	// Restore loads the stack saved by the previous run.
	Restore bool
	// Save stores the stack when the user quits.
	Save bool
}

// Run initializes and executes the calculator's Bubble Tea loop.
func Run(options *Options) error {
	bubble := newBubble(options)

	if options.Restore {
		contents, err := session.Load()
		if err != nil {
			bubble.raiseError(err)
		} else {
			bubble.evaluator.Load(contents)
		}
	}

	_, err := tea.NewProgram(bubble, tea.WithAltScreen(), tea.WithMouseCellMotion()).Run()
	return err
}
