package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/samber/mo"
	"github.com/vpcalc/vpcalc/calc"
	"github.com/vpcalc/vpcalc/internal/ui"
	"github.com/vpcalc/vpcalc/log"
	"github.com/vpcalc/vpcalc/session"
	"github.com/vpcalc/vpcalc/util"
)

func (b *statefulBubble) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if cmd := b.notifier.Update(msg); cmd != nil {
		return b, cmd
	}

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		b.resize(msg.Width, msg.Height)
		return b, nil
	case tea.KeyMsg:
		if key.Matches(msg, b.keymap.forceQuit) {
			return b, tea.Quit
		}
	}

	switch b.state {
	case calculatorState:
		return b.updateCalculator(msg)
	case errorState:
		return b.updateError(msg)
	}

	return b, nil
}

func (b *statefulBubble) updateCalculator(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, b.keymap.quit):
			return b, b.quit()
		case key.Matches(msg, b.keymap.showHelp):
			b.helpC.ShowAll = !b.helpC.ShowAll
			return b, nil
		case key.Matches(msg, b.keymap.scrollUp, b.keymap.scrollDown):
			b.stackC, cmd = b.stackC.Update(msg)
			return b, cmd
		}

		if t, ok := b.keymap.token(msg).Get(); ok {
			return b, b.press(t)
		}
	case tea.MouseMsg:
		b.stackC, cmd = b.stackC.Update(msg)
	}

	return b, cmd
}

func (b *statefulBubble) updateError(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok && key.Matches(msg, b.keymap.back) {
		b.lastError = nil
		b.previousState()
	}

	return b, nil
}

// press feeds t to the evaluator and turns a failure into a notification.
func (b *statefulBubble) press(t calc.Token) tea.Cmd {
	b.lastPressed = mo.Some(t)

	if err := b.evaluator.Handle(t); err != nil {
		return ui.Notify(util.Capitalize(err.Error()))
	}
	return nil
}

// quit saves the session when enabled. A failed save is shown instead of quitting.
func (b *statefulBubble) quit() tea.Cmd {
	if b.options.Save {
		if err := session.Save(b.evaluator.Contents()); err != nil {
			log.Error(err)
			b.raiseError(err)
			return nil
		}
	}

	return tea.Quit
}
