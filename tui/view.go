package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/wrap"
	"github.com/vpcalc/vpcalc/calc"
	"github.com/vpcalc/vpcalc/icon"
	"github.com/vpcalc/vpcalc/style"
	"github.com/vpcalc/vpcalc/util"
)

var (
	paddingStyle = lipgloss.NewStyle().Padding(1, 2)

	panelStyle = lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			BorderForeground(style.BorderColor).
			Padding(0, 1)

	stackItemStyle = lipgloss.NewStyle().
			Foreground(style.Base).
			Background(style.StackItemColor).
			Padding(0, 1)

	displayStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(style.AccentColor).
			Align(lipgloss.Right).
			Bold(true)
)

func (b *statefulBubble) View() string {
	var output string

	switch b.state {
	case calculatorState:
		output = b.viewCalculator()
	case errorState:
		output = b.viewError()
	default:
		output = "Unknown state"
	}

	return b.notifier.View(output)
}

func (b *statefulBubble) viewCalculator() string {
	stack := panelStyle.Render(
		lipgloss.JoinVertical(lipgloss.Left, style.Bold("Stack:"), b.stackC.View()),
	)

	right := []string{b.viewDisplay()}
	if b.showKeypad {
		right = append(right, b.renderKeypad())
	}

	body := lipgloss.JoinHorizontal(
		lipgloss.Top,
		stack,
		" ",
		lipgloss.JoinVertical(lipgloss.Left, right...),
	)

	return paddingStyle.Render(body + "\n" + b.helpC.View(b.keymap))
}

func (b *statefulBubble) viewDisplay() string {
	text := b.display.Text()
	if text == calc.ErrorText {
		text = style.Fg(style.ErrorColor)(text)
	}

	return displayStyle.
		Width(keypadWidth - displayStyle.GetHorizontalFrameSize()).
		Render(text)
}

// renderStack lays out the stack rows, top first.
func (b *statefulBubble) renderStack(contents []float64) string {
	if len(contents) == 0 {
		return style.Faint("empty")
	}

	rowStyle := stackItemStyle.Width(b.stackWidth).MaxWidth(b.stackWidth)
	rows := make([]string, 0, len(contents))
	for i, v := range contents {
		text := calc.Format(v, b.options.Precision)
		if b.showIndices {
			text = fmt.Sprintf("%d: %s", i, text)
		}
		rows = append(rows, rowStyle.Render(text))
	}

	return strings.Join(rows, "\n")
}

func (b *statefulBubble) viewError() string {
	errorStyle := lipgloss.NewStyle().Foreground(style.ErrorColor).Bold(true)
	errorBody := errorStyle.Render(b.lastError.Error())

	lines := []string{
		style.ErrorTitle("Error"),
		"",
		icon.Get(icon.Fail) + " An error occurred:",
		"",
		wrap.String(errorBody, util.Max(b.width, 20)),
		"",
		b.helpC.View(b.keymap),
	}

	return paddingStyle.Render(strings.Join(lines, "\n"))
}
