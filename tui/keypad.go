package tui

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/vpcalc/vpcalc/calc"
	"github.com/vpcalc/vpcalc/icon"
	"github.com/vpcalc/vpcalc/style"
)

// keypad lists the keypad rows as laid out on screen. Enter spans two columns.
var keypad = [][]calc.Token{
	{calc.Enter, calc.ClearAll, calc.Backspace},
	{calc.Digit7, calc.Digit8, calc.Digit9, calc.Divide},
	{calc.Digit4, calc.Digit5, calc.Digit6, calc.Multiply},
	{calc.Digit1, calc.Digit2, calc.Digit3, calc.Subtract},
	{calc.Point, calc.Digit0, calc.ChangeSign, calc.Add},
}

const (
	keyWidth   = 5
	keyColumns = 4
)

var (
	keyStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(style.BorderColor).
			Width(keyWidth).
			Align(lipgloss.Center).
			Bold(true)

	pressedKeyStyle = keyStyle.
			BorderForeground(style.AccentColor).
			Foreground(style.AccentColor)

	// keypadWidth is the rendered width of a full keypad row.
	keypadWidth = keyColumns*keyStyle.GetHorizontalFrameSize() + keyColumns*keyWidth
)

// keyLabel returns the text printed on the key, using icons for operators.
func keyLabel(t calc.Token) string {
	switch t {
	case calc.Add:
		return icon.Get(icon.Add)
	case calc.Subtract:
		return icon.Get(icon.Subtract)
	case calc.Multiply:
		return icon.Get(icon.Multiply)
	case calc.Divide:
		return icon.Get(icon.Divide)
	case calc.Backspace:
		return icon.Get(icon.Backspace)
	default:
		return t.String()
	}
}

func (b *statefulBubble) renderKey(t calc.Token) string {
	s := keyStyle
	if pressed, ok := b.lastPressed.Get(); ok && pressed == t {
		s = pressedKeyStyle
	} else if !t.IsEntry() {
		s = s.Foreground(style.KeyLabelColor)
	}

	if t == calc.Enter {
		s = s.Width(2*keyWidth + keyStyle.GetHorizontalFrameSize())
	}

	return s.Render(keyLabel(t))
}

func (b *statefulBubble) renderKeypad() string {
	rows := make([]string, 0, len(keypad))
	for _, row := range keypad {
		keys := make([]string, 0, len(row))
		for _, t := range row {
			keys = append(keys, b.renderKey(t))
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, keys...))
	}

	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}
