package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/samber/mo"
	"github.com/vpcalc/vpcalc/calc"
)

// statefulKeymap defines the keyboard interactions available in each state.
type statefulKeymap struct {
	state state

	quit, forceQuit,
	back,
	scrollUp, scrollDown,
	showHelp key.Binding

	// tokens maps keypad tokens to the keys pressing them.
	tokens map[calc.Token]key.Binding
}

func (k *statefulKeymap) setState(newState state) {
	k.state = newState
}

func newStatefulKeymap() *statefulKeymap {
	tokens := make(map[calc.Token]key.Binding)
	for _, t := range calc.Tokens() {
		if t.IsEntry() || t.IsOperator() {
			tokens[t] = key.NewBinding(
				key.WithKeys(t.String()),
				key.WithHelp(t.String(), t.String()),
			)
		}
	}

	tokens[calc.Enter] = key.NewBinding(
		key.WithKeys("enter", "="),
		key.WithHelp("enter", "push"),
	)
	tokens[calc.Backspace] = key.NewBinding(
		key.WithKeys("backspace"),
		key.WithHelp("backspace", "delete digit"),
	)
	tokens[calc.ChangeSign] = key.NewBinding(
		key.WithKeys("n", "_"),
		key.WithHelp("n", "change sign"),
	)
	tokens[calc.ClearAll] = key.NewBinding(
		key.WithKeys("c", "delete"),
		key.WithHelp("c", "clear all"),
	)

	return &statefulKeymap{
		tokens: tokens,
		quit: key.NewBinding(
			key.WithKeys("q", "esc"),
			key.WithHelp("q", "quit"),
		),
		forceQuit: key.NewBinding(
			key.WithKeys("ctrl+c", "ctrl+d"),
			key.WithHelp("ctrl+c", "quit"),
		),
		back: key.NewBinding(
			key.WithKeys("esc", "enter"),
			key.WithHelp("esc", "back"),
		),
		scrollUp: key.NewBinding(
			key.WithKeys("pgup", "up"),
			key.WithHelp("pgup", "scroll stack up"),
		),
		scrollDown: key.NewBinding(
			key.WithKeys("pgdown", "down"),
			key.WithHelp("pgdown", "scroll stack down"),
		),
		showHelp: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
	}
}

// token returns the keypad token bound to msg, if any.
func (k *statefulKeymap) token(msg tea.KeyMsg) mo.Option[calc.Token] {
	for t, binding := range k.tokens {
		if key.Matches(msg, binding) {
			return mo.Some(t)
		}
	}
	return mo.None[calc.Token]()
}

func (k *statefulKeymap) help() ([]key.Binding, []key.Binding) {
	h := func(bindings ...key.Binding) []key.Binding {
		return bindings
	}

	to2 := func(a []key.Binding) ([]key.Binding, []key.Binding) {
		return a, a
	}

	switch k.state {
	case calculatorState:
		return h(
				k.tokens[calc.Enter],
				k.tokens[calc.ChangeSign],
				k.tokens[calc.ClearAll],
				k.showHelp,
				k.quit,
			), h(
				k.tokens[calc.Enter],
				k.tokens[calc.Backspace],
				k.tokens[calc.ChangeSign],
				k.tokens[calc.ClearAll],
				k.scrollUp,
				k.scrollDown,
				k.showHelp,
				k.quit,
			)
	case errorState:
		return to2(h(k.back, k.forceQuit))
	default:
		return to2(h())
	}
}

func (k *statefulKeymap) ShortHelp() []key.Binding {
	short, _ := k.help()
	return short
}

func (k *statefulKeymap) FullHelp() [][]key.Binding {
	_, full := k.help()
	return [][]key.Binding{full}
}
