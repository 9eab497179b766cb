package mini

import (
	"errors"
	"fmt"
	"strings"

	"github.com/samber/lo"
	"github.com/vpcalc/vpcalc/calc"
	"github.com/vpcalc/vpcalc/color"
	"github.com/vpcalc/vpcalc/icon"
	"github.com/vpcalc/vpcalc/style"
)

type state int

const (
	promptState state = iota + 1
	quitState
)

var quitWords = []string{"q", "quit", "exit"}

func (m *mini) handlePromptState() error {
	line, err := m.ask()
	if err != nil {
		return err
	}

	for _, label := range strings.Fields(line) {
		if lo.Contains(quitWords, strings.ToLower(label)) {
			m.setState(quitState)
			return nil
		}

		err := m.evaluator.HandleLabel(label)
		if err == nil {
			continue
		}

		if errors.Is(err, calc.ErrUnknownToken) {
			fmt.Fprintf(m.out, "%s unknown key %s, did you mean %s?\n",
				icon.Get(icon.Fail),
				style.Fg(color.Red)(label),
				style.Fg(color.Yellow)(calc.Suggest(label)),
			)
			break
		}

		fmt.Fprintf(m.out, "%s %s\n", icon.Get(icon.Fail), style.Fg(color.Red)(err.Error()))
	}

	m.printStack()
	return nil
}

func (m *mini) printStack() {
	contents := m.evaluator.Contents()

	fmt.Fprintln(m.out, style.Title("Stack:"))
	for i, v := range contents {
		fmt.Fprintf(m.out, "%s %s\n", style.Faint(fmt.Sprintf("%2d", i)), calc.Format(v, m.precision))
	}

	if text := m.evaluator.Display().Text(); text != "" {
		fmt.Fprintf(m.out, "%s %s\n", style.Fg(color.Purple)(">"), text)
	}
}
