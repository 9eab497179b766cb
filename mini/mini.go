// Package mini implements a line-oriented prompt for the calculator.
package mini

import (
	"errors"
	"io"
	"os"

	"github.com/AlecAivazis/survey/v2"
	"github.com/AlecAivazis/survey/v2/terminal"
	"github.com/spf13/viper"
	"github.com/vpcalc/vpcalc/calc"
	"github.com/vpcalc/vpcalc/key"
	"github.com/vpcalc/vpcalc/log"
	"github.com/vpcalc/vpcalc/session"
)

type Options struct {
	Out io.Writer
	// Ask reads one line of input. Defaults to a survey prompt.
	Ask func() (string, error)
}

type mini struct {
	state state
	out   io.Writer
	ask   func() (string, error)

	evaluator *calc.Evaluator
	precision int
}

func newMini(options *Options) *mini {
	m := &mini{
		state:     promptState,
		out:       options.Out,
		ask:       options.Ask,
		precision: viper.GetInt(key.CalcPrecision),
	}

	if m.out == nil {
		m.out = os.Stdout
	}
	if m.ask == nil {
		m.ask = prompt
	}

	m.evaluator = calc.New(&calc.Buffer{}, calc.WithPrecision(m.precision))
	return m
}

func prompt() (string, error) {
	var line string
	err := survey.AskOne(&survey.Input{
		Message: "rpn",
		Help:    "Keypad labels separated by spaces: 0-9 . + - * / CHS CLx BS Enter. Type quit to leave.",
	}, &line)
	return line, err
}

func (m *mini) setState(s state) {
	m.state = s
}

// Run loops over prompt lines until the user quits. The stack is restored
// and saved according to the session settings.
func Run(options *Options) error {
	m := newMini(options)

	if viper.GetBool(key.SessionRestore) {
		contents, err := session.Load()
		if err != nil {
			log.Warnf("restore session: %v", err)
		} else {
			m.evaluator.Load(contents)
		}
	}

	m.printStack()

	for m.state != quitState {
		if err := m.handleState(); err != nil {
			return err
		}
	}

	if viper.GetBool(key.SessionSave) {
		return session.Save(m.evaluator.Contents())
	}
	return nil
}

func (m *mini) handleState() error {
	switch m.state {
	case promptState:
		err := m.handlePromptState()
		if errors.Is(err, terminal.InterruptErr) || errors.Is(err, io.EOF) {
			m.setState(quitState)
			return nil
		}
		return err
	default:
		return nil
	}
}
