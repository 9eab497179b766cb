// Package inline evaluates a list of keypad labels without user interaction.
package inline

import (
	"errors"
	"fmt"
	"os"

	"github.com/vpcalc/vpcalc/calc"
	"github.com/vpcalc/vpcalc/log"
)

// Run feeds every label to a fresh evaluator and writes the outcome to options.Out.
// Unless KeepGoing is set it stops at the first failed label and returns its error
// after writing the partial result.
func Run(options *Options) error {
	if options.Out == nil {
		options.Out = os.Stdout
	}

	var (
		evaluator = calc.New(&calc.Buffer{}, calc.WithPrecision(options.Precision))
		tokens    = options.tokens()
		output    = &Output{Tokens: tokens}
		failure   error
	)

	for _, label := range tokens {
		err := evaluator.HandleLabel(label)
		if err == nil {
			continue
		}

		if errors.Is(err, calc.ErrUnknownToken) {
			err = fmt.Errorf("%w, did you mean %q?", err, calc.Suggest(label))
		}

		log.Warnf("eval %q: %v", label, err)
		if failure == nil {
			failure = err
			output.Error = err.Error()
		}

		if !options.KeepGoing {
			break
		}
	}

	output.Stack = evaluator.Contents()
	output.Display = evaluator.Display().Text()

	if options.Json {
		if err := writeJson(options.Out, output); err != nil {
			return err
		}
	} else if err := writeText(options, output); err != nil {
		return err
	}

	if options.KeepGoing {
		return nil
	}
	return failure
}

func writeText(options *Options, output *Output) error {
	for _, v := range output.Stack {
		if _, err := fmt.Fprintln(options.Out, calc.Format(v, options.Precision)); err != nil {
			return err
		}
	}
	return nil
}
