// Package calc implements postfix (RPN) evaluation over a stack of float64 values.
//
// An Evaluator consumes keypad tokens one at a time. Digits and the decimal
// point build a pending entry; Enter commits it to the stack; operators pop
// their operands and push the result. Every failure is recovered locally: the
// display shows ErrorText and the stack is left as it was before the token.
package calc

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/sirupsen/logrus"
	"github.com/vpcalc/vpcalc/log"
	"github.com/vpcalc/vpcalc/util"
)

// ErrorText is shown on the display after a failed operation.
const ErrorText = "Error"

// Evaluator holds the calculator state: operand stack, pending entry and
// whether the next digit starts a fresh entry.
type Evaluator struct {
	stack   util.Stack[float64]
	entry   string
	display Display
	view    StackView

	// clearOnNextDigit is set once an entry is committed or an operation
	// completes, so the next digit starts a new entry instead of appending.
	clearOnNextDigit bool

	precision int
}

// Option configures an Evaluator.
type Option func(*Evaluator)

// WithStackView registers a view re-rendered after every stack mutation.
func WithStackView(view StackView) Option {
	return func(e *Evaluator) {
		e.view = view
	}
}

// WithPrecision sets the number of decimals used for results on the display.
func WithPrecision(precision int) Option {
	return func(e *Evaluator) {
		e.precision = precision
	}
}

// New returns an Evaluator writing to display. A nil display gets a Buffer.
func New(display Display, options ...Option) *Evaluator {
	if display == nil {
		display = &Buffer{}
	}

	e := &Evaluator{
		display:   display,
		precision: -1,
	}
	for _, option := range options {
		option(e)
	}

	return e
}

// Display returns the display the evaluator writes to.
func (e *Evaluator) Display() Display {
	return e.display
}

// Entry returns the pending entry text.
func (e *Evaluator) Entry() string {
	return e.entry
}

// ClearOnNextDigit reports whether the next digit discards the pending entry.
func (e *Evaluator) ClearOnNextDigit() bool {
	return e.clearOnNextDigit
}

// Len returns the number of values on the stack.
func (e *Evaluator) Len() int {
	return e.stack.Len()
}

// Contents returns a top-to-bottom copy of the stack.
func (e *Evaluator) Contents() []float64 {
	return e.stack.Contents()
}

// Load replaces the stack with contents given top to bottom.
func (e *Evaluator) Load(contents []float64) {
	e.stack.Clear()
	for i := len(contents) - 1; i >= 0; i-- {
		e.stack.Push(contents[i])
	}
	e.render()
}

// HandleLabel parses a keypad label and handles the resulting token.
func (e *Evaluator) HandleLabel(label string) error {
	t, err := ParseToken(label)
	if err != nil {
		return err
	}
	return e.Handle(t)
}

// Handle applies a single token. The returned error describes a failed
// operation; the evaluator has already recovered from it.
func (e *Evaluator) Handle(t Token) error {
	var err error

	switch t {
	case Digit0, Digit1, Digit2, Digit3, Digit4, Digit5, Digit6, Digit7, Digit8, Digit9, Point:
		e.appendEntry(t.String())
	case Backspace:
		e.backspace()
	case Enter:
		err = e.commit()
		e.clearOnNextDigit = true
	case ChangeSign:
		err = e.changeSign()
	case Add, Subtract, Multiply, Divide:
		err = e.operate(t)
	case ClearAll:
		e.clearAll()
	default:
		err = fmt.Errorf("%w: %s", ErrUnknownToken, t)
	}

	if err != nil {
		e.display.SetText(ErrorText)
		log.WithFields(logrus.Fields{
			"token": t.String(),
			"entry": e.entry,
			"depth": e.stack.Len(),
		}).Warn(err)
		return fmt.Errorf("%s: %w", t, err)
	}

	return nil
}

func (e *Evaluator) appendEntry(text string) {
	if e.clearOnNextDigit {
		e.entry = ""
		e.clearOnNextDigit = false
	}

	e.entry += text
	e.display.SetText(e.entry)
}

func (e *Evaluator) backspace() {
	if e.entry == "" {
		return
	}

	e.entry = e.entry[:len(e.entry)-1]
	e.display.SetText(e.entry)
}

// commit parses the pending entry and pushes it. An empty entry is a no-op;
// an unparsable one is left in place. Out of range literals become ±Inf.
func (e *Evaluator) commit() error {
	if e.entry == "" {
		return nil
	}

	value, err := strconv.ParseFloat(e.entry, 64)
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		return fmt.Errorf("%w: %q", ErrFormat, e.entry)
	}

	e.stack.Push(value)
	e.entry = ""
	e.display.Clear()
	e.render()
	return nil
}

func (e *Evaluator) changeSign() error {
	if e.stack.IsEmpty() {
		return insufficient(1)
	}

	top, _ := e.stack.Pop()

	result := -top
	e.stack.Push(result)
	e.render()
	e.display.SetText(Format(result, e.precision))
	return nil
}

func (e *Evaluator) operate(op Token) error {
	// Typing an operator right after digits behaves as if Enter came first.
	if e.entry != "" && !e.clearOnNextDigit {
		err := e.commit()
		e.clearOnNextDigit = true
		if err != nil {
			return err
		}
	}

	if e.stack.Len() < 2 {
		return insufficient(2)
	}

	// b is the right-hand operand
	b, _ := e.stack.Pop()
	a, _ := e.stack.Pop()

	var result float64
	switch op {
	case Add:
		result = a + b
	case Subtract:
		result = a - b
	case Multiply:
		result = a * b
	case Divide:
		if b == 0 {
			e.stack.Push(a)
			e.stack.Push(b)
			e.render()
			return ErrDivisionByZero
		}
		result = a / b
	}

	e.stack.Push(result)
	e.render()
	e.display.SetText(Format(result, e.precision))
	e.clearOnNextDigit = true
	return nil
}

func (e *Evaluator) clearAll() {
	e.entry = ""
	e.display.Clear()
	e.stack.Clear()
	e.render()
}

func (e *Evaluator) render() {
	if e.view != nil {
		e.view.Render(e.stack.Contents())
	}
}

func insufficient(need int) error {
	return fmt.Errorf("%w: need %s", ErrInsufficientOperands, util.Quantify(need, "operand", "operands"))
}
