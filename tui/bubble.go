package tui

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/viewport"
	"github.com/samber/mo"
	"github.com/spf13/viper"
	"github.com/vpcalc/vpcalc/calc"
	"github.com/vpcalc/vpcalc/internal/ui"
	"github.com/vpcalc/vpcalc/key"
	"github.com/vpcalc/vpcalc/util"
)

// statefulBubble is the calculator model: evaluator, components and view state.
type statefulBubble struct {
	state         state
	statesHistory util.Stack[state]

	keymap *statefulKeymap

	evaluator *calc.Evaluator
	display   *calc.Buffer

	// components
	stackC   viewport.Model
	helpC    help.Model
	notifier *ui.Model

	lastPressed mo.Option[calc.Token]
	lastError   error

	stackWidth    int
	showKeypad    bool
	showIndices   bool
	width, height int

	options *Options
}

// raiseError switches to the failure view.
func (b *statefulBubble) raiseError(err error) {
	b.lastError = err
	b.newState(errorState)
}

func (b *statefulBubble) setState(s state) {
	b.state = s
	b.keymap.setState(s)
}

// newState moves to s, remembering the current state for previousState.
func (b *statefulBubble) newState(s state) {
	if b.state == s {
		return
	}

	b.statesHistory.Push(b.state)
	b.setState(s)
}

func (b *statefulBubble) previousState() {
	if s, err := b.statesHistory.Pop(); err == nil {
		b.setState(s)
	}
}

// resize propagates terminal dimension changes to the components.
func (b *statefulBubble) resize(width, height int) {
	x, y := paddingStyle.GetFrameSize()

	b.width = width - x
	b.height = height - y
	b.helpC.Width = b.width

	// title row, panel border and the help line
	b.stackC.Width = b.stackWidth
	b.stackC.Height = util.Max(3, b.height-4)
}

// Render implements calc.StackView.
func (b *statefulBubble) Render(contents []float64) {
	b.stackC.SetContent(b.renderStack(contents))
	b.stackC.GotoTop()
}

func newBubble(options *Options) *statefulBubble {
	bubble := &statefulBubble{
		state:       calculatorState,
		keymap:      newStatefulKeymap(),
		display:     &calc.Buffer{},
		notifier:    &ui.Model{},
		stackWidth:  util.Max(12, viper.GetInt(key.TUIStackWidth)),
		showKeypad:  viper.GetBool(key.TUIShowKeypad),
		showIndices: viper.GetBool(key.TUIShowIndices),
		options:     options,
	}

	bubble.helpC = help.New()
	bubble.stackC = viewport.New(bubble.stackWidth, 10)

	bubble.evaluator = calc.New(
		bubble.display,
		calc.WithPrecision(options.Precision),
		calc.WithStackView(bubble),
	)
	bubble.Render(nil)

	if w, h, err := util.TerminalSize(); err == nil {
		bubble.resize(w, h)
	}

	return bubble
}
