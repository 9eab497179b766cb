package tui

import (
	"math"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	. "github.com/smartystreets/goconvey/convey"
	"github.com/spf13/viper"
	"github.com/vpcalc/vpcalc/calc"
	"github.com/vpcalc/vpcalc/filesystem"
	"github.com/vpcalc/vpcalc/internal/ui"
	"github.com/vpcalc/vpcalc/key"
	"github.com/vpcalc/vpcalc/session"
)

func init() {
	filesystem.SetMemMapFs()
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

// typeKeys sends every key and returns the command of the last one.
func typeKeys(b *statefulBubble, keys ...tea.KeyMsg) (cmd tea.Cmd) {
	for _, k := range keys {
		_, cmd = b.Update(k)
	}
	return
}

func TestBubble(t *testing.T) {
	Convey("Given a calculator", t, func() {
		viper.Set(key.TUIShowKeypad, true)
		viper.Set(key.TUIStackWidth, 20)

		b := newBubble(&Options{Precision: -1})
		b.Update(tea.WindowSizeMsg{Width: 80, Height: 30})

		Convey("It starts empty", func() {
			So(b.View(), ShouldContainSubstring, "Stack:")
			So(b.View(), ShouldContainSubstring, "empty")
			So(b.View(), ShouldContainSubstring, "CHS")
		})

		Convey("Keys drive the evaluator", func() {
			typeKeys(b,
				runes("3"),
				tea.KeyMsg{Type: tea.KeyEnter},
				runes("4"),
				runes("+"),
			)
			So(b.evaluator.Contents(), ShouldResemble, []float64{7})
			So(b.display.Text(), ShouldEqual, "7")
			So(b.View(), ShouldContainSubstring, "7")
			So(b.lastPressed.MustGet(), ShouldEqual, calc.Add)
		})

		Convey("Word keys map to commands", func() {
			typeKeys(b, runes("5"), runes("="), runes("n"))
			So(b.evaluator.Contents(), ShouldResemble, []float64{-5})

			typeKeys(b, runes("1"), tea.KeyMsg{Type: tea.KeyBackspace})
			So(b.evaluator.Entry(), ShouldEqual, "")

			typeKeys(b, runes("c"))
			So(b.evaluator.Len(), ShouldEqual, 0)
		})

		Convey("A failed operation raises a notification", func() {
			cmd := typeKeys(b, runes("n"))
			So(cmd, ShouldNotBeNil)

			msg := cmd()
			So(msg, ShouldHaveSameTypeAs, ui.NotificationMsg(""))
			b.Update(msg)
			So(b.View(), ShouldContainSubstring, "insufficient operands")
			So(b.display.Text(), ShouldEqual, calc.ErrorText)
		})

		Convey("The help toggles", func() {
			So(b.helpC.ShowAll, ShouldBeFalse)
			typeKeys(b, runes("?"))
			So(b.helpC.ShowAll, ShouldBeTrue)
		})

		Convey("Quitting saves the session when enabled", func() {
			b.options.Save = true
			typeKeys(b, runes("4"), runes("2"), tea.KeyMsg{Type: tea.KeyEnter})

			cmd := typeKeys(b, runes("q"))
			So(cmd, ShouldNotBeNil)
			So(cmd(), ShouldHaveSameTypeAs, tea.QuitMsg{})

			saved, err := session.Load()
			So(err, ShouldBeNil)
			So(saved, ShouldResemble, []float64{42})
		})

		Convey("Quitting with an overflowed stack still saves", func() {
			b.options.Save = true
			b.evaluator.Load([]float64{math.Inf(1), math.NaN()})

			cmd := typeKeys(b, runes("q"))
			So(b.state, ShouldEqual, calculatorState)
			So(cmd(), ShouldHaveSameTypeAs, tea.QuitMsg{})

			saved, err := session.Load()
			So(err, ShouldBeNil)
			So(math.IsInf(saved[0], 1), ShouldBeTrue)
			So(math.IsNaN(saved[1]), ShouldBeTrue)
		})

		Convey("ctrl+c quits from any state", func() {
			b.raiseError(calc.ErrDivisionByZero)
			cmd := typeKeys(b, tea.KeyMsg{Type: tea.KeyCtrlC})
			So(cmd(), ShouldHaveSameTypeAs, tea.QuitMsg{})
		})

		Convey("The error view returns to the calculator", func() {
			b.raiseError(calc.ErrFormat)
			So(b.state, ShouldEqual, errorState)
			So(b.View(), ShouldContainSubstring, "invalid number")

			typeKeys(b, tea.KeyMsg{Type: tea.KeyEsc})
			So(b.state, ShouldEqual, calculatorState)
		})
	})
}

func TestRenderStack(t *testing.T) {
	Convey("Given a stack with indices shown", t, func() {
		viper.Set(key.TUIShowIndices, true)
		b := newBubble(&Options{Precision: 2})

		b.evaluator.Load([]float64{1.5, -2})
		out := b.renderStack(b.evaluator.Contents())

		So(out, ShouldContainSubstring, "0: 1.50")
		So(out, ShouldContainSubstring, "1: -2.00")

		Reset(func() {
			viper.Set(key.TUIShowIndices, false)
		})
	})
}
