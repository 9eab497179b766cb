package calc

import (
	"errors"
	"math"
	"strings"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

// press feeds labels to e and returns the last error.
func press(e *Evaluator, labels ...string) (err error) {
	for _, label := range labels {
		err = e.HandleLabel(label)
	}
	return
}

func TestEvaluator(t *testing.T) {
	Convey("Given an evaluator with a stack view", t, func() {
		var rendered [][]float64
		e := New(nil, WithStackView(StackViewFunc(func(contents []float64) {
			rendered = append(rendered, contents)
		})))
		display := e.Display()

		Convey("Digits build the pending entry without touching the stack", func() {
			So(press(e, "1", "2", ".", "5"), ShouldBeNil)
			So(e.Entry(), ShouldEqual, "12.5")
			So(display.Text(), ShouldEqual, "12.5")
			So(e.Len(), ShouldEqual, 0)
			So(rendered, ShouldBeEmpty)
		})

		Convey("Backspace drops the last character", func() {
			So(press(e, "4", "2", "BS"), ShouldBeNil)
			So(e.Entry(), ShouldEqual, "4")
			So(display.Text(), ShouldEqual, "4")

			Convey("and is a no-op on an empty entry", func() {
				So(press(e, "BS", "BS", "BS"), ShouldBeNil)
				So(e.Entry(), ShouldEqual, "")
				So(e.Len(), ShouldEqual, 0)
			})
		})

		Convey("Enter commits the entry", func() {
			So(press(e, "7", "Enter"), ShouldBeNil)
			So(e.Contents(), ShouldResemble, []float64{7})
			So(e.Entry(), ShouldEqual, "")
			So(display.Text(), ShouldEqual, "")
			So(e.ClearOnNextDigit(), ShouldBeTrue)
			So(rendered, ShouldHaveLength, 1)

			Convey("and an empty Enter pushes nothing", func() {
				So(press(e, "Enter"), ShouldBeNil)
				So(e.Len(), ShouldEqual, 1)
			})
		})

		Convey("3 Enter 4 + leaves 7", func() {
			So(press(e, "3", "Enter", "4", "Enter", "+"), ShouldBeNil)
			So(e.Contents(), ShouldResemble, []float64{7})
			So(display.Text(), ShouldEqual, "7")
			So(e.ClearOnNextDigit(), ShouldBeTrue)
		})

		Convey("Operands keep their order for non-commutative operators", func() {
			So(press(e, "5", "Enter", "3", "-"), ShouldBeNil)
			So(e.Contents(), ShouldResemble, []float64{2})
			So(display.Text(), ShouldEqual, "2")

			So(press(e, "CLx", "8", "Enter", "2", "/"), ShouldBeNil)
			So(e.Contents(), ShouldResemble, []float64{4})
		})

		Convey("An operator auto-commits typed digits", func() {
			So(press(e, "6", "Enter", "4", "*"), ShouldBeNil)
			So(e.Contents(), ShouldResemble, []float64{24})
		})

		Convey("A digit after a result starts a new entry", func() {
			So(press(e, "2", "Enter", "3", "+", "9"), ShouldBeNil)
			So(e.Entry(), ShouldEqual, "9")
			So(display.Text(), ShouldEqual, "9")
			So(e.Contents(), ShouldResemble, []float64{5})
		})

		Convey("Division by zero restores the operands", func() {
			So(press(e, "1", "0", "Enter", "0", "Enter"), ShouldBeNil)
			err := press(e, "/")
			So(errors.Is(err, ErrDivisionByZero), ShouldBeTrue)
			So(e.Contents(), ShouldResemble, []float64{0, 10})
			So(display.Text(), ShouldEqual, ErrorText)
			So(rendered[len(rendered)-1], ShouldResemble, []float64{0, 10})
		})

		Convey("Division by zero after an auto-commit keeps the committed value", func() {
			So(press(e, "1", "0", "Enter", "0"), ShouldBeNil)
			So(e.ClearOnNextDigit(), ShouldBeFalse)
			err := press(e, "/")
			So(errors.Is(err, ErrDivisionByZero), ShouldBeTrue)
			So(e.Contents(), ShouldResemble, []float64{0, 10})
			So(e.ClearOnNextDigit(), ShouldBeTrue)
		})

		Convey("A failed auto-commit still starts a fresh entry", func() {
			err := press(e, "1", ".", "2", ".", "+")
			So(errors.Is(err, ErrFormat), ShouldBeTrue)
			So(e.Entry(), ShouldEqual, "1.2.")
			So(e.ClearOnNextDigit(), ShouldBeTrue)

			So(press(e, "5"), ShouldBeNil)
			So(e.Entry(), ShouldEqual, "5")
			So(display.Text(), ShouldEqual, "5")
			So(e.Len(), ShouldEqual, 0)
		})

		Convey("Division by zero alone leaves the flag as it was", func() {
			So(press(e, "1", "Enter", "0", "Enter", "5", "BS"), ShouldBeNil)
			So(e.ClearOnNextDigit(), ShouldBeFalse)
			So(errors.Is(press(e, "/"), ErrDivisionByZero), ShouldBeTrue)
			So(e.ClearOnNextDigit(), ShouldBeFalse)
		})

		Convey("Out of range literals commit as infinity", func() {
			So(press(e, strings.Split(strings.Repeat("9", 400), "")...), ShouldBeNil)
			So(press(e, "Enter"), ShouldBeNil)
			So(e.Len(), ShouldEqual, 1)
			So(math.IsInf(e.Contents()[0], 1), ShouldBeTrue)

			Convey("and so do overflowing products", func() {
				So(press(e, "CLx"), ShouldBeNil)
				nines := strings.Split(strings.Repeat("9", 200), "")
				So(press(e, nines...), ShouldBeNil)
				So(press(e, "Enter"), ShouldBeNil)
				So(press(e, nines...), ShouldBeNil)
				So(press(e, "*"), ShouldBeNil)
				So(math.IsInf(e.Contents()[0], 1), ShouldBeTrue)
				So(display.Text(), ShouldEqual, "+Inf")
			})
		})

		Convey("Sign change on an empty stack fails", func() {
			err := press(e, "CHS")
			So(errors.Is(err, ErrInsufficientOperands), ShouldBeTrue)
			So(display.Text(), ShouldEqual, ErrorText)
			So(e.Len(), ShouldEqual, 0)
		})

		Convey("Sign change negates the top", func() {
			So(press(e, "1", "Enter", "2", "Enter", "CHS"), ShouldBeNil)
			So(e.Contents(), ShouldResemble, []float64{-2, 1})
			So(display.Text(), ShouldEqual, "-2")

			So(press(e, "CHS"), ShouldBeNil)
			So(e.Contents(), ShouldResemble, []float64{2, 1})
		})

		Convey("A single auto-committed operand is not enough", func() {
			err := press(e, "6", "+")
			So(errors.Is(err, ErrInsufficientOperands), ShouldBeTrue)
			So(e.Contents(), ShouldResemble, []float64{6})
			So(display.Text(), ShouldEqual, ErrorText)
		})

		Convey("An unparsable entry fails to commit", func() {
			err := press(e, "1", ".", "2", ".", "3", "Enter")
			So(errors.Is(err, ErrFormat), ShouldBeTrue)
			So(e.Entry(), ShouldEqual, "1.2.3")
			So(e.Len(), ShouldEqual, 0)
			So(display.Text(), ShouldEqual, ErrorText)
			So(e.ClearOnNextDigit(), ShouldBeTrue)

			Convey("and a bare point is rejected too", func() {
				err := press(e, "CLx", ".", "+")
				So(errors.Is(err, ErrFormat), ShouldBeTrue)
				So(e.Len(), ShouldEqual, 0)
			})
		})

		Convey("Clear-all resets entry and stack", func() {
			So(press(e, "1", "Enter", "2", "Enter", "3", "CLx"), ShouldBeNil)
			So(e.Len(), ShouldEqual, 0)
			So(e.Entry(), ShouldEqual, "")
			So(display.Text(), ShouldEqual, "")
			So(rendered[len(rendered)-1], ShouldBeEmpty)
		})

		Convey("Load restores a snapshot", func() {
			e.Load([]float64{3, 2, 1})
			So(e.Contents(), ShouldResemble, []float64{3, 2, 1})
			So(press(e, "-"), ShouldBeNil)
			So(e.Contents(), ShouldResemble, []float64{-1, 1})
		})

		Convey("Unknown labels are rejected", func() {
			err := press(e, "sqrt")
			So(errors.Is(err, ErrUnknownToken), ShouldBeTrue)
		})
	})

	Convey("Given a fixed precision", t, func() {
		e := New(&Buffer{}, WithPrecision(2))
		So(press(e, "1", "Enter", "3", "/"), ShouldBeNil)
		So(e.Display().Text(), ShouldEqual, "0.33")
	})
}
