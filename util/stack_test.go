package util

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestStack(t *testing.T) {
	Convey("Given an empty stack", t, func() {
		var s Stack[float64]

		So(s.IsEmpty(), ShouldBeTrue)
		So(s.Len(), ShouldEqual, 0)

		Convey("Pop fails with ErrEmptyStack", func() {
			_, err := s.Pop()
			So(err, ShouldEqual, ErrEmptyStack)
		})

		Convey("Peek fails with ErrEmptyStack", func() {
			_, err := s.Peek()
			So(err, ShouldEqual, ErrEmptyStack)
		})

		Convey("Clear is a no-op", func() {
			s.Clear()
			So(s.Len(), ShouldEqual, 0)
		})

		Convey("Contents is empty and not nil", func() {
			So(s.Contents(), ShouldNotBeNil)
			So(s.Contents(), ShouldBeEmpty)
		})
	})

	Convey("Given pushes p1..pn", t, func() {
		var s Stack[int]
		pushed := []int{1, 2, 3, 4, 5}
		for _, p := range pushed {
			s.Push(p)
		}
		So(s.Len(), ShouldEqual, len(pushed))

		Convey("Peek returns the last push and keeps it", func() {
			top, err := s.Peek()
			So(err, ShouldBeNil)
			So(top, ShouldEqual, 5)
			So(s.Len(), ShouldEqual, 5)
		})

		Convey("n pops return pn..p1", func() {
			for i := len(pushed) - 1; i >= 0; i-- {
				v, err := s.Pop()
				So(err, ShouldBeNil)
				So(v, ShouldEqual, pushed[i])
			}
			So(s.IsEmpty(), ShouldBeTrue)

			_, err := s.Pop()
			So(err, ShouldEqual, ErrEmptyStack)
		})

		Convey("Contents is top to bottom", func() {
			So(s.Contents(), ShouldResemble, []int{5, 4, 3, 2, 1})
		})

		Convey("Mutating Contents does not affect the stack", func() {
			contents := s.Contents()
			contents[0] = 99

			top, _ := s.Peek()
			So(top, ShouldEqual, 5)
			So(s.Contents(), ShouldResemble, []int{5, 4, 3, 2, 1})
		})

		Convey("Push then Pop round-trips and keeps the size", func() {
			before := s.Len()
			s.Push(7)
			v, err := s.Pop()
			So(err, ShouldBeNil)
			So(v, ShouldEqual, 7)
			So(s.Len(), ShouldEqual, before)
		})

		Convey("Clear empties it", func() {
			s.Clear()
			So(s.IsEmpty(), ShouldBeTrue)
			_, err := s.Peek()
			So(err, ShouldEqual, ErrEmptyStack)
		})
	})
}
