package calc

import (
	"errors"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestParseToken(t *testing.T) {
	Convey("Every label round-trips through ParseToken", t, func() {
		for _, token := range Tokens() {
			parsed, err := ParseToken(token.String())
			So(err, ShouldBeNil)
			So(parsed, ShouldEqual, token)
		}
	})

	Convey("Word labels are case-insensitive", t, func() {
		So(must(ParseToken("enter")), ShouldEqual, Enter)
		So(must(ParseToken("chs")), ShouldEqual, ChangeSign)
		So(must(ParseToken("clx")), ShouldEqual, ClearAll)
	})

	Convey("Unknown labels fail", t, func() {
		_, err := ParseToken("%")
		So(errors.Is(err, ErrUnknownToken), ShouldBeTrue)
	})

	Convey("Token classes", t, func() {
		So(Digit7.IsEntry(), ShouldBeTrue)
		So(Point.IsEntry(), ShouldBeTrue)
		So(Divide.IsOperator(), ShouldBeTrue)
		So(ChangeSign.IsOperator(), ShouldBeFalse)
		So(Token(99).String(), ShouldEqual, "Token(99)")
	})
}

func TestSuggest(t *testing.T) {
	Convey("Suggest finds the closest label", t, func() {
		So(Suggest("ente"), ShouldEqual, "Enter")
		So(Suggest("CH"), ShouldEqual, "CHS")
		So(Suggest("clear"), ShouldEqual, "CLx")
	})
}

func must(t Token, err error) Token {
	if err != nil {
		panic(err)
	}
	return t
}
