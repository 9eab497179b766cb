package calc

import (
	"fmt"
	"strings"

	levenshtein "github.com/ka-weihe/fast-levenshtein"
	"github.com/samber/lo"
)

// Token is a discrete input event delivered by a keypad or a parsed label.
type Token int

const (
	Digit0 Token = iota
	Digit1
	Digit2
	Digit3
	Digit4
	Digit5
	Digit6
	Digit7
	Digit8
	Digit9
	Point
	Add
	Subtract
	Multiply
	Divide
	ChangeSign
	Enter
	Backspace
	ClearAll
)

var labels = map[Token]string{
	Digit0:     "0",
	Digit1:     "1",
	Digit2:     "2",
	Digit3:     "3",
	Digit4:     "4",
	Digit5:     "5",
	Digit6:     "6",
	Digit7:     "7",
	Digit8:     "8",
	Digit9:     "9",
	Point:      ".",
	Add:        "+",
	Subtract:   "-",
	Multiply:   "*",
	Divide:     "/",
	ChangeSign: "CHS",
	Enter:      "Enter",
	Backspace:  "BS",
	ClearAll:   "CLx",
}

var byLabel = lo.Invert(labels)

// Tokens returns every token in declaration order.
func Tokens() []Token {
	tokens := make([]Token, 0, len(labels))
	for t := Digit0; t <= ClearAll; t++ {
		tokens = append(tokens, t)
	}
	return tokens
}

// String returns the keypad label of the token.
func (t Token) String() string {
	if label, ok := labels[t]; ok {
		return label
	}
	return fmt.Sprintf("Token(%d)", int(t))
}

// IsEntry reports whether the token edits the pending entry text.
func (t Token) IsEntry() bool {
	return t >= Digit0 && t <= Point
}

// IsOperator reports whether the token is one of the four binary operators.
func (t Token) IsOperator() bool {
	return t >= Add && t <= Divide
}

// ParseToken maps a keypad label to its token. Word labels match case-insensitively.
func ParseToken(label string) (Token, error) {
	if t, ok := byLabel[label]; ok {
		return t, nil
	}

	for t, l := range labels {
		if len(l) > 1 && strings.EqualFold(l, label) {
			return t, nil
		}
	}

	return 0, fmt.Errorf("%w: %q", ErrUnknownToken, label)
}

// Suggest returns the known label closest to the given text.
func Suggest(label string) string {
	return lo.MinBy(lo.Values(labels), func(a, b string) bool {
		da := levenshtein.Distance(strings.ToLower(label), strings.ToLower(a))
		db := levenshtein.Distance(strings.ToLower(label), strings.ToLower(b))
		if da == db {
			return a < b
		}
		return da < db
	})
}
