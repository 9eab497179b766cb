package calc

import "strings"

// Display is the text surface showing the pending entry, results and errors.
type Display interface {
	SetText(text string)
	AppendText(text string)
	Clear()
	Text() string
}

// StackView receives the stack contents, top first, after every stack mutation.
type StackView interface {
	Render(contents []float64)
}

// StackViewFunc adapts a function to StackView.
type StackViewFunc func(contents []float64)

func (f StackViewFunc) Render(contents []float64) {
	f(contents)
}

// Buffer is an in-memory Display.
type Buffer struct {
	b strings.Builder
}

func (d *Buffer) SetText(text string) {
	d.b.Reset()
	d.b.WriteString(text)
}

func (d *Buffer) AppendText(text string) {
	d.b.WriteString(text)
}

func (d *Buffer) Clear() {
	d.b.Reset()
}

func (d *Buffer) Text() string {
	return d.b.String()
}
