package inline

import (
	"io"
	"strings"

	"github.com/samber/lo"
)

// Options configures a non-interactive evaluation.
type Options struct {
	Out io.Writer
	// Labels are keypad labels; entries containing whitespace hold several.
	Labels    []string
	Json      bool
	KeepGoing bool
	Precision int
}

// tokens splits Labels on whitespace.
func (o *Options) tokens() []string {
	return lo.FlatMap(o.Labels, func(label string, _ int) []string {
		return strings.Fields(label)
	})
}
