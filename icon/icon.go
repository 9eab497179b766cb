// Package icon renders UI symbols in the variant chosen by the user.
//
// Icons can be displayed as emoji, nerd-font glyphs, plain ASCII
// or Unicode squares depending on user preference.
package icon

import (
	"github.com/spf13/viper"
	"github.com/vpcalc/vpcalc/key"
)

const (
	emoji   = "emoji"
	nerd    = "nerd"
	plain   = "plain"
	squares = "squares"
)

// AvailableVariants returns a slice of all registered icon style identifiers.
func AvailableVariants() []string {
	return []string{emoji, nerd, plain, squares}
}

// iconDef holds the representations of a single symbol across all variants.
type iconDef struct {
	emoji   string
	nerd    string
	plain   string
	squares string
}

// Get retrieves the representation for the configured icons variant.
// Unknown variants fall back to plain.
func (d *iconDef) Get() string {
	switch viper.GetString(key.IconsVariant) {
	case emoji:
		return d.emoji
	case nerd:
		return d.nerd
	case squares:
		return d.squares
	default:
		return d.plain
	}
}

// Get returns the rendered string for a specified Icon identifier from the global registry.
func Get(i Icon) string {
	return icons[i].Get()
}
