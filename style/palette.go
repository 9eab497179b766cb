package style

import "github.com/charmbracelet/lipgloss"

var (
	Base    = lipgloss.Color("#1e1e2e")
	Text    = lipgloss.Color("#cdd6f4")
	Overlay = lipgloss.Color("#6c7086")
	Surface = lipgloss.Color("#313244")

	Mauve = lipgloss.Color("#cba6f7")
	Red   = lipgloss.Color("#f38ba8")
	Green = lipgloss.Color("#a6e3a1")
	Sky   = lipgloss.Color("#89dceb")

	// StackItemColor is the light blue of a stack row.
	StackItemColor = lipgloss.Color("#ADD8E6")
	// KeyLabelColor marks command keys (Enter, CLx, CHS) and operators.
	KeyLabelColor = lipgloss.Color("#4CAF50")

	AccentColor = Mauve
	ErrorColor  = Red
	BorderColor = Surface
)
