// Package key defines the canonical set of configuration identifiers used for centralized settings management.
package key

// Calculator behaviour.
const (
	CalcPrecision = "calc.precision"
)

// Session persistence - these keys control whether the stack survives between runs.
const (
	SessionSave    = "session.save"
	SessionRestore = "session.restore"
)

// Terminal User Interface (TUI) - these keys define the primary interactive environment's layout.
const (
	TUIShowKeypad  = "tui.show_keypad"
	TUIShowIndices = "tui.show_indices"
	TUIStackWidth  = "tui.stack_width"
)

// Iconography - these keys manage the visual rendering of UI symbols.
const (
	IconsVariant = "icons.variant"
)

// Logging Infrastructure - these keys manage the application's internal diagnostics.
const (
	LogsWrite = "logs.write"
	LogsLevel = "logs.level"
	LogsJson  = "logs.json"
)

// CLI Execution Environment - these flags and settings govern the non-TUI application behavior.
const (
	CliColored = "cli.colored"
)
