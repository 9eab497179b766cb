package icon

// Icon identifies a symbol in the registry.
type Icon int

const (
	Success Icon = iota
	Fail
	Progress
	Add
	Subtract
	Multiply
	Divide
	Backspace
)

var icons = map[Icon]*iconDef{
	Success: {
		emoji:   "🎉",
		nerd:    "\uf00c",
		plain:   "✓",
		squares: "🟩",
	},
	Fail: {
		emoji:   "💀",
		nerd:    "\uf00d",
		plain:   "✗",
		squares: "🟥",
	},
	Progress: {
		emoji:   "⏳",
		nerd:    "\uf252",
		plain:   "…",
		squares: "🟦",
	},
	Add: {
		emoji:   "➕",
		nerd:    "\uf067",
		plain:   "+",
		squares: "+",
	},
	Subtract: {
		emoji:   "➖",
		nerd:    "\uf068",
		plain:   "-",
		squares: "-",
	},
	Multiply: {
		emoji:   "✖️",
		nerd:    "\uf00d",
		plain:   "*",
		squares: "×",
	},
	Divide: {
		emoji:   "➗",
		nerd:    "\uf529",
		plain:   "/",
		squares: "÷",
	},
	Backspace: {
		emoji:   "🔙",
		nerd:    "\U000f006e",
		plain:   "BS",
		squares: "⌫",
	},
}
