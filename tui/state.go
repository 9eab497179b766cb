package tui

type state int

const (
	calculatorState state = iota
	errorState
)
