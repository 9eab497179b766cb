package tui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/vpcalc/vpcalc/constant"
)

func (b *statefulBubble) Init() tea.Cmd {
	return tea.SetWindowTitle(constant.App)
}
