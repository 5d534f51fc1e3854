package chart

import "github.com/charmbracelet/lipgloss"

// Chart chrome colors. Field colors come from Encodings.
const (
	ColorGrid   = lipgloss.Color("#2A2A4A")
	ColorAxis   = lipgloss.Color("#6B6B8D")
	ColorLabel  = lipgloss.Color("#B4B4D0")
	ColorCursor = lipgloss.Color("#FF2E97")
	ColorMuted  = lipgloss.Color("#6B6B8D")
)

var (
	gridStyle   = lipgloss.NewStyle().Foreground(ColorGrid)
	axisStyle   = lipgloss.NewStyle().Foreground(ColorAxis)
	labelStyle  = lipgloss.NewStyle().Foreground(ColorLabel)
	cursorStyle = lipgloss.NewStyle().Foreground(ColorCursor).Bold(true)
	mutedStyle  = lipgloss.NewStyle().Foreground(ColorMuted)
)
