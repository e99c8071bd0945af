package console

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Level is the label printed in front of a leveled line.
type Level string

const (
	LevelInfo Level = "INFO"
	LevelWarn Level = "WARN"
	// LevelCritical keeps the KILL label; it never stops anything.
	LevelCritical Level = "KILL"
)

// Basic ANSI colors. They render on every color profile except Ascii.
var (
	Green  = lipgloss.Color("2")
	Yellow = lipgloss.Color("3")
	Red    = lipgloss.Color("1")
)

// Color returns the fixed color for the level. Unknown labels are green.
func (l Level) Color() lipgloss.Color {
	switch l {
	case LevelWarn:
		return Yellow
	case LevelCritical:
		return Red
	default:
		return Green
	}
}

// ParseLevel upper-cases s. Unknown labels are kept as-is so they still print.
func ParseLevel(s string) Level {
	s = strings.ToUpper(strings.TrimSpace(s))
	if s == "" {
		return LevelInfo
	}
	return Level(s)
}
