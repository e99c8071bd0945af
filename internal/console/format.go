package console

import (
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/valyala/fasttemplate"
)

const (
	leveledTemplate = "{level}:     {message}"
	stampedTemplate = "{time} {message}"

	// DefaultTimeFormat renders as HH:MM:SS.mmm.
	DefaultTimeFormat = "15:04:05.000"
)

// line holds the per-call styling choices.
type line struct {
	color     lipgloss.TerminalColor
	bold      bool
	boldLevel bool
}

// Option adjusts the styling of a single line.
type Option func(*line)

// Color sets the message color.
func Color(c lipgloss.TerminalColor) Option {
	return func(l *line) { l.color = c }
}

// Bold toggles bold weight on the message.
func Bold(b bool) Option {
	return func(l *line) { l.bold = b }
}

// BoldLevel toggles bold weight on the level label.
func BoldLevel(b bool) Option {
	return func(l *line) { l.boldLevel = b }
}

func buildLine(def line, opts []Option) line {
	for _, o := range opts {
		o(&def)
	}
	if def.color == nil {
		def.color = Green
	}
	return def
}

// Formatter turns messages into styled strings. It has no sink of its own.
type Formatter struct {
	r          *lipgloss.Renderer
	timeFormat string
	leveled    *fasttemplate.Template
	stamped    *fasttemplate.Template
}

// NewFormatter returns a Formatter styling through r. An empty timeFormat
// falls back to DefaultTimeFormat.
func NewFormatter(r *lipgloss.Renderer, timeFormat string) *Formatter {
	if timeFormat == "" {
		timeFormat = DefaultTimeFormat
	}
	return &Formatter{
		r:          r,
		timeFormat: timeFormat,
		leveled:    fasttemplate.New(leveledTemplate, "{", "}"),
		stamped:    fasttemplate.New(stampedTemplate, "{", "}"),
	}
}

func (f *Formatter) style(c lipgloss.TerminalColor, bold bool) lipgloss.Style {
	return f.r.NewStyle().Foreground(c).Bold(bold)
}

// renderLines styles each line on its own. Rendering the whole message as
// one block would pad shorter lines to the widest one.
func renderLines(st lipgloss.Style, s string) string {
	parts := strings.Split(s, "\n")
	for i, p := range parts {
		parts[i] = st.Render(p)
	}
	return strings.Join(parts, "\n")
}

// FormatLeveled renders "LEVEL:     message" without a trailing newline.
// An empty message yields an empty string.
func (f *Formatter) FormatLeveled(level Level, message string, opts ...Option) string {
	if message == "" {
		return ""
	}
	l := buildLine(line{color: level.Color(), bold: true, boldLevel: true}, opts)
	return f.leveled.ExecuteString(map[string]interface{}{
		"level":   f.style(level.Color(), l.boldLevel).Render(string(level)),
		"message": renderLines(f.style(l.color, l.bold), message),
	})
}

// FormatStamped renders "HH:MM:SS.mmm message" for t without a trailing
// newline. The message defaults to plain green.
func (f *Formatter) FormatStamped(t time.Time, message string, opts ...Option) string {
	l := buildLine(line{color: Green}, opts)
	return f.stamped.ExecuteString(map[string]interface{}{
		"time":    f.style(Green, false).Render(t.Format(f.timeFormat)),
		"message": renderLines(f.style(l.color, l.bold), message),
	})
}
