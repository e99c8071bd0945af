// Package console prints colored, leveled log lines and timestamped status
// lines to a terminal.
package console

import (
	"io"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// Printer writes formatted lines to a sink. It does no locking and is not
// safe for concurrent use.
type Printer struct {
	f   *Formatter
	out io.Writer
	now func() time.Time
}

type settings struct {
	profile    *termenv.Profile
	now        func() time.Time
	timeFormat string
}

// PrinterOption configures a Printer at construction.
type PrinterOption func(*settings)

// WithProfile forces a color profile instead of detecting one from the sink.
func WithProfile(p termenv.Profile) PrinterOption {
	return func(s *settings) { s.profile = &p }
}

// WithClock replaces time.Now.
func WithClock(now func() time.Time) PrinterOption {
	return func(s *settings) { s.now = now }
}

// WithTimeFormat sets the layout used by Log.
func WithTimeFormat(layout string) PrinterOption {
	return func(s *settings) { s.timeFormat = layout }
}

// New returns a Printer writing to w.
func New(w io.Writer, opts ...PrinterOption) *Printer {
	s := settings{now: time.Now}
	for _, o := range opts {
		o(&s)
	}
	r := lipgloss.NewRenderer(w)
	if s.profile != nil {
		r.SetColorProfile(*s.profile)
	}
	return &Printer{
		f:   NewFormatter(r, s.timeFormat),
		out: w,
		now: s.now,
	}
}

// Formatter exposes the formatter bound to this printer's sink.
func (p *Printer) Formatter() *Formatter { return p.f }

// Leveled writes one leveled line. An empty message writes a blank line.
func (p *Printer) Leveled(level Level, message string, opts ...Option) error {
	return p.println(p.f.FormatLeveled(level, message, opts...))
}

// Info writes an INFO line, bold green by default.
func (p *Printer) Info(message string, opts ...Option) error {
	return p.Leveled(LevelInfo, message, opts...)
}

// Warn writes a WARN line, bold yellow by default.
func (p *Printer) Warn(message string, opts ...Option) error {
	return p.Leveled(LevelWarn, message, opts...)
}

// Critical writes a KILL line, bold red by default. Only the label is
// affected; the caller keeps running.
func (p *Printer) Critical(message string, opts ...Option) error {
	return p.Leveled(LevelCritical, message, opts...)
}

// Log writes one status line prefixed with the current local time.
func (p *Printer) Log(message string, opts ...Option) error {
	return p.println(p.f.FormatStamped(p.now(), message, opts...))
}

func (p *Printer) println(s string) error {
	_, err := io.WriteString(p.out, s+"\n")
	return err
}
