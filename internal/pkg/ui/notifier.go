// Package ui provides terminal output and prompts for aicommit.
package ui

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"

	apperrors "github.com/joacolabadie/aicommit/internal/pkg/errors"
)

// Notifier receives user-facing pipeline notifications. The pipeline only
// ever talks to this interface, never to a concrete terminal.
type Notifier interface {
	Info(message string)
	Success(message string)
	Warn(message string)
	Error(err error)
}

// Terminal implements Notifier with styled terminal output.
type Terminal struct {
	out    io.Writer
	styles *styles
}

// styles holds the lipgloss styles for terminal rendering.
type styles struct {
	info    lipgloss.Style
	success lipgloss.Style
	warn    lipgloss.Style
	err     lipgloss.Style
}

// NewTerminal creates a Terminal notifier writing to stderr.
func NewTerminal(colorEnabled bool) *Terminal {
	return NewTerminalWithWriter(os.Stderr, colorEnabled)
}

// NewTerminalWithWriter creates a Terminal notifier with a custom writer.
func NewTerminalWithWriter(w io.Writer, colorEnabled bool) *Terminal {
	t := &Terminal{out: w}
	t.initStyles(colorEnabled)
	return t
}

func (t *Terminal) initStyles(colorEnabled bool) {
	if !colorEnabled {
		t.styles = &styles{
			info:    lipgloss.NewStyle(),
			success: lipgloss.NewStyle(),
			warn:    lipgloss.NewStyle(),
			err:     lipgloss.NewStyle(),
		}
		return
	}

	t.styles = &styles{
		info: lipgloss.NewStyle().
			Foreground(lipgloss.Color("39")),
		success: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("42")),
		warn: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("220")),
		err: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("196")),
	}
}

// Info displays an informational message.
func (t *Terminal) Info(message string) {
	fmt.Fprintln(t.out, t.styles.info.Render(message))
}

// Success displays a success message.
func (t *Terminal) Success(message string) {
	fmt.Fprintln(t.out, t.styles.success.Render("[OK] "+message))
}

// Warn displays a warning message.
func (t *Terminal) Warn(message string) {
	fmt.Fprintln(t.out, t.styles.warn.Render("Warning: "+message))
}

// Error displays an error with its cause and suggestion when available.
func (t *Terminal) Error(err error) {
	if err == nil {
		return
	}
	fmt.Fprintln(t.out, t.styles.err.Render("Error: ")+apperrors.FormatError(err))
}

// Nop is a Notifier that discards everything. Useful in tests and when the
// caller renders its own output.
type Nop struct{}

// Info implements Notifier.
func (Nop) Info(string) {}

// Success implements Notifier.
func (Nop) Success(string) {}

// Warn implements Notifier.
func (Nop) Warn(string) {}

// Error implements Notifier.
func (Nop) Error(error) {}
