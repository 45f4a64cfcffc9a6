// Package ui renders the console side of an interactive run.
package ui

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Printer writes styled lines to one writer. Colours are only emitted when the
// writer is a terminal that supports them.
type Printer struct {
	out     io.Writer
	title   lipgloss.Style
	success lipgloss.Style
	failure lipgloss.Style
	removed lipgloss.Style
	added   lipgloss.Style
}

// New returns a Printer for out.
func New(out io.Writer) *Printer {
	if out == nil {
		out = io.Discard
	}
	r := lipgloss.NewRenderer(out)
	return &Printer{
		out:     out,
		title:   r.NewStyle().Bold(true),
		success: r.NewStyle().Foreground(lipgloss.Color("#8BC34A")),
		failure: r.NewStyle().Foreground(lipgloss.Color("#e53935")),
		removed: r.NewStyle().Foreground(lipgloss.Color("#e53935")),
		added:   r.NewStyle().Foreground(lipgloss.Color("#8BC34A")),
	}
}

// Title prints s underlined by a rule of '='.
func (p *Printer) Title(s string) {
	fmt.Fprintln(p.out, p.title.Render(s))
	fmt.Fprintln(p.out, strings.Repeat("=", 40))
}

// Section prints a blank line, s, and a rule of '-'.
func (p *Printer) Section(s string) {
	fmt.Fprintln(p.out)
	fmt.Fprintln(p.out, s)
	fmt.Fprintln(p.out, strings.Repeat("-", 30))
}

// Line prints s followed by a line break.
func (p *Printer) Line(s string) {
	fmt.Fprintln(p.out, s)
}

// Prompt prints "<label> [<current>]: " without a line break.
func (p *Printer) Prompt(label, current string) {
	fmt.Fprintf(p.out, "%s [%s]: ", label, current)
}

// Value prints "<label>: <value>".
func (p *Printer) Value(label, value string) {
	fmt.Fprintf(p.out, "%s: %s\n", label, value)
}

// Change prints the old and new value of one field as a two-line diff.
func (p *Printer) Change(label, old, nv string) {
	fmt.Fprintf(p.out, "%s\n", label)
	fmt.Fprintf(p.out, "  %s\n", p.removed.Render("- "+old))
	fmt.Fprintf(p.out, "  %s\n", p.added.Render("+ "+nv))
}

// Success prints s on its own paragraph.
func (p *Printer) Success(s string) {
	fmt.Fprintln(p.out)
	fmt.Fprintln(p.out, p.success.Render(s))
}

// Failure prints s on its own paragraph.
func (p *Printer) Failure(s string) {
	fmt.Fprintln(p.out)
	fmt.Fprintln(p.out, p.failure.Render(s))
}
