// Package output provides the mode-aware renderer used by all commands.
// Output adapts to the environment: a terminal gets styled text, a pipe
// gets markdown, and --format json gets machine-readable output.
package output

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/jedib0t/go-pretty/v6/table"
	"golang.org/x/term"
)

// Mode selects the output format.
type Mode string

// Supported output modes.
const (
	ModeAuto     Mode = "auto"
	ModeText     Mode = "text"
	ModeMarkdown Mode = "markdown"
	ModeJSON     Mode = "json"
)

// Styles for text mode.
var (
	successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
	warnStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("214"))
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
	dimStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	headerStyle  = lipgloss.NewStyle().Bold(true)
)

// Renderer writes command output in the selected mode.
type Renderer struct {
	out    io.Writer
	errOut io.Writer
	mode   Mode
}

// NewRenderer creates a renderer. Pass ModeAuto to detect the format
// from the output destination.
func NewRenderer(out, errOut io.Writer, mode Mode) *Renderer {
	switch mode {
	case ModeText, ModeMarkdown, ModeJSON:
	default:
		mode = ModeAuto
	}
	return &Renderer{out: out, errOut: errOut, mode: mode}
}

// Out returns the primary output writer.
func (r *Renderer) Out() io.Writer { return r.out }

// Err returns the error output writer.
func (r *Renderer) Err() io.Writer { return r.errOut }

// EffectiveMode resolves ModeAuto: a terminal renders text, anything
// else renders markdown.
func (r *Renderer) EffectiveMode() Mode {
	if r.mode != ModeAuto {
		return r.mode
	}
	if f, ok := r.out.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		return ModeText
	}
	return ModeMarkdown
}

// JSON writes v as indented JSON.
func (r *Renderer) JSON(v any) error {
	enc := json.NewEncoder(r.out)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// Table renders a table in the effective mode.
func (r *Renderer) Table(header []string, rows [][]string) {
	t := table.NewWriter()
	t.SetOutputMirror(r.out)

	headerRow := make(table.Row, len(header))
	for i, h := range header {
		headerRow[i] = h
	}
	t.AppendHeader(headerRow)

	for _, row := range rows {
		tr := make(table.Row, len(row))
		for i, cell := range row {
			tr[i] = cell
		}
		t.AppendRow(tr)
	}

	if r.EffectiveMode() == ModeMarkdown {
		t.RenderMarkdown()
		return
	}
	t.SetStyle(table.StyleLight)
	t.Render()
}

// Printf writes formatted plain output.
func (r *Renderer) Printf(format string, args ...any) {
	_, _ = fmt.Fprintf(r.out, format, args...)
}

// Println writes a plain output line.
func (r *Renderer) Println(args ...any) {
	_, _ = fmt.Fprintln(r.out, args...)
}

// Header writes a section heading.
func (r *Renderer) Header(text string) {
	switch r.EffectiveMode() {
	case ModeMarkdown:
		_, _ = fmt.Fprintf(r.out, "## %s\n\n", text)
	default:
		_, _ = fmt.Fprintln(r.out, headerStyle.Render(text))
	}
}

// Success writes a success line.
func (r *Renderer) Success(msg string) {
	if r.EffectiveMode() == ModeText {
		msg = successStyle.Render("✓ " + msg)
	}
	_, _ = fmt.Fprintln(r.out, msg)
}

// Warning writes a warning line to the error stream.
func (r *Renderer) Warning(msg string) {
	if r.EffectiveMode() == ModeText {
		msg = warnStyle.Render(msg)
	}
	_, _ = fmt.Fprintln(r.errOut, msg)
}

// Error writes an error line to the error stream.
func (r *Renderer) Error(msg string) {
	if r.EffectiveMode() == ModeText {
		msg = errorStyle.Render(msg)
	}
	_, _ = fmt.Fprintln(r.errOut, msg)
}

// Dim writes de-emphasized text in text mode, plain text otherwise.
func (r *Renderer) Dim(msg string) {
	if r.EffectiveMode() == ModeText {
		msg = dimStyle.Render(msg)
	}
	_, _ = fmt.Fprintln(r.out, msg)
}

// SeverityCell styles a severity string for table cells in text mode.
func (r *Renderer) SeverityCell(severity string) string {
	if r.EffectiveMode() != ModeText {
		return severity
	}
	switch severity {
	case "error":
		return errorStyle.Render(severity)
	case "warn", "warning":
		return warnStyle.Render(severity)
	case "off":
		return dimStyle.Render(severity)
	default:
		return severity
	}
}
