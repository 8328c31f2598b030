// Package terminal provides rich terminal output with colors and styling
package terminal

import (
	"fmt"
	"io"
	"strings"

	"github.com/arthur-debert/fvm/pkg/errors"
	"github.com/arthur-debert/fvm/pkg/ui/display"
	"github.com/arthur-debert/fvm/pkg/ui/styles"
	"github.com/pterm/pterm"
)

// Renderer draws tables with pterm and colours cells with the named styles.
type Renderer struct {
	output io.Writer
}

// New creates a new terminal renderer
func New(w io.Writer) *Renderer {
	return &Renderer{output: w}
}

// RenderResult renders tables and records; anything else is printed with %+v.
func (r *Renderer) RenderResult(result interface{}) error {
	var err error
	switch v := result.(type) {
	case display.Table:
		err = r.renderTable(v)
	case display.Record:
		err = r.renderRecord(v)
	default:
		_, err = fmt.Fprintf(r.output, "%+v\n", result)
	}
	if err != nil {
		return err
	}

	if n, ok := result.(display.Noter); ok {
		for _, note := range n.Notes() {
			if _, err := fmt.Fprintf(r.output, "%s %s\n", styles.Render(display.StyleWarning, "warning:"), note); err != nil {
				return err
			}
		}
	}
	return nil
}

func (r *Renderer) renderTable(t display.Table) error {
	rows := t.Rows()
	if len(rows) == 0 {
		_, err := fmt.Fprintln(r.output, styles.Render(display.StyleMuted, t.EmptyText()))
		return err
	}

	data := pterm.TableData{t.Header()}
	for _, row := range rows {
		line := make([]string, len(row))
		for i, cell := range row {
			line[i] = styles.Render(cell.Style, cell.Text)
		}
		data = append(data, line)
	}

	out, err := pterm.DefaultTable.WithHasHeader().WithData(data).Srender()
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(r.output, out)
	return err
}

func (r *Renderer) renderRecord(rec display.Record) error {
	fields := rec.Fields()
	width := display.LabelWidth(fields)
	for _, f := range fields {
		label := styles.Render("Label", fmt.Sprintf("%-*s", width, f.Label))
		if _, err := fmt.Fprintf(r.output, "%s  %s\n", label, styles.Render(f.Style, f.Value)); err != nil {
			return err
		}
	}
	return nil
}

// RenderError renders an error with its code when it has one.
func (r *Renderer) RenderError(err error) error {
	var b strings.Builder
	b.WriteString(styles.Render(display.StyleError, "Error:"))
	b.WriteString(" ")
	b.WriteString(err.Error())
	if code := errors.GetErrorCode(err); code != errors.ErrUnknown {
		b.WriteString(" ")
		b.WriteString(styles.Render(display.StyleMuted, "["+string(code)+"]"))
	}
	_, werr := fmt.Fprintln(r.output, b.String())
	return werr
}

// RenderMessage renders a simple message
func (r *Renderer) RenderMessage(msg string) error {
	_, err := fmt.Fprintln(r.output, msg)
	return err
}
