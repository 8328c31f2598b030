// Package text provides plain text output without any styling
package text

import (
	"fmt"
	"io"

	"github.com/arthur-debert/fvm/pkg/ui/display"
	"github.com/pterm/pterm"
)

// Renderer provides plain text output without colors or styling
type Renderer struct {
	output io.Writer
}

// New creates a new text renderer
func New(output io.Writer) *Renderer {
	return &Renderer{output: output}
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
			if _, err := fmt.Fprintf(r.output, "warning: %s\n", note); err != nil {
				return err
			}
		}
	}
	return nil
}

func (r *Renderer) renderTable(t display.Table) error {
	rows := t.Rows()
	if len(rows) == 0 {
		_, err := fmt.Fprintln(r.output, t.EmptyText())
		return err
	}

	data := pterm.TableData{t.Header()}
	for _, row := range rows {
		line := make([]string, len(row))
		for i, cell := range row {
			line[i] = cell.Text
		}
		data = append(data, line)
	}

	out, err := pterm.DefaultTable.WithHasHeader().WithData(data).Srender()
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(r.output, pterm.RemoveColorFromString(out))
	return err
}

func (r *Renderer) renderRecord(rec display.Record) error {
	fields := rec.Fields()
	width := display.LabelWidth(fields)
	for _, f := range fields {
		if _, err := fmt.Fprintf(r.output, "%-*s  %s\n", width, f.Label, f.Value); err != nil {
			return err
		}
	}
	return nil
}

// RenderError renders an error as plain text
func (r *Renderer) RenderError(err error) error {
	_, werr := fmt.Fprintf(r.output, "Error: %v\n", err)
	return werr
}

// RenderMessage renders a simple message
func (r *Renderer) RenderMessage(msg string) error {
	_, err := fmt.Fprintln(r.output, msg)
	return err
}
