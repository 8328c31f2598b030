// Package display holds the views commands hand to a renderer. Each view
// carries json and yaml tags for the machine formats and lays itself out
// as a Table or a Record for the human ones.
package display

// Cell is one table cell. Style names a style from package styles and is
// ignored by plain renderers.
type Cell struct {
	Text  string
	Style string
}

// Table is implemented by views shown as rows under a header.
// EmptyText is shown instead of a table with no rows.
type Table interface {
	Header() []string
	Rows() [][]Cell
	EmptyText() string
}

// Field is one labelled value of a Record.
type Field struct {
	Label string
	Value string
	Style string
}

// Record is implemented by views shown as labelled fields.
type Record interface {
	Fields() []Field
}

// Noter is implemented by views that carry trailing notes, such as
// warnings collected while loading.
type Noter interface {
	Notes() []string
}

const (
	StyleSuccess = "Success"
	StyleWarning = "Warning"
	StyleError   = "Error"
	StyleMuted   = "Muted"
	StyleVersion = "Version"
	StylePath    = "Path"
)

// LabelWidth returns the width of the longest label in fields.
func LabelWidth(fields []Field) int {
	width := 0
	for _, f := range fields {
		if len(f.Label) > width {
			width = len(f.Label)
		}
	}
	return width
}
