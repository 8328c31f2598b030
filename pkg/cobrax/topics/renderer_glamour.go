package topics

import (
	"os"

	"github.com/charmbracelet/glamour"
)

// GlamourRenderer renders markdown topics with glamour. Other formats are
// passed through.
type GlamourRenderer struct {
	// Style is a glamour standard style ("dark", "light", "notty") or a
	// path to a JSON style. Empty or "auto" detects from the terminal.
	Style string
	// Width wraps output; 0 keeps glamour's default.
	Width int
}

// NewGlamourRenderer creates a renderer that picks its style from the
// terminal. NO_COLOR selects the unstyled "notty" style.
func NewGlamourRenderer() *GlamourRenderer {
	r := &GlamourRenderer{Style: "auto"}
	if os.Getenv("NO_COLOR") != "" {
		r.Style = "notty"
	}
	return r
}

func (r *GlamourRenderer) Render(t *Topic) string {
	if t.Format != FormatMarkdown {
		return t.Content
	}

	var options []glamour.TermRendererOption
	switch r.Style {
	case "", "auto":
		options = append(options, glamour.WithAutoStyle())
	case "dark", "light", "notty", "dracula", "pink", "ascii":
		options = append(options, glamour.WithStandardStyle(r.Style))
	default:
		options = append(options, glamour.WithStylePath(r.Style))
	}
	if r.Width > 0 {
		options = append(options, glamour.WithWordWrap(r.Width))
	}

	renderer, err := glamour.NewTermRenderer(options...)
	if err != nil {
		return t.Content
	}
	rendered, err := renderer.Render(t.Content)
	if err != nil {
		return t.Content
	}
	return rendered
}
