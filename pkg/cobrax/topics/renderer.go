package topics

// Renderer formats a topic for the terminal.
type Renderer interface {
	Render(t *Topic) string
}

// PlainRenderer prints topics as written.
type PlainRenderer struct{}

func (PlainRenderer) Render(t *Topic) string {
	return t.Content
}
