package presentation

import (
	"github.com/charmbracelet/glamour"
)

// noMarginStyle is a JSON style that removes document margins.
const noMarginStyle = `{
	"document": {
		"margin": 0,
		"block_prefix": "",
		"block_suffix": ""
	}
}`

// DefaultWidth is the wrap width used when none is configured.
const DefaultWidth = 80

// Renderer wraps glamour for help and topic pages.
type Renderer struct {
	renderer *glamour.TermRenderer
	width    int
}

// NewRenderer creates a markdown renderer with the given width and style.
// style should be "dark", "light" or "notty". Defaults to "dark" if empty.
// A fixed style avoids the terminal background query WithAutoStyle makes.
func NewRenderer(width int, style string) (*Renderer, error) {
	if style == "" {
		style = "dark"
	}
	if width <= 0 {
		width = DefaultWidth
	}

	r, err := glamour.NewTermRenderer(
		glamour.WithStylePath(style),
		glamour.WithStylesFromJSONBytes([]byte(noMarginStyle)),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return nil, err
	}
	return &Renderer{renderer: r, width: width}, nil
}

// Width returns the configured word wrap width.
func (r *Renderer) Width() int {
	return r.width
}

// Render transforms markdown to styled terminal output.
func (r *Renderer) Render(markdown string) (string, error) {
	return r.renderer.Render(markdown)
}
