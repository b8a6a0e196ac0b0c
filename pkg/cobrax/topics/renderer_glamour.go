package topics

import (
	"github.com/charmbracelet/glamour"
)

// GlamourRenderer renders markdown topics for the terminal. Other
// formats pass through.
type GlamourRenderer struct {
	// Style is a glamour style name ("dark", "light", "notty") or the
	// path of a style file. Empty or "auto" detects the terminal.
	Style string
	// Width wraps lines; 0 keeps glamour's default.
	Width int
}

// NewGlamourRenderer returns a renderer with terminal detection. Use
// styled=false for output that is not a terminal.
func NewGlamourRenderer(styled bool) *GlamourRenderer {
	if !styled {
		return &GlamourRenderer{Style: "notty"}
	}
	return &GlamourRenderer{Style: "auto"}
}

func (r *GlamourRenderer) options() []glamour.TermRendererOption {
	var options []glamour.TermRendererOption
	switch r.Style {
	case "", "auto":
		options = append(options, glamour.WithAutoStyle())
	case "dark", "light", "notty", "ascii", "dracula", "pink":
		options = append(options, glamour.WithStandardStyle(r.Style))
	default:
		options = append(options, glamour.WithStylePath(r.Style))
	}
	if r.Width > 0 {
		options = append(options, glamour.WithWordWrap(r.Width))
	}
	return options
}

// Render falls back to the raw content when glamour fails.
func (r *GlamourRenderer) Render(content string, format string) string {
	if format != ".md" {
		return content
	}
	renderer, err := glamour.NewTermRenderer(r.options()...)
	if err != nil {
		return content
	}
	rendered, err := renderer.Render(content)
	if err != nil {
		return content
	}
	return rendered
}
