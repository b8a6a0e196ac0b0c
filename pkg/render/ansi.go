package render

import (
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/arthur-debert/minimessage/pkg/colors"
	"github.com/arthur-debert/minimessage/pkg/component"
)

// inherited is the style in effect for a node, after its ancestors.
type inherited struct {
	color       string
	decorations map[component.Decoration]bool
	link        string
}

func (s inherited) with(c *component.Component) inherited {
	next := inherited{
		color:       s.color,
		decorations: make(map[component.Decoration]bool, len(component.Decorations)),
		link:        s.link,
	}
	for d, v := range s.decorations {
		next.decorations[d] = v
	}
	if color, ok := c.ColorValue(); ok && color != "" {
		next.color = colors.Map(color)
	}
	for _, d := range component.Decorations {
		switch c.Decoration(d) {
		case component.True:
			next.decorations[d] = true
		case component.False:
			next.decorations[d] = false
		}
	}
	if c.ClickEvent != nil {
		next.link = ""
		if c.ClickEvent.Action == "open_url" {
			next.link = c.ClickEvent.Value
		}
	}
	return next
}

type ansiWriter struct {
	renderer *lipgloss.Renderer
	opts     Options
	sb       strings.Builder
}

func (w *ansiWriter) style(s inherited) lipgloss.Style {
	st := w.renderer.NewStyle().TabWidth(lipgloss.NoTabConversion)
	if s.color != "" {
		st = st.Foreground(lipgloss.Color(s.color))
	}
	return st.
		Bold(s.decorations[component.Bold]).
		Italic(s.decorations[component.Italic]).
		Underline(s.decorations[component.Underlined]).
		Strikethrough(s.decorations[component.Strikethrough]).
		Blink(s.decorations[component.Obfuscated])
}

// write renders text line by line so lipgloss never pads to a block.
func (w *ansiWriter) write(text string, s inherited) {
	if text == "" {
		return
	}
	st := w.style(s)
	lines := strings.Split(text, "\n")
	for i, line := range lines {
		if i > 0 {
			w.sb.WriteByte('\n')
		}
		if line == "" {
			continue
		}
		out := st.Render(line)
		if w.opts.Hyperlinks && s.link != "" {
			out = termenv.Hyperlink(s.link, out)
		}
		w.sb.WriteString(out)
	}
}

// content is the text a node shows before its children.
func (w *ansiWriter) content(c *component.Component) string {
	switch {
	case c.Text != nil:
		return *c.Text
	case c.Translate != nil:
		return Translate(*c.Translate, c.With, w.opts.Translations)
	case c.Keybind != nil:
		return "[" + *c.Keybind + "]"
	case c.Score != nil:
		return c.Score.Name + ":" + c.Score.Objective
	case c.Selector != nil:
		return *c.Selector
	}
	return ""
}

func (w *ansiWriter) node(c *component.Component, parent inherited) {
	s := parent.with(c)
	w.write(w.content(c), s)
	for _, child := range c.Extra {
		if child.IsText() {
			w.write(child.Text(), s)
			continue
		}
		w.node(child.Component(), s)
	}
}

// ANSI renders c as terminal text. Children inherit the color and
// decorations of their parents unless they override them.
func ANSI(c *component.Component, opts Options) string {
	renderer := lipgloss.NewRenderer(io.Discard)
	renderer.SetColorProfile(opts.Profile)
	w := &ansiWriter{renderer: renderer, opts: opts}
	w.node(c, inherited{})
	return w.sb.String()
}
