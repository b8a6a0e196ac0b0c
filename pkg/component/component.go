// Package component holds the styled text tree produced by the
// deserializer. Its exported shape mirrors the JSON property bag
// consumed by renderers: field names and nesting are part of the
// contract.
package component

import "unicode/utf8"

// Decoration is one of the boolean text decorations.
type Decoration string

const (
	Bold          Decoration = "bold"
	Italic        Decoration = "italic"
	Underlined    Decoration = "underlined"
	Strikethrough Decoration = "strikethrough"
	Obfuscated    Decoration = "obfuscated"
)

// Decorations lists every decoration in a stable order.
var Decorations = []Decoration{Bold, Italic, Underlined, Strikethrough, Obfuscated}

// DecorationState is the tri-state value of a decoration.
type DecorationState int

const (
	Unset DecorationState = iota - 1
	False
	True
)

// Click event actions.
var ClickActions = []string{
	"change_page", "copy_to_clipboard", "open_file", "open_url", "run_command", "suggest_command",
}

// Hover event actions.
var HoverActions = []string{"show_text", "show_item", "show_entity"}

// ClickEvent is run when the text is clicked.
type ClickEvent struct {
	Action string `json:"action" yaml:"action"`
	Value  string `json:"value" yaml:"value"`
}

// HoverEvent is shown while the text is hovered.
type HoverEvent struct {
	Action   string `json:"action" yaml:"action"`
	Contents string `json:"contents" yaml:"contents"`
}

// Score names a scoreboard value.
type Score struct {
	Name      string `json:"name" yaml:"name"`
	Objective string `json:"objective" yaml:"objective"`
}

// Component is a node of the styled text tree. Unset properties are nil.
// When both Text and Extra are present Text comes first.
type Component struct {
	Color *string `json:"color,omitempty" yaml:"color,omitempty"`
	Extra []Child `json:"extra,omitempty" yaml:"extra,omitempty"`
	Text  *string `json:"text,omitempty" yaml:"text,omitempty"`

	Bold          *bool `json:"bold,omitempty" yaml:"bold,omitempty"`
	Italic        *bool `json:"italic,omitempty" yaml:"italic,omitempty"`
	Underlined    *bool `json:"underlined,omitempty" yaml:"underlined,omitempty"`
	Strikethrough *bool `json:"strikethrough,omitempty" yaml:"strikethrough,omitempty"`
	Obfuscated    *bool `json:"obfuscated,omitempty" yaml:"obfuscated,omitempty"`

	ClickEvent *ClickEvent `json:"clickEvent,omitempty" yaml:"clickEvent,omitempty"`
	HoverEvent *HoverEvent `json:"hoverEvent,omitempty" yaml:"hoverEvent,omitempty"`

	Keybind   *string  `json:"keybind,omitempty" yaml:"keybind,omitempty"`
	Translate *string  `json:"translate,omitempty" yaml:"translate,omitempty"`
	With      []string `json:"with,omitempty" yaml:"with,omitempty"`
	Selector  *string  `json:"selector,omitempty" yaml:"selector,omitempty"`
	Score     *Score   `json:"score,omitempty" yaml:"score,omitempty"`

	Insertion *string `json:"insertion,omitempty" yaml:"insertion,omitempty"`
	Font      *string `json:"font,omitempty" yaml:"font,omitempty"`

	NBT       *string `json:"nbt,omitempty" yaml:"nbt,omitempty"`
	Block     *string `json:"block,omitempty" yaml:"block,omitempty"`
	Entity    *string `json:"entity,omitempty" yaml:"entity,omitempty"`
	Storage   *string `json:"storage,omitempty" yaml:"storage,omitempty"`
	Interpret *bool   `json:"interpret,omitempty" yaml:"interpret,omitempty"`
	Separator *string `json:"separator,omitempty" yaml:"separator,omitempty"`
}

// String returns a pointer to s, for optional properties.
func String(s string) *string { return &s }

// Bool returns a pointer to b, for optional properties.
func Bool(b bool) *bool { return &b }

// New returns an empty component.
func New() *Component {
	return &Component{}
}

// NewText returns a component holding only text.
func NewText(text string) *Component {
	return &Component{Text: String(text)}
}

// TextValue returns the text, or "" when unset.
func (c *Component) TextValue() string {
	if c.Text == nil {
		return ""
	}
	return *c.Text
}

// ColorValue returns the color and whether it is set.
func (c *Component) ColorValue() (string, bool) {
	if c.Color == nil {
		return "", false
	}
	return *c.Color, true
}

// SetColor sets the color.
func (c *Component) SetColor(color string) {
	c.Color = String(color)
}

// SetColorIfUnset sets the color unless one is already present.
func (c *Component) SetColorIfUnset(color string) {
	if c.Color == nil {
		c.Color = String(color)
	}
}

func (c *Component) decorationField(d Decoration) **bool {
	switch d {
	case Bold:
		return &c.Bold
	case Italic:
		return &c.Italic
	case Underlined:
		return &c.Underlined
	case Strikethrough:
		return &c.Strikethrough
	case Obfuscated:
		return &c.Obfuscated
	}
	return nil
}

// Decoration returns the state of d.
func (c *Component) Decoration(d Decoration) DecorationState {
	field := c.decorationField(d)
	if field == nil || *field == nil {
		return Unset
	}
	if **field {
		return True
	}
	return False
}

// Decorate sets d to value.
func (c *Component) Decorate(d Decoration, value bool) *Component {
	if field := c.decorationField(d); field != nil {
		*field = Bool(value)
	}
	return c
}

// IsEmpty reports whether no property at all is set.
func (c *Component) IsEmpty() bool {
	return c.Text == nil && len(c.Extra) == 0 && c.isStyleless()
}

// IsOnlyText reports whether nothing but Text is set. An empty
// component is only text.
func (c *Component) IsOnlyText() bool {
	return len(c.Extra) == 0 && c.isStyleless()
}

// isOnlyExtra reports whether Extra is the sole property.
func (c *Component) isOnlyExtra() bool {
	return c.Text == nil && len(c.Extra) > 0 && c.isStyleless()
}

func (c *Component) isStyleless() bool {
	return c.Color == nil &&
		c.Bold == nil && c.Italic == nil && c.Underlined == nil &&
		c.Strikethrough == nil && c.Obfuscated == nil &&
		c.ClickEvent == nil && c.HoverEvent == nil &&
		c.Keybind == nil && c.Translate == nil && c.With == nil &&
		c.Selector == nil && c.Score == nil &&
		c.Insertion == nil && c.Font == nil &&
		c.NBT == nil && c.Block == nil && c.Entity == nil && c.Storage == nil &&
		c.Interpret == nil && c.Separator == nil
}

// AppendChild appends child. A pure text child is stored as a bare
// string, and dropped when its text is empty. A string goes to Text if
// the component is still completely empty.
func (c *Component) AppendChild(child Child) *Component {
	if sub := child.Component(); sub != nil && sub.IsOnlyText() {
		if sub.TextValue() == "" {
			return c
		}
		child = TextChild(sub.TextValue())
	}
	if child.IsText() && c.IsEmpty() {
		c.Text = String(child.Text())
		return c
	}
	c.Extra = append(c.Extra, child)
	return c
}

// AppendText appends a string child.
func (c *Component) AppendText(text string) *Component {
	return c.AppendChild(TextChild(text))
}

// Append appends a component child.
func (c *Component) Append(sub *Component) *Component {
	return c.AppendChild(ComponentChild(sub))
}

// ContentLength counts the characters of Text and, unless noChildren,
// of every descendant.
func (c *Component) ContentLength(noChildren bool) int {
	n := utf8.RuneCountInString(c.TextValue())
	if noChildren {
		return n
	}
	for _, child := range c.Extra {
		n += child.ContentLength()
	}
	return n
}

// Clone returns a deep copy.
func (c *Component) Clone() *Component {
	if c == nil {
		return nil
	}
	out := *c
	out.Color = cloneString(c.Color)
	out.Text = cloneString(c.Text)
	out.Bold = cloneBool(c.Bold)
	out.Italic = cloneBool(c.Italic)
	out.Underlined = cloneBool(c.Underlined)
	out.Strikethrough = cloneBool(c.Strikethrough)
	out.Obfuscated = cloneBool(c.Obfuscated)
	if c.ClickEvent != nil {
		ev := *c.ClickEvent
		out.ClickEvent = &ev
	}
	if c.HoverEvent != nil {
		ev := *c.HoverEvent
		out.HoverEvent = &ev
	}
	if c.Score != nil {
		s := *c.Score
		out.Score = &s
	}
	out.Keybind = cloneString(c.Keybind)
	out.Translate = cloneString(c.Translate)
	if c.With != nil {
		out.With = append([]string(nil), c.With...)
	}
	out.Selector = cloneString(c.Selector)
	out.Insertion = cloneString(c.Insertion)
	out.Font = cloneString(c.Font)
	out.NBT = cloneString(c.NBT)
	out.Block = cloneString(c.Block)
	out.Entity = cloneString(c.Entity)
	out.Storage = cloneString(c.Storage)
	out.Interpret = cloneBool(c.Interpret)
	out.Separator = cloneString(c.Separator)
	if c.Extra != nil {
		out.Extra = make([]Child, len(c.Extra))
		for i, child := range c.Extra {
			out.Extra[i] = child.clone()
		}
	}
	return &out
}

func cloneString(s *string) *string {
	if s == nil {
		return nil
	}
	return String(*s)
}

func cloneBool(b *bool) *bool {
	if b == nil {
		return nil
	}
	return Bool(*b)
}
