package render

import (
	"encoding/json"
	"regexp"
	"strings"

	"github.com/beevik/etree"

	"github.com/arthur-debert/minimessage/pkg/colors"
	"github.com/arthur-debert/minimessage/pkg/component"
	"github.com/arthur-debert/minimessage/pkg/errors"
)

const neutralStyle = "font-weight: normal; text-decoration: none; filter: none;"

var upper = regexp.MustCompile(`[A-Z]`)

// dataKey turns a property name into its data attribute, e.g.
// clickEvent -> data-mm-click-event.
func dataKey(property string) string {
	return "data-mm-" + upper.ReplaceAllStringFunc(property, func(s string) string {
		return "-" + strings.ToLower(s)
	})
}

type dataAttr struct {
	key   string
	value interface{}
}

// dataAttributes lists the non-visual properties carried as JSON
// encoded data attributes, in output order.
func dataAttributes(c *component.Component) []dataAttr {
	var attrs []dataAttr
	add := func(key string, present bool, value interface{}) {
		if present {
			attrs = append(attrs, dataAttr{key, value})
		}
	}
	add("obfuscated", c.Obfuscated != nil, c.Obfuscated)
	add("clickEvent", c.ClickEvent != nil, c.ClickEvent)
	add("hoverEvent", c.HoverEvent != nil, c.HoverEvent)
	add("keybind", c.Keybind != nil, c.Keybind)
	add("translate", c.Translate != nil, c.Translate)
	add("with", c.With != nil, c.With)
	add("selector", c.Selector != nil, c.Selector)
	add("score", c.Score != nil, c.Score)
	add("insertion", c.Insertion != nil, c.Insertion)
	add("font", c.Font != nil, c.Font)
	add("nbt", c.NBT != nil, c.NBT)
	add("block", c.Block != nil, c.Block)
	add("entity", c.Entity != nil, c.Entity)
	add("storage", c.Storage != nil, c.Storage)
	add("interpret", c.Interpret != nil, c.Interpret)
	add("separator", c.Separator != nil, c.Separator)
	return attrs
}

func cssFor(c *component.Component) string {
	var rules []string
	if color, ok := c.ColorValue(); ok && color != "" {
		rules = append(rules, "color: "+colors.Map(color)+";")
	}

	anyFalse, anyTrue := false, false
	visual := []struct {
		d    component.Decoration
		rule string
	}{
		{component.Bold, "font-weight: bold;"},
		{component.Italic, "font-style: italic;"},
		{component.Underlined, "text-decoration: underline;"},
		{component.Strikethrough, "text-decoration: line-through;"},
	}
	for _, v := range visual {
		switch c.Decoration(v.d) {
		case component.True:
			anyTrue = true
			rules = append(rules, v.rule)
		case component.False:
			anyFalse = true
		}
	}
	if anyFalse && !anyTrue {
		rules = append(rules, neutralStyle)
	}
	return strings.Join(rules, " ")
}

func writeSpan(parent *etree.Element, c *component.Component) error {
	span := parent.CreateElement("span")
	if css := cssFor(c); css != "" {
		span.CreateAttr("style", css)
	}
	for _, a := range dataAttributes(c) {
		data, err := json.Marshal(a.value)
		if err != nil {
			return errors.Wrapf(err, errors.ErrRender, "failed to encode %s", a.key)
		}
		span.CreateAttr(dataKey(a.key), string(data))
	}

	if text := c.TextValue(); text != "" {
		span.CreateText(text)
	}
	for _, child := range c.Extra {
		if child.IsText() {
			span.CreateText(child.Text())
			continue
		}
		if err := writeSpan(span, child.Component()); err != nil {
			return err
		}
	}
	return nil
}

// HTML renders c as nested span elements. Visual properties become a
// style attribute; the others are kept as data-mm-* attributes.
func HTML(c *component.Component) (string, error) {
	doc := etree.NewDocument()
	if err := writeSpan(&doc.Element, c); err != nil {
		return "", err
	}
	out, err := doc.WriteToString()
	if err != nil {
		return "", errors.Wrap(err, errors.ErrRender, "failed to write HTML")
	}
	return out, nil
}
