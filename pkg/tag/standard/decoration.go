package standard

import (
	"strings"

	"github.com/arthur-debert/minimessage/pkg/component"
	"github.com/arthur-debert/minimessage/pkg/markup"
	"github.com/arthur-debert/minimessage/pkg/tag"
)

var decorationAliases = map[component.Decoration][]string{
	component.Bold:          {"bold", "b"},
	component.Italic:        {"italic", "em", "i"},
	component.Underlined:    {"underlined", "u"},
	component.Strikethrough: {"strikethrough", "st"},
	component.Obfuscated:    {"obfuscated", "obf"},
}

// decorationResolver handles <bold>, <b:false>, <!italic> and friends.
type decorationResolver struct {
	names map[string]component.Decoration
}

func newDecorationResolver(decorations ...component.Decoration) decorationResolver {
	names := make(map[string]component.Decoration)
	for _, d := range decorations {
		for _, alias := range decorationAliases[d] {
			names[alias] = d
		}
	}
	return decorationResolver{names: names}
}

func (r decorationResolver) Has(name string) bool {
	_, ok := r.names[strings.TrimPrefix(name, "!")]
	return ok
}

func (r decorationResolver) Resolve(name string, args *markup.ArgumentQueue, _ tag.Context) tag.Tag {
	state := true
	if strings.HasPrefix(name, "!") {
		state = false
		name = name[1:]
	} else if arg, ok := args.Peek(); ok {
		state = arg.IsTrue()
	}

	d, ok := r.names[name]
	if !ok {
		return nil
	}
	return tag.Style(func(c *component.Component) { c.Decorate(d, state) })
}
