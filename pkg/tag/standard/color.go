package standard

import (
	"github.com/arthur-debert/minimessage/pkg/colors"
	"github.com/arthur-debert/minimessage/pkg/component"
	"github.com/arthur-debert/minimessage/pkg/markup"
	"github.com/arthur-debert/minimessage/pkg/tag"
)

// colorResolver handles <color:c>, palette names used as tags (<red>)
// and hex colors used as tags (<#ff8800>).
type colorResolver struct{}

func (colorResolver) Has(name string) bool {
	return name == "color" || colors.IsNamed(name) || colors.IsHex(name)
}

func (colorResolver) Resolve(name string, args *markup.ArgumentQueue, _ tag.Context) tag.Tag {
	value := name
	if name == "color" {
		arg, err := args.Pop()
		if err != nil || arg.Value() == "" {
			return nil
		}
		value = arg.Lower()
	}
	return tag.Style(func(c *component.Component) { c.SetColor(value) })
}
