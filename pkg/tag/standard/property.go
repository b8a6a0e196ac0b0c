package standard

import (
	"slices"

	"github.com/arthur-debert/minimessage/pkg/component"
	"github.com/arthur-debert/minimessage/pkg/markup"
	"github.com/arthur-debert/minimessage/pkg/tag"
)

// propertyResolver sets a single string property from the first argument.
type propertyResolver struct {
	names []string
	set   func(c *component.Component, value string)
}

func (r propertyResolver) Has(name string) bool {
	return slices.Contains(r.names, name)
}

func (r propertyResolver) Resolve(_ string, args *markup.ArgumentQueue, _ tag.Context) tag.Tag {
	arg, err := args.Pop()
	if err != nil {
		return nil
	}
	value := arg.Value()
	return tag.Style(func(c *component.Component) { r.set(c, value) })
}

var (
	fontResolver = propertyResolver{
		names: []string{"font"},
		set:   func(c *component.Component, v string) { c.Font = component.String(v) },
	}
	insertionResolver = propertyResolver{
		names: []string{"insertion", "insert"},
		set:   func(c *component.Component, v string) { c.Insertion = component.String(v) },
	}
	selectorResolver = propertyResolver{
		names: []string{"selector", "sel"},
		set:   func(c *component.Component, v string) { c.Selector = component.String(v) },
	}
)
