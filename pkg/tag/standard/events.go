package standard

import (
	"slices"

	"github.com/arthur-debert/minimessage/pkg/component"
	"github.com/arthur-debert/minimessage/pkg/markup"
	"github.com/arthur-debert/minimessage/pkg/tag"
)

// popAction reads a lower cased action that must be one of allowed,
// followed by its value.
func popAction(args *markup.ArgumentQueue, allowed []string) (action, value string, ok bool) {
	arg, err := args.Pop()
	if err != nil {
		return "", "", false
	}
	action = arg.Lower()
	if !slices.Contains(allowed, action) {
		return "", "", false
	}
	arg, err = args.Pop()
	if err != nil {
		return "", "", false
	}
	return action, arg.Value(), true
}

// clickResolver handles <click:action:value>.
type clickResolver struct{}

func (clickResolver) Has(name string) bool { return name == "click" }

func (clickResolver) Resolve(_ string, args *markup.ArgumentQueue, _ tag.Context) tag.Tag {
	action, value, ok := popAction(args, component.ClickActions)
	if !ok {
		return nil
	}
	return tag.Style(func(c *component.Component) {
		c.ClickEvent = &component.ClickEvent{Action: action, Value: value}
	})
}

// hoverResolver handles <hover:action:contents>. The action is checked
// against the hover actions.
type hoverResolver struct{}

func (hoverResolver) Has(name string) bool { return name == "hover" }

func (hoverResolver) Resolve(_ string, args *markup.ArgumentQueue, _ tag.Context) tag.Tag {
	action, contents, ok := popAction(args, component.HoverActions)
	if !ok {
		return nil
	}
	return tag.Style(func(c *component.Component) {
		c.HoverEvent = &component.HoverEvent{Action: action, Contents: contents}
	})
}
