package standard

import (
	"slices"

	"github.com/arthur-debert/minimessage/pkg/component"
	"github.com/arthur-debert/minimessage/pkg/markup"
	"github.com/arthur-debert/minimessage/pkg/tag"
)

// insertResolver builds a fresh component for every resolution, so a
// tree never shares nodes with another.
type insertResolver struct {
	names []string
	build func(args *markup.ArgumentQueue) *component.Component
}

func (r insertResolver) Has(name string) bool {
	return slices.Contains(r.names, name)
}

func (r insertResolver) Resolve(_ string, args *markup.ArgumentQueue, _ tag.Context) tag.Tag {
	c := r.build(args)
	if c == nil {
		return nil
	}
	return tag.Insert(c)
}

var keybindResolver = insertResolver{
	names: []string{"key"},
	build: func(args *markup.ArgumentQueue) *component.Component {
		arg, err := args.Pop()
		if err != nil {
			return nil
		}
		c := component.New()
		c.Keybind = component.String(arg.Value())
		return c
	},
}

var newlineResolver = insertResolver{
	names: []string{"newline", "br"},
	build: func(*markup.ArgumentQueue) *component.Component {
		return component.NewText("\n")
	},
}

var scoreResolver = insertResolver{
	names: []string{"score"},
	build: func(args *markup.ArgumentQueue) *component.Component {
		name, err := args.Pop()
		if err != nil {
			return nil
		}
		objective, err := args.Pop()
		if err != nil {
			return nil
		}
		c := component.New()
		c.Score = &component.Score{Name: name.Value(), Objective: objective.Value()}
		return c
	},
}

var translatableResolver = insertResolver{
	names: []string{"lang", "tr", "translate"},
	build: func(args *markup.ArgumentQueue) *component.Component {
		key, err := args.Pop()
		if err != nil {
			return nil
		}
		c := component.New()
		c.Translate = component.String(key.Value())
		for _, arg := range args.Rest() {
			c.With = append(c.With, arg.Value())
		}
		return c
	},
}

// resetResolver handles <reset>.
type resetResolver struct{}

func (resetResolver) Has(name string) bool { return name == "reset" }

func (resetResolver) Resolve(string, *markup.ArgumentQueue, tag.Context) tag.Tag {
	return tag.Directive(tag.Reset)
}
