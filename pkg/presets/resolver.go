package presets

import (
	"github.com/arthur-debert/minimessage/pkg/component"
	"github.com/arthur-debert/minimessage/pkg/markup"
	"github.com/arthur-debert/minimessage/pkg/registry"
	"github.com/arthur-debert/minimessage/pkg/tag"
)

// Resolver resolves preset names.
type Resolver struct {
	presets registry.Registry[Preset]
}

var _ tag.Resolver = (*Resolver)(nil)

// Resolver returns a tag.Resolver for the presets of f.
func (f *File) Resolver() (*Resolver, error) {
	reg := registry.New[Preset]()
	for name, p := range f.Tags {
		if err := reg.Register(name, p); err != nil {
			return nil, err
		}
	}
	return &Resolver{presets: reg}, nil
}

// Names lists the preset names, sorted.
func (r *Resolver) Names() []string {
	return r.presets.List()
}

func (r *Resolver) Has(name string) bool {
	return r.presets.Has(name)
}

func (r *Resolver) Resolve(name string, _ *markup.ArgumentQueue, _ tag.Context) tag.Tag {
	p, err := r.presets.Get(name)
	if err != nil {
		return nil
	}
	if p.IsPlaceholder() {
		c := component.NewText(*p.Text)
		p.Apply(c)
		return tag.Insert(c)
	}
	return tag.Style(p.Apply)
}
