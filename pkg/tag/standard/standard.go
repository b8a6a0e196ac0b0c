package standard

import (
	"strings"
	"sync"

	"github.com/arthur-debert/minimessage/pkg/component"
	"github.com/arthur-debert/minimessage/pkg/errors"
	"github.com/arthur-debert/minimessage/pkg/registry"
	"github.com/arthur-debert/minimessage/pkg/tag"
)

func Click() tag.Resolver        { return clickResolver{} }
func Color() tag.Resolver        { return colorResolver{} }
func Font() tag.Resolver         { return fontResolver }
func Gradient() tag.Resolver     { return gradientResolver{} }
func Hover() tag.Resolver        { return hoverResolver{} }
func Insertion() tag.Resolver    { return insertionResolver }
func Keybind() tag.Resolver      { return keybindResolver }
func Newline() tag.Resolver      { return newlineResolver }
func Rainbow() tag.Resolver      { return rainbowResolver{} }
func Reset() tag.Resolver        { return resetResolver{} }
func Score() tag.Resolver        { return scoreResolver }
func Selector() tag.Resolver     { return selectorResolver }
func Transition() tag.Resolver   { return transitionResolver{} }
func Translatable() tag.Resolver { return translatableResolver }

// Decorations handles every decoration and its aliases.
func Decorations() tag.Resolver {
	return newDecorationResolver(component.Decorations...)
}

// Decoration handles a single decoration and its aliases.
func Decoration(d component.Decoration) tag.Resolver {
	return newDecorationResolver(d)
}

// Defaults returns the tags every renderer can represent.
func Defaults() tag.Resolver {
	return tag.NewBuilder().
		Resolvers(
			Click(),
			Color(),
			Decorations(),
			Gradient(),
			Hover(),
			Insertion(),
			Newline(),
			Rainbow(),
			Reset(),
			Transition(),
		).
		Build()
}

// All returns every standard tag.
func All() tag.Resolver {
	return tag.NewBuilder().
		Resolvers(
			Click(),
			Color(),
			Decorations(),
			Font(),
			Gradient(),
			Hover(),
			Insertion(),
			Keybind(),
			Newline(),
			Rainbow(),
			Reset(),
			Score(),
			Selector(),
			Transition(),
			Translatable(),
		).
		Build()
}

var (
	catalogueOnce sync.Once
	catalogue     registry.Registry[tag.Resolver]
)

func loadCatalogue() registry.Registry[tag.Resolver] {
	catalogueOnce.Do(func() {
		catalogue = registry.New[tag.Resolver]()
		registry.MustRegister(catalogue, "defaults", Defaults())
		registry.MustRegister(catalogue, "all", All())
		registry.MustRegister(catalogue, "click", Click())
		registry.MustRegister(catalogue, "color", Color())
		registry.MustRegister(catalogue, "decorations", Decorations())
		for _, d := range component.Decorations {
			registry.MustRegister(catalogue, string(d), Decoration(d))
		}
		registry.MustRegister(catalogue, "font", Font())
		registry.MustRegister(catalogue, "gradient", Gradient())
		registry.MustRegister(catalogue, "hover", Hover())
		registry.MustRegister(catalogue, "insertion", Insertion())
		registry.MustRegister(catalogue, "keybind", Keybind())
		registry.MustRegister(catalogue, "newline", Newline())
		registry.MustRegister(catalogue, "rainbow", Rainbow())
		registry.MustRegister(catalogue, "reset", Reset())
		registry.MustRegister(catalogue, "score", Score())
		registry.MustRegister(catalogue, "selector", Selector())
		registry.MustRegister(catalogue, "transition", Transition())
		registry.MustRegister(catalogue, "translatable", Translatable())
	})
	return catalogue
}

// Names lists the catalogue names accepted by Named, sorted.
func Names() []string {
	return loadCatalogue().List()
}

// Named returns the resolver registered under name.
func Named(name string) (tag.Resolver, error) {
	r, err := loadCatalogue().Get(strings.ToLower(strings.TrimSpace(name)))
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrNotFound, "unknown tag set %q", name).
			WithDetail("known", Names())
	}
	return r, nil
}

// Combine composes the named resolvers in order.
func Combine(names ...string) (tag.Resolver, error) {
	b := tag.NewBuilder()
	for _, name := range names {
		r, err := Named(name)
		if err != nil {
			return nil, err
		}
		b.Resolver(r)
	}
	return b.Build(), nil
}
