package tag

import "github.com/arthur-debert/minimessage/pkg/markup"

// Resolver recognizes tag names and turns them into tags.
type Resolver interface {
	// Has reports whether the resolver handles tags called name.
	Has(name string) bool

	// Resolve returns the tag for name and its arguments, or nil when the
	// arguments are unusable.
	Resolve(name string, args *markup.ArgumentQueue, ctx Context) Tag
}

// HandlerFunc resolves the arguments of a single named tag.
type HandlerFunc func(args *markup.ArgumentQueue, ctx Context) Tag

type namedResolver struct {
	name    string
	handler HandlerFunc
}

func (r namedResolver) Has(name string) bool {
	return name == r.name
}

func (r namedResolver) Resolve(name string, args *markup.ArgumentQueue, ctx Context) Tag {
	if name != r.name {
		return nil
	}
	return r.handler(args, ctx)
}

// composite tries its members in order. The first non nil result from a
// member that has the name wins.
type composite struct {
	resolvers []Resolver
}

func (c composite) Has(name string) bool {
	for _, r := range c.resolvers {
		if r.Has(name) {
			return true
		}
	}
	return false
}

func (c composite) Resolve(name string, args *markup.ArgumentQueue, ctx Context) Tag {
	for _, r := range c.resolvers {
		if !r.Has(name) {
			continue
		}
		args.Reset()
		if t := r.Resolve(name, args, ctx); t != nil {
			return t
		}
	}
	return nil
}

// Builder assembles a composite Resolver.
type Builder struct {
	resolvers []Resolver
}

// NewBuilder returns an empty Builder.
func NewBuilder() *Builder {
	return &Builder{}
}

// Resolver appends r.
func (b *Builder) Resolver(r Resolver) *Builder {
	b.resolvers = append(b.resolvers, r)
	return b
}

// Resolvers appends every resolver of rs.
func (b *Builder) Resolvers(rs ...Resolver) *Builder {
	b.resolvers = append(b.resolvers, rs...)
	return b
}

// Tag makes name always resolve to t.
func (b *Builder) Tag(name string, t Tag) *Builder {
	return b.TagFunc(name, func(*markup.ArgumentQueue, Context) Tag { return t })
}

// TagFunc makes name resolve through fn.
func (b *Builder) TagFunc(name string, fn HandlerFunc) *Builder {
	return b.Resolver(namedResolver{name: name, handler: fn})
}

// Build returns the composite of everything added so far. Later calls
// on the builder do not affect it.
func (b *Builder) Build() Resolver {
	return composite{resolvers: append([]Resolver(nil), b.resolvers...)}
}

// Empty returns a Resolver that has no tags.
func Empty() Resolver {
	return composite{}
}
