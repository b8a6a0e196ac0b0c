package minimessage

import (
	"maps"
	"sync"

	"github.com/rs/zerolog"

	"github.com/arthur-debert/minimessage/pkg/component"
	"github.com/arthur-debert/minimessage/pkg/logging"
	"github.com/arthur-debert/minimessage/pkg/tag"
	"github.com/arthur-debert/minimessage/pkg/tag/standard"
)

// PreProcessor rewrites the markup before it is tokenized.
type PreProcessor func(markup string) string

// PostProcessor rewrites the finished tree. A nil result keeps the tree.
type PostProcessor func(c *component.Component) *component.Component

// DebugFunc receives a trace line for every parsing step.
type DebugFunc func(message string)

// Builder configures a Deserializer.
type Builder struct {
	debug        DebugFunc
	post         PostProcessor
	pre          PreProcessor
	strict       bool
	tags         tag.Resolver
	translations map[string]string
	logger       *zerolog.Logger
}

// NewBuilder returns a Builder with the default tags, lenient mode and
// no hooks.
func NewBuilder() *Builder {
	return &Builder{translations: map[string]string{}}
}

// Debug forwards trace lines to fn.
func (b *Builder) Debug(fn DebugFunc) *Builder {
	b.debug = fn
	return b
}

// PostProcessor runs fn on every finished tree.
func (b *Builder) PostProcessor(fn PostProcessor) *Builder {
	b.post = fn
	return b
}

// PreProcessor runs fn on every input.
func (b *Builder) PreProcessor(fn PreProcessor) *Builder {
	b.pre = fn
	return b
}

// Strict turns malformed markup into errors.
func (b *Builder) Strict(strict bool) *Builder {
	b.strict = strict
	return b
}

// Tags replaces the tag resolvers.
func (b *Builder) Tags(r tag.Resolver) *Builder {
	b.tags = r
	return b
}

// Translations merges entries into the translation table.
func (b *Builder) Translations(entries map[string]string) *Builder {
	maps.Copy(b.translations, entries)
	return b
}

// Logger replaces the logger used for tracing.
func (b *Builder) Logger(logger zerolog.Logger) *Builder {
	b.logger = &logger
	return b
}

// Build returns a Deserializer. The builder may be reused afterwards.
func (b *Builder) Build() *Deserializer {
	d := &Deserializer{
		debug:        b.debug,
		post:         b.post,
		pre:          b.pre,
		strict:       b.strict,
		tags:         b.tags,
		translations: maps.Clone(b.translations),
	}
	if d.tags == nil {
		d.tags = standard.Defaults()
	}
	if b.logger != nil {
		d.logger = *b.logger
	} else {
		d.logger = logging.GetLogger("minimessage")
	}
	return d
}

var (
	defaultOnce sync.Once
	defaultInst *Deserializer
)

// Default returns the shared lenient Deserializer with the default tags.
func Default() *Deserializer {
	defaultOnce.Do(func() {
		defaultInst = NewBuilder().Build()
	})
	return defaultInst
}

// Deserialize parses input with the Default deserializer.
func Deserialize(input string) (*component.Component, error) {
	return Default().Deserialize(input)
}
