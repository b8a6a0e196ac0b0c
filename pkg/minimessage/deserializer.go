package minimessage

import (
	stderrors "errors"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/arthur-debert/minimessage/pkg/component"
	"github.com/arthur-debert/minimessage/pkg/errors"
	"github.com/arthur-debert/minimessage/pkg/markup"
	"github.com/arthur-debert/minimessage/pkg/tag"
)

// Deserializer turns markup into component trees. It also serves as
// the tag.Context handed to resolvers.
type Deserializer struct {
	debug        DebugFunc
	post         PostProcessor
	pre          PreProcessor
	strict       bool
	tags         tag.Resolver
	translations map[string]string
	logger       zerolog.Logger
}

var _ tag.Context = (*Deserializer)(nil)

// Strict reports whether malformed markup is an error.
func (d *Deserializer) Strict() bool {
	return d.strict
}

// Translations returns the translation table. Callers must not modify it.
func (d *Deserializer) Translations() map[string]string {
	return d.translations
}

// Tags returns the configured resolvers.
func (d *Deserializer) Tags() tag.Resolver {
	return d.tags
}

// openTag is a Modify tag waiting for its end tag, with the children
// collected so far.
type openTag struct {
	modify   tag.ModifyTag
	children []component.Child
	position int
}

// session holds the state of one Deserialize call.
type session struct {
	*Deserializer
	root  *component.Component
	stack *markup.Stack[*openTag]
}

// Deserialize parses input into a component tree.
//
// In lenient mode malformed markup is recovered from: unknown tags wrap
// their children unchanged, stray end tags are ignored, end tags close
// every tag opened after their match, and tags left open at the end of
// the input are closed. In strict mode each of these is an error
// carrying the tag name and, where known, its position.
func (d *Deserializer) Deserialize(input string) (*component.Component, error) {
	if d.pre != nil {
		input = d.pre(input)
	}

	s := &session{
		Deserializer: d,
		root:         component.New(),
		stack:        markup.NewStack[*openTag](),
	}

	for _, event := range markup.Tokenize(input) {
		if err := s.handle(event); err != nil {
			d.logger.Debug().Err(err).Msg("deserialization failed")
			return nil, err
		}
	}

	if err := s.closeRemaining(); err != nil {
		d.logger.Debug().Err(err).Msg("deserialization failed")
		return nil, err
	}

	s.root.CollapseUnnecessaryEnclosures()

	out := s.root
	if d.post != nil {
		if processed := d.post(out); processed != nil {
			out = processed
		}
	}
	return out, nil
}

func (s *session) handle(event markup.Event) error {
	switch e := event.(type) {
	case markup.TextEvent:
		s.tracef("Parsing text %s @ %d", e.Content, e.Offset)
		s.appendToHighest(component.TextChild(e.Content))
	case markup.StartTagEvent:
		return s.startTag(e)
	case markup.EndTagEvent:
		s.tracef("Parsing tag </%s> @ %d", e.Name, e.Offset)
		return s.endTag(e.Name, e.Offset)
	}
	return nil
}

func (s *session) startTag(e markup.StartTagEvent) error {
	s.tracef("Parsing tag <%s> @ %d", e.Name, e.Offset)

	resolved := s.resolve(e.Name, e.Args)
	if resolved == nil {
		if s.strict {
			return errors.Newf(errors.ErrUnresolvedTag, "no resolver for <%s> tag @ %d", e.Name, e.Offset).
				WithTag(e.Name, e.Offset)
		}
		s.tracef("- No resolver for <%s>", e.Name)
		s.stack.Push(e.Name, &openTag{modify: tag.Identity(), position: e.Offset})
		return nil
	}
	s.tracef("- Resolved: %s", resolved.Kind())

	switch t := resolved.(type) {
	case tag.InsertTag:
		if t.Value != nil {
			s.appendToHighest(component.ComponentChild(t.Value.Clone()))
		}
	case tag.ModifyTag:
		s.stack.Push(e.Name, &openTag{modify: t, position: e.Offset})
	case tag.DirectiveTag:
		if s.strict {
			return errors.Newf(errors.ErrDirectiveNotAllowed, "strict mode does not allow directives (%s)", t.Directive).
				WithTag(e.Name, e.Offset)
		}
		if t.Directive != tag.Reset {
			return errors.Newf(errors.ErrUnknownDirective, "unknown directive %s", t.Directive).
				WithTag(e.Name, e.Offset)
		}
		for s.stack.Len() > 0 {
			_, open, _ := s.stack.PopTop()
			s.finalize(open)
		}
	default:
		return errors.Newf(errors.ErrInternal, "unsupported tag type %T", resolved).WithTag(e.Name, e.Offset)
	}
	return nil
}

// resolve asks the resolvers for name, starting from the first argument.
func (s *session) resolve(name string, args *markup.ArgumentQueue) tag.Tag {
	if !s.tags.Has(name) {
		return nil
	}
	args.Reset()
	return s.tags.Resolve(name, args, s.Deserializer)
}

func (s *session) endTag(name string, position int) error {
	if s.strict {
		open, _, err := s.stack.Pop(name, true, position)
		if err != nil {
			return err
		}
		s.finalize(open)
		return nil
	}

	if !s.stack.Contains(name) {
		s.tracef("- No open tag for </%s>, ignored", name)
		return nil
	}
	for {
		top, open, _ := s.stack.PopTop()
		s.finalize(open)
		if top == name {
			return nil
		}
	}
}

// closeRemaining handles tags still open at the end of the input.
func (s *session) closeRemaining() error {
	if !s.strict {
		for s.stack.Len() > 0 {
			_, open, _ := s.stack.PopTop()
			s.finalize(open)
		}
		return nil
	}

	var errs []error
	for s.stack.Len() > 0 {
		name, open, _ := s.stack.PopTop()
		errs = append(errs, errors.Newf(errors.ErrUnterminatedTag, "tag <%s> was never closed", name).
			WithTag(name, open.position))
	}
	return stderrors.Join(errs...)
}

// finalize builds the component of a closed Modify tag from its
// children, applies the tag and hands the result to the enclosing tag.
func (s *session) finalize(open *openTag) {
	children := open.children
	var text string
	if len(children) > 0 {
		first := children[0]
		if sub := first.Component(); sub != nil && sub.IsOnlyText() {
			text = sub.TextValue()
			children = children[1:]
		} else if first.IsText() {
			text = first.Text()
			children = children[1:]
		}
	}

	c := component.New()
	if text != "" {
		c = component.NewText(text)
	}
	for _, child := range children {
		c.AppendChild(child)
	}
	s.appendToHighest(component.ComponentChild(open.modify.Apply(c)))
}

// appendToHighest appends to the innermost open tag, or the root.
func (s *session) appendToHighest(child component.Child) {
	if open, ok := s.stack.Peek(); ok {
		open.children = append(open.children, child)
		return
	}
	s.root.AppendChild(child)
}

// tracef logs a parsing step and forwards it to the debug callback,
// which must never abort parsing.
func (s *session) tracef(format string, args ...interface{}) {
	tracing := s.logger.GetLevel() <= zerolog.TraceLevel && zerolog.GlobalLevel() <= zerolog.TraceLevel
	if s.debug == nil && !tracing {
		return
	}
	message := fmt.Sprintf(format, args...)
	s.logger.Trace().Msg(message)
	if s.debug == nil {
		return
	}
	defer func() {
		if r := recover(); r != nil {
			s.logger.Error().Interface("panic", r).Str("message", message).Msg("Error in debug callback")
		}
	}()
	s.debug(message)
}
