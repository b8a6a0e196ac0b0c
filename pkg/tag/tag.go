// Package tag defines what a markup tag does to the component tree and
// the protocol through which tag names are resolved.
//
// A resolved tag is one of three kinds:
//
//   - InsertTag splices a ready made component into the tree.
//   - ModifyTag wraps everything up to its closing tag and transforms it.
//   - DirectiveTag acts on the open tags themselves (Reset closes them all).
package tag

import (
	"fmt"

	"github.com/arthur-debert/minimessage/pkg/component"
)

// Kind discriminates the Tag union.
type Kind int

const (
	KindInsert Kind = iota
	KindModify
	KindDirective
)

func (k Kind) String() string {
	switch k {
	case KindInsert:
		return "INSERT"
	case KindModify:
		return "MODIFY"
	case KindDirective:
		return "DIRECTIVE"
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// Tag is one of InsertTag, ModifyTag or DirectiveTag.
type Tag interface {
	Kind() Kind
	isTag()
}

// InsertTag places Value into the tree as soon as the tag is opened.
// SelfClosing and AllowsChildren describe the tag to callers; the
// deserializer always splices Value immediately and never reads them.
type InsertTag struct {
	Value          *component.Component
	SelfClosing    bool
	AllowsChildren bool
}

func (InsertTag) Kind() Kind { return KindInsert }
func (InsertTag) isTag()     {}

// ModifyFunc transforms the component built from a tag's children. A
// nil result keeps the component it was given.
type ModifyFunc func(c *component.Component) *component.Component

// ModifyTag collects children until it is closed and then applies itself
// to the component holding them.
type ModifyTag struct {
	fn ModifyFunc
}

func (ModifyTag) Kind() Kind { return KindModify }
func (ModifyTag) isTag()     {}

// Apply runs the modification and returns the resulting component.
func (t ModifyTag) Apply(c *component.Component) *component.Component {
	if t.fn == nil {
		return c
	}
	if out := t.fn(c); out != nil {
		return out
	}
	return c
}

// DirectiveKind enumerates directives.
type DirectiveKind int

const (
	// Reset closes every open tag.
	Reset DirectiveKind = iota
)

func (d DirectiveKind) String() string {
	if d == Reset {
		return "RESET"
	}
	return fmt.Sprintf("DirectiveKind(%d)", int(d))
}

// DirectiveTag asks the deserializer to act on its stack of open tags.
type DirectiveTag struct {
	Directive DirectiveKind
}

func (DirectiveTag) Kind() Kind { return KindDirective }
func (DirectiveTag) isTag()     {}

// Insert returns a self closing InsertTag for value.
func Insert(value *component.Component) InsertTag {
	return InsertTag{Value: value, SelfClosing: true}
}

// InsertWithChildren returns an InsertTag that may be followed by
// children and a closing tag.
func InsertWithChildren(value *component.Component) InsertTag {
	return InsertTag{Value: value, AllowsChildren: true}
}

// Modify returns a ModifyTag running fn.
func Modify(fn ModifyFunc) ModifyTag {
	return ModifyTag{fn: fn}
}

// Style returns a ModifyTag that edits the component in place.
func Style(fn func(c *component.Component)) ModifyTag {
	return Modify(func(c *component.Component) *component.Component {
		fn(c)
		return c
	})
}

// Identity is the ModifyTag that changes nothing. Unresolved tags in
// lenient mode behave like it.
func Identity() ModifyTag {
	return ModifyTag{}
}

// Directive returns a DirectiveTag.
func Directive(kind DirectiveKind) DirectiveTag {
	return DirectiveTag{Directive: kind}
}
