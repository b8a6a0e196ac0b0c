package markup

import (
	"strconv"

	"github.com/arthur-debert/minimessage/pkg/errors"
)

// NoPosition marks an error or pop without a known input offset.
const NoPosition = -1

type stackEntry[D any] struct {
	name string
	data D
}

// Stack is a stack of open tags keyed by tag name.
type Stack[D any] struct {
	entries []stackEntry[D]
}

// NewStack returns an empty stack.
func NewStack[D any]() *Stack[D] {
	return &Stack[D]{}
}

// Len returns the number of open entries.
func (s *Stack[D]) Len() int {
	return len(s.entries)
}

// Push opens a tag.
func (s *Stack[D]) Push(name string, data D) {
	s.entries = append(s.entries, stackEntry[D]{name: name, data: data})
}

// Peek returns the data of the most recently opened tag.
func (s *Stack[D]) Peek() (D, bool) {
	if len(s.entries) == 0 {
		var zero D
		return zero, false
	}
	return s.entries[len(s.entries)-1].data, true
}

// PeekName returns the name of the most recently opened tag.
func (s *Stack[D]) PeekName() (string, bool) {
	if len(s.entries) == 0 {
		return "", false
	}
	return s.entries[len(s.entries)-1].name, true
}

// Contains reports whether a tag called name is open.
func (s *Stack[D]) Contains(name string) bool {
	for i := len(s.entries) - 1; i >= 0; i-- {
		if s.entries[i].name == name {
			return true
		}
	}
	return false
}

// Pop closes the most recent tag called name.
//
// In lenient mode entries above the match are discarded and, when no
// entry matches, the stack ends up empty and ok is false. In strict
// mode the first mismatching entry is an ErrMismatchedClose naming that
// entry, and an exhausted stack is an ErrUnmatchedClose naming name.
// position is reported in errors unless it is NoPosition.
func (s *Stack[D]) Pop(name string, strict bool, position int) (data D, ok bool, err error) {
	for len(s.entries) > 0 {
		top := s.entries[len(s.entries)-1]
		s.entries = s.entries[:len(s.entries)-1]
		if top.name == name {
			return top.data, true, nil
		}
		if strict {
			return data, false, errors.Newf(errors.ErrMismatchedClose,
				"expected matching end tag for start tag <%s>%s", top.name, at(position)).
				WithTag(top.name, position)
		}
	}
	if strict {
		return data, false, errors.Newf(errors.ErrUnmatchedClose,
			"expected matching start tag for end tag </%s>%s", name, at(position)).
			WithTag(name, position)
	}
	return data, false, nil
}

// PopTop closes the most recently opened tag whatever its name.
func (s *Stack[D]) PopTop() (name string, data D, ok bool) {
	if len(s.entries) == 0 {
		return "", data, false
	}
	top := s.entries[len(s.entries)-1]
	s.entries = s.entries[:len(s.entries)-1]
	return top.name, top.data, true
}

func at(position int) string {
	if position == NoPosition {
		return ""
	}
	return " @ " + strconv.Itoa(position)
}
