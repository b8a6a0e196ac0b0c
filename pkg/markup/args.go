package markup

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/arthur-debert/minimessage/pkg/errors"
)

// ArgumentSeparator splits a tag name from its arguments and the arguments from each other.
const ArgumentSeparator = ':'

var (
	floatPrefix = regexp.MustCompile(`^[+-]?(?:\d+\.?\d*|\.\d+)(?:[eE][+-]?\d+)?`)
	intPrefix   = regexp.MustCompile(`^[+-]?\d+`)
)

// Argument is one parameter of a tag.
type Argument struct {
	value string
}

// NewArgument wraps a raw parameter string.
func NewArgument(value string) Argument {
	return Argument{value: value}
}

// Value returns the raw parameter.
func (a Argument) Value() string {
	return a.value
}

// Lower returns the parameter in lower case.
func (a Argument) Lower() string {
	return strings.ToLower(a.value)
}

// Float parses the longest numeric prefix of the parameter, ignoring
// leading whitespace. "12px" yields 12.
func (a Argument) Float() (float64, bool) {
	s := strings.TrimLeft(a.value, " \t\n\r")
	m := floatPrefix.FindString(s)
	if m == "" {
		return 0, false
	}
	f, err := strconv.ParseFloat(m, 64)
	if err != nil {
		return 0, false
	}
	return f, true
}

// Int parses the longest base 10 integer prefix of the parameter.
func (a Argument) Int() (int, bool) {
	s := strings.TrimLeft(a.value, " \t\n\r")
	m := intPrefix.FindString(s)
	if m == "" {
		return 0, false
	}
	n, err := strconv.Atoi(m)
	if err != nil {
		return 0, false
	}
	return n, true
}

// IsTrue coerces the parameter to a boolean. The usual spellings of
// true and false are recognised; any other non-empty value is true.
func (a Argument) IsTrue() bool {
	switch a.Lower() {
	case "true", "1", "yes", "on":
		return true
	case "false", "0", "no", "off":
		return false
	default:
		return a.value != ""
	}
}

// IsFalse is the negation of IsTrue.
func (a Argument) IsFalse() bool {
	return !a.IsTrue()
}

// String implements fmt.Stringer.
func (a Argument) String() string {
	return a.value
}

// ArgumentQueue reads the colon separated parameters of one tag. A
// backslash escapes a separator or another backslash.
type ArgumentQueue struct {
	data string
	head int
}

// EmptyArguments is shared by every tag without parameters. Nothing
// can be popped from it so it never changes.
var EmptyArguments = &ArgumentQueue{}

// NewArgumentQueue returns a queue over the raw argument tail of a tag.
func NewArgumentQueue(data string) *ArgumentQueue {
	if data == "" {
		return EmptyArguments
	}
	return &ArgumentQueue{data: data}
}

// Raw returns the unparsed argument tail.
func (q *ArgumentQueue) Raw() string {
	return q.data
}

// Reset rewinds the queue to its first argument.
func (q *ArgumentQueue) Reset() {
	if q.head != 0 {
		q.head = 0
	}
}

// HasNext reports whether another argument can be popped.
func (q *ArgumentQueue) HasNext() bool {
	return q.head < len(q.data)
}

// Peek returns the next argument without consuming it.
func (q *ArgumentQueue) Peek() (Argument, bool) {
	if !q.HasNext() {
		return Argument{}, false
	}
	arg, _ := q.scan()
	return arg, true
}

// Pop consumes the next argument.
func (q *ArgumentQueue) Pop() (Argument, error) {
	if !q.HasNext() {
		return Argument{}, errors.New(errors.ErrArgumentsExhausted, "cannot pop argument queue (no more data)")
	}
	arg, next := q.scan()
	q.head = next
	return arg, nil
}

// Rest pops every remaining argument.
func (q *ArgumentQueue) Rest() []Argument {
	var out []Argument
	for q.HasNext() {
		arg, next := q.scan()
		q.head = next
		out = append(out, arg)
	}
	return out
}

// scan reads from head up to the next unescaped separator and returns
// the decoded argument together with the offset following the separator.
func (q *ArgumentQueue) scan() (Argument, int) {
	var sb strings.Builder
	i := q.head
	for i < len(q.data) {
		c := q.data[i]
		if c == '\\' && i+1 < len(q.data) && (q.data[i+1] == ArgumentSeparator || q.data[i+1] == '\\') {
			sb.WriteByte(q.data[i+1])
			i += 2
			continue
		}
		if c == ArgumentSeparator {
			break
		}
		sb.WriteByte(c)
		i++
	}
	return Argument{value: sb.String()}, i + 1
}
