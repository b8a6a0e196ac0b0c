// Package markup turns markup text into a stream of structural events
// and keeps track of the tags that are currently open.
//
// The grammar is XML-like but deliberately lenient:
//
//	<name>  <name:arg1:arg2>  </name>  <name/>  <name:arg/>
//
// A backslash forces the following character to be taken literally.
package markup

import "strings"

const (
	tagOpen  = '<'
	tagClose = '>'
	escape   = '\\'
	slash    = '/'
)

// Handler receives tokenizer events in input order.
type Handler func(Event)

// Tokenizer is a single pass character scanner. Feed it with Parse as
// many times as needed and call Flush once at the end of input.
type Tokenizer struct {
	handler    Handler
	buffer     strings.Builder
	readingTag bool
	escaped    bool
	location   int
}

// NewTokenizer returns a tokenizer that reports to handler.
func NewTokenizer(handler Handler) *Tokenizer {
	return &Tokenizer{handler: handler}
}

// Tokenize scans a complete input and returns its events.
func Tokenize(input string) []Event {
	var events []Event
	t := NewTokenizer(func(e Event) { events = append(events, e) })
	t.Parse(input)
	t.Flush()
	return events
}

// Location returns the number of characters consumed so far.
func (t *Tokenizer) Location() int {
	return t.location
}

// Parse consumes a chunk of markup.
func (t *Tokenizer) Parse(input string) {
	for _, r := range input {
		t.parseRune(r)
		t.location++
	}
}

func (t *Tokenizer) parseRune(r rune) {
	if t.escaped {
		t.escaped = false
		// Tag bodies keep the escape so that arguments can tell a
		// literal separator from a real one.
		if t.readingTag && (r == ArgumentSeparator || r == escape) {
			t.buffer.WriteRune(escape)
		}
		t.buffer.WriteRune(r)
		return
	}

	switch r {
	case escape:
		t.escaped = true
	case tagOpen:
		if t.readingTag {
			// tags do not nest lexically
			t.buffer.WriteRune(r)
			return
		}
		t.flushText()
		t.readingTag = true
	case tagClose:
		if !t.readingTag {
			t.buffer.WriteRune(r)
			return
		}
		t.flushTag()
	default:
		t.buffer.WriteRune(r)
	}
}

// Flush emits whatever is buffered. An unterminated tag is emitted as
// literal text, including its opening bracket, with its escapes consumed.
func (t *Tokenizer) Flush() {
	if t.readingTag {
		content := string(tagOpen) + unescape(t.buffer.String())
		t.readingTag = false
		t.buffer.Reset()
		t.emit(TextEvent{Content: content, Offset: t.location})
		return
	}
	t.flushText()
}

func (t *Tokenizer) flushText() {
	if t.buffer.Len() == 0 {
		return
	}
	content := t.buffer.String()
	t.buffer.Reset()
	t.emit(TextEvent{Content: content, Offset: t.location})
}

func (t *Tokenizer) flushTag() {
	body := t.buffer.String()
	t.buffer.Reset()
	t.readingTag = false

	if body == "" {
		t.emit(TextEvent{Content: "<>", Offset: t.location})
		return
	}

	if body[0] == slash {
		t.emit(EndTagEvent{Name: unescape(body[1:]), Offset: t.location})
		return
	}

	selfClosing := body[len(body)-1] == slash
	if selfClosing {
		body = body[:len(body)-1]
	}

	name, tail, hasArgs := splitTagBody(body)
	args := EmptyArguments
	if hasArgs {
		args = NewArgumentQueue(tail)
	}
	t.emit(StartTagEvent{
		Name:        name,
		Args:        args,
		SelfClosing: selfClosing,
		Offset:      t.location,
	})
}

func (t *Tokenizer) emit(e Event) {
	if t.handler != nil {
		t.handler(e)
	}
}

// unescape decodes the escapes retained in a tag body.
func unescape(body string) string {
	if !strings.ContainsRune(body, escape) {
		return body
	}
	var sb strings.Builder
	for i := 0; i < len(body); i++ {
		if body[i] == escape && i+1 < len(body) {
			i++
		}
		sb.WriteByte(body[i])
	}
	return sb.String()
}

// splitTagBody splits at the first unescaped separator. The name is
// returned with its escapes decoded; the tail is left for ArgumentQueue.
func splitTagBody(body string) (name, tail string, hasArgs bool) {
	var sb strings.Builder
	for i := 0; i < len(body); i++ {
		c := body[i]
		if c == escape && i+1 < len(body) {
			sb.WriteByte(body[i+1])
			i++
			continue
		}
		if c == ArgumentSeparator {
			return sb.String(), body[i+1:], i+1 < len(body)
		}
		sb.WriteByte(c)
	}
	return sb.String(), "", false
}
