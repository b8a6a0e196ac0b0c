package markup

import "fmt"

// EventKind discriminates the Event union.
type EventKind int

const (
	KindText EventKind = iota
	KindStartTag
	KindEndTag
)

func (k EventKind) String() string {
	switch k {
	case KindText:
		return "text"
	case KindStartTag:
		return "start_tag"
	case KindEndTag:
		return "end_tag"
	}
	return fmt.Sprintf("EventKind(%d)", int(k))
}

// Event is one of TextEvent, StartTagEvent or EndTagEvent.
//
// Location is the absolute character offset at which the event was
// recognised: the offset of the closing '>' for tags, and the offset
// following the last character of a text run.
type Event interface {
	Kind() EventKind
	Location() int
	isEvent()
}

// TextEvent carries a run of literal text.
type TextEvent struct {
	Content string
	Offset  int
}

func (TextEvent) Kind() EventKind  { return KindText }
func (e TextEvent) Location() int  { return e.Offset }
func (TextEvent) isEvent()         {}
func (e TextEvent) String() string { return fmt.Sprintf("text %q @ %d", e.Content, e.Offset) }

// StartTagEvent opens a tag, or inserts one when SelfClosing is set.
type StartTagEvent struct {
	Name        string
	Args        *ArgumentQueue
	SelfClosing bool
	Offset      int
}

func (StartTagEvent) Kind() EventKind { return KindStartTag }
func (e StartTagEvent) Location() int { return e.Offset }
func (StartTagEvent) isEvent()        {}
func (e StartTagEvent) String() string {
	if e.SelfClosing {
		return fmt.Sprintf("<%s/> @ %d", e.Name, e.Offset)
	}
	return fmt.Sprintf("<%s> @ %d", e.Name, e.Offset)
}

// EndTagEvent closes the most recent tag of the same name.
type EndTagEvent struct {
	Name   string
	Offset int
}

func (EndTagEvent) Kind() EventKind  { return KindEndTag }
func (e EndTagEvent) Location() int  { return e.Offset }
func (EndTagEvent) isEvent()         {}
func (e EndTagEvent) String() string { return fmt.Sprintf("</%s> @ %d", e.Name, e.Offset) }
