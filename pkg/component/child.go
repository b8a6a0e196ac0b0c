package component

import (
	"bytes"
	"encoding/json"
	"unicode/utf8"
)

// Child is an entry of Extra: either a bare string or a nested component.
type Child struct {
	text      string
	component *Component
}

// TextChild wraps a string.
func TextChild(text string) Child {
	return Child{text: text}
}

// ComponentChild wraps a component.
func ComponentChild(c *Component) Child {
	return Child{component: c}
}

// IsText reports whether the child is a bare string.
func (ch Child) IsText() bool {
	return ch.component == nil
}

// Text returns the string of a text child.
func (ch Child) Text() string {
	return ch.text
}

// Component returns the nested component, or nil for a text child.
func (ch Child) Component() *Component {
	return ch.component
}

// ContentLength counts the characters of the child including descendants.
func (ch Child) ContentLength() int {
	if ch.component == nil {
		return utf8.RuneCountInString(ch.text)
	}
	return ch.component.ContentLength(false)
}

func (ch Child) clone() Child {
	if ch.component == nil {
		return ch
	}
	return Child{component: ch.component.Clone()}
}

// MarshalJSON encodes a string child as a JSON string and a component
// child as an object.
func (ch Child) MarshalJSON() ([]byte, error) {
	if ch.component == nil {
		return json.Marshal(ch.text)
	}
	return json.Marshal(ch.component)
}

// UnmarshalJSON accepts either shape.
func (ch *Child) UnmarshalJSON(data []byte) error {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) > 0 && trimmed[0] == '"' {
		var s string
		if err := json.Unmarshal(trimmed, &s); err != nil {
			return err
		}
		*ch = TextChild(s)
		return nil
	}
	var c Component
	if err := json.Unmarshal(trimmed, &c); err != nil {
		return err
	}
	*ch = ComponentChild(&c)
	return nil
}

// MarshalYAML mirrors MarshalJSON for gopkg.in/yaml.v3.
func (ch Child) MarshalYAML() (interface{}, error) {
	if ch.component == nil {
		return ch.text, nil
	}
	return ch.component, nil
}
