package testutil

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arthur-debert/minimessage/pkg/component"
)

// Deserializer is the part of minimessage.Deserializer the helpers need.
type Deserializer interface {
	Deserialize(input string) (*component.Component, error)
}

// MustDeserialize parses input and fails the test on error.
func MustDeserialize(t testing.TB, d Deserializer, input string) *component.Component {
	t.Helper()
	c, err := d.Deserialize(input)
	require.NoError(t, err, "deserializing %q", input)
	require.NotNil(t, c)
	return c
}

// AssertJSON checks that c encodes to the same JSON as expected,
// ignoring key order and whitespace.
func AssertJSON(t testing.TB, expected string, c *component.Component, msgAndArgs ...interface{}) bool {
	t.Helper()
	data, err := json.Marshal(c)
	require.NoError(t, err)
	return assert.JSONEq(t, expected, string(data), msgAndArgs...)
}

// PlainText concatenates every piece of text in c, in reading order.
func PlainText(c *component.Component) string {
	var sb strings.Builder
	writePlain(&sb, c)
	return sb.String()
}

func writePlain(sb *strings.Builder, c *component.Component) {
	sb.WriteString(c.TextValue())
	for _, child := range c.Extra {
		if child.IsText() {
			sb.WriteString(child.Text())
			continue
		}
		writePlain(sb, child.Component())
	}
}

// LeafColors returns the color of every direct child of c, "" for
// children without one.
func LeafColors(c *component.Component) []string {
	out := make([]string, 0, len(c.Extra))
	for _, child := range c.Extra {
		color := ""
		if sub := child.Component(); sub != nil {
			color, _ = sub.ColorValue()
		}
		out = append(out, color)
	}
	return out
}
