package tag

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/arthur-debert/minimessage/pkg/component"
)

func TestKinds(t *testing.T) {
	tests := []struct {
		tag  Tag
		kind Kind
		name string
	}{
		{Insert(component.NewText("x")), KindInsert, "INSERT"},
		{Identity(), KindModify, "MODIFY"},
		{Directive(Reset), KindDirective, "DIRECTIVE"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.kind, tt.tag.Kind())
			assert.Equal(t, tt.name, tt.tag.Kind().String())
		})
	}
	assert.Equal(t, "RESET", Reset.String())
}

func TestInsertFlags(t *testing.T) {
	closed := Insert(component.New())
	assert.True(t, closed.SelfClosing)
	assert.False(t, closed.AllowsChildren)

	open := InsertWithChildren(component.New())
	assert.False(t, open.SelfClosing)
	assert.True(t, open.AllowsChildren)
}

func TestModifyApply(t *testing.T) {
	t.Run("nil result keeps the component", func(t *testing.T) {
		c := component.NewText("x")
		out := Modify(func(*component.Component) *component.Component { return nil }).Apply(c)
		assert.Same(t, c, out)
	})

	t.Run("replacement is returned", func(t *testing.T) {
		replacement := component.NewText("y")
		out := Modify(func(*component.Component) *component.Component { return replacement }).
			Apply(component.NewText("x"))
		assert.Same(t, replacement, out)
	})

	t.Run("style edits in place", func(t *testing.T) {
		c := component.NewText("x")
		out := Style(func(c *component.Component) { c.SetColor("red") }).Apply(c)
		assert.Same(t, c, out)
		color, _ := c.ColorValue()
		assert.Equal(t, "red", color)
	})

	t.Run("identity", func(t *testing.T) {
		c := component.NewText("x")
		assert.Same(t, c, Identity().Apply(c))
		assert.Equal(t, `{"text":"x"}`, c.String())
	})
}

func TestNewContext(t *testing.T) {
	ctx := NewContext(true, nil)
	assert.True(t, ctx.Strict())
	assert.NotNil(t, ctx.Translations())

	ctx = NewContext(false, map[string]string{"a": "b"})
	assert.False(t, ctx.Strict())
	assert.Equal(t, "b", ctx.Translations()["a"])
}
