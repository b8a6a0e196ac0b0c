package presets_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arthur-debert/minimessage/pkg/component"
	"github.com/arthur-debert/minimessage/pkg/errors"
	"github.com/arthur-debert/minimessage/pkg/markup"
	"github.com/arthur-debert/minimessage/pkg/presets"
	"github.com/arthur-debert/minimessage/pkg/tag"
	"github.com/arthur-debert/minimessage/pkg/testutil"
)

const tomlPresets = `
[tags.warn]
color = "gold"
bold = true

[tags.server]
text = "Survival"
color = "#00ffaa"
click = { action = "run_command", value = "/server survival" }
`

const yamlPresets = `
tags:
  warn:
    color: gold
    bold: true
  quiet:
    italic: false
    hover:
      action: show_text
      value: shh
`

func TestParse(t *testing.T) {
	t.Run("toml", func(t *testing.T) {
		f, err := presets.Parse([]byte(tomlPresets), presets.FormatTOML)
		require.NoError(t, err)
		require.Len(t, f.Tags, 2)
		assert.Equal(t, "gold", f.Tags["warn"].Color)
		require.NotNil(t, f.Tags["warn"].Bold)
		assert.True(t, *f.Tags["warn"].Bold)
		assert.True(t, f.Tags["server"].IsPlaceholder())
		assert.Equal(t, "run_command", f.Tags["server"].Click.Action)
	})

	t.Run("yaml", func(t *testing.T) {
		f, err := presets.Parse([]byte(yamlPresets), presets.FormatYAML)
		require.NoError(t, err)
		require.Len(t, f.Tags, 2)
		assert.False(t, f.Tags["quiet"].IsPlaceholder())
		assert.Equal(t, "shh", f.Tags["quiet"].Hover.Value)
	})

	t.Run("unknown field", func(t *testing.T) {
		_, err := presets.Parse([]byte("[tags.x]\nblink = true\n"), presets.FormatTOML)
		assert.True(t, errors.IsErrorCode(err, errors.ErrPresetInvalid))
	})
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"bad color", "[tags.x]\ncolor = \"puce\"\n"},
		{"bad click", "[tags.x]\nclick = { action = \"explode\", value = \"\" }\n"},
		{"bad hover", "[tags.x]\nhover = { action = \"show_smell\", value = \"\" }\n"},
		{"bad name", "[tags.\"a:b\"]\ncolor = \"red\"\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := presets.Parse([]byte(tt.input), presets.FormatTOML)
			require.Error(t, err)
			assert.True(t, errors.IsErrorCode(err, errors.ErrPresetInvalid))
		})
	}
}

func TestLoad(t *testing.T) {
	fs := testutil.NewMemFS(t, map[string]string{
		"/p/tags.toml": tomlPresets,
		"/p/tags.yml":  yamlPresets,
		"/p/tags.ini":  "",
	})

	f, err := presets.Load(fs, "/p/tags.toml")
	require.NoError(t, err)
	assert.Len(t, f.Tags, 2)

	f, err = presets.Load(fs, "/p/tags.yml")
	require.NoError(t, err)
	assert.Contains(t, f.Tags, "quiet")

	_, err = presets.Load(fs, "/p/tags.ini")
	assert.True(t, errors.IsErrorCode(err, errors.ErrPresetLoad))

	_, err = presets.Load(fs, "/p/missing.toml")
	assert.True(t, errors.IsErrorCode(err, errors.ErrPresetLoad))
}

func TestResolver(t *testing.T) {
	f, err := presets.Parse([]byte(tomlPresets), presets.FormatTOML)
	require.NoError(t, err)
	r, err := f.Resolver()
	require.NoError(t, err)

	assert.Equal(t, []string{"server", "warn"}, r.Names())
	assert.True(t, r.Has("warn"))
	assert.False(t, r.Has("bold"))
	assert.Nil(t, r.Resolve("bold", markup.EmptyArguments, tag.NewContext(false, nil)))

	t.Run("style preset modifies", func(t *testing.T) {
		got := r.Resolve("warn", markup.EmptyArguments, tag.NewContext(false, nil))
		mod, ok := got.(tag.ModifyTag)
		require.True(t, ok)
		c := mod.Apply(component.NewText("hi"))
		testutil.AssertJSON(t, `{"text":"hi","color":"gold","bold":true}`, c)
	})

	t.Run("text preset inserts a fresh value", func(t *testing.T) {
		first := r.Resolve("server", markup.EmptyArguments, tag.NewContext(false, nil)).(tag.InsertTag)
		second := r.Resolve("server", markup.EmptyArguments, tag.NewContext(false, nil)).(tag.InsertTag)
		assert.NotSame(t, first.Value, second.Value)
		assert.True(t, first.SelfClosing)
		testutil.AssertJSON(t,
			`{"text":"Survival","color":"#00ffaa","clickEvent":{"action":"run_command","value":"/server survival"}}`,
			first.Value)
	})
}
