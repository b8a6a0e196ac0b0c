package render_test

import (
	"encoding/json"
	"testing"

	"github.com/beevik/etree"
	"github.com/muesli/termenv"
	"github.com/pelletier/go-toml/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/arthur-debert/minimessage/pkg/component"
	"github.com/arthur-debert/minimessage/pkg/errors"
	"github.com/arthur-debert/minimessage/pkg/minimessage"
	"github.com/arthur-debert/minimessage/pkg/render"
	"github.com/arthur-debert/minimessage/pkg/tag/standard"
	"github.com/arthur-debert/minimessage/pkg/testutil"
)

func parse(t *testing.T, input string) *component.Component {
	t.Helper()
	d := minimessage.NewBuilder().Tags(standard.All()).Build()
	return testutil.MustDeserialize(t, d, input)
}

func TestHTML(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "plain",
			input:    "hello",
			expected: `<span>hello</span>`,
		},
		{
			name:     "named color is mapped",
			input:    "<red>hi</red>",
			expected: `<span style="color: #ff5555;">hi</span>`,
		},
		{
			name:     "nested children keep order",
			input:    "<green>Green and <b>bold</b> text</green>",
			expected: `<span style="color: #55ff55;">Green and <span style="font-weight: bold;">bold</span> text</span>`,
		},
		{
			name:     "explicit false neutralises",
			input:    "<!b>x",
			expected: `<span style="font-weight: normal; text-decoration: none; filter: none;">x</span>`,
		},
		{
			name:     "text is escaped",
			input:    `a \<b> & c`,
			expected: `<span>a &lt;b&gt; &amp; c</span>`,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := render.HTML(parse(t, tt.input))
			require.NoError(t, err)
			assert.Equal(t, tt.expected, out)
		})
	}
}

func TestHTMLDataAttributes(t *testing.T) {
	c := parse(t, "<click:run_command:/spawn><key:key.jump></click>")
	out, err := render.HTML(c)
	require.NoError(t, err)

	doc := etree.NewDocument()
	require.NoError(t, doc.ReadFromString(out))
	span := doc.FindElement("//span[@data-mm-click-event]")
	require.NotNil(t, span)

	var click component.ClickEvent
	require.NoError(t, json.Unmarshal([]byte(span.SelectAttrValue("data-mm-click-event", "")), &click))
	assert.Equal(t, component.ClickEvent{Action: "run_command", Value: "/spawn"}, click)

	key := doc.FindElement("//span[@data-mm-keybind]")
	require.NotNil(t, key)
	assert.Equal(t, `"key.jump"`, key.SelectAttrValue("data-mm-keybind", ""))
}

func TestANSIPlain(t *testing.T) {
	c := parse(t, "<red>Hi <b>there</b></red><br><key:key.jump> <score:alice:kills> <tr:greet:Bob>")
	out := render.ANSI(c, render.Options{
		Profile:      termenv.Ascii,
		Translations: map[string]string{"greet": "Hello %s!"},
	})
	assert.Equal(t, "Hi there\n[key.jump] alice:kills Hello Bob!", out)
}

func TestANSIColor(t *testing.T) {
	c := parse(t, "<red>a<b>b</b></red>")
	out := render.ANSI(c, render.Options{Profile: termenv.TrueColor})

	assert.Contains(t, out, "38;2;255;85;85")
	assert.Contains(t, out, "a")
	assert.Contains(t, out, "b")
	assert.NotEqual(t, "ab", out)
}

func TestANSIHyperlinks(t *testing.T) {
	c := parse(t, `<click:open_url:https\://example.com>site</click>`)

	plain := render.ANSI(c, render.Options{Profile: termenv.Ascii})
	assert.Equal(t, "site", plain)

	linked := render.ANSI(c, render.Options{Profile: termenv.Ascii, Hyperlinks: true})
	assert.Contains(t, linked, "https://example.com")
	assert.Contains(t, linked, "site")
}

func TestTranslate(t *testing.T) {
	translations := map[string]string{
		"seq":     "%s and %s",
		"pos":     "%2$s before %1$s",
		"percent": "100%% %s",
		"odd":     "50% off",
	}
	tests := []struct {
		key      string
		with     []string
		expected string
	}{
		{"seq", []string{"a", "b"}, "a and b"},
		{"seq", []string{"a"}, "a and "},
		{"pos", []string{"a", "b"}, "b before a"},
		{"percent", []string{"sure"}, "100% sure"},
		{"odd", nil, "50% off"},
		{"missing.key", []string{"x"}, "missing.key"},
	}
	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			assert.Equal(t, tt.expected, render.Translate(tt.key, tt.with, translations))
		})
	}
}

func TestExport(t *testing.T) {
	c := parse(t, "<green>Green and <b>bold</b> text</green>")

	t.Run("json", func(t *testing.T) {
		data, err := render.Export(c, render.FormatJSON)
		require.NoError(t, err)
		assert.JSONEq(t, `{"text":"Green and ","color":"green","extra":[{"text":"bold","bold":true}," text"]}`, string(data))
	})

	t.Run("yaml", func(t *testing.T) {
		data, err := render.Export(c, render.FormatYAML)
		require.NoError(t, err)
		var got map[string]interface{}
		require.NoError(t, yaml.Unmarshal(data, &got))
		assert.Equal(t, "green", got["color"])
		assert.Len(t, got["extra"], 2)
	})

	t.Run("toml", func(t *testing.T) {
		data, err := render.Export(c, render.FormatTOML)
		require.NoError(t, err)
		var got map[string]interface{}
		require.NoError(t, toml.Unmarshal(data, &got))
		assert.Equal(t, "Green and ", got["text"])
	})

	t.Run("unknown", func(t *testing.T) {
		_, err := render.Export(c, "pdf")
		assert.True(t, errors.IsErrorCode(err, errors.ErrRender))
	})
}

func TestRenderDispatch(t *testing.T) {
	c := parse(t, "<red>x</red>")
	for _, format := range render.Formats {
		t.Run(format, func(t *testing.T) {
			out, err := render.Render(c, format, render.Options{Profile: termenv.Ascii})
			require.NoError(t, err)
			assert.Contains(t, out, "x")
		})
	}

	_, err := render.Render(c, "pdf", render.Options{})
	assert.True(t, errors.IsErrorCode(err, errors.ErrRender))
	assert.True(t, render.IsColorMode(render.ColorNever))
	assert.False(t, render.IsFormat("pdf"))
}
