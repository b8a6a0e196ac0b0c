package topics_test

import (
	"bytes"
	"strings"
	"testing"
	"testing/fstest"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arthur-debert/minimessage/pkg/cobrax/topics"
)

func source() fstest.MapFS {
	return fstest.MapFS{
		"help/tags.md":          {Data: []byte("# Tags\n\nEvery tag.")},
		"help/option-strict.md": {Data: []byte("Strict mode.")},
		"help/syntax.txt":       {Data: []byte("Syntax notes")},
		"help/ignore.json":      {Data: []byte("{}")},
	}
}

type upperRenderer struct{}

func (upperRenderer) Render(content string, format string) string {
	return format + ":" + strings.ToUpper(content)
}

func TestManagerScan(t *testing.T) {
	m, err := topics.New(source(), topics.Options{})
	require.NoError(t, err)

	assert.Equal(t, []string{"option-strict", "syntax", "tags"}, m.Names())

	tests := []struct {
		lookup  string
		found   bool
		content string
	}{
		{"tags", true, "# Tags\n\nEvery tag."},
		{"syntax", true, "Syntax notes"},
		{"--strict", true, "Strict mode."},
		{"strict", true, "Strict mode."},
		{"ignore", false, ""},
	}
	for _, tt := range tests {
		t.Run(tt.lookup, func(t *testing.T) {
			topic, ok := m.Get(tt.lookup)
			assert.Equal(t, tt.found, ok)
			if ok {
				assert.Equal(t, tt.content, topic.Content)
			}
		})
	}
}

func TestManagerCustomExtensions(t *testing.T) {
	m, err := topics.New(source(), topics.Options{Extensions: []string{".json"}})
	require.NoError(t, err)
	assert.Equal(t, []string{"ignore"}, m.Names())
}

func TestManagerList(t *testing.T) {
	m, err := topics.New(source(), topics.Options{})
	require.NoError(t, err)

	var out bytes.Buffer
	m.List(&out, "minimessage")
	assert.Contains(t, out.String(), "General topics:\n  syntax\n  tags\n")
	assert.Contains(t, out.String(), "Option topics:\n  --strict\n")
	assert.Contains(t, out.String(), "Use 'minimessage help <topic>'")

	empty, err := topics.New(fstest.MapFS{}, topics.Options{})
	require.NoError(t, err)
	out.Reset()
	empty.List(&out, "minimessage")
	assert.Equal(t, "No help topics available.\n", out.String())
}

func newRoot(t *testing.T) (*cobra.Command, *bytes.Buffer) {
	t.Helper()
	root := &cobra.Command{Use: "minimessage", Short: "root help text"}
	root.AddCommand(&cobra.Command{Use: "parse", Short: "parse help text", Run: func(*cobra.Command, []string) {}})

	m, err := topics.New(source(), topics.Options{Renderer: upperRenderer{}})
	require.NoError(t, err)
	m.Install(root)

	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	return root, &out
}

func TestInstall(t *testing.T) {
	t.Run("topic", func(t *testing.T) {
		root, out := newRoot(t)
		root.SetArgs([]string{"help", "tags"})
		require.NoError(t, root.Execute())
		assert.Equal(t, ".md:# TAGS\n\nEVERY TAG.", out.String())
	})

	t.Run("topic index", func(t *testing.T) {
		root, out := newRoot(t)
		root.SetArgs([]string{"help", "topics"})
		require.NoError(t, root.Execute())
		assert.Contains(t, out.String(), "Available help topics:")
	})

	t.Run("command falls back to cobra help", func(t *testing.T) {
		root, out := newRoot(t)
		root.SetArgs([]string{"help", "parse"})
		require.NoError(t, root.Execute())
		assert.Contains(t, out.String(), "parse help text")
	})

	t.Run("no args shows root help", func(t *testing.T) {
		root, out := newRoot(t)
		root.SetArgs([]string{"help"})
		require.NoError(t, root.Execute())
		assert.Contains(t, out.String(), "root help text")
	})
}

func TestGlamourRenderer(t *testing.T) {
	r := topics.NewGlamourRenderer(false)
	assert.Equal(t, "plain text", r.Render("plain text", ".txt"))

	rendered := r.Render("# Title\n\nBody", ".md")
	assert.Contains(t, rendered, "Title")
	assert.Contains(t, rendered, "Body")
}
