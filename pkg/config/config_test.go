package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/adrg/xdg"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arthur-debert/minimessage/pkg/config"
	"github.com/arthur-debert/minimessage/pkg/errors"
	"github.com/arthur-debert/minimessage/pkg/render"
	"github.com/arthur-debert/minimessage/pkg/testutil"
)

// isolate points the XDG config home at an empty directory.
func isolate(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)
	xdg.Reload()
	t.Cleanup(xdg.Reload)
	return dir
}

func writeFile(t *testing.T, path, content string) string {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadDefaults(t *testing.T) {
	isolate(t)

	cfg, err := config.Load(config.Options{})
	require.NoError(t, err)

	assert.False(t, cfg.Strict)
	assert.False(t, cfg.Debug)
	assert.Equal(t, []string{"defaults"}, cfg.Tags)
	assert.Empty(t, cfg.Presets)
	assert.NotNil(t, cfg.Translations)
	assert.Equal(t, render.FormatANSI, cfg.Render.Format)
	assert.Equal(t, render.ColorAuto, cfg.Render.Color)
	assert.Contains(t, config.DefaultContent(), "[render]")
}

func TestLoadLayers(t *testing.T) {
	home := isolate(t)
	writeFile(t, filepath.Join(home, "minimessage", "config.toml"), `
strict = true
tags = ["defaults", "font"]

[render]
format = "html"

[translations]
"chat.type.text" = "<%s> %s"
`)

	t.Run("user file", func(t *testing.T) {
		cfg, err := config.Load(config.Options{})
		require.NoError(t, err)
		assert.True(t, cfg.Strict)
		assert.Equal(t, []string{"defaults", "font"}, cfg.Tags)
		assert.Equal(t, render.FormatHTML, cfg.Render.Format)
		assert.Equal(t, "<%s> %s", cfg.Translations["chat.type.text"])
	})

	t.Run("explicit yaml file wins over user file", func(t *testing.T) {
		explicit := writeFile(t, filepath.Join(t.TempDir(), "mm.yaml"), "render:\n  format: json\n")
		cfg, err := config.Load(config.Options{File: explicit})
		require.NoError(t, err)
		assert.Equal(t, render.FormatJSON, cfg.Render.Format)
		assert.True(t, cfg.Strict)
	})

	t.Run("environment wins over files", func(t *testing.T) {
		t.Setenv("MINIMESSAGE_RENDER_FORMAT", "yaml")
		t.Setenv("MINIMESSAGE_TAGS", "all")
		cfg, err := config.Load(config.Options{})
		require.NoError(t, err)
		assert.Equal(t, render.FormatYAML, cfg.Render.Format)
		assert.Equal(t, []string{"all"}, cfg.Tags)
	})

	t.Run("overrides win over everything", func(t *testing.T) {
		t.Setenv("MINIMESSAGE_STRICT", "true")
		cfg, err := config.Load(config.Options{Overrides: map[string]interface{}{
			"strict":        false,
			"render/format": "toml",
		}})
		require.NoError(t, err)
		assert.False(t, cfg.Strict)
		assert.Equal(t, render.FormatTOML, cfg.Render.Format)
	})

	t.Run("user file can be skipped", func(t *testing.T) {
		cfg, err := config.Load(config.Options{SkipUserFile: true})
		require.NoError(t, err)
		assert.False(t, cfg.Strict)
	})
}

func TestLoadErrors(t *testing.T) {
	isolate(t)

	tests := []struct {
		name string
		opts func(t *testing.T) config.Options
		code errors.ErrorCode
	}{
		{
			name: "missing file",
			opts: func(t *testing.T) config.Options {
				return config.Options{File: filepath.Join(t.TempDir(), "nope.toml")}
			},
			code: errors.ErrConfigLoad,
		},
		{
			name: "unsupported extension",
			opts: func(t *testing.T) config.Options {
				return config.Options{File: writeFile(t, filepath.Join(t.TempDir(), "mm.ini"), "")}
			},
			code: errors.ErrConfigLoad,
		},
		{
			name: "bad format",
			opts: func(t *testing.T) config.Options {
				return config.Options{Overrides: map[string]interface{}{"render/format": "pdf"}}
			},
			code: errors.ErrConfigParse,
		},
		{
			name: "bad color mode",
			opts: func(t *testing.T) config.Options {
				return config.Options{Overrides: map[string]interface{}{"render/color": "sometimes"}}
			},
			code: errors.ErrConfigParse,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := config.Load(tt.opts(t))
			require.Error(t, err)
			assert.True(t, errors.IsErrorCode(err, tt.code), "got %v", err)
		})
	}
}

func TestBuilder(t *testing.T) {
	fs := testutil.NewMemFS(t, map[string]string{
		"/presets.toml": "[tags.warn]\ncolor = \"gold\"\n\n[tags.red]\ncolor = \"aqua\"\n",
	})

	t.Run("tags and strict", func(t *testing.T) {
		cfg := &config.Config{Strict: true, Tags: []string{"color"}}
		b, err := cfg.Builder(fs)
		require.NoError(t, err)
		d := b.Build()

		assert.True(t, d.Strict())
		c := testutil.MustDeserialize(t, d, "<red>x</red>")
		testutil.AssertJSON(t, `{"text":"x","color":"red"}`, c)

		_, err = d.Deserialize("<b>x</b>")
		assert.True(t, errors.IsErrorCode(err, errors.ErrUnresolvedTag))
	})

	t.Run("presets shadow built in tags", func(t *testing.T) {
		cfg := &config.Config{Tags: []string{"defaults"}, Presets: "/presets.toml"}
		b, err := cfg.Builder(fs)
		require.NoError(t, err)
		d := b.Build()

		testutil.AssertJSON(t, `{"text":"x","color":"gold"}`, testutil.MustDeserialize(t, d, "<warn>x</warn>"))
		testutil.AssertJSON(t, `{"text":"x","color":"aqua"}`, testutil.MustDeserialize(t, d, "<red>x</red>"))
	})

	t.Run("translations", func(t *testing.T) {
		cfg := &config.Config{Tags: []string{"defaults"}, Translations: map[string]string{"a.b": "A"}}
		b, err := cfg.Builder(fs)
		require.NoError(t, err)
		assert.Equal(t, "A", b.Build().Translations()["a.b"])
	})

	t.Run("unknown tag set", func(t *testing.T) {
		cfg := &config.Config{Tags: []string{"sparkles"}}
		_, err := cfg.Builder(fs)
		assert.True(t, errors.IsErrorCode(err, errors.ErrNotFound))
	})

	t.Run("missing presets file", func(t *testing.T) {
		cfg := &config.Config{Tags: []string{"defaults"}, Presets: "/missing.toml"}
		_, err := cfg.Builder(fs)
		assert.True(t, errors.IsErrorCode(err, errors.ErrPresetLoad))
	})
}
