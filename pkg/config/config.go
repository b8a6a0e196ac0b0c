package config

import (
	"github.com/arthur-debert/minimessage/pkg/errors"
	"github.com/arthur-debert/minimessage/pkg/render"
)

// RenderConfig selects the output of the CLI.
type RenderConfig struct {
	Format string `koanf:"format"`
	Color  string `koanf:"color"`
}

// Config is the merged configuration.
type Config struct {
	Strict       bool              `koanf:"strict"`
	Debug        bool              `koanf:"debug"`
	Tags         []string          `koanf:"tags"`
	Presets      string            `koanf:"presets"`
	Translations map[string]string `koanf:"translations"`
	Render       RenderConfig      `koanf:"render"`
}

// Validate checks the enumerated keys.
func (c *Config) Validate() error {
	if !render.IsFormat(c.Render.Format) {
		return errors.Newf(errors.ErrConfigParse, "unknown render format %q (expected one of %v)", c.Render.Format, render.Formats).
			WithDetail("key", "render.format")
	}
	if !render.IsColorMode(c.Render.Color) {
		return errors.Newf(errors.ErrConfigParse, "unknown color mode %q (expected one of %v)", c.Render.Color, render.ColorModes).
			WithDetail("key", "render.color")
	}
	if len(c.Tags) == 0 {
		return errors.New(errors.ErrConfigParse, "at least one tag set is required").WithDetail("key", "tags")
	}
	return nil
}
