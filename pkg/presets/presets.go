// Package presets lets users define their own tags in a TOML or YAML
// file:
//
//	[tags.warn]
//	color = "gold"
//	bold = true
//
//	[tags.server]
//	text = "Survival #1"
//	color = "aqua"
//	click = { action = "run_command", value = "/server survival" }
//
// A preset without text is a Modify tag applying its style to the
// enclosed content; a preset with text is a placeholder inserting that
// text with the style applied.
package presets

import (
	"bytes"
	"path/filepath"
	"slices"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"github.com/spf13/afero"
	"gopkg.in/yaml.v3"

	"github.com/arthur-debert/minimessage/pkg/colors"
	"github.com/arthur-debert/minimessage/pkg/component"
	"github.com/arthur-debert/minimessage/pkg/errors"
)

// Event is a click or hover event of a preset.
type Event struct {
	Action string `toml:"action" yaml:"action"`
	Value  string `toml:"value" yaml:"value"`
}

// Preset is the style of one user tag.
type Preset struct {
	Text          *string `toml:"text" yaml:"text"`
	Color         string  `toml:"color" yaml:"color"`
	Bold          *bool   `toml:"bold" yaml:"bold"`
	Italic        *bool   `toml:"italic" yaml:"italic"`
	Underlined    *bool   `toml:"underlined" yaml:"underlined"`
	Strikethrough *bool   `toml:"strikethrough" yaml:"strikethrough"`
	Obfuscated    *bool   `toml:"obfuscated" yaml:"obfuscated"`
	Font          string  `toml:"font" yaml:"font"`
	Insertion     string  `toml:"insertion" yaml:"insertion"`
	Click         *Event  `toml:"click" yaml:"click"`
	Hover         *Event  `toml:"hover" yaml:"hover"`
}

// IsPlaceholder reports whether the preset inserts its own text.
func (p Preset) IsPlaceholder() bool {
	return p.Text != nil
}

// File is the content of a presets file.
type File struct {
	Tags map[string]Preset `toml:"tags" yaml:"tags"`
}

// Format of a presets file.
type Format string

const (
	FormatTOML Format = "toml"
	FormatYAML Format = "yaml"
)

// FormatOf picks the format from a file extension.
func FormatOf(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		return FormatTOML, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	}
	return "", errors.Newf(errors.ErrPresetLoad, "unsupported presets file %q (expected .toml, .yaml or .yml)", path)
}

// Parse decodes and validates a presets file.
func Parse(data []byte, format Format) (*File, error) {
	var f File
	switch format {
	case FormatTOML:
		dec := toml.NewDecoder(bytes.NewReader(data))
		dec.DisallowUnknownFields()
		if err := dec.Decode(&f); err != nil {
			return nil, errors.Wrap(err, errors.ErrPresetInvalid, "failed to decode TOML presets")
		}
	case FormatYAML:
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(&f); err != nil {
			return nil, errors.Wrap(err, errors.ErrPresetInvalid, "failed to decode YAML presets")
		}
	default:
		return nil, errors.Newf(errors.ErrPresetLoad, "unsupported presets format %q", format)
	}
	if err := f.Validate(); err != nil {
		return nil, err
	}
	return &f, nil
}

// Load reads, decodes and validates the presets file at path.
func Load(fs afero.Fs, path string) (*File, error) {
	format, err := FormatOf(path)
	if err != nil {
		return nil, err
	}
	data, err := afero.ReadFile(fs, path)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrPresetLoad, "failed to read presets from %s", path)
	}
	return Parse(data, format)
}

// Validate checks tag names, colors and event actions.
func (f *File) Validate() error {
	for name, p := range f.Tags {
		if name == "" || strings.ContainsAny(name, "<>/:\\ ") {
			return errors.Newf(errors.ErrPresetInvalid, "invalid preset tag name %q", name).WithTag(name, -1)
		}
		if p.Color != "" && !colors.IsNamed(p.Color) && !colors.IsHex(p.Color) {
			return errors.Newf(errors.ErrPresetInvalid, "preset <%s> has unknown color %q", name, p.Color).WithTag(name, -1)
		}
		if p.Click != nil && !slices.Contains(component.ClickActions, p.Click.Action) {
			return errors.Newf(errors.ErrPresetInvalid, "preset <%s> has unknown click action %q", name, p.Click.Action).WithTag(name, -1)
		}
		if p.Hover != nil && !slices.Contains(component.HoverActions, p.Hover.Action) {
			return errors.Newf(errors.ErrPresetInvalid, "preset <%s> has unknown hover action %q", name, p.Hover.Action).WithTag(name, -1)
		}
	}
	return nil
}

// Apply copies the style of p onto c.
func (p Preset) Apply(c *component.Component) {
	if p.Color != "" {
		c.SetColor(p.Color)
	}
	decorations := map[component.Decoration]*bool{
		component.Bold:          p.Bold,
		component.Italic:        p.Italic,
		component.Underlined:    p.Underlined,
		component.Strikethrough: p.Strikethrough,
		component.Obfuscated:    p.Obfuscated,
	}
	for d, v := range decorations {
		if v != nil {
			c.Decorate(d, *v)
		}
	}
	if p.Font != "" {
		c.Font = component.String(p.Font)
	}
	if p.Insertion != "" {
		c.Insertion = component.String(p.Insertion)
	}
	if p.Click != nil {
		c.ClickEvent = &component.ClickEvent{Action: p.Click.Action, Value: p.Click.Value}
	}
	if p.Hover != nil {
		c.HoverEvent = &component.HoverEvent{Action: p.Hover.Action, Contents: p.Hover.Value}
	}
}
