package render

import (
	"encoding/json"
	"slices"

	"github.com/muesli/termenv"
	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"github.com/arthur-debert/minimessage/pkg/component"
	"github.com/arthur-debert/minimessage/pkg/errors"
)

// Output formats.
const (
	FormatANSI = "ansi"
	FormatHTML = "html"
	FormatJSON = "json"
	FormatYAML = "yaml"
	FormatTOML = "toml"
)

// Formats lists every output format.
var Formats = []string{FormatANSI, FormatHTML, FormatJSON, FormatYAML, FormatTOML}

// IsFormat reports whether format is one of Formats.
func IsFormat(format string) bool {
	return slices.Contains(Formats, format)
}

// Options are shared by the renderers.
type Options struct {
	// Translations resolve translatable components.
	Translations map[string]string
	// Profile is the terminal color profile for ANSI output. The zero
	// value is termenv.TrueColor.
	Profile termenv.Profile
	// Hyperlinks wraps text with an open_url click event in an OSC 8 link.
	Hyperlinks bool
}

// Render writes c in the given format.
func Render(c *component.Component, format string, opts Options) (string, error) {
	switch format {
	case FormatANSI:
		return ANSI(c, opts), nil
	case FormatHTML:
		return HTML(c)
	case FormatJSON, FormatYAML, FormatTOML:
		data, err := Export(c, format)
		return string(data), err
	}
	return "", errors.Newf(errors.ErrRender, "unknown format %q", format).WithDetail("known", Formats)
}

// Export serializes the property bag of c.
func Export(c *component.Component, format string) ([]byte, error) {
	var (
		data []byte
		err  error
	)
	switch format {
	case FormatJSON:
		data, err = json.MarshalIndent(c, "", "  ")
		data = append(data, '\n')
	case FormatYAML:
		data, err = yaml.Marshal(c)
	case FormatTOML:
		var m map[string]interface{}
		if m, err = c.ToMap(); err == nil {
			data, err = toml.Marshal(m)
		}
	default:
		return nil, errors.Newf(errors.ErrRender, "cannot export to %q", format)
	}
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrRender, "failed to export %s", format)
	}
	return data, nil
}
