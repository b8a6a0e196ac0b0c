package config

import (
	"github.com/spf13/afero"

	"github.com/arthur-debert/minimessage/pkg/logging"
	"github.com/arthur-debert/minimessage/pkg/minimessage"
	"github.com/arthur-debert/minimessage/pkg/presets"
	"github.com/arthur-debert/minimessage/pkg/tag"
	"github.com/arthur-debert/minimessage/pkg/tag/standard"
)

// Resolver combines the presets file, if any, with the configured tag
// sets. Presets come first so they can shadow built-in names.
func (c *Config) Resolver(fs afero.Fs) (tag.Resolver, error) {
	builtin, err := standard.Combine(c.Tags...)
	if err != nil {
		return nil, err
	}
	if c.Presets == "" {
		return builtin, nil
	}
	file, err := presets.Load(fs, c.Presets)
	if err != nil {
		return nil, err
	}
	user, err := file.Resolver()
	if err != nil {
		return nil, err
	}
	return tag.NewBuilder().Resolvers(user, builtin).Build(), nil
}

// Builder returns a minimessage.Builder honoring the configuration.
func (c *Config) Builder(fs afero.Fs) (*minimessage.Builder, error) {
	resolver, err := c.Resolver(fs)
	if err != nil {
		return nil, err
	}
	b := minimessage.NewBuilder().
		Tags(resolver).
		Strict(c.Strict).
		Translations(c.Translations)
	if c.Debug {
		logger := logging.GetLogger("trace")
		b.Debug(func(message string) {
			logger.Debug().Msg(message)
		})
	}
	return b, nil
}
