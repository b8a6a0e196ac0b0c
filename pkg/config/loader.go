package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"
	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/arthur-debert/minimessage/pkg/errors"
	"github.com/arthur-debert/minimessage/pkg/logging"
)

const (
	delim     = "/"
	envPrefix = "MINIMESSAGE_"
)

// Options controls which sources Load reads besides the defaults.
type Options struct {
	// File is an explicit configuration file, loaded after the user file.
	File string
	// Overrides are applied last. Keys use "/" between levels, e.g.
	// "render/format".
	Overrides map[string]interface{}
	// SkipUserFile ignores the file under the XDG config directory.
	SkipUserFile bool
}

// UserFile returns the first existing config file under the XDG config
// directory, or "".
func UserFile() string {
	dir := filepath.Join(xdg.ConfigHome, logging.AppName)
	for _, name := range []string{"config.toml", "config.yaml", "config.yml"} {
		path := filepath.Join(dir, name)
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}
	return ""
}

func parserFor(path string) (koanf.Parser, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		return toml.Parser(), nil
	case ".yaml", ".yml":
		return yaml.Parser(), nil
	}
	return nil, errors.Newf(errors.ErrConfigLoad, "unsupported config file %q (expected .toml, .yaml or .yml)", path)
}

func loadFile(k *koanf.Koanf, path string) error {
	parser, err := parserFor(path)
	if err != nil {
		return err
	}
	if err := k.Load(file.Provider(path), parser); err != nil {
		return errors.Wrapf(err, errors.ErrConfigLoad, "failed to load config from %s", path)
	}
	return nil
}

func envKey(s string) string {
	return strings.ReplaceAll(strings.ToLower(strings.TrimPrefix(s, envPrefix)), "_", delim)
}

// Load merges every source and returns the validated configuration.
func Load(opts Options) (*Config, error) {
	logger := logging.GetLogger("config")
	k := koanf.New(delim)

	if err := k.Load(&rawBytesProvider{bytes: defaultConfig}, toml.Parser()); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to load defaults")
	}

	if !opts.SkipUserFile {
		if path := UserFile(); path != "" {
			logger.Debug().Str("path", path).Msg("Loading user config")
			if err := loadFile(k, path); err != nil {
				return nil, err
			}
		}
	}

	if opts.File != "" {
		logger.Debug().Str("path", opts.File).Msg("Loading config file")
		if err := loadFile(k, opts.File); err != nil {
			return nil, err
		}
	}

	if err := k.Load(env.Provider(envPrefix, delim, envKey), nil); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to load environment")
	}

	if len(opts.Overrides) > 0 {
		if err := k.Load(confmap.Provider(opts.Overrides, delim), nil); err != nil {
			return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to load overrides")
		}
	}

	var cfg Config
	unmarshalConf := koanf.UnmarshalConf{
		Tag: "koanf",
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           &cfg,
			WeaklyTypedInput: true,
			DecodeHook: mapstructure.ComposeDecodeHookFunc(
				mapstructure.StringToSliceHookFunc(","),
				mapstructure.TextUnmarshallerHookFunc(),
			),
		},
	}
	if err := k.UnmarshalWithConf("", &cfg, unmarshalConf); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigParse, "failed to unmarshal configuration")
	}
	if cfg.Translations == nil {
		cfg.Translations = map[string]string{}
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	logger.Debug().
		Bool("strict", cfg.Strict).
		Strs("tags", cfg.Tags).
		Str("format", cfg.Render.Format).
		Msg("Configuration loaded")
	return &cfg, nil
}
