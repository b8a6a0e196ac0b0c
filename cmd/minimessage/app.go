package main

import (
	"io"
	"os"
	"strings"

	"github.com/muesli/termenv"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/arthur-debert/minimessage/pkg/config"
	"github.com/arthur-debert/minimessage/pkg/errors"
	"github.com/arthur-debert/minimessage/pkg/minimessage"
	"github.com/arthur-debert/minimessage/pkg/render"
)

// app carries what every command needs: the filesystem input is read
// from, standard input, and the loaded configuration.
type app struct {
	fs    afero.Fs
	stdin io.Reader

	verbosity  int
	configFile string
	markup     string
	cfg        *config.Config

	// source is the last markup read, kept for error diagnostics.
	source string
}

func newApp() *app {
	return &app{fs: afero.NewOsFs(), stdin: os.Stdin}
}

// overrides collects the persistent flags the user actually set.
func overrides(cmd *cobra.Command) (map[string]interface{}, error) {
	flags := cmd.Flags()
	out := map[string]interface{}{}
	keys := []struct{ flag, key string }{
		{"strict", "strict"},
		{"debug", "debug"},
		{"tags", "tags"},
		{"presets", "presets"},
		{"format", "render/format"},
		{"color", "render/color"},
	}
	for _, k := range keys {
		f := flags.Lookup(k.flag)
		if f == nil || !f.Changed {
			continue
		}
		switch k.flag {
		case "strict", "debug":
			v, err := flags.GetBool(k.flag)
			if err != nil {
				return nil, err
			}
			out[k.key] = v
		case "tags":
			v, err := flags.GetStringSlice(k.flag)
			if err != nil {
				return nil, err
			}
			out[k.key] = v
		default:
			out[k.key] = f.Value.String()
		}
	}
	return out, nil
}

func (a *app) loadConfig(cmd *cobra.Command) error {
	over, err := overrides(cmd)
	if err != nil {
		return err
	}
	cfg, err := config.Load(config.Options{File: a.configFile, Overrides: over})
	if err != nil {
		return err
	}
	a.cfg = cfg
	return nil
}

// input returns the markup from --markup, the file argument, or stdin.
func (a *app) input(args []string) (string, error) {
	if a.markup != "" {
		a.source = a.markup
		return a.markup, nil
	}
	if len(args) > 1 {
		return "", errors.Newf(errors.ErrInvalidInput, MsgErrTooManyArgs, len(args))
	}

	var (
		data []byte
		err  error
	)
	if len(args) == 0 || args[0] == "-" {
		data, err = io.ReadAll(a.stdin)
	} else {
		data, err = afero.ReadFile(a.fs, args[0])
	}
	if err != nil {
		return "", errors.Wrap(err, errors.ErrInvalidInput, "failed to read input")
	}
	a.source = strings.TrimSuffix(string(data), "\n")
	return a.source, nil
}

func (a *app) deserializer() (*minimessage.Deserializer, error) {
	b, err := a.cfg.Builder(a.fs)
	if err != nil {
		return nil, err
	}
	return b.Build(), nil
}

// colorMode is the configured color mode, or auto before the
// configuration is loaded.
func (a *app) colorMode() string {
	if a.cfg == nil {
		return render.ColorAuto
	}
	return a.cfg.Render.Color
}

// profile picks the color profile for the command output.
func (a *app) profile(w io.Writer) termenv.Profile {
	if f, ok := w.(*os.File); ok {
		return render.DetectProfile(a.colorMode(), f)
	}
	if a.colorMode() == render.ColorAlways {
		return termenv.TrueColor
	}
	return termenv.Ascii
}
