// Package config loads the minimessage configuration.
//
// Sources are layered, later ones winning:
//
//  1. built-in defaults (embedded/defaults.toml)
//  2. $XDG_CONFIG_HOME/minimessage/config.{toml,yaml,yml}
//  3. an explicit file given with --config
//  4. MINIMESSAGE_* environment variables (MINIMESSAGE_RENDER_FORMAT -> render.format)
//  5. command line overrides
//
// Keys are separated with "/" internally so that translation keys, which
// contain dots, survive the merge.
package config
