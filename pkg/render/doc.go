// Package render turns a component tree into presentation formats:
// HTML spans, ANSI terminal text, and structured JSON, YAML or TOML.
package render
