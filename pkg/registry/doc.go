// Package registry provides a generic, thread-safe catalogue of named
// items. The standard tag catalogue and user presets are kept in
// registries so they can be looked up by the names used in
// configuration files and on the command line.
package registry
