package main

// Command descriptions
const (
	MsgRootShort = "Parse and render MiniMessage markup"
	MsgRootLong  = `minimessage turns MiniMessage markup such as

  <green>Hello <b>world</b></green>

into a component tree, and renders that tree as JSON, YAML, TOML, HTML or
colored terminal text.

Input is read from a file argument, from --markup, or from standard input.`

	MsgParseShort   = "Parse markup into a component tree"
	MsgParseLong    = "Parse prints the component tree as JSON (default), YAML or TOML."
	MsgRenderShort  = "Render markup for the terminal or as HTML"
	MsgRenderLong   = "Render prints the markup as ANSI terminal text (default) or as HTML spans."
	MsgTokensShort  = "Show the tokenizer events of the markup"
	MsgTagsShort    = "List the tag sets and preset tags"
	MsgVersionShort = "Print version information"
	MsgManShort     = "Generate the man page"

	MsgCompletionShort = "Generate shell completion script"
)

// Flag descriptions
const (
	MsgFlagVerbose = "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)"
	MsgFlagConfig  = "Configuration file (.toml, .yaml or .yml)"
	MsgFlagStrict  = "Fail on malformed markup instead of recovering"
	MsgFlagTags    = "Tag sets to enable, e.g. defaults,font,score (see 'tags')"
	MsgFlagPresets = "File with user defined tags (.toml, .yaml or .yml)"
	MsgFlagFormat  = "Output format: ansi, html, json, yaml or toml"
	MsgFlagColor   = "Color output: auto, always or never"
	MsgFlagDebug   = "Log every parsing step"
	MsgFlagMarkup  = "Markup to process instead of a file"
	MsgFlagManDir  = "Directory to write man pages to (default: standard output)"
)

// Output messages
const (
	MsgVersionFormat  = "minimessage version %s\n  commit: %s\n  built:  %s\n"
	MsgTagSetsHeader  = "Tag sets:"
	MsgPresetsHeader  = "Preset tags:"
	MsgNoPresets      = "No presets configured."
	MsgErrTooManyArgs = "expected at most one input file, got %d"
)
