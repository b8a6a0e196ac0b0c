package colors

import "strings"

// palette holds the sixteen legacy chat colors.
var palette = map[string]string{
	"black":        "#000000",
	"dark_blue":    "#0000aa",
	"dark_green":   "#00aa00",
	"dark_aqua":    "#00aaaa",
	"dark_red":     "#aa0000",
	"dark_purple":  "#aa00aa",
	"gold":         "#ffaa00",
	"gray":         "#aaaaaa",
	"dark_gray":    "#555555",
	"blue":         "#5555ff",
	"green":        "#55ff55",
	"aqua":         "#55ffff",
	"red":          "#ff5555",
	"light_purple": "#ff55ff",
	"yellow":       "#ffff55",
	"white":        "#ffffff",

	"grey":      "#aaaaaa",
	"dark_grey": "#555555",
}

// IsNamed reports whether name is a palette color.
func IsNamed(name string) bool {
	_, ok := palette[name]
	return ok
}

// Names returns the palette names, aliases included.
func Names() []string {
	names := make([]string, 0, len(palette))
	for name := range palette {
		names = append(names, name)
	}
	return names
}

// Map resolves a color argument to a hex string. Hex input is returned
// as is, palette names are looked up case-insensitively and anything
// else falls back to white.
func Map(name string) string {
	if strings.HasPrefix(name, "#") {
		return name
	}
	if hex, ok := palette[strings.ToLower(name)]; ok {
		return hex
	}
	return palette["white"]
}

// Parse maps name and decodes it.
func Parse(name string) (RGB, error) {
	return HexToRGB(Map(name))
}
