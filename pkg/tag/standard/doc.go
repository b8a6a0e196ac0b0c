// Package standard implements the tags shipped with the library:
// colors, decorations, click and hover events, gradients, rainbows,
// transitions, placeholders for keybinds, scores and translations, the
// newline and the reset directive.
//
// Defaults returns the tags that every renderer can represent; All adds
// the ones carrying game specific data (font, keybind, score, selector,
// translatable). Named looks resolvers up by catalogue name.
package standard
