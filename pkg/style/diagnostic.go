// Package style formats CLI diagnostics: an error message followed by the
// offending markup line with a caret under the reported position.
package style

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/arthur-debert/minimessage/pkg/errors"
)

// Styles used by Diagnostic.
type Styles struct {
	Error lipgloss.Style
	Code  lipgloss.Style
	Caret lipgloss.Style
	Muted lipgloss.Style
}

// NewStyles builds the diagnostic styles for profile.
func NewStyles(profile termenv.Profile) Styles {
	r := lipgloss.NewRenderer(io.Discard)
	r.SetColorProfile(profile)
	return Styles{
		Error: r.NewStyle().Foreground(ErrorColor).Bold(true),
		Code:  r.NewStyle().Foreground(CodeColor),
		Caret: r.NewStyle().Foreground(WarningColor).Bold(true),
		Muted: r.NewStyle().Foreground(MutedColor),
	}
}

// locate turns a character offset into a line, its number and the
// column within it.
func locate(input string, position int) (line string, number, column int) {
	runes := []rune(input)
	if position > len(runes) {
		position = len(runes)
	}
	start := 0
	for i := 0; i < position; i++ {
		if runes[i] == '\n' {
			number++
			start = i + 1
		}
	}
	end := start
	for end < len(runes) && runes[end] != '\n' {
		end++
	}
	return string(runes[start:end]), number + 1, position - start
}

// Diagnostic renders err. Errors that carry a position also show the
// line of input it points into. Joined errors are rendered one by one.
func Diagnostic(err error, input string, s Styles) string {
	if err == nil {
		return ""
	}
	if joined, ok := err.(interface{ Unwrap() []error }); ok {
		parts := make([]string, 0, len(joined.Unwrap()))
		for _, e := range joined.Unwrap() {
			parts = append(parts, Diagnostic(e, input, s))
		}
		return strings.Join(parts, "\n")
	}

	var sb strings.Builder
	sb.WriteString(s.Error.Render("✗ " + err.Error()))

	position, ok := errors.PositionOf(err)
	if !ok || input == "" {
		return sb.String()
	}
	line, number, column := locate(input, position)
	gutter := fmt.Sprintf("%4d | ", number)
	sb.WriteString("\n")
	sb.WriteString(s.Muted.Render(gutter))
	sb.WriteString(s.Code.Render(line))
	sb.WriteString("\n")
	sb.WriteString(strings.Repeat(" ", len(gutter)+column))
	caret := "^"
	if name, ok := errors.TagOf(err); ok {
		caret += " <" + name + ">"
	}
	sb.WriteString(s.Caret.Render(caret))
	return sb.String()
}
