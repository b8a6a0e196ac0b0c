package style_test

import (
	stderrors "errors"
	"testing"

	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"

	"github.com/arthur-debert/minimessage/pkg/errors"
	"github.com/arthur-debert/minimessage/pkg/style"
)

func TestDiagnostic(t *testing.T) {
	plain := style.NewStyles(termenv.Ascii)

	t.Run("nil", func(t *testing.T) {
		assert.Empty(t, style.Diagnostic(nil, "x", plain))
	})

	t.Run("without position", func(t *testing.T) {
		err := errors.New(errors.ErrConfigParse, "bad")
		assert.Equal(t, "✗ [CONFIG_PARSE] bad", style.Diagnostic(err, "<b>x", plain))
	})

	t.Run("caret under position", func(t *testing.T) {
		err := errors.New(errors.ErrMismatchedClose, "mismatched").WithTag("b", 10)
		got := style.Diagnostic(err, "<b>bold</i>", plain)
		assert.Equal(t, "✗ [MISMATCHED_CLOSE] mismatched\n   1 | <b>bold</i>\n                 ^ <b>", got)
	})

	t.Run("second line", func(t *testing.T) {
		err := errors.New(errors.ErrUnresolvedTag, "unknown").WithTag("x", 7)
		got := style.Diagnostic(err, "ab\ncd<x>", plain)
		assert.Equal(t, "✗ [UNRESOLVED_TAG] unknown\n   2 | cd<x>\n           ^ <x>", got)
	})

	t.Run("joined errors", func(t *testing.T) {
		err := stderrors.Join(
			errors.New(errors.ErrUnterminatedTag, "a").WithTag("a", 2),
			errors.New(errors.ErrUnterminatedTag, "b").WithTag("b", 5),
		)
		got := style.Diagnostic(err, "<a><b>", plain)
		assert.Contains(t, got, "^ <a>")
		assert.Contains(t, got, "^ <b>")
	})
}
