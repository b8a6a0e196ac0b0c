package render

import (
	"strconv"
	"strings"
)

// Translate resolves key through translations and substitutes the
// arguments. Patterns use %s for the next argument, %N$s for argument N
// and %% for a literal percent sign. Unknown keys render as the key.
func Translate(key string, with []string, translations map[string]string) string {
	pattern, ok := translations[key]
	if !ok {
		return key
	}

	var sb strings.Builder
	next := 0
	arg := func(i int) string {
		if i >= 0 && i < len(with) {
			return with[i]
		}
		return ""
	}
	for i := 0; i < len(pattern); i++ {
		if pattern[i] != '%' || i+1 == len(pattern) {
			sb.WriteByte(pattern[i])
			continue
		}
		switch rest := pattern[i+1:]; {
		case rest[0] == '%':
			sb.WriteByte('%')
			i++
		case rest[0] == 's':
			sb.WriteString(arg(next))
			next++
			i++
		default:
			end := strings.Index(rest, "$s")
			n, err := strconv.Atoi(rest[:max(end, 0)])
			if end <= 0 || err != nil {
				sb.WriteByte('%')
				continue
			}
			sb.WriteString(arg(n - 1))
			i += end + 2
		}
	}
	return sb.String()
}
