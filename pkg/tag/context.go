package tag

// Context is the state of the deserializer a resolver may consult.
type Context interface {
	// Strict reports whether malformed markup is an error.
	Strict() bool

	// Translations maps translation keys to patterns.
	Translations() map[string]string
}

type staticContext struct {
	strict       bool
	translations map[string]string
}

// NewContext returns a fixed Context.
func NewContext(strict bool, translations map[string]string) Context {
	if translations == nil {
		translations = map[string]string{}
	}
	return staticContext{strict: strict, translations: translations}
}

func (c staticContext) Strict() bool                     { return c.strict }
func (c staticContext) Translations() map[string]string { return c.translations }
