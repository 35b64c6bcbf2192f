package tool

// Config holds one tool's section of the config file. Keys are
// tool-specific and opaque to the orchestrator; only the multilint
// section's own globals are read by the core. Read-only after resolution.
type Config map[string]any

// String returns the string value for key, reporting whether the key was
// present and string-typed.
func (c Config) String(key string) (string, bool) {
	v, ok := c[key]
	if !ok {
		return "", false
	}
	s, ok := v.(string)
	return s, ok
}

// Bool returns the boolean value for key, reporting whether the key was
// present and bool-typed.
func (c Config) Bool(key string) (bool, bool) {
	v, ok := c[key]
	if !ok {
		return false, false
	}
	b, ok := v.(bool)
	return b, ok
}

// Strings returns the string elements of a sequence value. YAML decodes
// sequences as []any, so both forms are accepted. A missing key or a
// non-sequence value yields nil.
func (c Config) Strings(key string) []string {
	switch v := c[key].(type) {
	case []string:
		return v
	case []any:
		out := make([]string, 0, len(v))
		for _, e := range v {
			if s, ok := e.(string); ok {
				out = append(out, s)
			}
		}
		return out
	}
	return nil
}
