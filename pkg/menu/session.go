package menu

// Session maps flag names to their values. Values come from untyped
// sources (cookies, YAML, database rows) so the flag check uses loose
// equality against 1 rather than a type assertion.
type Session map[string]any

// Flag reports whether the named flag is set. A value counts as set
// when it loosely equals 1: 1, 1.0, "1" and true are set; 0, "0",
// false, nil, a missing key and anything else are not.
func (s Session) Flag(name string) bool {
	return flagSet(s[name])
}

func flagSet(value any) bool {
	switch value := value.(type) {
	case bool:
		return value
	case int:
		return value == 1
	case int64:
		return value == 1
	case uint64:
		return value == 1
	case float64:
		return value == 1
	case string:
		return value == "1"
	}

	return false
}
