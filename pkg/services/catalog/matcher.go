package catalog

import "strings"

// Pattern pairs a value with the predicate that recognizes it in user input.
// Tables are ordered: earlier entries win over later ones.
type Pattern[T any] struct {
	Value   T
	Matches func(raw, lower string) bool
}

// FirstMatch scans patterns in table order and returns the value of the
// first entry that matches the input. The second return is false when no
// entry matched.
func FirstMatch[T any](patterns []Pattern[T], input string) (T, bool) {
	lower := strings.ToLower(input)
	for _, p := range patterns {
		if p.Matches(input, lower) {
			return p.Value, true
		}
	}
	var zero T
	return zero, false
}

// AllMatches returns the values of every matching entry, in table order.
func AllMatches[T any](patterns []Pattern[T], input string) []T {
	lower := strings.ToLower(input)
	var out []T
	for _, p := range patterns {
		if p.Matches(input, lower) {
			out = append(out, p.Value)
		}
	}
	return out
}

// substring matches when the phrase occurs verbatim in the raw input.
func substring(phrase string) func(raw, lower string) bool {
	return func(raw, _ string) bool {
		return strings.Contains(raw, phrase)
	}
}

// named matches the canonical name verbatim, or any alias
// case-insensitively.
func named(name string, aliases ...string) func(raw, lower string) bool {
	lowered := make([]string, len(aliases))
	for i, a := range aliases {
		lowered[i] = strings.ToLower(a)
	}
	return func(raw, lower string) bool {
		if strings.Contains(raw, name) {
			return true
		}
		for i, a := range aliases {
			if strings.Contains(lower, lowered[i]) || strings.Contains(raw, a) {
				return true
			}
		}
		return false
	}
}

// anyOf matches when any of the phrases occurs in the raw input.
func anyOf(phrases ...string) func(raw, lower string) bool {
	return func(raw, _ string) bool {
		for _, p := range phrases {
			if strings.Contains(raw, p) {
				return true
			}
		}
		return false
	}
}

// anyOfFold matches phrases case-insensitively as well as verbatim.
func anyOfFold(phrases ...string) func(raw, lower string) bool {
	lowered := make([]string, len(phrases))
	for i, p := range phrases {
		lowered[i] = strings.ToLower(p)
	}
	return func(raw, lower string) bool {
		for i, p := range phrases {
			if strings.Contains(lower, lowered[i]) || strings.Contains(raw, p) {
				return true
			}
		}
		return false
	}
}
