package formmodel

import "strings"

// DefaultLabeler converts a field name into a human-friendly label, splitting
// on separators and camelCase boundaries.
func DefaultLabeler(name string) string {
	if name == "" {
		return ""
	}

	var words []string
	var current strings.Builder
	flush := func() {
		if current.Len() > 0 {
			words = append(words, titleCase(current.String()))
			current.Reset()
		}
	}

	runes := []rune(name)
	for i, r := range runes {
		switch {
		case r == '_' || r == '-' || r == ' ':
			flush()
		case i > 0 && boundary(runes[i-1], r):
			flush()
			current.WriteRune(r)
		default:
			current.WriteRune(r)
		}
	}
	flush()

	return strings.Join(words, " ")
}

func boundary(prev, r rune) bool {
	return (isLower(prev) && isUpper(r)) ||
		(isLetter(prev) && isDigit(r)) ||
		(isDigit(prev) && isLetter(r))
}

func isUpper(r rune) bool  { return r >= 'A' && r <= 'Z' }
func isLower(r rune) bool  { return r >= 'a' && r <= 'z' }
func isDigit(r rune) bool  { return r >= '0' && r <= '9' }
func isLetter(r rune) bool { return isUpper(r) || isLower(r) }

func titleCase(word string) string {
	if word == "" {
		return ""
	}
	lower := strings.ToLower(word)
	return strings.ToUpper(lower[:1]) + lower[1:]
}
