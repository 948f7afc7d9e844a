package slug

import "strings"

// Derive builds a URL-safe slug from an episode title. Lowercases,
// strips everything except letters, digits, spaces and hyphens,
// collapses whitespace runs to single hyphens, collapses repeated
// hyphens, and trims hyphens from both ends.
func Derive(title string) string {
	lower := strings.ToLower(title)

	var b strings.Builder
	b.Grow(len(lower))
	for _, r := range lower {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9', r == '-':
			b.WriteRune(r)
		case r == ' ', r == '\t', r == '\n', r == '\r':
			b.WriteRune(' ')
		}
	}

	// Whitespace runs become single hyphens
	cleaned := strings.Join(strings.Fields(b.String()), "-")

	// Collapse repeated hyphens left over from the title itself
	for strings.Contains(cleaned, "--") {
		cleaned = strings.ReplaceAll(cleaned, "--", "-")
	}

	return strings.Trim(cleaned, "-")
}
