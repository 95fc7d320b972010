package entities

import "strings"

// NormalizeContent unifies line endings to LF, trims whitespace at both ends
// of the document and terminates it with exactly one newline.
func NormalizeContent(content string) string {
	unified := strings.ReplaceAll(content, "\r\n", "\n")
	return strings.TrimSpace(unified) + "\n"
}

// ContentMatches reports whether current and desired are equal after normalization.
func ContentMatches(current, desired string) bool {
	return NormalizeContent(current) == NormalizeContent(desired)
}
