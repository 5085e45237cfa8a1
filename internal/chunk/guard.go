// Package chunk holds the pre-flight size check for /check requests.
// Text is never split: the provider rejects oversized bodies, so the
// caller is told up front instead.
package chunk

import "unicode/utf8"

// DefaultMaxChars is the free-tier limit of the public LanguageTool API.
const DefaultMaxChars = 20000

// Exceeds reports whether text is longer than limit characters.
// n is the character count (whitespace included). A limit <= 0 disables
// the check.
func Exceeds(text string, limit int) (n int, over bool) {
	if limit <= 0 {
		return utf8.RuneCountInString(text), false
	}
	// Byte length bounds the rune count from above.
	if len(text) <= limit {
		return utf8.RuneCountInString(text), false
	}
	n = utf8.RuneCountInString(text)
	return n, n > limit
}
