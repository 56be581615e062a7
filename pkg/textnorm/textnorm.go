// Package textnorm normalizes transcribed utterances before matching.
package textnorm

import "strings"

// Normalize lower-cases text and strips leading and trailing whitespace.
func Normalize(text string) string {
	return strings.TrimSpace(strings.ToLower(text))
}
