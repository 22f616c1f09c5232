// Package textutil provides the text normalization applied to resumes and
// job descriptions before embedding.
package textutil

import (
	"regexp"
	"strings"
)

var (
	phonePattern = regexp.MustCompile(`\p{Nd}{10}`)
	emailPattern = regexp.MustCompile(`\S+@\S+`)
	urlPattern   = regexp.MustCompile(`http\S+`)
	// word characters here are Unicode: accented and non-Latin letters
	// must survive normalization
	punctPattern = regexp.MustCompile(`[^\p{L}\p{N}_\s]`)
)

// Clean normalizes free text for embedding: strips 10-digit runs (phone
// numbers), email-like tokens, URL-like tokens and punctuation, then trims
// and lowercases. The passes run in this order; punctuation removal first
// would break the email and URL token patterns.
func Clean(text string) string {
	text = phonePattern.ReplaceAllString(text, "")
	text = emailPattern.ReplaceAllString(text, "")
	text = urlPattern.ReplaceAllString(text, "")
	text = punctPattern.ReplaceAllString(text, "")
	return strings.ToLower(strings.TrimSpace(text))
}
