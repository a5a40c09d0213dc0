// Package slug derives URL-safe article slugs from titles.
package slug

import (
	"regexp"
	"strings"
)

var (
	nonSlugChars = regexp.MustCompile(`[^a-z0-9\s]`)
	hyphenRuns   = regexp.MustCompile(`-+`)
)

// Make converts a title into its slug. The slug is computed once, when an
// article is constructed, and is never re-derived on update.
//
// Titles that begin or end with punctuation produce slugs with a leading or
// trailing hyphen. Existing article URLs depend on that, so no trimming is
// done here.
func Make(title string) string {
	s := strings.ToLower(title)
	s = strings.ReplaceAll(s, "\n", " ")
	s = nonSlugChars.ReplaceAllString(s, " ")
	tokens := strings.Split(s, " ")
	s = strings.Join(tokens, "-")
	return hyphenRuns.ReplaceAllString(s, "-")
}
