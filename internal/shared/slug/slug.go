// Package slug derives URL-safe identifiers from display names.
package slug

import (
	"strconv"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Slugify lower-cases text, folds accented letters to their ASCII base,
// drops everything outside [a-z0-9], whitespace and '-', and joins the
// remaining words with single hyphens. The result is either empty or matches
// ^[a-z0-9]+(-[a-z0-9]+)*$, and Slugify(Slugify(s)) == Slugify(s).
func Slugify(text string) string {
	folded := fold(text)

	var b strings.Builder
	b.Grow(len(folded))
	pendingHyphen := false
	for _, r := range strings.ToLower(folded) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			if pendingHyphen && b.Len() > 0 {
				b.WriteByte('-')
			}
			pendingHyphen = false
			b.WriteRune(r)
		case r == '-' || unicode.IsSpace(r):
			pendingHyphen = true
		}
	}
	return b.String()
}

func fold(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	out, _, err := transform.String(t, s)
	if err != nil {
		return s
	}
	return out
}

// WithSuffix returns base-n.
func WithSuffix(base string, n int) string {
	return base + "-" + strconv.Itoa(n)
}

// NextAvailable returns base when it is not taken, otherwise base-N for the
// smallest N >= 2 not in taken.
func NextAvailable(base string, taken []string) string {
	used := make(map[string]bool, len(taken))
	for _, t := range taken {
		used[t] = true
	}
	if !used[base] {
		return base
	}
	for n := 2; ; n++ {
		if candidate := WithSuffix(base, n); !used[candidate] {
			return candidate
		}
	}
}
