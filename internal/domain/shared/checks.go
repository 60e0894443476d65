// Package shared holds field checks reused by several aggregates.
package shared

import (
	"net/url"
	"regexp"
	"strings"
	"unicode/utf8"
)

var mailboxPattern = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)

// IsMailbox reports whether s looks like local@domain.tld.
func IsMailbox(s string) bool {
	return mailboxPattern.MatchString(s)
}

// IsAbsoluteURI reports whether s parses as a URI with scheme and host.
func IsAbsoluteURI(s string) bool {
	u, err := url.Parse(s)
	if err != nil {
		return false
	}
	return u.Scheme != "" && u.Host != ""
}

// RuneLen counts characters rather than bytes.
func RuneLen(s string) int {
	return utf8.RuneCountInString(s)
}

// LenBetween reports whether the trimmed length of s is within [min, max].
func LenBetween(s string, minLen, maxLen int) bool {
	n := RuneLen(strings.TrimSpace(s))
	return n >= minLen && n <= maxLen
}
