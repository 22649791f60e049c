// Package render turns view models into terminal output. All text that
// originates from other users goes through Sanitize before printing, so a
// crafted title or comment cannot smuggle escape sequences into the
// terminal.
package render

import (
	"strings"
	"unicode"
)

// Placeholders for absent server fields, so a missing value never renders
// an empty hole.
const (
	DefaultUsername = "usuario"
	DefaultAvatar   = "(sin foto)"
	DefaultTitle    = "(sin título)"
)

// Sanitize strips terminal control characters from untrusted text. ANSI
// escape sequences lose their ESC byte and become visible garbage instead
// of taking effect; newlines and tabs collapse to single spaces so one
// field cannot fake extra lines.
func Sanitize(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		switch {
		case r == '\n' || r == '\t' || r == '\r':
			b.WriteRune(' ')
		case unicode.IsControl(r):
			// drop, including ESC
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}

// Username returns the sanitized name or the neutral placeholder.
func Username(name string) string {
	if strings.TrimSpace(name) == "" {
		return DefaultUsername
	}
	return Sanitize(name)
}

// Avatar returns the avatar URL or the placeholder marker.
func Avatar(url string) string {
	if strings.TrimSpace(url) == "" {
		return DefaultAvatar
	}
	return Sanitize(url)
}

// Title returns the sanitized album title or the placeholder.
func Title(title string) string {
	if strings.TrimSpace(title) == "" {
		return DefaultTitle
	}
	return Sanitize(title)
}
