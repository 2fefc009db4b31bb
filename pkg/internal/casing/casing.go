// Package casing converts field keys between lexical conventions. Conversion
// splits a key into words on underscores and on lower-to-upper case
// transitions, then re-joins the words per the target mode. Every mode is
// idempotent: converting an already-converted key is a no-op.
package casing

import "strings"

// Mode is the target key convention.
type Mode int

const (
	None      Mode = iota // None leaves keys untouched.
	Snake                 // Snake produces snake_case.
	Camel                 // Camel produces camelCase.
	Pascal                // Pascal produces PascalCase.
	Screaming             // Screaming produces SCREAMING_SNAKE_CASE.
)

// String returns the mode's name.
func (m Mode) String() string {
	switch m {
	case Snake:
		return "snake"
	case Camel:
		return "camel"
	case Pascal:
		return "pascal"
	case Screaming:
		return "screaming"
	default:
		return "none"
	}
}

// Convert maps key into the given mode.
func Convert(key string, mode Mode) string {
	switch mode {
	case Snake:
		return toSnake(key)
	case Camel:
		return toCamel(key)
	case Pascal:
		return toPascal(key)
	case Screaming:
		return strings.ToUpper(toSnake(key))
	default:
		return key
	}
}

func isUpper(b byte) bool { return b >= 'A' && b <= 'Z' }
func isLower(b byte) bool { return b >= 'a' && b <= 'z' }

func toLower(b byte) byte {
	if isUpper(b) {
		return b + ('a' - 'A')
	}
	return b
}

func toUpper(b byte) byte {
	if isLower(b) {
		return b - ('a' - 'A')
	}
	return b
}

// toSnake inserts an underscore before each upper-case letter that starts a
// new word (previous byte neither upper-case nor an underscore) and lowers
// everything.
func toSnake(key string) string {
	var out strings.Builder
	out.Grow(len(key) + 4)
	upperOrUnderscoreLast := false
	for i := 0; i < len(key); i++ {
		ch := key[i]
		if i > 0 && isUpper(ch) && !upperOrUnderscoreLast {
			out.WriteByte('_')
		}
		upperOrUnderscoreLast = isUpper(ch) || ch == '_'
		out.WriteByte(toLower(ch))
	}
	return out.String()
}

// toPascal drops underscores, capitalizes the first letter of each word, and
// lowers the tail of runs of upper-case letters so acronym keys collapse to a
// single word.
func toPascal(key string) string {
	var out strings.Builder
	out.Grow(len(key))
	capitalize := true
	upperLast := false
	for i := 0; i < len(key); i++ {
		ch := key[i]
		if isLower(ch) {
			upperLast = false
		}
		switch {
		case ch == '_':
			capitalize = true
			upperLast = false
		case upperLast:
			out.WriteByte(toLower(ch))
		case capitalize:
			out.WriteByte(toUpper(ch))
			capitalize = false
			upperLast = true
		default:
			out.WriteByte(ch)
			upperLast = false
		}
	}
	return out.String()
}

func toCamel(key string) string {
	pascal := toPascal(key)
	if pascal == "" {
		return pascal
	}
	return string(toLower(pascal[0])) + pascal[1:]
}
