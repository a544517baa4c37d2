package strsplit

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// Delimiter locates the next delimiter occurrence in s.
// On a match s[start:end] is the delimiter itself, s[:start] the token before
// it and s[end:] the remainder. A match must consume at least one byte.
type Delimiter interface {
	FindNext(s string) (start, end int, ok bool)
}

// Literal matches an exact run of text. The empty Literal matches the next
// whitespace rune instead.
type Literal string

// Whitespace splits on any single unicode whitespace rune.
const Whitespace = Literal("")

func (l Literal) FindNext(s string) (int, int, bool) {
	if l == "" {
		for i, r := range s {
			if unicode.IsSpace(r) {
				return i, i + utf8.RuneLen(r), true
			}
		}
		return 0, 0, false
	}

	i := strings.Index(s, string(l))
	if i < 0 {
		return 0, 0, false
	}
	return i, i + len(l), true
}

// Rune matches a single codepoint.
type Rune rune

func (c Rune) FindNext(s string) (int, int, bool) {
	i := strings.IndexRune(s, rune(c))
	if i < 0 {
		return 0, 0, false
	}
	// RuneError also matches invalid bytes, so take the width from s.
	_, size := utf8.DecodeRuneInString(s[i:])
	return i, i + size, true
}
