package strsplit

import (
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/DjordjeVuckovic/strsplit/internal/apperr"
)

const (
	runePrefix    = "rune:"
	literalPrefix = "literal:"
)

// ParseDelimiter builds a Delimiter from its textual form:
//
//	"", "whitespace"  split on any whitespace rune
//	"rune:X"          split on the single rune X
//	"literal:XYZ"     split on the exact text XYZ
//	anything else     split on the text itself
func ParseDelimiter(spec string) (Delimiter, error) {
	switch {
	case spec == "" || spec == "whitespace":
		return Whitespace, nil
	case strings.HasPrefix(spec, runePrefix):
		v := strings.TrimPrefix(spec, runePrefix)
		if utf8.RuneCountInString(v) != 1 {
			return nil, apperr.NewValidation("rune delimiter must be exactly one character, got " + strconv.Quote(v))
		}
		if !utf8.ValidString(v) {
			return nil, apperr.NewValidation("rune delimiter is not valid UTF-8")
		}
		r, _ := utf8.DecodeRuneInString(v)
		return Rune(r), nil
	case strings.HasPrefix(spec, literalPrefix):
		return parseLiteral(strings.TrimPrefix(spec, literalPrefix))
	default:
		return parseLiteral(spec)
	}
}

// parseLiteral rejects invalid UTF-8 so a match never splits a codepoint.
func parseLiteral(v string) (Delimiter, error) {
	if !utf8.ValidString(v) {
		return nil, apperr.NewValidation("literal delimiter is not valid UTF-8")
	}
	return Literal(v), nil
}
