// Package strsplit splits strings into non-empty tokens lazily and without
// copying. Every token is a sub-slice of the source string.
package strsplit

import "iter"

// Splitter is a single-pass token iterator over a source string.
// It is not safe for concurrent use.
type Splitter struct {
	remaining string
	exhausted bool
	delim     Delimiter
}

func New(s string, d Delimiter) *Splitter {
	return &Splitter{
		remaining: s,
		delim:     d,
	}
}

// Next returns the next non-empty token and true, or "" and false once the
// input is exhausted. Consecutive, leading and trailing delimiters never
// produce empty tokens.
func (sp *Splitter) Next() (string, bool) {
	for {
		if sp.exhausted {
			return "", false
		}

		if sp.remaining == "" {
			sp.exhausted = true
			return "", false
		}

		start, end, ok := sp.delim.FindNext(sp.remaining)
		if !ok {
			tail := sp.remaining
			sp.remaining = ""
			sp.exhausted = true
			return tail, true
		}

		token := sp.remaining[:start]
		sp.remaining = sp.remaining[end:]
		if token == "" {
			continue
		}
		return token, true
	}
}

// Exhausted reports whether the splitter reached its terminal state.
func (sp *Splitter) Exhausted() bool {
	return sp.exhausted
}

// All returns the remaining tokens as a sequence. The sequence drives the
// splitter itself, so tokens consumed through it are gone for later calls.
func (sp *Splitter) All() iter.Seq[string] {
	return func(yield func(string) bool) {
		for {
			token, ok := sp.Next()
			if !ok || !yield(token) {
				return
			}
		}
	}
}

// Collect splits s on d and returns all tokens.
func Collect(s string, d Delimiter) []string {
	var tokens []string
	for token := range New(s, d).All() {
		tokens = append(tokens, token)
	}
	return tokens
}
