package strsplit

import "fmt"

// UntilRune returns the text before the first occurrence of c, skipping
// leading occurrences. If c does not occur, s is returned whole.
// It panics if s yields no token at all, i.e. s is empty or consists only
// of c.
func UntilRune(s string, c rune) string {
	token, ok := New(s, Rune(c)).Next()
	if !ok {
		panic(fmt.Sprintf("strsplit: %q split on %q yielded no token", s, c))
	}
	return token
}
