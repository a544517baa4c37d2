package strsplit

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDelimiter_FindNext(t *testing.T) {
	tests := []struct {
		name      string
		delim     Delimiter
		input     string
		wantStart int
		wantEnd   int
		wantOk    bool
	}{
		{name: "literal single char", delim: Literal(" "), input: "ab cd", wantStart: 2, wantEnd: 3, wantOk: true},
		{name: "literal multi char", delim: Literal("::"), input: "a::b::c", wantStart: 1, wantEnd: 3, wantOk: true},
		{name: "literal at start", delim: Literal(","), input: ",a", wantStart: 0, wantEnd: 1, wantOk: true},
		{name: "literal missing", delim: Literal(";"), input: "a,b", wantOk: false},
		{name: "literal on empty", delim: Literal(","), input: "", wantOk: false},
		{name: "whitespace space", delim: Whitespace, input: "ab c", wantStart: 2, wantEnd: 3, wantOk: true},
		{name: "whitespace tab", delim: Whitespace, input: "ab\tc", wantStart: 2, wantEnd: 3, wantOk: true},
		{name: "whitespace multibyte", delim: Whitespace, input: "é　x", wantStart: 2, wantEnd: 5, wantOk: true},
		{name: "whitespace missing", delim: Whitespace, input: "abc", wantOk: false},
		{name: "whitespace on empty", delim: Whitespace, input: "", wantOk: false},
		{name: "rune ascii", delim: Rune(','), input: "a,b", wantStart: 1, wantEnd: 2, wantOk: true},
		{name: "rune multibyte", delim: Rune('→'), input: "α→β", wantStart: 2, wantEnd: 5, wantOk: true},
		{name: "rune missing", delim: Rune('x'), input: "abc", wantOk: false},
		{name: "rune on empty", delim: Rune('x'), input: "", wantOk: false},
		{name: "rune error matches invalid byte", delim: Rune('�'), input: "a\xffb", wantStart: 1, wantEnd: 2, wantOk: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			start, end, ok := tt.delim.FindNext(tt.input)

			assert.Equal(t, tt.wantOk, ok)
			if !tt.wantOk {
				return
			}
			assert.Equal(t, tt.wantStart, start)
			assert.Equal(t, tt.wantEnd, end)
			assert.LessOrEqual(t, start, end)
			assert.LessOrEqual(t, end, len(tt.input))
		})
	}
}

func TestDelimiter_FindNext_Leftmost(t *testing.T) {
	start, end, ok := Literal("aa").FindNext("xaaa")

	assert.True(t, ok)
	assert.Equal(t, 1, start)
	assert.Equal(t, 3, end)
}
