package ats

import (
	"strings"
	"testing"

	"github.com/lachho/resume/internal/lexicon"
	"github.com/stretchr/testify/assert"
)

func TestCountWords(t *testing.T) {
	tests := []struct {
		name string
		text string
		want int
	}{
		{name: "empty", text: "", want: 0},
		{name: "punctuation only", text: "-- ... !!", want: 0},
		{name: "hyphenated words split", text: "self-motivated engineer", want: 3},
		{name: "numbers count", text: "Managed 12 projects in 2023", want: 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CountWords(tt.text))
		})
	}
}

func TestCountLongSentences(t *testing.T) {
	long := strings.TrimSpace(strings.Repeat("bridge ", 26))
	short := strings.TrimSpace(strings.Repeat("bridge ", 25))

	assert.Equal(t, 1, CountLongSentences(long+"."))
	assert.Equal(t, 0, CountLongSentences(short+"."))
	assert.Equal(t, 2, CountLongSentences(long+"! "+long+"?"))
	assert.Equal(t, 0, CountLongSentences("Short. Tiny! Ok?"))
}

func TestCountLongLines(t *testing.T) {
	long := strings.Repeat("a", 101)

	tests := []struct {
		name  string
		lines []string
		want  int
	}{
		{name: "plain long line", lines: []string{long}, want: 1},
		{name: "exactly 100 characters", lines: []string{strings.Repeat("a", 100)}, want: 0},
		{name: "dash bullet exempt", lines: []string{"- " + long}, want: 0},
		{name: "glyph bullet exempt", lines: []string{"  • " + long}, want: 0},
		{name: "bullet without space is not exempt", lines: []string{"-" + long}, want: 1},
		{name: "counted per line", lines: []string{long, long, "short"}, want: 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CountLongLines(tt.lines))
		})
	}
}

func TestCountBulletPoints(t *testing.T) {
	tests := []struct {
		name string
		line string
		want int
	}{
		{name: "bullet glyph", line: "• Designed culverts", want: 1},
		{name: "middle dot", line: "· Designed culverts", want: 1},
		{name: "square", line: "▪ Designed culverts", want: 1},
		{name: "dash without space", line: "-Designed culverts", want: 1},
		{name: "asterisk", line: "* Designed culverts", want: 1},
		{name: "plus", line: "+ Designed culverts", want: 1},
		{name: "numbered", line: "12. Designed culverts", want: 1},
		{name: "lettered", line: "b. Designed culverts", want: 1},
		{name: "indented", line: "    - Designed culverts", want: 1},
		{name: "plain text", line: "Designed culverts", want: 0},
		{name: "year", line: "2021 Graduate Engineer", want: 0},
		{name: "blank", line: "   ", want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CountBulletPoints([]string{tt.line}))
		})
	}
}

func TestSpecialCharRatio(t *testing.T) {
	lex := lexicon.Default()

	assert.Equal(t, 0.0, SpecialCharRatio("", lex.IsSpecialCharacter))
	assert.InDelta(t, 0.5, SpecialCharRatio("a©", lex.IsSpecialCharacter), 1e-9)
	assert.InDelta(t, 0.25, SpecialCharRatio("ab°c", lex.IsSpecialCharacter), 1e-9)
	assert.Equal(t, 0.0, SpecialCharRatio("plain ascii - * +", lex.IsSpecialCharacter))
}

func TestEmojiBands(t *testing.T) {
	assert.Equal(t, good, wordCountEmoji(300))
	assert.Equal(t, good, wordCountEmoji(700))
	assert.Equal(t, warning, wordCountEmoji(200))
	assert.Equal(t, warning, wordCountEmoji(1000))
	assert.Equal(t, bad, wordCountEmoji(199))
	assert.Equal(t, bad, wordCountEmoji(1001))

	assert.Equal(t, bad, pageCountEmoji(0))
	assert.Equal(t, bad, pageCountEmoji(4))

	assert.Equal(t, good, bulletPointsEmoji(10))
	assert.Equal(t, warning, bulletPointsEmoji(5))
	assert.Equal(t, bad, bulletPointsEmoji(4))

	assert.Equal(t, warning, countEmoji(5))
	assert.Equal(t, bad, countEmoji(6))

	assert.Equal(t, good, specialCharactersEmoji(5))
	assert.Equal(t, warning, specialCharactersEmoji(10))
	assert.Equal(t, bad, specialCharactersEmoji(11))
}
