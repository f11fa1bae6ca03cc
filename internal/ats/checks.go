package ats

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

const (
	minSentenceLength = 10
	maxSentenceWords  = 25
	maxLineLength     = 100
)

var (
	wordPattern          = regexp.MustCompile(`\b\w+\b`)
	sentenceSplitPattern = regexp.MustCompile(`[.!?]+`)

	// a line that opens with a bullet glyph and a space is exempt from the long line check
	bulletedLinePattern = regexp.MustCompile(`^\s*[•·▪▫◦‣⁃\-*+]\s+`)
	bulletPattern       = regexp.MustCompile(`^(?:[•·▪▫◦‣⁃]|[-*+]|\d+\.|[a-zA-Z]\.)`)
)

// CountWords counts \w+ tokens
func CountWords(text string) int {
	return len(wordPattern.FindAllStringIndex(text, -1))
}

// CountLongSentences counts sentences longer than 10 characters that have more than 25 words.
func CountLongSentences(text string) int {
	count := 0
	for _, sentence := range sentenceSplitPattern.Split(text, -1) {
		trimmed := strings.TrimSpace(sentence)
		if runeLen(trimmed) <= minSentenceLength {
			continue
		}
		if len(strings.Fields(trimmed)) > maxSentenceWords {
			count++
		}
	}
	return count
}

// CountLongLines counts lines over 100 characters that are not bullet points
func CountLongLines(lines []string) int {
	count := 0
	for _, line := range lines {
		if runeLen(line) > maxLineLength && !bulletedLinePattern.MatchString(line) {
			count++
		}
	}
	return count
}

// CountBulletPoints counts lines starting with a bullet glyph, dash, asterisk, plus, or a numbered or lettered list marker.
func CountBulletPoints(lines []string) int {
	count := 0
	for _, line := range lines {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			continue
		}
		if bulletPattern.MatchString(trimmed) {
			count++
		}
	}
	return count
}

// SpecialCharRatio returns the fraction of characters in text for which isSpecial is true
func SpecialCharRatio(text string, isSpecial func(rune) bool) float64 {
	total := 0
	special := 0
	for _, r := range text {
		total++
		if isSpecial(r) {
			special++
		}
	}
	if total == 0 {
		return 0
	}
	return float64(special) / float64(total)
}

func nonBlankLines(text string) []string {
	raw := strings.Split(text, "\n")
	lines := make([]string, 0, len(raw))
	for _, line := range raw {
		if strings.TrimSpace(line) != "" {
			lines = append(lines, line)
		}
	}
	return lines
}

func runeLen(s string) int {
	return utf8.RuneCountInString(s)
}
