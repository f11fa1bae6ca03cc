package sections

import (
	"regexp"
	"strings"
)

const maxKeyPhrases = 50

// titleCasePattern finds runs of two to six words that start with a capitalised word
var titleCasePattern = regexp.MustCompile(`\b[A-Z][a-z]*(?:\s+(?:[a-z]+|[A-Z][a-z]*)){1,5}\b`)

// KeyPhrases returns distinct title-case phrases in first-seen order, at most 50.
// Words after the first must be capitalised or joining words, and one trailing joining word is dropped.
func (e *Extractor) KeyPhrases(text string) []string {
	phrases := []string{}
	seen := make(map[string]struct{})

	for _, line := range strings.Split(text, "\n") {
		for _, match := range titleCasePattern.FindAllString(line, -1) {
			phrase, ok := e.keyPhrase(match)
			if !ok {
				continue
			}
			if _, dup := seen[phrase]; dup {
				continue
			}
			seen[phrase] = struct{}{}
			phrases = append(phrases, phrase)
		}
	}

	if len(phrases) > maxKeyPhrases {
		phrases = phrases[:maxKeyPhrases]
	}
	return phrases
}

func (e *Extractor) keyPhrase(match string) (string, bool) {
	words := strings.Fields(match)
	if len(words) < 2 || len(words) > 6 {
		return "", false
	}
	for i, word := range words {
		if startsUpper(word) {
			continue
		}
		if i == 0 || !e.lex.IsJoiningWord(word) {
			return "", false
		}
	}

	phrase := strings.TrimSpace(match)
	if e.lex.IsJoiningWord(words[len(words)-1]) {
		phrase = strings.Join(words[:len(words)-1], " ")
	}
	if len(phrase) <= 3 {
		return "", false
	}
	return phrase, true
}

func startsUpper(word string) bool {
	return word != "" && word[0] >= 'A' && word[0] <= 'Z'
}
