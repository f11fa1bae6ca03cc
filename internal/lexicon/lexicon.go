// Package lexicon holds the keyword tables that drive every resume analyser.
// A Lexicon is validated and compiled once, then shared read-only between analysers.
package lexicon

import (
	"embed"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"regexp"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
)

//go:embed default.json
var defaultFS embed.FS

var (
	defaultOnce    sync.Once
	defaultLexicon *Lexicon
)

// term is a lexicon entry with its whole-word, case-insensitive pattern
type term struct {
	word    string
	pattern *regexp.Regexp
}

// Lexicon is an immutable, compiled set of keyword tables
type Lexicon struct {
	tables         Tables
	strongVerbs    []term
	weakVerbs      []term
	pronouns       *regexp.Regexp
	degreeKeywords []string
	specialChars   map[rune]struct{}
	joiningWords   map[string]struct{}
}

// Default returns the built-in civil engineering lexicon.
// It panics if the embedded tables are invalid, which only a broken build can cause.
func Default() *Lexicon {
	defaultOnce.Do(func() {
		data, err := defaultFS.ReadFile("default.json")
		if err != nil {
			panic(fmt.Sprintf("failed to read embedded lexicon: %v", err))
		}
		lex, err := Parse(data)
		if err != nil {
			panic(fmt.Sprintf("embedded lexicon is invalid: %v", err))
		}
		defaultLexicon = lex
	})
	return defaultLexicon
}

// DefaultJSON returns the raw embedded default tables.
func DefaultJSON() []byte {
	data, _ := defaultFS.ReadFile("default.json")
	return data
}

// Load reads, validates and compiles a lexicon from a JSON file
func Load(path string) (*Lexicon, error) {
	if path == "" {
		return nil, &Error{Message: "lexicon path is empty"}
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &Error{Message: fmt.Sprintf("failed to read lexicon file %s", path), Cause: err}
	}
	return Parse(data)
}

// Parse validates and compiles a lexicon from JSON content
func Parse(data []byte) (*Lexicon, error) {
	var t Tables
	if err := json.Unmarshal(data, &t); err != nil {
		return nil, &Error{Message: "failed to parse lexicon JSON", Cause: err}
	}
	return New(t)
}

// New validates the tables and compiles their patterns.
// The tables are copied, so later changes by the caller do not affect the Lexicon.
func New(t Tables) (*Lexicon, error) {
	if err := validate(t); err != nil {
		return nil, err
	}

	t = t.clone()
	lex := &Lexicon{
		tables:       t,
		specialChars: make(map[rune]struct{}),
		joiningWords: make(map[string]struct{}, len(t.JoiningWords)),
	}

	var err error
	if lex.strongVerbs, err = compileTerms(t.StrongVerbs); err != nil {
		return nil, err
	}
	if lex.weakVerbs, err = compileTerms(t.WeakVerbs); err != nil {
		return nil, err
	}
	if lex.pronouns, err = compileAlternation(t.Pronouns); err != nil {
		return nil, err
	}

	lex.degreeKeywords = make([]string, len(t.DegreeKeywords))
	for i, kw := range t.DegreeKeywords {
		lex.degreeKeywords[i] = strings.ToLower(kw)
	}
	for _, r := range t.SpecialCharacters {
		lex.specialChars[r] = struct{}{}
	}
	for _, w := range t.JoiningWords {
		lex.joiningWords[strings.ToLower(w)] = struct{}{}
	}

	return lex, nil
}

func validate(t Tables) error {
	err := validator.New().Struct(t)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return &Error{Message: "failed to validate lexicon", Cause: err}
	}

	verr := &ValidationError{Errors: make([]FieldError, 0, len(fieldErrs))}
	for _, fe := range fieldErrs {
		verr.Errors = append(verr.Errors, FieldError{
			Field:   fe.Namespace(),
			Message: fmt.Sprintf("failed on the '%s' rule", fe.Tag()),
		})
	}
	return verr
}

func compileTerms(words []string) ([]term, error) {
	terms := make([]term, 0, len(words))
	for _, w := range words {
		re, err := regexp.Compile(`(?i)\b` + regexp.QuoteMeta(w) + `\b`)
		if err != nil {
			return nil, &Error{Message: fmt.Sprintf("failed to compile pattern for %q", w), Cause: err}
		}
		terms = append(terms, term{word: w, pattern: re})
	}
	return terms, nil
}

func compileAlternation(words []string) (*regexp.Regexp, error) {
	quoted := make([]string, len(words))
	for i, w := range words {
		quoted[i] = regexp.QuoteMeta(w)
	}
	re, err := regexp.Compile(`(?i)\b(?:` + strings.Join(quoted, "|") + `)\b`)
	if err != nil {
		return nil, &Error{Message: "failed to compile pronoun pattern", Cause: err}
	}
	return re, nil
}

// Tables returns a copy of the lexicon's tables
func (l *Lexicon) Tables() Tables {
	return l.tables.clone()
}

// HardSkills returns the hard skill taxonomy in declaration order
func (l *Lexicon) HardSkills() []Category {
	return cloneCategories(l.tables.HardSkills)
}

// SoftSkills returns the soft skill taxonomy in declaration order
func (l *Lexicon) SoftSkills() []Category {
	return cloneCategories(l.tables.SoftSkills)
}

// SectionHeaders returns the section header phrases grouped by section
func (l *Lexicon) SectionHeaders() []Category {
	return l.tables.clone().SectionHeaders.Categories()
}

// JobRequirements returns the reference job requirements
func (l *Lexicon) JobRequirements() JobRequirements {
	return l.tables.clone().JobRequirements
}

// StrongVerbsIn returns every strong verb that occurs in line as a whole word, in lexicon order.
func (l *Lexicon) StrongVerbsIn(line string) []string {
	return matchTerms(l.strongVerbs, line)
}

// WeakVerbsIn returns every weak verb that occurs in line as a whole word, in lexicon order.
func (l *Lexicon) WeakVerbsIn(line string) []string {
	return matchTerms(l.weakVerbs, line)
}

// PronounsIn returns each personal pronoun occurrence in line, as written.
func (l *Lexicon) PronounsIn(line string) []string {
	return l.pronouns.FindAllString(line, -1)
}

// HasDegreeKeyword reports whether text contains any degree keyword
func (l *Lexicon) HasDegreeKeyword(text string) bool {
	lower := strings.ToLower(text)
	for _, kw := range l.degreeKeywords {
		if strings.Contains(lower, kw) {
			return true
		}
	}
	return false
}

// IsSpecialCharacter reports whether r is in the problematic character set
func (l *Lexicon) IsSpecialCharacter(r rune) bool {
	_, ok := l.specialChars[r]
	return ok
}

// IsJoiningWord reports whether w may appear lowercase inside a title-case phrase
func (l *Lexicon) IsJoiningWord(w string) bool {
	_, ok := l.joiningWords[strings.ToLower(w)]
	return ok
}

func matchTerms(terms []term, line string) []string {
	var matched []string
	for _, t := range terms {
		if t.pattern.MatchString(line) {
			matched = append(matched, t.word)
		}
	}
	return matched
}
