// Package sections extracts contact details, skills, key phrases and education entries from resume
// text and detects which standard resume sections it contains.
package sections

import (
	"regexp"
	"strings"

	"github.com/lachho/resume/internal/lexicon"
	"github.com/lachho/resume/internal/types"
)

// education lines this short need a year or an institution to count
const minEducationLength = 10

var (
	yearPattern        = regexp.MustCompile(`\b(?:19|20)\d{2}\b`)
	institutionPattern = regexp.MustCompile(`(?i)\b(?:university|college|institute|school)\b`)
)

// Extractor pulls structured information out of resume text
type Extractor struct {
	lex        *lexicon.Lexicon
	hardSkills []lexicon.Category
	softSkills []lexicon.Category
	headers    []lexicon.Category
}

// New creates an Extractor backed by lex
func New(lex *lexicon.Lexicon) *Extractor {
	return &Extractor{
		lex:        lex,
		hardSkills: lowerCategories(lex.HardSkills()),
		softSkills: lowerCategories(lex.SoftSkills()),
		headers:    lowerCategories(lex.SectionHeaders()),
	}
}

// Parse extracts everything it can from text. Blank text yields an empty result with every section absent.
func (e *Extractor) Parse(text string) types.SectionsResult {
	if strings.TrimSpace(text) == "" {
		return emptyResult()
	}

	lower := strings.ToLower(text)
	lines := nonBlankLines(text)

	return types.SectionsResult{
		ContactInfo:     ExtractContactInfo(text),
		Skills:          e.Skills(lower),
		KeyPhrases:      e.KeyPhrases(text),
		Education:       e.Education(lines),
		Sections:        e.Sections(lower),
		Recommendations: e.recommendations(text, lower),
	}
}

// Skills reports the hard and soft skill categories with at least one variant in lower.
// Categories appear once each, in lexicon order.
func (e *Extractor) Skills(lower string) types.SkillSet {
	return types.SkillSet{
		Hard: matchingCategories(e.hardSkills, lower),
		Soft: matchingCategories(e.softSkills, lower),
	}
}

// Education returns the distinct trimmed lines that look like qualifications
func (e *Extractor) Education(lines []string) []string {
	education := []string{}
	seen := make(map[string]struct{})
	for _, line := range lines {
		if !e.lex.HasDegreeKeyword(line) {
			continue
		}
		trimmed := strings.TrimSpace(line)
		if !yearPattern.MatchString(line) && !institutionPattern.MatchString(line) && len([]rune(trimmed)) <= minEducationLength {
			continue
		}
		if _, ok := seen[trimmed]; ok {
			continue
		}
		seen[trimmed] = struct{}{}
		education = append(education, trimmed)
	}
	return education
}

// Sections reports, for every standard section, whether any of its header phrases occurs in lower
func (e *Extractor) Sections(lower string) map[string]bool {
	present := make(map[string]bool, len(e.headers))
	for _, header := range e.headers {
		present[header.Name] = containsAny(lower, header.Variants)
	}
	return present
}

func emptyResult() types.SectionsResult {
	present := make(map[string]bool, len(types.SectionNames))
	for _, name := range types.SectionNames {
		present[name] = false
	}
	return types.SectionsResult{
		ContactInfo:     types.ContactInfo{URLs: []string{}},
		Skills:          types.SkillSet{Hard: []string{}, Soft: []string{}},
		KeyPhrases:      []string{},
		Education:       []string{},
		Sections:        present,
		Recommendations: []string{},
	}
}

func matchingCategories(categories []lexicon.Category, lower string) []string {
	names := []string{}
	for _, c := range categories {
		if containsAny(lower, c.Variants) {
			names = append(names, c.Name)
		}
	}
	return names
}

func containsAny(s string, substrings []string) bool {
	for _, sub := range substrings {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}

// lowerCategories lower-cases every variant; names keep their declared spelling
func lowerCategories(categories []lexicon.Category) []lexicon.Category {
	for i := range categories {
		for j, v := range categories[i].Variants {
			categories[i].Variants[j] = strings.ToLower(v)
		}
	}
	return categories
}

func nonBlankLines(text string) []string {
	var lines []string
	for _, line := range strings.Split(text, "\n") {
		if strings.TrimSpace(line) != "" {
			lines = append(lines, line)
		}
	}
	return lines
}
