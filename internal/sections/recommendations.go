package sections

import (
	"regexp"

	"github.com/lachho/resume/internal/types"
)

var (
	linkedInPattern   = regexp.MustCompile(`(?i)linkedin\.com/in/`)
	quantifiedPattern = regexp.MustCompile(`(?i)\d+%|\d+\s*(?:years?|months?)|\$\d+|\d+\s*(?:people|team|projects?)`)
)

func (e *Extractor) recommendations(text, lower string) []string {
	recs := []string{}

	if !emailPattern.MatchString(text) {
		recs = append(recs, "Consider adding a professional email address to your contact information.")
	}
	if !phonePattern.MatchString(text) {
		recs = append(recs, "Consider adding a phone number to make it easier for employers to contact you.")
	}
	if !linkedInPattern.MatchString(text) {
		recs = append(recs, "Consider adding your LinkedIn profile URL to enhance your professional presence.")
	}
	if !e.hasSection(lower, types.SectionSkills) {
		recs = append(recs, "Consider adding a dedicated skills section to highlight your technical competencies.")
	}
	if !quantifiedPattern.MatchString(text) {
		recs = append(recs, "Consider adding quantified achievements (percentages, numbers, timeframes) to demonstrate impact.")
	}
	if !e.lex.HasDegreeKeyword(lower) {
		recs = append(recs, "Consider adding your educational background to provide context for your qualifications.")
	}

	return recs
}

func (e *Extractor) hasSection(lower, name string) bool {
	for _, header := range e.headers {
		if header.Name == name {
			return containsAny(lower, header.Variants)
		}
	}
	return false
}
