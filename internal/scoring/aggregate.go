// Package scoring combines the ATS, content and section results into one overall verdict.
package scoring

import (
	"fmt"
	"math"
	"strings"

	"github.com/lachho/resume/internal/types"
)

const (
	atsWeight      = 0.4
	contentWeight  = 0.35
	sectionsWeight = 0.25

	excellentScore = 80
	goodScore      = 65
	weakScore      = 70

	strongBulletPoints   = 8
	minBulletPoints      = 6
	strongActionVerbs    = 5
	strongQuantifiable   = 3
	optimalMinWordCount  = 300
	expectedSectionCount = 6
)

// Aggregate produces the overall score, strengths and areas for improvement.
// Both lists always hold at least one entry.
func Aggregate(ats types.ATSResult, content types.ContentResult, sections types.SectionsResult) types.OverallResult {
	sectionsScore := SectionsScore(sections)
	finalScore := int(math.Round(
		float64(ats.Score)*atsWeight +
			float64(content.Score)*contentWeight +
			sectionsScore*sectionsWeight,
	))

	strengths := collectStrengths(ats, content, sectionsScore)
	if len(strengths) == 0 {
		strengths = append(strengths, "Resume foundation is present and ready for optimisation")
	}

	improvements := collectImprovements(ats, content, sections, sectionsScore)
	if len(improvements) == 0 {
		improvements = append(improvements, "Continue refining content to maximise impact")
	}

	return types.OverallResult{
		FinalScore:          finalScore,
		Strengths:           strengths,
		AreasForImprovement: improvements,
	}
}

// SectionsScore is the share of the six standard sections present, as a percentage
func SectionsScore(sections types.SectionsResult) float64 {
	return math.Min(100, float64(sections.PresentSections())/expectedSectionCount*100)
}

func collectStrengths(ats types.ATSResult, content types.ContentResult, sectionsScore float64) []string {
	var strengths []string

	switch {
	case ats.Score >= excellentScore:
		strengths = append(strengths, "Excellent ATS compatibility - your resume will pass through applicant tracking systems")
	case ats.Score >= goodScore:
		strengths = append(strengths, "Good ATS compatibility with minor optimisation opportunities")
	}

	switch {
	case content.Score >= excellentScore:
		strengths = append(strengths, "Strong content quality with effective language and formatting")
	case content.Score >= goodScore:
		strengths = append(strengths, "Good content structure with room for enhancement")
	}

	if sectionsScore >= excellentScore {
		strengths = append(strengths, "Comprehensive resume structure with all key sections present")
	}

	if ats.Metrics.BulletPoints >= strongBulletPoints {
		strengths = append(strengths, "Well-structured with effective use of bullet points")
	}
	if content.Metrics.StrongActionVerbs >= strongActionVerbs {
		strengths = append(strengths, "Strong action verbs demonstrate measurable achievements")
	}
	if content.Metrics.QuantifiableResults >= strongQuantifiable {
		strengths = append(strengths, "Good use of quantifiable results to showcase impact")
	}

	return strengths
}

func collectImprovements(ats types.ATSResult, content types.ContentResult, sections types.SectionsResult, sectionsScore float64) []string {
	var improvements []string

	if ats.Score < weakScore {
		if ats.Metrics.HasImages {
			improvements = append(improvements, "Remove images and graphics to improve ATS compatibility")
		}
		if ats.Metrics.WordCount < optimalMinWordCount {
			improvements = append(improvements, "Expand content to meet optimal word count (400-600 words)")
		}
		improvements = append(improvements, "Optimise formatting and keywords for better ATS performance")
	}

	if content.Score < weakScore {
		if ats.Metrics.BulletPoints < minBulletPoints {
			improvements = append(improvements, "Add more bullet points to improve readability and structure")
		}
		if content.Metrics.StrongActionVerbs < strongActionVerbs {
			improvements = append(improvements, "Include more strong action verbs to demonstrate achievements")
		}
		if content.Metrics.QuantifiableResults < strongQuantifiable {
			improvements = append(improvements, "Add quantifiable results to show measurable impact")
		}
	}

	if sectionsScore < weakScore {
		if missing := missingSections(sections); len(missing) > 0 {
			improvements = append(improvements, fmt.Sprintf("Include missing sections: %s", strings.Join(missing, ", ")))
		}
	}

	return improvements
}

// missingSections names the absent core sections; profile and certifications are optional
func missingSections(sections types.SectionsResult) []string {
	core := []struct {
		key   string
		label string
	}{
		{key: types.SectionExperience, label: "work experience"},
		{key: types.SectionEducation, label: "education"},
		{key: types.SectionSkills, label: "skills"},
		{key: types.SectionProjects, label: "projects"},
	}

	var missing []string
	for _, s := range core {
		if !sections.Sections[s.key] {
			missing = append(missing, s.label)
		}
	}
	return missing
}
