// Package jobmatch compares resume text against the reference job requirements held in a lexicon.
package jobmatch

import (
	"math"
	"strings"

	"github.com/lachho/resume/internal/lexicon"
	"github.com/lachho/resume/internal/types"
)

const (
	academicsWeight  = 0.2
	hardSkillsWeight = 0.5
	softSkillsWeight = 0.3

	pointsPerSkill = 20

	// missing requirements surfaced per skill category; scoring always uses the full lists
	maxHardSkillsMissing = 10
	maxSoftSkillsMissing = 8
)

// Matcher scores how well a resume covers one fixed set of job requirements
type Matcher struct {
	reqs lexicon.JobRequirements
}

// New creates a Matcher for the job requirements in lex
func New(lex *lexicon.Lexicon) *Matcher {
	return &Matcher{reqs: lex.JobRequirements()}
}

// Match compares text against the job requirements. Matching is case-insensitive substring search.
func (m *Matcher) Match(text string) types.JobMatchResult {
	lower := strings.ToLower(text)

	degrees, missingDegrees := partition(m.reqs.Degrees, lower)
	fields, missingFields := partition(m.reqs.FieldsOfStudy, lower)
	academics := types.CategoryMatch{
		Found:   append(degrees, fields...),
		Missing: append(missingDegrees, missingFields...),
		Score:   academicScore(len(degrees), len(fields)),
	}

	software, missingSoftware := partition(m.reqs.Software, lower)
	disciplines, missingDisciplines := partition(m.reqs.EngineeringDisciplines, lower)
	tasks, missingTasks := partition(m.reqs.TechnicalTasks, lower)
	hardFound := concat(software, disciplines, tasks)
	hardSkills := types.CategoryMatch{
		Found:   hardFound,
		Missing: truncate(concat(missingSoftware, missingDisciplines, missingTasks), maxHardSkillsMissing),
		Score:   skillScore(len(hardFound)),
	}

	softFound, softMissing := partitionCategories(m.reqs.SoftSkills, lower)
	softSkills := types.CategoryMatch{
		Found:   softFound,
		Missing: truncate(softMissing, maxSoftSkillsMissing),
		Score:   skillScore(len(softFound)),
	}

	score := int(math.Round(
		float64(academics.Score)*academicsWeight +
			float64(hardSkills.Score)*hardSkillsWeight +
			float64(softSkills.Score)*softSkillsWeight,
	))

	return types.JobMatchResult{
		Score:   score,
		Message: matchSummary(score),
		Matches: types.JobMatches{
			Academics:  academics,
			HardSkills: hardSkills,
			SoftSkills: softSkills,
		},
		Recommendations: recommendations(score, academics.Score, len(degrees), len(fields), hardSkills.Score, softSkills.Score),
		Summary: types.JobMatchSummary{
			TotalRequirements: m.reqs.HardSkillCount() + len(m.reqs.SoftSkills) + len(m.reqs.Degrees) + len(m.reqs.FieldsOfStudy),
			TotalMatches:      len(academics.Found) + len(hardFound) + len(softFound),
			MatchPercentage:   score,
		},
	}
}

// partition splits requirements into those found in lower and those missing, keeping declaration order
func partition(requirements []string, lower string) (found, missing []string) {
	found, missing = []string{}, []string{}
	for _, r := range requirements {
		if strings.Contains(lower, strings.ToLower(r)) {
			found = append(found, r)
		} else {
			missing = append(missing, r)
		}
	}
	return found, missing
}

// partitionCategories finds a category by its name or any of its variants. Each category counts once.
func partitionCategories(categories []lexicon.Category, lower string) (found, missing []string) {
	found, missing = []string{}, []string{}
	for _, c := range categories {
		if categoryPresent(c, lower) {
			found = append(found, c.Name)
		} else {
			missing = append(missing, c.Name)
		}
	}
	return found, missing
}

func categoryPresent(c lexicon.Category, lower string) bool {
	if strings.Contains(lower, strings.ToLower(c.Name)) {
		return true
	}
	for _, v := range c.Variants {
		if strings.Contains(lower, strings.ToLower(v)) {
			return true
		}
	}
	return false
}

func academicScore(degrees, fields int) int {
	switch {
	case degrees > 0 && fields > 0:
		return 100
	case degrees > 0 || fields > 0:
		return 50
	default:
		return 0
	}
}

func skillScore(matches int) int {
	return min(100, matches*pointsPerSkill)
}

func concat(lists ...[]string) []string {
	out := []string{}
	for _, l := range lists {
		out = append(out, l...)
	}
	return out
}

func truncate(list []string, n int) []string {
	if len(list) > n {
		return list[:n]
	}
	return list
}

func recommendations(score, academics, degrees, fields, hardSkills, softSkills int) []string {
	recs := []string{}
	if academics < 100 {
		if degrees == 0 {
			recs = append(recs, "Highlight your degree qualifications more prominently")
		}
		if fields == 0 {
			recs = append(recs, "Emphasise your field of study to match job requirements")
		}
	}
	if hardSkills < 80 {
		recs = append(recs, "Add more technical skills and software proficiencies to strengthen your profile")
	}
	if softSkills < 80 {
		recs = append(recs, "Include more examples demonstrating leadership, teamwork, and problem-solving abilities")
	}

	switch {
	case score >= 80:
		recs = append(recs, "Excellent match! Consider applying for this role")
	case score >= 65:
		recs = append(recs, "Strong candidate profile - focus on quantifying your achievements")
	default:
		recs = append(recs, "Consider upskilling in missing technical areas or gaining relevant experience")
	}
	return recs
}

func matchSummary(score int) string {
	switch {
	case score >= 80:
		return "✅ Excellent job match - strong alignment with requirements"
	case score >= 65:
		return "🟡 Good job match with some gaps to address"
	case score >= 50:
		return "⚠️ Fair job match - several key requirements missing"
	default:
		return "❌ Poor job match - significant skills gap identified"
	}
}
