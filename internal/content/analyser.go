// Package content scores the writing quality of a resume line by line.
package content

import (
	"math"
	"strings"

	"github.com/lachho/resume/internal/lexicon"
	"github.com/lachho/resume/internal/types"
)

const (
	baseScore = 50

	achievementPoints   = 8
	maxAchievementBonus = 30
	weakLinePoints      = 3
	maxWeakLinePenalty  = 20
	pronounPoints       = 2
	maxPronounPenalty   = 15
	strongVerbPoints    = 2
	maxStrongVerbBonus  = 10

	// lines this short or shorter are headings or noise
	minLineLength = 10
)

const emptyContentAdvice = "No content found to analyse. Please ensure your resume text is properly extracted."

// Analyser classifies resume lines by the strength of their language
type Analyser struct {
	lex *lexicon.Lexicon
}

// New creates an Analyser backed by lex
func New(lex *lexicon.Lexicon) *Analyser {
	return &Analyser{lex: lex}
}

// Analyse scores text. Whitespace-only text yields a zero score with a single recommendation.
func (a *Analyser) Analyse(text string) types.ContentResult {
	if strings.TrimSpace(text) == "" {
		return types.ContentResult{
			AchievementLines:          []types.LineMatch{},
			WeakLines:                 []types.LineMatch{},
			PersonalPronounLines:      []types.LineMatch{},
			StrongVerbsWithoutMetrics: []types.LineMatch{},
			Recommendations:           []string{emptyContentAdvice},
			Summary:                   qualitySummary(0),
		}
	}

	result := types.ContentResult{
		AchievementLines:          []types.LineMatch{},
		WeakLines:                 []types.LineMatch{},
		PersonalPronounLines:      []types.LineMatch{},
		StrongVerbsWithoutMetrics: []types.LineMatch{},
	}

	for i, raw := range contentLines(text) {
		line := strings.TrimSpace(raw)
		lineNumber := i + 1

		if pronouns := a.lex.PronounsIn(raw); len(pronouns) > 0 {
			result.PersonalPronounLines = append(result.PersonalPronounLines, types.LineMatch{
				Line:         line,
				MatchedTerms: pronouns,
				LineNumber:   lineNumber,
			})
		}

		strong := a.lex.StrongVerbsIn(raw)
		metrics := FindMetrics(raw)
		if len(metrics) > 0 {
			result.Metrics.QuantifiableResults++
		}

		switch {
		case len(strong) > 0 && len(metrics) > 0:
			result.AchievementLines = append(result.AchievementLines, types.LineMatch{
				Line:         line,
				MatchedTerms: strong,
				Metrics:      metrics,
				LineNumber:   lineNumber,
			})
		case len(strong) > 0:
			result.StrongVerbsWithoutMetrics = append(result.StrongVerbsWithoutMetrics, types.LineMatch{
				Line:         line,
				MatchedTerms: strong,
				LineNumber:   lineNumber,
			})
		default:
			if weak := a.lex.WeakVerbsIn(raw); len(weak) > 0 {
				result.WeakLines = append(result.WeakLines, types.LineMatch{
					Line:         line,
					MatchedTerms: weak,
					LineNumber:   lineNumber,
				})
			}
		}
	}

	result.TotalAchievements = len(result.AchievementLines)
	result.TotalWeakLines = len(result.WeakLines)
	result.TotalPersonalPronouns = len(result.PersonalPronounLines)
	result.TotalStrongWithoutMetrics = len(result.StrongVerbsWithoutMetrics)
	result.Metrics.StrongActionVerbs = result.TotalAchievements + result.TotalStrongWithoutMetrics

	result.Score = score(result)
	result.Recommendations = recommendations(result)
	result.Summary = qualitySummary(result.Score)

	return result
}

// contentLines returns the lines long enough to be analysed; their index+1 is the reported line number
func contentLines(text string) []string {
	raw := strings.Split(text, "\n")
	lines := make([]string, 0, len(raw))
	for _, line := range raw {
		if len([]rune(strings.TrimSpace(line))) > minLineLength {
			lines = append(lines, line)
		}
	}
	return lines
}

func score(r types.ContentResult) int {
	s := float64(baseScore)
	s += math.Min(float64(r.TotalAchievements*achievementPoints), maxAchievementBonus)
	s -= math.Min(float64(r.TotalWeakLines*weakLinePoints), maxWeakLinePenalty)
	s -= math.Min(float64(r.TotalPersonalPronouns*pronounPoints), maxPronounPenalty)
	s += math.Min(float64(r.TotalStrongWithoutMetrics*strongVerbPoints), maxStrongVerbBonus)
	s = math.Max(0, math.Min(100, s))
	return int(math.Round(s))
}

func recommendations(r types.ContentResult) []string {
	recs := make([]string, 0, 6)
	if r.TotalAchievements == 0 {
		recs = append(recs, "Add quantifiable achievements with strong action verbs and metrics to showcase your impact.")
	}
	if r.TotalStrongWithoutMetrics > 0 {
		recs = append(recs, "Great use of strong action verbs! Consider adding numbers or metrics to show results.")
	}
	if r.TotalWeakLines > 0 {
		recs = append(recs, "Replace weak action verbs with stronger alternatives that demonstrate leadership and impact.")
	}
	if r.TotalPersonalPronouns > 0 {
		recs = append(recs, "Remove personal pronouns (I, my, me) - professional resumes use implied first-person voice.")
	}
	return append(recs,
		"Perform a thorough grammar and typo check using tools like Grammarly or similar.",
		"Consider using the STAR method (Situation, Task, Action, Result) or PAR method (Problem, Action, Result) to structure your achievements.",
	)
}

func qualitySummary(score int) string {
	switch {
	case score >= 80:
		return "✅ Excellent content quality with strong achievement-oriented language"
	case score >= 65:
		return "🟡 Good content quality with room for improvement"
	case score >= 50:
		return "⚠️ Fair content quality - needs significant improvement"
	default:
		return "❌ Poor content quality - major revision required"
	}
}
