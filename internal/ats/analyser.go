// Package ats scores how reliably an applicant tracking system can parse a resume.
package ats

import (
	"fmt"

	"github.com/lachho/resume/internal/lexicon"
	"github.com/lachho/resume/internal/types"
)

const (
	startingScore = 100

	minTextLength       = 50
	tooLongWords        = 800
	slightlyLongWords   = 700
	tooShortWords       = 200
	idealMinWords       = 300
	idealMaxWords       = 600
	maxPages            = 2
	minBulletPoints     = 3
	maxSpecialCharRatio = 0.2

	littleTextPenalty   = 30
	tooLongPenalty      = 20
	slightlyLongPenalty = 10
	tooShortPenalty     = 20
	imagesPenalty       = 20
	pageCountPenalty    = 10
	longSentencePenalty = 10
	longLinePenalty     = 10
	fewBulletsPenalty   = 10
	specialCharsPenalty = 15
)

// formattingAdvice is appended to every result regardless of score
var formattingAdvice = []string{
	"Use a single-column layout to ensure ATS compatibility. Multi-column layouts can confuse parsers.",
	"Avoid using tables in your resume. They can cause parsing errors with many ATS systems.",
	"Save as PDF to preserve formatting while maintaining text readability by humans and ATS systems.",
}

// Analyser scores extracted documents for ATS compatibility
type Analyser struct {
	lex *lexicon.Lexicon
}

// New creates an Analyser backed by lex
func New(lex *lexicon.Lexicon) *Analyser {
	return &Analyser{lex: lex}
}

// Analyse scores doc. Deductions are independent; the total is floored at 0.
func (a *Analyser) Analyse(doc types.ParsedDocument) types.ATSResult {
	text := doc.Text
	score := startingScore
	recommendations := make([]string, 0, 10)

	if runeLen(text) < minTextLength {
		score -= littleTextPenalty
		recommendations = append(recommendations, "Very little text extracted - possible parsing problems")
	}

	wordCount := CountWords(text)
	switch {
	case wordCount > tooLongWords:
		score -= tooLongPenalty
		recommendations = append(recommendations, fmt.Sprintf("Resume too long (%d words) - ideal range is 300-600 words", wordCount))
	case wordCount > slightlyLongWords:
		score -= slightlyLongPenalty
		recommendations = append(recommendations, fmt.Sprintf("Resume slightly long (%d words) - consider condensing", wordCount))
	case wordCount < tooShortWords:
		score -= tooShortPenalty
		recommendations = append(recommendations, fmt.Sprintf("Resume too short (%d words) - add more relevant details", wordCount))
	case wordCount >= idealMinWords && wordCount <= idealMaxWords:
		recommendations = append(recommendations, fmt.Sprintf("Good word count (%d words)", wordCount))
	}

	if doc.HasImages {
		score -= imagesPenalty
		recommendations = append(recommendations, "An image was detected in your resume. It's best to remove all images, logos, and photos as they can't be read by ATS.")
	}

	pageCount := doc.PageCountOrZero()
	if pageCount > maxPages {
		score -= pageCountPenalty
		recommendations = append(recommendations, fmt.Sprintf("Your resume is %d pages long. Aim for a 1-2 page resume for most job applications.", pageCount))
	}

	longSentences := CountLongSentences(text)
	if longSentences > 0 {
		score -= longSentencePenalty
		recommendations = append(recommendations, "Break down overly long sentences for better readability and ATS parsing.")
	}

	lines := nonBlankLines(text)

	longLines := CountLongLines(lines)
	if longLines > 0 {
		score -= longLinePenalty
		recommendations = append(recommendations, "Long and wordy lines are hard to read. Use punchy bullet points to describe achievements, especially in your executive summary.")
	}

	bullets := CountBulletPoints(lines)
	if bullets < minBulletPoints {
		score -= fewBulletsPenalty
		recommendations = append(recommendations, "Your resume has very few bullet points. Using them makes your accomplishments easier to read for both recruiters and ATS.")
	}

	ratio := SpecialCharRatio(text, a.lex.IsSpecialCharacter)
	if ratio > maxSpecialCharRatio {
		score -= specialCharsPenalty
		recommendations = append(recommendations, "High ratio of special characters detected - this may indicate formatting issues that could confuse ATS systems.")
	}

	if score < 0 {
		score = 0
	}

	recommendations = append(recommendations, formattingAdvice...)

	metrics := types.ATSMetrics{
		WordCount:        wordCount,
		PageCount:        doc.PageCount,
		HasImages:        doc.HasImages,
		BulletPoints:     bullets,
		LongSentences:    longSentences,
		LongLines:        longLines,
		SpecialCharRatio: ratio,
	}

	return types.ATSResult{
		Score:           score,
		Recommendations: recommendations,
		Details:         buildDetails(metrics),
		Message:         summaryMessage(score),
		Metrics:         metrics,
	}
}

func summaryMessage(score int) string {
	switch {
	case score >= 80:
		return "✅ Excellent ATS compatibility - your resume should parse well"
	case score >= 70:
		return "🟡 Good ATS compatibility with minor improvements needed"
	case score >= 55:
		return "⚠️ Fair ATS compatibility - several issues need attention"
	default:
		return "❌ Poor ATS compatibility - major formatting changes required"
	}
}
