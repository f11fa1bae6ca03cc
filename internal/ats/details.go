package ats

import (
	"fmt"
	"math"

	"github.com/lachho/resume/internal/types"
)

const (
	good    = "✅"
	warning = "⚠️"
	bad     = "❌"
)

func buildDetails(m types.ATSMetrics) map[string]string {
	pageCount := 0
	if m.PageCount != nil {
		pageCount = *m.PageCount
	}
	pageText := "Could not determine page count"
	if pageCount > 0 {
		pageText = fmt.Sprintf("%d page(s) detected", pageCount)
	}

	imagesText := "No images detected"
	if m.HasImages {
		imagesText = "Images detected"
	}

	specialPercent := int(math.Round(m.SpecialCharRatio * 100))

	return map[string]string{
		"word_count":         fmt.Sprintf("%s %d words", wordCountEmoji(m.WordCount), m.WordCount),
		"page_count":         fmt.Sprintf("%s %s", pageCountEmoji(pageCount), pageText),
		"images":             fmt.Sprintf("%s %s", imagesEmoji(m.HasImages), imagesText),
		"bullet_points":      fmt.Sprintf("%s %d bullet points found", bulletPointsEmoji(m.BulletPoints), m.BulletPoints),
		"long_sentences":     fmt.Sprintf("%s %d long sentences found", countEmoji(m.LongSentences), m.LongSentences),
		"special_characters": fmt.Sprintf("%s %d%% special characters", specialCharactersEmoji(specialPercent), specialPercent),
		"long_lines":         fmt.Sprintf("%s %d long lines found", countEmoji(m.LongLines), m.LongLines),
	}
}

func wordCountEmoji(count int) string {
	switch {
	case count >= 300 && count <= 700:
		return good
	case count >= 200 && count < 300:
		return warning
	case count > 700 && count <= 1000:
		return warning
	default:
		return bad
	}
}

func pageCountEmoji(pages int) string {
	switch pages {
	case 1, 2:
		return good
	case 3:
		return warning
	default:
		return bad
	}
}

func imagesEmoji(hasImages bool) string {
	if hasImages {
		return bad
	}
	return good
}

func bulletPointsEmoji(count int) string {
	switch {
	case count >= 10:
		return good
	case count >= 5:
		return warning
	default:
		return bad
	}
}

// countEmoji bands long sentence and long line counts
func countEmoji(count int) string {
	switch {
	case count == 0:
		return good
	case count <= 5:
		return warning
	default:
		return bad
	}
}

func specialCharactersEmoji(percent int) string {
	switch {
	case percent <= 5:
		return good
	case percent <= 10:
		return warning
	default:
		return bad
	}
}
