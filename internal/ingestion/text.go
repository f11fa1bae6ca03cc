package ingestion

import (
	"bytes"
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/lachho/resume/internal/types"
)

var (
	spaceRunPattern   = regexp.MustCompile(`\s+`)
	blankLinesPattern = regexp.MustCompile(`\n\n\n+`)
)

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// extractText returns a plain text document with its line endings normalised and everything else untouched
func extractText(data []byte) (*types.ParsedDocument, error) {
	data = bytes.TrimPrefix(data, utf8BOM)
	if !utf8.Valid(data) {
		return nil, &ExtractionError{Format: FormatText, Message: "file is not valid UTF-8 text"}
	}
	return &types.ParsedDocument{Text: normalizeLineEndings(string(data))}, nil
}

// CleanText cleans and normalizes text content while preserving structure
func CleanText(content string) string {
	if content == "" {
		return ""
	}

	content = normalizeLineEndings(content)

	lines := strings.Split(content, "\n")
	cleanedLines := make([]string, 0, len(lines))
	for _, line := range lines {
		cleanedLines = append(cleanedLines, cleanLine(line))
	}

	result := strings.Join(cleanedLines, "\n")

	// at most one blank line between blocks
	result = blankLinesPattern.ReplaceAllString(result, "\n\n")

	return strings.TrimSpace(result)
}

func normalizeLineEndings(content string) string {
	content = strings.ReplaceAll(content, "\r\n", "\n")
	return strings.ReplaceAll(content, "\r", "\n")
}

// cleanLine cleans a single line while preserving structure
func cleanLine(line string) string {
	line = strings.TrimRight(line, " \t")
	if strings.TrimSpace(line) == "" {
		return ""
	}

	trimmed := strings.TrimLeft(line, " \t")

	// Bullets keep their indentation so nested lists stay nested
	if isBulletLine(trimmed) {
		indent := len(line) - len(trimmed)
		return strings.Repeat(" ", indent) + trimmed
	}

	leadingSpace := len(line) - len(trimmed)
	content := spaceRunPattern.ReplaceAllString(strings.TrimSpace(line), " ")
	if leadingSpace > 0 {
		return strings.Repeat(" ", leadingSpace) + content
	}
	return content
}

// isBulletLine checks if a trimmed line is a bullet list item
func isBulletLine(trimmed string) bool {
	return strings.HasPrefix(trimmed, "- ") || strings.HasPrefix(trimmed, "* ") ||
		strings.HasPrefix(trimmed, "• ") || strings.HasPrefix(trimmed, "· ")
}

// cleanWhitespace trims every line and drops the empty ones
func cleanWhitespace(text string) string {
	lines := strings.Split(normalizeLineEndings(text), "\n")
	cleaned := make([]string, 0, len(lines))
	for _, line := range lines {
		line = spaceRunPattern.ReplaceAllString(strings.TrimSpace(line), " ")
		if line != "" {
			cleaned = append(cleaned, line)
		}
	}
	return strings.Join(cleaned, "\n")
}
