// Package observability provides report rendering, metrics and tracing for the CLI.
package observability

import (
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/lachho/resume/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
)

// detailRows orders the ATS details in reports
var detailRows = []struct{ key, label string }{
	{"word_count", "Word Count"},
	{"page_count", "Page Count"},
	{"images", "Images"},
	{"bullet_points", "Bullet Points"},
	{"long_sentences", "Long Sentences"},
	{"special_characters", "Special Characters"},
	{"long_lines", "Long Lines"},
}

// Printer handles formatted text reports
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	lines := strings.Split(content, "\n")
	for _, line := range lines {
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, truncate(line, boxWidth-4))
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// truncate shortens s to at most width runes, marking the cut with "..."
func truncate(s string, width int) string {
	if utf8.RuneCountInString(s) <= width {
		return s
	}
	runes := []rune(s)
	return string(runes[:width-3]) + "..."
}

// writeList writes up to limit items as bullets, then a count of the rest
func writeList(sb *strings.Builder, heading string, items []string, limit int) {
	if len(items) == 0 {
		return
	}
	sb.WriteString(heading + ":\n")
	count := min(len(items), limit)
	for i := 0; i < count; i++ {
		sb.WriteString(fmt.Sprintf("  • %s\n", items[i]))
	}
	if len(items) > limit {
		sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(items)-limit))
	}
	sb.WriteString("\n")
}

// OverallMessage describes a final score in words
func OverallMessage(score int) string {
	switch {
	case score >= 85:
		return "🎉 Outstanding resume! Ready for top-tier applications"
	case score >= 75:
		return "✅ Strong resume with minor optimisation opportunities"
	case score >= 65:
		return "🟡 Good foundation - focus on key improvement areas"
	default:
		return "⚠️ Room for improvement - address critical areas below"
	}
}

// PrintBundle outputs a human-readable report of a complete analysis.
func (p *Printer) PrintBundle(bundle *types.AnalysisBundle) {
	if bundle == nil {
		return
	}

	p.printOverall(bundle.Overall)
	p.printATS(bundle.ATS)
	p.printContent(bundle.Content)
	p.printSections(bundle.Sections)
}

func (p *Printer) printOverall(overall types.OverallResult) {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Score:    %d/100\n", overall.FinalScore))
	sb.WriteString(OverallMessage(overall.FinalScore) + "\n\n")
	writeList(&sb, "Key Strengths", overall.Strengths, maxItemsToShow)
	writeList(&sb, "Priority Improvements", overall.AreasForImprovement, maxItemsToShow)

	p.printBox("OVERALL SCORE", strings.TrimSuffix(sb.String(), "\n\n"))
}

func (p *Printer) printATS(result types.ATSResult) {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Score:    %d/100\n", result.Score))
	sb.WriteString(result.Message + "\n\n")

	for _, row := range detailRows {
		if value, ok := result.Details[row.key]; ok {
			sb.WriteString(fmt.Sprintf("%-20s%s\n", row.label+":", value))
		}
	}
	sb.WriteString("\n")
	writeList(&sb, "Recommendations", result.Recommendations, maxItemsToShow)

	p.printBox("ATS COMPATIBILITY", strings.TrimSuffix(sb.String(), "\n\n"))
}

func (p *Printer) printContent(result types.ContentResult) {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Score:    %d/100\n", result.Score))
	sb.WriteString(result.Summary + "\n\n")
	sb.WriteString(fmt.Sprintf("Achievement lines:          %d\n", result.TotalAchievements))
	sb.WriteString(fmt.Sprintf("Strong verbs, no metrics:   %d\n", result.TotalStrongWithoutMetrics))
	sb.WriteString(fmt.Sprintf("Weak lines:                 %d\n", result.TotalWeakLines))
	sb.WriteString(fmt.Sprintf("Personal pronoun lines:     %d\n\n", result.TotalPersonalPronouns))

	achievements := make([]string, 0, len(result.AchievementLines))
	for _, m := range result.AchievementLines {
		achievements = append(achievements, fmt.Sprintf("L%d %s", m.LineNumber, m.Line))
	}
	writeList(&sb, "Top achievements", achievements, 3)
	writeList(&sb, "Recommendations", result.Recommendations, maxItemsToShow)

	p.printBox("CONTENT QUALITY", strings.TrimSuffix(sb.String(), "\n\n"))
}

func (p *Printer) printSections(result types.SectionsResult) {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Email:    %s\n", valueOr(result.ContactInfo.Email, "Not found")))
	sb.WriteString(fmt.Sprintf("Phone:    %s\n", valueOr(result.ContactInfo.Phone, "Not found")))
	if len(result.ContactInfo.URLs) > 0 {
		sb.WriteString(fmt.Sprintf("Links:    %s\n", strings.Join(result.ContactInfo.URLs, ", ")))
	}
	sb.WriteString("\n")

	for _, name := range types.SectionNames {
		mark := "✗"
		if result.Sections[name] {
			mark = "✓"
		}
		sb.WriteString(fmt.Sprintf("%s %s\n", mark, name))
	}
	sb.WriteString("\n")

	writeList(&sb, "Hard skills", result.Skills.Hard, maxItemsToShow)
	writeList(&sb, "Soft skills", result.Skills.Soft, maxItemsToShow)
	writeList(&sb, "Education", result.Education, 3)
	writeList(&sb, "Recommendations", result.Recommendations, maxItemsToShow)

	p.printBox("SECTIONS", strings.TrimSuffix(sb.String(), "\n\n"))
}

// PrintJobMatch outputs a human-readable summary of a job match.
func (p *Printer) PrintJobMatch(result *types.JobMatchResult) {
	if result == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Score:    %d/100\n", result.Score))
	sb.WriteString(result.Message + "\n")
	sb.WriteString(fmt.Sprintf("Matched %d of %d requirements\n\n", result.Summary.TotalMatches, result.Summary.TotalRequirements))

	categories := []struct {
		label string
		match types.CategoryMatch
	}{
		{"Academics", result.Matches.Academics},
		{"Technical skills", result.Matches.HardSkills},
		{"Professional skills", result.Matches.SoftSkills},
	}
	for _, c := range categories {
		sb.WriteString(fmt.Sprintf("%s: %d/100\n", c.label, c.match.Score))
		if len(c.match.Found) > 0 {
			sb.WriteString(fmt.Sprintf("  found:   %s\n", strings.Join(c.match.Found, ", ")))
		}
		if len(c.match.Missing) > 0 {
			sb.WriteString(fmt.Sprintf("  missing: %s\n", strings.Join(c.match.Missing, ", ")))
		}
	}
	sb.WriteString("\n")
	writeList(&sb, "Recommendations", result.Recommendations, maxItemsToShow)

	p.printBox("JOB REQUIREMENTS MATCH", strings.TrimSuffix(sb.String(), "\n\n"))
}

func valueOr(s *string, fallback string) string {
	if s == nil {
		return fallback
	}
	return *s
}
