package observability

import (
	"fmt"
	"strings"

	"github.com/lachho/resume/internal/types"
)

// maxExampleLines caps the example lines listed per content category
const maxExampleLines = 3

// RenderMarkdown renders a complete analysis as a Markdown report
func RenderMarkdown(bundle *types.AnalysisBundle) string {
	var sb strings.Builder

	sb.WriteString("# Resume Analysis Report\n\n")

	fmt.Fprintf(&sb, "## Overall Score: %d/100\n\n", bundle.Overall.FinalScore)
	fmt.Fprintf(&sb, "%s\n\n", OverallMessage(bundle.Overall.FinalScore))
	writeMarkdownList(&sb, "### ✅ Key Strengths", bundle.Overall.Strengths)
	writeMarkdownList(&sb, "### 🎯 Priority Improvements", bundle.Overall.AreasForImprovement)

	fmt.Fprintf(&sb, "## ATS Compatibility: %d/100\n\n", bundle.ATS.Score)
	fmt.Fprintf(&sb, "%s\n\n", bundle.ATS.Message)
	sb.WriteString("| Metric | Value |\n|---|---|\n")
	for _, row := range detailRows {
		if value, ok := bundle.ATS.Details[row.key]; ok {
			fmt.Fprintf(&sb, "| %s | %s |\n", row.label, value)
		}
	}
	sb.WriteString("\n")
	writeMarkdownList(&sb, "### Recommendations", bundle.ATS.Recommendations)

	fmt.Fprintf(&sb, "## Content Quality: %d/100\n\n", bundle.Content.Score)
	fmt.Fprintf(&sb, "%s\n\n", bundle.Content.Summary)
	writeLineMatches(&sb, "Strong Achievement Lines", bundle.Content.TotalAchievements, bundle.Content.AchievementLines)
	writeLineMatches(&sb, "Good Action Verbs - Consider Adding Metrics", bundle.Content.TotalStrongWithoutMetrics, bundle.Content.StrongVerbsWithoutMetrics)
	writeLineMatches(&sb, "Weak Action Verbs - Consider Stronger Alternatives", bundle.Content.TotalWeakLines, bundle.Content.WeakLines)
	writeLineMatches(&sb, "Personal Pronouns - Use Third Person", bundle.Content.TotalPersonalPronouns, bundle.Content.PersonalPronounLines)
	writeMarkdownList(&sb, "### Recommendations", bundle.Content.Recommendations)

	sb.WriteString("## Sections & Contact Information\n\n")
	contact := bundle.Sections.ContactInfo
	fmt.Fprintf(&sb, "- **Email:** %s\n", valueOr(contact.Email, "Not found"))
	fmt.Fprintf(&sb, "- **Phone:** %s\n", valueOr(contact.Phone, "Not found"))
	if len(contact.URLs) > 0 {
		fmt.Fprintf(&sb, "- **Links:** %s\n", strings.Join(contact.URLs, ", "))
	}
	sb.WriteString("\n| Section | Present |\n|---|---|\n")
	for _, name := range types.SectionNames {
		present := "No"
		if bundle.Sections.Sections[name] {
			present = "Yes"
		}
		fmt.Fprintf(&sb, "| %s | %s |\n", name, present)
	}
	sb.WriteString("\n")
	writeMarkdownList(&sb, "### Technical Skills", bundle.Sections.Skills.Hard)
	writeMarkdownList(&sb, "### Soft Skills", bundle.Sections.Skills.Soft)
	writeMarkdownList(&sb, "### Education", bundle.Sections.Education)
	writeMarkdownList(&sb, "### Recommendations", bundle.Sections.Recommendations)

	return strings.TrimRight(sb.String(), "\n") + "\n"
}

// RenderJobMatchMarkdown renders a job match as a Markdown report
func RenderJobMatchMarkdown(result *types.JobMatchResult) string {
	var sb strings.Builder

	fmt.Fprintf(&sb, "# Job Requirements Match: %d/100\n\n", result.Score)
	fmt.Fprintf(&sb, "%s\n\n", result.Message)
	fmt.Fprintf(&sb, "Matched **%d** of **%d** requirements.\n\n", result.Summary.TotalMatches, result.Summary.TotalRequirements)

	sb.WriteString("| Category | Score | Found | Missing |\n|---|---|---|---|\n")
	writeCategoryRow(&sb, "Academics (20%)", result.Matches.Academics)
	writeCategoryRow(&sb, "Technical skills (50%)", result.Matches.HardSkills)
	writeCategoryRow(&sb, "Professional skills (30%)", result.Matches.SoftSkills)
	sb.WriteString("\n")

	writeMarkdownList(&sb, "## Recommendations", result.Recommendations)

	return strings.TrimRight(sb.String(), "\n") + "\n"
}

func writeCategoryRow(sb *strings.Builder, label string, match types.CategoryMatch) {
	fmt.Fprintf(sb, "| %s | %d | %s | %s |\n", label, match.Score, joinOrDash(match.Found), joinOrDash(match.Missing))
}

func writeMarkdownList(sb *strings.Builder, heading string, items []string) {
	if len(items) == 0 {
		return
	}
	sb.WriteString(heading + "\n\n")
	for _, item := range items {
		fmt.Fprintf(sb, "- %s\n", item)
	}
	sb.WriteString("\n")
}

func writeLineMatches(sb *strings.Builder, heading string, total int, matches []types.LineMatch) {
	if total == 0 {
		return
	}
	fmt.Fprintf(sb, "### %s (%d)\n\n", heading, total)
	for i, m := range matches {
		if i == maxExampleLines {
			break
		}
		fmt.Fprintf(sb, "- Line %d: \"%s\" (%s)", m.LineNumber, m.Line, strings.Join(m.MatchedTerms, ", "))
		if len(m.Metrics) > 0 {
			fmt.Fprintf(sb, " metrics: %s", strings.Join(m.Metrics, ", "))
		}
		sb.WriteString("\n")
	}
	if total > maxExampleLines {
		fmt.Fprintf(sb, "- ...and %d more\n", total-maxExampleLines)
	}
	sb.WriteString("\n")
}

func joinOrDash(items []string) string {
	if len(items) == 0 {
		return "-"
	}
	return strings.Join(items, ", ")
}
