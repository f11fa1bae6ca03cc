package main

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace/noop"

	"github.com/lachho/resume/internal/types"
)

func TestAnalyseCommand_JSON(t *testing.T) {
	path := writeFile(t, t.TempDir(), "resume.txt", sampleResume)

	stdout, _, err := execute(t, "analyse", "--file", path)
	require.NoError(t, err)

	var bundle types.AnalysisBundle
	require.NoError(t, json.Unmarshal([]byte(stdout), &bundle))
	assert.Equal(t, sampleResume, bundle.OriginalText)
	assert.GreaterOrEqual(t, bundle.Overall.FinalScore, 0)
	assert.LessOrEqual(t, bundle.Overall.FinalScore, 100)
	assert.True(t, bundle.Sections.Sections[types.SectionExperience])
	require.NotNil(t, bundle.Sections.ContactInfo.Email)
	assert.Equal(t, "jane.doe@example.com", *bundle.Sections.ContactInfo.Email)
}

func TestAnalyseCommand_Deterministic(t *testing.T) {
	path := writeFile(t, t.TempDir(), "resume.txt", sampleResume)

	first, _, err := execute(t, "analyse", "--file", path)
	require.NoError(t, err)
	second, _, err := execute(t, "analyse", "--file", path)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestAnalyseCommand_Formats(t *testing.T) {
	path := writeFile(t, t.TempDir(), "resume.txt", sampleResume)

	tests := []struct {
		name     string
		args     []string
		contains []string
	}{
		{
			name:     "text",
			args:     []string{"--format", "text"},
			contains: []string{"OVERALL SCORE", "ATS COMPATIBILITY", "CONTENT QUALITY", "SECTIONS"},
		},
		{
			name:     "text with job match",
			args:     []string{"--format", "text", "--job-match"},
			contains: []string{"OVERALL SCORE", "JOB REQUIREMENTS MATCH"},
		},
		{
			name:     "markdown",
			args:     []string{"--format", "markdown"},
			contains: []string{"# Resume Analysis Report", "## ATS Compatibility"},
		},
		{
			name:     "markdown with job match",
			args:     []string{"--format", "markdown", "--job-match"},
			contains: []string{"# Resume Analysis Report", "# Job Requirements Match"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stdout, _, err := execute(t, append([]string{"analyse", "--file", path}, tt.args...)...)
			require.NoError(t, err)
			for _, want := range tt.contains {
				assert.Contains(t, stdout, want)
			}
		})
	}
}

func TestAnalyseCommand_JobMatchJSON(t *testing.T) {
	path := writeFile(t, t.TempDir(), "resume.txt", sampleResume)

	stdout, _, err := execute(t, "analyse", "--file", path, "--job-match", "--validate")
	require.NoError(t, err)

	var report struct {
		Analysis *types.AnalysisBundle `json:"analysis"`
		JobMatch *types.JobMatchResult `json:"job_match"`
	}
	require.NoError(t, json.Unmarshal([]byte(stdout), &report))
	require.NotNil(t, report.Analysis)
	require.NotNil(t, report.JobMatch)
	assert.Equal(t, 57, report.JobMatch.Summary.TotalRequirements)
	assert.Contains(t, report.JobMatch.Matches.HardSkills.Found, "AutoCAD")
}

func TestAnalyseCommand_WritesExtractedText(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "jane.txt", sampleResume)
	outDir := filepath.Join(dir, "out")

	_, _, err := execute(t, "analyse", "--file", path, "--out", outDir)
	require.NoError(t, err)

	text, err := os.ReadFile(filepath.Join(outDir, "jane.extracted.txt"))
	require.NoError(t, err)
	assert.Equal(t, sampleResume, string(text))
	assert.FileExists(t, filepath.Join(outDir, "jane.meta.json"))
}

func TestAnalyseCommand_HTML(t *testing.T) {
	html := "<html><body><h1>Jane Doe</h1><p>jane@example.com</p><img src=\"me.png\"></body></html>"
	path := writeFile(t, t.TempDir(), "resume.html", html)

	stdout, _, err := execute(t, "analyse", "--file", path)
	require.NoError(t, err)

	var bundle types.AnalysisBundle
	require.NoError(t, json.Unmarshal([]byte(stdout), &bundle))
	assert.True(t, bundle.ATS.Metrics.HasImages)
	assert.Equal(t, "Jane Doe\njane@example.com", bundle.OriginalText)
}

func TestAnalyseCommand_Errors(t *testing.T) {
	dir := t.TempDir()
	resume := writeFile(t, dir, "resume.txt", sampleResume)
	image := writeFile(t, dir, "photo.png", "\x89PNG\r\n\x1a\n\x00\x00\x00\rIHDR")

	tests := []struct {
		name    string
		args    []string
		wantErr string
	}{
		{name: "missing file flag", args: []string{"analyse"}, wantErr: `required flag(s) "file" not set`},
		{name: "file not found", args: []string{"analyse", "--file", filepath.Join(dir, "missing.txt")}, wantErr: "file not found"},
		{name: "unsupported type", args: []string{"analyse", "--file", image}, wantErr: "Unsupported file type"},
		{name: "unknown format", args: []string{"analyse", "--file", resume, "--format", "yaml"}, wantErr: "unknown output format"},
		{name: "unknown log level", args: []string{"analyse", "--file", resume, "--log-level", "loud"}, wantErr: "log_level"},
		{name: "missing lexicon", args: []string{"analyse", "--file", resume, "--lexicon", filepath.Join(dir, "none.json")}, wantErr: "lexicon file not found"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := execute(t, tt.args...)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestAnalyseCommand_ConfigFile(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "resume.txt", sampleResume)
	configPath := writeFile(t, dir, "config.yaml", "format: markdown\n")

	stdout, _, err := execute(t, "analyse", "--file", path, "--config", configPath)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(stdout, "# Resume Analysis Report"))

	// the command flag wins over the file
	stdout, _, err = execute(t, "analyse", "--file", path, "--config", configPath, "--format", "json")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(stdout, "{"))
}

func TestAnalyseCommand_EnvironmentConfig(t *testing.T) {
	path := writeFile(t, t.TempDir(), "resume.txt", sampleResume)
	t.Setenv("RESUME_ANALYSER_FORMAT", "text")

	stdout, _, err := execute(t, "analyse", "--file", path)
	require.NoError(t, err)
	assert.Contains(t, stdout, "OVERALL SCORE")
}

func TestAnalyseCommand_Logging(t *testing.T) {
	path := writeFile(t, t.TempDir(), "resume.txt", sampleResume)

	stdout, stderr, err := execute(t, "analyse", "--file", path, "--log-level", "debug", "--log-format", "json")
	require.NoError(t, err)

	assert.NotContains(t, stdout, "run_id")
	assert.Contains(t, stderr, `"msg":"document extracted"`)
	assert.Contains(t, stderr, `"msg":"component finished"`)
	assert.Contains(t, stderr, `"msg":"analysis complete"`)
	assert.Contains(t, stderr, `"run_id"`)
}

func TestAnalyseCommand_DefaultLogLevelIsQuiet(t *testing.T) {
	path := writeFile(t, t.TempDir(), "resume.txt", sampleResume)

	_, stderr, err := execute(t, "analyse", "--file", path)
	require.NoError(t, err)
	assert.Empty(t, stderr)
}

func TestAnalyseCommand_Trace(t *testing.T) {
	t.Cleanup(func() { otel.SetTracerProvider(noop.NewTracerProvider()) })
	path := writeFile(t, t.TempDir(), "resume.txt", sampleResume)

	_, stderr, err := execute(t, "analyse", "--file", path, "--trace")
	require.NoError(t, err)

	assert.Contains(t, stderr, `"Name":"analysis.Analyse"`)
	assert.Contains(t, stderr, `"Name":"analysis.ats"`)
}
