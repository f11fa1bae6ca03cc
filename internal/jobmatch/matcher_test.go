package jobmatch

import (
	"testing"

	"github.com/lachho/resume/internal/lexicon"
	"github.com/lachho/resume/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMatch_DegreeAndField(t *testing.T) {
	result := New(lexicon.Default()).Match("Bachelor of Civil Engineering")

	academics := result.Matches.Academics
	assert.Equal(t, 100, academics.Score)
	assert.Equal(t, []string{"Bachelor", "Civil Engineering", "Engineering"}, academics.Found)
	assert.Equal(t, []string{"Master", "Degree", "PhD", "Environmental Engineering", "Surveying"}, academics.Missing)

	assert.Equal(t, []string{"Civil"}, result.Matches.HardSkills.Found)
	assert.Equal(t, 20, result.Matches.HardSkills.Score)
	assert.Empty(t, result.Matches.SoftSkills.Found)
	assert.Equal(t, 0, result.Matches.SoftSkills.Score)

	assert.Equal(t, 30, result.Score)
	assert.Equal(t, "❌ Poor job match - significant skills gap identified", result.Message)
	assert.Equal(t, types.JobMatchSummary{TotalRequirements: 57, TotalMatches: 4, MatchPercentage: 30}, result.Summary)
}

func TestMatch_StrongCandidate(t *testing.T) {
	text := "Bachelor of Civil Engineering. AutoCAD, Civil 3D, Revit. Structural design. " +
		"Team leader, motivated, flexible, enthusiastic, organised."

	result := New(lexicon.Default()).Match(text)

	assert.Equal(t, 100, result.Score)
	assert.Equal(t, []string{"AutoCAD", "Civil 3D", "Revit", "Civil", "Structural"}, result.Matches.HardSkills.Found)
	assert.Equal(t, []string{"leader", "driven", "adaptable", "passionate", "time management"}, result.Matches.SoftSkills.Found)
	assert.Equal(t, 13, result.Summary.TotalMatches)
	assert.Equal(t, "✅ Excellent job match - strong alignment with requirements", result.Message)
	assert.Equal(t, []string{"Excellent match! Consider applying for this role"}, result.Recommendations)
}

func TestMatch_PartialCandidate(t *testing.T) {
	text := "Master of Surveying. Experience with AutoCAD and drawings. Strong teamwork and documentation."

	result := New(lexicon.Default()).Match(text)

	assert.Equal(t, 100, result.Matches.Academics.Score)
	assert.Equal(t, []string{"AutoCAD", "Surveying", "drawings"}, result.Matches.HardSkills.Found)
	assert.Equal(t, 60, result.Matches.HardSkills.Score)
	assert.Equal(t, []string{"written communication", "teamwork"}, result.Matches.SoftSkills.Found)
	assert.Equal(t, 40, result.Matches.SoftSkills.Score)
	assert.Equal(t, 62, result.Score)
	assert.Equal(t, "⚠️ Fair job match - several key requirements missing", result.Message)
	assert.Equal(t, []string{
		"Add more technical skills and software proficiencies to strengthen your profile",
		"Include more examples demonstrating leadership, teamwork, and problem-solving abilities",
		"Consider upskilling in missing technical areas or gaining relevant experience",
	}, result.Recommendations)
}

func TestMatch_EmptyText(t *testing.T) {
	result := New(lexicon.Default()).Match("")

	assert.Equal(t, 0, result.Score)
	assert.Empty(t, result.Matches.Academics.Found)
	assert.Len(t, result.Matches.Academics.Missing, 8)
	assert.Len(t, result.Matches.HardSkills.Missing, maxHardSkillsMissing)
	assert.Len(t, result.Matches.SoftSkills.Missing, maxSoftSkillsMissing)
	assert.Equal(t, []string{
		"Highlight your degree qualifications more prominently",
		"Emphasise your field of study to match job requirements",
		"Add more technical skills and software proficiencies to strengthen your profile",
		"Include more examples demonstrating leadership, teamwork, and problem-solving abilities",
		"Consider upskilling in missing technical areas or gaining relevant experience",
	}, result.Recommendations)
	assert.Equal(t, 57, result.Summary.TotalRequirements)
}

func TestMatch_SoftSkillCountedOnce(t *testing.T) {
	result := New(lexicon.Default()).Match("leader showing leadership, mentorship and guidance")

	assert.Equal(t, []string{"leader"}, result.Matches.SoftSkills.Found)
	assert.Equal(t, 20, result.Matches.SoftSkills.Score)
}

func TestAcademicScore(t *testing.T) {
	tests := []struct {
		name            string
		degrees, fields int
		want            int
	}{
		{name: "both", degrees: 1, fields: 2, want: 100},
		{name: "degree only", degrees: 1, want: 50},
		{name: "field only", fields: 1, want: 50},
		{name: "neither", want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, academicScore(tt.degrees, tt.fields))
		})
	}
}

func TestSkillScore_Saturates(t *testing.T) {
	assert.Equal(t, 0, skillScore(0))
	assert.Equal(t, 80, skillScore(4))
	assert.Equal(t, 100, skillScore(5))
	assert.Equal(t, 100, skillScore(12))
}

func TestMatch_CustomRequirements(t *testing.T) {
	tables := lexicon.Default().Tables()
	tables.JobRequirements = lexicon.JobRequirements{
		Degrees:                []string{"Bachelor"},
		FieldsOfStudy:          []string{"Computer Science"},
		Software:               []string{"Go", "Kubernetes"},
		EngineeringDisciplines: []string{},
		TechnicalTasks:         []string{"code review"},
		SoftSkills:             []lexicon.Category{{Name: "mentoring", Variants: []string{"coached"}}},
	}
	lex, err := lexicon.New(tables)
	require.NoError(t, err)

	result := New(lex).Match("Bachelor of Computer Science. Coached juniors through code review in Go.")

	assert.Equal(t, 100, result.Matches.Academics.Score)
	assert.Equal(t, []string{"Go", "code review"}, result.Matches.HardSkills.Found)
	assert.Equal(t, []string{"Kubernetes"}, result.Matches.HardSkills.Missing)
	assert.Equal(t, []string{"mentoring"}, result.Matches.SoftSkills.Found)
	assert.Equal(t, 6, result.Summary.TotalRequirements)
	assert.Equal(t, 46, result.Score)
}

func TestMatch_Deterministic(t *testing.T) {
	m := New(lexicon.Default())
	text := "Bachelor of Civil Engineering with AutoCAD and leadership"

	assert.Equal(t, m.Match(text), m.Match(text))
}
