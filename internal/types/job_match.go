package types

// CategoryMatch is the found/missing breakdown of one requirement category
type CategoryMatch struct {
	Found   []string `json:"found"`
	Missing []string `json:"missing"`
	Score   int      `json:"score"`
}

// JobMatches groups the requirement categories of a job match
type JobMatches struct {
	Academics  CategoryMatch `json:"academics"`
	HardSkills CategoryMatch `json:"hard_skills"`
	SoftSkills CategoryMatch `json:"soft_skills"`
}

// JobMatchSummary holds totals across all requirement categories
type JobMatchSummary struct {
	TotalRequirements int `json:"total_requirements"`
	TotalMatches      int `json:"total_matches"`
	MatchPercentage   int `json:"match_percentage"`
}

// JobMatchResult compares a resume against the reference job requirements
type JobMatchResult struct {
	Score           int             `json:"score"`
	Message         string          `json:"message"`
	Matches         JobMatches      `json:"matches"`
	Recommendations []string        `json:"recommendations"`
	Summary         JobMatchSummary `json:"summary"`
}
