package types

// LineMatch is a line of resume text together with the terms that caused it to be flagged
type LineMatch struct {
	Line         string   `json:"line"`
	MatchedTerms []string `json:"matched_terms"`
	Metrics      []string `json:"metrics,omitempty"` // only set on achievement lines
	LineNumber   int      `json:"line_number"`       // 1-based, counted over lines longer than 10 characters
}

// ContentMetrics holds line counts used by the overall score
type ContentMetrics struct {
	StrongActionVerbs   int `json:"strong_action_verbs"`
	QuantifiableResults int `json:"quantifiable_results"`
}

// ContentResult is the writing-quality assessment of a document
type ContentResult struct {
	Score                     int            `json:"score"`
	AchievementLines          []LineMatch    `json:"achievement_lines"`
	WeakLines                 []LineMatch    `json:"weak_lines"`
	PersonalPronounLines      []LineMatch    `json:"personal_pronoun_lines"`
	StrongVerbsWithoutMetrics []LineMatch    `json:"strong_verbs_without_metrics"`
	TotalAchievements         int            `json:"total_achievements"`
	TotalWeakLines            int            `json:"total_weak_lines"`
	TotalPersonalPronouns     int            `json:"total_personal_pronouns"`
	TotalStrongWithoutMetrics int            `json:"total_strong_without_metrics"`
	Metrics                   ContentMetrics `json:"metrics"`
	Recommendations           []string       `json:"recommendations"`
	Summary                   string         `json:"summary"`
}
