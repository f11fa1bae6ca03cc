package types

// ATSMetrics holds the raw counts behind an ATS score
type ATSMetrics struct {
	WordCount        int     `json:"word_count"`
	PageCount        *int    `json:"page_count"`
	HasImages        bool    `json:"has_images"`
	BulletPoints     int     `json:"bullet_points"`
	LongSentences    int     `json:"long_sentences"`
	LongLines        int     `json:"long_lines"`
	SpecialCharRatio float64 `json:"special_char_ratio"`
}

// ATSResult is the applicant-tracking-system compatibility assessment of a document
type ATSResult struct {
	Score           int               `json:"score"`
	Recommendations []string          `json:"recommendations"`
	Details         map[string]string `json:"details"`
	Message         string            `json:"message"`
	Metrics         ATSMetrics        `json:"metrics"`
}
